package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	"github.com/BruksfildServices01/barber-agenda/internal/timezone"
)

type UpdateStatusInput struct {
	AppointmentID uint
	TenantID      uint
	Status        string
}

// UpdateAppointmentStatus drives the booking lifecycle. Observers hear
// about a change only after it is stored, and never about no-ops.
type UpdateAppointmentStatus struct {
	repo     domain.Repository
	notifier *domain.Notifier
	clock    timezone.Clock
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	notifier *domain.Notifier,
	clock timezone.Clock,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:     repo,
		notifier: notifier,
		clock:    clock,
	}
}

func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}
	if ap.BarbershopID != in.TenantID {
		return nil, httperr.ErrAuthorization("forbidden", "appointment belongs to another barbershop")
	}

	old := domain.Status(ap.Status)
	now := uc.clock.Now()

	changed, err := domain.ApplyStatus(ap, domain.Status(in.Status), now)
	if err != nil {
		return nil, err
	}
	if !changed {
		return ap, nil
	}

	if err := uc.repo.UpdateAppointment(ctx, ap, old); err != nil {
		return nil, err
	}

	if uc.notifier != nil {
		uc.notifier.Publish(ctx, domain.StatusChange{
			EventID:    uuid.NewString(),
			BookingID:  ap.ID,
			OldStatus:  old,
			NewStatus:  domain.Status(ap.Status),
			ClientID:   ap.ClientID,
			TenantID:   ap.BarbershopID,
			OccurredAt: now.UTC(),
		})
	}

	return ap, nil
}
