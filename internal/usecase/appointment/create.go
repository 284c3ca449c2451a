package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-agenda/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/lock"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	"github.com/BruksfildServices01/barber-agenda/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	// TenantID, when set, must own the professional.
	TenantID uint

	ClientID       uint
	ServiceID      uint
	ProfessionalID uint

	DateTime     time.Time
	Observations string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo    domain.Repository
	catalog schedule.Catalog
	locker  lock.Locker
	clock   timezone.Clock
	audit   *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	catalog schedule.Catalog,
	locker lock.Locker,
	clock timezone.Clock,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:    repo,
		catalog: catalog,
		locker:  locker,
		clock:   clock,
		audit:   audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Data / hora
	// --------------------------------------------------
	if in.DateTime.IsZero() {
		return nil, httperr.ErrValidation("invalid_date_or_time", "date_time is required")
	}
	if in.DateTime.Before(uc.clock.Now()) {
		return nil, httperr.ErrValidation("past_date_time", "booking must be in the future")
	}

	// --------------------------------------------------
	// 2️⃣ Serviço, profissional, cliente
	// --------------------------------------------------
	svc, err := uc.catalog.GetServiceByID(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	pro, err := uc.catalog.GetProfessional(ctx, in.ProfessionalID)
	if err != nil {
		return nil, err
	}
	client, err := uc.catalog.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Qualificação e barbearia
	// --------------------------------------------------
	if in.TenantID != 0 && pro.BarbershopID != in.TenantID {
		return nil, httperr.ErrAuthorization("forbidden", "professional belongs to another barbershop")
	}

	qualified, err := uc.catalog.IsQualified(ctx, pro.ID, svc.ID)
	if err != nil {
		return nil, err
	}
	if !qualified {
		return nil, httperr.ErrValidation("professional_not_qualified", "professional does not perform this service")
	}
	if svc.BarbershopID != pro.BarbershopID {
		return nil, httperr.ErrValidation("tenant_mismatch", "service and professional belong to different barbershops")
	}
	if client.BarbershopID != 0 && client.BarbershopID != pro.BarbershopID {
		return nil, httperr.ErrValidation("tenant_mismatch", "client belongs to another barbershop")
	}

	// --------------------------------------------------
	// 4️⃣ Conflito de horário (sob lock)
	// --------------------------------------------------
	at := in.DateTime.UTC()
	dateKey := timezone.DateKey(at, uc.clock.Location())

	unlock, err := uc.locker.Lock(ctx, lock.ProfessionalDayKey(pro.ID, dateKey))
	if err != nil {
		return nil, err
	}
	defer unlock()

	taken, err := uc.repo.ExistsAtDateTime(ctx, pro.ID, at)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrConflict("booking_conflict", "professional already has a booking at this time")
	}

	// --------------------------------------------------
	// 5️⃣ Criação
	// --------------------------------------------------
	ap := &models.Appointment{
		BarbershopID:   pro.BarbershopID,
		ProfessionalID: pro.ID,
		ClientID:       client.ID,
		ServiceID:      svc.ID,
		DateTime:       at,
		Date:           dateKey,
		Status:         string(domain.InitialStatus()),
		Observations:   in.Observations,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		BarbershopID: ap.BarbershopID,
		Actor:        "CLIENT",
		ActorID:      &client.ID,
		Action:       "appointment_created",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
