package schedule

import (
	"context"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	"github.com/BruksfildServices01/barber-agenda/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/lock"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

// ======================================================
// CREATE
// ======================================================

type CreateExceptionInput struct {
	TenantID       uint
	ProfessionalID uint

	Date      string
	Kind      string
	OpenTime  string
	CloseTime string
	Reason    string

	CreatedBy schedule.Actor
}

type CreateException struct {
	catalog    schedule.Catalog
	exceptions schedule.ExceptionRepository
	locker     lock.Locker
	audit      *audit.Dispatcher
}

func NewCreateException(
	catalog schedule.Catalog,
	exceptions schedule.ExceptionRepository,
	locker lock.Locker,
	audit *audit.Dispatcher,
) *CreateException {
	return &CreateException{
		catalog:    catalog,
		exceptions: exceptions,
		locker:     locker,
		audit:      audit,
	}
}

// Execute stores a date override. A professional/date holds at most one
// active exception.
func (uc *CreateException) Execute(
	ctx context.Context,
	in CreateExceptionInput,
) (*models.ScheduleException, error) {

	if !in.CreatedBy.Valid() {
		return nil, httperr.ErrValidation("invalid_creator", "created_by must be TENANT or PROFESSIONAL")
	}
	if err := validDate(in.Date); err != nil {
		return nil, err
	}

	exc := &models.ScheduleException{
		ProfessionalID: in.ProfessionalID,
		Date:           in.Date,
		Kind:           in.Kind,
		Reason:         in.Reason,
		CreatedBy:      string(in.CreatedBy),
		Active:         true,
	}

	switch in.Kind {
	case models.ExceptionClosed:
	case models.ExceptionSpecialHours:
		if in.OpenTime == "" || in.CloseTime == "" {
			return nil, httperr.ErrValidation("missing_hours", "special hours require open and close times")
		}
		iv, err := parseInterval(in.OpenTime, in.CloseTime)
		if err != nil {
			return nil, err
		}
		exc.OpenTime, exc.CloseTime = iv.Start.String(), iv.End.String()
	default:
		return nil, httperr.ErrValidation("invalid_kind", "kind must be CLOSED or SPECIAL_HOURS")
	}

	if _, err := ownedProfessional(ctx, uc.catalog, in.TenantID, in.ProfessionalID); err != nil {
		return nil, err
	}

	unlock, err := uc.locker.Lock(ctx, lock.ProfessionalDayKey(in.ProfessionalID, in.Date))
	if err != nil {
		return nil, err
	}
	defer unlock()

	existing, err := uc.exceptions.FindActiveException(ctx, in.ProfessionalID, in.Date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrConflict("exception_exists", "an active exception already exists for this date")
	}

	if err := uc.exceptions.CreateException(ctx, exc); err != nil {
		return nil, err
	}

	dispatch(uc.audit, in.TenantID, in.CreatedBy, in.ProfessionalID, "exception_created", "schedule_exception", exc.ID, map[string]any{
		"date": exc.Date,
		"kind": exc.Kind,
	})

	return exc, nil
}

// ======================================================
// REMOVE
// ======================================================

type RemoveException struct {
	catalog    schedule.Catalog
	exceptions schedule.ExceptionRepository
	audit      *audit.Dispatcher
}

func NewRemoveException(
	catalog schedule.Catalog,
	exceptions schedule.ExceptionRepository,
	audit *audit.Dispatcher,
) *RemoveException {
	return &RemoveException{catalog: catalog, exceptions: exceptions, audit: audit}
}

func (uc *RemoveException) Execute(
	ctx context.Context,
	exceptionID uint,
	requester schedule.Requester,
) error {

	exc, err := uc.exceptions.GetException(ctx, exceptionID)
	if err != nil {
		return err
	}
	if !exc.Active {
		return httperr.ErrNotFound("exception_not_found", "schedule exception not found")
	}

	owner, err := uc.catalog.GetProfessional(ctx, exc.ProfessionalID)
	if err != nil {
		return err
	}

	if err := schedule.AuthorizeRemoval(
		requester,
		exc.ProfessionalID,
		owner.BarbershopID,
		schedule.Actor(exc.CreatedBy),
	); err != nil {
		return err
	}

	if err := uc.exceptions.DeactivateException(ctx, exc.ID); err != nil {
		return err
	}

	dispatch(uc.audit, owner.BarbershopID, requester.Role, requester.ProfessionalID, "exception_removed", "schedule_exception", exc.ID, nil)
	return nil
}
