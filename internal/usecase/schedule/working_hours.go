package schedule

import (
	"context"

	"github.com/BruksfildServices01/barber-agenda/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

type WorkingHoursInput struct {
	TenantID       uint
	ProfessionalID uint

	Weekday    int
	OpenTime   string
	CloseTime  string
	LunchStart string
	LunchEnd   string
}

// ======================================================
// SET
// ======================================================

type SetWorkingHours struct {
	catalog schedule.Catalog
	hours   schedule.WorkingHoursRepository
}

func NewSetWorkingHours(catalog schedule.Catalog, hours schedule.WorkingHoursRepository) *SetWorkingHours {
	return &SetWorkingHours{catalog: catalog, hours: hours}
}

// Execute replaces (and reactivates) the hours of one weekday.
func (uc *SetWorkingHours) Execute(
	ctx context.Context,
	in WorkingHoursInput,
) (*models.WorkingHours, error) {

	if in.Weekday < 1 || in.Weekday > 7 {
		return nil, httperr.ErrValidation("invalid_weekday", "weekday must be 1 (Monday) to 7 (Sunday)")
	}

	day, err := parseInterval(in.OpenTime, in.CloseTime)
	if err != nil {
		return nil, err
	}

	wh := &models.WorkingHours{
		ProfessionalID: in.ProfessionalID,
		Weekday:        in.Weekday,
		OpenTime:       day.Start.String(),
		CloseTime:      day.End.String(),
		Active:         true,
	}

	if (in.LunchStart == "") != (in.LunchEnd == "") {
		return nil, httperr.ErrValidation("invalid_lunch", "lunch needs both start and end")
	}
	if in.LunchStart != "" {
		lunch, err := parseInterval(in.LunchStart, in.LunchEnd)
		if err != nil {
			return nil, err
		}
		if lunch.Start < day.Start || lunch.End > day.End {
			return nil, httperr.ErrValidation("invalid_lunch", "lunch must be inside working hours")
		}
		wh.LunchStart, wh.LunchEnd = lunch.Start.String(), lunch.End.String()
	}

	if _, err := ownedProfessional(ctx, uc.catalog, in.TenantID, in.ProfessionalID); err != nil {
		return nil, err
	}

	if err := uc.hours.UpsertWorkingHours(ctx, wh); err != nil {
		return nil, err
	}
	return wh, nil
}

// ======================================================
// DEACTIVATE / LIST
// ======================================================

type DeactivateWorkingHours struct {
	catalog schedule.Catalog
	hours   schedule.WorkingHoursRepository
}

func NewDeactivateWorkingHours(catalog schedule.Catalog, hours schedule.WorkingHoursRepository) *DeactivateWorkingHours {
	return &DeactivateWorkingHours{catalog: catalog, hours: hours}
}

func (uc *DeactivateWorkingHours) Execute(
	ctx context.Context,
	tenantID uint,
	professionalID uint,
	weekday int,
) error {
	if weekday < 1 || weekday > 7 {
		return httperr.ErrValidation("invalid_weekday", "weekday must be 1 (Monday) to 7 (Sunday)")
	}
	if _, err := ownedProfessional(ctx, uc.catalog, tenantID, professionalID); err != nil {
		return err
	}
	return uc.hours.DeactivateWorkingHours(ctx, professionalID, weekday)
}

type ListWorkingHours struct {
	catalog schedule.Catalog
	hours   schedule.WorkingHoursRepository
}

func NewListWorkingHours(catalog schedule.Catalog, hours schedule.WorkingHoursRepository) *ListWorkingHours {
	return &ListWorkingHours{catalog: catalog, hours: hours}
}

func (uc *ListWorkingHours) Execute(
	ctx context.Context,
	tenantID uint,
	professionalID uint,
) ([]models.WorkingHours, error) {
	if _, err := ownedProfessional(ctx, uc.catalog, tenantID, professionalID); err != nil {
		return nil, err
	}
	return uc.hours.ListWorkingHours(ctx, professionalID)
}
