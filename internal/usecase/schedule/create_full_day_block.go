package schedule

import (
	"context"

	"github.com/BruksfildServices01/barber-agenda/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	"github.com/BruksfildServices01/barber-agenda/internal/timezone"
)

type CreateFullDayBlockInput struct {
	TenantID       uint
	ProfessionalID uint
	Date           string
	Reason         string
}

// CreateFullDayBlock blocks the whole weekly window of the professional
// on one date. It is a tenant operation.
type CreateFullDayBlock struct {
	hours  schedule.WorkingHoursRepository
	create *CreateBlock
}

func NewCreateFullDayBlock(
	hours schedule.WorkingHoursRepository,
	create *CreateBlock,
) *CreateFullDayBlock {
	return &CreateFullDayBlock{hours: hours, create: create}
}

func (uc *CreateFullDayBlock) Execute(
	ctx context.Context,
	in CreateFullDayBlockInput,
) (*models.Block, error) {

	day, err := timezone.ParseDate(in.Date, timezone.Location(""))
	if err != nil {
		return nil, httperr.ErrValidation("invalid_date", "date must be YYYY-MM-DD")
	}

	wh, err := uc.hours.FindActiveWorkingHoursForTenant(
		ctx,
		in.TenantID,
		in.ProfessionalID,
		timezone.ISOWeekday(day),
	)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, httperr.ErrValidation("not_working_day", "professional does not work this day")
	}

	return uc.create.Execute(ctx, CreateBlockInput{
		TenantID:       in.TenantID,
		ProfessionalID: in.ProfessionalID,
		Date:           in.Date,
		StartTime:      wh.OpenTime,
		EndTime:        wh.CloseTime,
		Reason:         in.Reason,
		CreatedBy:      schedule.ActorTenant,
	})
}
