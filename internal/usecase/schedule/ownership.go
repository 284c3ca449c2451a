package schedule

import (
	"context"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	"github.com/BruksfildServices01/barber-agenda/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	"github.com/BruksfildServices01/barber-agenda/internal/timezone"
)

// ownedProfessional loads the professional and checks it belongs to tenantID.
func ownedProfessional(
	ctx context.Context,
	catalog schedule.Catalog,
	tenantID uint,
	professionalID uint,
) (*models.Professional, error) {

	p, err := catalog.GetProfessional(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	if p.BarbershopID != tenantID {
		return nil, httperr.ErrAuthorization("forbidden", "professional belongs to another barbershop")
	}
	return p, nil
}

func validDate(date string) error {
	if _, err := timezone.ParseDate(date, timezone.Location("")); err != nil {
		return httperr.ErrValidation("invalid_date", "date must be YYYY-MM-DD")
	}
	return nil
}

func parseInterval(start, end string) (schedule.Interval, error) {
	iv, err := schedule.NewInterval(start, end)
	if err != nil {
		return schedule.Interval{}, httperr.ErrValidation("invalid_time", "times must be HH:MM")
	}
	if !iv.Valid() {
		return schedule.Interval{}, httperr.ErrValidation("invalid_interval", "start must be before end")
	}
	return iv, nil
}

func actorID(role schedule.Actor, professionalID uint) *uint {
	if role != schedule.ActorProfessional {
		return nil
	}
	id := professionalID
	return &id
}

func dispatch(d *audit.Dispatcher, tenantID uint, role schedule.Actor, professionalID uint, action, entity string, entityID uint, meta any) {
	id := entityID
	d.Dispatch(audit.Event{
		BarbershopID: tenantID,
		Actor:        string(role),
		ActorID:      actorID(role, professionalID),
		Action:       action,
		Entity:       entity,
		EntityID:     &id,
		Metadata:     meta,
	})
}
