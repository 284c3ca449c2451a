package audit

import (
	"context"

	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/appointment"
)

// Observer records booking status changes in the audit trail.
type Observer struct {
	dispatcher *Dispatcher
}

func NewObserver(d *Dispatcher) *Observer {
	return &Observer{dispatcher: d}
}

func (o *Observer) OnStatusChange(_ context.Context, ev domain.StatusChange) error {
	id := ev.BookingID
	o.dispatcher.Dispatch(Event{
		BarbershopID: ev.TenantID,
		Actor:        "SYSTEM",
		Action:       "appointment_status_changed",
		Entity:       "appointment",
		EntityID:     &id,
		Metadata: map[string]any{
			"event_id":   ev.EventID,
			"old_status": ev.OldStatus,
			"new_status": ev.NewStatus,
			"client_id":  ev.ClientID,
		},
	})
	return nil
}

// Compile-time check
var _ domain.Observer = (*Observer)(nil)
