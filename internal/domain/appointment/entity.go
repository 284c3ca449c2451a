package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// ApplyStatus moves ap to next and stamps the matching timestamp.
// It returns false without touching ap when next equals the current status.
func ApplyStatus(ap *models.Appointment, next Status, now time.Time) (bool, error) {
	changed, err := CanTransition(Status(ap.Status), next)
	if err != nil || !changed {
		return false, err
	}

	ap.Status = string(next)
	switch next {
	case StatusConfirmed:
		ap.ConfirmedAt = &now
	case StatusCancelled:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}
	return true, nil
}

// Occupied returns the interval a booking holds in availability
// calculations. Bookings are treated as flat-length intervals that do
// not depend on the booked service.
func Occupied(ap *models.Appointment, length time.Duration) (time.Time, time.Time) {
	return ap.DateTime, ap.DateTime.Add(length)
}
