package appointment

import "github.com/BruksfildServices01/barber-agenda/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDENTE"
	StatusConfirmed Status = "CONFIRMADO"
	StatusCancelled Status = "CANCELADO"
	StatusCompleted Status = "CONCLUIDO"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// InitialStatus is the status of every new appointment.
func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Transitions
// ===============================

// CanTransition validates current -> requested. changed is false for the
// idempotent X -> X case, which must cause neither a write nor an event.
func CanTransition(current, requested Status) (changed bool, err error) {
	if !requested.Valid() {
		return false, httperr.ErrValidation("invalid_status", "unknown booking status")
	}
	if current == requested {
		return false, nil
	}

	switch requested {
	case StatusCompleted:
		return true, nil

	case StatusConfirmed:
		switch current {
		case StatusPending:
			return true, nil
		case StatusCancelled:
			return false, httperr.ErrValidation("invalid_state", "cannot confirm a cancelled booking")
		default:
			return false, httperr.ErrValidation("invalid_state", "cannot confirm a completed booking")
		}

	case StatusCancelled:
		if current == StatusCompleted {
			return false, httperr.ErrValidation("invalid_state", "cannot cancel a completed booking")
		}
		return true, nil

	default:
		return false, httperr.ErrValidation("invalid_state", "cannot move a booking back to pending")
	}
}
