package appointment

import "github.com/bookmyconsultation/consult-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusBooked    Status = "booked"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusBooked
}

// IsTerminal reports whether no further transition may leave the status.
func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ===============================
// Validations
// ===============================

func CanCancel(current Status) error {
	if current == StatusCancelled {
		return httperr.ErrInvalidState("already_cancelled", "Appointment is already cancelled.")
	}
	if current == StatusCompleted {
		return httperr.ErrInvalidState("already_completed", "Completed appointments cannot be cancelled.")
	}
	return nil
}

func CanComplete(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrInvalidState("invalid_state", "Appointment cannot be completed.")
	}
	return nil
}

// RatableStatuses are the statuses a rating may be submitted against.
// Booked is deliberately included: the source system accepts ratings before
// the consultation takes place.
var RatableStatuses = []Status{StatusBooked, StatusCompleted}

func IsRatable(s Status) bool {
	for _, r := range RatableStatuses {
		if s == r {
			return true
		}
	}
	return false
}
