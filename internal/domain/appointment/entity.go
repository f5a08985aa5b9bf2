package appointment

import (
	"time"

	"github.com/bookmyconsultation/consult-scheduler/internal/httperr"
	"github.com/bookmyconsultation/consult-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel transitions a booked appointment to cancelled. Past appointments
// cannot be cancelled regardless of status.
func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	if ap.AppointmentDate.Before(now) {
		return httperr.ErrInvalidState("appointment_in_past", "Past appointments cannot be cancelled.")
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// Complete transitions a booked appointment to completed. No date check:
// completion may be recorded at any time.
func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}
