package appointment

import (
	"context"
	"time"

	"github.com/bookmyconsultation/consult-scheduler/internal/models"
)

type Repository interface {
	// -------- Lookup --------
	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	GetForUser(
		ctx context.Context,
		id uint,
		userID uint,
	) (*models.Appointment, error)

	ListByUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)

	// ListBookedStartsForDay returns the slot start times of every booked
	// appointment for the doctor within [dayStart, dayEnd).
	ListBookedStartsForDay(
		ctx context.Context,
		doctorID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]time.Time, error)

	// -------- Mutation --------

	// CreateBooked inserts the appointment, re-checking the doctor's booked
	// slots for the same day atomically with the insert. Returns a
	// slot_unavailable business error when a conflicting slot exists.
	CreateBooked(
		ctx context.Context,
		ap *models.Appointment,
		slotDuration time.Duration,
	) error

	Update(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
