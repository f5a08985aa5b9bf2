package rating

import (
	"context"

	"github.com/bookmyconsultation/consult-scheduler/internal/models"
)

type Store interface {
	ListByDoctor(
		ctx context.Context,
		doctorID uint,
	) ([]models.Rating, error)

	ListByUser(
		ctx context.Context,
		userID uint,
	) ([]models.Rating, error)

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Rating, error)

	GetByAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Rating, error)

	// GetRatableAppointment loads the appointment matching the exact
	// (appointmentID, userID, doctorID) tuple, or nil when absent.
	GetRatableAppointment(
		ctx context.Context,
		appointmentID uint,
		userID uint,
		doctorID uint,
	) (*models.Appointment, error)

	Create(
		ctx context.Context,
		r *models.Rating,
	) error

	Delete(
		ctx context.Context,
		id uint,
	) error
}

// DoctorStore is update-only from the aggregator's point of view: it never
// creates or deletes doctor records.
type DoctorStore interface {
	UpdateRating(
		ctx context.Context,
		doctorID uint,
		value float64,
	) error
}
