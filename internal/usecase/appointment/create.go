package appointment

import (
	"context"
	"time"

	domain "github.com/bookmyconsultation/consult-scheduler/internal/domain/appointment"
	"github.com/bookmyconsultation/consult-scheduler/internal/httperr"
	"github.com/bookmyconsultation/consult-scheduler/internal/logger"
	"github.com/bookmyconsultation/consult-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID   uint
	DoctorID uint

	// Slot start, already parsed by the transport layer.
	AppointmentDate time.Time

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo         domain.Repository
	slotDuration time.Duration
	now          func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	slotDuration time.Duration,
) *CreateAppointment {
	return &CreateAppointment{
		repo:         repo,
		slotDuration: slotDuration,
		now:          time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if in.UserID == 0 || in.DoctorID == 0 {
		return nil, httperr.ErrValidation("missing_reference", "userId and doctorId are required.")
	}

	if in.AppointmentDate.IsZero() {
		return nil, httperr.ErrValidation("invalid_date", "Appointment date is required.")
	}

	if !in.AppointmentDate.After(uc.now()) {
		return nil, httperr.ErrValidation("date_not_in_future", "Appointment date must be in the future.")
	}

	// Fast path: compare against the doctor's booked slots for the same
	// calendar day. The repository repeats this check atomically with the
	// insert, so a losing racer still fails with slot_unavailable.
	dayStart, dayEnd := domain.DayBounds(in.AppointmentDate)

	starts, err := uc.repo.ListBookedStartsForDay(ctx, in.DoctorID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	if !domain.IsBookable(in.AppointmentDate, starts, uc.slotDuration) {
		return nil, httperr.ErrSlotUnavailable("slot_unavailable", "This time slot is already booked.")
	}

	ap := &models.Appointment{
		UserID:          in.UserID,
		DoctorID:        in.DoctorID,
		AppointmentDate: in.AppointmentDate,
		Status:          string(domain.InitialStatus()),
		Notes:           in.Notes,
	}

	if err := uc.repo.CreateBooked(ctx, ap, uc.slotDuration); err != nil {
		return nil, err
	}

	logger.Log.Info().
		Uint("appointment_id", ap.ID).
		Uint("doctor_id", ap.DoctorID).
		Uint("user_id", ap.UserID).
		Time("slot_start", ap.AppointmentDate).
		Msg("appointment created")

	return ap, nil
}
