package appointment

import (
	"context"
	"time"

	domain "github.com/bookmyconsultation/consult-scheduler/internal/domain/appointment"
	"github.com/bookmyconsultation/consult-scheduler/internal/httperr"
	"github.com/bookmyconsultation/consult-scheduler/internal/logger"
	"github.com/bookmyconsultation/consult-scheduler/internal/models"
)

type CancelAppointment struct {
	repo domain.Repository
	now  func() time.Time
}

func NewCancelAppointment(repo domain.Repository) *CancelAppointment {
	return &CancelAppointment{
		repo: repo,
		now:  time.Now,
	}
}

// Execute cancels the caller's own appointment. An appointment belonging to
// another user is reported as not found, not as forbidden.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	requestingUserID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetForUser(ctx, appointmentID, requestingUserID)
	if err != nil {
		return nil, httperr.ErrNotFound("appointment_not_found", "Appointment not found or does not belong to this user.")
	}

	if err := domain.Cancel(ap, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	logger.Log.Info().
		Uint("appointment_id", ap.ID).
		Uint("user_id", requestingUserID).
		Msg("appointment cancelled")

	return ap, nil
}
