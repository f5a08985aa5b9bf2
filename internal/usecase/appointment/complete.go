package appointment

import (
	"context"
	"time"

	domain "github.com/bookmyconsultation/consult-scheduler/internal/domain/appointment"
	"github.com/bookmyconsultation/consult-scheduler/internal/httperr"
	"github.com/bookmyconsultation/consult-scheduler/internal/logger"
	"github.com/bookmyconsultation/consult-scheduler/internal/models"
)

type CompleteAppointment struct {
	repo domain.Repository
	now  func() time.Time
}

func NewCompleteAppointment(repo domain.Repository) *CompleteAppointment {
	return &CompleteAppointment{
		repo: repo,
		now:  time.Now,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrNotFound("appointment_not_found", "Appointment not found.")
	}

	if err := domain.Complete(ap, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	logger.Log.Info().
		Uint("appointment_id", ap.ID).
		Msg("appointment completed")

	return ap, nil
}
