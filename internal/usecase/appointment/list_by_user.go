package appointment

import (
	"context"

	domain "github.com/bookmyconsultation/consult-scheduler/internal/domain/appointment"
	"github.com/bookmyconsultation/consult-scheduler/internal/models"
)

type ListAppointmentsByUser struct {
	repo domain.Repository
}

func NewListAppointmentsByUser(repo domain.Repository) *ListAppointmentsByUser {
	return &ListAppointmentsByUser{repo: repo}
}

// Execute returns the user's appointments ordered by appointment date
// ascending.
func (uc *ListAppointmentsByUser) Execute(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {
	return uc.repo.ListByUser(ctx, userID)
}
