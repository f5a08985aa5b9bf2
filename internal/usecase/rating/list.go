package rating

import (
	"context"

	domain "github.com/bookmyconsultation/consult-scheduler/internal/domain/rating"
	"github.com/bookmyconsultation/consult-scheduler/internal/models"
)

type ListRatingsByDoctor struct {
	store domain.Store
}

func NewListRatingsByDoctor(store domain.Store) *ListRatingsByDoctor {
	return &ListRatingsByDoctor{store: store}
}

func (uc *ListRatingsByDoctor) Execute(
	ctx context.Context,
	doctorID uint,
) ([]models.Rating, error) {
	return uc.store.ListByDoctor(ctx, doctorID)
}

type ListRatingsByUser struct {
	store domain.Store
}

func NewListRatingsByUser(store domain.Store) *ListRatingsByUser {
	return &ListRatingsByUser{store: store}
}

func (uc *ListRatingsByUser) Execute(
	ctx context.Context,
	userID uint,
) ([]models.Rating, error) {
	return uc.store.ListByUser(ctx, userID)
}
