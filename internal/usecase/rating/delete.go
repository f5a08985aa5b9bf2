package rating

import (
	"context"

	domain "github.com/bookmyconsultation/consult-scheduler/internal/domain/rating"
	"github.com/bookmyconsultation/consult-scheduler/internal/httperr"
	"github.com/bookmyconsultation/consult-scheduler/internal/logger"
)

type DeleteRating struct {
	store      domain.Store
	dispatcher *Dispatcher
}

func NewDeleteRating(store domain.Store, dispatcher *Dispatcher) *DeleteRating {
	return &DeleteRating{
		store:      store,
		dispatcher: dispatcher,
	}
}

// Execute removes the caller's own rating and triggers a recompute for the
// affected doctor.
func (uc *DeleteRating) Execute(
	ctx context.Context,
	ratingID uint,
	requestingUserID uint,
) error {

	r, err := uc.store.GetByID(ctx, ratingID)
	if err != nil {
		return httperr.ErrNotFound("rating_not_found", "Rating not found.")
	}

	if r.UserID != requestingUserID {
		return httperr.ErrNotFound("rating_not_found", "Rating not found.")
	}

	if err := uc.store.Delete(ctx, ratingID); err != nil {
		return err
	}

	logger.Log.Info().
		Uint("rating_id", ratingID).
		Uint("doctor_id", r.DoctorID).
		Msg("rating deleted")

	uc.dispatcher.Dispatch(r.DoctorID)

	return nil
}
