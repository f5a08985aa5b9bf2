package rating

import (
	"context"

	domain "github.com/bookmyconsultation/consult-scheduler/internal/domain/rating"
	"github.com/bookmyconsultation/consult-scheduler/internal/logger"
)

// Aggregator recomputes a doctor's derived mean rating from the full current
// rating set. Idempotent and order-insensitive: running it after any
// interleaving of rating writes converges, because it always reads
// everything and overwrites the stored value.
type Aggregator struct {
	ratings domain.Store
	doctors domain.DoctorStore
}

func NewAggregator(ratings domain.Store, doctors domain.DoctorStore) *Aggregator {
	return &Aggregator{
		ratings: ratings,
		doctors: doctors,
	}
}

// Recompute returns the persisted mean. A load or persist failure is
// returned to the caller; it never undoes the rating write that triggered
// it.
func (a *Aggregator) Recompute(ctx context.Context, doctorID uint) (float64, error) {

	ratings, err := a.ratings.ListByDoctor(ctx, doctorID)
	if err != nil {
		return 0, err
	}

	values := make([]int, 0, len(ratings))
	for _, r := range ratings {
		values = append(values, r.Rating)
	}

	mean := domain.Average(values)

	if err := a.doctors.UpdateRating(ctx, doctorID, mean); err != nil {
		return 0, err
	}

	logger.Log.Info().
		Uint("doctor_id", doctorID).
		Float64("rating", mean).
		Int("rating_count", len(values)).
		Msg("doctor rating recomputed")

	return mean, nil
}
