package rating

import (
	"context"

	apDomain "github.com/bookmyconsultation/consult-scheduler/internal/domain/appointment"
	domain "github.com/bookmyconsultation/consult-scheduler/internal/domain/rating"
	"github.com/bookmyconsultation/consult-scheduler/internal/httperr"
	"github.com/bookmyconsultation/consult-scheduler/internal/logger"
	"github.com/bookmyconsultation/consult-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateRatingInput struct {
	UserID        uint
	DoctorID      uint
	AppointmentID uint
	Rating        int
	Comments      string
}

// ======================================================
// USE CASE
// ======================================================

type CreateRating struct {
	store      domain.Store
	dispatcher *Dispatcher
}

func NewCreateRating(store domain.Store, dispatcher *Dispatcher) *CreateRating {
	return &CreateRating{
		store:      store,
		dispatcher: dispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateRating) Execute(
	ctx context.Context,
	in CreateRatingInput,
) (*models.Rating, error) {

	if in.Rating < 1 || in.Rating > 5 {
		return nil, httperr.ErrValidation("rating_out_of_range", "Rating must be between 1 and 5.")
	}

	ap, err := uc.store.GetRatableAppointment(ctx, in.AppointmentID, in.UserID, in.DoctorID)
	if err != nil {
		return nil, err
	}
	if ap == nil || !apDomain.IsRatable(apDomain.Status(ap.Status)) {
		return nil, httperr.ErrValidation("appointment_not_ratable", "Cannot rate: appointment not found or cancelled.")
	}

	existing, err := uc.store.GetByAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrValidation("already_rated", "You have already rated this appointment.")
	}

	r := &models.Rating{
		UserID:        in.UserID,
		DoctorID:      in.DoctorID,
		AppointmentID: in.AppointmentID,
		Rating:        in.Rating,
		Comments:      in.Comments,
	}

	if err := uc.store.Create(ctx, r); err != nil {
		return nil, err
	}

	logger.Log.Info().
		Uint("rating_id", r.ID).
		Uint("doctor_id", r.DoctorID).
		Uint("user_id", r.UserID).
		Msg("rating created")

	// The rating is durable at this point. The recompute is a separate,
	// independently-failable step; its failure never unwinds the rating.
	uc.dispatcher.Dispatch(in.DoctorID)

	return r, nil
}
