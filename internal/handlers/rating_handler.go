package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bookmyconsultation/consult-scheduler/internal/httperr"
	"github.com/bookmyconsultation/consult-scheduler/internal/httpresp"
	"github.com/bookmyconsultation/consult-scheduler/internal/middleware"
	ucRating "github.com/bookmyconsultation/consult-scheduler/internal/usecase/rating"
)

// ======================================================
// HANDLER
// ======================================================

type RatingHandler struct {
	createUC       *ucRating.CreateRating
	deleteUC       *ucRating.DeleteRating
	listByDoctorUC *ucRating.ListRatingsByDoctor
	listByUserUC   *ucRating.ListRatingsByUser
}

func NewRatingHandler(
	createUC *ucRating.CreateRating,
	deleteUC *ucRating.DeleteRating,
	listByDoctorUC *ucRating.ListRatingsByDoctor,
	listByUserUC *ucRating.ListRatingsByUser,
) *RatingHandler {
	return &RatingHandler{
		createUC:       createUC,
		deleteUC:       deleteUC,
		listByDoctorUC: listByDoctorUC,
		listByUserUC:   listByUserUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SubmitRatingRequest struct {
	DoctorID      uint   `json:"doctor_id" binding:"required"`
	AppointmentID uint   `json:"appointment_id" binding:"required"`
	Rating        int    `json:"rating" binding:"required"`
	Comments      string `json:"comments"`
}

// ======================================================
// SUBMIT
// ======================================================

func (h *RatingHandler) Submit(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	r, err := h.createUC.Execute(c.Request.Context(), ucRating.CreateRatingInput{
		UserID:        userID,
		DoctorID:      req.DoctorID,
		AppointmentID: req.AppointmentID,
		Rating:        req.Rating,
		Comments:      req.Comments,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.Created(c, r)
}

// ======================================================
// LIST
// ======================================================

func (h *RatingHandler) ListByDoctor(c *gin.Context) {
	doctorID, err := strconv.ParseUint(c.Param("doctorId"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "Invalid doctor id.")
		return
	}

	ratings, err := h.listByDoctorUC.Execute(c.Request.Context(), uint(doctorID))
	if err != nil {
		httperr.Internal(c, "failed_to_list_ratings", "Could not list ratings.")
		return
	}

	httpresp.List(c, ratings)
}

func (h *RatingHandler) ListByUser(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	ratings, err := h.listByUserUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_ratings", "Could not list ratings.")
		return
	}

	httpresp.List(c, ratings)
}

// ======================================================
// DELETE
// ======================================================

func (h *RatingHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_rating_id", "Invalid rating id.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), uint(id), userID); err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "Rating deleted successfully."})
}
