package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bookmyconsultation/consult-scheduler/internal/httperr"
	"github.com/bookmyconsultation/consult-scheduler/internal/httpresp"
	"github.com/bookmyconsultation/consult-scheduler/internal/middleware"
	ucAppointment "github.com/bookmyconsultation/consult-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC   *ucAppointment.CreateAppointment
	cancelUC   *ucAppointment.CancelAppointment
	completeUC *ucAppointment.CompleteAppointment
	listUC     *ucAppointment.ListAppointmentsByUser
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	listUC *ucAppointment.ListAppointmentsByUser,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:   createUC,
		cancelUC:   cancelUC,
		completeUC: completeUC,
		listUC:     listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	DoctorID        uint   `json:"doctor_id" binding:"required"`
	AppointmentDate string `json:"appointment_date" binding:"required"` // RFC 3339
	Notes           string `json:"notes"`
}

// ======================================================
// BOOK
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	date, err := time.Parse(time.RFC3339, req.AppointmentDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Appointment date must be RFC 3339.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		UserID:          userID,
		DoctorID:        req.DoctorID,
		AppointmentDate: date,
		Notes:           req.Notes,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	aps, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), uint(id), userID)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message":     "Appointment cancelled successfully.",
		"appointment": ap,
	})
}

// ======================================================
// COMPLETE
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), uint(id))
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, ap)
}
