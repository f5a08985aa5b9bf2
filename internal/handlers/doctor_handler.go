package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bookmyconsultation/consult-scheduler/internal/httperr"
	"github.com/bookmyconsultation/consult-scheduler/internal/httpresp"
	infraRepo "github.com/bookmyconsultation/consult-scheduler/internal/infra/repository"
	"github.com/bookmyconsultation/consult-scheduler/internal/models"
	ucAppointment "github.com/bookmyconsultation/consult-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type DoctorHandler struct {
	repo         *infraRepo.DoctorGormRepository
	availability *ucAppointment.GetAvailability
}

func NewDoctorHandler(
	repo *infraRepo.DoctorGormRepository,
	availability *ucAppointment.GetAvailability,
) *DoctorHandler {
	return &DoctorHandler{
		repo:         repo,
		availability: availability,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type DoctorRequest struct {
	Name           string `json:"name" binding:"required"`
	Specialization string `json:"specialization"`
	Experience     int    `json:"experience"`
	DOB            string `json:"dob"`
	Email          string `json:"email" binding:"required,email"`
	Mobile         string `json:"mobile" binding:"required"`
	Availability   *bool  `json:"availability"`
	AddressID      *uint  `json:"address_id"`
}

// ======================================================
// PUBLIC
// ======================================================

func (h *DoctorHandler) List(c *gin.Context) {
	specialization := c.Query("specialization")

	doctors, err := h.repo.List(c.Request.Context(), specialization)
	if err != nil {
		httperr.Internal(c, "failed_to_list_doctors", "Could not list doctors.")
		return
	}

	httpresp.List(c, doctors)
}

func (h *DoctorHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "Invalid doctor id.")
		return
	}

	doc, err := h.repo.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	httpresp.OK(c, doc)
}

// Availability returns the free slots for a doctor on a given date.
func (h *DoctorHandler) Availability(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "Invalid doctor id.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Query parameter date is required.")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	if _, err := h.repo.GetByID(c.Request.Context(), uint(id)); err != nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), uint(id), date)
	if err != nil {
		httperr.Internal(c, "failed_to_get_availability", "Could not compute availability.")
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// ADMIN
// ======================================================

func (h *DoctorHandler) Create(c *gin.Context) {
	var req DoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	specialization := req.Specialization
	if specialization == "" {
		specialization = models.DefaultSpecialization
	}

	doc := models.Doctor{
		Name:           req.Name,
		Specialization: specialization,
		Experience:     req.Experience,
		Email:          req.Email,
		Mobile:         req.Mobile,
		Availability:   true,
		AddressID:      req.AddressID,
	}

	if req.DOB != "" {
		dob, err := time.Parse("2006-01-02", req.DOB)
		if err != nil {
			httperr.BadRequest(c, "invalid_dob", "Date of birth must be YYYY-MM-DD.")
			return
		}
		doc.DOB = &dob
	}

	if req.Availability != nil {
		doc.Availability = *req.Availability
	}

	if err := h.repo.Create(c.Request.Context(), &doc); err != nil {
		httperr.Internal(c, "failed_to_create_doctor", "Could not create doctor.")
		return
	}

	httpresp.Created(c, doc)
}

func (h *DoctorHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "Invalid doctor id.")
		return
	}

	doc, err := h.repo.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	var req DoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	doc.Name = req.Name
	if req.Specialization != "" {
		doc.Specialization = req.Specialization
	}
	doc.Experience = req.Experience
	doc.Email = req.Email
	doc.Mobile = req.Mobile
	doc.AddressID = req.AddressID
	if req.Availability != nil {
		doc.Availability = *req.Availability
	}
	if req.DOB != "" {
		dob, err := time.Parse("2006-01-02", req.DOB)
		if err != nil {
			httperr.BadRequest(c, "invalid_dob", "Date of birth must be YYYY-MM-DD.")
			return
		}
		doc.DOB = &dob
	}

	if err := h.repo.Update(c.Request.Context(), doc); err != nil {
		httperr.Internal(c, "failed_to_update_doctor", "Could not update doctor.")
		return
	}

	httpresp.OK(c, doc)
}

func (h *DoctorHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "Invalid doctor id.")
		return
	}

	if _, err := h.repo.GetByID(c.Request.Context(), uint(id)); err != nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), uint(id)); err != nil {
		httperr.Internal(c, "failed_to_delete_doctor", "Could not delete doctor.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Doctor deleted successfully."})
}
