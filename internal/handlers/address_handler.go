package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookmyconsultation/consult-scheduler/internal/httperr"
	"github.com/bookmyconsultation/consult-scheduler/internal/httpresp"
	"github.com/bookmyconsultation/consult-scheduler/internal/middleware"
	"github.com/bookmyconsultation/consult-scheduler/internal/models"
	"github.com/bookmyconsultation/consult-scheduler/internal/validators"
)

type AddressHandler struct {
	db *gorm.DB
}

func NewAddressHandler(db *gorm.DB) *AddressHandler {
	return &AddressHandler{db: db}
}

// --------- Requests ---------

type AddressRequest struct {
	Address string `json:"address" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	Pincode string `json:"pincode" binding:"required"`
}

// --------- Handlers ---------

func (h *AddressHandler) ListAll(c *gin.Context) {
	var addresses []models.Address
	if err := h.db.Find(&addresses).Error; err != nil {
		httperr.Internal(c, "failed_to_list_addresses", "Could not list addresses.")
		return
	}
	httpresp.List(c, addresses)
}

func (h *AddressHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var addresses []models.Address
	if err := h.db.Where("user_id = ?", userID).Find(&addresses).Error; err != nil {
		httperr.Internal(c, "failed_to_list_addresses", "Could not list addresses.")
		return
	}
	httpresp.List(c, addresses)
}

func (h *AddressHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !validators.IsPincode(req.Pincode) {
		httperr.BadRequest(c, "invalid_pincode", "Pincode must be numeric and 4 to 6 digits.")
		return
	}

	address := models.Address{
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		Pincode: req.Pincode,
		UserID:  &userID,
	}

	if err := h.db.Create(&address).Error; err != nil {
		httperr.Internal(c, "failed_to_create_address", "Could not create address.")
		return
	}

	httpresp.Created(c, address)
}

func (h *AddressHandler) GetByID(c *gin.Context) {
	address, ok := h.ownedAddress(c)
	if !ok {
		return
	}
	httpresp.OK(c, address)
}

func (h *AddressHandler) Update(c *gin.Context) {
	address, ok := h.ownedAddress(c)
	if !ok {
		return
	}

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !validators.IsPincode(req.Pincode) {
		httperr.BadRequest(c, "invalid_pincode", "Pincode must be numeric and 4 to 6 digits.")
		return
	}

	address.Address = req.Address
	address.City = req.City
	address.State = req.State
	address.Pincode = req.Pincode

	if err := h.db.Save(address).Error; err != nil {
		httperr.Internal(c, "failed_to_update_address", "Could not update address.")
		return
	}

	httpresp.OK(c, address)
}

func (h *AddressHandler) Delete(c *gin.Context) {
	address, ok := h.ownedAddress(c)
	if !ok {
		return
	}

	if err := h.db.Delete(address).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_address", "Could not delete address.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Address deleted successfully."})
}

// ownedAddress loads the path address and enforces ownership. Writes the
// error response itself when it returns false.
func (h *AddressHandler) ownedAddress(c *gin.Context) (*models.Address, bool) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_address_id", "Invalid address id.")
		return nil, false
	}

	var address models.Address
	if err := h.db.
		Where("id = ? AND user_id = ?", id, userID).
		First(&address).Error; err != nil {
		httperr.NotFound(c, "address_not_found", "Address not found.")
		return nil, false
	}

	return &address, true
}
