package handlers

import (
	"net/http"
	"strconv"

	"jiperaha/models"
	"jiperaha/services/booking"
	"jiperaha/services/display"
	"jiperaha/services/validation"
	"jiperaha/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// confirmQuery gates destructive API calls.
type confirmQuery struct {
	Confirm bool `form:"confirm"`
}

type listQuery struct {
	Order string `form:"order" binding:"omitempty,oneof=newest oldest"`
}

type validateFieldInput struct {
	Value string `json:"value"`
}

// BookingAPIHandler exposes the booking store and validator as JSON.
type BookingAPIHandler struct {
	Service    booking.BookingService
	Validator  validation.Validator
	ResortName string
}

// NewBookingAPIHandler creates a new BookingAPIHandler.
func NewBookingAPIHandler(svc booking.BookingService, v validation.Validator, resortName string) *BookingAPIHandler {
	return &BookingAPIHandler{Service: svc, Validator: v, ResortName: resortName}
}

// GetBookings returns all bookings, in insertion order unless order=newest.
func (h *BookingAPIHandler) GetBookings(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid query", err.Error())
		return
	}

	bookings := h.Service.GetAll(c.Request.Context())
	if q.Order == "newest" {
		bookings = display.NewestFirst(bookings)
	}
	c.JSON(http.StatusOK, bookings)
}

// GetLatestBooking returns the most recently inserted booking.
func (h *BookingAPIHandler) GetLatestBooking(c *gin.Context) {
	latest, ok := h.Service.Latest(c.Request.Context())
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "no bookings found", "")
		return
	}
	c.JSON(http.StatusOK, latest)
}

// CreateBooking validates a JSON form and stores the booking.
func (h *BookingAPIHandler) CreateBooking(c *gin.Context) {
	var form models.BookingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	form = form.Normalized()

	result := h.Validator.ValidateForm(form)
	if !result.IsValid {
		c.JSON(http.StatusUnprocessableEntity, models.BookingResponse{Errors: fieldValidations(result)})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), form)
	if err != nil {
		getLogger(c).Error("Failed to create booking", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, MsgSaveFailed, err.Error())
		return
	}
	c.JSON(http.StatusCreated, models.BookingResponse{Booking: created})
}

// DeleteBooking removes one booking. Requires confirm=true.
func (h *BookingAPIHandler) DeleteBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id", err.Error())
		return
	}
	if !h.confirmed(c) {
		return
	}

	deleted, err := h.Service.DeleteByID(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, MsgWriteFailed, err.Error())
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "booking not found", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true, "id": id})
}

// ClearBookings removes every booking. Requires confirm=true.
func (h *BookingAPIHandler) ClearBookings(c *gin.Context) {
	if !h.confirmed(c) {
		return
	}
	if err := h.Service.ClearAll(c.Request.Context()); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, MsgWriteFailed, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

// ValidateField checks a single field, e.g. on blur. The value is trimmed the same way
// a submitted form is.
func (h *BookingAPIHandler) ValidateField(c *gin.Context) {
	var input validateFieldInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	field := c.Param("field")
	value := models.NormalizeField(field, input.Value)
	c.JSON(http.StatusOK, fieldValidation(field, h.Validator.ValidateField(field, value)))
}

// GetConfig returns the form rules the UI needs.
func (h *BookingAPIHandler) GetConfig(c *gin.Context) {
	cfg := h.Validator.Config()
	c.JSON(http.StatusOK, models.FormConfig{
		ResortName:      h.ResortName,
		Packages:        cfg.Packages,
		MinNameLength:   cfg.MinNameLength,
		MaxParticipants: cfg.MaxParticipants,
	})
}

func (h *BookingAPIHandler) confirmed(c *gin.Context) bool {
	var q confirmQuery
	if err := c.ShouldBindQuery(&q); err != nil || !q.Confirm {
		utils.JSONError(c, http.StatusPreconditionFailed, "confirmation required", "repeat the request with confirm=true")
		return false
	}
	return true
}

func fieldValidation(field string, r validation.FieldResult) models.FieldValidation {
	return models.FieldValidation{
		Field:   field,
		IsValid: r.IsValid,
		Kind:    string(r.Kind),
		Message: r.Message,
	}
}

func fieldValidations(result validation.FormResult) map[string]models.FieldValidation {
	out := make(map[string]models.FieldValidation, len(result.Errors))
	for field, fe := range result.Errors {
		out[field] = models.FieldValidation{Field: field, Kind: string(fe.Kind), Message: fe.Message}
	}
	return out
}
