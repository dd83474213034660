package handlers

import (
	"net/http"
	"strconv"
	"time"

	"jiperaha/models"
	"jiperaha/services/booking"
	"jiperaha/services/display"
	"jiperaha/services/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// User-facing messages. Only these fixed strings are ever shown as flashes.
const (
	MsgBooked      = "Booking successful! Thank you for choosing Jiperaha Resort."
	MsgDeleted     = "Booking deleted."
	MsgCleared     = "All bookings have been cleared."
	MsgNotFound    = "That booking no longer exists."
	MsgSaveFailed  = "Could not save your booking. Please try again."
	MsgWriteFailed = "Could not update your bookings. Please try again."
	MsgFixErrors   = "Please correct the highlighted fields."
)

var flashMessages = map[string]string{
	"booked":   MsgBooked,
	"deleted":  MsgDeleted,
	"cleared":  MsgCleared,
	"notfound": MsgNotFound,
}

// BookingHandler serves the reservation form and the bookings page.
type BookingHandler struct {
	Service    booking.BookingService
	Validator  validation.Validator
	ResortName string
	Clock      func() time.Time
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService, v validation.Validator, resortName string) *BookingHandler {
	return &BookingHandler{
		Service:    svc,
		Validator:  v,
		ResortName: resortName,
		Clock:      time.Now,
	}
}

// ShowForm renders an empty reservation form.
func (h *BookingHandler) ShowForm(c *gin.Context) {
	h.renderForm(c, http.StatusOK, models.BookingForm{}, nil, "")
}

// SubmitForm validates the posted form and stores the booking.
func (h *BookingHandler) SubmitForm(c *gin.Context) {
	logger := getLogger(c)

	var form models.BookingForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Warn("Failed to bind booking form", zap.Error(err))
	}
	form = form.Normalized()

	result := h.Validator.ValidateForm(form)
	if !result.IsValid {
		logger.Debug("Booking form rejected", zap.Int("errors", len(result.Errors)))
		h.renderForm(c, http.StatusBadRequest, form, errorMessages(result), MsgFixErrors)
		return
	}

	if _, err := h.Service.Create(c.Request.Context(), form); err != nil {
		logger.Error("Failed to create booking", zap.Error(err))
		h.renderForm(c, http.StatusInternalServerError, form, nil, MsgSaveFailed)
		return
	}

	c.Redirect(http.StatusSeeOther, "/bookings?status=booked")
}

// ListBookings renders every booking newest first plus the most recent one.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	message := flashMessages[c.Query("status")]
	messageType := "success"
	if c.Query("status") == "notfound" {
		messageType = "error"
	}
	h.renderBookings(c, http.StatusOK, message, messageType)
}

// DeleteBooking removes one booking once the guest has confirmed.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/bookings?status=notfound")
		return
	}

	if c.PostForm("confirm") != "yes" {
		h.renderConfirm(c, "Are you sure you want to delete this booking?", c.Request.URL.Path)
		return
	}

	deleted, err := h.Service.DeleteByID(c.Request.Context(), id)
	if err != nil {
		getLogger(c).Error("Failed to delete booking", zap.Int64("id", id), zap.Error(err))
		h.renderBookings(c, http.StatusInternalServerError, MsgWriteFailed, "error")
		return
	}
	if !deleted {
		c.Redirect(http.StatusSeeOther, "/bookings?status=notfound")
		return
	}
	c.Redirect(http.StatusSeeOther, "/bookings?status=deleted")
}

// ClearBookings removes every booking once the guest has confirmed.
func (h *BookingHandler) ClearBookings(c *gin.Context) {
	if c.PostForm("confirm") != "yes" {
		h.renderConfirm(c, "Are you sure you want to delete ALL bookings? This cannot be undone.", c.Request.URL.Path)
		return
	}

	if err := h.Service.ClearAll(c.Request.Context()); err != nil {
		getLogger(c).Error("Failed to clear bookings", zap.Error(err))
		h.renderBookings(c, http.StatusInternalServerError, MsgWriteFailed, "error")
		return
	}
	c.Redirect(http.StatusSeeOther, "/bookings?status=cleared")
}

func (h *BookingHandler) renderForm(c *gin.Context, status int, form models.BookingForm, errs map[string]string, message string) {
	if errs == nil {
		errs = map[string]string{}
	}
	cfg := h.Validator.Config()
	c.HTML(status, "form.html", gin.H{
		"Title":           "Book your stay",
		"Resort":          h.ResortName,
		"Form":            form,
		"Errors":          errs,
		"Packages":        cfg.Packages,
		"MaxParticipants": cfg.MaxParticipants,
		"Today":           h.now().Format(validation.DateLayout),
		"Message":         message,
		"MessageType":     "error",
	})
}

func (h *BookingHandler) renderBookings(c *gin.Context, status int, message, messageType string) {
	page := display.BuildPage(h.Service.GetAll(c.Request.Context()))
	c.HTML(status, "bookings.html", gin.H{
		"Title":        "My bookings",
		"Resort":       h.ResortName,
		"Page":         page,
		"EmptyMessage": display.EmptyMessage,
		"Message":      message,
		"MessageType":  messageType,
	})
}

func (h *BookingHandler) renderConfirm(c *gin.Context, prompt, action string) {
	c.HTML(http.StatusOK, "confirm.html", gin.H{
		"Title":  "Please confirm",
		"Resort": h.ResortName,
		"Prompt": prompt,
		"Action": action,
	})
}

func (h *BookingHandler) now() time.Time {
	if h.Clock == nil {
		return time.Now()
	}
	return h.Clock()
}

func errorMessages(result validation.FormResult) map[string]string {
	msgs := make(map[string]string, len(result.Errors))
	for field, fe := range result.Errors {
		msgs[field] = fe.Message
	}
	return msgs
}
