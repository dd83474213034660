// File: jiperaha/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Page endpoints
	ShowFormHandler      gin.HandlerFunc
	SubmitFormHandler    gin.HandlerFunc
	ListBookingsHandler  gin.HandlerFunc
	DeleteBookingHandler gin.HandlerFunc
	ClearBookingsHandler gin.HandlerFunc

	// JSON endpoints
	GetBookingsHandler      gin.HandlerFunc
	GetLatestBookingHandler gin.HandlerFunc
	CreateBookingHandler    gin.HandlerFunc
	DeleteBookingAPIHandler gin.HandlerFunc
	ClearBookingsAPIHandler gin.HandlerFunc
	ValidateFieldHandler    gin.HandlerFunc
	GetConfigHandler        gin.HandlerFunc

	// Health endpoint
	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle wires page and API handlers over the same store and validator.
func NewHandlerBundle(pages *BookingHandler, api *BookingAPIHandler) *HandlerBundle {
	return &HandlerBundle{
		ShowFormHandler:      pages.ShowForm,
		SubmitFormHandler:    pages.SubmitForm,
		ListBookingsHandler:  pages.ListBookings,
		DeleteBookingHandler: pages.DeleteBooking,
		ClearBookingsHandler: pages.ClearBookings,

		GetBookingsHandler:      api.GetBookings,
		GetLatestBookingHandler: api.GetLatestBooking,
		CreateBookingHandler:    api.CreateBooking,
		DeleteBookingAPIHandler: api.DeleteBooking,
		ClearBookingsAPIHandler: api.ClearBookings,
		ValidateFieldHandler:    api.ValidateField,
		GetConfigHandler:        api.GetConfig,

		HealthHandler: HealthHandler,
	}
}
