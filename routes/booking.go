package routes

import (
	"jiperaha/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the JSON endpoints of the booking store.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/config", hb.GetConfigHandler)
		api.POST("/validate/:field", hb.ValidateFieldHandler)

		api.GET("/bookings", hb.GetBookingsHandler)
		api.GET("/bookings/latest", hb.GetLatestBookingHandler)
		api.POST("/bookings", hb.CreateBookingHandler)
		api.DELETE("/bookings", hb.ClearBookingsAPIHandler)
		api.DELETE("/bookings/:id", hb.DeleteBookingAPIHandler)
	}
}
