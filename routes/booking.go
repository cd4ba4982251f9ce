package routes

import (
	"github.com/gin-gonic/gin"
	bookingControllers "github.com/luksiny/UrbanHarvestHub/controllers/booking"
	"gorm.io/gorm"
)

// SetupBookingRoutes registers the "/api/bookings/*" endpoints.
func SetupBookingRoutes(r *gin.Engine, db *gorm.DB) {
	bookings := r.Group("/api/bookings")
	{
		bookings.POST("", bookingControllers.CreateBookingHandler(db))
		bookings.GET("", bookingControllers.GetBookingsHandler(db))
		bookings.GET("/:id", bookingControllers.GetBookingHandler(db))
		bookings.PUT("/:id", bookingControllers.UpdateBookingHandler(db))
		bookings.DELETE("/:id", bookingControllers.DeleteBookingHandler(db))
	}
}
