package routes

import (
	"github.com/gin-gonic/gin"
	eventControllers "github.com/luksiny/UrbanHarvestHub/controllers/event"
	"gorm.io/gorm"
)

// SetupEventRoutes registers the "/api/events/*" endpoints.
func SetupEventRoutes(r *gin.Engine, db *gorm.DB) {
	events := r.Group("/api/events")
	{
		events.GET("", eventControllers.GetEvents(db))
		events.GET("/:id", eventControllers.GetEventByID(db))
		events.POST("", eventControllers.CreateEvent(db))
		events.PUT("/:id", eventControllers.UpdateEvent(db))
		events.DELETE("/:id", eventControllers.DeleteEvent(db))
	}
}
