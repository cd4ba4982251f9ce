package routes

import (
	"github.com/gin-gonic/gin"
	workshopControllers "github.com/luksiny/UrbanHarvestHub/controllers/workshop"
	"gorm.io/gorm"
)

// SetupWorkshopRoutes registers the "/api/workshops/*" endpoints.
func SetupWorkshopRoutes(r *gin.Engine, db *gorm.DB) {
	workshops := r.Group("/api/workshops")
	{
		workshops.GET("", workshopControllers.GetWorkshops(db))
		workshops.GET("/:id", workshopControllers.GetWorkshopByID(db))
		workshops.POST("", workshopControllers.CreateWorkshop(db))
		workshops.PUT("/:id", workshopControllers.UpdateWorkshop(db))
		workshops.DELETE("/:id", workshopControllers.DeleteWorkshop(db))
	}
}
