package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/luksiny/UrbanHarvestHub/config"
	seedController "github.com/luksiny/UrbanHarvestHub/controllers/seed"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// catalog (reads public, product mutations admin-gated)
	SetupProductRoutes(r, db, cfg)
	SetupWorkshopRoutes(r, db)
	SetupEventRoutes(r, db)

	// orders and bookings
	SetupOrderRoutes(r, db)
	SetupBookingRoutes(r, db)

	// admin back office (JWT-protected)
	SetupAdminRoutes(r, db, cfg)

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"message": "Urban Harvest Hub API is running",
			})
		})
		api.POST("/seed", seedController.SeedHandler(db))
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
