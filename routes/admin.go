package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/luksiny/UrbanHarvestHub/config"
	adminController "github.com/luksiny/UrbanHarvestHub/controllers/admin"
	orderControllers "github.com/luksiny/UrbanHarvestHub/controllers/order"
	"github.com/luksiny/UrbanHarvestHub/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers the "/api/admin/*" endpoints. Everything
// except login requires a valid admin token.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	admin := r.Group("/api/admin")

	admin.POST("/login", adminController.LoginHandler(db, cfg.JWTSecret, cfg.TokenExpiry))

	// The websocket handshake cannot carry an Authorization header from
	// a browser, so the feed validates a token query parameter itself.
	admin.GET("/orders/ws", orderControllers.OrderFeedHandler(cfg.JWTSecret))

	protected := admin.Group("")
	protected.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		protected.GET("/stats", adminController.StatsHandler(db))
		protected.GET("/orders", adminController.GetAllOrdersHandler(db))
		protected.GET("/orders/export", adminController.ExportOrdersHandler(db))
		protected.PATCH("/orders/:id/status", adminController.UpdateOrderStatusHandler(db))
	}
}
