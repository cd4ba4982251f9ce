package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/luksiny/UrbanHarvestHub/controllers/order"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers the "/api/orders/*" endpoints.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/api/orders")
	{
		orders.POST("", orderControllers.CreateOrderHandler(db))
		orders.GET("/:id", orderControllers.GetOrderHandler(db))
	}
}
