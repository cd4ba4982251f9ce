package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/luksiny/UrbanHarvestHub/config"
	productController "github.com/luksiny/UrbanHarvestHub/controllers/product"
	"github.com/luksiny/UrbanHarvestHub/middleware"
	"gorm.io/gorm"
)

// SetupProductRoutes registers the "/api/products/*" endpoints.
// Reads are public; mutations require an admin token.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	products := r.Group("/api/products")
	{
		products.GET("", productController.GetProducts(db))
		products.GET("/:id", productController.GetProductByID(db))
	}

	protected := r.Group("/api/products")
	protected.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		protected.POST("", productController.CreateProduct(db))
		protected.PUT("/:id", productController.UpdateProduct(db))
		protected.DELETE("/:id", productController.DeleteProduct(db))
	}
}
