package productController

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/luksiny/UrbanHarvestHub/models"
	"github.com/luksiny/UrbanHarvestHub/utils"
	"gorm.io/gorm"
)

// UpdateProduct replaces the mutable fields of a product. Admin only.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid product ID")
			return
		}

		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ValidationError(c, "Validation failed", []string{err.Error()})
			return
		}
		if errs := validateProductRequest(&req); len(errs) > 0 {
			utils.ValidationError(c, "Validation failed", errs)
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Error(c, http.StatusNotFound, "Product not found")
			} else {
				utils.Error(c, http.StatusInternalServerError, "Failed to retrieve product")
			}
			return
		}

		product.Name = strings.TrimSpace(req.Name)
		product.Description = req.Description
		product.Price = req.Price
		product.Category = req.Category
		product.Stock = req.Stock
		product.Image = req.Image
		if req.Unit != "" {
			product.Unit = req.Unit
		}
		product.Organic = req.Organic
		product.Tags = req.Tags
		product.Seller = req.Seller

		if err := db.Save(&product).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to update product")
			return
		}
		utils.SuccessMessage(c, http.StatusOK, "Product updated successfully", product)
	}
}
