package productController

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/luksiny/UrbanHarvestHub/models"
	"github.com/luksiny/UrbanHarvestHub/utils"
	"gorm.io/gorm"
)

// DeleteProduct removes a product. Products referenced by historical
// order items are protected by the RESTRICT foreign key; the attempt
// is reported as a client error, not a server fault.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid product ID")
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

		var referenced int64
		if err := db.Model(&models.OrderItem{}).
			Where("product_id = ?", product.ID).
			Count(&referenced).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to delete product")
			return
		}
		if referenced > 0 {
			utils.Error(c, http.StatusBadRequest,
				"Product has order history and cannot be deleted")
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to delete product")
			return
		}
		utils.SuccessMessage(c, http.StatusOK, "Product deleted successfully", nil)
	}
}
