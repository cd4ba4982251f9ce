package productController

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/luksiny/UrbanHarvestHub/models"
	"github.com/luksiny/UrbanHarvestHub/utils"
	"gorm.io/gorm"
)

func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, ok := utils.ParsePagination(c)
		if !ok {
			return
		}

		query := db.Model(&models.Product{})

		if category := c.Query("category"); category != "" {
			if !models.ValidProductCategory(category) {
				utils.ValidationError(c, "Validation failed", []string{"Invalid category"})
				return
			}
			query = query.Where("category = ?", category)
		}

		if search := c.Query("search"); search != "" {
			likePattern := "%" + search + "%"
			query = query.Where(
				"name LIKE ? OR description LIKE ? OR category LIKE ?",
				likePattern, likePattern, likePattern,
			)
		}

		if minPriceStr := c.Query("minPrice"); minPriceStr != "" {
			mp, err := strconv.ParseFloat(minPriceStr, 64)
			if err != nil || mp < 0 {
				utils.ValidationError(c, "Validation failed", []string{"Invalid minPrice"})
				return
			}
			query = query.Where("price >= ?", mp)
		}
		if maxPriceStr := c.Query("maxPrice"); maxPriceStr != "" {
			mp, err := strconv.ParseFloat(maxPriceStr, 64)
			if err != nil || mp < 0 {
				utils.ValidationError(c, "Validation failed", []string{"Invalid maxPrice"})
				return
			}
			query = query.Where("price <= ?", mp)
		}

		if organic := c.Query("organic"); organic != "" {
			if organic != "true" && organic != "false" {
				utils.ValidationError(c, "Validation failed", []string{"organic must be true or false"})
				return
			}
			query = query.Where("organic = ?", organic == "true")
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to fetch products")
			return
		}

		switch c.Query("sort") {
		case "price":
			query = query.Order("price ASC")
		case "priceDesc":
			query = query.Order("price DESC")
		case "name":
			query = query.Order("name ASC")
		default:
			query = query.Order("created_at DESC")
		}

		var products []models.Product
		if err := query.
			Offset((page - 1) * limit).
			Limit(limit).
			Find(&products).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to fetch products")
			return
		}

		utils.Paginated(c, http.StatusOK, products, utils.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: int(math.Ceil(float64(total) / float64(limit))),
		})
	}
}
