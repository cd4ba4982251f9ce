package productController

import (
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/luksiny/UrbanHarvestHub/models"
	"github.com/luksiny/UrbanHarvestHub/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProductRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	Category    string         `json:"category"`
	Stock       int            `json:"stock"`
	Image       string         `json:"image"`
	Unit        string         `json:"unit"`
	Organic     bool           `json:"organic"`
	Tags        datatypes.JSON `json:"tags"`
	Seller      string         `json:"seller"`
}

func validateProductRequest(req *ProductRequest) []string {
	var errs []string
	if name := strings.TrimSpace(req.Name); name == "" || len(name) > 200 {
		errs = append(errs, "Name is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		errs = append(errs, "Description is required")
	}
	if req.Price < 0 || math.IsNaN(req.Price) {
		errs = append(errs, "Price must be a positive number")
	}
	if !models.ValidProductCategory(req.Category) {
		errs = append(errs, "Invalid category")
	}
	if req.Stock < 0 {
		errs = append(errs, "Stock must be a non-negative integer")
	}
	if req.Unit != "" && !models.ValidProductUnit(req.Unit) {
		errs = append(errs, "Invalid unit")
	}
	return errs
}

// CreateProduct creates a new catalog product. Admin only.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ValidationError(c, "Validation failed", []string{err.Error()})
			return
		}
		if errs := validateProductRequest(&req); len(errs) > 0 {
			utils.ValidationError(c, "Validation failed", errs)
			return
		}

		unit := req.Unit
		if unit == "" {
			unit = "piece"
		}
		product := models.Product{
			Name:        strings.TrimSpace(req.Name),
			Description: req.Description,
			Price:       req.Price,
			Category:    req.Category,
			Stock:       req.Stock,
			Image:       req.Image,
			Unit:        unit,
			Organic:     req.Organic,
			Tags:        req.Tags,
			Seller:      req.Seller,
		}
		if err := db.Create(&product).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to create product")
			return
		}
		utils.SuccessMessage(c, http.StatusCreated, "Product created successfully", product)
	}
}
