package workshopControllers

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/luksiny/UrbanHarvestHub/models"
	"github.com/luksiny/UrbanHarvestHub/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type WorkshopRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Instructor  string         `json:"instructor"`
	Date        time.Time      `json:"date"`
	Duration    int            `json:"duration"`
	Location    string         `json:"location"`
	CoordLat    *float64       `json:"coordLat"`
	CoordLng    *float64       `json:"coordLng"`
	Price       float64        `json:"price"`
	Capacity    int            `json:"capacity"`
	Category    string         `json:"category"`
	Image       string         `json:"image"`
	Tags        datatypes.JSON `json:"tags"`
}

func validateWorkshopRequest(req *WorkshopRequest) []string {
	var errs []string
	if title := strings.TrimSpace(req.Title); title == "" || len(title) > 200 {
		errs = append(errs, "Title is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		errs = append(errs, "Description is required")
	}
	if strings.TrimSpace(req.Instructor) == "" {
		errs = append(errs, "Instructor is required")
	}
	if req.Date.IsZero() {
		errs = append(errs, "Valid date is required")
	}
	if req.Duration < 1 {
		errs = append(errs, "Duration must be at least 1 hour")
	}
	if strings.TrimSpace(req.Location) == "" {
		errs = append(errs, "Location is required")
	}
	if req.Price < 0 {
		errs = append(errs, "Price must be a positive number")
	}
	if req.Capacity < 1 {
		errs = append(errs, "Capacity must be at least 1")
	}
	if !models.ValidWorkshopCategory(req.Category) {
		errs = append(errs, "Invalid category")
	}
	return errs
}

func applyWorkshopRequest(w *models.Workshop, req *WorkshopRequest) {
	w.Title = strings.TrimSpace(req.Title)
	w.Description = req.Description
	w.Instructor = req.Instructor
	w.Date = req.Date
	w.Duration = req.Duration
	w.Location = req.Location
	w.CoordLat = req.CoordLat
	w.CoordLng = req.CoordLng
	w.Price = req.Price
	w.Capacity = req.Capacity
	w.Category = req.Category
	w.Image = req.Image
	w.Tags = req.Tags
}

func GetWorkshops(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, ok := utils.ParsePagination(c)
		if !ok {
			return
		}

		query := db.Model(&models.Workshop{})
		if category := c.Query("category"); category != "" {
			if !models.ValidWorkshopCategory(category) {
				utils.ValidationError(c, "Validation failed", []string{"Invalid category"})
				return
			}
			query = query.Where("category = ?", category)
		}
		if search := c.Query("search"); search != "" {
			likePattern := "%" + search + "%"
			query = query.Where(
				"title LIKE ? OR description LIKE ? OR category LIKE ?",
				likePattern, likePattern, likePattern,
			)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to fetch workshops")
			return
		}

		var workshops []models.Workshop
		if err := query.
			Order("date ASC").
			Offset((page - 1) * limit).
			Limit(limit).
			Find(&workshops).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to fetch workshops")
			return
		}

		utils.Paginated(c, http.StatusOK, workshops, utils.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: int(math.Ceil(float64(total) / float64(limit))),
		})
	}
}

// GetWorkshopByID augments the row with live enrollment counts derived
// from non-cancelled bookings.
func GetWorkshopByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid workshop ID")
			return
		}

		var workshop models.Workshop
		if err := db.First(&workshop, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Error(c, http.StatusNotFound, "Workshop not found")
			} else {
				utils.Error(c, http.StatusInternalServerError, "Failed to retrieve workshop")
			}
			return
		}

		var enrolled int64
		if err := db.Model(&models.Booking{}).
			Where("workshop_id = ? AND status <> ?", workshop.ID, models.BookingStatusCancelled).
			Count(&enrolled).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to retrieve workshop")
			return
		}

		utils.Success(c, http.StatusOK, gin.H{
			"id":          workshop.ID,
			"title":       workshop.Title,
			"description": workshop.Description,
			"instructor":  workshop.Instructor,
			"date":        workshop.Date,
			"duration":    workshop.Duration,
			"location":    workshop.Location,
			"coordLat":    workshop.CoordLat,
			"coordLng":    workshop.CoordLng,
			"price":       workshop.Price,
			"capacity":    workshop.Capacity,
			"category":    workshop.Category,
			"image":       workshop.Image,
			"tags":        workshop.Tags,
			"createdAt":   workshop.CreatedAt,
			"updatedAt":   workshop.UpdatedAt,
			"enrolled":    enrolled,
			"available":   int64(workshop.Capacity) - enrolled,
		})
	}
}

func CreateWorkshop(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req WorkshopRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ValidationError(c, "Validation failed", []string{err.Error()})
			return
		}
		if errs := validateWorkshopRequest(&req); len(errs) > 0 {
			utils.ValidationError(c, "Validation failed", errs)
			return
		}

		var workshop models.Workshop
		applyWorkshopRequest(&workshop, &req)
		if err := db.Create(&workshop).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to create workshop")
			return
		}
		utils.SuccessMessage(c, http.StatusCreated, "Workshop created successfully", workshop)
	}
}

func UpdateWorkshop(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req WorkshopRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ValidationError(c, "Validation failed", []string{err.Error()})
			return
		}
		if errs := validateWorkshopRequest(&req); len(errs) > 0 {
			utils.ValidationError(c, "Validation failed", errs)
			return
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid workshop ID")
			return
		}

		var workshop models.Workshop
		if err := db.First(&workshop, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Error(c, http.StatusNotFound, "Workshop not found")
			} else {
				utils.Error(c, http.StatusInternalServerError, "Failed to retrieve workshop")
			}
			return
		}

		applyWorkshopRequest(&workshop, &req)
		if err := db.Save(&workshop).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to update workshop")
			return
		}
		utils.SuccessMessage(c, http.StatusOK, "Workshop updated successfully", workshop)
	}
}

func DeleteWorkshop(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid workshop ID")
			return
		}

		var workshop models.Workshop
		if err := db.First(&workshop, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Error(c, http.StatusNotFound, "Workshop not found")
			} else {
				utils.Error(c, http.StatusInternalServerError, "Failed to retrieve workshop")
			}
			return
		}
		// Bookings cascade with the workshop.
		if err := db.Select("Bookings").Delete(&workshop).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to delete workshop")
			return
		}
		utils.SuccessMessage(c, http.StatusOK, "Workshop deleted successfully", nil)
	}
}
