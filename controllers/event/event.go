package eventControllers

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

type EventRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Date        time.Time      `json:"date"`
	EndDate     *time.Time     `json:"endDate"`
	Location    string         `json:"location"`
	CoordLat    *float64       `json:"coordLat"`
	CoordLng    *float64       `json:"coordLng"`
	Price       float64        `json:"price"`
	Capacity    *int           `json:"capacity"`
	Category    string         `json:"category"`
	Image       string         `json:"image"`
	Tags        datatypes.JSON `json:"tags"`
	Organizer   string         `json:"organizer"`
}

func validateEventRequest(req *EventRequest) []string {
	var errs []string
	if title := strings.TrimSpace(req.Title); title == "" || len(title) > 200 {
		errs = append(errs, "Title is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		errs = append(errs, "Description is required")
	}
	if req.Date.IsZero() {
		errs = append(errs, "Valid date is required")
	}
	if strings.TrimSpace(req.Location) == "" {
		errs = append(errs, "Location is required")
	}
	if req.Price < 0 {
		errs = append(errs, "Price must be a positive number")
	}
	if !models.ValidEventCategory(req.Category) {
		errs = append(errs, "Invalid category")
	}
	return errs
}

func applyEventRequest(e *models.Event, req *EventRequest) {
	e.Title = strings.TrimSpace(req.Title)
	e.Description = req.Description
	e.Date = req.Date
	e.EndDate = req.EndDate
	e.Location = req.Location
	e.CoordLat = req.CoordLat
	e.CoordLng = req.CoordLng
	e.Price = req.Price
	e.Capacity = req.Capacity
	e.Category = req.Category
	e.Image = req.Image
	e.Tags = req.Tags
	e.Organizer = req.Organizer
}

func GetEvents(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, ok := utils.ParsePagination(c)
		if !ok {
			return
		}

		query := db.Model(&models.Event{})
		if category := c.Query("category"); category != "" {
			if !models.ValidEventCategory(category) {
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
			utils.Error(c, http.StatusInternalServerError, "Failed to fetch events")
			return
		}

		var events []models.Event
		if err := query.
			Order("date ASC").
			Offset((page - 1) * limit).
			Limit(limit).
			Find(&events).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to fetch events")
			return
		}

		utils.Paginated(c, http.StatusOK, events, utils.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: int(math.Ceil(float64(total) / float64(limit))),
		})
	}
}

func GetEventByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid event ID")
			return
		}

		var event models.Event
		if err := db.First(&event, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Error(c, http.StatusNotFound, "Event not found")
			} else {
				utils.Error(c, http.StatusInternalServerError, "Failed to retrieve event")
			}
			return
		}
		utils.Success(c, http.StatusOK, event)
	}
}

func CreateEvent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req EventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ValidationError(c, "Validation failed", []string{err.Error()})
			return
		}
		if errs := validateEventRequest(&req); len(errs) > 0 {
			utils.ValidationError(c, "Validation failed", errs)
			return
		}

		var event models.Event
		applyEventRequest(&event, &req)
		if err := db.Create(&event).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to create event")
			return
		}
		utils.SuccessMessage(c, http.StatusCreated, "Event created successfully", event)
	}
}

func UpdateEvent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req EventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ValidationError(c, "Validation failed", []string{err.Error()})
			return
		}
		if errs := validateEventRequest(&req); len(errs) > 0 {
			utils.ValidationError(c, "Validation failed", errs)
			return
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid event ID")
			return
		}

		var event models.Event
		if err := db.First(&event, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Error(c, http.StatusNotFound, "Event not found")
			} else {
				utils.Error(c, http.StatusInternalServerError, "Failed to retrieve event")
			}
			return
		}

		applyEventRequest(&event, &req)
		if err := db.Save(&event).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to update event")
			return
		}
		utils.SuccessMessage(c, http.StatusOK, "Event updated successfully", event)
	}
}

func DeleteEvent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid event ID")
			return
		}

		var event models.Event
		if err := db.First(&event, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Error(c, http.StatusNotFound, "Event not found")
			} else {
				utils.Error(c, http.StatusInternalServerError, "Failed to retrieve event")
			}
			return
		}
		if err := db.Delete(&event).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to delete event")
			return
		}
		utils.SuccessMessage(c, http.StatusOK, "Event deleted successfully", nil)
	}
}
