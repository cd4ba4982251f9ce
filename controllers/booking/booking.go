package bookingControllers

import (
	"errors"
	"math"
	"net/http"
	"net/mail"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/luksiny/UrbanHarvestHub/models"
	"github.com/luksiny/UrbanHarvestHub/utils"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type CreateBookingRequest struct {
	WorkshopID uint   `json:"workshopId"`
	UserID     string `json:"userId"`
	UserName   string `json:"userName"`
	UserEmail  string `json:"userEmail"`
	UserPhone  string `json:"userPhone"`
}

type UpdateBookingRequest struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"paymentStatus"`
}

func validateBookingRequest(req *CreateBookingRequest) []string {
	var errs []string
	if req.WorkshopID == 0 {
		errs = append(errs, "Workshop ID is required")
	}
	if strings.TrimSpace(req.UserID) == "" {
		errs = append(errs, "User ID is required")
	}
	if strings.TrimSpace(req.UserName) == "" {
		errs = append(errs, "User name is required")
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(req.UserEmail)); err != nil {
		errs = append(errs, "Valid email is required")
	}
	return errs
}

// -------- Handlers --------

// CreateBookingHandler admits a booking only while the count of
// non-cancelled bookings is below the workshop capacity. The count and
// the insert are separate statements: two concurrent requests can both
// pass the check and oversell a seat.
func CreateBookingHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ValidationError(c, "Validation failed", []string{err.Error()})
			return
		}
		if errs := validateBookingRequest(&req); len(errs) > 0 {
			utils.ValidationError(c, "Validation failed", errs)
			return
		}

		var workshop models.Workshop
		if err := db.First(&workshop, req.WorkshopID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Error(c, http.StatusNotFound, "Workshop not found")
				return
			}
			utils.Error(c, http.StatusInternalServerError, "Failed to retrieve workshop")
			return
		}

		var currentBookings int64
		if err := db.Model(&models.Booking{}).
			Where("workshop_id = ? AND status <> ?", req.WorkshopID, models.BookingStatusCancelled).
			Count(&currentBookings).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to check availability")
			return
		}
		if currentBookings >= int64(workshop.Capacity) {
			utils.Error(c, http.StatusBadRequest, "Workshop is fully booked")
			return
		}

		booking := models.Booking{
			WorkshopID: req.WorkshopID,
			UserID:     req.UserID,
			UserName:   req.UserName,
			UserEmail:  req.UserEmail,
			UserPhone:  req.UserPhone,
			Status:     models.BookingStatusConfirmed,
		}
		if err := db.Create(&booking).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to create booking")
			return
		}

		booking.Workshop = &workshop
		utils.SuccessMessage(c, http.StatusCreated, "Booking created successfully", booking)
	}
}

func GetBookingsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, ok := utils.ParsePagination(c)
		if !ok {
			return
		}

		query := db.Model(&models.Booking{}).Preload("Workshop")
		if userID := c.Query("userId"); userID != "" {
			query = query.Where("user_id = ?", userID)
		}
		if workshopID := c.Query("workshopId"); workshopID != "" {
			query = query.Where("workshop_id = ?", workshopID)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to fetch bookings")
			return
		}

		var bookings []models.Booking
		if err := query.
			Order("created_at DESC").
			Offset((page - 1) * limit).
			Limit(limit).
			Find(&bookings).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to fetch bookings")
			return
		}

		utils.Paginated(c, http.StatusOK, bookings, utils.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: int(math.Ceil(float64(total) / float64(limit))),
		})
	}
}

func GetBookingHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid booking ID")
			return
		}

		var booking models.Booking
		if err := db.Preload("Workshop").First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Error(c, http.StatusNotFound, "Booking not found")
				return
			}
			utils.Error(c, http.StatusInternalServerError, "Failed to retrieve booking")
			return
		}
		utils.Success(c, http.StatusOK, booking)
	}
}

func UpdateBookingHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ValidationError(c, "Validation failed", []string{err.Error()})
			return
		}
		if req.Status != nil && !models.ValidBookingStatus(*req.Status) {
			utils.ValidationError(c, "Validation failed", []string{"Invalid status"})
			return
		}
		if req.PaymentStatus != nil && !models.ValidBookingPaymentStatus(*req.PaymentStatus) {
			utils.ValidationError(c, "Validation failed", []string{"Invalid payment status"})
			return
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid booking ID")
			return
		}

		var booking models.Booking
		if err := db.Preload("Workshop").First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Error(c, http.StatusNotFound, "Booking not found")
				return
			}
			utils.Error(c, http.StatusInternalServerError, "Failed to retrieve booking")
			return
		}

		if req.Status != nil {
			booking.Status = models.BookingStatus(*req.Status)
		}
		if req.PaymentStatus != nil {
			booking.PaymentStatus = models.BookingPaymentStatus(*req.PaymentStatus)
		}
		if err := db.Save(&booking).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to update booking")
			return
		}
		utils.SuccessMessage(c, http.StatusOK, "Booking updated successfully", booking)
	}
}

func DeleteBookingHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid booking ID")
			return
		}

		var booking models.Booking
		if err := db.First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Error(c, http.StatusNotFound, "Booking not found")
				return
			}
			utils.Error(c, http.StatusInternalServerError, "Failed to retrieve booking")
			return
		}
		if err := db.Delete(&booking).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to delete booking")
			return
		}
		utils.SuccessMessage(c, http.StatusOK, "Booking deleted successfully", nil)
	}
}
