package adminController

import (
	"errors"
	"log"
	"math"
	"net/http"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/luksiny/UrbanHarvestHub/models"
	"github.com/luksiny/UrbanHarvestHub/utils"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// LoginHandler issues a 2-hour admin token. Credential failures are
// reported uniformly so the response does not reveal which half of the
// pair was wrong.
func LoginHandler(db *gorm.DB, jwtSecret string, tokenExpiry time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ValidationError(c, "Validation failed", []string{err.Error()})
			return
		}

		var errs []string
		email := strings.ToLower(strings.TrimSpace(req.Email))
		if email == "" {
			errs = append(errs, "Email is required")
		} else if _, err := mail.ParseAddress(email); err != nil {
			errs = append(errs, "Invalid email")
		}
		if req.Password == "" {
			errs = append(errs, "Password is required")
		}
		if len(errs) > 0 {
			utils.ValidationError(c, "Validation failed", errs)
			return
		}

		var admin models.Admin
		if err := db.First(&admin, "email = ?", email).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Error(c, http.StatusUnauthorized, "Invalid email or password.")
				return
			}
			utils.Error(c, http.StatusInternalServerError, "Login failed")
			return
		}
		if !admin.ComparePassword(req.Password) {
			utils.Error(c, http.StatusUnauthorized, "Invalid email or password.")
			return
		}

		token, err := utils.GenerateAdminToken(admin.ID, jwtSecret, tokenExpiry)
		if err != nil {
			log.Printf("❌ Failed to sign admin token: %v", err)
			utils.Error(c, http.StatusInternalServerError, "Login failed")
			return
		}

		utils.SuccessMessage(c, http.StatusOK, "Login successful", gin.H{
			"token": token,
			"admin": gin.H{
				"id":    admin.ID,
				"email": admin.Email,
				"name":  admin.Name,
			},
			"expiresIn": tokenExpiry.String(),
		})
	}
}

// StatsHandler backs the dashboard header cards.
func StatsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var totalOrders int64
		if err := db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to fetch stats")
			return
		}

		var totalRevenue float64
		if err := db.Model(&models.Order{}).
			Select("COALESCE(SUM(total), 0)").
			Scan(&totalRevenue).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to fetch stats")
			return
		}

		var activeWorkshops int64
		if err := db.Model(&models.Workshop{}).
			Where("date >= ?", time.Now()).
			Count(&activeWorkshops).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to fetch stats")
			return
		}

		utils.Success(c, http.StatusOK, gin.H{
			"totalOrders":     totalOrders,
			"totalRevenue":    math.Round(totalRevenue*100) / 100,
			"activeWorkshops": activeWorkshops,
		})
	}
}

func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Order("created_at DESC").Find(&orders).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to fetch orders")
			return
		}
		utils.Success(c, http.StatusOK, orders)
	}
}

// UpdateOrderStatusHandler sets any valid status; there is no enforced
// forward-only transition on the server side.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ValidationError(c, "Validation failed", []string{err.Error()})
			return
		}
		if !models.ValidOrderStatus(req.Status) {
			utils.ValidationError(c, "Validation failed", []string{"Invalid status"})
			return
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid order ID")
			return
		}

		var order models.Order
		if err := db.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Error(c, http.StatusNotFound, "Order not found.")
				return
			}
			utils.Error(c, http.StatusInternalServerError, "Failed to retrieve order")
			return
		}

		order.Status = models.OrderStatus(req.Status)
		if err := db.Save(&order).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to update order status")
			return
		}
		utils.SuccessMessage(c, http.StatusOK, "Order status updated.", order)
	}
}
