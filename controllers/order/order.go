package orderControllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/luksiny/UrbanHarvestHub/middleware"
	"github.com/luksiny/UrbanHarvestHub/models"
	"github.com/luksiny/UrbanHarvestHub/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type OrderItemRequest struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Unit      string  `json:"unit"`
}

type ShippingRequest struct {
	FullName   string `json:"fullName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
}

type CreateOrderRequest struct {
	Items    []OrderItemRequest     `json:"items"`
	Shipping ShippingRequest        `json:"shipping"`
	Payment  map[string]interface{} `json:"payment,omitempty"`
	Total    float64                `json:"total"`
}

// -------- Helpers --------

// Order numbers are display labels, not hard identifiers: last four
// base36 digits of the millisecond timestamp plus a 4-digit random
// suffix. Uniqueness is only backed by the database index.
func generateOrderNumber() string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	if len(ts) > 4 {
		ts = ts[len(ts)-4:]
	}
	return fmt.Sprintf("UH-%s-%d", ts, 1000+rand.Intn(9000))
}

func validateOrderRequest(req *CreateOrderRequest) []string {
	var errs []string
	if len(req.Items) == 0 {
		errs = append(errs, "Order must contain at least one item")
	}
	for _, item := range req.Items {
		if strings.TrimSpace(item.ProductID) == "" {
			errs = append(errs, "Each item must have a productId")
		}
		if strings.TrimSpace(item.Name) == "" {
			errs = append(errs, "Each item must have a name")
		}
		if item.Price < 0 || math.IsNaN(item.Price) {
			errs = append(errs, "Each item must have a valid price")
		}
		if item.Quantity < 1 {
			errs = append(errs, "Each item must have quantity >= 1")
		}
	}
	if strings.TrimSpace(req.Shipping.FullName) == "" {
		errs = append(errs, "Full name is required")
	}
	if strings.TrimSpace(req.Shipping.Address) == "" {
		errs = append(errs, "Address is required")
	}
	if strings.TrimSpace(req.Shipping.City) == "" {
		errs = append(errs, "City is required")
	}
	if strings.TrimSpace(req.Shipping.PostalCode) == "" {
		errs = append(errs, "Postal code is required")
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(req.Shipping.Email)); err != nil {
		errs = append(errs, "Valid email is required")
	}
	if req.Total < 0 || math.IsNaN(req.Total) {
		errs = append(errs, "Valid total is required")
	}
	return errs
}

// invalidProductIDError aborts the transaction while naming the
// offending identifier for the 400 response.
type invalidProductIDError struct {
	raw string
}

func (e *invalidProductIDError) Error() string {
	return "Invalid productId: " + e.raw
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	// sqlite wording, hit by the test suite
	return strings.Contains(err.Error(), "FOREIGN KEY constraint")
}

// -------- Core Logic --------

// CreateOrder persists the order header and one line item per cart
// entry inside a single transaction. Any failure rolls back the whole
// order; partial orders are never visible.
func CreateOrder(db *gorm.DB, req *CreateOrderRequest) (*models.Order, error) {
	itemsJSON, err := json.Marshal(req.Items)
	if err != nil {
		return nil, err
	}
	shippingJSON, err := json.Marshal(req.Shipping)
	if err != nil {
		return nil, err
	}
	var paymentJSON datatypes.JSON
	if req.Payment != nil {
		raw, err := json.Marshal(req.Payment)
		if err != nil {
			return nil, err
		}
		paymentJSON = datatypes.JSON(raw)
	}

	order := models.Order{
		OrderNumber: generateOrderNumber(),
		Items:       datatypes.JSON(itemsJSON),
		Shipping:    datatypes.JSON(shippingJSON),
		Payment:     paymentJSON,
		Total:       req.Total,
		Status:      models.OrderStatusPending,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, item := range req.Items {
			productID, err := strconv.Atoi(strings.TrimSpace(item.ProductID))
			if err != nil {
				return &invalidProductIDError{raw: item.ProductID}
			}

			// Last-resort coercions; the validation pass has already
			// rejected anything genuinely malformed.
			name := strings.TrimSpace(item.Name)
			if name == "" {
				name = "Product"
			}
			price := item.Price
			if price < 0 || math.IsNaN(price) {
				price = 0
			}
			quantity := item.Quantity
			if quantity < 1 {
				quantity = 1
			}
			unit := strings.TrimSpace(item.Unit)
			if unit == "" {
				unit = "piece"
			}
			if len(unit) > 20 {
				unit = unit[:20]
			}

			lineItem := models.OrderItem{
				OrderID:     order.ID,
				ProductID:   uint(productID),
				ProductName: name,
				Price:       price,
				Quantity:    quantity,
				Unit:        unit,
			}
			if err := tx.Create(&lineItem).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The confirmation carries the header only; line items are served
	// by the read path.
	order.LineItems = nil
	return &order, nil
}

// -------- Handlers --------

func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ValidationError(c, "Validation failed", []string{err.Error()})
			return
		}
		if errs := validateOrderRequest(&req); len(errs) > 0 {
			middleware.RecordOrderOperation("create", false)
			utils.ValidationError(c, "Validation failed", errs)
			return
		}

		order, err := CreateOrder(db, &req)
		if err != nil {
			middleware.RecordOrderOperation("create", false)
			var badID *invalidProductIDError
			switch {
			case errors.As(err, &badID):
				utils.Error(c, http.StatusBadRequest, badID.Error())
			case isForeignKeyViolation(err):
				utils.Error(c, http.StatusBadRequest,
					"One or more product IDs do not exist. Use valid product ids from the products table.")
			default:
				log.Printf("❌ Failed to create order: %v", err)
				utils.Error(c, http.StatusInternalServerError, "Failed to place order")
			}
			return
		}

		middleware.RecordOrderOperation("create", true)
		broadcastNewOrder(order)
		utils.SuccessMessage(c, http.StatusCreated, "Order placed successfully", order)
	}
}

// lineItemView joins the frozen snapshot with the live catalog name so
// receipts can show both.
type lineItemView struct {
	OrderItemID uint    `gorm:"column:order_item_id" json:"order_item_id"`
	ProductName string  `gorm:"column:live_name" json:"product_name"`
	Quantity    int     `gorm:"column:quantity" json:"quantity"`
	Price       float64 `gorm:"column:price" json:"price"`
	Unit        string  `gorm:"column:unit" json:"unit"`
	Snapshot    string  `gorm:"column:snapshot_name" json:"productName"`
}

func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid order ID")
			return
		}

		var order models.Order
		if err := db.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Error(c, http.StatusNotFound, "Order not found")
				return
			}
			utils.Error(c, http.StatusInternalServerError, "Failed to retrieve order")
			return
		}

		// An order with no line item rows is a data anomaly; it still
		// renders, with an explicitly empty list.
		lineItems := []lineItemView{}
		if err := db.Table("order_items").
			Select("order_items.id AS order_item_id, products.name AS live_name, order_items.quantity, order_items.price, order_items.unit, order_items.product_name AS snapshot_name").
			Joins("JOIN products ON products.id = order_items.product_id").
			Where("order_items.order_id = ?", order.ID).
			Order("order_items.id").
			Scan(&lineItems).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to retrieve order")
			return
		}

		utils.Success(c, http.StatusOK, gin.H{
			"id":          order.ID,
			"orderNumber": order.OrderNumber,
			"items":       order.Items,
			"shipping":    order.Shipping,
			"payment":     order.Payment,
			"total":       order.Total,
			"status":      order.Status,
			"createdAt":   order.CreatedAt,
			"updatedAt":   order.UpdatedAt,
			"lineItems":   lineItems,
		})
	}
}
