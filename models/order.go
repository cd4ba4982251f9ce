package models

import (
	"time"

	"gorm.io/datatypes"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // confirmed by the hub
	OrderStatusShipped   OrderStatus = "shipped"   // out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // customer received the order
	OrderStatusCancelled OrderStatus = "cancelled" // cancelled before shipping
)

type Order struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber string         `gorm:"size:20;uniqueIndex;not null" json:"orderNumber"`
	Items       datatypes.JSON `gorm:"not null" json:"items"`
	Shipping    datatypes.JSON `gorm:"not null" json:"shipping"`
	Payment     datatypes.JSON `json:"payment"`
	Total       float64        `gorm:"type:decimal(10,2);not null" json:"total"`
	Status      OrderStatus    `gorm:"type:varchar(20);default:'pending'" json:"status"`
	LineItems   []OrderItem    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"lineItems,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// OrderItem freezes name and unit price at order time so later catalog
// edits never rewrite historical receipts.
type OrderItem struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     uint      `gorm:"index;not null" json:"orderId"`
	ProductID   uint      `gorm:"not null" json:"productId"`
	ProductName string    `gorm:"size:200;not null" json:"productName"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	Unit        string    `gorm:"size:20;not null;default:piece" json:"unit"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
