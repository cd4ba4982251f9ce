package models

import (
	"time"

	"gorm.io/datatypes"
)

// Product categories and units mirror the catalog taxonomy; handlers
// reject anything outside these sets.
var ProductCategories = []string{"Vegetables", "Fruits", "Herbs", "Seeds", "Tools", "Other"}

var ProductUnits = []string{"piece", "kg", "lb", "bunch", "pack"}

type Product struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"size:200;not null" json:"name"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Price       float64        `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    string         `gorm:"size:20;not null" json:"category"`
	Stock       int            `gorm:"not null" json:"stock"`
	Image       string         `gorm:"size:500" json:"image"`
	Unit        string         `gorm:"size:20;default:piece" json:"unit"`
	Organic     bool           `gorm:"default:false" json:"organic"`
	Tags        datatypes.JSON `json:"tags"`
	Seller      string         `gorm:"size:255" json:"seller"`
	// RESTRICT keeps order history intact: a product cannot be deleted
	// while order items still reference it.
	OrderItems []OrderItem `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"-"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

func ValidProductCategory(c string) bool {
	for _, v := range ProductCategories {
		if v == c {
			return true
		}
	}
	return false
}

func ValidProductUnit(u string) bool {
	for _, v := range ProductUnits {
		if v == u {
			return true
		}
	}
	return false
}
