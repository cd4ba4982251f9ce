package models

import (
	"time"

	"gorm.io/datatypes"
)

var WorkshopCategories = []string{"Gardening", "Cooking", "Preservation", "Sustainability", "Other"}

type Workshop struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Instructor  string         `gorm:"size:255;not null" json:"instructor"`
	Date        time.Time      `gorm:"not null" json:"date"`
	Duration    int            `gorm:"not null" json:"duration"` // hours
	Location    string         `gorm:"size:500;not null" json:"location"`
	CoordLat    *float64       `gorm:"type:decimal(10,7)" json:"coordLat,omitempty"`
	CoordLng    *float64       `gorm:"type:decimal(10,7)" json:"coordLng,omitempty"`
	Price       float64        `gorm:"type:decimal(10,2);not null" json:"price"`
	Capacity    int            `gorm:"not null" json:"capacity"`
	Category    string         `gorm:"size:20;not null" json:"category"`
	Image       string         `gorm:"size:500" json:"image"`
	Tags        datatypes.JSON `json:"tags"`
	Bookings    []Booking      `gorm:"foreignKey:WorkshopID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func ValidWorkshopCategory(c string) bool {
	for _, v := range WorkshopCategories {
		if v == c {
			return true
		}
	}
	return false
}
