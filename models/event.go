package models

import (
	"time"

	"gorm.io/datatypes"
)

var EventCategories = []string{"Harvest Festival", "Farmers Market", "Community Garden", "Educational", "Social", "Other"}

type Event struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Date        time.Time      `gorm:"not null" json:"date"`
	EndDate     *time.Time     `json:"endDate,omitempty"`
	Location    string         `gorm:"size:500;not null" json:"location"`
	CoordLat    *float64       `gorm:"type:decimal(10,7)" json:"coordLat,omitempty"`
	CoordLng    *float64       `gorm:"type:decimal(10,7)" json:"coordLng,omitempty"`
	Price       float64        `gorm:"type:decimal(10,2)" json:"price"`
	Capacity    *int           `json:"capacity,omitempty"`
	Category    string         `gorm:"size:30;not null" json:"category"`
	Image       string         `gorm:"size:500" json:"image"`
	Tags        datatypes.JSON `json:"tags"`
	Organizer   string         `gorm:"size:200" json:"organizer"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func ValidEventCategory(c string) bool {
	for _, v := range EventCategories {
		if v == c {
			return true
		}
	}
	return false
}
