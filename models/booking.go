package models

import "time"

type BookingStatus string
type BookingPaymentStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"

	BookingPaymentPending  BookingPaymentStatus = "pending"
	BookingPaymentPaid     BookingPaymentStatus = "paid"
	BookingPaymentRefunded BookingPaymentStatus = "refunded"
)

type Booking struct {
	ID            uint                 `gorm:"primaryKey;autoIncrement" json:"id"`
	WorkshopID    uint                 `gorm:"index;not null" json:"workshopId"`
	Workshop      *Workshop            `gorm:"foreignKey:WorkshopID" json:"workshop,omitempty"`
	UserID        string               `gorm:"size:255;not null" json:"userId"`
	UserName      string               `gorm:"size:255;not null" json:"userName"`
	UserEmail     string               `gorm:"size:255;not null" json:"userEmail"`
	UserPhone     string               `gorm:"size:50" json:"userPhone,omitempty"`
	Status        BookingStatus        `gorm:"type:varchar(20);default:'confirmed'" json:"status"`
	PaymentStatus BookingPaymentStatus `gorm:"type:varchar(20);default:'pending'" json:"paymentStatus"`
	Notes         string               `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

func ValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

func ValidBookingPaymentStatus(s string) bool {
	switch BookingPaymentStatus(s) {
	case BookingPaymentPending, BookingPaymentPaid, BookingPaymentRefunded:
		return true
	}
	return false
}
