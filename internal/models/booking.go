package models

import "time"

// Booking stores service and master as free text, not foreign keys.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientName  string `gorm:"size:120;not null" json:"client_name"`
	ClientPhone string `gorm:"size:40;not null" json:"client_phone"`
	ClientEmail string `gorm:"size:120" json:"client_email"`
	Service     string `gorm:"size:120;not null" json:"service"`
	Master      string `gorm:"size:120" json:"master"`
	BookingDate string `gorm:"size:20;not null;index" json:"booking_date"`
	BookingTime string `gorm:"size:10;not null" json:"booking_time"`
	Status      string `gorm:"size:20;default:'pending'" json:"status"`
	Notes       string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}
