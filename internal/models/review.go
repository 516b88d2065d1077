package models

import "time"

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Author string `gorm:"size:120;not null" json:"author"`
	// Date is free text as typed by the admin ("12 марта 2024").
	Date   string `gorm:"size:64;not null" json:"date"`
	Rating int    `gorm:"not null" json:"rating"`
	Text   string `gorm:"type:text;not null" json:"text"`
	Avatar string `gorm:"size:32" json:"avatar"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
