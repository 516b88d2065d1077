package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:120;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Price       int    `gorm:"not null" json:"price"`
	Duration    int    `gorm:"not null" json:"duration"`
	Icon        string `gorm:"size:32" json:"icon"`

	CreatedAt time.Time `json:"created_at"`
}
