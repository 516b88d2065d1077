package models

import "time"

type GalleryItem struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ImageURL string `gorm:"size:512;not null" json:"image_url"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (GalleryItem) TableName() string {
	return "gallery"
}
