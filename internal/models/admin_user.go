package models

import "time"

type AdminUser struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"column:password;size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}
