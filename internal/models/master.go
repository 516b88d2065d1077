package models

import "time"

// Master is a barber shown on the public site. PhotoURL points at an
// uploaded file owned by storage.
type Master struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:120;not null" json:"name"`
	Specialty   string  `gorm:"size:120" json:"specialty"`
	Experience  *int    `json:"experience"`
	Description string  `gorm:"type:text" json:"description"`
	Icon        string  `gorm:"size:32" json:"icon"`
	PhotoURL    *string `gorm:"size:512" json:"photo_url"`

	CreatedAt time.Time `json:"created_at"`
}

func (m *Master) Photo() string {
	if m.PhotoURL == nil {
		return ""
	}
	return *m.PhotoURL
}
