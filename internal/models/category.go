package models

import (
	"time"
)

type Category struct {
	ID        string    `gorm:"primaryKey;size:100" json:"id"` // slug derived from Name
	Name      string    `gorm:"size:255;not null" json:"name"`
	Color     string    `gorm:"size:50;default:'blue'" json:"color"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Category) TableName() string {
	return "categories"
}

// CategoryInfo is the display subset returned by category listings.
type CategoryInfo struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}
