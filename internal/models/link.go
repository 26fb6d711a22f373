package models

import (
	"time"
)

type Link struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	URL         string     `gorm:"not null;type:text" json:"url"`
	Description string     `gorm:"type:text" json:"description"`
	Category    string     `gorm:"size:100;not null;default:'general';index" json:"category"`
	AddedBy     string     `gorm:"size:100;default:'Anonymous'" json:"added_by"`
	Clicks      int        `gorm:"default:0;index" json:"clicks"`
	CreatedAt   time.Time  `gorm:"default:CURRENT_TIMESTAMP;index" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
	LastClicked *time.Time `json:"last_clicked,omitempty"`
}

func (Link) TableName() string {
	return "links"
}
