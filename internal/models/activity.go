package models

import (
	"time"
)

// Actions recorded in the activity log.
const (
	ActionAddedLink   = "added_link"
	ActionUpdatedLink = "updated_link"
	ActionDeletedLink = "deleted_link"
)

type ActivityEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Action    string    `gorm:"size:100;not null" json:"action"`
	UserName  string    `gorm:"size:100" json:"user_name"`
	LinkTitle string    `gorm:"size:255" json:"link_title"`
	LinkID    *uint     `json:"link_id"` // nullable, the link may be deleted later
	Category  string    `gorm:"size:100" json:"category"`
	Timestamp time.Time `gorm:"default:CURRENT_TIMESTAMP;index" json:"timestamp"`
}

func (ActivityEntry) TableName() string {
	return "activity_log"
}
