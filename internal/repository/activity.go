package repository

import (
	"context"
	"time"

	"linkhub/internal/models"

	"gorm.io/gorm"
)

// retentionLimit bounds the activity ledger: oldest entries beyond this
// count are discarded on every append. Under concurrent appends the count
// may briefly overshoot; that is tolerated.
const retentionLimit = 100

type ActivityLog struct {
	db *gorm.DB
}

func NewActivityLog(db *gorm.DB) *ActivityLog {
	return &ActivityLog{db: db}
}

// Append inserts an entry and prunes the ledger back down to the
// retention limit in the same logical operation. Callers treat failures
// as best-effort: inspect the error, log it, move on.
func (l *ActivityLog) Append(ctx context.Context, entry models.ActivityEntry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	if err := l.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return err
	}

	var count int64
	if err := l.db.WithContext(ctx).Model(&models.ActivityEntry{}).Count(&count).Error; err != nil {
		return err
	}

	if count > retentionLimit {
		return l.db.WithContext(ctx).Exec(
			`DELETE FROM activity_log WHERE id IN (
				SELECT id FROM activity_log ORDER BY timestamp ASC, id ASC LIMIT ?
			)`, count-retentionLimit,
		).Error
	}

	return nil
}

// Recent returns the newest entries, most recent first. A non-positive
// limit defaults to 20.
func (l *ActivityLog) Recent(ctx context.Context, limit int) ([]models.ActivityEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	var entries []models.ActivityEntry
	err := l.db.WithContext(ctx).
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []models.ActivityEntry{}
	}
	return entries, nil
}
