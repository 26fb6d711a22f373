package repository

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"linkhub/internal/models"

	"gorm.io/gorm"
)

type CreateLinkInput struct {
	Title       string
	URL         string
	Description string
	Category    string
	AddedBy     string
}

// UpdateLinkInput is the allow-list of updatable columns. Nil fields are
// left untouched; the primary key is not reachable through this path.
type UpdateLinkInput struct {
	Title       *string
	URL         *string
	Description *string
	Category    *string
	AddedBy     *string
}

type ListFilter struct {
	Category string // "" or "all" disables the filter
	Search   string // case-insensitive substring across title/description/category/added_by
	Limit    int    // <= 0 returns the full set
}

type LinkRepository struct {
	db       *gorm.DB
	activity *ActivityLog
	logger   *slog.Logger
}

func NewLinkRepository(db *gorm.DB, activity *ActivityLog, logger *slog.Logger) *LinkRepository {
	return &LinkRepository{db: db, activity: activity, logger: logger}
}

// Create inserts a link and returns the persisted row. The URL is
// expected to be validated by the caller; title and category must be
// non-empty.
func (r *LinkRepository) Create(ctx context.Context, input CreateLinkInput) (*models.Link, error) {
	if strings.TrimSpace(input.Title) == "" || input.URL == "" {
		return nil, models.ErrValidation
	}

	addedBy := strings.TrimSpace(input.AddedBy)
	if addedBy == "" {
		addedBy = "Anonymous"
	}
	category := input.Category
	if category == "" {
		category = "general"
	}

	now := time.Now()
	link := models.Link{
		Title:       strings.TrimSpace(input.Title),
		URL:         input.URL,
		Description: input.Description,
		Category:    category,
		AddedBy:     addedBy,
		Clicks:      0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := r.db.WithContext(ctx).Create(&link).Error; err != nil {
		return nil, err
	}

	r.record(ctx, models.ActivityEntry{
		Action:    models.ActionAddedLink,
		UserName:  link.AddedBy,
		LinkTitle: link.Title,
		LinkID:    &link.ID,
		Category:  link.Category,
	})

	return &link, nil
}

// Get fetches a single link by id.
func (r *LinkRepository) Get(ctx context.Context, id uint) (*models.Link, error) {
	var link models.Link
	if err := r.db.WithContext(ctx).First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &link, nil
}

// List returns links newest first, optionally filtered by category and a
// substring search, optionally truncated. Read-only.
func (r *LinkRepository) List(ctx context.Context, filter ListFilter) ([]models.Link, error) {
	q := r.db.WithContext(ctx).Model(&models.Link{})

	if filter.Category != "" && filter.Category != "all" {
		q = q.Where("category = ?", filter.Category)
	}

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ? OR LOWER(added_by) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	q = q.Order("created_at DESC, id DESC")

	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var links []models.Link
	if err := q.Find(&links).Error; err != nil {
		return nil, err
	}

	if links == nil {
		links = []models.Link{}
	}
	return links, nil
}

// Update applies the non-nil fields and refreshes updated_at.
func (r *LinkRepository) Update(ctx context.Context, id uint, input UpdateLinkInput) error {
	fields := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.URL != nil {
		fields["url"] = *input.URL
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Category != nil {
		fields["category"] = *input.Category
	}
	if input.AddedBy != nil {
		fields["added_by"] = *input.AddedBy
	}

	tx := r.db.WithContext(ctx).Model(&models.Link{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.ErrNotFound
	}

	r.record(ctx, models.ActivityEntry{
		Action:   models.ActionUpdatedLink,
		UserName: "Anonymous",
		LinkID:   &id,
	})

	return nil
}

// Delete fetches the row first (its title goes into the activity log),
// then removes it. The deletion is attributed to the system actor.
func (r *LinkRepository) Delete(ctx context.Context, id uint) error {
	var link models.Link
	if err := r.db.WithContext(ctx).First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}

	if err := r.db.WithContext(ctx).Delete(&models.Link{}, id).Error; err != nil {
		return err
	}

	r.record(ctx, models.ActivityEntry{
		Action:    models.ActionDeletedLink,
		UserName:  "System",
		LinkTitle: link.Title,
		LinkID:    &id,
		Category:  link.Category,
	})

	return nil
}

// IncrementClicks bumps the counter and stamps last_clicked in a single
// atomic update. Fire-and-forget telemetry: a missing id or storage error
// yields false, never a hard failure.
func (r *LinkRepository) IncrementClicks(ctx context.Context, id uint) bool {
	tx := r.db.WithContext(ctx).Model(&models.Link{}).Where("id = ?", id).UpdateColumns(map[string]interface{}{
		"clicks":       gorm.Expr("clicks + ?", 1),
		"last_clicked": time.Now(),
	})
	if tx.Error != nil {
		r.logger.Error("failed to increment clicks", "link_id", id, "error", tx.Error)
		return false
	}
	return tx.RowsAffected > 0
}

// record appends to the activity ledger and deliberately discards the
// error after logging it: activity logging must never abort the mutation
// that triggered it.
func (r *LinkRepository) record(ctx context.Context, entry models.ActivityEntry) {
	if err := r.activity.Append(ctx, entry); err != nil {
		r.logger.Warn("failed to record activity", "action", entry.Action, "error", err)
	}
}
