package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"linkhub/internal/models"
	"linkhub/internal/repository"

	"gorm.io/gorm"
)

// placeholderCategory is reported as the most-used category when the
// store holds no links at all.
const placeholderCategory = "Data Science"

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type Statistics struct {
	TotalLinks           int64                  `json:"total_links"`
	LinksThisWeek        int64                  `json:"links_this_week"`
	MostUsedCategory     string                 `json:"most_used_category"`
	CategoryDistribution []CategoryCount        `json:"category_distribution"`
	TotalClicks          int64                  `json:"total_clicks"`
	TeamActivity         []models.ActivityEntry `json:"team_activity"`
}

// StatsService derives read-only aggregates from the store. It never
// writes.
type StatsService struct {
	db       *gorm.DB
	links    *repository.LinkRepository
	activity *repository.ActivityLog
	logger   *slog.Logger
}

func NewStatsService(db *gorm.DB, links *repository.LinkRepository, activity *repository.ActivityLog, logger *slog.Logger) *StatsService {
	return &StatsService{db: db, links: links, activity: activity, logger: logger}
}

// Compute runs the aggregate queries in one pass. Each sub-query is
// read-only and idempotent; no transaction spans them.
func (s *StatsService) Compute(ctx context.Context) (*Statistics, error) {
	stats := &Statistics{
		MostUsedCategory:     placeholderCategory,
		CategoryDistribution: []CategoryCount{},
		TeamActivity:         []models.ActivityEntry{},
	}

	if err := s.db.WithContext(ctx).Model(&models.Link{}).Count(&stats.TotalLinks).Error; err != nil {
		return nil, err
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	if err := s.db.WithContext(ctx).Model(&models.Link{}).
		Where("created_at >= ?", weekAgo).
		Count(&stats.LinksThisWeek).Error; err != nil {
		return nil, err
	}

	var distribution []CategoryCount
	if err := s.db.WithContext(ctx).Model(&models.Link{}).
		Select("category, COUNT(*) as count").
		Group("category").
		Order("count DESC, category ASC").
		Scan(&distribution).Error; err != nil {
		return nil, err
	}
	if len(distribution) > 0 {
		stats.CategoryDistribution = distribution
		stats.MostUsedCategory = distribution[0].Category
	}

	if err := s.db.WithContext(ctx).Model(&models.Link{}).
		Select("COALESCE(SUM(clicks), 0)").
		Scan(&stats.TotalClicks).Error; err != nil {
		return nil, err
	}

	activity, err := s.activity.Recent(ctx, 10)
	if err != nil {
		return nil, err
	}
	stats.TeamActivity = activity

	return stats, nil
}

// TopLinks takes the 10 most-recently-created links, re-sorts that
// subset by click count descending and returns the first n. This is
// deliberately not a global top-by-clicks query.
func (s *StatsService) TopLinks(ctx context.Context, n int) ([]models.Link, error) {
	links, err := s.links.List(ctx, repository.ListFilter{Limit: 10})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(links, func(i, j int) bool {
		return links[i].Clicks > links[j].Clicks
	})

	if n >= 0 && len(links) > n {
		links = links[:n]
	}
	return links, nil
}
