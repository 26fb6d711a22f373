package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"linkhub/internal/config"
	"linkhub/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Open connects to the configured database and bounds the connection
// pool. Acquisition beyond the pool limit queues instead of failing.
// Any failure here is fatal to startup; callers do not retry.
func Open(ctx context.Context, cfg config.Config) (*gorm.DB, error) {
	var dialer gorm.Dialector
	if strings.HasPrefix(cfg.DatabaseURL, "postgres") {
		dialer = postgres.Open(cfg.DatabaseURL)
	} else if strings.HasPrefix(cfg.DatabaseURL, "sqlite") {
		dialer = sqlite.Open(strings.TrimPrefix(cfg.DatabaseURL, "sqlite://"))
	} else {
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.DatabaseURL)
	}

	db, err := gorm.Open(dialer, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}

	maxConns := cfg.MaxOpenConns
	if maxConns <= 0 {
		maxConns = 20
	}
	sqlDB.SetMaxOpenConns(maxConns)
	sqlDB.SetMaxIdleConns(maxConns / 4)
	sqlDB.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Initialize creates tables and indexes if absent and seeds the default
// categories. Safe to run on every startup.
func Initialize(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Link{}, &models.Category{}, &models.ActivityEntry{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	if err := seedDefaultCategories(db); err != nil {
		return fmt.Errorf("failed to seed default categories: %w", err)
	}

	return nil
}

var defaultCategories = []models.Category{
	{ID: "machine-learning", Name: "Machine Learning", Color: "blue"},
	{ID: "data-science", Name: "Data Science", Color: "green"},
	{ID: "deep-learning", Name: "Deep Learning", Color: "purple"},
	{ID: "tools", Name: "Tools", Color: "orange"},
	{ID: "documentation", Name: "Documentation", Color: "gray"},
	{ID: "datasets", Name: "Datasets", Color: "red"},
}

// seedDefaultCategories inserts the built-in set. Existing rows with the
// same id are skipped, never overwritten.
func seedDefaultCategories(db *gorm.DB) error {
	for _, cat := range defaultCategories {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&cat).Error; err != nil {
			return err
		}
	}
	return nil
}
