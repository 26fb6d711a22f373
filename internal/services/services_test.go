package services

import (
	"log/slog"
	"os"

	"linkhub/internal/models"
	"linkhub/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database: " + err.Error())
	}
	err = db.AutoMigrate(&models.Link{}, &models.Category{}, &models.ActivityEntry{})
	if err != nil {
		panic("failed to migrate database: " + err.Error())
	}
	return db
}

func setupStats() (*StatsService, *repository.LinkRepository, *gorm.DB) {
	db := setupTestDB()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	activity := repository.NewActivityLog(db)
	links := repository.NewLinkRepository(db, activity, logger)
	stats := NewStatsService(db, links, activity, logger)
	return stats, links, db
}
