package repository

import (
	"log/slog"
	"os"

	"linkhub/internal/models"

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

func setupLinkRepo() (*LinkRepository, *ActivityLog, *gorm.DB) {
	db := setupTestDB()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	activity := NewActivityLog(db)
	return NewLinkRepository(db, activity, logger), activity, db
}
