package handlers

import (
	"log/slog"
	"os"

	"linkhub/internal/config"
	"linkhub/internal/models"
	"linkhub/internal/repository"
	"linkhub/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestHandler() (*Handler, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database: " + err.Error())
	}
	if err := db.AutoMigrate(&models.Link{}, &models.Category{}, &models.ActivityEntry{}); err != nil {
		panic("failed to migrate database: " + err.Error())
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Config{
		AppEnv:      "test",
		GeminiModel: "gemini-1.5-flash",
	}

	activity := repository.NewActivityLog(db)
	links := repository.NewLinkRepository(db, activity, logger)
	categories := repository.NewCategoryRepository(db)
	stats := services.NewStatsService(db, links, activity, logger)
	importer := services.NewImportService(links, logger)
	assistant := services.NewAssistantService(stats, links, logger, cfg.GeminiAPIKey, cfg.GeminiModel)

	h := NewHandler(cfg, logger, db, links, categories, activity, stats, importer, assistant)
	return h, db
}

func setupTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return h.SetupRouter(nil)
}
