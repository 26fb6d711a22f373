package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"linkhub/internal/config"
	"linkhub/internal/models"
	"linkhub/internal/repository"
	"linkhub/internal/services"

	"gorm.io/gorm"
)

type Handler struct {
	cfg        config.Config
	logger     *slog.Logger
	db         *gorm.DB
	links      *repository.LinkRepository
	categories *repository.CategoryRepository
	activity   *repository.ActivityLog
	stats      *services.StatsService
	importer   *services.ImportService
	assistant  *services.AssistantService
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	db *gorm.DB,
	links *repository.LinkRepository,
	categories *repository.CategoryRepository,
	activity *repository.ActivityLog,
	stats *services.StatsService,
	importer *services.ImportService,
	assistant *services.AssistantService,
) *Handler {
	return &Handler{
		cfg:        cfg,
		logger:     logger,
		db:         db,
		links:      links,
		categories: categories,
		activity:   activity,
		stats:      stats,
		importer:   importer,
		assistant:  assistant,
	}
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrNoURLs):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
