package handlers

import (
	"fmt"
	"net/http"
	"time"

	"linkhub/internal/repository"

	"github.com/gin-gonic/gin"
)

// ExportLinks streams a full snapshot (links, categories, statistics)
// as a JSON attachment.
func (h *Handler) ExportLinks(c *gin.Context) {
	ctx := c.Request.Context()

	links, err := h.links.List(ctx, repository.ListFilter{})
	if err != nil {
		h.logger.Error("failed to export links", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export links"})
		return
	}

	cats, err := h.categories.ListAll(ctx)
	if err != nil {
		h.logger.Error("failed to export categories", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export links"})
		return
	}

	stats, err := h.stats.Compute(ctx)
	if err != nil {
		h.logger.Error("failed to export statistics", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export links"})
		return
	}

	filename := fmt.Sprintf("links-export-%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, gin.H{
		"exported_at": time.Now().UTC(),
		"count":       len(links),
		"links":       links,
		"categories":  cats,
		"statistics":  stats,
	})
}
