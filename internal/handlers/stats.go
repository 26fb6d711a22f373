package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.stats.Compute(ctx)
	if err != nil {
		h.logger.Error("failed to compute statistics", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	top, err := h.stats.TopLinks(ctx, 5)
	if err != nil {
		h.logger.Error("failed to rank top links", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_links":           stats.TotalLinks,
		"links_this_week":       stats.LinksThisWeek,
		"most_used_category":    stats.MostUsedCategory,
		"category_distribution": stats.CategoryDistribution,
		"total_clicks":          stats.TotalClicks,
		"team_activity":         stats.TeamActivity,
		"top_links":             top,
	})
}

func (h *Handler) RecentActivity(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	entries, err := h.activity.Recent(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("failed to fetch activity", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activity"})
		return
	}

	c.JSON(http.StatusOK, entries)
}
