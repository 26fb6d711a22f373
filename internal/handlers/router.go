package handlers

import (
	"linkhub/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) SetupRouter(rateLimiter *services.IPRateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(h.RequestLogger())

	if rateLimiter != nil {
		r.Use(h.RateLimitMiddleware(rateLimiter))
	}

	r.GET("/health", h.Health)

	api := r.Group("/api")
	{
		api.GET("/links", h.ListLinks)
		api.POST("/links", h.CreateLink)
		api.PUT("/links/:id", h.UpdateLink)
		api.DELETE("/links/:id", h.DeleteLink)
		api.POST("/links/:id/click", h.RecordClick)
		api.GET("/links/:id/qr", h.LinkQR)

		api.GET("/categories", h.ListCategories)
		api.POST("/categories", h.CreateCategory)

		api.GET("/stats", h.GetStats)
		api.GET("/activity", h.RecentActivity)
		api.POST("/import", h.ImportLinks)
		api.POST("/chat", h.Chat)
		api.GET("/export", h.ExportLinks)
	}

	return r
}
