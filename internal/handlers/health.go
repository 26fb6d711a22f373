package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health reports liveness plus database reachability and whether the
// assistant has a provider key. No credentials are echoed.
func (h *Handler) Health(c *gin.Context) {
	status := "healthy"
	dbOK := true

	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		status = "degraded"
		dbOK = false
	}

	code := http.StatusOK
	if !dbOK {
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":               status,
		"timestamp":            time.Now().UTC(),
		"database":             dbOK,
		"assistant_configured": h.assistant.Configured(),
	})
}
