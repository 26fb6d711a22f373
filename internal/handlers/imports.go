package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ImportRequest struct {
	Text     string `json:"text" binding:"required"`
	Category string `json:"category,omitempty"`
	AddedBy  string `json:"added_by,omitempty"`
}

func (h *Handler) ImportLinks(c *gin.Context) {
	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.importer.ImportFromText(c.Request.Context(), req.Text, req.Category, req.AddedBy)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
