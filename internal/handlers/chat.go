package handlers

import (
	"net/http"

	"linkhub/internal/services"

	"github.com/gin-gonic/gin"
)

type ChatRequest struct {
	Message string                 `json:"message"`
	History []services.ChatMessage `json:"history,omitempty"`
}

// Chat always answers 200: the assistant degrades internally rather
// than surfacing provider or storage errors to the client.
func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply := h.assistant.Respond(c.Request.Context(), req.Message, req.History)
	c.JSON(http.StatusOK, reply)
}
