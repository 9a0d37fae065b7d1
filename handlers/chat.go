package handlers

import (
	"net/http"

	"salesbot/models"
	"salesbot/services/chat"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler serves the turn endpoint.
type ChatHandler struct {
	Svc    chat.ChatService
	Logger *zap.Logger
}

func NewChatHandler(svc chat.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Svc: svc, Logger: logger}
}

// HandleChat handles POST /api/chat. Upstream model failures never surface
// as HTTP errors here; the resolver degrades to catalog-grounded replies.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Error("HandleChat: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	resp := h.Svc.Resolve(c.Request.Context(), req)
	c.JSON(http.StatusOK, resp)
}
