package handlers

import (
	"net/http"

	"salesbot/models"
	"salesbot/services/billing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuoteHandler serves the standalone pricing endpoint.
type QuoteHandler struct {
	Svc    billing.BillingService
	Logger *zap.Logger
}

func NewQuoteHandler(svc billing.BillingService, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{Svc: svc, Logger: logger}
}

// HandleQuote handles POST /api/quote.
func (h *QuoteHandler) HandleQuote(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Error("HandleQuote: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, h.Svc.Quote(req))
}
