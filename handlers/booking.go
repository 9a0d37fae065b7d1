package handlers

import (
	"net/http"

	"salesbot/models"
	"salesbot/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves booking persistence and slot suggestion.
type BookingHandler struct {
	BookingSvc booking.BookingService
	Scheduler  booking.SchedulingService
	Logger     *zap.Logger
}

func NewBookingHandler(bookingSvc booking.BookingService, scheduler booking.SchedulingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{BookingSvc: bookingSvc, Scheduler: scheduler, Logger: logger}
}

// CreateBooking handles POST /api/book.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.Booking
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Error("CreateBooking: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	id, err := h.BookingSvc.Save(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("CreateBooking: failed to save booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to save booking",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookingId": id})
}

// GetBooking handles GET /api/book/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")

	record, err := h.BookingSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.Logger.Warn("GetBooking: booking not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}

	c.JSON(http.StatusOK, record)
}

// SuggestSlot handles GET /api/slot/suggest.
func (h *BookingHandler) SuggestSlot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"next": h.Scheduler.SuggestNextSlot()})
}
