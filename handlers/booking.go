package handlers

import (
	"errors"
	"net/http"

	"shareyourspace/models"
	"shareyourspace/services/booking"
	"shareyourspace/services/pricing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the quote-session flow.
type BookingHandler struct {
	Service booking.SessionService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.SessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// InitiateSession handles POST /api/bookings/session: it prices the request
// and caches the quote for confirmation.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.Initiate(req)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrListingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, pricing.ErrInvalidRange), errors.Is(err, pricing.ErrNoAvailableUnit):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			h.Logger.Error("failed to initiate booking session", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to initiate booking session"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionID": session.ID,
		"session":   session,
	})
}

// ConfirmSession handles POST /api/bookings/session/:sessionID/confirm and
// returns the booking acknowledgment.
func (h *BookingHandler) ConfirmSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	summary, err := h.Service.Confirm(sessionID)
	if err != nil {
		if errors.Is(err, booking.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
			return
		}
		h.Logger.Error("failed to confirm booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to confirm booking"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// CancelSession handles DELETE /api/bookings/session/:sessionID.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Service.Cancel(sessionID); err != nil {
		h.Logger.Error("failed to cancel booking session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
