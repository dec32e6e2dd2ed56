package handlers

import (
	"net/http"

	"staycation/models"
	"staycation/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	Service booking.BookingSessionService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingSessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// InitiateSession handles POST /api/booking/session.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	var input struct {
		ListingID string `json:"listingId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ListingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "listingId is required"})
		return
	}

	flow, err := h.Service.InitiateSession(c.Request.Context(), userID, input.ListingID)
	if err != nil {
		respondError(c, h.Logger, err, "Failed to start booking session")
		return
	}
	c.JSON(http.StatusCreated, flow)
}

// UpdateSession handles PUT /api/booking/session/:sessionID.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	var sel models.FlowSelection
	if err := c.ShouldBindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	flow, err := h.Service.UpdateSession(c.Request.Context(), userID, c.Param("sessionID"), sel)
	if err != nil {
		respondError(c, h.Logger, err, "Failed to update booking session")
		return
	}
	c.JSON(http.StatusOK, flow)
}

// ConfirmSession handles POST /api/booking/session/:sessionID/confirm.
func (h *BookingHandler) ConfirmSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	flow, listing, err := h.Service.ConfirmSession(c.Request.Context(), userID, c.Param("sessionID"))
	if err != nil {
		if flow != nil {
			status := statusOf(err)
			if status == http.StatusInternalServerError {
				h.Logger.Error(createReservationFailed, zap.String("sessionId", flow.SessionID), zap.Error(err))
			}
			c.JSON(status, gin.H{"error": flow.Error, "session": flow})
			return
		}
		respondError(c, h.Logger, err, createReservationFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": flow, "listing": listing})
}

// CancelSession handles DELETE /api/booking/session/:sessionID.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	if err := h.Service.CancelSession(c.Request.Context(), userID, c.Param("sessionID")); err != nil {
		respondError(c, h.Logger, err, "Failed to cancel booking session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking session cancelled"})
}
