package handlers

import (
	"net/http"

	"staycation/models"
	"staycation/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const createReservationFailed = "Failed to create reservation"

type ReservationHandler struct {
	Service booking.ReservationService
	Logger  *zap.Logger
}

func NewReservationHandler(svc booking.ReservationService, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{Service: svc, Logger: logger}
}

// CreateReservation handles POST /api/reservations.
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	var req models.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	_, listing, err := h.Service.CreateReservation(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, h.Logger, err, createReservationFailed)
		return
	}
	c.JSON(http.StatusOK, listing)
}

// ListTrips handles GET /api/reservations.
func (h *ReservationHandler) ListTrips(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	trips, err := h.Service.ListTrips(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.Logger, err, "Failed to load trips")
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips})
}
