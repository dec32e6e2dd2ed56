package handlers

import (
	"net/http"

	"staycation/models"
	"staycation/services/listing"
	"staycation/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ListingHandler struct {
	Service listing.ListingService
	Logger  *zap.Logger
}

func NewListingHandler(svc listing.ListingService, logger *zap.Logger) *ListingHandler {
	return &ListingHandler{Service: svc, Logger: logger}
}

// ListListings handles GET /api/listings.
func (h *ListingHandler) ListListings(c *gin.Context) {
	var filter models.ListingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter", err.Error())
		return
	}
	listings, err := h.Service.ListListings(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.Logger, err, "Failed to load listings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": listings})
}

// GetListing handles GET /api/listings/:id.
func (h *ListingHandler) GetListing(c *gin.Context) {
	result, err := h.Service.GetListing(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, err, "Failed to load listing")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetAvailability handles GET /api/listings/:id/availability?date=&startTime=.
func (h *ListingHandler) GetAvailability(c *gin.Context) {
	availability, err := h.Service.GetAvailability(c.Request.Context(), c.Param("id"), c.Query("date"), c.Query("startTime"))
	if err != nil {
		respondError(c, h.Logger, err, "Failed to load availability")
		return
	}
	c.JSON(http.StatusOK, availability)
}

// GetQuote handles GET /api/listings/:id/quote.
func (h *ListingHandler) GetQuote(c *gin.Context) {
	var sel models.FlowSelection
	if err := c.ShouldBindQuery(&sel); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid selection", err.Error())
		return
	}
	quote, err := h.Service.QuotePrice(c.Request.Context(), c.Param("id"), sel)
	if err != nil {
		respondError(c, h.Logger, err, "Failed to price selection")
		return
	}
	c.JSON(http.StatusOK, quote)
}
