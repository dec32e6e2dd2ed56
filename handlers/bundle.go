package handlers

import (
	userRepoPkg "staycation/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all your endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Listing endpoints
	ListListings    gin.HandlerFunc
	GetListing      gin.HandlerFunc
	GetAvailability gin.HandlerFunc
	GetQuote        gin.HandlerFunc

	// Reservation endpoints
	CreateReservation gin.HandlerFunc
	ListTrips         gin.HandlerFunc

	// Booking session endpoints
	InitiateSession gin.HandlerFunc
	UpdateSession   gin.HandlerFunc
	ConfirmSession  gin.HandlerFunc
	CancelSession   gin.HandlerFunc

	Health gin.HandlerFunc
}
