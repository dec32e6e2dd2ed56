package routes

import (
	"time"

	"staycation/handlers"
	"staycation/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterListingRoutes registers the public listing endpoints.
func RegisterListingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/listings")
	{
		api.GET("", hb.ListListings)
		api.GET("/:id", hb.GetListing)
		api.GET("/:id/availability", hb.GetAvailability)
		api.GET("/:id/quote", hb.GetQuote)
	}
}

// RegisterReservationRoutes registers reservation endpoints for the current user.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reservations")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("", hb.CreateReservation)
		api.GET("", hb.ListTrips)
	}
}

// RegisterBookingRoutes sets up the endpoints of the booking flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		bookingGroup.POST("/session", hb.InitiateSession)
		bookingGroup.PUT("/session/:sessionID", hb.UpdateSession)
		bookingGroup.POST("/session/:sessionID/confirm", hb.ConfirmSession)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelSession)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterListingRoutes(r, hb)
	RegisterReservationRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
