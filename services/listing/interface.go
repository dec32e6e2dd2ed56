package listing

import (
	"context"
	"time"

	listingRepo "staycation/database/repository/listing"
	reservationRepo "staycation/database/repository/reservation"
	"staycation/models"
)

type ListingService interface {
	ListListings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error)
	GetListing(ctx context.Context, id string) (*models.ListingWithReservations, error)
	GetAvailability(ctx context.Context, id, date, startTime string) (*models.Availability, error)
	QuotePrice(ctx context.Context, id string, sel models.FlowSelection) (*models.PriceQuote, error)
}

// DefaultListingService is the production implementation.
type DefaultListingService struct {
	Listings     listingRepo.ListingRepository
	Reservations reservationRepo.ReservationRepository
	Rules        models.BookingRules
	// Now is used to pick the day when none is requested.
	Now func() time.Time
}
