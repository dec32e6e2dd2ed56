package listing

import (
	"context"
	"fmt"
	"time"

	"staycation/models"
	"staycation/services/booking"
)

func (s *DefaultListingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultListingService) ListListings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	listings, err := s.Listings.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	if listings == nil {
		listings = []models.Listing{}
	}
	return listings, nil
}

func (s *DefaultListingService) getListing(ctx context.Context, id string) (*models.Listing, error) {
	listing, err := s.Listings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load listing %s: %w", id, err)
	}
	if listing == nil {
		return nil, booking.NewNotFoundError("Listing not found")
	}
	return listing, nil
}

// GetListing returns a listing with all of its reservations.
func (s *DefaultListingService) GetListing(ctx context.Context, id string) (*models.ListingWithReservations, error) {
	listing, err := s.getListing(ctx, id)
	if err != nil {
		return nil, err
	}
	reservations, err := s.Reservations.ListByListing(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load reservations of %s: %w", id, err)
	}
	if reservations == nil {
		reservations = []models.Reservation{}
	}
	return &models.ListingWithReservations{Listing: *listing, Reservations: reservations}, nil
}

// GetAvailability builds the reservation widget view of a listing for date
// ("YYYY-MM-DD", today in UTC when empty). When startTime is set the valid
// end times for it are included.
func (s *DefaultListingService) GetAvailability(ctx context.Context, id, date, startTime string) (*models.Availability, error) {
	day := s.now().UTC().Format(models.DayLayout)
	if date != "" {
		parsed, err := booking.ParseDay(date)
		if err != nil {
			return nil, booking.NewInvalidTimeRangeError("Invalid date")
		}
		day = parsed.Format(models.DayLayout)
	}

	listing, err := s.getListing(ctx, id)
	if err != nil {
		return nil, err
	}
	reservations, err := s.Reservations.ListByListing(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load reservations of %s: %w", id, err)
	}

	slots := booking.DisabledTimeSlots(reservations, day, s.Rules)
	availability := &models.Availability{
		ListingID:           listing.ID,
		Date:                day,
		NightlyPrice:        listing.Price,
		HourlyPrice:         booking.HourlyRate(listing.Price, s.Rules),
		DisabledDates:       booking.DisabledDates(reservations),
		DisabledTimeSlots:   slots,
		AvailableStartTimes: booking.AvailableStartTimes(slots, s.Rules),
		Rules:               s.Rules.Describe(),
	}
	if startTime != "" {
		ends, err := booking.AvailableEndTimes(startTime, slots, s.Rules)
		if err != nil {
			return nil, err
		}
		availability.AvailableEndTimes = ends
	}
	return availability, nil
}

// QuotePrice validates a selection against the listing's reservations and
// prices it without booking anything.
func (s *DefaultListingService) QuotePrice(ctx context.Context, id string, sel models.FlowSelection) (*models.PriceQuote, error) {
	listing, err := s.getListing(ctx, id)
	if err != nil {
		return nil, err
	}
	if sel.BookingType == "" {
		sel.BookingType = models.BookingTypeDaily
	}
	reservations, err := s.Reservations.ListByListing(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load reservations of %s: %w", id, err)
	}
	quote, err := booking.Evaluate(*listing, sel, reservations, s.Rules)
	if err != nil {
		return nil, err
	}
	return &quote, nil
}
