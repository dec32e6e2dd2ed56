package booking

import (
	"context"
	"time"

	reservationRepo "staycation/database/repository/reservation"
	"staycation/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func checkRequiredFields(req models.ReservationRequest) error {
	if req.ListingID == "" || req.StartDate == "" || req.TotalPrice == 0 {
		return NewMissingFieldError("Missing required fields")
	}
	if req.BookingType == models.BookingTypeHourly && (req.StartTime == "" || req.EndTime == "") {
		return NewMissingFieldError("Start time and end time are required for hourly bookings")
	}
	return nil
}

func selectionOf(req models.ReservationRequest) models.FlowSelection {
	return models.FlowSelection{
		BookingType: req.BookingType,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}
}

// conflictsFor loads the stored reservations that can conflict with the
// selection: hourly bookings on the same day, or anything touching the
// requested days.
func conflictsFor(ctx context.Context, repo reservationRepo.ReservationRepository, listingID string, sel models.FlowSelection) ([]models.Reservation, error) {
	start, end, err := selectionDays(sel)
	if err != nil {
		return nil, err
	}
	if sel.BookingType == models.BookingTypeHourly {
		return repo.FindHourlyOnDay(ctx, listingID, start)
	}
	return repo.FindOverlapping(ctx, listingID, start, end)
}

// CreateReservation re-validates a request against the store and persists
// it, returning the new reservation and its listing with every reservation.
// The check and the write are not atomic: two concurrent requests for the
// same slot can both succeed.
func (s *DefaultReservationService) CreateReservation(ctx context.Context, userID string, req models.ReservationRequest) (*models.Reservation, *models.ListingWithReservations, error) {
	if req.BookingType == "" {
		req.BookingType = models.BookingTypeDaily
	}
	if err := checkRequiredFields(req); err != nil {
		return nil, nil, err
	}

	listing, err := s.Listings.GetByID(ctx, req.ListingID)
	if err != nil {
		return nil, nil, NewPersistenceError("Failed to create reservation", err)
	}
	if listing == nil {
		return nil, nil, NewNotFoundError("Listing not found")
	}

	sel := selectionOf(req)
	start, end, err := selectionDays(sel)
	if err != nil {
		return nil, nil, err
	}
	existing, err := conflictsFor(ctx, s.Reservations, listing.ID, sel)
	if err != nil {
		s.Logger.Error("failed to load reservations", zap.String("listingId", listing.ID), zap.Error(err))
		return nil, nil, NewPersistenceError("Failed to create reservation", err)
	}
	quote, err := Evaluate(*listing, sel, existing, s.Rules)
	if err != nil {
		return nil, nil, err
	}
	if quote.TotalPrice != req.TotalPrice {
		s.Logger.Warn("client total price differs from server quote",
			zap.String("listingId", listing.ID),
			zap.Int("clientTotal", req.TotalPrice),
			zap.Int("serverTotal", quote.TotalPrice))
	}

	reservation := models.Reservation{
		ID:          uuid.New().String(),
		ListingID:   listing.ID,
		UserID:      userID,
		StartDate:   start,
		EndDate:     end,
		BookingType: req.BookingType,
		TotalPrice:  quote.TotalPrice,
		CreatedAt:   time.Now(),
	}
	if req.BookingType == models.BookingTypeHourly {
		reservation.StartTime = req.StartTime
		reservation.EndTime = req.EndTime
	}

	if err := s.Reservations.Create(ctx, &reservation); err != nil {
		s.Logger.Error("Reservation error", zap.String("listingId", listing.ID), zap.Error(err))
		return nil, nil, NewPersistenceError("Failed to create reservation", err)
	}
	s.Logger.Info("reservation created",
		zap.String("reservationId", reservation.ID),
		zap.String("listingId", listing.ID),
		zap.String("bookingType", reservation.BookingType),
		zap.Int("totalPrice", reservation.TotalPrice))

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleCheckInReminder(ctx, reservation, *listing); err != nil {
			s.Logger.Warn("failed to schedule check-in reminder",
				zap.String("reservationId", reservation.ID), zap.Error(err))
		}
	}

	all, err := s.Reservations.ListByListing(ctx, listing.ID)
	if err != nil {
		s.Logger.Warn("failed to reload listing reservations",
			zap.String("listingId", listing.ID), zap.Error(err))
		all = []models.Reservation{reservation}
	}
	return &reservation, &models.ListingWithReservations{Listing: *listing, Reservations: all}, nil
}

// ListTrips returns the user's reservations with their listings.
func (s *DefaultReservationService) ListTrips(ctx context.Context, userID string) ([]models.Trip, error) {
	reservations, err := s.Reservations.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewPersistenceError("Failed to load trips", err)
	}

	listings := make(map[string]*models.Listing)
	trips := make([]models.Trip, 0, len(reservations))
	for _, r := range reservations {
		listing, ok := listings[r.ListingID]
		if !ok {
			listing, err = s.Listings.GetByID(ctx, r.ListingID)
			if err != nil {
				return nil, NewPersistenceError("Failed to load trips", err)
			}
			listings[r.ListingID] = listing
		}
		trips = append(trips, models.Trip{Reservation: r, Listing: listing, Label: r.Label()})
	}
	return trips, nil
}
