package booking

import (
	"context"

	listingRepo "staycation/database/repository/listing"
	reservationRepo "staycation/database/repository/reservation"
	"staycation/models"

	"go.uber.org/zap"
)

// ReservationService creates reservations after re-validating them.
type ReservationService interface {
	CreateReservation(ctx context.Context, userID string, req models.ReservationRequest) (*models.Reservation, *models.ListingWithReservations, error)
	ListTrips(ctx context.Context, userID string) ([]models.Trip, error)
}

// BookingSessionService drives a BookingFlow across requests.
type BookingSessionService interface {
	InitiateSession(ctx context.Context, userID, listingID string) (*models.BookingFlow, error)
	UpdateSession(ctx context.Context, userID, sessionID string, sel models.FlowSelection) (*models.BookingFlow, error)
	ConfirmSession(ctx context.Context, userID, sessionID string) (*models.BookingFlow, *models.ListingWithReservations, error)
	CancelSession(ctx context.Context, userID, sessionID string) error
}

// ReminderScheduler queues a check-in reminder for a new reservation.
type ReminderScheduler interface {
	ScheduleCheckInReminder(ctx context.Context, r models.Reservation, listing models.Listing) error
}

// DefaultReservationService implements ReservationService.
type DefaultReservationService struct {
	Listings     listingRepo.ListingRepository
	Reservations reservationRepo.ReservationRepository
	Reminders    ReminderScheduler
	Rules        models.BookingRules
	Logger       *zap.Logger
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	Store        FlowStore
	Listings     listingRepo.ListingRepository
	Reservations reservationRepo.ReservationRepository
	Creator      ReservationService
	Rules        models.BookingRules
}
