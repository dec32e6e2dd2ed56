package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"staycation/database"
	"staycation/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReservationRepository defines methods for reservation data access.
type ReservationRepository interface {
	// Create inserts a new reservation.
	Create(ctx context.Context, reservation *models.Reservation) error
	// ListByListing returns every reservation of a listing ordered by start.
	ListByListing(ctx context.Context, listingID string) ([]models.Reservation, error)
	// ListByUser returns the reservations made by a user, most recent first.
	ListByUser(ctx context.Context, userID string) ([]models.Reservation, error)
	// FindHourlyOnDay returns the hourly reservations of a listing starting
	// on the UTC calendar day of day.
	FindHourlyOnDay(ctx context.Context, listingID string, day time.Time) ([]models.Reservation, error)
	// FindOverlapping returns reservations of any type whose inclusive
	// [startDate, endDate] range touches [start, end].
	FindOverlapping(ctx context.Context, listingID string, start, end time.Time) ([]models.Reservation, error)
}

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo constructs a MongoDB-backed ReservationRepository.
func NewMongoReservationRepo() ReservationRepository {
	repo := &mongoReservationRepo{
		coll: database.Database().Collection("reservations"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create reservation indexes: %v\n", err)
	}
	return repo
}
