package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"staycation/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoReservationRepo) Create(ctx context.Context, reservation *models.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if reservation.ID == "" {
		reservation.ID = uuid.New().String()
	}
	if reservation.CreatedAt.IsZero() {
		reservation.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, reservation); err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

func (r *mongoReservationRepo) find(ctx context.Context, filter bson.M, sort bson.D) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reservations := []models.Reservation{}
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *mongoReservationRepo) ListByListing(ctx context.Context, listingID string) ([]models.Reservation, error) {
	res, err := r.find(ctx, bson.M{"listingId": listingID}, bson.D{{Key: "startDate", Value: 1}})
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations for listing %s: %w", listingID, err)
	}
	return res, nil
}

func (r *mongoReservationRepo) ListByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	res, err := r.find(ctx, bson.M{"userId": userID}, bson.D{{Key: "createdAt", Value: -1}})
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations for user %s: %w", userID, err)
	}
	return res, nil
}
