package listingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"staycation/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoListingRepo) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var listing models.Listing
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&listing)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get listing %s: %w", id, err)
	}
	return &listing, nil
}

func buildFilter(f models.ListingFilter) bson.M {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.LocationValue != "" {
		filter["locationValue"] = f.LocationValue
	}
	if f.GuestCount > 0 {
		filter["guestCount"] = bson.M{"$gte": f.GuestCount}
	}
	if f.RoomCount > 0 {
		filter["roomCount"] = bson.M{"$gte": f.RoomCount}
	}
	return filter
}

func (r *mongoListingRepo) List(ctx context.Context, f models.ListingFilter) ([]models.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, buildFilter(f), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	defer cursor.Close(ctx)

	listings := []models.Listing{}
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode listings: %w", err)
	}
	return listings, nil
}

func (r *mongoListingRepo) Create(ctx context.Context, listing *models.Listing) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if listing.ID == "" {
		listing.ID = uuid.New().String()
	}
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, listing); err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}
	return nil
}
