package listingRepo

import (
	"context"
	"fmt"

	"staycation/database"
	"staycation/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ListingRepository defines methods for listing data access.
type ListingRepository interface {
	// GetByID returns the listing, or nil when it does not exist.
	GetByID(ctx context.Context, id string) (*models.Listing, error)
	// List returns listings matching the filter, newest first.
	List(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error)
	// Create inserts a new listing.
	Create(ctx context.Context, listing *models.Listing) error
}

type mongoListingRepo struct {
	coll *mongo.Collection
}

// NewMongoListingRepo constructs a MongoDB-backed ListingRepository.
func NewMongoListingRepo() ListingRepository {
	repo := &mongoListingRepo{
		coll: database.Database().Collection("listings"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create listing indexes: %v\n", err)
	}
	return repo
}
