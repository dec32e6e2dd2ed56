package userRepo

import (
	"context"

	"staycation/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID, or nil when there is none.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
}
