package users

import (
	"context"

	"github.com/killallgit/jamjot-api/internal/models"
)

// Repository defines the data access interface for users
type Repository interface {
	FindOrCreate(ctx context.Context, userID, displayName string) (*models.User, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
	UpdateDisplayName(ctx context.Context, userID, displayName string) error
}

// Service defines the user registration operations
type Service interface {
	EnsureUser(ctx context.Context, userID, displayName string) (*models.User, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
}
