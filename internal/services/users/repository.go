package users

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/killallgit/jamjot-api/internal/models"
)

// ErrNotFound is returned when no user matches
var ErrNotFound = errors.New("user not found")

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new user repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindOrCreate(ctx context.Context, userID, displayName string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Attrs(models.User{ID: userID, DisplayName: displayName}).
		FirstOrCreate(&user).Error
	if err != nil {
		return nil, fmt.Errorf("finding or creating user: %w", err)
	}
	return &user, nil
}

func (r *repository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return &user, nil
}

func (r *repository) UpdateDisplayName(ctx context.Context, userID, displayName string) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("user_id = ?", userID).
		Update("display_name", displayName)
	if result.Error != nil {
		return fmt.Errorf("updating user: %w", result.Error)
	}
	return nil
}
