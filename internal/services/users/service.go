// Package users registers catalog accounts the first time they sign in.
package users

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/killallgit/jamjot-api/internal/models"

	apperrors "github.com/killallgit/jamjot-api/pkg/errors"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repo   Repository
	logger *log.Logger
}

// NewService creates a new user service
func NewService(repo Repository, logger *log.Logger) *ServiceImpl {
	if logger == nil {
		logger = log.Default()
	}
	return &ServiceImpl{repo: repo, logger: logger}
}

// EnsureUser registers userID on first sign-in and keeps the display name
// current on later ones.
func (s *ServiceImpl) EnsureUser(ctx context.Context, userID, displayName string) (*models.User, error) {
	if userID == "" {
		return nil, apperrors.ValidationError("user_id", "is required")
	}

	user, err := s.repo.FindOrCreate(ctx, userID, displayName)
	if err != nil {
		return nil, err
	}

	if displayName != "" && user.DisplayName != displayName {
		if err := s.repo.UpdateDisplayName(ctx, userID, displayName); err != nil {
			return nil, err
		}
		user.DisplayName = displayName
	}

	s.logger.Debug("user signed in", "user_id", userID)
	return user, nil
}

// GetUser returns a registered user
func (s *ServiceImpl) GetUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperrors.NotFound("user", userID)
		}
		return nil, err
	}
	return user, nil
}
