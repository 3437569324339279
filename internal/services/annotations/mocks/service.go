// Package mocks provides a testify mock of the annotation service for
// handler tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/killallgit/jamjot-api/internal/models"
	"github.com/killallgit/jamjot-api/internal/services/annotations"
)

// Service is a mock implementation of annotations.Service
type Service struct {
	mock.Mock
}

var _ annotations.Service = (*Service)(nil)

func (m *Service) GetPlaylistNote(ctx context.Context, userID, playlistID string) (string, error) {
	args := m.Called(ctx, userID, playlistID)
	return args.String(0), args.Error(1)
}

func (m *Service) EditPlaylistNote(ctx context.Context, userID, playlistID, note string) (*models.Playlist, error) {
	args := m.Called(ctx, userID, playlistID, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Playlist), args.Error(1)
}

func (m *Service) DeletePlaylistNote(ctx context.Context, userID, playlistID string) (*models.Playlist, error) {
	args := m.Called(ctx, userID, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Playlist), args.Error(1)
}

func (m *Service) GetTrackNote(ctx context.Context, userID string, key models.MembershipKey) (string, error) {
	args := m.Called(ctx, userID, key)
	return args.String(0), args.Error(1)
}

func (m *Service) EditTrackNote(ctx context.Context, userID string, key models.MembershipKey, note string) (*models.PlaylistMember, error) {
	args := m.Called(ctx, userID, key, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlaylistMember), args.Error(1)
}

func (m *Service) DeleteTrackNote(ctx context.Context, userID string, key models.MembershipKey) (*models.PlaylistMember, error) {
	args := m.Called(ctx, userID, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlaylistMember), args.Error(1)
}

func (m *Service) AddTimestamp(ctx context.Context, userID string, key models.MembershipKey, start, end, note string) (*models.Timestamp, error) {
	args := m.Called(ctx, userID, key, start, end, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Timestamp), args.Error(1)
}

func (m *Service) EditTimestampNote(ctx context.Context, userID, timestampID, note string) (*models.Timestamp, error) {
	args := m.Called(ctx, userID, timestampID, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Timestamp), args.Error(1)
}

func (m *Service) DeleteTimestamp(ctx context.Context, userID, timestampID string) error {
	args := m.Called(ctx, userID, timestampID)
	return args.Error(0)
}

func (m *Service) ListTimestamps(ctx context.Context, userID string, key models.MembershipKey) ([]models.Timestamp, error) {
	args := m.Called(ctx, userID, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Timestamp), args.Error(1)
}

func (m *Service) ListPlaylists(ctx context.Context, userID string) ([]annotations.PlaylistSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]annotations.PlaylistSummary), args.Error(1)
}

func (m *Service) ListPlaylistTracks(ctx context.Context, userID, playlistID string) ([]annotations.TrackSummary, error) {
	args := m.Called(ctx, userID, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]annotations.TrackSummary), args.Error(1)
}
