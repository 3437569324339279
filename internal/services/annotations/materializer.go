package annotations

import (
	"context"
	"errors"

	"github.com/killallgit/jamjot-api/internal/metrics"
	"github.com/killallgit/jamjot-api/internal/models"

	apperrors "github.com/killallgit/jamjot-api/pkg/errors"
)

// maxResolveAttempts bounds resolve-or-materialize to one materialization
// followed by one more resolve.
const maxResolveAttempts = 2

// resolveOrMaterialize resolves a reference, materializing its shadow rows
// once if the catalog confirms it. A second NeedsMaterialization is a hard
// failure.
func resolveOrMaterialize[T any](resolve func() (Resolution[T], error), materialize func() error) (*T, error) {
	for attempt := 1; ; attempt++ {
		res, err := resolve()
		if err != nil {
			return nil, err
		}

		switch res.Kind {
		case Found:
			return res.Value, nil
		case Rejected:
			return nil, res.Rejection.Err()
		}

		if attempt == maxResolveAttempts {
			return nil, apperrors.Internal("materialization did not converge")
		}
		if err := materialize(); err != nil {
			return nil, err
		}
	}
}

// materializePlaylist creates the playlist shadow after re-confirming it
// exists remotely and belongs to userID.
func (s *ServiceImpl) materializePlaylist(ctx context.Context, userID, playlistID string) error {
	remote, err := s.confirmPlaylist(ctx, userID, playlistID)
	if err != nil {
		return err
	}
	if remote.Kind == Rejected {
		return remote.Rejection.Err()
	}

	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.NotFound("user", userID)
		}
		return err
	}

	_, created, err := s.repo.CreatePlaylistIfAbsent(ctx, &models.Playlist{
		ID:     remote.Value.ID,
		Name:   remote.Value.Name,
		UserID: userID,
	})
	if err != nil {
		return err
	}
	if created {
		metrics.Materializations.WithLabelValues("playlist").Inc()
		s.logger.Info("materialized playlist", "playlist_id", playlistID, "user_id", userID)
	}
	return nil
}

// materializeMembership creates the track shadow, if the track has never been
// seen, and then the membership row. The playlist shadow must already exist.
func (s *ServiceImpl) materializeMembership(ctx context.Context, key models.MembershipKey) error {
	remote, err := s.confirmMembership(ctx, key)
	if err != nil {
		return err
	}
	if remote.Kind == Rejected {
		return remote.Rejection.Err()
	}
	track := remote.Value.Track()

	_, created, err := s.repo.CreateTrackIfAbsent(ctx, &models.Track{
		ID:         track.ID,
		Name:       track.Name,
		Artists:    track.Artists,
		DurationMS: track.Duration.Milliseconds(),
	})
	if err != nil {
		return err
	}
	if created {
		metrics.Materializations.WithLabelValues("track").Inc()
		s.logger.Info("materialized track", "track_id", track.ID)
	}

	_, created, err = s.repo.CreateMembershipIfAbsent(ctx, &models.PlaylistMember{
		TrackID:    key.TrackID,
		PlaylistID: key.PlaylistID,
		Position:   key.Position,
	})
	if err != nil {
		return err
	}
	if created {
		metrics.Materializations.WithLabelValues("membership").Inc()
		s.logger.Info("materialized membership", "membership", key.String())
	}
	return nil
}

// playlistForWrite returns the caller's playlist shadow, creating it if needed
func (s *ServiceImpl) playlistForWrite(ctx context.Context, userID, playlistID string) (*models.Playlist, error) {
	return resolveOrMaterialize(
		func() (Resolution[models.Playlist], error) {
			return s.resolvePlaylist(ctx, userID, playlistID)
		},
		func() error {
			return s.materializePlaylist(ctx, userID, playlistID)
		},
	)
}

// membershipForWrite returns the caller's membership row, cascading through
// the playlist, track and membership shadows as needed.
func (s *ServiceImpl) membershipForWrite(ctx context.Context, userID string, key models.MembershipKey) (*models.PlaylistMember, error) {
	return resolveOrMaterialize(
		func() (Resolution[models.PlaylistMember], error) {
			return s.resolveMembership(ctx, userID, key)
		},
		func() error {
			if _, err := s.playlistForWrite(ctx, userID, key.PlaylistID); err != nil {
				return err
			}
			return s.materializeMembership(ctx, key)
		},
	)
}
