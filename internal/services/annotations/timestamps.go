package annotations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/killallgit/jamjot-api/internal/models"
	"github.com/killallgit/jamjot-api/pkg/interval"

	apperrors "github.com/killallgit/jamjot-api/pkg/errors"
)

// AddTimestamp records a new interval note on one occurrence of a track.
// Malformed or reversed intervals are rejected before anything is looked up.
func (s *ServiceImpl) AddTimestamp(ctx context.Context, userID string, key models.MembershipKey, start, end, note string) (*models.Timestamp, error) {
	startAt, err := interval.Parse("start", start)
	if err != nil {
		return nil, intervalError(err)
	}
	endAt, err := interval.Parse("end", end)
	if err != nil {
		return nil, intervalError(err)
	}
	// ordering only; the upper bound needs the track
	if err := interval.Validate(startAt, endAt, endAt); err != nil {
		return nil, intervalError(err)
	}

	if _, err := s.membershipForWrite(ctx, userID, key); err != nil {
		return nil, err
	}

	track, err := s.repo.GetTrack(ctx, key.TrackID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("track %s missing for membership %s", key.TrackID, key)
		}
		return nil, err
	}
	if err := interval.Validate(startAt, endAt, track.Duration()); err != nil {
		return nil, intervalError(err)
	}

	timestamp := &models.Timestamp{
		TrackID:      key.TrackID,
		PlaylistID:   key.PlaylistID,
		Position:     key.Position,
		StartSeconds: int(startAt / time.Second),
		EndSeconds:   int(endAt / time.Second),
		Note:         note,
	}
	if err := s.repo.CreateTimestamp(ctx, timestamp); err != nil {
		return nil, err
	}

	recordWrite(tierTimestamp, opAdd)
	s.logger.Debug("timestamp added", "timestamp_id", timestamp.ID, "membership", key.String(), "user_id", userID)
	return timestamp, nil
}

// EditTimestampNote replaces the note of one of the caller's timestamps
func (s *ServiceImpl) EditTimestampNote(ctx context.Context, userID, timestampID, note string) (*models.Timestamp, error) {
	timestamp, err := s.ownedTimestamp(ctx, userID, timestampID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateTimestampNote(ctx, timestamp.ID, note); err != nil {
		return nil, err
	}
	timestamp.Note = note

	recordWrite(tierTimestamp, opEdit)
	s.logger.Debug("timestamp note edited", "timestamp_id", timestamp.ID, "membership", timestamp.MembershipKey().String())
	return timestamp, nil
}

// DeleteTimestamp removes one of the caller's timestamps
func (s *ServiceImpl) DeleteTimestamp(ctx context.Context, userID, timestampID string) error {
	timestamp, err := s.ownedTimestamp(ctx, userID, timestampID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteTimestamp(ctx, timestamp.ID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.NotFound("timestamp", timestampID)
		}
		return err
	}

	recordWrite(tierTimestamp, opDelete)
	s.logger.Debug("timestamp deleted", "timestamp_id", timestampID, "membership", timestamp.MembershipKey().String())
	return nil
}

// ListTimestamps returns the caller's timestamps on one occurrence of a
// track, ordered by start. An occurrence that was never annotated has none.
func (s *ServiceImpl) ListTimestamps(ctx context.Context, userID string, key models.MembershipKey) ([]models.Timestamp, error) {
	res, err := s.resolveMembership(ctx, userID, key)
	if err != nil {
		return nil, err
	}

	switch res.Kind {
	case Found:
		return s.repo.ListTimestamps(ctx, key)
	case NeedsMaterialization:
		return []models.Timestamp{}, nil
	default:
		return nil, res.Rejection.Err()
	}
}

// ownedTimestamp looks a timestamp up through its playlist's owner. Timestamps
// have no catalog counterpart, so a miss is final.
func (s *ServiceImpl) ownedTimestamp(ctx context.Context, userID, timestampID string) (*models.Timestamp, error) {
	timestamp, err := s.repo.GetTimestampForUser(ctx, userID, timestampID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperrors.NotFound("timestamp", timestampID)
		}
		return nil, err
	}
	return timestamp, nil
}
