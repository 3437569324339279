package annotations

import (
	"context"

	"github.com/killallgit/jamjot-api/internal/models"
)

// GetTrackNote returns the caller's note on one occurrence of a track in a
// playlist, or "" if the occurrence exists remotely but was never annotated.
func (s *ServiceImpl) GetTrackNote(ctx context.Context, userID string, key models.MembershipKey) (string, error) {
	res, err := s.resolveMembership(ctx, userID, key)
	if err != nil {
		return "", err
	}

	switch res.Kind {
	case Found:
		return res.Value.NoteText(), nil
	case NeedsMaterialization:
		return "", nil
	default:
		return "", res.Rejection.Err()
	}
}

// EditTrackNote sets the caller's note on one occurrence of a track
func (s *ServiceImpl) EditTrackNote(ctx context.Context, userID string, key models.MembershipKey, note string) (*models.PlaylistMember, error) {
	return s.setTrackNote(ctx, userID, key, note, opEdit)
}

// DeleteTrackNote clears the note. The membership row is kept.
func (s *ServiceImpl) DeleteTrackNote(ctx context.Context, userID string, key models.MembershipKey) (*models.PlaylistMember, error) {
	return s.setTrackNote(ctx, userID, key, "", opDelete)
}

func (s *ServiceImpl) setTrackNote(ctx context.Context, userID string, key models.MembershipKey, note, op string) (*models.PlaylistMember, error) {
	member, err := s.membershipForWrite(ctx, userID, key)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateMembershipNote(ctx, key, note); err != nil {
		return nil, err
	}
	member.Note = &note

	recordWrite(tierTrack, op)
	s.logger.Debug("track note saved", "membership", key.String(), "user_id", userID, "op", op)
	return member, nil
}
