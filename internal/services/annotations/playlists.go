package annotations

import (
	"context"

	"github.com/killallgit/jamjot-api/internal/models"
)

// GetPlaylistNote returns the caller's note on a playlist. A playlist that
// exists remotely but was never annotated has an empty note; reads never
// create shadow rows.
func (s *ServiceImpl) GetPlaylistNote(ctx context.Context, userID, playlistID string) (string, error) {
	res, err := s.resolvePlaylist(ctx, userID, playlistID)
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

// EditPlaylistNote sets the caller's note on a playlist
func (s *ServiceImpl) EditPlaylistNote(ctx context.Context, userID, playlistID, note string) (*models.Playlist, error) {
	return s.setPlaylistNote(ctx, userID, playlistID, note, opEdit)
}

// DeletePlaylistNote clears the note. The shadow row is kept.
func (s *ServiceImpl) DeletePlaylistNote(ctx context.Context, userID, playlistID string) (*models.Playlist, error) {
	return s.setPlaylistNote(ctx, userID, playlistID, "", opDelete)
}

func (s *ServiceImpl) setPlaylistNote(ctx context.Context, userID, playlistID, note, op string) (*models.Playlist, error) {
	playlist, err := s.playlistForWrite(ctx, userID, playlistID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdatePlaylistNote(ctx, playlist.ID, note); err != nil {
		return nil, err
	}
	playlist.Note = &note

	recordWrite(tierPlaylist, op)
	s.logger.Debug("playlist note saved", "playlist_id", playlistID, "user_id", userID, "op", op)
	return playlist, nil
}
