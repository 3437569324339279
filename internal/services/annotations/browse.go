package annotations

import (
	"context"

	"github.com/killallgit/jamjot-api/internal/models"
	"github.com/killallgit/jamjot-api/internal/services/catalog"
	"github.com/killallgit/jamjot-api/pkg/interval"

	apperrors "github.com/killallgit/jamjot-api/pkg/errors"
)

// PlaylistSummary is a catalog playlist owned by the caller with its note
type PlaylistSummary struct {
	PlaylistID string `json:"playlistId"`
	Name       string `json:"name"`
	Note       string `json:"note"`
	Annotated  bool   `json:"annotated"`
}

// TrackSummary is one entry of a playlist listing with its note
type TrackSummary struct {
	TrackID    string `json:"trackId"`
	Position   int    `json:"position"`
	Name       string `json:"name"`
	Artists    string `json:"artists"`
	DurationMS int64  `json:"durationMs"`
	Length     string `json:"length"`
	Note       string `json:"note"`
	Annotated  bool   `json:"annotated"`
}

// ListPlaylists lists the catalog playlists the caller owns, with any notes
// written on them. Followed playlists owned by others are skipped.
func (s *ServiceImpl) ListPlaylists(ctx context.Context, userID string) ([]PlaylistSummary, error) {
	local, err := s.repo.ListPlaylistsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	shadows := make(map[string]models.Playlist, len(local))
	for _, p := range local {
		shadows[p.ID] = p
	}

	summaries := []PlaylistSummary{}
	for remote, err := range s.catalog.UserPlaylists(ctx, userID) {
		if err != nil {
			if catalog.IsNotFound(err) {
				return nil, apperrors.NotFound("user", userID)
			}
			return nil, remoteFailure(err)
		}
		if remote.OwnerID != userID {
			continue
		}

		summary := PlaylistSummary{PlaylistID: remote.ID, Name: remote.Name}
		if shadow, ok := shadows[remote.ID]; ok {
			summary.Note = shadow.NoteText()
			summary.Annotated = true
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// ListPlaylistTracks lists the tracks of one of the caller's playlists in
// catalog order, with any notes written on each occurrence.
func (s *ServiceImpl) ListPlaylistTracks(ctx context.Context, userID, playlistID string) ([]TrackSummary, error) {
	res, err := s.resolvePlaylist(ctx, userID, playlistID)
	if err != nil {
		return nil, err
	}
	if res.Kind == Rejected {
		return nil, res.Rejection.Err()
	}

	notes := map[models.MembershipKey]models.PlaylistMember{}
	if res.Kind == Found {
		members, err := s.repo.ListMemberships(ctx, playlistID)
		if err != nil {
			return nil, err
		}
		for _, m := range members {
			notes[m.Key()] = m
		}
	}

	summaries := []TrackSummary{}
	for item, err := range s.catalog.PlaylistTracks(ctx, playlistID) {
		if err != nil {
			if catalog.IsNotFound(err) {
				return nil, apperrors.NotFound("playlist", playlistID)
			}
			return nil, remoteFailure(err)
		}

		summary := TrackSummary{
			TrackID:    item.TrackID,
			Position:   item.Position,
			Name:       item.Name,
			Artists:    item.Artists,
			DurationMS: item.Duration.Milliseconds(),
			Length:     interval.Format(item.Duration),
		}
		key := models.MembershipKey{PlaylistID: playlistID, TrackID: item.TrackID, Position: item.Position}
		if member, ok := notes[key]; ok {
			summary.Note = member.NoteText()
			summary.Annotated = true
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
