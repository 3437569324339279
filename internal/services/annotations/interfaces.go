package annotations

import (
	"context"
	"iter"

	"github.com/killallgit/jamjot-api/internal/models"
	"github.com/killallgit/jamjot-api/internal/services/catalog"
)

// Catalog is the read-only view of the remote catalog the annotation tiers
// consult for existence and ownership.
type Catalog interface {
	UserPlaylists(ctx context.Context, userID string) iter.Seq2[catalog.Playlist, error]
	Playlist(ctx context.Context, playlistID string) (*catalog.Playlist, error)
	PlaylistTracks(ctx context.Context, playlistID string) iter.Seq2[catalog.PlaylistTrack, error]
}

// Repository defines the interface for shadow-row and annotation data access.
// Point reads return ErrNotFound when no row exists.
type Repository interface {
	// Users
	GetUser(ctx context.Context, userID string) (*models.User, error)

	// Playlists
	GetPlaylist(ctx context.Context, playlistID string) (*models.Playlist, error)
	ListPlaylistsByUser(ctx context.Context, userID string) ([]models.Playlist, error)
	CreatePlaylistIfAbsent(ctx context.Context, playlist *models.Playlist) (*models.Playlist, bool, error)
	UpdatePlaylistNote(ctx context.Context, playlistID, note string) error

	// Tracks
	GetTrack(ctx context.Context, trackID string) (*models.Track, error)
	CreateTrackIfAbsent(ctx context.Context, track *models.Track) (*models.Track, bool, error)

	// Memberships
	GetMembership(ctx context.Context, key models.MembershipKey) (*models.PlaylistMember, error)
	ListMemberships(ctx context.Context, playlistID string) ([]models.PlaylistMember, error)
	CreateMembershipIfAbsent(ctx context.Context, member *models.PlaylistMember) (*models.PlaylistMember, bool, error)
	UpdateMembershipNote(ctx context.Context, key models.MembershipKey, note string) error

	// Timestamps
	CreateTimestamp(ctx context.Context, timestamp *models.Timestamp) error
	GetTimestampForUser(ctx context.Context, userID, timestampID string) (*models.Timestamp, error)
	ListTimestamps(ctx context.Context, key models.MembershipKey) ([]models.Timestamp, error)
	UpdateTimestampNote(ctx context.Context, timestampID, note string) error
	DeleteTimestamp(ctx context.Context, timestampID string) error
}

// Service defines the annotation operations exposed to the HTTP layer
type Service interface {
	// Playlist tier
	GetPlaylistNote(ctx context.Context, userID, playlistID string) (string, error)
	EditPlaylistNote(ctx context.Context, userID, playlistID, note string) (*models.Playlist, error)
	DeletePlaylistNote(ctx context.Context, userID, playlistID string) (*models.Playlist, error)

	// Track-in-playlist tier
	GetTrackNote(ctx context.Context, userID string, key models.MembershipKey) (string, error)
	EditTrackNote(ctx context.Context, userID string, key models.MembershipKey, note string) (*models.PlaylistMember, error)
	DeleteTrackNote(ctx context.Context, userID string, key models.MembershipKey) (*models.PlaylistMember, error)

	// Timestamp tier
	AddTimestamp(ctx context.Context, userID string, key models.MembershipKey, start, end, note string) (*models.Timestamp, error)
	EditTimestampNote(ctx context.Context, userID, timestampID, note string) (*models.Timestamp, error)
	DeleteTimestamp(ctx context.Context, userID, timestampID string) error
	ListTimestamps(ctx context.Context, userID string, key models.MembershipKey) ([]models.Timestamp, error)

	// Browsing
	ListPlaylists(ctx context.Context, userID string) ([]PlaylistSummary, error)
	ListPlaylistTracks(ctx context.Context, userID, playlistID string) ([]TrackSummary, error)
}
