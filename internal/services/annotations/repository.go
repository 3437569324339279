package annotations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/killallgit/jamjot-api/internal/models"
)

const (
	busyRetryAttempts = 5
	busyRetryDelay    = 20 * time.Millisecond
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new annotation repository
func NewRepository(db *gorm.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

// withRetry runs fn again while sqlite reports the database busy or locked
func (r *RepositoryImpl) withRetry(ctx context.Context, fn func(db *gorm.DB) error) error {
	return retry.Do(
		func() error {
			return fn(r.db.WithContext(ctx))
		},
		retry.Context(ctx),
		retry.Attempts(busyRetryAttempts),
		retry.Delay(busyRetryDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isBusy),
	)
}

func isBusy(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked
	}
	return false
}

func lookupError(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("getting %s: %w", what, err)
}

// GetUser retrieves a registered user
func (r *RepositoryImpl) GetUser(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "user_id = ?", userID).Error; err != nil {
		return nil, lookupError(err, "user")
	}
	return &user, nil
}

// GetPlaylist retrieves a playlist shadow row regardless of owner
func (r *RepositoryImpl) GetPlaylist(ctx context.Context, playlistID string) (*models.Playlist, error) {
	var playlist models.Playlist
	if err := r.db.WithContext(ctx).First(&playlist, "playlist_id = ?", playlistID).Error; err != nil {
		return nil, lookupError(err, "playlist")
	}
	return &playlist, nil
}

// ListPlaylistsByUser returns every playlist shadow owned by userID
func (r *RepositoryImpl) ListPlaylistsByUser(ctx context.Context, userID string) ([]models.Playlist, error) {
	var playlists []models.Playlist
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&playlists).Error; err != nil {
		return nil, fmt.Errorf("listing playlists: %w", err)
	}
	return playlists, nil
}

// CreatePlaylistIfAbsent inserts the playlist unless a row with the same ID
// exists, then returns whichever row is stored. created reports whether this
// call inserted it.
func (r *RepositoryImpl) CreatePlaylistIfAbsent(ctx context.Context, playlist *models.Playlist) (*models.Playlist, bool, error) {
	created, err := r.insertIfAbsent(ctx, playlist, "playlist_id")
	if err != nil {
		return nil, false, fmt.Errorf("creating playlist: %w", err)
	}
	stored, err := r.GetPlaylist(ctx, playlist.ID)
	if err != nil {
		return nil, false, err
	}
	return stored, created, nil
}

// UpdatePlaylistNote replaces the note of a playlist shadow
func (r *RepositoryImpl) UpdatePlaylistNote(ctx context.Context, playlistID, note string) error {
	return r.updateNote(ctx, &models.Playlist{}, note, "playlist_id = ?", playlistID)
}

// GetTrack retrieves a track shadow row
func (r *RepositoryImpl) GetTrack(ctx context.Context, trackID string) (*models.Track, error) {
	var track models.Track
	if err := r.db.WithContext(ctx).First(&track, "track_id = ?", trackID).Error; err != nil {
		return nil, lookupError(err, "track")
	}
	return &track, nil
}

// CreateTrackIfAbsent inserts the track unless it is already known
func (r *RepositoryImpl) CreateTrackIfAbsent(ctx context.Context, track *models.Track) (*models.Track, bool, error) {
	created, err := r.insertIfAbsent(ctx, track, "track_id")
	if err != nil {
		return nil, false, fmt.Errorf("creating track: %w", err)
	}
	stored, err := r.GetTrack(ctx, track.ID)
	if err != nil {
		return nil, false, err
	}
	return stored, created, nil
}

// GetMembership retrieves one occurrence of a track in a playlist
func (r *RepositoryImpl) GetMembership(ctx context.Context, key models.MembershipKey) (*models.PlaylistMember, error) {
	var member models.PlaylistMember
	err := r.db.WithContext(ctx).
		First(&member, "track_id = ? AND playlist_id = ? AND position = ?", key.TrackID, key.PlaylistID, key.Position).
		Error
	if err != nil {
		return nil, lookupError(err, "membership")
	}
	return &member, nil
}

// ListMemberships returns the membership rows of a playlist ordered by position
func (r *RepositoryImpl) ListMemberships(ctx context.Context, playlistID string) ([]models.PlaylistMember, error) {
	var members []models.PlaylistMember
	if err := r.db.WithContext(ctx).
		Where("playlist_id = ?", playlistID).
		Order("position ASC").
		Find(&members).Error; err != nil {
		return nil, fmt.Errorf("listing memberships: %w", err)
	}
	return members, nil
}

// CreateMembershipIfAbsent inserts the membership unless its composite key exists
func (r *RepositoryImpl) CreateMembershipIfAbsent(ctx context.Context, member *models.PlaylistMember) (*models.PlaylistMember, bool, error) {
	created, err := r.insertIfAbsent(ctx, member, "track_id", "playlist_id", "position")
	if err != nil {
		return nil, false, fmt.Errorf("creating membership: %w", err)
	}
	stored, err := r.GetMembership(ctx, member.Key())
	if err != nil {
		return nil, false, err
	}
	return stored, created, nil
}

// UpdateMembershipNote replaces the note of a membership
func (r *RepositoryImpl) UpdateMembershipNote(ctx context.Context, key models.MembershipKey, note string) error {
	return r.updateNote(ctx, &models.PlaylistMember{}, note,
		"track_id = ? AND playlist_id = ? AND position = ?", key.TrackID, key.PlaylistID, key.Position)
}

// CreateTimestamp inserts a new interval annotation
func (r *RepositoryImpl) CreateTimestamp(ctx context.Context, timestamp *models.Timestamp) error {
	err := r.withRetry(ctx, func(db *gorm.DB) error {
		return db.Create(timestamp).Error
	})
	if err != nil {
		return fmt.Errorf("creating timestamp: %w", err)
	}
	return nil
}

// GetTimestampForUser retrieves a timestamp only if its playlist is owned by userID
func (r *RepositoryImpl) GetTimestampForUser(ctx context.Context, userID, timestampID string) (*models.Timestamp, error) {
	var timestamp models.Timestamp
	err := r.db.WithContext(ctx).
		Joins("JOIN playlists ON playlists.playlist_id = timestamps.playlist_id").
		Where("timestamps.timestamp_id = ? AND playlists.user_id = ?", timestampID, userID).
		First(&timestamp).Error
	if err != nil {
		return nil, lookupError(err, "timestamp")
	}
	return &timestamp, nil
}

// ListTimestamps returns the timestamps of one membership ordered by start
func (r *RepositoryImpl) ListTimestamps(ctx context.Context, key models.MembershipKey) ([]models.Timestamp, error) {
	timestamps := []models.Timestamp{}
	if err := r.db.WithContext(ctx).
		Where("track_id = ? AND playlist_id = ? AND position = ?", key.TrackID, key.PlaylistID, key.Position).
		Order("start_seconds ASC").
		Order("end_seconds ASC").
		Find(&timestamps).Error; err != nil {
		return nil, fmt.Errorf("listing timestamps: %w", err)
	}
	return timestamps, nil
}

// UpdateTimestampNote replaces the note of a timestamp
func (r *RepositoryImpl) UpdateTimestampNote(ctx context.Context, timestampID, note string) error {
	return r.updateNote(ctx, &models.Timestamp{}, note, "timestamp_id = ?", timestampID)
}

// DeleteTimestamp removes a timestamp row
func (r *RepositoryImpl) DeleteTimestamp(ctx context.Context, timestampID string) error {
	var rows int64
	err := r.withRetry(ctx, func(db *gorm.DB) error {
		result := db.Where("timestamp_id = ?", timestampID).Delete(&models.Timestamp{})
		rows = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return fmt.Errorf("deleting timestamp: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// insertIfAbsent relies on the primary key to make concurrent first writes
// converge on a single row.
func (r *RepositoryImpl) insertIfAbsent(ctx context.Context, value any, keyColumns ...string) (bool, error) {
	columns := make([]clause.Column, 0, len(keyColumns))
	for _, name := range keyColumns {
		columns = append(columns, clause.Column{Name: name})
	}

	var created bool
	err := r.withRetry(ctx, func(db *gorm.DB) error {
		result := db.Clauses(clause.OnConflict{Columns: columns, DoNothing: true}).Create(value)
		if result.Error != nil {
			return result.Error
		}
		created = result.RowsAffected > 0
		return nil
	})
	return created, err
}

func (r *RepositoryImpl) updateNote(ctx context.Context, model any, note string, query string, args ...any) error {
	var rows int64
	err := r.withRetry(ctx, func(db *gorm.DB) error {
		result := db.Model(model).Where(query, args...).Update("note", note)
		rows = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return fmt.Errorf("updating note: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
