package types

import (
	"time"

	"github.com/killallgit/jamjot-api/internal/models"
	"github.com/killallgit/jamjot-api/internal/services/annotations"
	"github.com/killallgit/jamjot-api/pkg/interval"
)

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// User is the public view of a registered account
type User struct {
	UserID      string    `json:"userId" example:"smedjan"`
	DisplayName string    `json:"displayName" example:"Smedjan"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UserResponse for login and me endpoints
type UserResponse struct {
	BaseResponse
	User User `json:"user"`
}

// NoteResponse carries the note of a playlist or of a track in a playlist.
// Note is empty when nothing has been written yet.
type NoteResponse struct {
	BaseResponse
	PlaylistID string `json:"playlistId" example:"37i9dQZF1DXcBWIGoYBM5M"`
	TrackID    string `json:"trackId,omitempty" example:"4uLU6hMCjMI75M1A2tKUQC"`
	Position   int    `json:"position,omitempty" example:"3"`
	Note       string `json:"note" example:"great for late nights"`
}

// Timestamp is the public view of an annotated interval
type Timestamp struct {
	TimestampID string    `json:"timestampId" example:"7f1c9f3e-2a4b-4c1d-9e8f-0a1b2c3d4e5f"`
	PlaylistID  string    `json:"playlistId"`
	TrackID     string    `json:"trackId"`
	Position    int       `json:"position"`
	Start       string    `json:"start" example:"00:10"`
	End         string    `json:"end" example:"00:20"`
	Note        string    `json:"note"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TimestampResponse for a single timestamp
type TimestampResponse struct {
	BaseResponse
	Timestamp Timestamp `json:"timestamp"`
}

// TimestampsResponse for the timestamps of a track in a playlist
type TimestampsResponse struct {
	BaseResponse
	Timestamps []Timestamp `json:"timestamps"`
	Count      int         `json:"count"`
}

// PlaylistsResponse for the caller's catalog playlists
type PlaylistsResponse struct {
	BaseResponse
	Playlists []annotations.PlaylistSummary `json:"playlists"`
	Count     int                           `json:"count"`
}

// TracksResponse for the tracks of a playlist
type TracksResponse struct {
	BaseResponse
	PlaylistID string                     `json:"playlistId"`
	Tracks     []annotations.TrackSummary `json:"tracks"`
	Count      int                        `json:"count"`
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	BaseResponse
	Timestamp string                 `json:"timestamp"`
	Services  map[string]interface{} `json:"services,omitempty"`
}

// NewUser converts a user row to its public view
func NewUser(u *models.User) User {
	return User{UserID: u.ID, DisplayName: u.DisplayName, CreatedAt: u.CreatedAt}
}

// NewTimestamp converts a timestamp row to its public view
func NewTimestamp(ts *models.Timestamp) Timestamp {
	return Timestamp{
		TimestampID: ts.ID,
		PlaylistID:  ts.PlaylistID,
		TrackID:     ts.TrackID,
		Position:    ts.Position,
		Start:       interval.Format(ts.Start()),
		End:         interval.Format(ts.End()),
		Note:        ts.Note,
		CreatedAt:   ts.CreatedAt,
	}
}

// NewTimestamps converts timestamp rows, never returning nil
func NewTimestamps(rows []models.Timestamp) []Timestamp {
	out := make([]Timestamp, 0, len(rows))
	for i := range rows {
		out = append(out, NewTimestamp(&rows[i]))
	}
	return out
}
