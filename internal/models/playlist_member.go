package models

import (
	"fmt"
	"time"
)

// MembershipKey identifies one occurrence of a track in a playlist. Position
// is 1-based and disambiguates repeated tracks.
type MembershipKey struct {
	PlaylistID string `json:"playlist_id"`
	TrackID    string `json:"track_id"`
	Position   int    `json:"position"`
}

func (k MembershipKey) String() string {
	return fmt.Sprintf("%s/%s#%d", k.PlaylistID, k.TrackID, k.Position)
}

// PlaylistMember holds the note for one occurrence of a track in a playlist
type PlaylistMember struct {
	TrackID    string    `json:"track_id" gorm:"primaryKey;column:track_id"`
	PlaylistID string    `json:"playlist_id" gorm:"primaryKey;column:playlist_id;index"`
	Position   int       `json:"position" gorm:"primaryKey;column:position;autoIncrement:false"`
	Note       *string   `json:"note" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Key returns the composite identity of the membership
func (m *PlaylistMember) Key() MembershipKey {
	return MembershipKey{PlaylistID: m.PlaylistID, TrackID: m.TrackID, Position: m.Position}
}

// NoteText returns the note, or "" when none has been written
func (m *PlaylistMember) NoteText() string {
	return noteText(m.Note)
}

// TableName returns the table name for the PlaylistMember model
func (PlaylistMember) TableName() string {
	return "playlist_members"
}
