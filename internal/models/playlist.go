package models

import "time"

// Playlist is the local shadow of a catalog playlist. It exists only once a
// user has annotated the playlist or one of its tracks.
type Playlist struct {
	ID        string    `json:"playlist_id" gorm:"primaryKey;column:playlist_id"`
	Name      string    `json:"name"`
	Note      *string   `json:"note" gorm:"type:text"`
	UserID    string    `json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteText returns the note, or "" when none has been written
func (p *Playlist) NoteText() string {
	return noteText(p.Note)
}

// OwnedBy reports whether userID owns the playlist
func (p *Playlist) OwnedBy(userID string) bool {
	return p.UserID == userID
}

// TableName returns the table name for the Playlist model
func (Playlist) TableName() string {
	return "playlists"
}

func noteText(note *string) string {
	if note == nil {
		return ""
	}
	return *note
}
