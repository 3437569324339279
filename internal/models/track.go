package models

import "time"

// Track is the local shadow of a catalog track, shared by every playlist it
// appears in.
type Track struct {
	ID         string    `json:"track_id" gorm:"primaryKey;column:track_id"`
	Name       string    `json:"name"`
	Artists    string    `json:"artists"`
	DurationMS int64     `json:"duration_ms" gorm:"column:duration_ms;not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Duration returns the track length
func (t *Track) Duration() time.Duration {
	return time.Duration(t.DurationMS) * time.Millisecond
}

// TableName returns the table name for the Track model
func (Track) TableName() string {
	return "tracks"
}
