package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Timestamp is a note attached to an interval of one playlist membership.
// It has no catalog counterpart.
type Timestamp struct {
	ID           string    `json:"timestamp_id" gorm:"primaryKey;column:timestamp_id"`
	TrackID      string    `json:"track_id" gorm:"not null;index:idx_timestamps_membership"`
	PlaylistID   string    `json:"playlist_id" gorm:"not null;index:idx_timestamps_membership"`
	Position     int       `json:"position" gorm:"not null;index:idx_timestamps_membership"`
	StartSeconds int       `json:"start_seconds" gorm:"not null"`
	EndSeconds   int       `json:"end_seconds" gorm:"not null"`
	Note         string    `json:"note" gorm:"type:text;not null;default:''"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new timestamp
func (t *Timestamp) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

// Start returns the interval start
func (t *Timestamp) Start() time.Duration {
	return time.Duration(t.StartSeconds) * time.Second
}

// End returns the interval end
func (t *Timestamp) End() time.Duration {
	return time.Duration(t.EndSeconds) * time.Second
}

// MembershipKey returns the membership the timestamp belongs to
func (t *Timestamp) MembershipKey() MembershipKey {
	return MembershipKey{PlaylistID: t.PlaylistID, TrackID: t.TrackID, Position: t.Position}
}

// TableName returns the table name for the Timestamp model
func (Timestamp) TableName() string {
	return "timestamps"
}
