// Package models defines the gorm models for users and the shadow rows that
// hold annotations on catalog playlists and tracks.
package models

// All returns every model in dependency order, for AutoMigrate in tests.
func All() []any {
	return []any{
		&User{},
		&Playlist{},
		&Track{},
		&PlaylistMember{},
		&Timestamp{},
	}
}
