package catalog

import (
	"strings"
	"time"
)

// Playlist is the catalog's view of a playlist
type Playlist struct {
	ID      string
	Name    string
	OwnerID string
}

// Track is the catalog's view of a track
type Track struct {
	ID       string
	Name     string
	Artists  string
	Duration time.Duration
}

// PlaylistTrack is one occurrence of a track in a playlist listing. Position
// is 1-based and counts every listing item, including ones without a track.
type PlaylistTrack struct {
	TrackID  string
	Name     string
	Artists  string
	Duration time.Duration
	Position int
}

// Track returns the track metadata of the occurrence
func (pt PlaylistTrack) Track() Track {
	return Track{ID: pt.TrackID, Name: pt.Name, Artists: pt.Artists, Duration: pt.Duration}
}

// Spotify Web API response shapes, limited to the fields we read.

type page[T any] struct {
	Items []T     `json:"items"`
	Next  *string `json:"next"`
	Total int     `json:"total"`
}

type ownerObject struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type playlistObject struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Owner ownerObject `json:"owner"`
}

func (p playlistObject) toPlaylist() Playlist {
	return Playlist{ID: p.ID, Name: p.Name, OwnerID: p.Owner.ID}
}

type artistObject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type trackObject struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Artists    []artistObject `json:"artists"`
	DurationMS int64          `json:"duration_ms"`
}

func (t trackObject) toTrack() Track {
	names := make([]string, 0, len(t.Artists))
	for _, a := range t.Artists {
		names = append(names, a.Name)
	}
	return Track{
		ID:       t.ID,
		Name:     t.Name,
		Artists:  strings.Join(names, ", "),
		Duration: time.Duration(t.DurationMS) * time.Millisecond,
	}
}

// playlistItem wraps a listing entry. Track is null for removed or
// unavailable items.
type playlistItem struct {
	AddedAt string       `json:"added_at"`
	Track   *trackObject `json:"track"`
}
