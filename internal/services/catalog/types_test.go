package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlaylistTrack_Track(t *testing.T) {
	item := PlaylistTrack{TrackID: "t1", Name: "Solo", Artists: "B, C", Duration: 200 * time.Second, Position: 3}

	assert.Equal(t, Track{ID: "t1", Name: "Solo", Artists: "B, C", Duration: 200 * time.Second}, item.Track())
}
