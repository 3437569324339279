package timestamps

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/jamjot-api/api/tracks"
	"github.com/killallgit/jamjot-api/api/types"
)

// RegisterRoutes registers timestamp routes. Listing and creation hang off a
// track in a playlist; edits and deletes address a timestamp by ID.
func RegisterRoutes(playlists, timestamps *gin.RouterGroup, deps *types.Dependencies) {
	nested := playlists.Group(tracks.MembershipPath + "/timestamps")
	{
		nested.GET("", List(deps))
		nested.POST("", Create(deps))
	}

	timestamps.PUT("/:timestampId/note", PutNote(deps))
	timestamps.DELETE("/:timestampId", Delete(deps))
}
