package tracks

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/jamjot-api/api/types"
)

// MembershipPath is the route suffix under a playlist that names one track
// at one position.
const MembershipPath = "/:playlistId/tracks/:trackId/positions/:position"

// RegisterRoutes registers track-in-playlist routes on the playlists group
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	note := router.Group(MembershipPath + "/note")
	{
		note.GET("", GetNote(deps))
		note.PUT("", PutNote(deps))
		note.DELETE("", DeleteNote(deps))
	}
}
