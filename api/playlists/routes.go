package playlists

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/jamjot-api/api/types"
)

// RegisterRoutes registers playlist routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", GetAll(deps))
	router.GET("/:playlistId/tracks", GetTracks(deps))

	note := router.Group("/:playlistId/note")
	{
		note.GET("", GetNote(deps))
		note.PUT("", PutNote(deps))
		note.DELETE("", DeleteNote(deps))
	}
}
