package playlists

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/jamjot-api/api/types"
)

// GetTracks lists the tracks of a playlist with their notes
// @Summary      List playlist tracks
// @Description  List the tracks of a playlist in catalog order, with 1-based positions and any notes
// @Tags         playlists
// @Security     BearerAuth
// @Produce      json
// @Param        playlistId path string true "Catalog playlist ID"
// @Success      200 {object} types.TracksResponse
// @Failure      404 {object} types.ErrorResponse "Playlist not found"
// @Failure      502 {object} types.ErrorResponse "Catalog unavailable"
// @Router       /api/v1/playlists/{playlistId}/tracks [get]
func GetTracks(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := types.UserID(c)
		if !ok {
			return
		}
		playlistID := c.Param("playlistId")

		tracks, err := deps.Annotations.ListPlaylistTracks(c.Request.Context(), userID, playlistID)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.TracksResponse{
			BaseResponse: types.OK("Tracks retrieved"),
			PlaylistID:   playlistID,
			Tracks:       tracks,
			Count:        len(tracks),
		})
	}
}
