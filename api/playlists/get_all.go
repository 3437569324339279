package playlists

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/jamjot-api/api/types"
)

// GetAll lists the caller's catalog playlists with their notes
// @Summary      List playlists
// @Description  List the catalog playlists owned by the caller, merged with any notes written on them
// @Tags         playlists
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} types.PlaylistsResponse
// @Failure      401 {object} types.ErrorResponse "Missing or invalid token"
// @Failure      404 {object} types.ErrorResponse "Catalog user not found"
// @Failure      502 {object} types.ErrorResponse "Catalog unavailable"
// @Router       /api/v1/playlists [get]
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := types.UserID(c)
		if !ok {
			return
		}

		playlists, err := deps.Annotations.ListPlaylists(c.Request.Context(), userID)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.PlaylistsResponse{
			BaseResponse: types.OK("Playlists retrieved"),
			Playlists:    playlists,
			Count:        len(playlists),
		})
	}
}
