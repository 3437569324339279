package playlists

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/jamjot-api/api/types"
)

// GetNote returns the caller's note on a playlist
// @Summary      Get playlist note
// @Description  Read the note on a playlist. Never writes; an unannotated playlist returns an empty note.
// @Tags         playlists
// @Security     BearerAuth
// @Produce      json
// @Param        playlistId path string true "Catalog playlist ID"
// @Success      200 {object} types.NoteResponse
// @Failure      404 {object} types.ErrorResponse "Playlist not found"
// @Failure      502 {object} types.ErrorResponse "Catalog unavailable"
// @Router       /api/v1/playlists/{playlistId}/note [get]
func GetNote(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := types.UserID(c)
		if !ok {
			return
		}
		playlistID := c.Param("playlistId")

		note, err := deps.Annotations.GetPlaylistNote(c.Request.Context(), userID, playlistID)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.NoteResponse{
			BaseResponse: types.OK("Note retrieved"),
			PlaylistID:   playlistID,
			Note:         note,
		})
	}
}

// PutNote replaces the caller's note on a playlist
// @Summary      Edit playlist note
// @Description  Replace the note on a playlist, recording the playlist locally on first write
// @Tags         playlists
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        playlistId path string true "Catalog playlist ID"
// @Param        note body types.NoteRequest true "New note"
// @Success      200 {object} types.NoteResponse
// @Failure      400 {object} types.ErrorResponse "Invalid request body"
// @Failure      404 {object} types.ErrorResponse "Playlist not found"
// @Failure      502 {object} types.ErrorResponse "Catalog unavailable"
// @Router       /api/v1/playlists/{playlistId}/note [put]
func PutNote(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := types.UserID(c)
		if !ok {
			return
		}

		var req types.NoteRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		playlist, err := deps.Annotations.EditPlaylistNote(c.Request.Context(), userID, c.Param("playlistId"), req.Note)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.NoteResponse{
			BaseResponse: types.OK("Note saved"),
			PlaylistID:   playlist.ID,
			Note:         playlist.NoteText(),
		})
	}
}

// DeleteNote clears the caller's note on a playlist
// @Summary      Delete playlist note
// @Description  Clear the note on a playlist. The playlist stays recorded locally.
// @Tags         playlists
// @Security     BearerAuth
// @Produce      json
// @Param        playlistId path string true "Catalog playlist ID"
// @Success      200 {object} types.NoteResponse
// @Failure      404 {object} types.ErrorResponse "Playlist not found"
// @Failure      502 {object} types.ErrorResponse "Catalog unavailable"
// @Router       /api/v1/playlists/{playlistId}/note [delete]
func DeleteNote(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := types.UserID(c)
		if !ok {
			return
		}

		playlist, err := deps.Annotations.DeletePlaylistNote(c.Request.Context(), userID, c.Param("playlistId"))
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.NoteResponse{
			BaseResponse: types.OK("Note deleted"),
			PlaylistID:   playlist.ID,
			Note:         playlist.NoteText(),
		})
	}
}
