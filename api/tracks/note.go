package tracks

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/jamjot-api/api/types"
	"github.com/killallgit/jamjot-api/internal/models"
)

func noteResponse(message string, key models.MembershipKey, note string) types.NoteResponse {
	return types.NoteResponse{
		BaseResponse: types.OK(message),
		PlaylistID:   key.PlaylistID,
		TrackID:      key.TrackID,
		Position:     key.Position,
		Note:         note,
	}
}

// GetNote returns the caller's note on a track at a position in a playlist
// @Summary      Get track note
// @Description  Read the note on a track at a 1-based position in a playlist. Never writes.
// @Tags         tracks
// @Security     BearerAuth
// @Produce      json
// @Param        playlistId path string true "Catalog playlist ID"
// @Param        trackId path string true "Catalog track ID"
// @Param        position path int true "1-based position in the playlist"
// @Success      200 {object} types.NoteResponse
// @Failure      400 {object} types.ErrorResponse "Invalid position"
// @Failure      404 {object} types.ErrorResponse "Playlist or track not found"
// @Failure      502 {object} types.ErrorResponse "Catalog unavailable"
// @Router       /api/v1/playlists/{playlistId}/tracks/{trackId}/positions/{position}/note [get]
func GetNote(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := types.UserID(c)
		if !ok {
			return
		}
		key, ok := types.ParseMembershipKey(c)
		if !ok {
			return
		}

		note, err := deps.Annotations.GetTrackNote(c.Request.Context(), userID, key)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, noteResponse("Note retrieved", key, note))
	}
}

// PutNote replaces the caller's note on a track at a position in a playlist
// @Summary      Edit track note
// @Description  Replace the note on a track at a position, recording the playlist, track and membership locally on first write
// @Tags         tracks
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        playlistId path string true "Catalog playlist ID"
// @Param        trackId path string true "Catalog track ID"
// @Param        position path int true "1-based position in the playlist"
// @Param        note body types.NoteRequest true "New note"
// @Success      200 {object} types.NoteResponse
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Playlist or track not found"
// @Failure      502 {object} types.ErrorResponse "Catalog unavailable"
// @Router       /api/v1/playlists/{playlistId}/tracks/{trackId}/positions/{position}/note [put]
func PutNote(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := types.UserID(c)
		if !ok {
			return
		}
		key, ok := types.ParseMembershipKey(c)
		if !ok {
			return
		}

		var req types.NoteRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		member, err := deps.Annotations.EditTrackNote(c.Request.Context(), userID, key, req.Note)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, noteResponse("Note saved", member.Key(), member.NoteText()))
	}
}

// DeleteNote clears the caller's note on a track at a position in a playlist
// @Summary      Delete track note
// @Description  Clear the note on a track at a position. The membership stays recorded locally.
// @Tags         tracks
// @Security     BearerAuth
// @Produce      json
// @Param        playlistId path string true "Catalog playlist ID"
// @Param        trackId path string true "Catalog track ID"
// @Param        position path int true "1-based position in the playlist"
// @Success      200 {object} types.NoteResponse
// @Failure      400 {object} types.ErrorResponse "Invalid position"
// @Failure      404 {object} types.ErrorResponse "Playlist or track not found"
// @Failure      502 {object} types.ErrorResponse "Catalog unavailable"
// @Router       /api/v1/playlists/{playlistId}/tracks/{trackId}/positions/{position}/note [delete]
func DeleteNote(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := types.UserID(c)
		if !ok {
			return
		}
		key, ok := types.ParseMembershipKey(c)
		if !ok {
			return
		}

		member, err := deps.Annotations.DeleteTrackNote(c.Request.Context(), userID, key)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, noteResponse("Note deleted", member.Key(), member.NoteText()))
	}
}
