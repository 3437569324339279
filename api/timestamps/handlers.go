package timestamps

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/jamjot-api/api/types"
)

// List returns the timestamps on a track at a position in a playlist
// @Summary      List timestamps
// @Description  List the timestamps on a track at a position, ordered by start. Never writes.
// @Tags         timestamps
// @Security     BearerAuth
// @Produce      json
// @Param        playlistId path string true "Catalog playlist ID"
// @Param        trackId path string true "Catalog track ID"
// @Param        position path int true "1-based position in the playlist"
// @Success      200 {object} types.TimestampsResponse
// @Failure      404 {object} types.ErrorResponse "Playlist or track not found"
// @Failure      502 {object} types.ErrorResponse "Catalog unavailable"
// @Router       /api/v1/playlists/{playlistId}/tracks/{trackId}/positions/{position}/timestamps [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := types.UserID(c)
		if !ok {
			return
		}
		key, ok := types.ParseMembershipKey(c)
		if !ok {
			return
		}

		rows, err := deps.Annotations.ListTimestamps(c.Request.Context(), userID, key)
		if err != nil {
			types.SendError(c, err)
			return
		}

		timestamps := types.NewTimestamps(rows)
		types.SendSuccess(c, types.TimestampsResponse{
			BaseResponse: types.OK("Timestamps retrieved"),
			Timestamps:   timestamps,
			Count:        len(timestamps),
		})
	}
}

// Create adds a timestamp to a track at a position in a playlist
// @Summary      Add timestamp
// @Description  Add an mm:ss interval with a note. The interval must satisfy 0 <= start <= end <= track duration.
// @Tags         timestamps
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        playlistId path string true "Catalog playlist ID"
// @Param        trackId path string true "Catalog track ID"
// @Param        position path int true "1-based position in the playlist"
// @Param        timestamp body types.TimestampRequest true "Interval and note"
// @Success      201 {object} types.TimestampResponse
// @Failure      400 {object} types.ErrorResponse "Invalid interval"
// @Failure      404 {object} types.ErrorResponse "Playlist or track not found"
// @Failure      502 {object} types.ErrorResponse "Catalog unavailable"
// @Router       /api/v1/playlists/{playlistId}/tracks/{trackId}/positions/{position}/timestamps [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := types.UserID(c)
		if !ok {
			return
		}
		key, ok := types.ParseMembershipKey(c)
		if !ok {
			return
		}

		var req types.TimestampRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		ts, err := deps.Annotations.AddTimestamp(c.Request.Context(), userID, key, req.Start, req.End, req.Note)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendCreated(c, types.TimestampResponse{
			BaseResponse: types.OK("Timestamp created"),
			Timestamp:    types.NewTimestamp(ts),
		})
	}
}

// PutNote replaces the note on a timestamp
// @Summary      Edit timestamp note
// @Description  Replace the note on one of the caller's timestamps. The interval cannot be changed.
// @Tags         timestamps
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        timestampId path string true "Timestamp ID"
// @Param        note body types.NoteRequest true "New note"
// @Success      200 {object} types.TimestampResponse
// @Failure      400 {object} types.ErrorResponse "Invalid request body"
// @Failure      404 {object} types.ErrorResponse "Timestamp not found"
// @Router       /api/v1/timestamps/{timestampId}/note [put]
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

		ts, err := deps.Annotations.EditTimestampNote(c.Request.Context(), userID, c.Param("timestampId"), req.Note)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.TimestampResponse{
			BaseResponse: types.OK("Note saved"),
			Timestamp:    types.NewTimestamp(ts),
		})
	}
}

// Delete removes a timestamp
// @Summary      Delete timestamp
// @Description  Delete one of the caller's timestamps
// @Tags         timestamps
// @Security     BearerAuth
// @Produce      json
// @Param        timestampId path string true "Timestamp ID"
// @Success      200 {object} types.BaseResponse
// @Failure      404 {object} types.ErrorResponse "Timestamp not found"
// @Router       /api/v1/timestamps/{timestampId} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := types.UserID(c)
		if !ok {
			return
		}

		if err := deps.Annotations.DeleteTimestamp(c.Request.Context(), userID, c.Param("timestampId")); err != nil {
			types.SendError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.OK("Timestamp deleted"))
	}
}
