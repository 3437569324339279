package types

import (
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/killallgit/jamjot-api/internal/models"
	apperrors "github.com/killallgit/jamjot-api/pkg/errors"
)

// Context keys set by the auth middleware
const (
	ContextUserID      = "user_id"
	ContextDisplayName = "display_name"
)

// Handler utility functions to reduce duplication across handlers

// UserID returns the authenticated caller. It sends a 401 and returns false
// when the auth middleware did not run.
func UserID(c *gin.Context) (string, bool) {
	userID := c.GetString(ContextUserID)
	if userID == "" {
		SendError(c, apperrors.Unauthorized("authentication required", nil))
		return "", false
	}
	return userID, true
}

// ParseMembershipKey reads the playlistId, trackId and position URL parameters
func ParseMembershipKey(c *gin.Context) (models.MembershipKey, bool) {
	position, err := strconv.Atoi(c.Param("position"))
	if err != nil {
		SendError(c, apperrors.ValidationError("position", "must be an integer"))
		return models.MembershipKey{}, false
	}
	return models.MembershipKey{
		PlaylistID: c.Param("playlistId"),
		TrackID:    c.Param("trackId"),
		Position:   position,
	}, true
}

// BindJSONOrError attempts to bind JSON request body to target struct
// Returns false and sends error response if binding fails
func BindJSONOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  StatusError,
			Message: "Invalid request body",
			Error:   string(apperrors.ErrCodeInvalidInput),
			Details: err.Error(),
		})
		return false
	}
	return true
}

// SendError maps err to its HTTP status and writes the standard error body
func SendError(c *gin.Context, err error) {
	status := apperrors.GetHTTPCode(err)
	resp := ErrorResponse{
		Status:  StatusError,
		Message: err.Error(),
		Error:   string(apperrors.GetCode(err)),
	}
	if appErr, ok := apperrors.As(err); ok {
		resp.Message = appErr.Message
		if len(appErr.Details) > 0 {
			resp.Details = appErr.Details
		}
	}

	if status >= http.StatusInternalServerError {
		log.Error("request failed", "path", c.Request.URL.Path, "status", status, "error", err)
		if status == http.StatusInternalServerError {
			resp.Message = "Internal server error"
		}
	}

	c.AbortWithStatusJSON(status, resp)
}

// SendSuccess sends a standardized success response with data
func SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SendCreated sends a standardized created response with data
func SendCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// OK returns a populated success header
func OK(message string) BaseResponse {
	return BaseResponse{Status: StatusOK, Message: message}
}
