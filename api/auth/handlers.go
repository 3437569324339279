package auth

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/jamjot-api/api/types"
	"github.com/killallgit/jamjot-api/internal/services/auth"
	"github.com/killallgit/jamjot-api/internal/services/users"
	apperrors "github.com/killallgit/jamjot-api/pkg/errors"
)

// Handler manages auth endpoints
type Handler struct {
	authService *auth.Service
	userService users.Service
}

// NewHandler creates a new auth handler
func NewHandler(authService *auth.Service, userService users.Service) *Handler {
	return &Handler{
		authService: authService,
		userService: userService,
	}
}

// Login registers the caller on first sign-in
// @Summary Sign in
// @Description Register the bearer token's catalog user, refreshing the display name on later sign-ins
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} types.UserResponse
// @Failure 401 {object} types.ErrorResponse
// @Router /api/v1/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	userID, ok := types.UserID(c)
	if !ok {
		return
	}

	user, err := h.userService.EnsureUser(c.Request.Context(), userID, c.GetString(types.ContextDisplayName))
	if err != nil {
		types.SendError(c, err)
		return
	}

	types.SendSuccess(c, types.UserResponse{
		BaseResponse: types.OK("Signed in"),
		User:         types.NewUser(user),
	})
}

// Me returns the registered caller
// @Summary Get current user
// @Description Get the registered user for the bearer token
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} types.UserResponse
// @Failure 401 {object} types.ErrorResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/me [get]
func (h *Handler) Me(c *gin.Context) {
	userID, ok := types.UserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		types.SendError(c, err)
		return
	}

	types.SendSuccess(c, types.UserResponse{
		BaseResponse: types.OK("Current user"),
		User:         types.NewUser(user),
	})
}

// AuthMiddleware validates bearer tokens and stores the caller identity
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			types.SendError(c, apperrors.Unauthorized("Authorization header required", nil))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			types.SendError(c, apperrors.Unauthorized("Invalid authorization header format", nil))
			return
		}

		claims, err := h.authService.ValidateToken(parts[1])
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, auth.ErrTokenExpired) {
				message = "Token expired"
			}
			types.SendError(c, apperrors.Unauthorized(message, err))
			return
		}

		c.Set(types.ContextUserID, claims.UserID())
		c.Set(types.ContextDisplayName, claims.DisplayName)
		c.Next()
	}
}
