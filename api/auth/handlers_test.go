package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/jamjot-api/api/types"
	"github.com/killallgit/jamjot-api/internal/models"
	authService "github.com/killallgit/jamjot-api/internal/services/auth"
	apperrors "github.com/killallgit/jamjot-api/pkg/errors"
)

const testSecret = "test-secret-with-enough-entropy"

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) EnsureUser(ctx context.Context, userID, displayName string) (*models.User, error) {
	args := m.Called(ctx, userID, displayName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func setupTestRouter(t *testing.T, users *MockUserService) (*gin.Engine, *authService.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, err := authService.NewService(testSecret, "dev-token")
	require.NoError(t, err)

	handler := NewHandler(svc, users)
	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.Use(handler.AuthMiddleware())
	RegisterRoutes(v1, handler)
	return router, svc
}

func TestAuthMiddleware(t *testing.T) {
	users := new(MockUserService)
	users.On("GetUser", mock.Anything, mock.Anything).Return(&models.User{ID: "u1"}, nil)
	router, svc := setupTestRouter(t, users)

	valid, err := svc.IssueToken("u1", "User One", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{name: "missing header", header: "", expectedStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic dTE6cGFzcw==", expectedStatus: http.StatusUnauthorized},
		{name: "empty bearer", header: "Bearer ", expectedStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-jwt", expectedStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + valid, expectedStatus: http.StatusOK},
		{name: "lowercase scheme", header: "bearer " + valid, expectedStatus: http.StatusOK},
		{name: "dev token", header: "Bearer dev-token", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusUnauthorized {
				var resp types.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "UNAUTHORIZED", resp.Error)
			}
		})
	}
}

func TestAuthMiddleware_SetsIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc, err := authService.NewService(testSecret, "")
	require.NoError(t, err)
	token, err := svc.IssueToken("u1", "User One", time.Hour)
	require.NoError(t, err)

	router := gin.New()
	router.Use(NewHandler(svc, nil).AuthMiddleware())
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":      c.GetString(types.ContextUserID),
			"display_name": c.GetString(types.ContextDisplayName),
		})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "u1", body["user_id"])
	assert.Equal(t, "User One", body["display_name"])
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	router, _ := setupTestRouter(t, new(MockUserService))

	expired := signExpired(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var resp types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Token expired", resp.Message)
}

func TestHandler_Login(t *testing.T) {
	users := new(MockUserService)
	router, svc := setupTestRouter(t, users)

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	users.On("EnsureUser", mock.Anything, "u1", "User One").
		Return(&models.User{ID: "u1", DisplayName: "User One", CreatedAt: created}, nil).Once()

	token, err := svc.IssueToken("u1", "User One", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp types.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, types.StatusOK, resp.Status)
	assert.Equal(t, "u1", resp.User.UserID)
	assert.Equal(t, "User One", resp.User.DisplayName)
	assert.True(t, created.Equal(resp.User.CreatedAt))
	users.AssertExpectations(t)
}

func TestHandler_Me(t *testing.T) {
	t.Run("registered user", func(t *testing.T) {
		users := new(MockUserService)
		router, _ := setupTestRouter(t, users)
		users.On("GetUser", mock.Anything, authService.DevUserID).
			Return(&models.User{ID: authService.DevUserID, DisplayName: authService.DevDisplayName}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		req.Header.Set("Authorization", "Bearer dev-token")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp types.UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, authService.DevUserID, resp.User.UserID)
	})

	t.Run("unregistered user", func(t *testing.T) {
		users := new(MockUserService)
		router, _ := setupTestRouter(t, users)
		users.On("GetUser", mock.Anything, authService.DevUserID).
			Return(nil, apperrors.NotFound("user", authService.DevUserID))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		req.Header.Set("Authorization", "Bearer dev-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func signExpired(t *testing.T) string {
	t.Helper()
	past := time.Now().Add(-time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &authService.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			Issuer:    authService.Issuer,
			IssuedAt:  jwt.NewNumericDate(past.Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(past),
		},
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}
