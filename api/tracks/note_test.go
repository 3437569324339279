package tracks_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/jamjot-api/api/tracks"
	"github.com/killallgit/jamjot-api/api/types"
	"github.com/killallgit/jamjot-api/internal/models"
	"github.com/killallgit/jamjot-api/internal/services/annotations/mocks"
	apperrors "github.com/killallgit/jamjot-api/pkg/errors"
)

const basePath = "/api/v1/playlists/37i9/tracks/t1/positions/"

func setupRouter(svc *mocks.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(types.ContextUserID, "u1")
		c.Next()
	})
	tracks.RegisterRoutes(router.Group("/api/v1/playlists"), &types.Dependencies{Annotations: svc})
	return router
}

func stringPtr(s string) *string {
	return &s
}

func TestGetNote(t *testing.T) {
	tests := []struct {
		name           string
		position       string
		setup          func(*mocks.Service)
		expectedStatus int
		expectedNote   string
	}{
		{
			name:     "annotated",
			position: "2",
			setup: func(svc *mocks.Service) {
				key := models.MembershipKey{PlaylistID: "37i9", TrackID: "t1", Position: 2}
				svc.On("GetTrackNote", mock.Anything, "u1", key).Return("second time", nil)
			},
			expectedStatus: http.StatusOK,
			expectedNote:   "second time",
		},
		{
			name:     "track not at that position",
			position: "4",
			setup: func(svc *mocks.Service) {
				key := models.MembershipKey{PlaylistID: "37i9", TrackID: "t1", Position: 4}
				svc.On("GetTrackNote", mock.Anything, "u1", key).Return("", apperrors.NotFound("track", key.String()))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "position is not a number",
			position:       "two",
			setup:          func(*mocks.Service) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mocks.Service)
			tt.setup(svc)
			router := setupRouter(svc)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, basePath+tt.position+"/note", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp types.NoteResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedNote, resp.Note)
				assert.Equal(t, "t1", resp.TrackID)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestPutNote(t *testing.T) {
	svc := new(mocks.Service)
	key := models.MembershipKey{PlaylistID: "37i9", TrackID: "t1", Position: 3}
	svc.On("EditTrackNote", mock.Anything, "u1", key, "the bridge").
		Return(&models.PlaylistMember{PlaylistID: "37i9", TrackID: "t1", Position: 3, Note: stringPtr("the bridge")}, nil)
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, basePath+"3/note", strings.NewReader(`{"note":"the bridge"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp types.NoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Position)
	assert.Equal(t, "the bridge", resp.Note)
	svc.AssertExpectations(t)
}

func TestDeleteNote(t *testing.T) {
	svc := new(mocks.Service)
	key := models.MembershipKey{PlaylistID: "37i9", TrackID: "t1", Position: 1}
	svc.On("DeleteTrackNote", mock.Anything, "u1", key).
		Return(&models.PlaylistMember{PlaylistID: "37i9", TrackID: "t1", Position: 1, Note: stringPtr("")}, nil)
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, basePath+"1/note", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp types.NoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "", resp.Note)
}
