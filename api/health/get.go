package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/jamjot-api/api/types"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Report service and database health
// @Tags         health
// @Produce      json
// @Success      200 {object} types.HealthResponse
// @Failure      503 {object} types.HealthResponse
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		database := getDatabaseStatus(deps)

		status := http.StatusOK
		response := types.HealthResponse{
			BaseResponse: types.OK("Service is healthy"),
			Timestamp:    time.Now().UTC().Format(time.RFC3339),
			Services:     map[string]interface{}{"database": database},
		}
		if database["status"] == "unhealthy" {
			status = http.StatusServiceUnavailable
			response.BaseResponse = types.BaseResponse{Status: types.StatusError, Message: "Database unavailable"}
		}

		c.JSON(status, response)
	}
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(deps *types.Dependencies) gin.H {
	if deps == nil || deps.DB == nil || deps.DB.DB == nil {
		return gin.H{"status": "not configured"}
	}

	if err := deps.DB.HealthCheck(); err != nil {
		return gin.H{"status": "unhealthy", "error": err.Error()}
	}

	return gin.H{"status": "healthy"}
}
