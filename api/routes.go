package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/jamjot-api/api/auth"
	"github.com/killallgit/jamjot-api/api/health"
	"github.com/killallgit/jamjot-api/api/playlists"
	"github.com/killallgit/jamjot-api/api/timestamps"
	"github.com/killallgit/jamjot-api/api/tracks"
	"github.com/killallgit/jamjot-api/api/types"
	"github.com/killallgit/jamjot-api/api/version"
	_ "github.com/killallgit/jamjot-api/docs/swagger"
	"github.com/killallgit/jamjot-api/pkg/config"
)

// RegisterRoutes registers all API routes. limit, when non-nil, is applied
// to every /api/v1 route.
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, cfg *config.Config, limit gin.HandlerFunc) {
	// Public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine)

	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	engine.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if cfg.Monitoring.Enabled {
		path := cfg.Monitoring.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		engine.GET(path, gin.WrapH(promhttp.Handler()))
	}

	engine.NoRoute(NotFoundHandler())

	authHandler := auth.NewHandler(deps.Auth, deps.Users)

	v1 := engine.Group("/api/v1")
	if limit != nil {
		v1.Use(limit)
	}
	v1.Use(authHandler.AuthMiddleware())

	auth.RegisterRoutes(v1, authHandler)

	playlistGroup := v1.Group("/playlists")
	playlists.RegisterRoutes(playlistGroup, deps)
	tracks.RegisterRoutes(playlistGroup, deps)
	timestamps.RegisterRoutes(playlistGroup, v1.Group("/timestamps"), deps)
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  types.StatusError,
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
