package version

import (
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
)

// Set at build time with -ldflags "-X github.com/killallgit/jamjot-api/api/version.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

const (
	Name        = "Jamjot API"
	Description = "Notes and timestamps on catalog playlists and tracks"
)

// Info describes the running build
type Info struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Commit      string `json:"commit"`
	BuildTime   string `json:"buildTime"`
	GoVersion   string `json:"goVersion"`
	Platform    string `json:"platform"`
	Description string `json:"description"`
}

// Current returns the build information of this binary
func Current() Info {
	return Info{
		Name:        Name,
		Version:     Version,
		Commit:      GitCommit,
		BuildTime:   BuildTime,
		GoVersion:   runtime.Version(),
		Platform:    runtime.GOOS + "/" + runtime.GOARCH,
		Description: Description,
	}
}

// Get handles version requests
// @Summary      Service version
// @Tags         health
// @Produce      json
// @Success      200 {object} version.Info
// @Router       / [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Current())
	}
}
