package types

import (
	"github.com/killallgit/jamjot-api/internal/database"
	"github.com/killallgit/jamjot-api/internal/services/annotations"
	"github.com/killallgit/jamjot-api/internal/services/auth"
	"github.com/killallgit/jamjot-api/internal/services/users"
	"github.com/killallgit/jamjot-api/pkg/config"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	Config      *config.Config
	DB          *database.DB
	Annotations annotations.Service
	Users       users.Service
	Auth        *auth.Service
}
