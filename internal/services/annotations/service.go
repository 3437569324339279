// Package annotations implements playlist, track and timestamp notes on top
// of lazily created shadow rows for catalog entities.
package annotations

import (
	"github.com/charmbracelet/log"

	"github.com/killallgit/jamjot-api/internal/metrics"
)

const (
	tierPlaylist  = "playlist"
	tierTrack     = "track"
	tierTimestamp = "timestamp"

	opEdit   = "edit"
	opDelete = "delete"
	opAdd    = "add"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repo    Repository
	catalog Catalog
	logger  *log.Logger
}

var _ Service = (*ServiceImpl)(nil)

// ServiceOption configures a ServiceImpl
type ServiceOption func(*ServiceImpl)

// WithLogger sets the logger used by the service
func WithLogger(logger *log.Logger) ServiceOption {
	return func(s *ServiceImpl) {
		s.logger = logger
	}
}

// NewService creates a new annotation service
func NewService(repo Repository, catalog Catalog, opts ...ServiceOption) *ServiceImpl {
	s := &ServiceImpl{
		repo:    repo,
		catalog: catalog,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func recordWrite(tier, op string) {
	metrics.AnnotationWrites.WithLabelValues(tier, op).Inc()
}
