// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const Namespace = "jamjot"

const (
	NameCatalogRequests  = "catalog_requests_total"
	NameMaterializations = "shadow_materializations_total"
	NameAnnotationWrites = "annotation_writes_total"

	LabelEndpoint = "endpoint"
	LabelOutcome  = "outcome"
	LabelEntity   = "entity"
	LabelTier     = "tier"
	LabelOp       = "op"
)

// CatalogRequests counts catalog HTTP calls by endpoint and outcome
// (ok, not_found, throttled, error).
var CatalogRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameCatalogRequests,
		Help:      "Catalog API requests",
		Namespace: Namespace,
	},
	[]string{LabelEndpoint, LabelOutcome},
)

// Materializations counts shadow rows actually inserted, by entity.
var Materializations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameMaterializations,
		Help:      "Shadow rows created from catalog data",
		Namespace: Namespace,
	},
	[]string{LabelEntity},
)

var AnnotationWrites = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameAnnotationWrites,
		Help:      "Annotation writes by tier and operation",
		Namespace: Namespace,
	},
	[]string{LabelTier, LabelOp},
)
