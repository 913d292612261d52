// Prometheus counters for pattern lookups and cache materializations.

package container

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// patternLookups counts linear pattern searches in compressed containers.
	patternLookups = promauto.NewCounter(prometheus.CounterOpts{
		Name: "alignstore_pattern_lookups_total",
		Help: "Pattern searches performed by compressed containers",
	})

	// patternsCreated counts patterns stored because no equal one existed.
	patternsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "alignstore_patterns_created_total",
		Help: "Patterns added to compressed containers",
	})

	// patternsDropped counts patterns removed after losing their last reference.
	patternsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "alignstore_patterns_dropped_total",
		Help: "Unreferenced patterns removed from compressed containers",
	})

	// materializations counts cache fills by the axis that was built.
	materializations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "alignstore_cache_materializations_total",
		Help: "Rows or columns built from primary storage on a cache miss",
	}, []string{"axis"})
)

const (
	axisSite     = "site"
	axisSequence = "sequence"
)
