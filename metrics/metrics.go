// Package metrics exports prometheus metrics describing executed operations.
package metrics

import (
	"time"

	"github.com/nasdf/blogql/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StatusOK    = "ok"
	StatusError = "error"

	// InvalidOperation labels requests that failed before an operation was selected.
	InvalidOperation = "invalid"
)

// Collector records operation counts, durations, and collection sizes.
//
// A nil Collector is valid and records nothing.
type Collector struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	entities   *prometheus.GaugeVec
}

// NewCollector creates a collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blogql_operations_total",
				Help: "Total number of executed GraphQL operations",
			},
			[]string{"operation", "status"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "blogql_operation_duration_seconds",
				Help:    "Duration of GraphQL operations in seconds",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
			},
			[]string{"operation"},
		),
		entities: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "blogql_entities",
				Help: "Current number of records in each collection",
			},
			[]string{"collection"},
		),
	}
}

// ObserveOperation records the outcome and duration of an operation.
func (c *Collector) ObserveOperation(operation string, err error, d time.Duration) {
	if c == nil {
		return
	}
	if operation == "" {
		operation = InvalidOperation
	}
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	c.operations.WithLabelValues(operation, status).Inc()
	c.duration.WithLabelValues(operation).Observe(d.Seconds())
}

// SetCounts updates the collection size gauges.
func (c *Collector) SetCounts(counts core.Counts) {
	if c == nil {
		return
	}
	c.entities.WithLabelValues("users").Set(float64(counts.Users))
	c.entities.WithLabelValues("posts").Set(float64(counts.Posts))
	c.entities.WithLabelValues("comments").Set(float64(counts.Comments))
}
