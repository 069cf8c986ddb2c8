package toggle

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the toggle counters.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "solvr_ui").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the toggle counters.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// Metrics counts the lifecycle outcomes of optimistic mutations, labeled
// by feature so a dashboard can distinguish a flaky vote endpoint from a
// flaky follow one.
type Metrics struct {
	applied      *prometheus.CounterVec
	failed       *prometheus.CounterVec
	discarded    *prometheus.CounterVec
	readFailures *prometheus.CounterVec
}

// NewMetrics creates the toggle metrics, registered against the configured
// registry. Create at most one per registry: Prometheus rejects duplicates.
func NewMetrics(opts ...MetricsOption) *Metrics {
	cfg := MetricsConfig{
		Namespace: "solvr_ui",
		Registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	factory := promauto.With(cfg.Registry)
	labels := []string{"feature"}

	return &Metrics{
		applied: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   "toggle",
			Name:        "applied_total",
			Help:        "Optimistic transitions applied to the visible state.",
			ConstLabels: cfg.ConstLabels,
		}, labels),
		failed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   "toggle",
			Name:        "failed_total",
			Help:        "Mutations that failed and were reverted.",
			ConstLabels: cfg.ConstLabels,
		}, labels),
		discarded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   "toggle",
			Name:        "discarded_total",
			Help:        "Completions discarded because the view unmounted.",
			ConstLabels: cfg.ConstLabels,
		}, labels),
		readFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   "toggle",
			Name:        "read_failures_total",
			Help:        "Initial authoritative reads that failed.",
			ConstLabels: cfg.ConstLabels,
		}, labels),
	}
}
