package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus instrumentation for a Client.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "solvr_ui").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for request duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus instrumentation.
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

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "solvr_ui",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// ClientMetrics holds the Prometheus metrics for the API client.
type ClientMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	retriesTotal    prometheus.Counter
}

// NewClientMetrics creates the API client metrics, registered against the
// configured registry. Pass the result to NewClient via WithMetrics.
// Create at most one per registry: Prometheus rejects duplicates.
func NewClientMetrics(opts ...MetricsOption) *ClientMetrics {
	cfg := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	factory := promauto.With(cfg.Registry)

	return &ClientMetrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   "api",
			Name:        "requests_total",
			Help:        "Total API requests by method, path and status code.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"method", "path", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   "api",
			Name:        "request_duration_seconds",
			Help:        "API request duration in seconds.",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}, []string{"method", "path"}),
		retriesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   "api",
			Name:        "retries_total",
			Help:        "Total request retry attempts.",
			ConstLabels: cfg.ConstLabels,
		}),
	}
}

// observe records one settled logical request.
// status is 0 when no response was ever received.
func (m *ClientMetrics) observe(method, path string, status int, elapsed time.Duration) {
	label := "none"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	route := routeLabel(path)
	m.requestsTotal.WithLabelValues(method, route, label).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// routeLabel collapses entity IDs out of a path so metric cardinality stays
// bounded: /v1/posts/abc123/vote becomes /v1/posts/:id/vote.
func routeLabel(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}

	segs := strings.Split(path, "/")
	for i := 1; i < len(segs); i++ {
		switch segs[i-1] {
		case "posts", "bookmarks", "agents", "users":
			if segs[i] != "" && segs[i] != "me" {
				segs[i] = ":id"
			}
		}
	}
	return strings.Join(segs, "/")
}
