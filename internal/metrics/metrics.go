// Package metrics collects and exposes Prometheus metrics for the upstream
// API calls and the search workflow.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	registry       *prometheus.Registry
	upstreamCalls  *prometheus.CounterVec
	searches       prometheus.Counter
	searchLatency  prometheus.Histogram
	favoriteErrors prometheus.Counter
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		upstreamCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "timtro_upstream_calls_total",
			Help: "Upstream rental API calls by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		searches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "timtro_searches_total",
			Help: "Completed search workflow runs.",
		}),
		searchLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "timtro_search_latency_seconds",
			Help:    "End-to-end search workflow latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		favoriteErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "timtro_favorite_toggle_errors_total",
			Help: "Favorite toggles reverted by an upstream failure.",
		}),
	}

	c.registry.MustRegister(
		c.upstreamCalls,
		c.searches,
		c.searchLatency,
		c.favoriteErrors,
	)

	return c
}

// RecordUpstream counts one upstream call; outcome is ok, transport_error,
// http_error, upstream_fail or bad_payload.
func (c *Collector) RecordUpstream(endpoint, outcome string) {
	c.upstreamCalls.WithLabelValues(endpoint, outcome).Inc()
}

func (c *Collector) RecordSearch(duration time.Duration) {
	c.searches.Inc()
	c.searchLatency.Observe(duration.Seconds())
}

func (c *Collector) RecordFavoriteError() {
	c.favoriteErrors.Inc()
}

// Handler exposes the registry in Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
