// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cryptoex"

var (
	registry = prometheus.NewRegistry()

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	upstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Requests made to the price index, by outcome",
		},
		[]string{"provider", "outcome"},
	)

	upstreamRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Price index request duration in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"provider"},
	)

	cacheLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "price_cache_lookups_total",
			Help:      "Price cache lookups, by backend and result",
		},
		[]string{"backend", "result"},
	)

	droppedHoldingsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "portfolio_dropped_holdings_total",
			Help:      "Holdings skipped because the price snapshot had no matching asset",
		},
	)

	pollTicksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "poll_ticks_total",
			Help:      "Poller iterations, by task and outcome",
		},
		[]string{"task", "outcome"},
	)
)

func init() {
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	registry.MustRegister(httpRequestsTotal)
	registry.MustRegister(httpRequestDuration)
	registry.MustRegister(upstreamRequestsTotal)
	registry.MustRegister(upstreamRequestDuration)
	registry.MustRegister(cacheLookupsTotal)
	registry.MustRegister(droppedHoldingsTotal)
	registry.MustRegister(pollTicksTotal)
}

// Registry returns the registry backing Handler.
func Registry() *prometheus.Registry {
	return registry
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// ObserveHTTP records one served request. path should be the route
// template, not the raw URL, to keep label cardinality bounded.
func ObserveHTTP(method, path, status string, elapsed time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// ObserveUpstream records one price index request. outcome is "ok" or
// "error".
func ObserveUpstream(provider, outcome string, elapsed time.Duration) {
	upstreamRequestsTotal.WithLabelValues(provider, outcome).Inc()
	upstreamRequestDuration.WithLabelValues(provider).Observe(elapsed.Seconds())
}

// CacheLookup records a cache hit or miss for backend.
func CacheLookup(backend string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheLookupsTotal.WithLabelValues(backend, result).Inc()
}

// DroppedHoldings adds n skipped portfolio holdings.
func DroppedHoldings(n int) {
	droppedHoldingsTotal.Add(float64(n))
}

// PollTick records one poller iteration. outcome is "applied", "failed" or
// "discarded".
func PollTick(task, outcome string) {
	pollTicksTotal.WithLabelValues(task, outcome).Inc()
}
