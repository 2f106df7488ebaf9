// Package metrics provides Prometheus metrics for the Tadoru server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the exploration session. Each
// instance carries its own registry so independent sessions (and tests)
// never collide on registration.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP request metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Tree accounting metrics
	ExpansionsTotal     *prometheus.CounterVec
	NodesAddedTotal     prometheus.Counter
	DocumentsAddedTotal prometheus.Counter
	TokensConsumedTotal prometheus.Counter

	// Tree state metrics
	TreeNodesTotal prometheus.Gauge
	LiveDocuments  prometheus.Gauge
	LeafQueueDepth prometheus.Gauge
	DeletedNodes   prometheus.Counter
	LeafPopsTotal  *prometheus.CounterVec

	// Server metrics
	ServerStartTime time.Time
}

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	m := &Metrics{
		registry:        registry,
		ServerStartTime: time.Now(),
	}

	// HTTP request metrics
	m.HTTPRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tadoru_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "status"},
	)

	m.HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tadoru_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// Tree accounting metrics
	m.ExpansionsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tadoru_expansions_total",
			Help: "Total number of node expansions by batch kind",
		},
		[]string{"kind"},
	)

	m.NodesAddedTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "tadoru_nodes_added_total",
			Help: "Total number of nodes added to the tree",
		},
	)

	m.DocumentsAddedTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "tadoru_documents_added_total",
			Help: "Total number of document nodes added to the tree",
		},
	)

	m.TokensConsumedTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "tadoru_tokens_consumed_total",
			Help: "Total tokens consumed by added document content",
		},
	)

	// Tree state metrics
	m.TreeNodesTotal = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "tadoru_tree_nodes_total",
			Help: "Current number of nodes in the tree",
		},
	)

	m.LiveDocuments = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "tadoru_live_documents",
			Help: "Current number of documents not soft-deleted",
		},
	)

	m.LeafQueueDepth = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "tadoru_leaf_queue_depth",
			Help: "Current number of nodes in the leaf work queue",
		},
	)

	m.DeletedNodes = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "tadoru_deleted_nodes_total",
			Help: "Total number of soft-delete operations",
		},
	)

	m.LeafPopsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tadoru_leaf_pops_total",
			Help: "Total number of leaf queue pops by end",
		},
		[]string{"end"},
	)

	return m
}

// RecordHTTPRequest records an HTTP request with its status.
func (m *Metrics) RecordHTTPRequest(method string, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordExpansion records one AddNodes call: how many documents and queries
// it added and how many tokens the batch consumed.
func (m *Metrics) RecordExpansion(documents, queries, tokens int) {
	kind := "query"
	if documents > 0 {
		kind = "document"
	}
	m.ExpansionsTotal.WithLabelValues(kind).Inc()
	m.NodesAddedTotal.Add(float64(documents + queries))
	m.DocumentsAddedTotal.Add(float64(documents))
	m.TokensConsumedTotal.Add(float64(tokens))
}

// UpdateTreeStats updates the tree state gauges.
func (m *Metrics) UpdateTreeStats(nodeCount, liveDocuments, leafDepth int) {
	m.TreeNodesTotal.Set(float64(nodeCount))
	m.LiveDocuments.Set(float64(liveDocuments))
	m.LeafQueueDepth.Set(float64(leafDepth))
}

// RecordLeafPop records a pop from the given end ("front" or "back").
func (m *Metrics) RecordLeafPop(end string) {
	m.LeafPopsTotal.WithLabelValues(end).Inc()
}

// RecordDelete records a soft-delete operation.
func (m *Metrics) RecordDelete() {
	m.DeletedNodes.Inc()
}

// Handler returns an HTTP handler exposing this instance's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Uptime returns the time elapsed since the metrics were created.
func (m *Metrics) Uptime() time.Duration {
	return time.Since(m.ServerStartTime)
}
