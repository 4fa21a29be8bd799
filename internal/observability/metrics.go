// Package observability provides metrics and tracing for the application.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chirp_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chirp_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// ActiveWebSockets is the gauge of active notification stream connections.
	ActiveWebSockets = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chirp_websocket_connections_total",
		Help: "Total number of active WebSocket connections",
	})

	// NotificationsPublished counts notifications published to Redis by type.
	NotificationsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chirp_notifications_published_total",
		Help: "Total notifications published to the fan-out channel by type",
	}, []string{"type"})

	// WebSocketBackpressureDrops counts messages dropped because a client's
	// send buffer was full or closed.
	WebSocketBackpressureDrops = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chirp_websocket_backpressure_drops_total",
		Help: "Total messages dropped due to client backpressure by hub and reason",
	}, []string{"hub", "reason"})

	// MediaStoreRequests counts media store calls by operation and outcome.
	MediaStoreRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chirp_media_store_requests_total",
		Help: "Total media store requests by operation and outcome",
	}, []string{"operation", "outcome"})
)

// ObserveQuery records the latency of a database query.
func ObserveQuery(operation, table string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}
