// Package metrics provides Prometheus metrics for the womgo client.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const millisecondsPerSecond = 1000

// Manager manages all Prometheus metrics for the client. A nil
// Manager is valid and records nothing, so instrumentation points
// never need to branch.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Request metrics - what the client spends its time on
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	// Failure metrics - split by taxonomy kind
	transportFailures *prometheus.CounterVec
	decodeFailures    *prometheus.CounterVec
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "womgo",
		subsystem:        "client",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.requestsTotal = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "requests_total",
			Help:      "Total number of API requests by method, path and status code",
		},
		[]string{"method", "path", "status_code"},
	)

	m.requestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "request_duration_milliseconds",
			Help:      "API request round trip duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"method", "path"},
	)

	m.transportFailures = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "transport_failures_total",
			Help:      "Total number of requests that produced no response",
		},
		[]string{"method", "path"},
	)

	m.decodeFailures = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "decode_failures_total",
			Help:      "Total number of response bodies that failed to decode, by target shape",
		},
		[]string{"target"},
	)
}

// RequestsTotal exposes the request counter for tests and custom
// collectors.
func (m *Manager) RequestsTotal() *prometheus.CounterVec { return m.requestsTotal }

// TransportFailures exposes the transport failure counter.
func (m *Manager) TransportFailures() *prometheus.CounterVec { return m.transportFailures }

// DecodeFailures exposes the decode failure counter.
func (m *Manager) DecodeFailures() *prometheus.CounterVec { return m.decodeFailures }

// RecordRequest records one completed request round trip.
func (m *Manager) RecordRequest(method, path string, status int, elapsed time.Duration) {
	if m == nil || !m.enabled {
		return
	}

	m.requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, path).
		Observe(elapsed.Seconds() * millisecondsPerSecond)
}

// RecordTransportFailure records a request that produced no response.
func (m *Manager) RecordTransportFailure(method, path string) {
	if m == nil || !m.enabled {
		return
	}

	m.transportFailures.WithLabelValues(method, path).Inc()
}

// RecordDecodeFailure records a body that failed to decode into the
// named target shape.
func (m *Manager) RecordDecodeFailure(target string) {
	if m == nil || !m.enabled {
		return
	}

	m.decodeFailures.WithLabelValues(target).Inc()
}
