// Package metrics exposes Prometheus collectors for the HTTP layer and for failures that operations swallow.
package metrics

import (
	"net/http"

	"adresses/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "adresses"

// Metrics holds all the application metrics
type Metrics struct {
	registry *prometheus.Registry

	// HTTP request metrics
	HTTPRequestTotal    *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Objects left behind by a cascade delete or an upload rollback
	StorageCleanupFailures *prometheus.CounterVec

	// Address events dropped by the publisher
	EventPublishFailures *prometheus.CounterVec

	// Address events handled by the event worker
	EventsProcessed *prometheus.CounterVec
}

var _ service.MetricsRecorder = (*Metrics)(nil)

// New creates the collectors on a private registry, together with the Go and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		HTTPRequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		StorageCleanupFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "storage_cleanup_failures_total",
			Help:      "Stored objects that could not be removed",
		}, []string{"reason"}),

		EventPublishFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_publish_failures_total",
			Help:      "Address events that could not be published",
		}, []string{"event_type"}),

		EventsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "worker_events_total",
			Help:      "Address events received by the event worker",
		}, []string{"event_type", "outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestTotal,
		m.HTTPRequestDuration,
		m.StorageCleanupFailures,
		m.EventPublishFailures,
		m.EventsProcessed,
	)

	return m
}

// NewRecorder exposes m as the recorder used by the use cases.
func NewRecorder(m *Metrics) service.MetricsRecorder {
	return m
}

// StorageCleanupFailed implements service.MetricsRecorder.
func (m *Metrics) StorageCleanupFailed(reason string) {
	m.StorageCleanupFailures.WithLabelValues(reason).Inc()
}

// EventPublishFailed implements service.MetricsRecorder.
func (m *Metrics) EventPublishFailed(eventType string) {
	m.EventPublishFailures.WithLabelValues(eventType).Inc()
}

// EventProcessed counts an event handled by the worker. outcome is ok, retry or dropped.
func (m *Metrics) EventProcessed(eventType, outcome string) {
	m.EventsProcessed.WithLabelValues(eventType, outcome).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the registry holding every collector.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
