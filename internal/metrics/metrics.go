// Package metrics provides Prometheus instrumentation for the RCON client.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hlladmin/rcon/protocol"
)

// Metrics holds all Prometheus metrics for the RCON client. A nil *Metrics
// is valid and records nothing, so instrumentation stays optional.
type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	ConnectsTotal    *prometheus.CounterVec
	ConnectionResets prometheus.Counter
	PoolWorkers      prometheus.Gauge
}

// New creates and registers all metrics with the given registry.
func New(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		RequestsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "hllrcon",
				Name:      "requests_total",
				Help:      "Total number of RCON requests executed",
			},
			[]string{"command", "outcome"}, // outcome=ok/command_error/network_error
		),
		RequestDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "hllrcon",
				Name:      "request_duration_seconds",
				Help:      "Request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"command"},
		),
		ConnectsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "hllrcon",
				Name:      "connects_total",
				Help:      "Total connect attempts, by outcome",
			},
			[]string{"outcome"}, // outcome=ok/error
		),
		ConnectionResets: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Namespace: "hllrcon",
				Name:      "connection_resets_total",
				Help:      "Connections disposed after hitting the failure threshold",
			},
		),
		PoolWorkers: promauto.With(reg).NewGauge(
			prometheus.GaugeOpts{
				Namespace: "hllrcon",
				Name:      "pool_workers",
				Help:      "Number of live workers in the connection pool",
			},
		),
	}
}

// ObserveRequest records one executed request with its outcome and duration.
func (m *Metrics) ObserveRequest(command string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	outcome := "ok"
	var cmdErr *protocol.CommandError
	switch {
	case err == nil:
	case errors.As(err, &cmdErr):
		outcome = "command_error"
	default:
		outcome = "network_error"
	}
	m.RequestsTotal.WithLabelValues(command, outcome).Inc()
	m.RequestDuration.WithLabelValues(command).Observe(duration.Seconds())
}

// ConnectFinished records the outcome of one connect attempt.
func (m *Metrics) ConnectFinished(ok bool) {
	if m == nil {
		return
	}
	outcome := "error"
	if ok {
		outcome = "ok"
	}
	m.ConnectsTotal.WithLabelValues(outcome).Inc()
}

// ConnectionReset records a connection disposed by the failure threshold.
func (m *Metrics) ConnectionReset() {
	if m == nil {
		return
	}
	m.ConnectionResets.Inc()
}

// WorkerAdded records a new pool worker.
func (m *Metrics) WorkerAdded() {
	if m == nil {
		return
	}
	m.PoolWorkers.Inc()
}

// WorkerRemoved records a pool worker that disconnected.
func (m *Metrics) WorkerRemoved() {
	if m == nil {
		return
	}
	m.PoolWorkers.Dec()
}
