// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "splitzee"

// Metrics holds every collector the server updates.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	rpcRequests      *prometheus.CounterVec
	rpcDuration      *prometheus.HistogramVec
	splits           *prometheus.CounterVec
	splitRejections  *prometheus.CounterVec
	recurringCreated prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		rpcRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "RPC requests by procedure and result code.",
		}, []string{"procedure", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		splits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "splits_calculated_total",
			Help:      "Successful split calculations by strategy.",
		}, []string{"strategy"}),
		splitRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "split_rejections_total",
			Help:      "Split calculations rejected by validation, by strategy.",
		}, []string{"strategy"}),
		recurringCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recurring_occurrences_created_total",
			Help:      "Expenses created from recurring templates.",
		}),
	}
	reg.MustRegister(m.rpcRequests, m.rpcDuration, m.splits, m.splitRejections, m.recurringCreated)
	return m
}

// ObserveRPC records one finished RPC.
func (m *Metrics) ObserveRPC(procedure, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.rpcRequests.WithLabelValues(procedure, code).Inc()
	m.rpcDuration.WithLabelValues(procedure).Observe(d.Seconds())
}

// SplitCalculated counts a successful split.
func (m *Metrics) SplitCalculated(strategy string) {
	if m == nil {
		return
	}
	m.splits.WithLabelValues(strategy).Inc()
}

// SplitRejected counts a split that failed validation.
func (m *Metrics) SplitRejected(strategy string) {
	if m == nil {
		return
	}
	m.splitRejections.WithLabelValues(strategy).Inc()
}

// RecurringCreated counts n occurrences created by the recurring processor.
func (m *Metrics) RecurringCreated(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.recurringCreated.Add(float64(n))
}
