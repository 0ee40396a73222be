package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveRPC("/splitzee.v1.SplitService/CalculateSplit", "ok", 5*time.Millisecond)
	m.ObserveRPC("/splitzee.v1.SplitService/CalculateSplit", "ok", 7*time.Millisecond)
	m.ObserveRPC("/splitzee.v1.SplitService/CalculateSplit", "invalid_argument", time.Millisecond)
	m.SplitCalculated("equal")
	m.SplitRejected("custom")
	m.RecurringCreated(3)
	m.RecurringCreated(0)

	if got := testutil.ToFloat64(m.rpcRequests.WithLabelValues("/splitzee.v1.SplitService/CalculateSplit", "ok")); got != 2 {
		t.Errorf("rpc ok count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.splits.WithLabelValues("equal")); got != 1 {
		t.Errorf("equal splits = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.splitRejections.WithLabelValues("custom")); got != 1 {
		t.Errorf("custom rejections = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.recurringCreated); got != 3 {
		t.Errorf("recurring created = %v, want 3", got)
	}
	if n := testutil.CollectAndCount(m.rpcDuration); n != 1 {
		t.Errorf("duration series = %d, want 1", n)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveRPC("p", "ok", time.Second)
	m.SplitCalculated("equal")
	m.SplitRejected("equal")
	m.RecurringCreated(1)
}
