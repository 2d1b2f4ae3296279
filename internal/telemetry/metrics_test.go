package telemetry

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_CountsByOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveInvocation("send_sms", OutcomeSuccess, 10*time.Millisecond)
	m.ObserveInvocation("send_sms", OutcomeSuccess, 20*time.Millisecond)
	m.ObserveInvocation("send_sms", OutcomeRejected, 5*time.Millisecond)

	if got := testutil.ToFloat64(m.invocations.WithLabelValues("send_sms", OutcomeSuccess)); got != 2 {
		t.Fatalf("expected 2 successes, got %v", got)
	}
	if got := testutil.ToFloat64(m.invocations.WithLabelValues("send_sms", OutcomeRejected)); got != 1 {
		t.Fatalf("expected 1 rejection, got %v", got)
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveInvocation("get_cdr", OutcomeFault, time.Second)

	if New(nil) != nil {
		t.Fatalf("expected nil metrics for nil registry")
	}
}
