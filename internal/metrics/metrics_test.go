package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.SourceRequest("primary", "ok")
	m.SourceRequest("primary", "ok")
	m.SourceRequest("backup", "transport_error")
	m.Resolution("store")
	m.StoreError()

	if got := testutil.ToFloat64(m.SourceRequestsTotal.WithLabelValues("primary", "ok")); got != 2 {
		t.Errorf("primary/ok = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.SourceRequestsTotal.WithLabelValues("backup", "transport_error")); got != 1 {
		t.Errorf("backup/transport_error = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.ResolutionsTotal.WithLabelValues("store")); got != 1 {
		t.Errorf("resolutions/store = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.StoreErrorsTotal); got != 1 {
		t.Errorf("store errors = %v, want 1", got)
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	// Must not panic
	m.SourceRequest("primary", "ok")
	m.Resolution("memory")
	m.StoreError()
}
