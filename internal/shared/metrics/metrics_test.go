package metrics

import (
	"strings"
	"testing"
)

func TestRenderIncludesCounters(t *testing.T) {
	IncExportStarted()
	IncExportCompleted()
	IncATSRequest()
	IncATSMockFallback()

	out := Render()
	for _, name := range []string{
		"export_started_total",
		"export_completed_total",
		"export_failed_total",
		"ats_requests_total",
		"ats_mock_fallback_total",
		"export_duration_ms_bucket",
		"ats_duration_ms_count",
	} {
		if !strings.Contains(out, name) {
			t.Fatalf("missing %s in output:\n%s", name, out)
		}
	}
}

func TestHistogramCumulativeBuckets(t *testing.T) {
	h := newHistogram([]float64{10, 100, 1000})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)
	h.Observe(5000)

	snap := h.Snapshot()
	if snap.count != 4 {
		t.Fatalf("count = %d", snap.count)
	}

	var cumulative uint64
	for i := range snap.buckets {
		cumulative += snap.counts[i]
	}
	// one observation fell above every bound
	if cumulative != 3 {
		t.Fatalf("bucketed observations = %d, want 3", cumulative)
	}
	if snap.sum != 5555 {
		t.Fatalf("sum = %v", snap.sum)
	}
}
