package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	exportStartedTotal   atomic.Uint64
	exportCompletedTotal atomic.Uint64
	exportFailedTotal    atomic.Uint64
	atsRequestsTotal     atomic.Uint64
	atsMockFallbackTotal atomic.Uint64

	exportDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000})
	atsDuration    = newHistogram([]float64{50, 100, 250, 500, 1000, 2000, 5000, 10000})
)

// IncExportStarted increments the started counter for PDF exports.
func IncExportStarted() {
	exportStartedTotal.Add(1)
}

// IncExportCompleted increments the completed counter for PDF exports.
func IncExportCompleted() {
	exportCompletedTotal.Add(1)
}

// IncExportFailed increments the failed counter for PDF exports.
func IncExportFailed() {
	exportFailedTotal.Add(1)
}

// IncATSRequest increments the ATS scoring request counter.
func IncATSRequest() {
	atsRequestsTotal.Add(1)
}

// IncATSMockFallback counts scoring requests answered by the local mock.
func IncATSMockFallback() {
	atsMockFallbackTotal.Add(1)
}

// ObserveExportDurationMs records a PDF export duration in milliseconds.
func ObserveExportDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	exportDuration.Observe(value)
}

// ObserveATSDurationMs records an ATS scoring duration in milliseconds.
func ObserveATSDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	atsDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "export_started_total", "Total PDF exports started", exportStartedTotal.Load())
	writeCounter(&buf, "export_completed_total", "Total PDF exports completed", exportCompletedTotal.Load())
	writeCounter(&buf, "export_failed_total", "Total PDF exports failed", exportFailedTotal.Load())
	writeCounter(&buf, "ats_requests_total", "Total ATS scoring requests", atsRequestsTotal.Load())
	writeCounter(&buf, "ats_mock_fallback_total", "ATS scoring requests served by the local mock", atsMockFallbackTotal.Load())
	writeHistogram(&buf, "export_duration_ms", "PDF export duration in milliseconds", exportDuration.Snapshot())
	writeHistogram(&buf, "ats_duration_ms", "ATS scoring duration in milliseconds", atsDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
