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
	auditStartedTotal   atomic.Uint64
	auditProcessedTotal atomic.Uint64
	auditFailedTotal    atomic.Uint64
	recordsDeletedTotal atomic.Uint64

	auditDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncAuditStarted increments the started counter.
func IncAuditStarted() {
	auditStartedTotal.Add(1)
}

// IncAuditProcessed increments the processed counter.
func IncAuditProcessed() {
	auditProcessedTotal.Add(1)
}

// IncAuditFailed increments the failed counter.
func IncAuditFailed() {
	auditFailedTotal.Add(1)
}

// IncRecordsDeleted increments the deleted-records counter.
func IncRecordsDeleted() {
	recordsDeletedTotal.Add(1)
}

// ObserveAuditDurationMs records one pipeline duration in milliseconds.
func ObserveAuditDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	auditDuration.Observe(value)
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
	writeCounter(&buf, "audit_started_total", "Total audits started", auditStartedTotal.Load())
	writeCounter(&buf, "audit_processed_total", "Total audits processed", auditProcessedTotal.Load())
	writeCounter(&buf, "audit_failed_total", "Total audits failed", auditFailedTotal.Load())
	writeCounter(&buf, "records_deleted_total", "Total audit records deleted", recordsDeletedTotal.Load())
	writeHistogram(&buf, "audit_duration_ms", "Audit pipeline duration in milliseconds", auditDuration.Snapshot())
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
