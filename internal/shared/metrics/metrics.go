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
	resumeCreatedTotal atomic.Uint64
	resumeUpdatedTotal atomic.Uint64
	resumeDeletedTotal atomic.Uint64

	previewRenderedTotal atomic.Uint64
	pdfExportedTotal     atomic.Uint64
	pdfExportFailedTotal atomic.Uint64

	generationStartedTotal   atomic.Uint64
	generationCompletedTotal atomic.Uint64
	generationFailedTotal    atomic.Uint64

	pdfExportDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000})
)

// IncResumeCreated increments the created counter.
func IncResumeCreated() {
	resumeCreatedTotal.Add(1)
}

// IncResumeUpdated increments the updated counter.
func IncResumeUpdated() {
	resumeUpdatedTotal.Add(1)
}

// IncResumeDeleted increments the deleted counter.
func IncResumeDeleted() {
	resumeDeletedTotal.Add(1)
}

// IncPreviewRendered increments the preview render counter.
func IncPreviewRendered() {
	previewRenderedTotal.Add(1)
}

// IncPDFExported increments the export counter.
func IncPDFExported() {
	pdfExportedTotal.Add(1)
}

// IncPDFExportFailed increments the export failure counter.
func IncPDFExportFailed() {
	pdfExportFailedTotal.Add(1)
}

// IncGenerationStarted increments the generation started counter.
func IncGenerationStarted() {
	generationStartedTotal.Add(1)
}

// IncGenerationCompleted increments the generation completed counter.
func IncGenerationCompleted() {
	generationCompletedTotal.Add(1)
}

// IncGenerationFailed increments the generation failed counter.
func IncGenerationFailed() {
	generationFailedTotal.Add(1)
}

// ObservePDFExportDurationMs records a PDF export duration in milliseconds.
func ObservePDFExportDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	pdfExportDuration.Observe(value)
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
	writeCounter(&buf, "resume_created_total", "Total resumes created", resumeCreatedTotal.Load())
	writeCounter(&buf, "resume_updated_total", "Total resumes updated", resumeUpdatedTotal.Load())
	writeCounter(&buf, "resume_deleted_total", "Total resumes deleted", resumeDeletedTotal.Load())
	writeCounter(&buf, "preview_rendered_total", "Total HTML previews rendered", previewRenderedTotal.Load())
	writeCounter(&buf, "pdf_exported_total", "Total PDF exports completed", pdfExportedTotal.Load())
	writeCounter(&buf, "pdf_export_failed_total", "Total PDF exports failed", pdfExportFailedTotal.Load())
	writeCounter(&buf, "generation_started_total", "Total AI generations started", generationStartedTotal.Load())
	writeCounter(&buf, "generation_completed_total", "Total AI generations completed", generationCompletedTotal.Load())
	writeCounter(&buf, "generation_failed_total", "Total AI generations failed", generationFailedTotal.Load())
	writeHistogram(&buf, "pdf_export_duration_ms", "PDF export duration in milliseconds", pdfExportDuration.Snapshot())
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
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
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
