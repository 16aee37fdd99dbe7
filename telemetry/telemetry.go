// Package telemetry records per-step simulation metrics in a bounded
// rolling window and exports them as CSV.
package telemetry

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"
)

// StepMetrics is one tick's row: the active-chunk count the scheduler
// walked, the live (non-empty) cell total, and the step's wall-clock
// duration in microseconds. Per-material counts go to MaterialCount rows.
type StepMetrics struct {
	Frame        int   `csv:"frame"`
	ActiveChunks int   `csv:"active_chunks"`
	TotalCells   int   `csv:"total_cells"`
	StepMicros   int64 `csv:"step_micros"`
}

// MaterialCount is a per-material cell count recorded alongside
// StepMetrics for deeper analysis, kept as a separate CSV stream rather
// than a wide row.
type MaterialCount struct {
	Frame    int   `csv:"frame"`
	Material uint8 `csv:"material"`
	Count    int   `csv:"count"`
}

// Recorder accumulates StepMetrics in a bounded rolling window (so a long
// run's memory footprint stays flat) and can flush the window's rows to an
// io.Writer as CSV at any point.
type Recorder struct {
	window   []StepMetrics
	capacity int
	next     int
	full     bool

	materials []MaterialCount
}

// NewRecorder creates a Recorder whose rolling window holds up to
// capacity steps (capacity<=0 defaults to 300, five seconds at 60fps).
func NewRecorder(capacity int) *Recorder {
	if capacity <= 0 {
		capacity = 300
	}
	return &Recorder{window: make([]StepMetrics, capacity), capacity: capacity}
}

// Record appends one step's metrics, overwriting the oldest entry once the
// window fills.
func (r *Recorder) Record(m StepMetrics) {
	r.window[r.next] = m
	r.next = (r.next + 1) % r.capacity
	if r.next == 0 {
		r.full = true
	}
}

// RecordMaterials appends one frame's per-material cell counts. counts is
// indexed by material id; zero-count ids produce no row. The buffer is
// trimmed from the front once it holds more than capacity*32 rows, so a
// long run stays bounded.
func (r *Recorder) RecordMaterials(frame int, counts []int) {
	for id, n := range counts {
		if n == 0 {
			continue
		}
		r.materials = append(r.materials, MaterialCount{Frame: frame, Material: uint8(id), Count: n})
	}
	limit := r.capacity * 32
	if len(r.materials) > limit {
		r.materials = append([]MaterialCount(nil), r.materials[len(r.materials)-limit:]...)
	}
}

// WriteMaterialCSV marshals the per-material count rows to w as CSV.
func (r *Recorder) WriteMaterialCSV(w io.Writer) error {
	if err := gocsv.Marshal(r.materials, w); err != nil {
		return fmt.Errorf("telemetry: writing material CSV: %w", err)
	}
	return nil
}

// rows returns the recorded rows in chronological order.
func (r *Recorder) rows() []StepMetrics {
	if !r.full {
		return append([]StepMetrics(nil), r.window[:r.next]...)
	}
	out := make([]StepMetrics, 0, r.capacity)
	out = append(out, r.window[r.next:]...)
	out = append(out, r.window[:r.next]...)
	return out
}

// WriteCSV marshals every recorded row to w as CSV (header included).
func (r *Recorder) WriteCSV(w io.Writer) error {
	rows := r.rows()
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("telemetry: writing CSV: %w", err)
	}
	return nil
}

// RollingActiveChunkStats returns the mean and standard deviation of
// ActiveChunks across the current window. Returns 0,0 on an empty window.
func (r *Recorder) RollingActiveChunkStats() (mean, stddev float64) {
	rows := r.rows()
	if len(rows) == 0 {
		return 0, 0
	}
	values := make([]float64, len(rows))
	for i, row := range rows {
		values[i] = float64(row.ActiveChunks)
	}
	mean, variance := stat.MeanVariance(values, nil)
	if variance < 0 {
		variance = 0
	}
	return mean, math.Sqrt(variance)
}

// LogSummary emits a structured slog summary of the current window. Meant
// for periodic summaries, never per-cell/per-frame chatter.
func (r *Recorder) LogSummary() {
	mean, stddev := r.RollingActiveChunkStats()
	slog.Info("telemetry summary",
		"window", len(r.rows()),
		"active_chunks_mean", mean,
		"active_chunks_stddev", stddev,
	)
}
