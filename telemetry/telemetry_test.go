package telemetry

import (
	"bytes"
	"strings"
	"testing"
)

func TestRecorderWrapsAroundCapacity(t *testing.T) {
	r := NewRecorder(3)
	for i := 0; i < 5; i++ {
		r.Record(StepMetrics{Frame: i, ActiveChunks: i})
	}
	rows := r.rows()
	if len(rows) != 3 {
		t.Fatalf("expected rolling window capped at 3 rows, got %d", len(rows))
	}
	if rows[0].Frame != 2 || rows[2].Frame != 4 {
		t.Fatalf("expected oldest-to-newest frames 2,3,4, got %v", rows)
	}
}

func TestWriteCSVIncludesHeader(t *testing.T) {
	r := NewRecorder(10)
	r.Record(StepMetrics{Frame: 1, ActiveChunks: 4, TotalCells: 100, StepMicros: 50})

	var buf bytes.Buffer
	if err := r.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "frame") {
		t.Fatalf("expected CSV header with 'frame', got: %s", out)
	}
	if !strings.Contains(out, "4") {
		t.Fatalf("expected CSV body to contain recorded active_chunks value, got: %s", out)
	}
}

func TestWriteMaterialCSVSkipsZeroCounts(t *testing.T) {
	r := NewRecorder(10)
	counts := make([]int, 256)
	counts[3] = 12
	counts[7] = 4
	r.RecordMaterials(1, counts)

	var buf bytes.Buffer
	if err := r.WriteMaterialCSV(&buf); err != nil {
		t.Fatalf("WriteMaterialCSV failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "12") || !strings.Contains(out, "4") {
		t.Fatalf("expected both nonzero counts in CSV, got: %s", out)
	}
	if strings.Count(out, "\n") > 3 {
		t.Fatalf("expected only the two nonzero materials as rows, got: %s", out)
	}
}

func TestRollingActiveChunkStats(t *testing.T) {
	r := NewRecorder(10)
	r.Record(StepMetrics{ActiveChunks: 2})
	r.Record(StepMetrics{ActiveChunks: 4})
	r.Record(StepMetrics{ActiveChunks: 6})

	mean, stddev := r.RollingActiveChunkStats()
	if mean != 4 {
		t.Fatalf("expected mean 4, got %v", mean)
	}
	if stddev <= 0 {
		t.Fatalf("expected nonzero stddev for varying samples, got %v", stddev)
	}
}

func TestRollingStatsEmptyWindow(t *testing.T) {
	r := NewRecorder(5)
	mean, stddev := r.RollingActiveChunkStats()
	if mean != 0 || stddev != 0 {
		t.Fatalf("expected 0,0 for an empty window, got %v,%v", mean, stddev)
	}
}
