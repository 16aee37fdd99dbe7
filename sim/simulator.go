package sim

import (
	"time"

	"vxsim/grid"
	"vxsim/rng"
	"vxsim/telemetry"
)

// Simulator is the process-wide owner of the grid and the RNG it feeds
// the material rules, instantiated once per world rather than kept as
// package-level globals.
type Simulator struct {
	Grid *grid.Grid2D
	Rand *rng.Rand

	frame       int
	groundCache map[[2]int]bool
}

// NewSimulator wires a grid to a seeded RNG. The grid should have been
// constructed with material.Reactive as its ReactivityFunc.
func NewSimulator(g *grid.Grid2D, seed uint64) *Simulator {
	return &Simulator{
		Grid: g,
		Rand: rng.New(seed),
	}
}

// Step runs one scheduler pass over all active chunks, dispatching each
// interior cell to its material's rule. It runs to completion before
// returning; there are no suspension points inside a step.
func (s *Simulator) Step() {
	s.groundCache = make(map[[2]int]bool, 64)
	StepActiveChunks(s.Grid, BottomUp, func(i, x, y int) {
		s.runCellRule(x, y)
	})
	s.frame++
}

// Frame returns the number of completed steps.
func (s *Simulator) Frame() int { return s.frame }

// StepRecorded runs one Step and records its metrics (active chunks walked,
// live cell total and per-material counts, wall time) into rec. Passing a
// nil recorder degrades to a plain Step.
func (s *Simulator) StepRecorded(rec *telemetry.Recorder) {
	if rec == nil {
		s.Step()
		return
	}
	active := s.Grid.ActiveChunkCount()
	start := time.Now()
	s.Step()
	total, counts := s.materialCounts()
	rec.Record(telemetry.StepMetrics{
		Frame:        s.frame,
		ActiveChunks: active,
		TotalCells:   total,
		StepMicros:   time.Since(start).Microseconds(),
	})
	rec.RecordMaterials(s.frame, counts[:])
}

func (s *Simulator) materialCounts() (total int, counts [256]int) {
	for _, c := range s.Grid.Cells() {
		if !c.IsEmpty() {
			total++
			counts[c.MaterialOf()]++
		}
	}
	return
}
