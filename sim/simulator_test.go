package sim

import (
	"testing"

	"vxsim/grid"
	"vxsim/material"
	"vxsim/telemetry"
)

func newTestGrid(w, h int) *grid.Grid2D {
	return grid.NewGrid2D(w, h, 16, material.Reactive)
}

// TestSandSettlesOnFloor: a single sand cell dropped above a rock floor
// should come to rest on the floor within a bounded number of steps.
func TestSandSettlesOnFloor(t *testing.T) {
	g := newTestGrid(8, 8)
	for x := 0; x < 8; x++ {
		g.Set(x, 7, grid.MakeCell(material.Rock, 0))
	}
	g.Set(3, 0, grid.MakeCell(material.Sand, 0))

	sim := NewSimulator(g, 42)
	for i := 0; i < 50; i++ {
		sim.Step()
	}

	if g.Get(3, 6).MaterialOf() != material.Sand {
		t.Fatalf("expected sand to settle at (3,6), got material %d there and %d at drop point",
			g.Get(3, 6).MaterialOf(), g.Get(3, 0).MaterialOf())
	}
}

// TestWaterSpreadsHorizontally: water dropped onto a flat floor should
// spread sideways rather than staying in a single column.
func TestWaterSpreadsHorizontally(t *testing.T) {
	g := newTestGrid(16, 8)
	for x := 0; x < 16; x++ {
		g.Set(x, 7, grid.MakeCell(material.Rock, 0))
	}
	for i := 0; i < 6; i++ {
		g.Set(8, 6-i, grid.MakeCell(material.Water, 0))
	}

	sim := NewSimulator(g, 7)
	for i := 0; i < 200; i++ {
		sim.Step()
	}

	spread := 0
	for x := 0; x < 16; x++ {
		if g.Get(x, 6).MaterialOf() == material.Water {
			spread++
		}
	}
	if spread < 2 {
		t.Fatalf("expected water to spread across the floor row, only found %d water cells", spread)
	}
}

// TestFireMeetsWaterProducesSteam: fire at (1,1) with water directly below
// at (1,2) always becomes steam after one step, and the water flashes to
// steam roughly half the time — a sweep of seeds must see both outcomes.
// The fresh steam is revisited later in the same bottom-up pass and may
// drift one cell up, so the fire-cell check accepts that drift.
func TestFireMeetsWaterProducesSteam(t *testing.T) {
	flashed, survived := 0, 0
	for seed := uint64(1); seed <= 32; seed++ {
		g := newTestGrid(3, 4)
		for x := 0; x < 3; x++ {
			g.Set(x, 3, grid.MakeCell(material.Rock, 0))
		}
		g.Set(1, 1, grid.MakeCell(material.Fire, 0))
		g.Set(1, 2, grid.MakeCell(material.Water, 0))

		sim := NewSimulator(g, seed)
		sim.Step()

		if g.Get(1, 1).MaterialOf() != material.Steam &&
			!(g.Get(1, 1).IsEmpty() && g.Get(1, 0).MaterialOf() == material.Steam) {
			t.Fatalf("seed %d: expected fire cell (1,1) doused to steam, got %d", seed, g.Get(1, 1).MaterialOf())
		}
		if g.Get(1, 2).MaterialOf() == material.Steam {
			flashed++
			continue
		}
		waterLeft := false
		for _, c := range g.Cells() {
			if c.MaterialOf() == material.Water {
				waterLeft = true
			}
		}
		if !waterLeft {
			t.Fatalf("seed %d: water neither flashed to steam nor survived the step", seed)
		}
		survived++
	}
	if flashed == 0 || survived == 0 {
		t.Fatalf("expected both outcomes of the 50%% flash across seeds, got flashed=%d survived=%d", flashed, survived)
	}
}

// TestUnsupportedWoodFalls: a wood cell with no path to a solid floor
// eventually falls.
func TestUnsupportedWoodFalls(t *testing.T) {
	g := newTestGrid(8, 8)
	g.Set(3, 0, grid.MakeCell(material.Wood, 0))

	sim := NewSimulator(g, 5)
	moved := false
	for i := 0; i < 100; i++ {
		sim.Step()
		if g.Get(3, 0).MaterialOf() != material.Wood {
			moved = true
			break
		}
	}
	if !moved {
		t.Fatalf("expected unsupported wood to fall from its starting cell")
	}
}

// TestGroundedWoodStaysPut: wood resting directly on rock never falls.
func TestGroundedWoodStaysPut(t *testing.T) {
	g := newTestGrid(8, 8)
	g.Set(3, 4, grid.MakeCell(material.Rock, 0))
	g.Set(3, 3, grid.MakeCell(material.Wood, 0))

	sim := NewSimulator(g, 5)
	for i := 0; i < 100; i++ {
		sim.Step()
	}
	if g.Get(3, 3).MaterialOf() != material.Wood {
		t.Fatalf("expected grounded wood to remain at (3,3), got %d", g.Get(3, 3).MaterialOf())
	}
}

// TestStepRecordedFeedsTelemetry: a recorded step lands one metrics row
// with the pre-step active chunk count and the live cell total.
func TestStepRecordedFeedsTelemetry(t *testing.T) {
	g := newTestGrid(8, 8)
	g.Set(3, 0, grid.MakeCell(material.Sand, 0))

	rec := telemetry.NewRecorder(8)
	sim := NewSimulator(g, 42)
	sim.StepRecorded(rec)

	mean, _ := rec.RollingActiveChunkStats()
	if mean < 1 {
		t.Fatalf("expected at least one active chunk recorded, got mean %v", mean)
	}
}

// TestIceMeltsNearLava: ice touching lava melts immediately; depending on
// visit order the meltwater may then be quenched to steam by the lava in
// the same step, so the test asserts the ice is gone and its material
// became water or steam rather than pinning one of the two.
func TestIceMeltsNearLava(t *testing.T) {
	g := newTestGrid(8, 8)
	g.Set(3, 3, grid.MakeCell(material.Ice, 0))
	g.Set(4, 3, grid.MakeCell(material.Lava, 0))

	sim := NewSimulator(g, 1)
	sim.Step()

	if g.Get(3, 3).MaterialOf() == material.Ice {
		t.Fatalf("expected ice to melt next to lava")
	}
	melted := false
	for _, c := range g.Cells() {
		m := c.MaterialOf()
		if m == material.Water || m == material.Steam {
			melted = true
		}
	}
	if !melted {
		t.Fatalf("expected melted ice to leave water or steam behind")
	}
}
