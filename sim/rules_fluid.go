package sim

import (
	"vxsim/grid"
	"vxsim/material"
)

// waterRule: adjacent Fire turns to Steam on the four cardinals, and each
// douse has a 50% chance of flashing the water itself to steam (ending the
// tick); otherwise the usual fall/diagonal/pressure-spread/rise sequence.
func (s *Simulator) waterRule(x, y int) {
	g := s.Grid
	for _, d := range cardinals4 {
		nx, ny := x+d[0], y+d[1]
		if ReadCell(g, nx, ny).MaterialOf() == material.Fire {
			setMaterial(g, nx, ny, material.Steam)
			if s.Rand.Chance(50) {
				setMaterial(g, x, y, material.Steam)
				return
			}
		}
	}
	s.fluidStep(x, y, material.Water, 10, 30, 10, 90, 2)
}

// oilRule: floats on water (swaps up through it), otherwise behaves like
// water without the fire-to-steam conversion, with its own pressure cap
// and spread parameters.
func (s *Simulator) oilRule(x, y int) {
	g := s.Grid
	if ReadCell(g, x, y+1).MaterialOf() == material.Water {
		below := g.Get(x, y+1)
		self := g.Get(x, y)
		g.Set(x, y+1, self)
		g.Set(x, y, below)
		g.MarkChunkActiveAt(x, y)
		g.MarkChunkDirtyAt(x, y)
		g.MarkChunkActiveAt(x, y+1)
		g.MarkChunkDirtyAt(x, y+1)
		return
	}
	s.fluidStep(x, y, material.Oil, 8, 15, 8, 70, 1)
}

// acidRule: dissolves non-resistant neighbors (60% below / 35% sides),
// moves like water with its own spread parameters, and decays slowly.
func (s *Simulator) acidRule(x, y int) {
	g := s.Grid
	consumed := false
	belowM := ReadCell(g, x, y+1).MaterialOf()
	if belowM != material.Empty && !material.IsResistant(belowM) && s.Rand.Chance(60) {
		setMaterial(g, x, y+1, material.Acid)
		clear(g, x, y)
		consumed = true
	}
	if !consumed {
		for _, d := range [2][2]int{{-1, 0}, {1, 0}} {
			nx, ny := x+d[0], y+d[1]
			nm := ReadCell(g, nx, ny).MaterialOf()
			if nm != material.Empty && !material.IsResistant(nm) && s.Rand.Chance(35) {
				setMaterial(g, nx, ny, material.Acid)
			}
		}
	}
	if consumed {
		return
	}
	// Background decay at 0.2%/tick: Chance takes an integer percent, so a
	// 2% roll gated by an extra 1-in-10 draw yields the finer probability.
	if s.Rand.Chance(2) && s.Rand.Intn(10) == 0 {
		clear(g, x, y)
		return
	}
	s.fluidStep(x, y, material.Acid, 10, 25, 10, 85, 2)
}

// lavaRule: very viscous water. Reacts in the full 3x3 neighborhood each
// tick (water contact quenches both cells: the water flashes to steam and
// the lava cools to rock or boils off as steam; ice/snow -> water;
// flammable neighbors may ignite) and moves rarely (viscosity-gated).
func (s *Simulator) lavaRule(x, y int) {
	g := s.Grid
	for _, d := range neighbors8 {
		nx, ny := x+d[0], y+d[1]
		nm := ReadCell(g, nx, ny).MaterialOf()
		switch {
		case nm == material.Water:
			setMaterial(g, nx, ny, material.Steam)
			if s.Rand.Chance(40) {
				setMaterial(g, x, y, material.Rock)
			} else {
				setMaterial(g, x, y, material.Steam)
			}
			return
		case nm == material.Ice || nm == material.Snow:
			setMaterial(g, nx, ny, material.Water)
		case material.IsFlammable(nm) && s.Rand.Chance(25):
			setMaterial(g, nx, ny, material.Fire)
		}
	}
	// Viscosity gate: only attempt movement on roughly 1-in-viscosity ticks.
	if s.Rand.Intn(int(material.Viscosity(material.Lava))) != 0 {
		return
	}
	s.fluidStep(x, y, material.Lava, 10, 20, 6, 60, 1)
}

// fluidStep is the shared fall/diagonal/pressure-spread/rise sequence used
// by water, oil, lava and acid, parameterized by pressure cap, spread base
// chance, spread chance-per-pressure, spread chance cap, and the base
// spread distance (max distance = baseDist + pressure/2).
func (s *Simulator) fluidStep(x, y int, self grid.MaterialID, pressureCap, spreadBase, spreadPerP, spreadCap, baseDist int) {
	g := s.Grid
	if TryMove(g, x, y, x, y+1) {
		return
	}
	dir := coinDir(s.Rand)
	if TryMove(g, x, y, x+dir, y+1) {
		return
	}
	if TryMove(g, x, y, x-dir, y+1) {
		return
	}

	p := pressure(g, x, y, self, pressureCap)
	spreadChance := minInt(spreadCap, spreadBase+spreadPerP*p)
	if s.Rand.Chance(spreadChance) {
		dist := baseDist + p/2
		if spreadHorizontal(g, x, y, dir, dist) {
			return
		}
		spreadHorizontal(g, x, y, -dir, dist)
	}

	if p > 5 && s.Rand.Chance(10) {
		riseThroughSideUpper(g, s.Rand, x, y)
	}
}
