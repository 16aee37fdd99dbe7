package sim

import "vxsim/material"

// fireRule: counts empty/gas neighbors as "oxygen" and notes whether any
// flammable neighbor (fuel) is present, dies out faster when starved or
// fuelless, otherwise spreads to flammable neighbors, reacts instantly
// to water/ice/snow contact, and drifts upward with jitter while alive.
func (s *Simulator) fireRule(x, y int) {
	g := s.Grid
	oxygen := 0
	fuelNearby := false
	for _, d := range neighbors8 {
		nm := ReadCell(g, x+d[0], y+d[1]).MaterialOf()
		if nm == material.Empty || material.IsGas(nm) {
			oxygen++
		}
		if material.IsFlammable(nm) {
			fuelNearby = true
		}
		if nm == material.Water {
			setMaterial(g, x, y, material.Steam)
			if s.Rand.Chance(50) {
				setMaterial(g, x+d[0], y+d[1], material.Steam)
			}
			return
		}
		if nm == material.Ice || nm == material.Snow {
			setMaterial(g, x+d[0], y+d[1], material.Water)
		}
	}

	deathChance := 5
	switch {
	case oxygen < 2:
		deathChance = 40
	case !fuelNearby:
		deathChance = 15
	}
	// Flames gutter faster the higher they climb.
	deathChance += maxInt(0, (40-y)/10)
	if s.Rand.Chance(deathChance) {
		if s.Rand.Chance(70) {
			setMaterial(g, x, y, material.Smoke)
		} else {
			clear(g, x, y)
		}
		return
	}

	for _, d := range neighbors8 {
		nx, ny := x+d[0], y+d[1]
		nm := ReadCell(g, nx, ny).MaterialOf()
		if material.IsFlammable(nm) && s.Rand.Chance(int(material.Flammability(nm)*100)) {
			setMaterial(g, nx, ny, material.Fire)
		}
	}

	if s.Rand.Chance(70) {
		dir := coinDir(s.Rand)
		if s.Rand.Intn(3) == 0 {
			dir = 0
		}
		TryMove(g, x, y, x+dir, y-1)
		return
	}
	dir := coinDir(s.Rand)
	TryMove(g, x, y, x+dir, y-1)
}

// leafRule: small chance to ignite near fire; otherwise falls with lateral
// drift when not supported by a connected trunk, static when supported.
func (s *Simulator) leafRule(x, y int) {
	g := s.Grid
	for _, d := range neighbors8 {
		if ReadCell(g, x+d[0], y+d[1]).MaterialOf() == material.Fire {
			if s.Rand.Chance(12) {
				setMaterial(g, x, y, material.Fire)
			}
			return
		}
	}
	if s.groundedFrom(x, y) {
		return
	}
	dir := coinDir(s.Rand)
	if TryMove(g, x, y, x+dir, y+1) {
		return
	}
	TryMove(g, x, y, x, y+1)
}

// woodRule: ignites near fire (5%) or lava (15%); falls slowly when its
// connected structure isn't rooted in solid ground.
func (s *Simulator) woodRule(x, y int) {
	g := s.Grid
	for _, d := range neighbors8 {
		nm := ReadCell(g, x+d[0], y+d[1]).MaterialOf()
		if nm == material.Fire && s.Rand.Chance(5) {
			setMaterial(g, x, y, material.Fire)
			return
		}
		if nm == material.Lava && s.Rand.Chance(15) {
			setMaterial(g, x, y, material.Fire)
			return
		}
	}
	if s.groundedFrom(x, y) {
		return
	}
	if s.Rand.Chance(60) {
		TryMove(g, x, y, x, y+1)
		return
	}
	// A failed roll writes nothing, so keep the chunk scheduled for the
	// next attempt.
	g.MarkChunkActiveAt(x, y)
}

// iceRule: melts to water on any fire/lava contact, otherwise static.
func (s *Simulator) iceRule(x, y int) {
	g := s.Grid
	for _, d := range neighbors8 {
		nm := ReadCell(g, x+d[0], y+d[1]).MaterialOf()
		if nm == material.Fire || nm == material.Lava {
			setMaterial(g, x, y, material.Water)
			return
		}
	}
}

// grassRule: small chance to ignite next to fire/lava, otherwise static.
func (s *Simulator) grassRule(x, y int) {
	g := s.Grid
	for _, d := range neighbors8 {
		nm := ReadCell(g, x+d[0], y+d[1]).MaterialOf()
		if (nm == material.Fire || nm == material.Lava) && s.Rand.Chance(10) {
			setMaterial(g, x, y, material.Fire)
			return
		}
	}
}
