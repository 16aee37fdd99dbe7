package sim

import "vxsim/material"

// smokeRule: rises with lateral jitter, dissipating faster the closer it
// gets to the top of the grid, plus a small constant chance to vanish
// outright regardless of height.
func (s *Simulator) smokeRule(x, y int) {
	g := s.Grid
	heightBonus := maxInt(0, (50-y)/8)
	if s.Rand.Chance(minInt(100, 1+heightBonus)) || s.Rand.Chance(2) {
		clear(g, x, y)
		return
	}
	if TryMove(g, x, y, x, y-1) {
		return
	}
	dir := coinDir(s.Rand)
	if TryMove(g, x, y, x+dir, y-1) {
		return
	}
	TryMove(g, x, y, x-dir, y-1)
}

// steamRule: near-static above y=60 with rare upward drift; below that it
// either dissipates, condenses back to water near something cold, or rises
// like smoke.
func (s *Simulator) steamRule(x, y int) {
	g := s.Grid
	if y < 60 {
		if s.Rand.Chance(3) {
			TryMove(g, x, y, x, y-1)
		}
		return
	}
	if s.Rand.Chance(8) {
		clear(g, x, y)
		return
	}
	condenseChance := 2
	for _, d := range neighbors8 {
		nm := ReadCell(g, x+d[0], y+d[1]).MaterialOf()
		if nm == material.Ice || nm == material.Snow {
			condenseChance += 15
		}
	}
	if s.Rand.Chance(minInt(100, condenseChance)) {
		setMaterial(g, x, y, material.Water)
		return
	}
	if TryMove(g, x, y, x, y-1) {
		return
	}
	dir := coinDir(s.Rand)
	if TryMove(g, x, y, x+dir, y-1) {
		return
	}
	TryMove(g, x, y, x-dir, y-1)
}
