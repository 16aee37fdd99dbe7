package sim

import (
	"vxsim/grid"
	"vxsim/material"
)

// powderFall implements Sand/Dirt: try straight down (displacing a lighter
// fluid by density), else one random diagonal, else the other.
func (s *Simulator) powderFall(x, y int, self grid.MaterialID) {
	g := s.Grid
	if TryMoveByDensity(g, x, y, x, y+1) {
		return
	}
	dir := coinDir(s.Rand)
	if TryMove(g, x, y, x+dir, y+1) {
		return
	}
	TryMove(g, x, y, x-dir, y+1)
}

// rockRule: if the cell below is neither solid nor lava, falls slowly and
// may roll diagonally.
func (s *Simulator) rockRule(x, y int) {
	g := s.Grid
	below := ReadCell(g, x, y+1).MaterialOf()
	if material.IsSolid(below) || below == material.Lava {
		return
	}
	if !s.Rand.Chance(40) {
		return
	}
	if TryMove(g, x, y, x, y+1) {
		return
	}
	dir := coinDir(s.Rand)
	if TryMove(g, x, y, x+dir, y+1) {
		return
	}
	TryMove(g, x, y, x-dir, y+1)
}

// snowRule: static cloud above y<90; below that, floats down with lateral
// drift (30% move chance), melts near fire/lava, compacts into ice under a
// tall enough contiguous stack.
func (s *Simulator) snowRule(x, y int) {
	g := s.Grid
	for _, d := range neighbors8 {
		nm := ReadCell(g, x+d[0], y+d[1]).MaterialOf()
		if nm == material.Fire || nm == material.Lava {
			setMaterial(g, x, y, material.Water)
			return
		}
	}
	if y < 90 {
		return
	}
	if run := pressure(g, x, y, material.Snow, 8); run >= 6 && s.Rand.Chance(5) {
		setMaterial(g, x, y, material.Ice)
		return
	}
	if !s.Rand.Chance(30) {
		return
	}
	dir := coinDir(s.Rand)
	if TryMove(g, x, y, x+dir, y+1) {
		return
	}
	TryMove(g, x, y, x, y+1)
}
