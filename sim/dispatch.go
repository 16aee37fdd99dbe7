package sim

import "vxsim/material"

// runCellRule is the per-cell dispatch the scheduler calls for every
// interior cell of an active chunk. It switches on material id and runs
// that material's update function.
func (s *Simulator) runCellRule(x, y int) {
	cell := s.Grid.GetUnchecked(x, y)
	m := cell.MaterialOf()

	switch m {
	case material.Empty, material.Player, material.Arrow:
		// No rule: empty has nothing to do, Player/Arrow are driver-owned
		// and inert under the cellular rules.
		return
	case material.Sand, material.Dirt:
		s.powderFall(x, y, m)
	case material.Water:
		s.waterRule(x, y)
	case material.Oil:
		s.oilRule(x, y)
	case material.Lava:
		s.lavaRule(x, y)
	case material.Acid:
		s.acidRule(x, y)
	case material.Fire:
		s.fireRule(x, y)
	case material.Smoke:
		s.smokeRule(x, y)
	case material.Steam:
		s.steamRule(x, y)
	case material.Snow:
		s.snowRule(x, y)
	case material.Leaf:
		s.leafRule(x, y)
	case material.Wood:
		s.woodRule(x, y)
	case material.Rock:
		s.rockRule(x, y)
	case material.Ice:
		s.iceRule(x, y)
	case material.Grass:
		s.grassRule(x, y)
	}
}
