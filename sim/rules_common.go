package sim

import "vxsim/grid"

var cardinals4 = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

var neighbors8 = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// setMaterial replaces the material at (x,y) in place, keeping existing
// flags, and reactivates the chunk appropriately via grid.Grid2D.Set.
func setMaterial(g *grid.Grid2D, x, y int, m grid.MaterialID) {
	c := g.Get(x, y)
	g.Set(x, y, grid.MakeCell(m, c.FlagsOf()))
}

func clear(g *grid.Grid2D, x, y int) {
	g.Set(x, y, 0)
}
