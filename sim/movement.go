package sim

import (
	"vxsim/grid"
	"vxsim/material"
	"vxsim/rng"
)

// ReadCell reads a cell, returning a Rock sentinel for out-of-bounds
// coordinates so the simulation treats the border as solid. Every rule
// must read neighbors through this, never through grid.Grid2D.Get
// directly, or border cells would see phantom empty space.
func ReadCell(g *grid.Grid2D, x, y int) grid.Cell {
	if !g.InBounds(x, y) {
		return grid.MakeCell(material.Rock, 0)
	}
	return g.GetUnchecked(x, y)
}

func canEnter(m grid.MaterialID) bool {
	return m == material.Empty || material.IsGas(m)
}

// swap exchanges the contents of (sx,sy) and (tx,ty) and unconditionally
// marks both chunks active and dirty, regardless of whether the written
// materials are independently reactive — movement always warrants a
// revisit next tick even when a cell settles into an inert material.
func swap(g *grid.Grid2D, sx, sy, tx, ty int, src, tgt grid.Cell) {
	g.Set(tx, ty, src)
	g.Set(sx, sy, tgt)
	g.MarkChunkActiveAt(sx, sy)
	g.MarkChunkDirtyAt(sx, sy)
	g.MarkChunkActiveAt(tx, ty)
	g.MarkChunkDirtyAt(tx, ty)
}

// TryMove swaps (sx,sy) into (tx,ty) if the target is empty or a gas.
func TryMove(g *grid.Grid2D, sx, sy, tx, ty int) bool {
	target := ReadCell(g, tx, ty)
	if !canEnter(target.MaterialOf()) {
		return false
	}
	src := g.Get(sx, sy)
	swap(g, sx, sy, tx, ty, src, target)
	return true
}

// TryMoveByDensity is like TryMove but also succeeds when the source
// material's density exceeds the target's and the target is not a solid
// (denser material displaces a lighter fluid/gas beneath it).
func TryMoveByDensity(g *grid.Grid2D, sx, sy, tx, ty int) bool {
	target := ReadCell(g, tx, ty)
	tm := target.MaterialOf()
	if material.IsSolid(tm) {
		return false
	}
	if canEnter(tm) {
		src := g.Get(sx, sy)
		swap(g, sx, sy, tx, ty, src, target)
		return true
	}
	src := g.Get(sx, sy)
	if material.Density(src.MaterialOf()) > material.Density(tm) {
		swap(g, sx, sy, tx, ty, src, target)
		return true
	}
	return false
}

// TryLiquidSpread attempts to move (sx,sy), which holds selfMat, into
// (tx,ty). The target must be empty/gas; success probability is
// 1/(2*viscosity(selfMat)).
func TryLiquidSpread(g *grid.Grid2D, r *rng.Rand, sx, sy, tx, ty int, selfMat grid.MaterialID) bool {
	target := ReadCell(g, tx, ty)
	if !canEnter(target.MaterialOf()) {
		return false
	}
	prob := 1.0 / (2.0 * material.Viscosity(selfMat))
	if r.Float64() >= prob {
		return false
	}
	src := g.Get(sx, sy)
	swap(g, sx, sy, tx, ty, src, target)
	return true
}

// pressure counts the contiguous run of `mat` cells directly above (x,y),
// capped at max. Used by the fluid rules to scale spread chance/distance.
func pressure(g *grid.Grid2D, x, y int, mat grid.MaterialID, max int) int {
	count := 0
	for i := 1; i <= max; i++ {
		if ReadCell(g, x, y-i).MaterialOf() != mat {
			break
		}
		count++
	}
	return count
}

// spreadHorizontal searches up to dist cells in direction dir (±1) for the
// first empty/gas cell to swap into, breaking on a solid. Cells occupied by
// the same fluid are passed through transparently (the search is "for the
// first empty/gas cell", not "the first non-self cell").
func spreadHorizontal(g *grid.Grid2D, x, y, dir, dist int) bool {
	for d := 1; d <= dist; d++ {
		nx := x + dir*d
		c := ReadCell(g, nx, y)
		m := c.MaterialOf()
		if material.IsSolid(m) {
			return false
		}
		if canEnter(m) {
			src := g.Get(x, y)
			swap(g, x, y, nx, y, src, c)
			return true
		}
	}
	return false
}

// riseThroughSideUpper implements "under pressure, a chance to rise through
// a clear side-upper path": pick a side; if both the side cell and the
// side-upper-diagonal cell are open, swap into the diagonal.
func riseThroughSideUpper(g *grid.Grid2D, r *rng.Rand, x, y int) bool {
	dir := 1
	if r.Intn(2) == 0 {
		dir = -1
	}
	for _, d := range [2]int{dir, -dir} {
		sideM := ReadCell(g, x+d, y).MaterialOf()
		upM := ReadCell(g, x+d, y-1).MaterialOf()
		if canEnter(sideM) && canEnter(upM) {
			return TryMove(g, x, y, x+d, y-1)
		}
	}
	return false
}

func coinDir(r *rng.Rand) int {
	if r.Intn(2) == 0 {
		return -1
	}
	return 1
}
