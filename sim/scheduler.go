// Package sim implements the active-chunk scheduler and the per-material
// update rules that run on top of a grid.Grid2D.
package sim

import "vxsim/grid"

// ScanOrder selects the traversal order StepActiveChunks uses. Only one
// order exists (bottom-up rows within a chunk, chunks bottom-up globally);
// it is a named type so the determinism contract, a given RNG seed and
// identical starting grid produce the same output, stays visibly pinned to
// a single well-known traversal.
type ScanOrder int

const (
	BottomUp ScanOrder = iota
)

// PerCellFunc is called once per interior cell of each visited chunk, in
// scan order, with the cell's flat index and (x,y) coordinate.
type PerCellFunc func(i, x, y int)

// StepActiveChunks iterates every chunk with its active bit set, in the
// given scan order, clearing the bit before visiting so rules can
// re-activate it, then calls per_cell for each interior cell.
func StepActiveChunks(g *grid.Grid2D, order ScanOrder, perCell PerCellFunc) {
	chunksW := g.ChunksW()
	chunksH := g.ChunksH()
	for cy := chunksH - 1; cy >= 0; cy-- {
		for cx := 0; cx < chunksW; cx++ {
			if !g.IsChunkActive(cx, cy) {
				continue
			}
			g.ClearChunkActive(cx, cy)

			x0, y0, x1, y1 := g.ChunkBounds(cx, cy)
			for y := y1 - 1; y >= y0; y-- {
				for x := x0; x < x1; x++ {
					perCell(y*g.W+x, x, y)
				}
			}
		}
	}
}
