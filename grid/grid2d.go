package grid

// ReactivityFunc reports whether a material can move or react on its own,
// i.e. whether a cell of that material must keep its chunk active. Grid2D
// is otherwise material-agnostic, so this is supplied by the caller (the
// sim/material packages) rather than hardcoded here.
type ReactivityFunc func(MaterialID) bool

// Grid2D is a logical W×H raster of Cells stored row-major, partitioned
// into fixed-size square chunks. Each chunk tracks two bits: active (must
// be visited next frame) and dirty (contents changed since last present).
type Grid2D struct {
	W, H      int
	chunkSize int
	log2Size  uint
	chunksW   int
	chunksH   int

	cells  []Cell
	active []bool
	dirty  []bool

	reactive ReactivityFunc
}

// NewGrid2D creates a W×H grid partitioned into chunkSize×chunkSize chunks.
// chunkSize must be a power of two. reactive may be nil, in which case every
// non-empty material is treated as reactive (the conservative default).
func NewGrid2D(w, h, chunkSize int, reactive ReactivityFunc) *Grid2D {
	log2 := uint(0)
	for (1 << log2) < chunkSize {
		log2++
	}
	chunksW := (w + chunkSize - 1) / chunkSize
	chunksH := (h + chunkSize - 1) / chunkSize
	if reactive == nil {
		reactive = func(m MaterialID) bool { return m != EmptyMaterial }
	}
	return &Grid2D{
		W: w, H: h,
		chunkSize: chunkSize,
		log2Size:  log2,
		chunksW:   chunksW,
		chunksH:   chunksH,
		cells:     make([]Cell, w*h),
		active:    make([]bool, chunksW*chunksH),
		dirty:     make([]bool, chunksW*chunksH),
		reactive:  reactive,
	}
}

func (g *Grid2D) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

func (g *Grid2D) index(x, y int) int { return y*g.W + x }

func (g *Grid2D) chunkCoord(x, y int) (cx, cy int) {
	return x >> g.log2Size, y >> g.log2Size
}

func (g *Grid2D) chunkIndex(cx, cy int) int {
	return cy*g.chunksW + cx
}

// Get returns the cell at (x,y), or the empty cell if out of bounds.
func (g *Grid2D) Get(x, y int) Cell {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.cells[g.index(x, y)]
}

// GetUnchecked reads without a bounds check, for hot inner loops that have
// already validated the coordinate.
func (g *Grid2D) GetUnchecked(x, y int) Cell {
	return g.cells[g.index(x, y)]
}

// Set writes a cell at (x,y). Out-of-bounds writes are silent no-ops.
// Always marks the chunk dirty; marks it active
// iff the written material is reactive. Cells at a chunk edge additionally
// activate up to two neighbor chunks so boundary-crossing reactions are
// scheduled.
func (g *Grid2D) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[g.index(x, y)] = c
	g.MarkChunkDirtyAt(x, y)
	if g.reactive(c.MaterialOf()) {
		g.MarkChunkActiveAt(x, y)
		g.activateEdgeNeighbors(x, y)
	}
}

// SetUnchecked writes without a bounds check or activation bookkeeping, for
// use by callers (chunk generation, bulk load) that manage chunk state
// themselves.
func (g *Grid2D) SetUnchecked(x, y int, c Cell) {
	g.cells[g.index(x, y)] = c
}

func (g *Grid2D) activateEdgeNeighbors(x, y int) {
	lx := x & (g.chunkSize - 1)
	ly := y & (g.chunkSize - 1)
	cx, cy := g.chunkCoord(x, y)
	if lx == 0 {
		g.activateChunk(cx-1, cy)
	} else if lx == g.chunkSize-1 {
		g.activateChunk(cx+1, cy)
	}
	if ly == 0 {
		g.activateChunk(cx, cy-1)
	} else if ly == g.chunkSize-1 {
		g.activateChunk(cx, cy+1)
	}
}

func (g *Grid2D) activateChunk(cx, cy int) {
	if cx < 0 || cy < 0 || cx >= g.chunksW || cy >= g.chunksH {
		return
	}
	g.active[g.chunkIndex(cx, cy)] = true
}

func (g *Grid2D) MarkChunkActiveAt(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	cx, cy := g.chunkCoord(x, y)
	g.active[g.chunkIndex(cx, cy)] = true
}

func (g *Grid2D) MarkChunkDirtyAt(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	cx, cy := g.chunkCoord(x, y)
	g.dirty[g.chunkIndex(cx, cy)] = true
}

func (g *Grid2D) IsChunkActive(cx, cy int) bool {
	if cx < 0 || cy < 0 || cx >= g.chunksW || cy >= g.chunksH {
		return false
	}
	return g.active[g.chunkIndex(cx, cy)]
}

func (g *Grid2D) IsChunkDirty(cx, cy int) bool {
	if cx < 0 || cy < 0 || cx >= g.chunksW || cy >= g.chunksH {
		return false
	}
	return g.dirty[g.chunkIndex(cx, cy)]
}

func (g *Grid2D) ClearChunkDirty(cx, cy int) {
	g.dirty[g.chunkIndex(cx, cy)] = false
}

func (g *Grid2D) ClearChunkActive(cx, cy int) {
	g.active[g.chunkIndex(cx, cy)] = false
}

// ActiveChunkCount returns how many chunks currently have their active
// bit set, for the pre-step telemetry snapshot.
func (g *Grid2D) ActiveChunkCount() int {
	n := 0
	for _, a := range g.active {
		if a {
			n++
		}
	}
	return n
}

func (g *Grid2D) ChunksW() int { return g.chunksW }
func (g *Grid2D) ChunksH() int { return g.chunksH }
func (g *Grid2D) ChunkSize() int { return g.chunkSize }

// ChunkBounds returns the pixel bounds of chunk (cx,cy), clipped to the
// grid: x0,y0 are inclusive, x1,y1 exclusive.
func (g *Grid2D) ChunkBounds(cx, cy int) (x0, y0, x1, y1 int) {
	x0 = cx * g.chunkSize
	y0 = cy * g.chunkSize
	x1 = x0 + g.chunkSize
	y1 = y0 + g.chunkSize
	if x1 > g.W {
		x1 = g.W
	}
	if y1 > g.H {
		y1 = g.H
	}
	return
}

// PaintRect clips (x,y,w,h) to the grid and writes c to every covered cell.
func (g *Grid2D) PaintRect(x, y, w, h int, c Cell) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0 := x, y
	x1, y1 := x+w, y+h
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > g.W {
		x1 = g.W
	}
	if y1 > g.H {
		y1 = g.H
	}
	for yy := y0; yy < y1; yy++ {
		for xx := x0; xx < x1; xx++ {
			g.Set(xx, yy, c)
		}
	}
}

// PaintCircle clips to the grid and writes c to every cell within radius r
// of (cx,cy) (inclusive, using squared distance).
func (g *Grid2D) PaintCircle(cx, cy, r int, c Cell) {
	if r < 0 {
		return
	}
	x0 := cx - r
	x1 := cx + r
	y0 := cy - r
	y1 := cy + r
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > g.W-1 {
		x1 = g.W - 1
	}
	if y1 > g.H-1 {
		y1 = g.H - 1
	}
	r2 := r * r
	for yy := y0; yy <= y1; yy++ {
		dy := yy - cy
		for xx := x0; xx <= x1; xx++ {
			dx := xx - cx
			if dx*dx+dy*dy <= r2 {
				g.Set(xx, yy, c)
			}
		}
	}
}

// Clone returns a deep copy of the grid, used by commands/layers that need
// to snapshot cell data without aliasing the original array.
func (g *Grid2D) Clone() *Grid2D {
	out := &Grid2D{
		W: g.W, H: g.H,
		chunkSize: g.chunkSize,
		log2Size:  g.log2Size,
		chunksW:   g.chunksW,
		chunksH:   g.chunksH,
		reactive:  g.reactive,
	}
	out.cells = append([]Cell(nil), g.cells...)
	out.active = append([]bool(nil), g.active...)
	out.dirty = append([]bool(nil), g.dirty...)
	return out
}

// Cells exposes the backing row-major array directly. Callers must not
// retain it across a Clone.
func (g *Grid2D) Cells() []Cell { return g.cells }

// SetCellsUnsafe replaces the backing cell array wholesale. cells must have
// length W*H. Used by layer mutation helpers that need a fresh backing
// array on every edit so identity-based change detection sees a change.
func (g *Grid2D) SetCellsUnsafe(cells []Cell) {
	g.cells = cells
}
