// Package worldgen builds deterministic procedural demo/fixture terrain
// grids — a plain, non-AI generator for sample worlds and fixtures,
// independent of any AI-driven voxel generation a caller might layer on
// top. Block-by-block deterministic assembly generalized from city blocks
// to terrain materials, driven by simplex noise instead of hash-based
// block selection.
package worldgen

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"vxsim/grid"
	"vxsim/material"
	"vxsim/rng"
)

// Params tunes the generated terrain.
type Params struct {
	Seed int64

	// SurfaceScale controls the horizontal frequency of the height-field
	// noise; smaller values produce gentler, longer rolling terrain.
	SurfaceScale float64
	// SurfaceAmplitude is how many rows the terrain surface can rise/fall
	// from its baseline.
	SurfaceAmplitude float64
	// WaterLevel is the row (from the top) below which terrain lower than
	// the surface fills with Water instead of staying air.
	WaterLevel int

	TreeChance int // percent chance per valid surface column
	TreeHeight int
}

// DefaultParams returns a reasonable demo configuration.
func DefaultParams(seed int64) Params {
	return Params{
		Seed:             seed,
		SurfaceScale:     0.05,
		SurfaceAmplitude: 10,
		WaterLevel:       0,
		TreeChance:       8,
		TreeHeight:       4,
	}
}

// Generate builds a deterministic w×h terrain grid under the given
// material ReactivityFunc: a simplex-noise height field carves a rolling
// rock floor topped with dirt and grass, a fixed water level floods low
// ground, and sparse wood/leaf trees grow on dry grass columns. Same seed,
// same (w,h,params) always produce the same grid.
func Generate(w, h int, chunkSize int, reactive grid.ReactivityFunc, p Params) *grid.Grid2D {
	g := grid.NewGrid2D(w, h, chunkSize, reactive)
	noise := opensimplex.New(p.Seed)
	r := rng.New(uint64(p.Seed))

	baseline := h * 3 / 5
	surfaceY := make([]int, w)

	for x := 0; x < w; x++ {
		n := noise.Eval2(float64(x)*p.SurfaceScale, 0)
		offset := int(n * p.SurfaceAmplitude)
		sy := baseline + offset
		sy = rng.Clamp(sy, 1, h-1)
		surfaceY[x] = sy

		for y := sy; y < h; y++ {
			switch {
			case y == sy:
				g.SetUnchecked(x, y, grid.MakeCell(material.Grass, 0))
			case y < sy+3:
				g.SetUnchecked(x, y, grid.MakeCell(material.Dirt, 0))
			default:
				g.SetUnchecked(x, y, grid.MakeCell(material.Rock, 0))
			}
		}
		if p.WaterLevel > 0 {
			floodTo := h - p.WaterLevel
			for y := sy + 1; y < floodTo; y++ {
				if g.Get(x, y).MaterialOf() == material.Dirt {
					g.SetUnchecked(x, y, grid.MakeCell(material.Water, 0))
				}
			}
		}
	}

	for x := 2; x < w-2; x++ {
		sy := surfaceY[x]
		if sy <= p.TreeHeight+1 {
			continue
		}
		if !r.Chance(p.TreeChance) {
			continue
		}
		growTree(g, x, sy-1, p.TreeHeight, r)
	}

	return g
}

// growTree stamps a simple trunk-and-canopy tree: a vertical Wood column
// topped with a small Leaf canopy, grounded at (x,groundY).
func growTree(g *grid.Grid2D, x, groundY, height int, r *rng.Rand) {
	trunkTop := groundY
	for i := 0; i < height; i++ {
		y := groundY - i
		if y < 0 {
			return
		}
		if g.Get(x, y).MaterialOf() != material.Empty {
			return
		}
		g.SetUnchecked(x, y, grid.MakeCell(material.Wood, 0))
		trunkTop = y
	}
	canopyY := trunkTop - 1
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if abs(dx)+abs(dy) > 2 {
				continue
			}
			if !g.InBounds(x+dx, canopyY+dy) {
				continue
			}
			if g.Get(x+dx, canopyY+dy).MaterialOf() != material.Empty {
				continue
			}
			g.SetUnchecked(x+dx, canopyY+dy, grid.MakeCell(material.Leaf, 0))
		}
	}
	if g.InBounds(x, canopyY) && g.Get(x, canopyY).MaterialOf() == material.Empty {
		g.SetUnchecked(x, canopyY, grid.MakeCell(material.Leaf, 0))
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
