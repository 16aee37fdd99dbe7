package render

import (
	"vxsim/grid"
	"vxsim/material"
	"vxsim/rng"
)

// DepthShaderFunc is the optional per-cell shading hook: given a
// material, its coordinate, the base palette color and the raw cell, it
// returns the color actually written to the surface.
type DepthShaderFunc func(m grid.MaterialID, x, y int, base uint32, cell grid.Cell) uint32

// SurfaceHeightCache tracks, per column, the y of the topmost non-empty,
// non-gas, non-fire cell, refreshed every RefreshEvery frames (default 5)
// rather than every frame to keep the shading pass cheap.
type SurfaceHeightCache struct {
	RefreshEvery int
	lastFrame    int
	heights      []int // per-column y of topmost solid surface, or -1
}

// NewSurfaceHeightCache creates a cache sized to w columns, refreshed
// every K frames (K<=0 defaults to 5).
func NewSurfaceHeightCache(w int, refreshEvery int) *SurfaceHeightCache {
	if refreshEvery <= 0 {
		refreshEvery = 5
	}
	return &SurfaceHeightCache{RefreshEvery: refreshEvery, heights: make([]int, w)}
}

// RefreshIfDue recomputes the cache against g if frame is due (frame==0 or
// frame-lastFrame>=RefreshEvery), then stamps lastFrame.
func (c *SurfaceHeightCache) RefreshIfDue(frame int, g *grid.Grid2D) {
	if frame != 0 && frame-c.lastFrame < c.RefreshEvery {
		return
	}
	c.lastFrame = frame
	if len(c.heights) != g.W {
		c.heights = make([]int, g.W)
	}
	for x := 0; x < g.W; x++ {
		top := -1
		for y := 0; y < g.H; y++ {
			m := g.GetUnchecked(x, y).MaterialOf()
			if m == material.Empty || material.IsGas(m) || m == material.Fire {
				continue
			}
			top = y
			break
		}
		c.heights[x] = top
	}
}

// HeightAt returns the cached topmost-surface row for column x, or -1 if
// the column has no surface (or x is out of range).
func (c *SurfaceHeightCache) HeightAt(x int) int {
	if x < 0 || x >= len(c.heights) {
		return -1
	}
	return c.heights[x]
}

// DefaultDepthShader builds the standard depth shader: it darkens cells in
// proportion to depth below the cached column surface (capped at 50%
// darkening at 60 cells), adds a small per-pixel dithered noise (+/-5%),
// gives the surface row itself a small brightness boost, and applies a
// mild independent depth attenuation to water based on distance below its
// own surface (the run of contiguous water cells directly above it; any
// non-water cell, empty included, ends the run).
func DefaultDepthShader(cache *SurfaceHeightCache, g *grid.Grid2D, r *rng.Rand) DepthShaderFunc {
	return func(m grid.MaterialID, x, y int, base uint32, cell grid.Cell) uint32 {
		surfaceY := cache.HeightAt(x)
		if surfaceY < 0 {
			return base
		}
		depth := y - surfaceY
		if depth < 0 {
			depth = 0
		}

		darken := rng.ClampF(float64(depth)/120.0, 0, 0.5)
		if depth == 0 {
			return boostBrightness(base, 0.06)
		}

		out := darkenColor(base, darken)
		noise := (r.Float64()*2 - 1) * 0.05
		out = adjustBrightness(out, noise)

		if m == material.Water {
			waterDepth := 0
			for yy := y - 1; yy >= 0; yy-- {
				nm := g.GetUnchecked(x, yy).MaterialOf()
				if nm != material.Water {
					break
				}
				waterDepth++
			}
			waterDarken := rng.ClampF(float64(waterDepth)/40.0, 0, 0.35)
			out = darkenColor(out, waterDarken)
		}
		return out
	}
}

func darkenColor(c uint32, amount float64) uint32 {
	return adjustBrightness(c, -amount)
}

func boostBrightness(c uint32, amount float64) uint32 {
	return adjustBrightness(c, amount)
}

// adjustBrightness scales each RGB channel by (1+amount), clamped to
// [0,255]; alpha passes through unchanged.
func adjustBrightness(c uint32, amount float64) uint32 {
	r, g, b, a := rgba(c)
	scale := 1 + amount
	return packRGBA(
		clamp255(float64(r)*scale),
		clamp255(float64(g)*scale),
		clamp255(float64(b)*scale),
		a,
	)
}

// DirectRenderWithDepth composites layers like DirectRender, then applies
// shade to every non-empty cell of the topmost visible grid layer (the one
// the depth shader's height cache was built against).
func DirectRenderWithDepth(layers []GridLayer, palette *Palette, shade DepthShaderFunc) *Surface2D {
	surface := DirectRender(layers, palette)
	if shade == nil {
		return surface
	}
	var top *GridLayer
	for i := len(layers) - 1; i >= 0; i-- {
		if layers[i].Visible && layers[i].Grid != nil {
			top = &layers[i]
			break
		}
	}
	if top == nil {
		return surface
	}
	g := top.Grid
	for y := 0; y < g.H && y < surface.H; y++ {
		for x := 0; x < g.W && x < surface.W; x++ {
			cell := g.GetUnchecked(x, y)
			m := cell.MaterialOf()
			if m == grid.EmptyMaterial {
				continue
			}
			base := surface.Get(x, y)
			surface.Set(x, y, shade(m, x, y, base, cell))
		}
	}
	return surface
}
