package render

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"vxsim/grid"
	"vxsim/material"
)

// HeightMode selects how a material's world-space height is derived for
// the isometric compositor.
type HeightMode int

const (
	HeightFlat HeightMode = iota
	HeightUniform
	HeightDensity
	HeightCustom
)

// MaterialHeight computes a material's extrusion height under the given
// mode. defaultHeight is the uniform/density baseline; custom overrides,
// when present for id, win outright under HeightCustom, else density mode
// is the fallback.
func MaterialHeight(mode HeightMode, id grid.MaterialID, defaultHeight float64, custom map[grid.MaterialID]float64) float64 {
	switch mode {
	case HeightFlat:
		return 0
	case HeightUniform:
		return defaultHeight
	case HeightCustom:
		if h, ok := custom[id]; ok {
			return h
		}
		return material.Density(id) / 100 * defaultHeight
	case HeightDensity:
		fallthrough
	default:
		return material.Density(id) / 100 * defaultHeight
	}
}

// IsoLayer is one grid2d layer's contribution to an isometric scene: its
// cells, its z-index (draw/stacking order and part of world-space z), and
// its per-layer pixel height offset.
type IsoLayer struct {
	Grid      *grid.Grid2D
	ZIndex    int
	IsoHeight float64
}

// IsoParams bundles the parametric iso projection's tunables.
type IsoParams struct {
	TileW, TileH  float64
	ZStep         float64
	BaselineZ     float64
	DefaultHeight float64
	HeightMode    HeightMode
	CustomHeights map[grid.MaterialID]float64
	LightDir      mgl64.Vec3
}

// project maps a world cell coordinate plus total z-height to screen space
// using a standard parametric isometric projection.
func project(x, y int, z float64, p IsoParams) (sx, sy float64) {
	sx = float64(x-y) * p.TileW / 2
	sy = float64(x+y)*p.TileH/2 - z*p.ZStep
	return
}

// RenderIsometric draws layers sorted by z-index ascending, each in
// back-to-front iso order (a diagonal sweep: increasing x+y, then x), onto
// a surface of the given pixel dimensions. Non-empty cells get up to three
// shaded faces: a top diamond and, when the material has nonzero height, a
// left and a right wall.
func RenderIsometric(layers []IsoLayer, palette *Palette, screenW, screenH int, p IsoParams) *Surface2D {
	surface := NewSurface2D(screenW, screenH)
	sorted := append([]IsoLayer(nil), layers...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ZIndex < sorted[j].ZIndex })

	ox, oy := screenW/2, screenH/4

	for _, layer := range sorted {
		g := layer.Grid
		order := diagonalOrder(g.W, g.H)
		for _, c := range order {
			x, y := c[0], c[1]
			cell := g.GetUnchecked(x, y)
			m := cell.MaterialOf()
			if m == grid.EmptyMaterial {
				continue
			}
			matHeight := MaterialHeight(p.HeightMode, m, p.DefaultHeight, p.CustomHeights)
			totalZ := p.BaselineZ + float64(layer.ZIndex)*p.DefaultHeight + matHeight + layer.IsoHeight
			sx, sy := project(x, y, totalZ, p)
			sx += float64(ox)
			sy += float64(oy)
			color := palette.Lookup(m)
			drawIsoCell(surface, sx, sy, matHeight, p, color)
		}
	}
	return surface
}

// diagonalOrder returns every (x,y) in a w×h grid sorted back-to-front:
// increasing x+y first (matching the iso projection's depth axis), then x,
// which is equivalent to a diagonal sweep.
func diagonalOrder(w, h int) [][2]int {
	out := make([][2]int, 0, w*h)
	for s := 0; s <= w+h-2; s++ {
		for x := 0; x < w; x++ {
			y := s - x
			if y < 0 || y >= h {
				continue
			}
			out = append(out, [2]int{x, y})
		}
	}
	return out
}

func drawIsoCell(surface *Surface2D, sx, sy, matHeight float64, p IsoParams, base uint32) {
	topShade := 0.9 + 0.1*p.LightDir.Z()
	leftShade := 0.6 + 0.2*p.LightDir.X()
	rightShade := 0.7 + 0.2*p.LightDir.Y()

	hw, hh := p.TileW/2, p.TileH/2
	top := adjustBrightness(base, topShade-1)

	// Top diamond: four vertices around (sx,sy).
	fillPolygon(surface, []point{
		{sx, sy - hh}, {sx + hw, sy}, {sx, sy + hh}, {sx - hw, sy},
	}, top)

	if matHeight <= 0 {
		return
	}
	wallDrop := matHeight * p.ZStep
	left := adjustBrightness(base, leftShade-1)
	right := adjustBrightness(base, rightShade-1)

	// Left wall: parallelogram from the diamond's bottom-left edge,
	// descending wallDrop pixels.
	fillPolygon(surface, []point{
		{sx - hw, sy}, {sx, sy + hh},
		{sx, sy + hh + wallDrop}, {sx - hw, sy + wallDrop},
	}, left)

	// Right wall: parallelogram from the diamond's bottom-right edge.
	fillPolygon(surface, []point{
		{sx, sy + hh}, {sx + hw, sy},
		{sx + hw, sy + wallDrop}, {sx, sy + hh + wallDrop},
	}, right)
}

type point struct{ x, y float64 }

// fillPolygon rasterizes a small convex polygon with a scanline fill; iso
// tiles are a handful of pixels across so this stays cheap.
func fillPolygon(surface *Surface2D, pts []point, color uint32) {
	if len(pts) == 0 {
		return
	}
	minY, maxY := pts[0].y, pts[0].y
	for _, p := range pts {
		if p.y < minY {
			minY = p.y
		}
		if p.y > maxY {
			maxY = p.y
		}
	}
	for y := int(minY); y <= int(maxY)+1; y++ {
		fy := float64(y) + 0.5
		var xs []float64
		n := len(pts)
		for i := 0; i < n; i++ {
			a, b := pts[i], pts[(i+1)%n]
			if (a.y <= fy && b.y > fy) || (b.y <= fy && a.y > fy) {
				t := (fy - a.y) / (b.y - a.y)
				xs = append(xs, a.x+t*(b.x-a.x))
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(xs[i]); x <= int(xs[i+1]); x++ {
				surface.Set(x, y, color)
			}
		}
	}
}
