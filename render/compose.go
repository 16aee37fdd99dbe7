package render

import "vxsim/grid"

// BlendMode names the per-layer compositing mode the direct renderer
// applies when stacking grid layers.
type BlendMode int

const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
)

// GridLayer is everything the direct renderer needs from one paintable
// layer: its cells, its opacity, and its blend mode. It deliberately does
// not reference document.Layer; render only ever sees grid.Grid2D and
// material ids.
type GridLayer struct {
	Grid    *grid.Grid2D
	Visible bool
	Opacity float64
	Blend   BlendMode
}

// DirectRender composites layers bottom-to-top (callers are expected to
// have already sorted by z-index ascending) onto a fresh Surface2D sized
// to the first visible layer's grid. Invisible layers, and cells whose
// material is empty, are skipped entirely.
func DirectRender(layers []GridLayer, palette *Palette) *Surface2D {
	var w, h int
	for _, l := range layers {
		if l.Visible && l.Grid != nil {
			w, h = l.Grid.W, l.Grid.H
			break
		}
	}
	surface := NewSurface2D(w, h)
	for _, l := range layers {
		if !l.Visible || l.Grid == nil {
			continue
		}
		compositeLayer(surface, l, palette)
	}
	return surface
}

func compositeLayer(surface *Surface2D, l GridLayer, palette *Palette) {
	g := l.Grid
	for y := 0; y < g.H && y < surface.H; y++ {
		for x := 0; x < g.W && x < surface.W; x++ {
			cell := g.GetUnchecked(x, y)
			m := cell.MaterialOf()
			if m == grid.EmptyMaterial {
				continue
			}
			src := palette.Lookup(m)
			dst := surface.Get(x, y)
			surface.Set(x, y, BlendPixel(l.Blend, src, dst, l.Opacity))
		}
	}
}

// BlendPixel composites src over dst at the given layer opacity, in the
// mode named by mode. Normal uses generic Porter-Duff "source over";
// multiply/screen/overlay are computed per-channel in 8-bit fixed point
// against the destination before the opacity-weighted source-over blend.
func BlendPixel(mode BlendMode, src, dst uint32, opacity float64) uint32 {
	sr, sg, sb, sa := rgba(src)
	dr, dg, db, da := rgba(dst)

	switch mode {
	case BlendMultiply:
		sr = mulChannel(sr, dr)
		sg = mulChannel(sg, dg)
		sb = mulChannel(sb, db)
	case BlendScreen:
		sr = screenChannel(sr, dr)
		sg = screenChannel(sg, dg)
		sb = screenChannel(sb, db)
	case BlendOverlay:
		sr = overlayChannel(sr, dr)
		sg = overlayChannel(sg, dg)
		sb = overlayChannel(sb, db)
	}

	alpha := opacity
	if alpha > 1 {
		alpha = 1
	}
	if alpha < 0 {
		alpha = 0
	}
	srcA := float64(sa) / 255 * alpha

	outA := srcA + float64(da)/255*(1-srcA)
	var outR, outG, outB uint8
	if outA > 0 {
		outR = blendChannelSourceOver(sr, dr, srcA, float64(da)/255, outA)
		outG = blendChannelSourceOver(sg, dg, srcA, float64(da)/255, outA)
		outB = blendChannelSourceOver(sb, db, srcA, float64(da)/255, outA)
	}
	return packRGBA(outR, outG, outB, uint8(outA*255+0.5))
}

func blendChannelSourceOver(sc, dc uint8, srcA, dstA, outA float64) uint8 {
	v := (float64(sc)/255*srcA + float64(dc)/255*dstA*(1-srcA)) / outA
	return clamp255(v * 255)
}

func mulChannel(s, d uint8) uint8 {
	return uint8((uint16(s) * uint16(d)) / 255)
}

func screenChannel(s, d uint8) uint8 {
	return uint8(255 - (uint16(255-s)*uint16(255-d))/255)
}

func overlayChannel(s, d uint8) uint8 {
	if d < 128 {
		return uint8((2 * uint16(s) * uint16(d)) / 255)
	}
	return uint8(255 - (2*uint16(255-s)*uint16(255-d))/255)
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
