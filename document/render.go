package document

import "vxsim/render"

// renderBlendMode maps a layer's blend mode tag onto the renderer's
// numeric mode.
func renderBlendMode(b BlendMode) render.BlendMode {
	switch b {
	case BlendMultiply:
		return render.BlendMultiply
	case BlendScreen:
		return render.BlendScreen
	case BlendOverlay:
		return render.BlendOverlay
	default:
		return render.BlendNormal
	}
}

// RenderToSurface composites the document's visible grid layers, sorted by
// z-index ascending, into a fresh Surface2D via the direct renderer. With
// a single visible grid layer at opacity 1 and normal blend, every
// non-empty cell's pixel is exactly the palette color of its material.
func RenderToSurface(doc *EditorDocument, palette *render.Palette) *render.Surface2D {
	var visible []*Layer
	for _, l := range doc.Layers {
		if l.Kind == LayerGrid2D && l.Visible {
			visible = append(visible, l)
		}
	}
	sortLayersByZAsc(visible)

	layers := make([]render.GridLayer, 0, len(visible))
	for _, l := range visible {
		layers = append(layers, render.GridLayer{
			Grid:    l.Grid,
			Visible: true,
			Opacity: l.Opacity,
			Blend:   renderBlendMode(l.Blend),
		})
	}
	return render.DirectRender(layers, palette)
}

// IsoLayers adapts the document's visible grid layers for the isometric
// compositor, which does its own z-index sort.
func IsoLayers(doc *EditorDocument) []render.IsoLayer {
	var out []render.IsoLayer
	for _, l := range doc.Layers {
		if l.Kind != LayerGrid2D || !l.Visible {
			continue
		}
		out = append(out, render.IsoLayer{
			Grid:      l.Grid,
			ZIndex:    l.ZIndex,
			IsoHeight: l.IsoHeight,
		})
	}
	return out
}
