package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"vxsim/grid"
	"vxsim/material"
	"vxsim/rng"
)

// A single visible, fully opaque, normal-blend layer must render exactly
// the palette color of its material at every non-empty cell.
func TestDirectRenderPaletteIdentity(t *testing.T) {
	g := grid.NewGrid2D(4, 4, 4, nil)
	g.Set(1, 1, grid.MakeCell(material.Sand, 0))
	g.Set(2, 2, grid.MakeCell(material.Water, 0))

	palette := NewPalette(0, map[grid.MaterialID]uint32{
		material.Sand:  0xFF0000FF,
		material.Water: 0xFF00FF00,
	})

	surface := DirectRender([]GridLayer{{Grid: g, Visible: true, Opacity: 1, Blend: BlendNormal}}, palette)

	if got := surface.Get(1, 1); got != palette.Lookup(material.Sand) {
		t.Fatalf("expected sand cell == palette color, got %#x want %#x", got, palette.Lookup(material.Sand))
	}
	if got := surface.Get(2, 2); got != palette.Lookup(material.Water) {
		t.Fatalf("expected water cell == palette color, got %#x want %#x", got, palette.Lookup(material.Water))
	}
	if got := surface.Get(0, 0); got != 0 {
		t.Fatalf("expected empty cell to stay transparent, got %#x", got)
	}
}

func TestBlendPixelNormalSourceOver(t *testing.T) {
	src := packRGBA(255, 0, 0, 255)
	dst := packRGBA(0, 255, 0, 255)
	out := BlendPixel(BlendNormal, src, dst, 1.0)
	r, g, b, a := rgba(out)
	if r != 255 || g != 0 || b != 0 || a != 255 {
		t.Fatalf("expected fully opaque src to fully cover dst, got r=%d g=%d b=%d a=%d", r, g, b, a)
	}
}

func TestBlendPixelRespectsOpacity(t *testing.T) {
	src := packRGBA(255, 0, 0, 255)
	dst := packRGBA(0, 0, 0, 255)
	out := BlendPixel(BlendNormal, src, dst, 0.5)
	r, _, _, _ := rgba(out)
	if r < 100 || r > 155 {
		t.Fatalf("expected ~50%% blend of red over black, got r=%d", r)
	}
}

func TestSurfaceHeightCacheFindsTopmostSolid(t *testing.T) {
	g := grid.NewGrid2D(4, 8, 4, nil)
	g.Set(0, 5, grid.MakeCell(material.Rock, 0))
	g.Set(0, 3, grid.MakeCell(material.Smoke, 0)) // gas, must be skipped

	cache := NewSurfaceHeightCache(4, 5)
	cache.RefreshIfDue(0, g)
	if h := cache.HeightAt(0); h != 5 {
		t.Fatalf("expected topmost solid at y=5, got %d", h)
	}
	if h := cache.HeightAt(1); h != -1 {
		t.Fatalf("expected empty column to report -1, got %d", h)
	}
}

func TestDirectRenderWithDepthDarkensBelowSurface(t *testing.T) {
	g := grid.NewGrid2D(2, 10, 4, nil)
	for y := 0; y < 10; y++ {
		g.Set(0, y, grid.MakeCell(material.Rock, 0))
	}
	palette := NewPalette(0, map[grid.MaterialID]uint32{material.Rock: 0xFFFFFFFF})
	cache := NewSurfaceHeightCache(2, 5)
	cache.RefreshIfDue(0, g)

	shade := DefaultDepthShader(cache, g, rng.New(1))
	shaded := DirectRenderWithDepth([]GridLayer{{Grid: g, Visible: true, Opacity: 1, Blend: BlendNormal}}, palette, shade)
	if shaded.Get(0, 0) == 0 {
		t.Fatalf("expected surface row to render something")
	}
	if r, _, _, _ := rgba(shaded.Get(0, 9)); r >= 255 {
		t.Fatalf("expected the cell 9 rows below the surface to be darkened, got r=%d", r)
	}
}

func TestCullAndSortVoxelsOrdersByZThenSum(t *testing.T) {
	v := grid.NewVoxelGrid3D(3, 3, 3)
	v.Set(0, 0, 0, grid.MakeCell(material.Rock, 0))
	v.Set(1, 0, 0, grid.MakeCell(material.Rock, 0))
	v.Set(0, 0, 1, grid.MakeCell(material.Rock, 0))

	visible := CullAndSortVoxels(v)
	if len(visible) != 3 {
		t.Fatalf("expected all 3 voxels visible (no neighbor fully occludes any), got %d", len(visible))
	}
	if visible[0].Z > visible[len(visible)-1].Z {
		t.Fatalf("expected ascending z order")
	}
}

func TestCullAndSortVoxelsCullsFullyBuriedVoxel(t *testing.T) {
	v := grid.NewVoxelGrid3D(2, 2, 2)
	v.Set(0, 0, 0, grid.MakeCell(material.Rock, 0))
	v.Set(1, 0, 0, grid.MakeCell(material.Rock, 0))
	v.Set(0, 1, 0, grid.MakeCell(material.Rock, 0))
	v.Set(0, 0, 1, grid.MakeCell(material.Rock, 0))

	visible := CullAndSortVoxels(v)
	for _, vv := range visible {
		if vv.X == 0 && vv.Y == 0 && vv.Z == 0 {
			t.Fatalf("expected voxel (0,0,0) to be culled: all three +faces occupied")
		}
	}
}

func TestMaterialHeightModes(t *testing.T) {
	if h := MaterialHeight(HeightFlat, material.Sand, 10, nil); h != 0 {
		t.Fatalf("flat mode must always be 0, got %v", h)
	}
	if h := MaterialHeight(HeightUniform, material.Sand, 10, nil); h != 10 {
		t.Fatalf("uniform mode must equal defaultHeight, got %v", h)
	}
	customHeights := map[grid.MaterialID]float64{material.Sand: 4}
	if h := MaterialHeight(HeightCustom, material.Sand, 10, customHeights); h != 4 {
		t.Fatalf("custom override must win, got %v", h)
	}
	if h := MaterialHeight(HeightCustom, material.Water, 10, customHeights); h <= 0 {
		t.Fatalf("custom mode without an override must fall back to density, got %v", h)
	}
}

func TestRenderIsometricProducesNonEmptySurface(t *testing.T) {
	g := grid.NewGrid2D(4, 4, 4, nil)
	g.Set(1, 1, grid.MakeCell(material.Rock, 0))
	palette := NewPalette(0, map[grid.MaterialID]uint32{material.Rock: 0xFFAAAAAA})

	surface := RenderIsometric([]IsoLayer{{Grid: g, ZIndex: 0}}, palette, 64, 64, IsoParams{
		TileW: 16, TileH: 8, ZStep: 4, DefaultHeight: 8,
		HeightMode: HeightUniform,
		LightDir:   mgl64.Vec3{0, 0, 1},
	})

	nonEmpty := 0
	for _, p := range surface.Pixels {
		if p != 0 {
			nonEmpty++
		}
	}
	if nonEmpty == 0 {
		t.Fatalf("expected isometric render to paint at least one pixel")
	}
}
