package grid

import "testing"

func TestMakeCellRoundTrip(t *testing.T) {
	c := MakeCell(7, 0xAB)
	if c.MaterialOf() != 7 {
		t.Fatalf("MaterialOf = %d, want 7", c.MaterialOf())
	}
	if c.FlagsOf() != 0xAB {
		t.Fatalf("FlagsOf = %x, want ab", c.FlagsOf())
	}
	if Cell(0).MaterialOf() != EmptyMaterial || Cell(0).FlagsOf() != 0 {
		t.Fatalf("zero cell must be empty with no flags")
	}
	if !Cell(0).IsEmpty() {
		t.Fatalf("Cell(0) must be empty")
	}
	if c.IsEmpty() {
		t.Fatalf("non-zero cell must not be empty")
	}
}

func TestGridSetOutOfBoundsIsNoop(t *testing.T) {
	g := NewGrid2D(4, 4, 4, nil)
	g.Set(-1, 0, MakeCell(1, 0))
	g.Set(4, 0, MakeCell(1, 0))
	g.Set(0, -1, MakeCell(1, 0))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if g.Get(x, y) != 0 {
				t.Fatalf("expected grid untouched by OOB writes")
			}
		}
	}
	if g.Get(-1, -1) != 0 {
		t.Fatalf("out-of-bounds read must return empty sentinel")
	}
}

func TestSetMarksDirtyAndActive(t *testing.T) {
	g := NewGrid2D(8, 8, 4, nil)
	g.Set(1, 1, MakeCell(2, 0))
	if !g.IsChunkDirty(0, 0) {
		t.Fatalf("expected chunk (0,0) dirty")
	}
	if !g.IsChunkActive(0, 0) {
		t.Fatalf("expected chunk (0,0) active for reactive material")
	}
}

func TestSetInertDoesNotActivate(t *testing.T) {
	reactive := func(m MaterialID) bool { return m == 1 }
	g := NewGrid2D(8, 8, 4, reactive)
	g.Set(1, 1, MakeCell(2, 0))
	if g.IsChunkActive(0, 0) {
		t.Fatalf("non-reactive material must not activate its chunk")
	}
	if !g.IsChunkDirty(0, 0) {
		t.Fatalf("any write still marks dirty")
	}
}

func TestEdgeWriteActivatesNeighborChunk(t *testing.T) {
	g := NewGrid2D(8, 8, 4, nil)
	// (3,2) is the rightmost column of chunk (0,0); must also activate (1,0).
	g.Set(3, 2, MakeCell(5, 0))
	if !g.IsChunkActive(1, 0) {
		t.Fatalf("expected edge write to activate neighbor chunk (1,0)")
	}
}

func TestPaintRectClipsToBounds(t *testing.T) {
	g := NewGrid2D(4, 4, 4, nil)
	g.PaintRect(-2, -2, 4, 4, MakeCell(9, 0))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if g.Get(x, y).MaterialOf() != 9 {
				t.Fatalf("expected (%d,%d) painted", x, y)
			}
		}
	}
	if g.Get(2, 2) != 0 {
		t.Fatalf("paint should not have reached (2,2)")
	}
}

func TestPaintCircle(t *testing.T) {
	g := NewGrid2D(16, 16, 4, nil)
	g.PaintCircle(8, 8, 2, MakeCell(3, 0))
	if g.Get(8, 8).MaterialOf() != 3 {
		t.Fatalf("center must be painted")
	}
	if g.Get(8, 2).MaterialOf() == 3 {
		t.Fatalf("far point must not be painted")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid2D(4, 4, 4, nil)
	g.Set(0, 0, MakeCell(1, 0))
	c := g.Clone()
	c.Set(1, 1, MakeCell(2, 0))
	if g.Get(1, 1) != 0 {
		t.Fatalf("mutating clone must not affect original")
	}
	if c.Get(0, 0).MaterialOf() != 1 {
		t.Fatalf("clone must carry over original data")
	}
}

func TestVoxelGrid3DBounds(t *testing.T) {
	v := NewVoxelGrid3D(2, 2, 2)
	v.Set(1, 1, 1, MakeCell(4, 0))
	if v.Get(1, 1, 1).MaterialOf() != 4 {
		t.Fatalf("expected set value")
	}
	v.Set(5, 5, 5, MakeCell(4, 0))
	if v.Get(5, 5, 5) != 0 {
		t.Fatalf("out-of-bounds voxel read must be empty")
	}
}
