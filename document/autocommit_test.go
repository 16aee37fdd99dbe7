package document

import (
	"testing"

	"vxsim/grid"
	"vxsim/render"
)

func TestAutoCommitWithoutSessionIsNoop(t *testing.T) {
	doc, h := newTestDoc(4, 4)
	h2, doc2 := AutoCommit(h, doc, CommitSave)
	if doc2 != doc || len(h2.Past) != 0 {
		t.Fatalf("expected auto-commit with no live session to change nothing")
	}
}

func TestUndoCommitsLiveSessionFirst(t *testing.T) {
	doc, h := newTestDoc(4, 4)
	layer := doc.ActiveLayer()
	layer.SetCellAt(1*4+1, grid.MakeCell(6, 0))

	doc.Selection = rect(1, 1, 1, 1)
	doc = BeginFloatFromSelection(doc)
	doc = FloatMove(doc, 1, 1)

	h, doc = UndoCommitted(h, doc)
	if doc.Floating != nil {
		t.Fatalf("expected the session committed before undoing")
	}
	layer = doc.LayerByID(layer.ID)
	if layer.CellAt(1*4+1).MaterialOf() != 6 {
		t.Fatalf("expected undo to reverse the committed move")
	}
	if layer.CellAt(2*4+2).MaterialOf() != 0 {
		t.Fatalf("expected the move destination cleared by the undo")
	}
	if len(h.Future) != 1 {
		t.Fatalf("expected the committed Transform on the future stack, got %d", len(h.Future))
	}
}

func TestCopyCutPasteRoundTrip(t *testing.T) {
	doc, h := newTestDoc(4, 4)
	layer := doc.ActiveLayer()
	layer.SetCellAt(1*4+1, grid.MakeCell(9, 0))
	doc.Selection = rect(1, 1, 1, 1)

	payload, ok := CopySelection(doc)
	if !ok || payload.W != 1 || payload.H != 1 || payload.Data[0].MaterialOf() != 9 {
		t.Fatalf("expected copy to capture the selected cell, got ok=%v payload=%+v", ok, payload)
	}
	if doc.Floating != nil {
		t.Fatalf("copy must not start a session")
	}

	payload, cut, ok := CutSelection(doc)
	if !ok || cut.Floating == nil {
		t.Fatalf("expected cut to start a live session")
	}
	cut = CancelFloat(cut)
	if cut.Floating != nil {
		t.Fatalf("expected cancel to drop the session")
	}

	doc = PasteClipboard(doc, payload, 2, 2)
	if doc.Floating == nil || doc.Floating.OriginX != 2 || doc.Floating.OriginY != 2 {
		t.Fatalf("expected paste session at (2,2)")
	}
	if doc.Floating.SourceIndices != nil {
		t.Fatalf("paste sessions have no source indices to clear")
	}

	h, doc = CommitFloat(h, doc, CommitEnter)
	layer = doc.LayerByID(layer.ID)
	if layer.CellAt(2*4+2).MaterialOf() != 9 {
		t.Fatalf("expected the pasted cell written at (2,2)")
	}
	if layer.CellAt(1*4+1).MaterialOf() != 9 {
		t.Fatalf("expected the copy source untouched by a paste commit")
	}
	if len(h.Past) != 1 {
		t.Fatalf("expected one Transform on history")
	}
}

func TestCopyEmptySelectionFails(t *testing.T) {
	doc, _ := newTestDoc(4, 4)
	doc.Selection = rect(0, 0, 2, 2)
	if _, ok := CopySelection(doc); ok {
		t.Fatalf("expected copy of all-empty cells to fail")
	}
}

// With one visible grid layer at opacity 1 and normal blend, every
// non-empty cell renders as exactly its palette color.
func TestRenderToSurfacePaletteIdentity(t *testing.T) {
	doc, _ := newTestDoc(4, 4)
	layer := doc.ActiveLayer()
	layer.SetCellAt(0, grid.MakeCell(1, 0))
	layer.SetCellAt(5, grid.MakeCell(2, 0))

	palette := render.NewPalette(0, map[grid.MaterialID]uint32{
		1: 0xFF0000FF,
		2: 0xFF00FF00,
	})
	surface := RenderToSurface(doc, palette)
	if surface.W != 4 || surface.H != 4 {
		t.Fatalf("expected a 4x4 surface, got %dx%d", surface.W, surface.H)
	}
	if got := surface.Get(0, 0); got != 0xFF0000FF {
		t.Fatalf("expected palette color at (0,0), got %08x", got)
	}
	if got := surface.Get(1, 1); got != 0xFF00FF00 {
		t.Fatalf("expected palette color at (1,1), got %08x", got)
	}
	if got := surface.Get(3, 3); got != 0 {
		t.Fatalf("expected empty cell left as background, got %08x", got)
	}
}

func TestRenderToSurfaceSkipsHiddenLayers(t *testing.T) {
	doc, h := newTestDoc(4, 4)
	layer := doc.ActiveLayer()
	layer.SetCellAt(0, grid.MakeCell(1, 0))

	doc = ExecuteOrPanic(h, doc, NewToggleVisibilityCommand(layer.ID))
	palette := render.NewPalette(0, map[grid.MaterialID]uint32{1: 0xFF0000FF})
	surface := RenderToSurface(doc, palette)
	if surface.W != 0 || surface.H != 0 {
		t.Fatalf("expected no visible layer to yield an empty surface")
	}
}
