package document

import "vxsim/grid"

// CommitReason names why a live floating session is being committed. The
// reasons mirror the editor events that must fold a session into its layer
// before proceeding, so the undo stack never contains a half-floating
// state.
type CommitReason string

const (
	CommitEnter        CommitReason = "enter"
	CommitToolSwitch   CommitReason = "tool-switch"
	CommitOutsideClick CommitReason = "outside-click"
	CommitSave         CommitReason = "save"
	CommitExport       CommitReason = "export"
	CommitViewChange   CommitReason = "view-change"
	CommitLayerChange  CommitReason = "layer-change"
	CommitUndoRedo     CommitReason = "undo-redo"
)

// AutoCommit commits any live floating session for the given reason and
// returns the resulting history and document. With no session live it is
// a no-op, so drivers can call it unconditionally before save, export,
// tool switches and the rest.
func AutoCommit(h History, doc *EditorDocument, reason CommitReason) (History, *EditorDocument) {
	if doc.Floating == nil {
		return h, doc
	}
	return CommitFloat(h, doc, reason)
}

// UndoCommitted commits any live session first, then undoes. The commit's
// own Transform command lands on the past stack before the undo pops, so
// undoing right after a float commit reverses the commit itself.
func UndoCommitted(h History, doc *EditorDocument) (History, *EditorDocument) {
	h, doc = AutoCommit(h, doc, CommitUndoRedo)
	return Undo(h, doc)
}

// RedoCommitted commits any live session first, then redoes. Committing
// clears the future stack (it executes a command), so a redo with a live
// session is effectively "commit, then nothing" — the same behavior a
// fresh execute has.
func RedoCommitted(h History, doc *EditorDocument) (History, *EditorDocument) {
	h, doc = AutoCommit(h, doc, CommitUndoRedo)
	return Redo(h, doc)
}

// CopySelection captures the active layer's cells under the current
// selection as a clipboard payload, without disturbing the layer or the
// selection. Returns false when the selection is empty, the active layer
// carries no cell data, or nothing live is covered.
func CopySelection(doc *EditorDocument) (ClipboardPayload, bool) {
	layer := doc.ActiveLayer()
	if layer == nil || (layer.Kind != LayerGrid2D && layer.Kind != LayerVoxel3D) {
		return ClipboardPayload{}, false
	}
	sel := doc.Selection
	if sel.Empty() {
		return ClipboardPayload{}, false
	}

	var stride, sliceOffset int
	switch layer.Kind {
	case LayerGrid2D:
		stride = layer.Grid.W
	case LayerVoxel3D:
		stride = layer.Voxel.W
		sliceOffset, _ = layer.Voxel.SliceZ(layer.ActiveZ)
	}

	w, h := sel.W, sel.H
	data := make([]grid.Cell, w*h)
	mask := make([]byte, w*h)
	live := 0
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			if !sel.At(lx, ly) {
				continue
			}
			gx, gy := sel.X+lx, sel.Y+ly
			if gx < 0 || gy < 0 {
				continue
			}
			idx := sliceOffset + gy*stride + gx
			if idx < 0 || idx >= layer.CellLen() {
				continue
			}
			c := layer.CellAt(idx)
			li := ly*w + lx
			data[li] = c
			mask[li] = 1
			if !c.IsEmpty() {
				live++
			}
		}
	}
	if live == 0 {
		return ClipboardPayload{}, false
	}
	return ClipboardPayload{W: w, H: h, Data: data, Mask: mask}, true
}

// CutSelection is copy followed by begin-from-selection: the payload goes
// to the caller's clipboard and the same cells lift into a live floating
// session, so the visual cut happens only when the session moves or the
// user pastes elsewhere. Returns doc unchanged (and ok=false) when the
// copy or the lift fails.
func CutSelection(doc *EditorDocument) (ClipboardPayload, *EditorDocument, bool) {
	payload, ok := CopySelection(doc)
	if !ok {
		return ClipboardPayload{}, doc, false
	}
	out := BeginFloatFromSelection(doc)
	if out == doc {
		return ClipboardPayload{}, doc, false
	}
	return payload, out, true
}
