package document

import (
	"log/slog"

	"vxsim/grid"
)

// FloatingSession is the detached payload of a lifted selection. At most
// one lives on a document at a time; it is created by
// BeginFloatFromSelection/PasteClipboard and destroyed by CommitFloat or
// CancelFloat.
type FloatingSession struct {
	W, H int
	Data []grid.Cell
	Mask []byte

	OriginX, OriginY int

	// SourceIndices holds the flat layer indices the payload was lifted
	// from (selection-sourced sessions only); nil for clipboard pastes,
	// which have no source to clear on commit.
	SourceIndices []int

	PreFloatSelection Selection

	LayerID   string
	LayerKind LayerKind
	ActiveZ   int
}

func (f *FloatingSession) at(lx, ly int) bool {
	if lx < 0 || ly < 0 || lx >= f.W || ly >= f.H {
		return false
	}
	if f.Mask == nil {
		return true
	}
	return f.Mask[ly*f.W+lx] != 0
}

// rectSelection returns the document-level selection tracking the
// session's current bounding box and mask, so the marching-ants UI follows
// a live session.
func (f *FloatingSession) rectSelection() Selection {
	return Selection{X: f.OriginX, Y: f.OriginY, W: f.W, H: f.H, Mask: f.Mask}
}

// BeginFloatFromSelection lifts the cells covered by doc.Selection out of
// the active layer into a new FloatingSession. Returns doc unchanged if
// the active layer isn't paintable, is locked, or the lift covers no live
// cells.
func BeginFloatFromSelection(doc *EditorDocument) *EditorDocument {
	layer := doc.ActiveLayer()
	if layer == nil || !layer.Paintable() {
		return doc
	}
	sel := doc.Selection
	w, h := sel.W, sel.H
	if w <= 0 || h <= 0 {
		w, h = doc.Width, doc.Height
		sel = rect(0, 0, w, h)
	}

	data := make([]grid.Cell, w*h)
	mask := make([]byte, w*h)
	var sourceIdx []int
	liveCount := 0

	var sliceOffset int
	switch layer.Kind {
	case LayerGrid2D:
		sliceOffset = 0
	case LayerVoxel3D:
		sliceOffset, _ = layer.Voxel.SliceZ(layer.ActiveZ)
	default:
		return doc
	}

	stride := doc.Width
	if layer.Kind == LayerGrid2D {
		stride = layer.Grid.W
	} else {
		stride = layer.Voxel.W
	}

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
			sourceIdx = append(sourceIdx, idx)
			if !c.IsEmpty() {
				liveCount++
			}
		}
	}
	if liveCount == 0 {
		return doc
	}

	session := &FloatingSession{
		W: w, H: h,
		Data:              data,
		Mask:              mask,
		OriginX:           sel.X,
		OriginY:           sel.Y,
		SourceIndices:     sourceIdx,
		PreFloatSelection: doc.Selection.Clone(),
		LayerID:           layer.ID,
		LayerKind:         layer.Kind,
		ActiveZ:           layer.ActiveZ,
	}
	out := doc.shallowCopy()
	out.Floating = session
	out.Selection = session.rectSelection()
	return out
}

// ClipboardPayload is the in-process clipboard shape.
type ClipboardPayload struct {
	W, H int
	Data []grid.Cell
	Mask []byte
}

// PasteClipboard begins a floating session from a clipboard payload at
// (x,y) in layer coordinates, targeting the active layer.
func PasteClipboard(doc *EditorDocument, payload ClipboardPayload, x, y int) *EditorDocument {
	layer := doc.ActiveLayer()
	if layer == nil || !layer.Paintable() {
		return doc
	}
	session := &FloatingSession{
		W: payload.W, H: payload.H,
		Data:              append([]grid.Cell(nil), payload.Data...),
		Mask:              append([]byte(nil), payload.Mask...),
		OriginX:           x,
		OriginY:           y,
		PreFloatSelection: doc.Selection.Clone(),
		LayerID:           layer.ID,
		LayerKind:         layer.Kind,
		ActiveZ:           layer.ActiveZ,
	}
	out := doc.shallowCopy()
	out.Floating = session
	out.Selection = session.rectSelection()
	return out
}

// FloatMove translates a live session by (dx,dy). No-op if no session is
// live.
func FloatMove(doc *EditorDocument, dx, dy int) *EditorDocument {
	if doc.Floating == nil {
		return doc
	}
	out := doc.shallowCopy()
	f := *doc.Floating
	f.OriginX += dx
	f.OriginY += dy
	out.Floating = &f
	out.Selection = f.rectSelection()
	return out
}

// FloatRotate re-rasters the session's payload and mask by the given
// degrees (90/180/270), repositioning the origin so the bounding box stays
// centered on its prior center. Four 90s, or two 180s, restore the
// payload exactly.
func FloatRotate(doc *EditorDocument, degrees int) *EditorDocument {
	if doc.Floating == nil {
		return doc
	}
	f := *doc.Floating
	switch ((degrees % 360) + 360) % 360 {
	case 90:
		f.Data, f.Mask, f.W, f.H = rotate90(f.Data, f.Mask, f.W, f.H)
	case 180:
		f.Data, f.Mask, f.W, f.H = rotate90(f.Data, f.Mask, f.W, f.H)
		f.Data, f.Mask, f.W, f.H = rotate90(f.Data, f.Mask, f.W, f.H)
	case 270:
		f.Data, f.Mask, f.W, f.H = rotate90(f.Data, f.Mask, f.W, f.H)
		f.Data, f.Mask, f.W, f.H = rotate90(f.Data, f.Mask, f.W, f.H)
		f.Data, f.Mask, f.W, f.H = rotate90(f.Data, f.Mask, f.W, f.H)
	default:
		return doc
	}
	cx := doc.Floating.OriginX + doc.Floating.W/2
	cy := doc.Floating.OriginY + doc.Floating.H/2
	f.OriginX = cx - f.W/2
	f.OriginY = cy - f.H/2

	out := doc.shallowCopy()
	out.Floating = &f
	out.Selection = f.rectSelection()
	return out
}

// rotate90 rotates a w×h row-major buffer 90 degrees clockwise, returning
// the new buffers and dimensions (h×w). A nil mask (full-rectangle payload)
// stays nil.
func rotate90(data []grid.Cell, mask []byte, w, h int) ([]grid.Cell, []byte, int, int) {
	nd := make([]grid.Cell, w*h)
	var nm []byte
	if mask != nil {
		nm = make([]byte, w*h)
	}
	nw, nh := h, w
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// (x,y) in source -> (h-1-y, x) in the rotated w'=h,h'=w buffer.
			nx := h - 1 - y
			ny := x
			ndi := ny*nw + nx
			sdi := y*w + x
			nd[ndi] = data[sdi]
			if mask != nil {
				nm[ndi] = mask[sdi]
			}
		}
	}
	return nd, nm, nw, nh
}

// FloatFlip mirrors the session's payload along "h" (horizontal, left-right)
// or "v" (vertical, top-bottom) axis in place.
func FloatFlip(doc *EditorDocument, axis string) *EditorDocument {
	if doc.Floating == nil {
		return doc
	}
	f := *doc.Floating
	w, h := f.W, f.H
	nd := make([]grid.Cell, w*h)
	var nm []byte
	if f.Mask != nil {
		nm = make([]byte, w*h)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sx, sy int
			if axis == "h" {
				sx, sy = w-1-x, y
			} else {
				sx, sy = x, h-1-y
			}
			di := y*w + x
			si := sy*w + sx
			nd[di] = f.Data[si]
			if f.Mask != nil {
				nm[di] = f.Mask[si]
			}
		}
	}
	f.Data, f.Mask = nd, nm
	out := doc.shallowCopy()
	out.Floating = &f
	out.Selection = f.rectSelection()
	return out
}

// CancelFloat restores the pre-float selection and drops the session
// without touching the layer.
func CancelFloat(doc *EditorDocument) *EditorDocument {
	if doc.Floating == nil {
		return doc
	}
	out := doc.shallowCopy()
	out.Selection = doc.Floating.PreFloatSelection.Clone()
	out.Floating = nil
	return out
}

// CommitFloat folds a live session into its owning layer via a Transform
// command, pushed onto history, and drops the session. reason records
// which editor event forced the commit; it does not alter the fold
// itself. If the owning layer was deleted since the session began, the
// session is silently discarded and the selection restored, with no
// history entry.
func CommitFloat(h History, doc *EditorDocument, reason CommitReason) (History, *EditorDocument) {
	f := doc.Floating
	if f == nil {
		return h, doc
	}
	layer := doc.LayerByID(f.LayerID)
	if layer == nil {
		out := doc.shallowCopy()
		out.Selection = f.PreFloatSelection.Clone()
		out.Floating = nil
		return h, out
	}

	var stride, sliceOffset int
	switch layer.Kind {
	case LayerGrid2D:
		stride = layer.Grid.W
	case LayerVoxel3D:
		stride = layer.Voxel.W
		sliceOffset, _ = layer.Voxel.SliceZ(f.ActiveZ)
	default:
		out := doc.shallowCopy()
		out.Selection = f.PreFloatSelection.Clone()
		out.Floating = nil
		return h, out
	}

	var edits []PixelEdit

	// (a) clear source indices (selection-sourced sessions only), unless
	// the destination overlaps and will overwrite the same index. The
	// destination overrides the source-clear, so a move that keeps a cell
	// in place preserves content rather than clearing then losing it.
	destIdxOf := func(lx, ly int) (int, bool) {
		gx, gy := f.OriginX+lx, f.OriginY+ly
		if gx < 0 || gy < 0 {
			return 0, false
		}
		idx := sliceOffset + gy*stride + gx
		if idx < 0 || idx >= layer.CellLen() {
			return 0, false
		}
		return idx, true
	}

	destSet := make(map[int]bool, len(f.SourceIndices))
	for ly := 0; ly < f.H; ly++ {
		for lx := 0; lx < f.W; lx++ {
			if !f.at(lx, ly) {
				continue
			}
			if idx, ok := destIdxOf(lx, ly); ok {
				destSet[idx] = true
			}
		}
	}
	for _, idx := range f.SourceIndices {
		if destSet[idx] {
			continue
		}
		old := layer.CellAt(idx)
		if old.IsEmpty() {
			continue
		}
		edits = append(edits, PixelEdit{Index: idx, OldValue: old, NewValue: 0})
	}

	// (b) write the payload at the destination.
	for ly := 0; ly < f.H; ly++ {
		for lx := 0; lx < f.W; lx++ {
			if !f.at(lx, ly) {
				continue
			}
			idx, ok := destIdxOf(lx, ly)
			if !ok {
				continue
			}
			newVal := f.Data[ly*f.W+lx]
			old := layer.CellAt(idx)
			edits = append(edits, PixelEdit{Index: idx, OldValue: old, NewValue: newVal})
		}
	}

	after := f.rectSelection()
	slog.Debug("float commit", "reason", reason, "layer", f.LayerID, "edits", len(edits))
	cmd := NewTransformCommand(PaintData{LayerID: f.LayerID, Pixels: edits}, &f.PreFloatSelection, &after)
	h2, doc2 := ExecuteCommand(h, doc, cmd)
	out := doc2.shallowCopy()
	out.Floating = nil
	return h2, out
}
