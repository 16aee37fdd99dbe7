package document

import "vxsim/grid"

// PixelEdit is one cell's before/after value within a PaintData.
type PixelEdit struct {
	Index    int
	OldValue grid.Cell
	NewValue grid.Cell
}

// PaintData is the shared payload for Paint, Erase, Fill and Paste:
// execute applies NewValue, undo applies OldValue, both against the same
// target layer's cell array.
type PaintData struct {
	LayerID string
	Pixels  []PixelEdit
}

// paintCommand's kind field distinguishes Paint/Erase/Fill/Paste only for
// Name(); all four
// share identical execute/undo semantics over a PaintData.
type paintCommand struct {
	alwaysExecutable
	kind string
	data PaintData
}

// NewPaintCommand, NewEraseCommand, NewFillCommand and NewPasteCommand
// all build the same command shape with a different Name() tag; the four
// differ only in which tool produced the payload.
func NewPaintCommand(data PaintData) Command { return &paintCommand{kind: "paint", data: data} }
func NewEraseCommand(data PaintData) Command { return &paintCommand{kind: "erase", data: data} }
func NewFillCommand(data PaintData) Command  { return &paintCommand{kind: "fill", data: data} }
func NewPasteCommand(data PaintData) Command { return &paintCommand{kind: "paste", data: data} }

func (c *paintCommand) Name() string { return c.kind }

func (c *paintCommand) CanExecute(doc *EditorDocument) bool {
	return doc.LayerByID(c.data.LayerID) != nil
}

func (c *paintCommand) Execute(doc *EditorDocument) *EditorDocument {
	return applyPaintData(doc, c.data, false)
}

func (c *paintCommand) Undo(doc *EditorDocument) *EditorDocument {
	return applyPaintData(doc, c.data, true)
}

// applyPaintData writes OldValue (undo) or NewValue (execute) at each
// pixel's index into the target layer, via a fresh backing array so the
// layer's identity changes and downstream change-detection can see it.
// A missing layer id is a silent no-op that returns doc unchanged.
func applyPaintData(doc *EditorDocument, data PaintData, undo bool) *EditorDocument {
	idx := doc.indexOfLayer(data.LayerID)
	if idx < 0 {
		return doc
	}
	layer := doc.Layers[idx].Clone()
	var cells []grid.Cell
	switch layer.Kind {
	case LayerGrid2D:
		cells = layer.Grid.Cells()
	case LayerVoxel3D:
		cells = layer.Voxel.Cells()
	default:
		return doc
	}
	for _, px := range data.Pixels {
		if undo {
			cells[px.Index] = px.OldValue
		} else {
			cells[px.Index] = px.NewValue
		}
	}
	return doc.withLayer(idx, layer)
}
