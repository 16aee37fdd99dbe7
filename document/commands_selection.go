package document

// selectionCommand sets doc.Selection to after on execute and restores
// before on undo.
type selectionCommand struct {
	alwaysExecutable
	before, after Selection
}

func NewSelectionCommand(before, after Selection) Command {
	return &selectionCommand{before: before, after: after}
}

func (c *selectionCommand) Name() string { return "selection" }

func (c *selectionCommand) Execute(doc *EditorDocument) *EditorDocument {
	out := doc.shallowCopy()
	out.Selection = c.after.Clone()
	return out
}

func (c *selectionCommand) Undo(doc *EditorDocument) *EditorDocument {
	out := doc.shallowCopy()
	out.Selection = c.before.Clone()
	return out
}

// transformCommand combines a PaintData apply with an optional selection
// change, applied atomically.
type transformCommand struct {
	alwaysExecutable
	data                            PaintData
	selectionBefore, selectionAfter *Selection
}

func NewTransformCommand(data PaintData, before, after *Selection) Command {
	return &transformCommand{data: data, selectionBefore: before, selectionAfter: after}
}

func (c *transformCommand) Name() string { return "transform" }

func (c *transformCommand) CanExecute(doc *EditorDocument) bool {
	return doc.LayerByID(c.data.LayerID) != nil
}

func (c *transformCommand) Execute(doc *EditorDocument) *EditorDocument {
	out := applyPaintData(doc, c.data, false)
	if out == doc {
		return doc
	}
	if c.selectionAfter != nil {
		out = out.shallowCopy()
		out.Selection = c.selectionAfter.Clone()
	}
	return out
}

func (c *transformCommand) Undo(doc *EditorDocument) *EditorDocument {
	out := applyPaintData(doc, c.data, true)
	if c.selectionBefore != nil {
		out = out.shallowCopy()
		out.Selection = c.selectionBefore.Clone()
	}
	return out
}
