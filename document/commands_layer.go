package document

import "vxsim/grid"

// addLayerCommand inserts a layer at the end (or a given index) and makes
// it active; undo removes it and restores the previous active id.
type addLayerCommand struct {
	alwaysExecutable
	layer      *Layer
	index      int // -1 means append
	prevActive string
}

func NewAddLayerCommand(layer *Layer, index int) Command {
	return &addLayerCommand{layer: layer, index: index}
}

func (c *addLayerCommand) Name() string { return "add-layer" }

func (c *addLayerCommand) Execute(doc *EditorDocument) *EditorDocument {
	out := doc.shallowCopy()
	c.prevActive = doc.ActiveLayerID
	idx := c.index
	if idx < 0 || idx > len(out.Layers) {
		idx = len(out.Layers)
	}
	layers := make([]*Layer, 0, len(out.Layers)+1)
	layers = append(layers, out.Layers[:idx]...)
	layers = append(layers, c.layer)
	layers = append(layers, out.Layers[idx:]...)
	out.Layers = layers
	out.ActiveLayerID = c.layer.ID
	return out
}

func (c *addLayerCommand) Undo(doc *EditorDocument) *EditorDocument {
	out := doc.shallowCopy()
	layers := make([]*Layer, 0, len(out.Layers)-1)
	for _, l := range out.Layers {
		if l.ID != c.layer.ID {
			layers = append(layers, l)
		}
	}
	out.Layers = layers
	out.ActiveLayerID = c.prevActive
	return out
}

// deleteLayerCommand removes a layer, blocked when it is the last
// remaining layer or the id doesn't exist.
type deleteLayerCommand struct {
	layerID      string
	removedLayer *Layer
	removedIndex int
	prevActive   string
}

func NewDeleteLayerCommand(layerID string) Command {
	return &deleteLayerCommand{layerID: layerID}
}

func (c *deleteLayerCommand) Name() string { return "delete-layer" }

func (c *deleteLayerCommand) CanExecute(doc *EditorDocument) bool {
	return len(doc.Layers) > 1 && doc.LayerByID(c.layerID) != nil
}

func (c *deleteLayerCommand) Execute(doc *EditorDocument) *EditorDocument {
	idx := doc.indexOfLayer(c.layerID)
	if idx < 0 {
		return doc
	}
	c.removedLayer = doc.Layers[idx]
	c.removedIndex = idx
	c.prevActive = doc.ActiveLayerID

	out := doc.shallowCopy()
	layers := make([]*Layer, 0, len(out.Layers)-1)
	layers = append(layers, out.Layers[:idx]...)
	layers = append(layers, out.Layers[idx+1:]...)
	out.Layers = layers
	if out.ActiveLayerID == c.layerID {
		if len(layers) > 0 {
			out.ActiveLayerID = layers[0].ID
		} else {
			out.ActiveLayerID = ""
		}
	}
	return out
}

func (c *deleteLayerCommand) Undo(doc *EditorDocument) *EditorDocument {
	out := doc.shallowCopy()
	idx := c.removedIndex
	if idx > len(out.Layers) {
		idx = len(out.Layers)
	}
	layers := make([]*Layer, 0, len(out.Layers)+1)
	layers = append(layers, out.Layers[:idx]...)
	layers = append(layers, c.removedLayer)
	layers = append(layers, out.Layers[idx:]...)
	out.Layers = layers
	out.ActiveLayerID = c.prevActive
	return out
}

// layerFieldCommand covers the family of self-inverting or prior-value-
// storing per-layer attribute edits: ToggleVisibility, ToggleLock,
// SetOpacity, SetBlendMode, SetZIndex, SetIsoHeight, Rename.
type layerFieldCommand struct {
	name    string
	layerID string
	apply   func(l *Layer)
	capture func(l *Layer) func(l *Layer) // returns the inverse given prior state
	inverse func(l *Layer)
}

func (c *layerFieldCommand) Name() string { return c.name }

func (c *layerFieldCommand) CanExecute(doc *EditorDocument) bool {
	return doc.LayerByID(c.layerID) != nil
}

func (c *layerFieldCommand) Execute(doc *EditorDocument) *EditorDocument {
	idx := doc.indexOfLayer(c.layerID)
	if idx < 0 {
		return doc
	}
	layer := doc.Layers[idx].Clone()
	c.inverse = c.capture(layer)
	c.apply(layer)
	return doc.withLayer(idx, layer)
}

func (c *layerFieldCommand) Undo(doc *EditorDocument) *EditorDocument {
	idx := doc.indexOfLayer(c.layerID)
	if idx < 0 || c.inverse == nil {
		return doc
	}
	layer := doc.Layers[idx].Clone()
	c.inverse(layer)
	return doc.withLayer(idx, layer)
}

func NewToggleVisibilityCommand(layerID string) Command {
	return &layerFieldCommand{
		name: "toggle-visibility", layerID: layerID,
		apply: func(l *Layer) { l.Visible = !l.Visible },
		capture: func(l *Layer) func(*Layer) {
			prev := l.Visible
			return func(l *Layer) { l.Visible = prev }
		},
	}
}

func NewToggleLockCommand(layerID string) Command {
	return &layerFieldCommand{
		name: "toggle-lock", layerID: layerID,
		apply: func(l *Layer) { l.Locked = !l.Locked },
		capture: func(l *Layer) func(*Layer) {
			prev := l.Locked
			return func(l *Layer) { l.Locked = prev }
		},
	}
}

func NewSetOpacityCommand(layerID string, opacity float64) Command {
	return &layerFieldCommand{
		name: "set-opacity", layerID: layerID,
		apply: func(l *Layer) { l.Opacity = opacity },
		capture: func(l *Layer) func(*Layer) {
			prev := l.Opacity
			return func(l *Layer) { l.Opacity = prev }
		},
	}
}

func NewSetBlendModeCommand(layerID string, mode BlendMode) Command {
	return &layerFieldCommand{
		name: "set-blend-mode", layerID: layerID,
		apply: func(l *Layer) { l.Blend = mode },
		capture: func(l *Layer) func(*Layer) {
			prev := l.Blend
			return func(l *Layer) { l.Blend = prev }
		},
	}
}

func NewSetZIndexCommand(layerID string, z int) Command {
	return &layerFieldCommand{
		name: "set-z-index", layerID: layerID,
		apply: func(l *Layer) { l.ZIndex = z },
		capture: func(l *Layer) func(*Layer) {
			prev := l.ZIndex
			return func(l *Layer) { l.ZIndex = prev }
		},
	}
}

func NewSetIsoHeightCommand(layerID string, h float64) Command {
	return &layerFieldCommand{
		name: "set-iso-height", layerID: layerID,
		apply: func(l *Layer) { l.IsoHeight = h },
		capture: func(l *Layer) func(*Layer) {
			prev := l.IsoHeight
			return func(l *Layer) { l.IsoHeight = prev }
		},
	}
}

func NewRenameLayerCommand(layerID, name string) Command {
	return &layerFieldCommand{
		name: "rename-layer", layerID: layerID,
		apply: func(l *Layer) { l.Name = name },
		capture: func(l *Layer) func(*Layer) {
			prev := l.Name
			return func(l *Layer) { l.Name = prev }
		},
	}
}

// reorderLayersCommand assigns z-indices so the input id order maps to
// descending z (first id = top), storing prior z-indices by id for undo.
type reorderLayersCommand struct {
	alwaysExecutable
	order  []string
	priorZ map[string]int
}

func NewReorderLayersCommand(order []string) Command {
	return &reorderLayersCommand{order: append([]string(nil), order...)}
}

func (c *reorderLayersCommand) Name() string { return "reorder-layers" }

func (c *reorderLayersCommand) Execute(doc *EditorDocument) *EditorDocument {
	out := doc.shallowCopy()
	out.Layers = append([]*Layer(nil), out.Layers...)
	c.priorZ = make(map[string]int, len(out.Layers))
	for _, l := range out.Layers {
		c.priorZ[l.ID] = l.ZIndex
	}
	n := len(c.order)
	for i, id := range c.order {
		idx := out.indexOfLayer(id)
		if idx < 0 {
			continue
		}
		l := out.Layers[idx].Clone()
		l.ZIndex = n - 1 - i
		out.Layers[idx] = l
	}
	return out
}

func (c *reorderLayersCommand) Undo(doc *EditorDocument) *EditorDocument {
	out := doc.shallowCopy()
	out.Layers = append([]*Layer(nil), out.Layers...)
	for idx, l := range out.Layers {
		if z, ok := c.priorZ[l.ID]; ok {
			fresh := l.Clone()
			fresh.ZIndex = z
			out.Layers[idx] = fresh
		}
	}
	return out
}

// mergeDownCommand folds upperId's non-empty cells onto lowerId, making
// lower active; requires both to be grid layers of equal dimensions.
type mergeDownCommand struct {
	upperID, lowerID string
	priorLayers      []*Layer
	priorActive      string
}

func NewMergeDownCommand(upperID, lowerID string) Command {
	return &mergeDownCommand{upperID: upperID, lowerID: lowerID}
}

func (c *mergeDownCommand) Name() string { return "merge-down" }

func (c *mergeDownCommand) CanExecute(doc *EditorDocument) bool {
	upper := doc.LayerByID(c.upperID)
	lower := doc.LayerByID(c.lowerID)
	if upper == nil || lower == nil {
		return false
	}
	if upper.Kind != LayerGrid2D || lower.Kind != LayerGrid2D {
		return false
	}
	return upper.Grid.W == lower.Grid.W && upper.Grid.H == lower.Grid.H
}

func (c *mergeDownCommand) Execute(doc *EditorDocument) *EditorDocument {
	upperIdx := doc.indexOfLayer(c.upperID)
	lowerIdx := doc.indexOfLayer(c.lowerID)
	if upperIdx < 0 || lowerIdx < 0 {
		return doc
	}
	c.priorLayers = append([]*Layer(nil), doc.Layers...)
	c.priorActive = doc.ActiveLayerID

	upper := doc.Layers[upperIdx]
	lower := doc.Layers[lowerIdx].Clone()
	merged := append([]grid.Cell(nil), lower.Grid.Cells()...)
	upperCells := upper.Grid.Cells()
	for i, c2 := range upperCells {
		if c2.MaterialOf() != grid.EmptyMaterial {
			merged[i] = c2
		}
	}
	lower.Grid.SetCellsUnsafe(merged)

	out := doc.shallowCopy()
	out.Layers = append([]*Layer(nil), out.Layers...)
	newLayers := make([]*Layer, 0, len(out.Layers)-1)
	for i, l := range out.Layers {
		if i == upperIdx {
			continue
		}
		if i == lowerIdx {
			newLayers = append(newLayers, lower)
			continue
		}
		newLayers = append(newLayers, l)
	}
	out.Layers = newLayers
	out.ActiveLayerID = lower.ID
	return out
}

func (c *mergeDownCommand) Undo(doc *EditorDocument) *EditorDocument {
	out := doc.shallowCopy()
	out.Layers = append([]*Layer(nil), c.priorLayers...)
	out.ActiveLayerID = c.priorActive
	return out
}

// flattenGridLayersCommand folds every visible grid layer (sorted by z
// ascending) into a single new layer, replacing all grid layers with it.
type flattenGridLayersCommand struct {
	alwaysExecutable
	priorLayers []*Layer
	priorActive string
	newLayer    *Layer
}

func NewFlattenGridLayersCommand() Command {
	return &flattenGridLayersCommand{}
}

func (c *flattenGridLayersCommand) Name() string { return "flatten-grid-layers" }

func (c *flattenGridLayersCommand) Execute(doc *EditorDocument) *EditorDocument {
	var gridLayers []*Layer
	for _, l := range doc.Layers {
		if l.Kind == LayerGrid2D && l.Visible {
			gridLayers = append(gridLayers, l)
		}
	}
	if len(gridLayers) == 0 {
		return doc
	}
	sortLayersByZAsc(gridLayers)

	w, h := gridLayers[0].Grid.W, gridLayers[0].Grid.H
	flat := make([]grid.Cell, w*h)
	for _, l := range gridLayers {
		cells := l.Grid.Cells()
		for i, c2 := range cells {
			if i >= len(flat) {
				break
			}
			if c2.MaterialOf() != grid.EmptyMaterial {
				flat[i] = c2
			}
		}
	}

	newLayer := NewGridLayer("Flattened", w, h, nil)
	newLayer.Grid.SetCellsUnsafe(flat)
	c.newLayer = newLayer
	c.priorLayers = append([]*Layer(nil), doc.Layers...)
	c.priorActive = doc.ActiveLayerID

	var kept []*Layer
	inserted := false
	for _, l := range doc.Layers {
		if l.Kind == LayerGrid2D {
			if !inserted {
				kept = append(kept, newLayer)
				inserted = true
			}
			continue
		}
		kept = append(kept, l)
	}
	if !inserted {
		kept = append(kept, newLayer)
	}

	out := doc.shallowCopy()
	out.Layers = kept
	out.ActiveLayerID = newLayer.ID
	return out
}

func (c *flattenGridLayersCommand) Undo(doc *EditorDocument) *EditorDocument {
	if c.priorLayers == nil {
		return doc
	}
	out := doc.shallowCopy()
	out.Layers = append([]*Layer(nil), c.priorLayers...)
	out.ActiveLayerID = c.priorActive
	return out
}

// sortLayersByZAsc sorts in place by ascending ZIndex (insertion sort: the
// layer counts here are always small — editor documents, not simulation
// grids).
func sortLayersByZAsc(layers []*Layer) {
	for i := 1; i < len(layers); i++ {
		for j := i; j > 0 && layers[j-1].ZIndex > layers[j].ZIndex; j-- {
			layers[j-1], layers[j] = layers[j], layers[j-1]
		}
	}
}
