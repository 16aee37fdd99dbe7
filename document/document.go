package document

import "vxsim/grid"

// ViewMode names the document's current presentation mode.
type ViewMode string

const (
	View2D  ViewMode = "2d"
	ViewIso ViewMode = "iso"
	View3D  ViewMode = "3d"
)

// PaletteEntry is one row of the document's material palette.
type PaletteEntry struct {
	ID    grid.MaterialID
	Name  string
	Color uint32
	Flags uint32
}

// EditorDocument is the immutable-by-convention value every command
// transforms. Commands never mutate a document in place across an
// execute/undo boundary that crosses history bookkeeping — they build a
// new *EditorDocument (cloning only the layers that actually change) so
// the reference-equality check in ExecuteCommand, same document means the
// command rejected itself, stays meaningful.
type EditorDocument struct {
	Name                 string
	Width, Height, Depth int
	ViewMode             ViewMode
	Palette              []PaletteEntry
	Layers               []*Layer
	ActiveLayerID        string
	Selection            Selection

	// Floating holds the live floating-selection session, or nil when
	// absent.
	Floating *FloatingSession
}

// NewDocument creates an empty document with a single grid2d layer.
func NewDocument(name string, w, h, d int, reactive grid.ReactivityFunc) *EditorDocument {
	layer := NewGridLayer("Layer 1", w, h, reactive)
	return &EditorDocument{
		Name:          name,
		Width:         w,
		Height:        h,
		Depth:         d,
		ViewMode:      View2D,
		Layers:        []*Layer{layer},
		ActiveLayerID: layer.ID,
	}
}

// LayerByID returns the layer with the given id, or nil.
func (d *EditorDocument) LayerByID(id string) *Layer {
	for _, l := range d.Layers {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// ActiveLayer returns the currently active layer, or nil if ActiveLayerID
// doesn't resolve (e.g. it was deleted).
func (d *EditorDocument) ActiveLayer() *Layer {
	return d.LayerByID(d.ActiveLayerID)
}

// shallowCopy returns a new *EditorDocument with a fresh Layers slice that
// still shares every *Layer pointer; callers replace only the layer(s)
// they actually touch, so the original document's slice is never mutated
// in place.
func (d *EditorDocument) shallowCopy() *EditorDocument {
	out := *d
	out.Layers = append([]*Layer(nil), d.Layers...)
	return &out
}

// withLayer returns a copy of the document with the layer at the given
// index replaced.
func (d *EditorDocument) withLayer(idx int, l *Layer) *EditorDocument {
	out := d.shallowCopy()
	out.Layers[idx] = l
	return out
}

func (d *EditorDocument) indexOfLayer(id string) int {
	for i, l := range d.Layers {
		if l.ID == id {
			return i
		}
	}
	return -1
}
