// Package document implements the editable document model: layers, the
// command/history undo-redo protocol, floating selections, selection
// algebra, and the drawing primitives tools are built from.
package document

import (
	"vxsim/grid"

	"github.com/google/uuid"
)

// LayerKind tags which payload a Layer carries.
type LayerKind string

const (
	LayerGrid2D    LayerKind = "grid2d"
	LayerVoxel3D   LayerKind = "voxel3d"
	LayerReference LayerKind = "reference"
)

// BlendMode names the compositing mode the renderer applies for a layer.
type BlendMode string

const (
	BlendNormal   BlendMode = "normal"
	BlendMultiply BlendMode = "multiply"
	BlendScreen   BlendMode = "screen"
	BlendOverlay  BlendMode = "overlay"
)

// Layer is a single entry in a document's stack. Exactly one of Grid/Voxel
// is populated, chosen by Kind; ImageURL is populated only for reference
// layers.
type Layer struct {
	ID      string
	Name    string
	Kind    LayerKind
	Visible bool
	Locked  bool
	Opacity float64
	Blend   BlendMode
	ZIndex  int

	// IsoHeight is a per-layer offset the isometric renderer adds to every
	// cell's world-space z; zero means no offset.
	IsoHeight float64

	Grid     *grid.Grid2D
	Voxel    *grid.VoxelGrid3D
	ImageURL string

	// ActiveZ is the voxel layer's currently edited/displayed slice.
	ActiveZ int
}

// NewGridLayer creates a visible, unlocked, fully opaque grid2d layer.
func NewGridLayer(name string, w, h int, reactive grid.ReactivityFunc) *Layer {
	return &Layer{
		ID:      uuid.NewString(),
		Name:    name,
		Kind:    LayerGrid2D,
		Visible: true,
		Opacity: 1,
		Blend:   BlendNormal,
		Grid:    grid.NewGrid2D(w, h, 16, reactive),
	}
}

// NewVoxelLayer creates a visible, unlocked, fully opaque voxel3d layer.
func NewVoxelLayer(name string, w, h, d int) *Layer {
	return &Layer{
		ID:      uuid.NewString(),
		Name:    name,
		Kind:    LayerVoxel3D,
		Visible: true,
		Opacity: 1,
		Blend:   BlendNormal,
		Voxel:   grid.NewVoxelGrid3D(w, h, d),
	}
}

// NewVoxelLayerWithData creates a voxel3d layer pre-filled with cells, the
// entry point for externally generated voxel arrays (a procedural or AI
// generator's output is consumed here as an opaque cell buffer). data must
// have length w*h*d; a mismatched buffer yields an empty layer instead.
func NewVoxelLayerWithData(name string, w, h, d int, data []grid.Cell) *Layer {
	l := NewVoxelLayer(name, w, h, d)
	if len(data) == w*h*d {
		l.Voxel.SetCellsUnsafe(append([]grid.Cell(nil), data...))
	}
	return l
}

// NewReferenceLayer creates a reference (image overlay) layer with no cell
// data of its own.
func NewReferenceLayer(name, imageURL string) *Layer {
	return &Layer{
		ID:       uuid.NewString(),
		Name:     name,
		Kind:     LayerReference,
		Visible:  true,
		Opacity:  1,
		Blend:    BlendNormal,
		ImageURL: imageURL,
	}
}

// Paintable reports whether the layer can be a target for Paint/Fill/Paste
// and floating-selection commands.
func (l *Layer) Paintable() bool {
	return (l.Kind == LayerGrid2D || l.Kind == LayerVoxel3D) && !l.Locked
}

// Clone returns a deep copy with its own fresh cell storage. The ID is
// preserved so undo/redo can restore a prior layer by identity.
func (l *Layer) Clone() *Layer {
	out := *l
	if l.Grid != nil {
		out.Grid = l.Grid.Clone()
	}
	if l.Voxel != nil {
		out.Voxel = l.Voxel.Clone()
	}
	return &out
}

// CellLen returns the flat cell count of a grid2d layer (w*h) or a
// voxel3d layer (w*h*d), or 0 for a reference layer.
func (l *Layer) CellLen() int {
	switch l.Kind {
	case LayerGrid2D:
		return len(l.Grid.Cells())
	case LayerVoxel3D:
		return len(l.Voxel.Cells())
	default:
		return 0
	}
}

// CellAt returns the cell at flat index i, or 0 if the layer carries no
// cell data.
func (l *Layer) CellAt(i int) grid.Cell {
	switch l.Kind {
	case LayerGrid2D:
		return l.Grid.Cells()[i]
	case LayerVoxel3D:
		return l.Voxel.Cells()[i]
	default:
		return 0
	}
}

// SetCellAt writes the cell at flat index i, reallocating the backing
// array first so layer identity changes and downstream change-detection
// can see the edit.
func (l *Layer) SetCellAt(i int, c grid.Cell) {
	switch l.Kind {
	case LayerGrid2D:
		fresh := append([]grid.Cell(nil), l.Grid.Cells()...)
		fresh[i] = c
		l.Grid.SetCellsUnsafe(fresh)
	case LayerVoxel3D:
		fresh := append([]grid.Cell(nil), l.Voxel.Cells()...)
		fresh[i] = c
		l.Voxel.SetCellsUnsafe(fresh)
	}
}
