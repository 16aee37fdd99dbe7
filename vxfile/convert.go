package vxfile

import (
	"fmt"

	"vxsim/document"
	"vxsim/grid"
)

// ToFile converts a live document into the on-disk shape, encoding every
// paintable layer's cell array as base64.
func ToFile(doc *document.EditorDocument, meta Meta) *DocumentFile {
	f := &DocumentFile{
		Version:       MaxSupportedVersion,
		Meta:          meta,
		Width:         doc.Width,
		Height:        doc.Height,
		Depth:         doc.Depth,
		ViewMode:      string(doc.ViewMode),
		ActiveLayerID: doc.ActiveLayerID,
	}
	for _, p := range doc.Palette {
		f.Palette = append(f.Palette, PaletteEntry{
			ID: int(p.ID), Name: p.Name, Color: p.Color, Flags: p.Flags,
		})
	}
	for _, l := range doc.Layers {
		ld := LayerData{
			ID: l.ID, Name: l.Name, Type: string(l.Kind),
			Visible: l.Visible, Locked: l.Locked, Opacity: l.Opacity,
			BlendMode: string(l.Blend), ZIndex: l.ZIndex, IsoHeight: l.IsoHeight,
		}
		switch l.Kind {
		case document.LayerGrid2D:
			ld.Width, ld.Height = l.Grid.W, l.Grid.H
			ld.Data = EncodeCells(cellsToU16(l.Grid.Cells()))
		case document.LayerVoxel3D:
			ld.Width, ld.Height, ld.Depth = l.Voxel.W, l.Voxel.H, l.Voxel.D
			ld.Data = EncodeCells(cellsToU16(l.Voxel.Cells()))
		case document.LayerReference:
			ld.ImageURL = l.ImageURL
		}
		f.Layers = append(f.Layers, ld)
	}
	return f
}

// ToDocument reconstructs a document from a parsed file, decoding and
// length-validating every known layer's cell data. A decode failure on
// any single layer aborts the whole load, leaving whatever document the
// caller already had loaded untouched.
func ToDocument(f *DocumentFile) (*document.EditorDocument, error) {
	doc := &document.EditorDocument{
		Name:  f.Meta.Name,
		Width: f.Width, Height: f.Height, Depth: f.Depth,
		ViewMode:      document.ViewMode(f.ViewMode),
		ActiveLayerID: f.ActiveLayerID,
	}
	for _, p := range f.Palette {
		doc.Palette = append(doc.Palette, document.PaletteEntry{
			ID: grid.MaterialID(p.ID), Name: p.Name, Color: p.Color, Flags: p.Flags,
		})
	}
	for _, ld := range f.Layers {
		layer, err := layerFromData(ld)
		if err != nil {
			return nil, err
		}
		doc.Layers = append(doc.Layers, layer)
	}
	return doc, nil
}

func layerFromData(ld LayerData) (*document.Layer, error) {
	layer := &document.Layer{
		ID: ld.ID, Name: ld.Name, Kind: document.LayerKind(ld.Type),
		Visible: ld.Visible, Locked: ld.Locked, Opacity: ld.Opacity,
		Blend: document.BlendMode(ld.BlendMode), ZIndex: ld.ZIndex, IsoHeight: ld.IsoHeight,
	}
	switch layer.Kind {
	case document.LayerGrid2D:
		u16, err := ld.DecodeCells(ld.Width * ld.Height)
		if err != nil {
			return nil, err
		}
		g := grid.NewGrid2D(ld.Width, ld.Height, 16, nil)
		g.SetCellsUnsafe(u16ToCells(u16))
		layer.Grid = g
	case document.LayerVoxel3D:
		u16, err := ld.DecodeCells(ld.Width * ld.Height * ld.Depth)
		if err != nil {
			return nil, err
		}
		v := grid.NewVoxelGrid3D(ld.Width, ld.Height, ld.Depth)
		v.SetCellsUnsafe(u16ToCells(u16))
		layer.Voxel = v
	case document.LayerReference:
		layer.ImageURL = ld.ImageURL
	default:
		return nil, &LoadError{Reason: fmt.Sprintf("layer %q: unknown type %q", ld.ID, ld.Type)}
	}
	return layer, nil
}

func cellsToU16(cells []grid.Cell) []uint16 {
	out := make([]uint16, len(cells))
	for i, c := range cells {
		out[i] = uint16(c)
	}
	return out
}

func u16ToCells(u16 []uint16) []grid.Cell {
	out := make([]grid.Cell, len(u16))
	for i, v := range u16 {
		out[i] = grid.Cell(v)
	}
	return out
}
