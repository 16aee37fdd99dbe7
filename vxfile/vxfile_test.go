package vxfile

import (
	"testing"

	"vxsim/document"
	"vxsim/grid"
)

func TestRoundTripDocumentThroughFile(t *testing.T) {
	doc := document.NewDocument("scene", 4, 4, 1, nil)
	layer := doc.ActiveLayer()
	layer.SetCellAt(5, grid.MakeCell(3, 0))

	f := ToFile(doc, Meta{Name: "scene"})
	raw, err := Marshal(f)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	parsed, err := Unmarshal(raw)
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	doc2, err := ToDocument(parsed)
	if err != nil {
		t.Fatalf("ToDocument failed: %v", err)
	}
	if doc2.ActiveLayer().CellAt(5).MaterialOf() != 3 {
		t.Fatalf("expected round-tripped cell to survive")
	}
}

func TestUnmarshalRejectsTooNewVersion(t *testing.T) {
	raw := []byte(`{"version": 99, "width":1, "height":1, "depth":1, "layers":[]}`)
	if _, err := Unmarshal(raw); err == nil {
		t.Fatalf("expected an error for version > MaxSupportedVersion")
	}
}

func TestUnmarshalSkipsUnknownLayerTypes(t *testing.T) {
	raw := []byte(`{"version":1,"width":1,"height":1,"depth":1,"layers":[
		{"id":"a","type":"grid2d","width":1,"height":1,"data":"AAA="},
		{"id":"b","type":"particle-emitter"}
	]}`)
	f, err := Unmarshal(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.Layers) != 1 {
		t.Fatalf("expected unknown layer type filtered out, got %d layers", len(f.Layers))
	}
}

func TestDecodeCellsRejectsLengthMismatch(t *testing.T) {
	ld := LayerData{Data: EncodeCells([]uint16{1, 2, 3})}
	if _, err := ld.DecodeCells(4); err == nil {
		t.Fatalf("expected length-mismatch error")
	}
}
