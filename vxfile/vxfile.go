// Package vxfile implements the .vxf document file format: a UTF-8 JSON
// envelope with base64-encoded little-endian Uint16Array cell data,
// decoupled from the document package the same way render is — vxfile
// knows how to turn a DocumentFile value into bytes and back, but the
// document package itself never imports vxfile.
//
// Failures return errors as values rather than panicking, matching the
// error-handling style used throughout this module.
package vxfile

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
)

// MaxSupportedVersion is the highest `version` this reader understands. A
// file declaring a newer version is a hard load error.
const MaxSupportedVersion = 1

// Meta mirrors the file's meta block.
type Meta struct {
	Name       string `json:"name"`
	CreatedMs  int64  `json:"created_ms"`
	ModifiedMs int64  `json:"modified_ms"`
	Author     string `json:"author,omitempty"`
}

// PaletteEntry mirrors one row of the file's palette array.
type PaletteEntry struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color uint32 `json:"color_u32"`
	Flags uint32 `json:"flags_u32"`
}

// LayerData mirrors one entry of the file's layers array. Data is the raw
// base64 text exactly as it appears on disk; decode it with
// LayerData.DecodeCells.
type LayerData struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Visible   bool    `json:"visible"`
	Locked    bool    `json:"locked"`
	Opacity   float64 `json:"opacity"`
	BlendMode string  `json:"blendMode"`
	ZIndex    int     `json:"zIndex"`
	IsoHeight float64 `json:"isoHeight"`
	Width     int     `json:"width,omitempty"`
	Height    int     `json:"height,omitempty"`
	Depth     int     `json:"depth,omitempty"`
	Data      string  `json:"data,omitempty"`
	ImageURL  string  `json:"imageUrl,omitempty"`
}

// knownLayerTypes are the types the reader understands; anything else is
// silently skipped on load so a newer writer's layer kinds don't break an
// older reader.
var knownLayerTypes = map[string]bool{"grid2d": true, "voxel3d": true, "reference": true}

// DocumentFile is the full on-disk shape.
type DocumentFile struct {
	Version       uint8          `json:"version"`
	Meta          Meta           `json:"meta"`
	Width         int            `json:"width"`
	Height        int            `json:"height"`
	Depth         int            `json:"depth"`
	ViewMode      string         `json:"viewMode"`
	Palette       []PaletteEntry `json:"palette"`
	Layers        []LayerData    `json:"layers"`
	ActiveLayerID string         `json:"activeLayerId"`
}

// LoadError covers every way a load can fail: version too new, malformed
// JSON, or a base64/length mismatch on a layer's cell data. The driver
// gets back a single error value and the prior document stays loaded.
type LoadError struct {
	Reason string
}

func (e *LoadError) Error() string { return "vxfile: " + e.Reason }

// EncodeCells packs a little-endian uint16 cell array into a base64 string.
func EncodeCells(cells []uint16) string {
	buf := make([]byte, len(cells)*2)
	for i, c := range cells {
		binary.LittleEndian.PutUint16(buf[i*2:], c)
	}
	return base64.StdEncoding.EncodeToString(buf)
}

// DecodeCells decodes l.Data into a uint16 cell array, validating that its
// decoded length matches the expected cell count (w*h, or w*h*d for a
// voxel layer) exactly.
func (l *LayerData) DecodeCells(expectedLen int) ([]uint16, error) {
	raw, err := base64.StdEncoding.DecodeString(l.Data)
	if err != nil {
		return nil, &LoadError{Reason: fmt.Sprintf("layer %q: base64 decode failed: %v", l.ID, err)}
	}
	if len(raw)%2 != 0 {
		return nil, &LoadError{Reason: fmt.Sprintf("layer %q: odd byte length %d for uint16 data", l.ID, len(raw))}
	}
	n := len(raw) / 2
	if n != expectedLen {
		return nil, &LoadError{Reason: fmt.Sprintf("layer %q: decoded length %d != expected %d", l.ID, n, expectedLen)}
	}
	cells := make([]uint16, n)
	for i := range cells {
		cells[i] = binary.LittleEndian.Uint16(raw[i*2:])
	}
	return cells, nil
}

// Marshal serializes a DocumentFile to its JSON byte form.
func Marshal(f *DocumentFile) ([]byte, error) {
	return json.MarshalIndent(f, "", "  ")
}

// Unmarshal parses raw JSON bytes into a DocumentFile, rejecting an
// unsupported version outright and filtering unknown layer types before
// the caller ever sees them. Malformed JSON surfaces as a single
// *LoadError.
func Unmarshal(raw []byte) (*DocumentFile, error) {
	var f DocumentFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, &LoadError{Reason: fmt.Sprintf("malformed JSON: %v", err)}
	}
	if f.Version > MaxSupportedVersion {
		return nil, &LoadError{Reason: fmt.Sprintf("unsupported version %d (max %d)", f.Version, MaxSupportedVersion)}
	}

	kept := f.Layers[:0:0]
	for _, l := range f.Layers {
		if knownLayerTypes[l.Type] {
			kept = append(kept, l)
		}
	}
	f.Layers = kept
	return &f, nil
}
