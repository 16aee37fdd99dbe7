// Package grid implements the packed cell type and the chunked 2D/3D rasters
// that back the simulation. It is material-agnostic: a Cell only knows a
// numeric material id and an 8-bit flag byte; what an id means is the
// material package's business.
package grid

// Cell is a packed 16-bit value: low byte material id (0 = empty), high
// byte per-material flags (burn-ticks, saturation, variant). Cell zero
// means "no material, no flags" — the only value with that property.
type Cell uint16

// MaterialID identifies a material. 0 is always empty.
type MaterialID uint8

const EmptyMaterial MaterialID = 0

// MakeCell packs a material id and a flag byte into a Cell.
func MakeCell(material MaterialID, flags uint8) Cell {
	return Cell(material) | Cell(flags)<<8
}

// MaterialOf extracts the material id from a packed Cell.
func (c Cell) MaterialOf() MaterialID {
	return MaterialID(c & 0xFF)
}

// FlagsOf extracts the flag byte from a packed Cell.
func (c Cell) FlagsOf() uint8 {
	return uint8(c >> 8)
}

// IsEmpty reports whether the cell carries no material and no flags.
func (c Cell) IsEmpty() bool {
	return c == 0
}

// WithFlags returns a copy of c with its flag byte replaced.
func (c Cell) WithFlags(flags uint8) Cell {
	return MakeCell(c.MaterialOf(), flags)
}
