// Package material names the simulation's material ids and carries their
// physical parameters (kind, density, viscosity, flammability). It is the
// single place that understands what a grid.MaterialID "means"; the grid
// package itself only ever sees an opaque uint8.
package material

import "vxsim/grid"

// Kind classifies how a material's rule moves it.
type Kind uint8

const (
	KindNone Kind = iota
	KindSolid
	KindPowder
	KindFluid
	KindGas
	KindSpecial
)

const (
	Empty  grid.MaterialID = grid.EmptyMaterial
	Sand   grid.MaterialID = 1
	Dirt   grid.MaterialID = 2
	Water  grid.MaterialID = 3
	Oil    grid.MaterialID = 4
	Lava   grid.MaterialID = 5
	Fire   grid.MaterialID = 6
	Smoke  grid.MaterialID = 7
	Steam  grid.MaterialID = 8
	Snow   grid.MaterialID = 9
	Leaf   grid.MaterialID = 10
	Wood   grid.MaterialID = 11
	Rock   grid.MaterialID = 12
	Ice    grid.MaterialID = 13
	Grass  grid.MaterialID = 14
	Acid   grid.MaterialID = 15
	Player grid.MaterialID = 16
	Arrow  grid.MaterialID = 17

	// MaxID bounds the dense parameter table.
	MaxID = 64
)

// Params holds the per-material numeric parameters the rule functions read
// from.
type Params struct {
	Name         string
	Kind         Kind
	Density      float64
	Viscosity    float64
	Flammability float64 // [0,1] ignition probability contribution
}

// Table is the dense id -> Params lookup, indexed like Palette's color
// table. Entry 0 (Empty) is the zero value. Overridden at runtime by
// config.Config.ApplyToTable.
var Table = [MaxID]Params{
	Empty:  {Name: "empty", Kind: KindNone},
	Sand:   {Name: "sand", Kind: KindPowder, Density: 5.0},
	Dirt:   {Name: "dirt", Kind: KindPowder, Density: 4.5},
	Water:  {Name: "water", Kind: KindFluid, Density: 2.0, Viscosity: 1.0},
	Oil:    {Name: "oil", Kind: KindFluid, Density: 1.5, Viscosity: 2.0},
	Lava:   {Name: "lava", Kind: KindFluid, Density: 4.0, Viscosity: 8.0},
	Fire:   {Name: "fire", Kind: KindSpecial},
	Smoke:  {Name: "smoke", Kind: KindGas, Density: -1.0},
	Steam:  {Name: "steam", Kind: KindGas, Density: -0.5},
	Snow:   {Name: "snow", Kind: KindPowder, Density: -0.2},
	Leaf:   {Name: "leaf", Kind: KindSolid, Flammability: 0.12},
	Wood:   {Name: "wood", Kind: KindSolid, Flammability: 0.05},
	Rock:   {Name: "rock", Kind: KindSolid, Density: 10.0},
	Ice:    {Name: "ice", Kind: KindSolid},
	Grass:  {Name: "grass", Kind: KindSolid, Flammability: 0.10},
	Acid:   {Name: "acid", Kind: KindFluid, Density: 2.2, Viscosity: 1.2},
	Player: {Name: "player", Kind: KindSpecial},
	Arrow:  {Name: "arrow", Kind: KindSpecial},
}

// ParamsOf returns the parameters for id, or the zero Params for an id
// outside the table.
func ParamsOf(id grid.MaterialID) Params {
	if int(id) >= len(Table) {
		return Params{}
	}
	return Table[id]
}

func KindOf(id grid.MaterialID) Kind { return ParamsOf(id).Kind }

func Density(id grid.MaterialID) float64 { return ParamsOf(id).Density }

func Viscosity(id grid.MaterialID) float64 {
	v := ParamsOf(id).Viscosity
	if v <= 0 {
		return 1
	}
	return v
}

func Flammability(id grid.MaterialID) float64 { return ParamsOf(id).Flammability }

// IsSolid reports whether the material blocks movement through it (used by
// the movement helpers' "target is not a solid" checks).
func IsSolid(id grid.MaterialID) bool {
	return KindOf(id) == KindSolid
}

func IsGas(id grid.MaterialID) bool {
	return KindOf(id) == KindGas
}

func IsFlammable(id grid.MaterialID) bool {
	return Flammability(id) > 0
}

// IsResistant reports whether a material resists acid conversion (solids
// and special entities never dissolve).
func IsResistant(id grid.MaterialID) bool {
	k := KindOf(id)
	return k == KindSolid || k == KindSpecial || k == KindNone
}

// Reactive reports whether a material's cells must keep their chunk active
// — i.e. whether it has any movement or reaction rule at all. Wired
// directly into grid.NewGrid2D as the ReactivityFunc. Player/Arrow are
// inert under the cellular rules and never need scheduling.
func Reactive(id grid.MaterialID) bool {
	switch id {
	case Empty, Player, Arrow:
		return false
	default:
		return true
	}
}
