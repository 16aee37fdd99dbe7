package worldgen

import (
	"testing"

	"vxsim/material"
)

func TestGenerateIsDeterministic(t *testing.T) {
	p := DefaultParams(42)
	a := Generate(64, 48, 16, material.Reactive, p)
	b := Generate(64, 48, 16, material.Reactive, p)

	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			if a.Get(x, y) != b.Get(x, y) {
				t.Fatalf("generation not deterministic at (%d,%d): %v vs %v", x, y, a.Get(x, y), b.Get(x, y))
			}
		}
	}
}

func TestGenerateDifferentSeedsDiffer(t *testing.T) {
	a := Generate(64, 48, 16, material.Reactive, DefaultParams(1))
	b := Generate(64, 48, 16, material.Reactive, DefaultParams(2))

	differs := false
	for y := 0; y < 48 && !differs; y++ {
		for x := 0; x < 64; x++ {
			if a.Get(x, y) != b.Get(x, y) {
				differs = true
				break
			}
		}
	}
	if !differs {
		t.Fatalf("expected different seeds to produce different terrain")
	}
}

func TestGenerateProducesExpectedMaterials(t *testing.T) {
	g := Generate(80, 60, 16, material.Reactive, DefaultParams(7))

	found := map[string]bool{}
	for y := 0; y < 60; y++ {
		for x := 0; x < 80; x++ {
			id := g.Get(x, y).MaterialOf()
			found[material.ParamsOf(id).Name] = true
		}
	}
	for _, name := range []string{"grass", "dirt", "rock"} {
		if !found[name] {
			t.Errorf("expected generated terrain to contain %s", name)
		}
	}
}

func TestGenerateWaterLevelFloodsLowGround(t *testing.T) {
	p := DefaultParams(3)
	p.WaterLevel = 5
	g := Generate(64, 48, 16, material.Reactive, p)

	foundWater := false
	for y := 0; y < 48 && !foundWater; y++ {
		for x := 0; x < 64; x++ {
			if g.Get(x, y).MaterialOf() == material.Water {
				foundWater = true
				break
			}
		}
	}
	if !foundWater {
		t.Errorf("expected a nonzero water level to flood some low ground")
	}
}

func TestGenerateTreesStayWithinBounds(t *testing.T) {
	p := DefaultParams(11)
	p.TreeChance = 100
	g := Generate(32, 32, 16, material.Reactive, p)

	foundWood := false
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if g.Get(x, y).MaterialOf() == material.Wood {
				foundWood = true
			}
		}
	}
	if !foundWood {
		t.Errorf("expected trees to grow with TreeChance=100")
	}
}
