package material

import "testing"

func TestReactiveExcludesEmptyAndEntities(t *testing.T) {
	if Reactive(Empty) {
		t.Fatalf("empty must not be reactive")
	}
	if Reactive(Player) || Reactive(Arrow) {
		t.Fatalf("player/arrow are inert under cellular rules")
	}
	if !Reactive(Sand) || !Reactive(Water) || !Reactive(Fire) {
		t.Fatalf("ordinary materials must be reactive")
	}
}

func TestIsResistant(t *testing.T) {
	if !IsResistant(Rock) {
		t.Fatalf("rock (solid) must resist acid")
	}
	if IsResistant(Water) {
		t.Fatalf("water (fluid) must not resist acid")
	}
	if IsResistant(Empty) != true {
		t.Fatalf("empty has no material to dissolve, treat as resistant")
	}
}

func TestViscosityNeverZero(t *testing.T) {
	if Viscosity(Empty) != 1 {
		t.Fatalf("viscosity fallback should be 1 to avoid division by zero in spread chance")
	}
	if Viscosity(Lava) <= Viscosity(Water) {
		t.Fatalf("lava must be more viscous than water")
	}
}

func TestParamsOfOutOfRange(t *testing.T) {
	if ParamsOf(250).Kind != KindNone {
		t.Fatalf("id outside table must return zero Params")
	}
}
