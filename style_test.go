package tess

import (
	"reflect"
	"testing"
)

// TestDefaultStyle tests the documented defaults.
func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()
	if !s.IsFilled {
		t.Error("DefaultStyle().IsFilled = false, want true")
	}
	if s.Color != Solid(White) {
		t.Errorf("DefaultStyle().Color = %v, want solid white", s.Color)
	}
	if s.Thickness != Uniform(1) {
		t.Errorf("DefaultStyle().Thickness = %v, want uniform 1", s.Thickness)
	}
	if s.AAMultiplier != 1 {
		t.Errorf("DefaultStyle().AAMultiplier = %v, want 1", s.AAMultiplier)
	}
	if s.TextureTiling != V2(1, 1) {
		t.Errorf("DefaultStyle().TextureTiling = %v, want (1, 1)", s.TextureTiling)
	}
}

// TestDeriveOutlineStyle tests that deriving replaces only the outline and
// leaves the input untouched.
func TestDeriveOutlineStyle(t *testing.T) {
	base := DefaultStyle()
	base.Color = Gradient{Start: Red, End: Blue, Type: GradientHorizontal}
	base.Texture = 3
	base.TextureTiling = V2(2, 2)
	base.IsFilled = false
	before := base

	got := DeriveOutlineStyle(base, OutlineInwards)

	if !reflect.DeepEqual(base, before) {
		t.Error("DeriveOutlineStyle mutated its input")
	}
	if got.Outline.Direction != OutlineInwards {
		t.Errorf("derived direction = %v, want inwards", got.Outline.Direction)
	}
	if got.Outline.Color != base.Color {
		t.Errorf("derived outline color = %v, want the source color", got.Outline.Color)
	}
	if got.Outline.Texture != base.Texture || got.Outline.TextureTiling != base.TextureTiling {
		t.Error("derived outline did not inherit the source texture settings")
	}
	if got.IsFilled != base.IsFilled {
		t.Errorf("derived IsFilled = %v, want %v", got.IsFilled, base.IsFilled)
	}
}

// TestDeriveAAStyle tests that the AA derivation extrudes both ways.
func TestDeriveAAStyle(t *testing.T) {
	base := DefaultStyle()
	base.Color = Solid(Green)

	got := DeriveAAStyle(base)
	if got.Outline.Direction != OutlineBoth {
		t.Errorf("AA outline direction = %v, want both", got.Outline.Direction)
	}
	if got.Outline.Color != base.Color {
		t.Errorf("AA outline color = %v, want the source color", got.Outline.Color)
	}
}

// TestUniformThickness tests the Thickness constructor.
func TestUniformThickness(t *testing.T) {
	th := Uniform(4)
	if th.Start != 4 || th.End != 4 {
		t.Errorf("Uniform(4) = %+v, want start and end 4", th)
	}
}

// TestEnumStrings tests the String methods on the style enums.
func TestEnumStrings(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"outline outwards", OutlineOutwards.String(), "outwards"},
		{"outline both", OutlineBoth.String(), "both"},
		{"joint miter", JointMiter.String(), "miter"},
		{"joint bevel-round", JointBevelRound.String(), "bevel-round"},
		{"cap both", CapBoth.String(), "both"},
		{"gradient radial", GradientRadial.String(), "radial"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("String() = %q, want %q", tt.got, tt.want)
			}
		})
	}
}
