package tess

import (
	"testing"

	"github.com/chewxy/math32"
)

func approxEq(a, b, tol float32) bool {
	return math32.Abs(a-b) <= tol
}

func vecApproxEq(a, b Vec2, tol float32) bool {
	return approxEq(a.X, b.X, tol) && approxEq(a.Y, b.Y, tol)
}

// TestLerp tests scalar interpolation.
func TestLerp(t *testing.T) {
	tests := []struct {
		name    string
		a, b, t float32
		want    float32
	}{
		{"start", 0, 10, 0, 0},
		{"end", 0, 10, 1, 10},
		{"middle", 0, 10, 0.5, 5},
		{"negative range", -4, 4, 0.25, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lerp(tt.a, tt.b, tt.t); got != tt.want {
				t.Errorf("lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
			}
		})
	}
}

// TestRemap tests range remapping, including the degenerate source range.
func TestRemap(t *testing.T) {
	tests := []struct {
		name                             string
		v, fromMin, fromMax, toMin, toMax float32
		want                             float32
	}{
		{"identity", 5, 0, 10, 0, 10, 5},
		{"scale up", 0.5, 0, 1, 0, 100, 50},
		{"invert", 0, 0, 1, 1, 0, 1},
		{"rounding range", 0.5, 0, 1, 0.4, 0.1, 0.25},
		{"degenerate source", 3, 2, 2, 7, 9, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := remap(tt.v, tt.fromMin, tt.fromMax, tt.toMin, tt.toMax)
			if !approxEq(got, tt.want, 1e-5) {
				t.Errorf("remap(%v, %v, %v, %v, %v) = %v, want %v",
					tt.v, tt.fromMin, tt.fromMax, tt.toMin, tt.toMax, got, tt.want)
			}
		})
	}
}

// TestRotate90 tests quarter rotations in both directions.
func TestRotate90(t *testing.T) {
	tests := []struct {
		name      string
		v         Vec2
		clockwise bool
		want      Vec2
	}{
		{"x axis cw", V2(1, 0), true, V2(0, -1)},
		{"x axis ccw", V2(1, 0), false, V2(0, 1)},
		{"y axis cw", V2(0, 1), true, V2(1, 0)},
		{"diagonal ccw", V2(1, 1), false, V2(-1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rotate90(tt.v, tt.clockwise); !vecApproxEq(got, tt.want, 1e-6) {
				t.Errorf("rotate90(%v, %v) = %v, want %v", tt.v, tt.clockwise, got, tt.want)
			}
		})
	}
}

// TestLineIntersection tests intersection of two infinite lines.
func TestLineIntersection(t *testing.T) {
	tests := []struct {
		name           string
		p1, p2, p3, p4 Vec2
		want           Vec2
	}{
		{"perpendicular axes", V2(-1, 0), V2(1, 0), V2(0, -1), V2(0, 1), V2(0, 0)},
		{"offset cross", V2(0, 0), V2(4, 4), V2(0, 4), V2(4, 0), V2(2, 2)},
		{"beyond segments", V2(0, 0), V2(1, 0), V2(5, -1), V2(5, 1), V2(5, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lineIntersection(tt.p1, tt.p2, tt.p3, tt.p4)
			if !vecApproxEq(got, tt.want, 1e-5) {
				t.Errorf("lineIntersection(%v, %v, %v, %v) = %v, want %v",
					tt.p1, tt.p2, tt.p3, tt.p4, got, tt.want)
			}
		})
	}
}

// TestAngleBetweenDirs tests the signed angle between direction vectors.
func TestAngleBetweenDirs(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
		want float32
	}{
		{"same direction", V2(1, 0), V2(1, 0), 0},
		{"quarter turn down", V2(1, 0), V2(0, 1), 90},
		{"quarter turn up", V2(1, 0), V2(0, -1), -90},
		{"opposite", V2(1, 0), V2(-1, 0), 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := angleBetweenDirs(tt.a, tt.b)
			if !approxEq(got, tt.want, 1e-3) {
				t.Errorf("angleBetweenDirs(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// TestAreLinesParallel tests parallel detection.
func TestAreLinesParallel(t *testing.T) {
	tests := []struct {
		name           string
		a1, a2, b1, b2 Vec2
		want           bool
	}{
		{"horizontal pair", V2(0, 0), V2(1, 0), V2(0, 5), V2(1, 5), true},
		{"collinear", V2(0, 0), V2(1, 1), V2(2, 2), V2(3, 3), true},
		{"crossing", V2(0, 0), V2(1, 0), V2(0, 0), V2(0, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := areLinesParallel(tt.a1, tt.a2, tt.b1, tt.b2)
			if got != tt.want {
				t.Errorf("areLinesParallel(%v, %v, %v, %v) = %v, want %v",
					tt.a1, tt.a2, tt.b1, tt.b2, got, tt.want)
			}
		})
	}
}

// TestExtrudedFromNormal tests extrusion along the averaged edge normal. A
// point on a straight horizontal run extrudes straight down for positive
// thickness.
func TestExtrudedFromNormal(t *testing.T) {
	got := extrudedFromNormal(V2(1, 0), V2(0, 0), V2(2, 0), 2)
	want := V2(1, -2)
	if !vecApproxEq(got, want, 1e-5) {
		t.Errorf("extrudedFromNormal = %v, want %v", got, want)
	}

	// Negative thickness extrudes the other side.
	got = extrudedFromNormal(V2(1, 0), V2(0, 0), V2(2, 0), -2)
	want = V2(1, 2)
	if !vecApproxEq(got, want, 1e-5) {
		t.Errorf("extrudedFromNormal negative = %v, want %v", got, want)
	}
}

// TestSampleParabola tests that the parabola passes through its endpoints and
// bulges along dir at the middle.
func TestSampleParabola(t *testing.T) {
	p1, p2 := V2(0, 0), V2(2, 0)
	dir := V2(0, 1)

	if got := sampleParabola(p1, p2, dir, 1, 0); !vecApproxEq(got, p1, 1e-5) {
		t.Errorf("sampleParabola(t=0) = %v, want %v", got, p1)
	}
	if got := sampleParabola(p1, p2, dir, 1, 1); !vecApproxEq(got, p2, 1e-5) {
		t.Errorf("sampleParabola(t=1) = %v, want %v", got, p2)
	}
	if got := sampleParabola(p1, p2, dir, 1, 0.5); !vecApproxEq(got, V2(1, 1), 1e-5) {
		t.Errorf("sampleParabola(t=0.5) = %v, want %v", got, V2(1, 1))
	}
}

// TestAngleIncrease tests the rounding-to-arc-step mapping.
func TestAngleIncrease(t *testing.T) {
	tests := []struct {
		rounding float32
		want     float32
	}{
		{0.1, 20},
		{0.3, 15},
		{0.6, 10},
		{0.9, 5},
	}

	for _, tt := range tests {
		if got := angleIncrease(tt.rounding); got != tt.want {
			t.Errorf("angleIncrease(%v) = %v, want %v", tt.rounding, got, tt.want)
		}
	}
}

// TestPointOnCircle tests angle-to-point conversion.
func TestPointOnCircle(t *testing.T) {
	center := V2(0, 0)
	if got := pointOnCircle(center, 1, 0); !vecApproxEq(got, V2(1, 0), 1e-5) {
		t.Errorf("pointOnCircle(0 deg) = %v, want %v", got, V2(1, 0))
	}
	if got := pointOnCircle(center, 1, 90); !vecApproxEq(got, V2(0, 1), 1e-5) {
		t.Errorf("pointOnCircle(90 deg) = %v, want %v", got, V2(0, 1))
	}
}
