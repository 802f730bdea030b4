package tess

import "testing"

// TestVec2Arithmetic tests the basic vector operations.
func TestVec2Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Vec2
		want Vec2
	}{
		{"add", V2(1, 2).Add(V2(3, 4)), V2(4, 6)},
		{"sub", V2(5, 5).Sub(V2(2, 3)), V2(3, 2)},
		{"mul", V2(1, -2).Mul(3), V2(3, -6)},
		{"div", V2(4, 8).Div(2), V2(2, 4)},
		{"neg", V2(1, -1).Neg(), V2(-1, 1)},
		{"lerp middle", V2(0, 0).Lerp(V2(10, 20), 0.5), V2(5, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

// TestVec2Normalize tests unit vectors and the zero-vector guard.
func TestVec2Normalize(t *testing.T) {
	if got := V2(3, 4).Normalize(); !vecApproxEq(got, V2(0.6, 0.8), 1e-6) {
		t.Errorf("Normalize(3, 4) = %v, want %v", got, V2(0.6, 0.8))
	}
	if got := V2(0, 0).Normalize(); got != (Vec2{}) {
		t.Errorf("Normalize(0, 0) = %v, want zero vector", got)
	}
}

// TestVec2Products tests dot and cross products.
func TestVec2Products(t *testing.T) {
	if got := V2(1, 2).Dot(V2(3, 4)); got != 11 {
		t.Errorf("Dot = %v, want 11", got)
	}
	if got := V2(1, 0).Cross(V2(0, 1)); got != 1 {
		t.Errorf("Cross = %v, want 1", got)
	}
}

// TestRectContains tests the strict inside test used for CPU text clipping.
func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"center", V2(5, 5), true},
		{"on left edge", V2(0, 5), false},
		{"on corner", V2(10, 10), false},
		{"outside", V2(11, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

// TestRectIsZero tests the no-clip sentinel.
func TestRectIsZero(t *testing.T) {
	if !(Rect{}).IsZero() {
		t.Error("zero Rect IsZero() = false, want true")
	}
	if (Rect{W: 1, H: 1}).IsZero() {
		t.Error("1x1 Rect IsZero() = true, want false")
	}
}
