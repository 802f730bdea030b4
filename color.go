package tess

// RGBA is a straight-alpha color with float32 channels in [0, 1]. Vertex
// colors are passed to backends untouched, so values outside [0, 1] are
// legal where a backend can use them.
type RGBA struct {
	R, G, B, A float32
}

// Common colors.
var (
	White       = RGBA{1, 1, 1, 1}
	Black       = RGBA{0, 0, 0, 1}
	Red         = RGBA{1, 0, 0, 1}
	Green       = RGBA{0, 1, 0, 1}
	Blue        = RGBA{0, 0, 1, 1}
	Transparent = RGBA{0, 0, 0, 0}
)

func lerpColor(a, b RGBA, t float32) RGBA {
	return RGBA{
		R: lerp(a.R, b.R, t),
		G: lerp(a.G, b.G, t),
		B: lerp(a.B, b.B, t),
		A: lerp(a.A, b.A, t),
	}
}

// GradientType selects how a Gradient's two stops are spread over a shape.
type GradientType int

const (
	// GradientHorizontal blends Start to End left to right.
	GradientHorizontal GradientType = iota
	// GradientVertical blends Start to End top to bottom.
	GradientVertical
	// GradientRadial blends from the shape center outward.
	GradientRadial
	// GradientRadialCorner blends radially anchored at the shape corner.
	GradientRadialCorner
)

func (t GradientType) String() string {
	switch t {
	case GradientHorizontal:
		return "horizontal"
	case GradientVertical:
		return "vertical"
	case GradientRadial:
		return "radial"
	case GradientRadialCorner:
		return "radial-corner"
	default:
		return "unknown"
	}
}

// Gradient is a two-stop color ramp. A Gradient whose stops are equal acts
// as a solid color and never forces a shape into the gradient buffer.
type Gradient struct {
	Start      RGBA
	End        RGBA
	Type       GradientType
	RadialSize float32
}

// Solid returns a gradient that renders as the single color c.
func Solid(c RGBA) Gradient {
	return Gradient{Start: c, End: c, RadialSize: 1}
}

// IsSolid reports whether both stops are the same color.
func (g Gradient) IsSolid() bool {
	return g.Start == g.End
}
