package tess

// Thickness is a line thickness that may taper from Start at the first
// point to End at the last.
type Thickness struct {
	Start float32
	End   float32
}

// Uniform returns a constant thickness.
func Uniform(t float32) Thickness {
	return Thickness{Start: t, End: t}
}

// OutlineDrawDirection controls which side of a shape boundary an outline
// grows towards.
type OutlineDrawDirection int

const (
	// OutlineOutwards extrudes the outline away from the shape.
	OutlineOutwards OutlineDrawDirection = iota
	// OutlineInwards extrudes the outline into the shape.
	OutlineInwards
	// OutlineBoth grows the outline half outwards, half inwards.
	OutlineBoth
)

func (d OutlineDrawDirection) String() string {
	switch d {
	case OutlineOutwards:
		return "outwards"
	case OutlineInwards:
		return "inwards"
	case OutlineBoth:
		return "both"
	default:
		return "unknown"
	}
}

// LineJointType selects how consecutive segments of a polyline connect.
type LineJointType int

const (
	// JointMiter extends both segment edges to their intersection.
	JointMiter LineJointType = iota
	// JointBevel closes the gap between segments with a single triangle.
	JointBevel
	// JointBevelRound closes the gap with an arc fan.
	JointBevelRound
	// JointVtxAverage merges the adjoining segment ends into their midpoint.
	JointVtxAverage
)

func (j LineJointType) String() string {
	switch j {
	case JointMiter:
		return "miter"
	case JointBevel:
		return "bevel"
	case JointBevelRound:
		return "bevel-round"
	case JointVtxAverage:
		return "vtx-average"
	default:
		return "unknown"
	}
}

// LineCapDirection selects which line ends receive a rounded cap.
type LineCapDirection int

const (
	CapNone LineCapDirection = iota
	CapLeft
	CapRight
	CapBoth
)

func (c LineCapDirection) String() string {
	switch c {
	case CapNone:
		return "none"
	case CapLeft:
		return "left"
	case CapRight:
		return "right"
	case CapBoth:
		return "both"
	default:
		return "unknown"
	}
}

// OutlineOptions styles the outline drawn around a shape when Thickness is
// positive.
type OutlineOptions struct {
	Thickness     float32
	Color         Gradient
	Direction     OutlineDrawDirection
	Texture       TextureHandle
	TextureTiling Vec2
	TextureOffset Vec2
}

// StyleOptions styles a shape draw. The zero value is unusable; start from
// DefaultStyle.
type StyleOptions struct {
	// Color fills the shape, or strokes it when IsFilled is false.
	Color Gradient

	// Thickness applies to non-filled shapes and to lines.
	Thickness Thickness

	IsFilled bool

	// Rounding in [0, 1] rounds shape corners; 0 keeps them sharp. For
	// lines it shapes cap and joint arcs.
	Rounding float32

	// OnlyRoundCorners limits rounding to the listed corner indices,
	// counted clockwise from the top-left.
	OnlyRoundCorners []int

	// Texture, when nonzero, fills the shape from a texture instead of
	// Color.
	Texture       TextureHandle
	TextureTiling Vec2
	TextureOffset Vec2

	Outline OutlineOptions

	AAEnabled    bool
	AAMultiplier float32

	// UserData is stamped onto the buffers this draw lands in, splitting
	// batches that must not merge.
	UserData uint64
}

// DefaultStyle returns a filled, solid white style with antialiasing scale 1.
func DefaultStyle() StyleOptions {
	return StyleOptions{
		Color:         Solid(White),
		Thickness:     Uniform(1),
		IsFilled:      true,
		AAMultiplier:  1,
		TextureTiling: Vec2{X: 1, Y: 1},
	}
}

// DeriveOutlineStyle returns base with its outline synthesized from the fill
// settings, growing towards dir. It is pure: base is not modified.
func DeriveOutlineStyle(base StyleOptions, dir OutlineDrawDirection) StyleOptions {
	s := base
	s.Outline = OutlineOptions{
		Color:         base.Color,
		Direction:     dir,
		Texture:       base.Texture,
		TextureTiling: base.TextureTiling,
		TextureOffset: base.TextureOffset,
	}
	return s
}

// DeriveAAStyle returns the style used for the antialias fringe of base.
// It is pure: base is not modified.
func DeriveAAStyle(base StyleOptions) StyleOptions {
	return DeriveOutlineStyle(base, OutlineBoth)
}
