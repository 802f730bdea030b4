package tess

// Vertex is the interleaved vertex format every backend consumes: position
// and UV in screen/texture space, straight-alpha color.
type Vertex struct {
	Pos Vec2
	UV  Vec2
	Col RGBA
}

// BufferKind tells a backend which shader family a DrawBuffer needs.
type BufferKind int

const (
	// KindDefault holds plain vertex-colored geometry.
	KindDefault BufferKind = iota
	// KindGradient holds geometry shaded by a fragment-evaluated gradient.
	KindGradient
	// KindTextured holds geometry sampling a user texture.
	KindTextured
	// KindSimpleText holds alpha-atlas text quads.
	KindSimpleText
	// KindSDFText holds signed-distance-field text quads.
	KindSDFText
)

func (k BufferKind) String() string {
	switch k {
	case KindDefault:
		return "default"
	case KindGradient:
		return "gradient"
	case KindTextured:
		return "textured"
	case KindSimpleText:
		return "simple-text"
	case KindSDFText:
		return "sdf-text"
	default:
		return "unknown"
	}
}

// drawPass splits a draw order into sub-passes so antialiasing fringes of a
// shape render after the shape itself but before anything of a higher order.
type drawPass int

const (
	passShape drawPass = iota
	passAA
)

// TextureHandle identifies a backend texture. Zero means no texture; the
// engine never allocates handles, backends do.
type TextureHandle uint32

// TextureMeta carries the sampling parameters of a KindTextured buffer.
type TextureMeta struct {
	Handle TextureHandle
	Tiling Vec2
	Offset Vec2
	Tint   RGBA
}

// SDFMeta carries the per-buffer SDF shading parameters of a KindSDFText
// buffer.
type SDFMeta struct {
	Softness         float32
	Thickness        float32
	OutlineThickness float32
	OutlineColor     RGBA
	FlipAlpha        bool
}

// TextMeta carries the font binding of a text buffer.
type TextMeta struct {
	Font         *Font
	SDF          SDFMeta
	IsDropShadow bool
}

// DrawBuffer is one batched draw call: a triangle list with the metadata a
// backend needs to shade it. Buffers are owned by a FrameArena and recycled
// every frame.
type DrawBuffer struct {
	Kind      BufferKind
	DrawOrder int
	Clip      Rect
	UserData  uint64

	Vertices []Vertex
	Indices  []Index

	// Meta for the kind; unused fields stay zero.
	Texture  TextureMeta
	Gradient Gradient
	Text     TextMeta

	pass drawPass
	seq  int
}

// PushVertex appends v and returns its buffer-local index.
func (b *DrawBuffer) PushVertex(v Vertex) Index {
	b.Vertices = append(b.Vertices, v)
	return Index(len(b.Vertices) - 1)
}

// PushIndex appends one buffer-local index.
func (b *DrawBuffer) PushIndex(i Index) {
	b.Indices = append(b.Indices, i)
}

// PushTriangle appends three buffer-local indices.
func (b *DrawBuffer) PushTriangle(a, bIdx, c Index) {
	b.Indices = append(b.Indices, a, bIdx, c)
}

func (b *DrawBuffer) reset() {
	b.Vertices = b.Vertices[:0]
	b.Indices = b.Indices[:0]
	b.Texture = TextureMeta{}
	b.Gradient = Gradient{}
	b.Text = TextMeta{}
	b.UserData = 0
	b.Clip = Rect{}
}
