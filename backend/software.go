package backend

import (
	"image"
	"image/draw"
	"math"

	"github.com/gogpu/tess"
)

// Backend name constants.
const (
	// BackendSoftware is the name of the CPU rasterizer backend.
	BackendSoftware = "software"
)

// SoftwareBackend rasterizes draw buffers on the CPU into an image.RGBA. It
// is the reference backend: slow but dependency-free, useful for tests and
// headless rendering.
type SoftwareBackend struct {
	initialized bool
	textures    map[tess.TextureHandle]*image.RGBA
	nextTexture tess.TextureHandle
}

func init() {
	Register(BackendSoftware, func() RenderBackend {
		return NewSoftwareBackend()
	})
}

// NewSoftwareBackend creates a new software rendering backend.
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{
		textures:    make(map[tess.TextureHandle]*image.RGBA),
		nextTexture: 1,
	}
}

// Name returns the backend identifier.
func (b *SoftwareBackend) Name() string { return BackendSoftware }

// Init initializes the backend.
func (b *SoftwareBackend) Init() error {
	b.initialized = true
	return nil
}

// Close releases all backend resources.
func (b *SoftwareBackend) Close() {
	b.textures = make(map[tess.TextureHandle]*image.RGBA)
	b.nextTexture = 1
	b.initialized = false
}

// CreateTexture copies img into backend storage and returns its handle.
func (b *SoftwareBackend) CreateTexture(img image.Image) tess.TextureHandle {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	h := b.nextTexture
	b.nextTexture++
	b.textures[h] = rgba
	return h
}

// Render drains the drawer's frame into target.
func (b *SoftwareBackend) Render(target *image.RGBA, d *tess.Drawer) (tess.FrameStats, error) {
	if !b.initialized {
		return tess.FrameStats{}, ErrNotInitialized
	}
	var err error
	stats := d.Arena().Drain(func(buf *tess.DrawBuffer) {
		if e := b.renderBuffer(target, buf); e != nil && err == nil {
			err = e
		}
	})
	return stats, err
}

func (b *SoftwareBackend) renderBuffer(target *image.RGBA, buf *tess.DrawBuffer) error {
	shade, err := b.shader(buf)
	if err != nil {
		return err
	}

	clip := buf.Clip
	bounds := target.Bounds()
	clipMinX, clipMinY := bounds.Min.X, bounds.Min.Y
	clipMaxX, clipMaxY := bounds.Max.X, bounds.Max.Y
	if !clip.IsZero() {
		clipMinX = maxInt(clipMinX, int(clip.X))
		clipMinY = maxInt(clipMinY, int(clip.Y))
		clipMaxX = minInt(clipMaxX, int(clip.X+clip.W))
		clipMaxY = minInt(clipMaxY, int(clip.Y+clip.H))
	}

	for i := 0; i+2 < len(buf.Indices); i += 3 {
		v0 := buf.Vertices[buf.Indices[i]]
		v1 := buf.Vertices[buf.Indices[i+1]]
		v2 := buf.Vertices[buf.Indices[i+2]]
		rasterTriangle(target, v0, v1, v2, clipMinX, clipMinY, clipMaxX, clipMaxY, shade)
	}
	return nil
}

// shadeFunc computes the color of one interpolated fragment.
type shadeFunc func(uv tess.Vec2, col tess.RGBA) tess.RGBA

func (b *SoftwareBackend) shader(buf *tess.DrawBuffer) (shadeFunc, error) {
	switch buf.Kind {
	case tess.KindGradient:
		g := buf.Gradient
		return func(uv tess.Vec2, _ tess.RGBA) tess.RGBA {
			return sampleGradient(g, uv)
		}, nil

	case tess.KindTextured:
		tex, ok := b.textures[buf.Texture.Handle]
		if !ok {
			return nil, ErrUnknownTexture
		}
		tiling := buf.Texture.Tiling
		offset := buf.Texture.Offset
		return func(uv tess.Vec2, col tess.RGBA) tess.RGBA {
			s := sampleTexture(tex, tess.Vec2{
				X: uv.X*tiling.X + offset.X,
				Y: uv.Y*tiling.Y + offset.Y,
			})
			return mulColor(s, col)
		}, nil

	case tess.KindSimpleText:
		font := buf.Text.Font
		tex, ok := b.textures[font.Texture]
		if !ok {
			return nil, ErrUnknownTexture
		}
		return func(uv tess.Vec2, col tess.RGBA) tess.RGBA {
			col.A *= sampleTexture(tex, uv).A
			return col
		}, nil

	case tess.KindSDFText:
		font := buf.Text.Font
		tex, ok := b.textures[font.Texture]
		if !ok {
			return nil, ErrUnknownTexture
		}
		sdf := buf.Text.SDF
		return func(uv tess.Vec2, col tess.RGBA) tess.RGBA {
			return shadeSDF(sampleTexture(tex, uv).A, col, sdf)
		}, nil

	default:
		return func(_ tess.Vec2, col tess.RGBA) tess.RGBA {
			return col
		}, nil
	}
}

func sampleGradient(g tess.Gradient, uv tess.Vec2) tess.RGBA {
	var t float32
	switch g.Type {
	case tess.GradientHorizontal:
		t = uv.X
	case tess.GradientVertical:
		t = uv.Y
	case tess.GradientRadialCorner:
		t = uv.Length() / g.RadialSize
	default:
		d := tess.Vec2{X: uv.X - 0.5, Y: uv.Y - 0.5}
		t = d.Length() * 2 / g.RadialSize
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return tess.RGBA{
		R: g.Start.R + (g.End.R-g.Start.R)*t,
		G: g.Start.G + (g.End.G-g.Start.G)*t,
		B: g.Start.B + (g.End.B-g.Start.B)*t,
		A: g.Start.A + (g.End.A-g.Start.A)*t,
	}
}

// sampleTexture samples with repeat wrapping and nearest filtering.
func sampleTexture(tex *image.RGBA, uv tess.Vec2) tess.RGBA {
	w := tex.Bounds().Dx()
	h := tex.Bounds().Dy()
	x := int(float64(uv.X)*float64(w)) % w
	y := int(float64(uv.Y)*float64(h)) % h
	if x < 0 {
		x += w
	}
	if y < 0 {
		y += h
	}
	c := tex.RGBAAt(tex.Bounds().Min.X+x, tex.Bounds().Min.Y+y)
	return tess.RGBA{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

func shadeSDF(distance float32, col tess.RGBA, sdf tess.SDFMeta) tess.RGBA {
	softness := sdf.Softness
	if softness <= 0 {
		softness = 0.01
	}
	alpha := smoothstep(sdf.Thickness-softness, sdf.Thickness+softness, distance)
	if sdf.FlipAlpha {
		alpha = 1 - alpha
	}

	out := col
	if sdf.OutlineThickness > 0 {
		edge := sdf.Thickness - sdf.OutlineThickness
		outline := smoothstep(edge-softness, edge+softness, distance)
		if outline > alpha {
			out = sdf.OutlineColor
			alpha = outline
		}
	}
	out.A *= alpha
	return out
}

func smoothstep(lo, hi, x float32) float32 {
	if hi == lo {
		if x < lo {
			return 0
		}
		return 1
	}
	t := (x - lo) / (hi - lo)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

func mulColor(a, b tess.RGBA) tess.RGBA {
	return tess.RGBA{R: a.R * b.R, G: a.G * b.G, B: a.B * b.B, A: a.A * b.A}
}

// rasterTriangle fills one triangle with barycentric interpolation of uv and
// color, blending src-over into target.
func rasterTriangle(target *image.RGBA, v0, v1, v2 tess.Vertex, clipMinX, clipMinY, clipMaxX, clipMaxY int, shade shadeFunc) {
	minX := maxInt(clipMinX, int(math.Floor(float64(min3(v0.Pos.X, v1.Pos.X, v2.Pos.X)))))
	minY := maxInt(clipMinY, int(math.Floor(float64(min3(v0.Pos.Y, v1.Pos.Y, v2.Pos.Y)))))
	maxX := minInt(clipMaxX, int(math.Ceil(float64(max3(v0.Pos.X, v1.Pos.X, v2.Pos.X)))))
	maxY := minInt(clipMaxY, int(math.Ceil(float64(max3(v0.Pos.Y, v1.Pos.Y, v2.Pos.Y)))))
	if minX >= maxX || minY >= maxY {
		return
	}

	area := edge(v0.Pos, v1.Pos, v2.Pos)
	if area == 0 {
		return
	}
	// Extrusion rings wind both ways, so normalize to clockwise.
	if area < 0 {
		v1, v2 = v2, v1
		area = -area
	}

	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			p := tess.Vec2{X: float32(x) + 0.5, Y: float32(y) + 0.5}
			w0 := edge(v1.Pos, v2.Pos, p) / area
			w1 := edge(v2.Pos, v0.Pos, p) / area
			w2 := edge(v0.Pos, v1.Pos, p) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			uv := tess.Vec2{
				X: v0.UV.X*w0 + v1.UV.X*w1 + v2.UV.X*w2,
				Y: v0.UV.Y*w0 + v1.UV.Y*w1 + v2.UV.Y*w2,
			}
			col := tess.RGBA{
				R: v0.Col.R*w0 + v1.Col.R*w1 + v2.Col.R*w2,
				G: v0.Col.G*w0 + v1.Col.G*w1 + v2.Col.G*w2,
				B: v0.Col.B*w0 + v1.Col.B*w1 + v2.Col.B*w2,
				A: v0.Col.A*w0 + v1.Col.A*w1 + v2.Col.A*w2,
			}
			blendPixel(target, x, y, shade(uv, col))
		}
	}
}

// edge is the signed doubled area of the triangle (a, b, c), positive for
// clockwise winding in y-down screen space.
func edge(a, b, c tess.Vec2) float32 {
	return (b.Y-a.Y)*(c.X-a.X) - (b.X-a.X)*(c.Y-a.Y)
}

func blendPixel(target *image.RGBA, x, y int, c tess.RGBA) {
	if c.A <= 0 {
		return
	}
	if c.A > 1 {
		c.A = 1
	}
	dst := target.RGBAAt(x, y)
	inv := 1 - c.A
	dst.R = clampByte(c.R*c.A*255 + float32(dst.R)*inv)
	dst.G = clampByte(c.G*c.A*255 + float32(dst.G)*inv)
	dst.B = clampByte(c.B*c.A*255 + float32(dst.B)*inv)
	dst.A = clampByte(c.A*255 + float32(dst.A)*inv)
	target.SetRGBA(x, y, dst)
}

func clampByte(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func min3(a, b, c float32) float32 {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c float32) float32 {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
