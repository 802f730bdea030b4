package fontkit

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/tess"
)

// ErrNoGlyphs is returned when none of the requested runes exist in the font.
var ErrNoGlyphs = errors.New("fontkit: font contains none of the requested runes")

type config struct {
	runes      []rune
	atlasWidth int
	padding    int
	sdfSpread  int
	kerning    bool
}

// Option configures Load.
type Option func(*config)

// WithRunes sets the runes baked into the atlas. The default is printable
// ASCII.
func WithRunes(runes []rune) Option {
	return func(c *config) { c.runes = runes }
}

// WithRuneRange bakes the inclusive range [lo, hi] in addition to runes
// already configured.
func WithRuneRange(lo, hi rune) Option {
	return func(c *config) {
		for r := lo; r <= hi; r++ {
			c.runes = append(c.runes, r)
		}
	}
}

// WithAtlasWidth sets the atlas texture width in pixels. Height grows with
// content. The default is 1024.
func WithAtlasWidth(w int) Option {
	return func(c *config) { c.atlasWidth = w }
}

// WithPadding sets the pixel gap between packed glyphs. The default is 2.
func WithPadding(p int) Option {
	return func(c *config) { c.padding = p }
}

// WithSDF bakes the atlas as a signed distance field with the given spread in
// pixels. SDF fonts must be drawn with DrawTextSDF.
func WithSDF(spread int) Option {
	return func(c *config) { c.sdfSpread = spread }
}

// WithKerning extracts pair kerning by shaping rune pairs through HarfBuzz.
// Off by default since it grows load time quadratically in the rune count.
func WithKerning() Option {
	return func(c *config) { c.kerning = true }
}

// Atlas is the result of baking a font: the alpha atlas image and the font
// metadata addressing it. Font.Texture is zero until the caller uploads the
// image and records the handle.
type Atlas struct {
	Font  *tess.Font
	Image *image.Alpha
}

func asciiRunes() []rune {
	runes := make([]rune, 0, 95)
	for r := rune(32); r <= 126; r++ {
		runes = append(runes, r)
	}
	return runes
}

// Load parses font data and bakes the configured runes at sizePx pixels per
// em into an alpha atlas.
func Load(data []byte, sizePx int, opts ...Option) (*Atlas, error) {
	cfg := config{atlasWidth: 1024, padding: 2}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.runes == nil {
		cfg.runes = asciiRunes()
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontkit: parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(sizePx),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("fontkit: create face: %w", err)
	}
	defer face.Close()

	type baked struct {
		r    rune
		mask *image.Alpha
		char tess.TextCharacter
	}

	var glyphs []baked
	var sfntBuf sfnt.Buffer
	unicode := false
	for _, r := range cfg.runes {
		if r > 127 {
			unicode = true
		}
		// GlyphBounds falls back to the notdef box for unmapped runes, so
		// check the cmap first.
		if gi, err := parsed.GlyphIndex(&sfntBuf, r); err != nil || gi == 0 {
			continue
		}
		bounds, advance, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}

		char := tess.TextCharacter{
			Bearing: tess.Vec2{
				X: fixedToFloat(bounds.Min.X),
				Y: -fixedToFloat(bounds.Min.Y),
			},
			Advance: tess.Vec2{X: fixedToFloat(advance)},
		}

		mask := rasterizeGlyph(face, r, bounds)
		if mask != nil && cfg.sdfSpread > 0 {
			mask = distanceField(mask, cfg.sdfSpread)
			char.Bearing.X -= float32(cfg.sdfSpread)
			char.Bearing.Y += float32(cfg.sdfSpread)
		}
		if mask != nil {
			char.Size = tess.Vec2{
				X: float32(mask.Rect.Dx()),
				Y: float32(mask.Rect.Dy()),
			}
		}
		glyphs = append(glyphs, baked{r: r, mask: mask, char: char})
	}
	if len(glyphs) == 0 {
		return nil, ErrNoGlyphs
	}

	// Pack first to learn the atlas height, then compose.
	packer := newShelfPacker(cfg.atlasWidth, cfg.padding)
	type placed struct {
		baked
		x, y int
	}
	placements := make([]placed, 0, len(glyphs))
	for _, g := range glyphs {
		p := placed{baked: g}
		if g.mask != nil {
			p.x, p.y, err = packer.place(g.mask.Rect.Dx(), g.mask.Rect.Dy())
			if err != nil {
				return nil, err
			}
		}
		placements = append(placements, p)
	}

	atlasH := packer.height()
	atlas := image.NewAlpha(image.Rect(0, 0, cfg.atlasWidth, atlasH))
	fw := float32(cfg.atlasWidth)
	fh := float32(atlasH)

	metrics := face.Metrics()
	f := &tess.Font{
		Size:            sizePx,
		IsSDF:           cfg.sdfSpread > 0,
		SupportsUnicode: unicode,
		SpaceAdvance:    spaceAdvance(face),
		NewLineHeight:   fixedToFloat(metrics.Height),
		Ascent:          fixedToFloat(metrics.Ascent),
		Descent:         fixedToFloat(metrics.Descent),
		Glyphs:          make(map[rune]tess.TextCharacter, len(placements)),
	}

	for _, p := range placements {
		char := p.char
		if p.mask != nil {
			w, h := p.mask.Rect.Dx(), p.mask.Rect.Dy()
			dst := image.Rect(p.x, p.y, p.x+w, p.y+h)
			draw.Draw(atlas, dst, p.mask, p.mask.Rect.Min, draw.Src)
			char.UVMin = tess.Vec2{X: float32(p.x) / fw, Y: float32(p.y) / fh}
			char.UVMax = tess.Vec2{X: float32(p.x+w) / fw, Y: float32(p.y+h) / fh}
		}
		f.Glyphs[p.r] = char
	}

	if cfg.kerning {
		f.Kerning = extractKerning(data, cfg.runes, float64(sizePx))
		f.SupportsKerning = len(f.Kerning) > 0
	}

	return &Atlas{Font: f, Image: atlas}, nil
}

// rasterizeGlyph draws one glyph into a tight alpha mask, origin shifted so
// the bounds' top-left lands on (0,0). Returns nil for empty glyphs such as
// space.
func rasterizeGlyph(face font.Face, r rune, bounds fixed.Rectangle26_6) *image.Alpha {
	minX := bounds.Min.X.Floor()
	minY := bounds.Min.Y.Floor()
	maxX := bounds.Max.X.Ceil()
	maxY := bounds.Max.Y.Ceil()
	if maxX <= minX || maxY <= minY {
		return nil
	}

	mask := image.NewAlpha(image.Rect(0, 0, maxX-minX, maxY-minY))
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.White,
		Face: face,
		Dot: fixed.Point26_6{
			X: -bounds.Min.X,
			Y: -bounds.Min.Y,
		},
	}
	d.DrawString(string(r))
	return mask
}

func spaceAdvance(face font.Face) float32 {
	adv, ok := face.GlyphAdvance(' ')
	if !ok {
		return 0
	}
	return fixedToFloat(adv)
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
