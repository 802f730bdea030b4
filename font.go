package tess

// TextCharacter is one glyph's placement data inside a font atlas. UVMin and
// UVMax address the glyph's rectangle in the atlas texture, Size and Bearing
// are in unscaled atlas pixels, and Advance is the pen displacement to the
// next glyph.
type TextCharacter struct {
	UVMin   Vec2
	UVMax   Vec2
	Size    Vec2
	Bearing Vec2
	Advance Vec2
}

// Font is a baked glyph atlas plus the metrics text shaping needs. Build one
// with the fontkit package, or fill it by hand when glyph data comes from
// elsewhere.
type Font struct {
	// Texture is the atlas the glyph UVs address.
	Texture TextureHandle

	// Size is the pixel size the atlas was baked at.
	Size int

	// IsSDF marks atlases baked as signed distance fields. SDF fonts must be
	// drawn with DrawTextSDF, plain atlases with DrawText.
	IsSDF bool

	SupportsUnicode bool
	SupportsKerning bool

	// SpaceAdvance is the advance of U+0020, kept separate since space has
	// no atlas rectangle.
	SpaceAdvance float32

	// NewLineHeight is the baseline-to-baseline distance.
	NewLineHeight float32

	Ascent  float32
	Descent float32

	Glyphs map[rune]TextCharacter

	// Kerning maps previous rune to next rune to the adjustment in 1/64
	// pixel units.
	Kerning map[rune]map[rune]float32
}

// Glyph returns the atlas entry for r and whether the font has one.
func (f *Font) Glyph(r rune) (TextCharacter, bool) {
	c, ok := f.Glyphs[r]
	return c, ok
}

// Kern returns the kerning adjustment between prev and next in 1/64 pixel
// units, zero when the pair has none.
func (f *Font) Kern(prev, next rune) float32 {
	if !f.SupportsKerning || f.Kerning == nil {
		return 0
	}
	return f.Kerning[prev][next]
}
