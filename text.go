package tess

import (
	"hash/fnv"

	"github.com/chewxy/math32"
	lru "github.com/hashicorp/golang-lru/v2"
)

// TextAlignment positions each line of text relative to the draw position.
type TextAlignment uint8

const (
	AlignLeft TextAlignment = iota
	AlignCenter
	AlignRight
)

func (a TextAlignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// TextOptions controls text shaping and coloring. The zero value is not
// usable; start from DefaultTextOptions.
type TextOptions struct {
	Font *Font

	// Color gradients interpolate across the whole run: horizontal per
	// character, vertical per glyph quad. Radial gradients are not
	// supported for text and fall back to vertical.
	Color Gradient

	Scale   float32
	Spacing float32

	// WrapWidth of 0 disables wrapping.
	WrapWidth float32

	// WordWrap breaks lines at word boundaries. When false lines break at
	// the first overflowing character.
	WordWrap bool

	NewLineSpacing float32
	Alignment      TextAlignment

	// CPUClip drops whole glyph quads whose corners fall outside the rect.
	// Zero rect disables it.
	CPUClip Rect

	DropShadowOffset Vec2
	DropShadowColor  RGBA

	// SkipCache bypasses the glyph run cache for this call.
	SkipCache bool

	UserData uint64
}

// DefaultTextOptions returns TextOptions with scale 1 and solid white color.
func DefaultTextOptions(font *Font) TextOptions {
	return TextOptions{
		Font:            font,
		Color:           Solid(White),
		Scale:           1,
		DropShadowColor: Black,
	}
}

// SDFTextOptions extends TextOptions with signed-distance-field shading
// parameters, consumed by the renderer per buffer.
type SDFTextOptions struct {
	TextOptions

	// Thickness is the distance-field threshold, 0.5 renders the glyph at
	// its nominal weight.
	Thickness float32
	Softness  float32

	OutlineThickness float32
	OutlineColor     RGBA
	FlipAlpha        bool

	DropShadowThickness float32
	DropShadowSoftness  float32
}

// DefaultSDFTextOptions returns SDFTextOptions at nominal glyph weight.
func DefaultSDFTextOptions(font *Font) SDFTextOptions {
	return SDFTextOptions{
		TextOptions:         DefaultTextOptions(font),
		Thickness:           0.5,
		Softness:            0.02,
		DropShadowThickness: 0.6,
		DropShadowSoftness:  0.02,
	}
}

func (o SDFTextOptions) meta() SDFMeta {
	return SDFMeta{
		Softness:         o.Softness,
		Thickness:        o.Thickness,
		OutlineThickness: o.OutlineThickness,
		OutlineColor:     o.OutlineColor,
		FlipAlpha:        o.FlipAlpha,
	}
}

// CharacterInfo reports the placed rectangle of one character, including
// characters whose glyphs produced no geometry.
type CharacterInfo struct {
	X, Y         float32
	SizeX, SizeY float32
}

// LineInfo reports one wrapped line's pen position and its character span
// inside CharacterInfo.
type LineInfo struct {
	StartCharIndex int
	EndCharIndex   int
	PosX, PosY     float32
}

// TextOutData receives per-character and per-line placement data when passed
// to DrawText or DrawTextSDF.
type TextOutData struct {
	Characters []CharacterInfo
	Lines      []LineInfo
}

type textCacheKey struct {
	text           uint64
	font           *Font
	scale          float32
	spacing        float32
	wrapWidth      float32
	newLineSpacing float32
	wordWrap       bool
	align          TextAlignment
	rotate         float32
	color          Gradient
	sdf            SDFMeta
}

type cachedGlyphRun struct {
	verts []Vertex
	inds  []Index
}

func hashText(text string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(text))
	return h.Sum64()
}

func glyphFor(font *Font, r rune) TextCharacter {
	if c, ok := font.Glyphs[r]; ok {
		return c
	}
	if r == ' ' {
		return TextCharacter{Advance: Vec2{X: font.SpaceAdvance}}
	}
	return TextCharacter{}
}

// DrawText renders text with a plain glyph atlas font at position. The
// position is the baseline start of the first line.
func (d *Drawer) DrawText(text string, position Vec2, opts TextOptions, rotate float32, order int, out *TextOutData) error {
	if text == "" {
		return nil
	}
	if opts.Font == nil {
		return ErrNilFont
	}
	if opts.Font.IsSDF {
		return ErrSDFFont
	}

	h := d.arena.SimpleTextBuffer(opts.Font, order, opts.UserData, false)
	d.drawTextCached(h, d.arena.textCache, text, position, opts, rotate, out)

	if !isZero(opts.DropShadowOffset.X) || !isZero(opts.DropShadowOffset.Y) {
		ds := d.arena.SimpleTextBuffer(opts.Font, order, opts.UserData, true)
		shadow := opts
		shadow.Color = Solid(opts.DropShadowColor)
		offset := opts.DropShadowOffset.Mul(d.cfg.framebufferScale)
		d.processText(d.arena.Buffer(ds), text, position, offset, shadow, rotate, nil)
	}
	return nil
}

// DrawTextSDF renders text with a signed-distance-field font at position.
func (d *Drawer) DrawTextSDF(text string, position Vec2, opts SDFTextOptions, rotate float32, order int, out *TextOutData) error {
	if text == "" {
		return nil
	}
	if opts.Font == nil {
		return ErrNilFont
	}
	if !opts.Font.IsSDF {
		return ErrNotSDFFont
	}

	h := d.arena.SDFTextBuffer(opts.Font, opts.meta(), order, opts.UserData, false)
	d.drawTextCached(h, d.arena.sdfTextCache, text, position, opts.TextOptions, rotate, out)

	if !isZero(opts.DropShadowOffset.X) || !isZero(opts.DropShadowOffset.Y) {
		shadowSDF := opts
		shadowSDF.Thickness = opts.DropShadowThickness
		shadowSDF.Softness = opts.DropShadowSoftness
		ds := d.arena.SDFTextBuffer(opts.Font, shadowSDF.meta(), order, opts.UserData, true)
		shadow := opts.TextOptions
		shadow.Color = Solid(opts.DropShadowColor)
		offset := opts.DropShadowOffset.Mul(d.cfg.framebufferScale)
		d.processText(d.arena.Buffer(ds), text, position, offset, shadow, rotate, nil)
	}
	return nil
}

// drawTextCached shapes a run through the glyph run cache when one is
// configured: cache entries hold geometry shaped at the origin, translated to
// the draw position on replay. The sdf key component distinguishes SDF runs
// sharing text and style. Calls wanting placement data bypass the cache since
// replayed runs carry no per-character info; clipped calls bypass it because
// the clip rect tests final positions, not origin-shaped ones.
func (d *Drawer) drawTextCached(h BufferHandle, cache *lru.Cache[textCacheKey, cachedGlyphRun], text string, position Vec2, opts TextOptions, rotate float32, out *TextOutData) {
	buf := d.arena.Buffer(h)
	if cache == nil || opts.SkipCache || out != nil || !opts.CPUClip.IsZero() {
		d.processText(buf, text, position, Vec2{}, opts, rotate, out)
		return
	}

	key := textCacheKey{
		text:           hashText(text),
		font:           opts.Font,
		scale:          opts.Scale,
		spacing:        opts.Spacing,
		wrapWidth:      opts.WrapWidth,
		newLineSpacing: opts.NewLineSpacing,
		wordWrap:       opts.WordWrap,
		align:          opts.Alignment,
		rotate:         rotate,
		color:          opts.Color,
	}
	if buf.Kind == KindSDFText {
		key.sdf = buf.Text.SDF
	}

	vtxStart := len(buf.Vertices)
	if run, ok := cache.Get(key); ok {
		base := Index(vtxStart)
		for _, v := range run.verts {
			buf.PushVertex(v)
		}
		for _, i := range run.inds {
			buf.PushIndex(base + i)
		}
	} else {
		idxStart := len(buf.Indices)
		d.processText(buf, text, Vec2{}, Vec2{}, opts, rotate, nil)

		run := cachedGlyphRun{
			verts: append([]Vertex(nil), buf.Vertices[vtxStart:]...),
			inds:  make([]Index, 0, len(buf.Indices)-idxStart),
		}
		for _, i := range buf.Indices[idxStart:] {
			run.inds = append(run.inds, i-Index(vtxStart))
		}
		cache.Add(key, run)
	}

	dx := customRound(position.X)
	dy := customRound(position.Y)
	for i := vtxStart; i < len(buf.Vertices); i++ {
		buf.Vertices[i].Pos.X += dx
		buf.Vertices[i].Pos.Y += dy
	}
}

// processText shapes the whole run: unwrapped runs draw as a single aligned
// line, wrapped runs are broken first and the pen pre-offset upward so the
// final line lands on the requested baseline.
func (d *Drawer) processText(buf *DrawBuffer, text string, pos, offset Vec2, opts TextOptions, rotate float32, out *TextOutData) {
	font := opts.Font
	bufStart := len(buf.Vertices)
	size := calcTextSize(text, font, opts.Scale, opts.Spacing)
	usedPos := pos
	isGradient := !opts.Color.IsSolid()

	if isZero(opts.WrapWidth) || size.X < opts.WrapWidth {
		switch opts.Alignment {
		case AlignCenter:
			usedPos.X -= size.X / 2
		case AlignRight:
			usedPos.X -= size.X
		}
		d.drawTextRun(buf, font, text, usedPos, offset, opts.Color, opts.Spacing, isGradient, opts.Scale, opts.CPUClip, out)
	} else {
		lines := wrapText(font, text, opts.Spacing, opts.Scale, opts.WrapWidth, opts.WordWrap)

		for i := 0; i < len(lines)-1; i++ {
			usedPos.Y -= font.NewLineHeight*opts.Scale + opts.NewLineSpacing
		}

		for _, line := range lines {
			if out != nil {
				out.Lines = append(out.Lines, LineInfo{
					StartCharIndex: len(out.Characters),
					PosX:           usedPos.X,
					PosY:           usedPos.Y,
				})
			}

			switch opts.Alignment {
			case AlignCenter:
				usedPos.X = pos.X - line.size.X/2
			case AlignRight:
				usedPos.X = pos.X - line.size.X
			}

			d.drawTextRun(buf, font, line.str, usedPos, offset, opts.Color, opts.Spacing, isGradient, opts.Scale, opts.CPUClip, out)
			usedPos.Y += font.NewLineHeight*opts.Scale + opts.NewLineSpacing

			if out != nil {
				out.Lines[len(out.Lines)-1].EndCharIndex = len(out.Characters) - 1
			}
		}
	}

	if !isZero(rotate) {
		center := verticesCenter(buf, bufStart, len(buf.Vertices)-1)
		rotateVertices(buf.Vertices, center, bufStart, len(buf.Vertices)-1, rotate)
	}
}

// drawTextRun emits one quad per glyph along the baseline starting at
// position. Horizontal gradients advance per character so each quad spans its
// slice of the run; vertical gradients color top and bottom edges.
func (d *Drawer) drawTextRun(buf *DrawBuffer, font *Font, text string, position, offset Vec2, color Gradient, spacing float32, isGradient bool, scale float32, clip Rect, out *TextOutData) {
	runes := []rune(text)
	totalChars := len(runes)
	lastMinGrad := color.Start
	pos := Vec2{X: customRound(position.X), Y: customRound(position.Y)}
	charCount := 0
	var prev rune

	for _, r := range runes {
		ch := glyphFor(font, r)
		start := Index(len(buf.Vertices))

		var kerning float32
		if prev != 0 {
			kerning = font.Kern(prev, r) / 64
		}
		prev = r

		ytop := pos.Y - ch.Bearing.Y*scale
		ybot := pos.Y + (ch.Size.Y-ch.Bearing.Y)*scale
		x2 := pos.X + (kerning+ch.Bearing.X)*scale
		w := ch.Size.X * scale
		glyphH := ch.Size.Y * scale

		pos.X += (kerning+ch.Advance.X)*scale + spacing
		pos.Y += ch.Advance.Y * scale

		var v0, v1, v2, v3 Vertex
		if isGradient {
			if color.Type == GradientHorizontal {
				maxT := float32(charCount+1) / float32(totalChars)
				currentMin := lastMinGrad
				currentMax := lerpColor(color.Start, color.End, maxT)
				lastMinGrad = currentMax
				v0.Col, v3.Col = currentMin, currentMin
				v1.Col, v2.Col = currentMax, currentMax
			} else {
				// Radial gradients are not supported for text, vertical is
				// the fallback.
				v0.Col, v1.Col = color.Start, color.Start
				v2.Col, v3.Col = color.End, color.End
			}
		} else {
			v0.Col, v1.Col, v2.Col, v3.Col = color.Start, color.Start, color.Start, color.Start
		}

		v0.Pos = Vec2{X: x2 + offset.X, Y: ytop + offset.Y}
		v1.Pos = Vec2{X: x2 + offset.X + w, Y: ytop + offset.Y}
		v2.Pos = Vec2{X: x2 + offset.X + w, Y: ybot + offset.Y}
		v3.Pos = Vec2{X: x2 + offset.X, Y: ybot + offset.Y}

		if !clip.IsZero() {
			if !clip.Contains(v0.Pos) || !clip.Contains(v1.Pos) ||
				!clip.Contains(v2.Pos) || !clip.Contains(v3.Pos) {
				continue
			}
		}

		v0.UV = ch.UVMin
		v1.UV = Vec2{X: ch.UVMax.X, Y: ch.UVMin.Y}
		v2.UV = ch.UVMax
		v3.UV = Vec2{X: ch.UVMin.X, Y: ch.UVMax.Y}

		if out != nil {
			info := CharacterInfo{
				X:     v0.Pos.X,
				Y:     v3.Pos.Y,
				SizeX: w,
				SizeY: ybot - ytop,
			}
			if isZero(w) {
				info.SizeX = (kerning + ch.Advance.X) * scale
			}
			out.Characters = append(out.Characters, info)
		}

		if isZero(w) || isZero(glyphH) {
			continue
		}

		buf.PushVertex(v0)
		buf.PushVertex(v1)
		buf.PushVertex(v2)
		buf.PushVertex(v3)
		buf.PushTriangle(start, start+1, start+3)
		buf.PushTriangle(start+1, start+2, start+3)
		charCount++
	}
}

// TextSize measures text with the given options, honoring wrapping.
func (d *Drawer) TextSize(text string, opts TextOptions) Vec2 {
	if opts.Font == nil {
		return Vec2{}
	}
	if isEqualMarg(opts.WrapWidth, 0) {
		return calcTextSize(text, opts.Font, opts.Scale, opts.Spacing)
	}
	return calcTextSizeWrapped(text, opts.Font, opts.NewLineSpacing, opts.WrapWidth, opts.Scale, opts.Spacing, opts.WordWrap)
}

// calcTextSize returns the unwrapped run size: summed advances for width,
// tallest bearing for height.
func calcTextSize(text string, font *Font, scale, spacing float32) Vec2 {
	var width, height float32
	for _, r := range text {
		ch := glyphFor(font, r)
		width += ch.Advance.X*scale + spacing
		height = math32.Max(height, ch.Bearing.Y*scale)
	}
	return Vec2{X: width, Y: height}
}

func calcTextSizeWrapped(text string, font *Font, newLineSpacing, wrapWidth, scale, spacing float32, wordWrap bool) Vec2 {
	lines := wrapText(font, text, spacing, scale, wrapWidth, wordWrap)
	if len(lines) == 1 {
		return lines[0].size
	}

	var size Vec2
	for i, line := range lines {
		size.X = math32.Max(line.size.X, size.X)
		if i < len(lines)-1 {
			size.Y += font.NewLineHeight*scale + newLineSpacing
		} else {
			size.Y += line.size.Y
		}
	}
	return size
}

type textPart struct {
	str  string
	size Vec2
}

// wrapText breaks text into lines not exceeding wrapWidth. Word mode keeps
// words intact and breaks at spaces; character mode breaks at the first glyph
// that would overflow.
func wrapText(font *Font, text string, spacing, scale, wrapWidth float32, wordWrap bool) []textPart {
	var lines []textPart
	var line, word textPart
	spaceAdvance := font.SpaceAdvance*scale + spacing

	for _, r := range text {
		ch := glyphFor(font, r)

		if !wordWrap {
			if line.size.X+ch.Size.X*scale > wrapWidth {
				lines = append(lines, line)
				line = textPart{}
			}
			line.str += string(r)
			line.size.X += ch.Advance.X * scale
			line.size.Y = math32.Max(ch.Size.Y*scale, line.size.Y)
			continue
		}

		if r != ' ' {
			word.str += string(r)
			word.size.X += ch.Advance.X * scale
			word.size.Y = math32.Max(word.size.Y, ch.Size.Y*scale)
			continue
		}

		// The pending word would overflow the line, so the line is done.
		if line.str != "" && line.size.X+word.size.X > wrapWidth {
			lines = append(lines, line)
			line = textPart{}
		}

		line.str += word.str + " "
		line.size.X += word.size.X + spaceAdvance
		line.size.Y = math32.Max(line.size.Y, word.size.Y)
		word = textPart{}
	}

	if wordWrap && word.str != "" {
		if line.str != "" && line.size.X+word.size.X > wrapWidth {
			lines = append(lines, line)
			line = word
		} else {
			line.str += word.str
			line.size.X += word.size.X
			line.size.Y = math32.Max(line.size.Y, word.size.Y)
		}
	}

	if line.str != "" {
		lines = append(lines, line)
	}
	return lines
}
