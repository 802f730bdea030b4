package tess

import "testing"

// testFont builds a font with uniform glyph metrics so measurements are easy
// to predict: every glyph advances 10 with an 8x10 bitmap.
func testFont() *Font {
	f := &Font{
		Size:          10,
		SpaceAdvance:  10,
		NewLineHeight: 12,
		Glyphs:        map[rune]TextCharacter{},
	}
	for r := 'a'; r <= 'z'; r++ {
		f.Glyphs[r] = TextCharacter{
			UVMin:   V2(0, 0),
			UVMax:   V2(0.1, 0.1),
			Size:    V2(8, 10),
			Bearing: V2(1, 10),
			Advance: V2(10, 0),
		}
	}
	return f
}

// TestDrawTextErrors tests the font guards of both text entry points.
func TestDrawTextErrors(t *testing.T) {
	d := NewDrawer()
	d.BeginFrame()

	opts := DefaultTextOptions(nil)
	if err := d.DrawText("hi", V2(0, 0), opts, 0, 0, nil); err != ErrNilFont {
		t.Errorf("DrawText(nil font) = %v, want ErrNilFont", err)
	}

	sdfFont := testFont()
	sdfFont.IsSDF = true
	opts.Font = sdfFont
	if err := d.DrawText("hi", V2(0, 0), opts, 0, 0, nil); err != ErrSDFFont {
		t.Errorf("DrawText(SDF font) = %v, want ErrSDFFont", err)
	}

	sdfOpts := DefaultSDFTextOptions(testFont())
	if err := d.DrawTextSDF("hi", V2(0, 0), sdfOpts, 0, 0, nil); err != ErrNotSDFFont {
		t.Errorf("DrawTextSDF(plain font) = %v, want ErrNotSDFFont", err)
	}

	opts = DefaultTextOptions(testFont())
	if err := d.DrawText("", V2(0, 0), opts, 0, 0, nil); err != nil {
		t.Errorf("DrawText(empty) = %v, want nil", err)
	}
}

// TestDrawTextQuads tests one quad per glyph in the simple text buffer.
func TestDrawTextQuads(t *testing.T) {
	d := NewDrawer()
	d.BeginFrame()
	opts := DefaultTextOptions(testFont())
	if err := d.DrawText("ab", V2(50, 50), opts, 0, 0, nil); err != nil {
		t.Fatalf("DrawText() = %v, want nil", err)
	}

	buf := singleBuffer(t, d)
	if buf.Kind != KindSimpleText {
		t.Errorf("buffer kind = %v, want simple-text", buf.Kind)
	}
	if len(buf.Vertices) != 8 {
		t.Errorf("vertex count = %d, want 8", len(buf.Vertices))
	}
	if len(buf.Indices) != 12 {
		t.Errorf("index count = %d, want 12", len(buf.Indices))
	}

	// First glyph's top-left sits at position plus bearing, up by the
	// bearing height.
	if got := buf.Vertices[0].Pos; !vecApproxEq(got, V2(51, 40), 1e-4) {
		t.Errorf("first glyph top-left = %v, want %v", got, V2(51, 40))
	}
	// Second glyph starts one advance further.
	if got := buf.Vertices[4].Pos; !vecApproxEq(got, V2(61, 40), 1e-4) {
		t.Errorf("second glyph top-left = %v, want %v", got, V2(61, 40))
	}
}

// TestDrawTextHorizontalGradient tests per-character gradient advancement.
func TestDrawTextHorizontalGradient(t *testing.T) {
	d := NewDrawer()
	d.BeginFrame()
	opts := DefaultTextOptions(testFont())
	opts.Color = Gradient{Start: Black, End: White, Type: GradientHorizontal}
	if err := d.DrawText("ab", V2(0, 0), opts, 0, 0, nil); err != nil {
		t.Fatalf("DrawText() = %v, want nil", err)
	}

	buf := singleBuffer(t, d)
	gray := lerpColor(Black, White, 0.5)
	if buf.Vertices[0].Col != Black {
		t.Errorf("first glyph left color = %v, want %v", buf.Vertices[0].Col, Black)
	}
	if buf.Vertices[1].Col != gray {
		t.Errorf("first glyph right color = %v, want %v", buf.Vertices[1].Col, gray)
	}
	if buf.Vertices[4].Col != gray {
		t.Errorf("second glyph left color = %v, want %v", buf.Vertices[4].Col, gray)
	}
	if buf.Vertices[5].Col != White {
		t.Errorf("second glyph right color = %v, want %v", buf.Vertices[5].Col, White)
	}
}

// TestDrawTextCacheReplay tests that a cached run replays as a pure
// translation of the first draw.
func TestDrawTextCacheReplay(t *testing.T) {
	d := NewDrawer()
	d.BeginFrame()
	opts := DefaultTextOptions(testFont())

	if err := d.DrawText("hello", V2(10, 20), opts, 0, 0, nil); err != nil {
		t.Fatalf("DrawText() = %v, want nil", err)
	}
	buf := singleBuffer(t, d)
	n := len(buf.Vertices)

	if err := d.DrawText("hello", V2(110, 20), opts, 0, 0, nil); err != nil {
		t.Fatalf("DrawText() = %v, want nil", err)
	}
	if len(buf.Vertices) != 2*n {
		t.Fatalf("vertex count after replay = %d, want %d", len(buf.Vertices), 2*n)
	}
	for i := 0; i < n; i++ {
		want := buf.Vertices[i].Pos.Add(V2(100, 0))
		if got := buf.Vertices[n+i].Pos; !vecApproxEq(got, want, 1e-4) {
			t.Errorf("replayed vertex %d = %v, want %v", i, got, want)
		}
		if buf.Vertices[n+i].UV != buf.Vertices[i].UV {
			t.Errorf("replayed vertex %d UV changed", i)
		}
	}
}

// TestDrawTextCacheWrapWidth tests that the shaping cache keys on wrap
// width: the same string drawn wrapped and unwrapped must be shaped twice,
// never replayed from the other's entry.
func TestDrawTextCacheWrapWidth(t *testing.T) {
	d := NewDrawer()
	d.BeginFrame()

	opts := DefaultTextOptions(testFont())
	opts.WrapWidth = 25
	opts.WordWrap = true
	if err := d.DrawText("aa bb", V2(10, 100), opts, 0, 0, nil); err != nil {
		t.Fatalf("DrawText() = %v, want nil", err)
	}
	buf := singleBuffer(t, d)
	n := len(buf.Vertices)

	opts.WrapWidth = 0
	if err := d.DrawText("aa bb", V2(10, 100), opts, 0, 0, nil); err != nil {
		t.Fatalf("DrawText() = %v, want nil", err)
	}
	if len(buf.Vertices) != 2*n {
		t.Fatalf("vertex count = %d, want %d", len(buf.Vertices), 2*n)
	}

	maxX := func(verts []Vertex) float32 {
		m := verts[0].Pos.X
		for _, v := range verts {
			if v.Pos.X > m {
				m = v.Pos.X
			}
		}
		return m
	}
	// Wrapped, "bb" sits on a second line under "aa"; unwrapped it extends
	// the single line well past the wrapped extent.
	if got := maxX(buf.Vertices[:n]); got >= 35 {
		t.Errorf("wrapped max X = %v, want < 35", got)
	}
	if got := maxX(buf.Vertices[n:]); got < 35 {
		t.Errorf("unwrapped max X = %v, want >= 35 (stale wrapped geometry replayed)", got)
	}
}

// TestDrawTextSkipCache tests that SkipCache produces the same geometry as a
// cached draw.
func TestDrawTextSkipCache(t *testing.T) {
	opts := DefaultTextOptions(testFont())

	d1 := NewDrawer()
	d1.BeginFrame()
	if err := d1.DrawText("abc", V2(30, 40), opts, 0, 0, nil); err != nil {
		t.Fatalf("DrawText() = %v, want nil", err)
	}
	cached := singleBuffer(t, d1)

	opts.SkipCache = true
	d2 := NewDrawer()
	d2.BeginFrame()
	if err := d2.DrawText("abc", V2(30, 40), opts, 0, 0, nil); err != nil {
		t.Fatalf("DrawText() = %v, want nil", err)
	}
	direct := singleBuffer(t, d2)

	if len(cached.Vertices) != len(direct.Vertices) {
		t.Fatalf("vertex counts = %d and %d, want equal", len(cached.Vertices), len(direct.Vertices))
	}
	for i := range cached.Vertices {
		if !vecApproxEq(cached.Vertices[i].Pos, direct.Vertices[i].Pos, 1e-4) {
			t.Errorf("vertex %d = %v and %v, want equal", i, cached.Vertices[i].Pos, direct.Vertices[i].Pos)
		}
	}
}

// TestDrawTextClip tests CPU clipping of whole glyph quads.
func TestDrawTextClip(t *testing.T) {
	d := NewDrawer()
	d.BeginFrame()
	opts := DefaultTextOptions(testFont())
	opts.CPUClip = Rect{X: -1000, Y: -1000, W: 10, H: 10}
	if err := d.DrawText("abc", V2(0, 0), opts, 0, 0, nil); err != nil {
		t.Fatalf("DrawText() = %v, want nil", err)
	}

	var drained int
	d.Arena().Drain(func(*DrawBuffer) { drained++ })
	if drained != 0 {
		t.Errorf("drained buffers = %d, want 0 (all quads clipped)", drained)
	}
}

// TestDrawTextOutData tests per-character placement reporting, including
// characters that produce no geometry.
func TestDrawTextOutData(t *testing.T) {
	d := NewDrawer()
	d.BeginFrame()
	opts := DefaultTextOptions(testFont())
	var out TextOutData
	if err := d.DrawText("a b", V2(0, 0), opts, 0, 0, &out); err != nil {
		t.Fatalf("DrawText() = %v, want nil", err)
	}

	if len(out.Characters) != 3 {
		t.Fatalf("character count = %d, want 3", len(out.Characters))
	}
	// The space has no glyph bitmap; its reported size falls back to the
	// advance.
	if got := out.Characters[1].SizeX; !approxEq(got, 10, 1e-4) {
		t.Errorf("space SizeX = %v, want 10", got)
	}
	// Only the two visible glyphs produce quads.
	buf := singleBuffer(t, d)
	if len(buf.Vertices) != 8 {
		t.Errorf("vertex count = %d, want 8", len(buf.Vertices))
	}
}

// TestDrawTextDropShadow tests that an offset shadow lands in its own buffer
// with the shadow color.
func TestDrawTextDropShadow(t *testing.T) {
	d := NewDrawer()
	d.BeginFrame()
	opts := DefaultTextOptions(testFont())
	opts.Color = Solid(White)
	opts.DropShadowOffset = V2(2, 2)
	opts.DropShadowColor = Red
	if err := d.DrawText("ab", V2(50, 50), opts, 0, 0, nil); err != nil {
		t.Fatalf("DrawText() = %v, want nil", err)
	}

	var text, shadow *DrawBuffer
	d.Arena().Drain(func(b *DrawBuffer) {
		if b.Text.IsDropShadow {
			shadow = b
		} else {
			text = b
		}
	})
	if text == nil || shadow == nil {
		t.Fatal("want one text buffer and one drop shadow buffer")
	}
	if len(shadow.Vertices) != len(text.Vertices) {
		t.Errorf("shadow vertex count = %d, want %d", len(shadow.Vertices), len(text.Vertices))
	}
	for i, v := range shadow.Vertices {
		if v.Col != Red {
			t.Fatalf("shadow vertex %d color = %v, want %v", i, v.Col, Red)
		}
	}
	// The shadow quads trail the text by the offset.
	if got, want := shadow.Vertices[0].Pos, text.Vertices[0].Pos.Add(V2(2, 2)); !vecApproxEq(got, want, 1e-4) {
		t.Errorf("shadow position = %v, want %v", got, want)
	}
}

// TestDrawTextSDFBuffer tests SDF buffer routing and its shading metadata.
func TestDrawTextSDFBuffer(t *testing.T) {
	font := testFont()
	font.IsSDF = true

	d := NewDrawer()
	d.BeginFrame()
	opts := DefaultSDFTextOptions(font)
	opts.Thickness = 0.55
	opts.OutlineThickness = 0.1
	opts.OutlineColor = Red
	if err := d.DrawTextSDF("ab", V2(0, 0), opts, 0, 0, nil); err != nil {
		t.Fatalf("DrawTextSDF() = %v, want nil", err)
	}

	buf := singleBuffer(t, d)
	if buf.Kind != KindSDFText {
		t.Errorf("buffer kind = %v, want sdf-text", buf.Kind)
	}
	if buf.Text.SDF != opts.meta() {
		t.Errorf("SDF meta = %+v, want %+v", buf.Text.SDF, opts.meta())
	}
}

// TestCalcTextSize tests unwrapped measurement.
func TestCalcTextSize(t *testing.T) {
	font := testFont()
	got := calcTextSize("abc", font, 1, 0)
	if !vecApproxEq(got, V2(30, 10), 1e-4) {
		t.Errorf("calcTextSize(abc) = %v, want %v", got, V2(30, 10))
	}

	got = calcTextSize("ab", font, 2, 1)
	if !vecApproxEq(got, V2(42, 20), 1e-4) {
		t.Errorf("calcTextSize(ab, scale 2, spacing 1) = %v, want %v", got, V2(42, 20))
	}
}

// TestWrapTextWordMode tests word wrapping at space boundaries.
func TestWrapTextWordMode(t *testing.T) {
	font := testFont()
	lines := wrapText(font, "aa bb cc", 0, 1, 25, true)
	want := []string{"aa ", "bb ", "cc"}
	if len(lines) != len(want) {
		t.Fatalf("line count = %d, want %d", len(lines), len(want))
	}
	for i, w := range want {
		if lines[i].str != w {
			t.Errorf("line %d = %q, want %q", i, lines[i].str, w)
		}
	}
}

// TestWrapTextCharMode tests per-character wrapping.
func TestWrapTextCharMode(t *testing.T) {
	font := testFont()
	lines := wrapText(font, "aaaa", 0, 1, 25, false)
	want := []string{"aa", "aa"}
	if len(lines) != len(want) {
		t.Fatalf("line count = %d, want %d", len(lines), len(want))
	}
	for i, w := range want {
		if lines[i].str != w {
			t.Errorf("line %d = %q, want %q", i, lines[i].str, w)
		}
	}
}

// TestWrapTextKeepsLongWord tests that a word longer than the wrap width
// still lands on its own line instead of being dropped.
func TestWrapTextKeepsLongWord(t *testing.T) {
	font := testFont()
	lines := wrapText(font, "aa bbbbbb", 0, 1, 30, true)
	if len(lines) != 2 {
		t.Fatalf("line count = %d, want 2", len(lines))
	}
	if lines[1].str != "bbbbbb" {
		t.Errorf("last line = %q, want %q", lines[1].str, "bbbbbb")
	}
}

// TestTextSize tests the public measurement entry point with wrapping.
func TestTextSize(t *testing.T) {
	d := NewDrawer()
	opts := DefaultTextOptions(testFont())

	if got := d.TextSize("abc", opts); !vecApproxEq(got, V2(30, 10), 1e-4) {
		t.Errorf("TextSize(abc) = %v, want %v", got, V2(30, 10))
	}

	opts.WrapWidth = 25
	opts.WordWrap = true
	got := d.TextSize("aa bb cc", opts)
	// Three lines: widest is a word plus trailing space, the two leading
	// lines contribute the line height and the last its glyph height.
	if !vecApproxEq(got, V2(30, 34), 1e-4) {
		t.Errorf("TextSize(wrapped) = %v, want %v", got, V2(30, 34))
	}

	opts.Font = nil
	if got := d.TextSize("abc", opts); got != (Vec2{}) {
		t.Errorf("TextSize(nil font) = %v, want zero", got)
	}
}

// TestWrappedTextLines tests line reporting and baseline pre-offset for
// wrapped runs.
func TestWrappedTextLines(t *testing.T) {
	d := NewDrawer()
	d.BeginFrame()
	opts := DefaultTextOptions(testFont())
	opts.WrapWidth = 25
	opts.WordWrap = true

	var out TextOutData
	if err := d.DrawText("aa bb cc", V2(0, 100), opts, 0, 0, &out); err != nil {
		t.Fatalf("DrawText() = %v, want nil", err)
	}

	if len(out.Lines) != 3 {
		t.Fatalf("line count = %d, want 3", len(out.Lines))
	}
	// The pen starts two line heights above the requested baseline so the
	// last line lands on it.
	if got := out.Lines[0].PosY; !approxEq(got, 100-2*12, 1e-4) {
		t.Errorf("first line PosY = %v, want %v", got, 100-2*12)
	}
	if got := out.Lines[2].PosY; !approxEq(got, 100, 1e-4) {
		t.Errorf("last line PosY = %v, want 100", got)
	}
	if out.Lines[0].StartCharIndex != 0 {
		t.Errorf("first line StartCharIndex = %d, want 0", out.Lines[0].StartCharIndex)
	}
}

// TestKerning tests kerning application between glyph pairs.
func TestKerning(t *testing.T) {
	font := testFont()
	font.SupportsKerning = true
	font.Kerning = map[rune]map[rune]float32{
		'a': {'b': -64},
	}

	if got := font.Kern('a', 'b'); got != -64 {
		t.Errorf("Kern(a, b) = %v, want -64", got)
	}
	if got := font.Kern('b', 'a'); got != 0 {
		t.Errorf("Kern(b, a) = %v, want 0", got)
	}

	d := NewDrawer()
	d.BeginFrame()
	opts := DefaultTextOptions(font)
	opts.SkipCache = true
	if err := d.DrawText("ab", V2(0, 0), opts, 0, 0, nil); err != nil {
		t.Fatalf("DrawText() = %v, want nil", err)
	}

	// The pair kerns by -1 pixel, pulling the second glyph left of its
	// unkerned position at x 11.
	buf := singleBuffer(t, d)
	if got := buf.Vertices[4].Pos.X; !approxEq(got, 10, 1e-4) {
		t.Errorf("kerned glyph X = %v, want 10", got)
	}
}
