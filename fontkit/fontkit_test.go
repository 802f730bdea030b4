package fontkit

import (
	"image"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// TestLoad tests baking the default ASCII set from a real font.
func TestLoad(t *testing.T) {
	atlas, err := Load(goregular.TTF, 32)
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}

	f := atlas.Font
	if f.IsSDF {
		t.Error("IsSDF = true, want false")
	}
	if f.SupportsUnicode {
		t.Error("SupportsUnicode = true for ASCII-only atlas, want false")
	}
	if f.Size != 32 {
		t.Errorf("Size = %d, want 32", f.Size)
	}
	if f.SpaceAdvance <= 0 {
		t.Errorf("SpaceAdvance = %v, want > 0", f.SpaceAdvance)
	}
	if f.NewLineHeight <= 0 {
		t.Errorf("NewLineHeight = %v, want > 0", f.NewLineHeight)
	}
	if f.Ascent <= 0 || f.Descent <= 0 {
		t.Errorf("Ascent, Descent = %v, %v, want both > 0", f.Ascent, f.Descent)
	}

	ch, ok := f.Glyphs['A']
	if !ok {
		t.Fatal("glyph A missing")
	}
	if ch.Size.X <= 0 || ch.Size.Y <= 0 {
		t.Errorf("A size = %v, want positive", ch.Size)
	}
	if ch.Advance.X <= 0 {
		t.Errorf("A advance = %v, want > 0", ch.Advance.X)
	}
	if ch.Bearing.Y <= 0 {
		t.Errorf("A bearing Y = %v, want > 0 (above baseline)", ch.Bearing.Y)
	}
	if ch.UVMin.X < 0 || ch.UVMin.Y < 0 || ch.UVMax.X > 1 || ch.UVMax.Y > 1 {
		t.Errorf("A UVs = %v..%v, want within [0, 1]", ch.UVMin, ch.UVMax)
	}
	if ch.UVMax.X <= ch.UVMin.X || ch.UVMax.Y <= ch.UVMin.Y {
		t.Errorf("A UVs = %v..%v, want a nonempty rect", ch.UVMin, ch.UVMax)
	}

	if atlas.Image == nil || atlas.Image.Rect.Dy() == 0 {
		t.Fatal("atlas image empty")
	}

	// The atlas actually contains coverage where A is placed.
	w := float32(atlas.Image.Rect.Dx())
	h := float32(atlas.Image.Rect.Dy())
	cx := int((ch.UVMin.X + ch.UVMax.X) / 2 * w)
	var hit bool
	for y := int(ch.UVMin.Y * h); y < int(ch.UVMax.Y*h); y++ {
		if atlas.Image.AlphaAt(cx, y).A > 0 {
			hit = true
			break
		}
	}
	if !hit {
		t.Error("no coverage in the atlas region of glyph A")
	}
}

// TestLoadNoGlyphs tests the error when no requested rune exists.
func TestLoadNoGlyphs(t *testing.T) {
	_, err := Load(goregular.TTF, 32, WithRunes([]rune{0xE000, 0xE001}))
	if err != ErrNoGlyphs {
		t.Errorf("Load(private use runes) = %v, want ErrNoGlyphs", err)
	}
}

// TestLoadBadData tests the parse error path.
func TestLoadBadData(t *testing.T) {
	if _, err := Load([]byte("not a font"), 32); err == nil {
		t.Error("Load(garbage) = nil, want error")
	}
}

// TestLoadSDF tests distance-field baking: padded glyphs with bearings
// shifted by the spread.
func TestLoadSDF(t *testing.T) {
	runes := []rune{'A', 'B'}
	plain, err := Load(goregular.TTF, 32, WithRunes(runes))
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}
	const spread = 4
	sdf, err := Load(goregular.TTF, 32, WithRunes(runes), WithSDF(spread))
	if err != nil {
		t.Fatalf("Load(SDF) = %v, want nil", err)
	}

	if !sdf.Font.IsSDF {
		t.Error("IsSDF = false, want true")
	}

	p := plain.Font.Glyphs['A']
	s := sdf.Font.Glyphs['A']
	if got, want := s.Size.X, p.Size.X+2*spread; got != want {
		t.Errorf("SDF width = %v, want %v", got, want)
	}
	if got, want := s.Bearing.X, p.Bearing.X-spread; got != want {
		t.Errorf("SDF bearing X = %v, want %v", got, want)
	}
	if got, want := s.Bearing.Y, p.Bearing.Y+spread; got != want {
		t.Errorf("SDF bearing Y = %v, want %v", got, want)
	}
}

// TestLoadKerning tests pair kerning extraction.
func TestLoadKerning(t *testing.T) {
	atlas, err := Load(goregular.TTF, 32, WithRunes([]rune{'A', 'V', 'o', 'x'}), WithKerning())
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}

	f := atlas.Font
	if f.SupportsKerning != (len(f.Kerning) > 0) {
		t.Errorf("SupportsKerning = %v with %d kerned runes, want consistency",
			f.SupportsKerning, len(f.Kerning))
	}
	for prev, nexts := range f.Kerning {
		for next, k := range nexts {
			if k == 0 {
				t.Errorf("Kerning[%c][%c] = 0, want omitted", prev, next)
			}
		}
	}
}

// TestWithRuneRange tests that range options accumulate.
func TestWithRuneRange(t *testing.T) {
	atlas, err := Load(goregular.TTF, 16, WithRunes([]rune{'!'}), WithRuneRange('a', 'c'))
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}
	for _, r := range []rune{'!', 'a', 'b', 'c'} {
		if _, ok := atlas.Font.Glyphs[r]; !ok {
			t.Errorf("glyph %c missing", r)
		}
	}
}

// TestShelfPacker tests placement within the atlas width and shelf reuse.
func TestShelfPacker(t *testing.T) {
	p := newShelfPacker(100, 2)

	x1, y1, err := p.place(40, 10)
	if err != nil {
		t.Fatalf("place() = %v, want nil", err)
	}
	if x1 != 0 || y1 != 0 {
		t.Errorf("first placement = (%d, %d), want (0, 0)", x1, y1)
	}

	x2, y2, err := p.place(40, 10)
	if err != nil {
		t.Fatalf("place() = %v, want nil", err)
	}
	if y2 != 0 || x2 <= x1 {
		t.Errorf("second placement = (%d, %d), want same shelf to the right", x2, y2)
	}

	// Does not fit the first shelf, opens a new one below.
	_, y3, err := p.place(40, 10)
	if err != nil {
		t.Fatalf("place() = %v, want nil", err)
	}
	if y3 <= y2 {
		t.Errorf("third placement y = %d, want below the first shelf", y3)
	}

	if h := p.height(); h <= y3 {
		t.Errorf("height() = %d, want past the last shelf", h)
	}

	if _, _, err := p.place(200, 10); err == nil {
		t.Error("place(width > atlas) = nil, want error")
	}
}

// TestDistanceField tests the SDF value mapping: saturated inside, zero far
// outside, near the midpoint on the edge.
func TestDistanceField(t *testing.T) {
	mask := image.NewAlpha(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			mask.Pix[y*mask.Stride+x] = 255
		}
	}

	const spread = 3
	out := distanceField(mask, spread)
	if got, want := out.Rect.Dx(), 8+2*spread; got != want {
		t.Fatalf("output width = %d, want %d", got, want)
	}

	// Deep inside the shape distance saturates at the spread.
	if got := out.AlphaAt(spread+4, spread+4).A; got != 255 {
		t.Errorf("center value = %d, want 255", got)
	}
	// The padded corner is farther than the spread from any inside pixel.
	if got := out.AlphaAt(0, 0).A; got != 0 {
		t.Errorf("corner value = %d, want 0", got)
	}
	// Just outside the boundary sits below the midpoint, just inside above.
	if got := out.AlphaAt(spread-1, spread+4).A; got >= 128 {
		t.Errorf("outside edge value = %d, want < 128", got)
	}
	if got := out.AlphaAt(spread+1, spread+4).A; got < 128 {
		t.Errorf("inside edge value = %d, want >= 128", got)
	}
}
