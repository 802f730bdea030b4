package fontkit

import (
	"bytes"
	"math"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// extractKerning shapes every rune pair through HarfBuzz and records the
// advance difference against the runes shaped alone. The table stores values
// in 1/64 pixel units, matching what tess.Font.Kern returns. Pairs the font
// shapes without adjustment are omitted.
func extractKerning(data []byte, runes []rune, sizePx float64) map[rune]map[rune]float32 {
	parsed, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	face := font.NewFace(parsed.Font)

	shaper := &shaping.HarfbuzzShaper{}
	size := fixed.Int26_6(sizePx * 64)

	shapeAdvance := func(text []rune) float64 {
		out := shaper.Shape(shaping.Input{
			Text:      text,
			RunStart:  0,
			RunEnd:    len(text),
			Direction: di.DirectionLTR,
			Face:      face,
			Size:      size,
			Script:    language.Latin,
			Language:  language.NewLanguage("en"),
		})
		var total float64
		for _, g := range out.Glyphs {
			total += float64(g.Advance) / 64
		}
		return total
	}

	solo := make(map[rune]float64, len(runes))
	for _, r := range runes {
		solo[r] = shapeAdvance([]rune{r})
	}

	var table map[rune]map[rune]float32
	pair := make([]rune, 2)
	for _, a := range runes {
		for _, b := range runes {
			pair[0], pair[1] = a, b
			kern := shapeAdvance(pair) - solo[a] - solo[b]
			if math.Abs(kern) < 1.0/64 {
				continue
			}
			if table == nil {
				table = make(map[rune]map[rune]float32)
			}
			if table[a] == nil {
				table[a] = make(map[rune]float32)
			}
			table[a][b] = float32(kern * 64)
		}
	}
	return table
}
