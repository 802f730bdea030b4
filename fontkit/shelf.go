package fontkit

import "fmt"

// shelfPacker packs glyph rectangles into horizontal shelves of a
// fixed-width, unbounded-height atlas. Each shelf takes the height of its
// tallest occupant; a rectangle that fits no open shelf starts a new one.
type shelfPacker struct {
	width   int
	padding int
	shelves []shelf
}

type shelf struct {
	y, height, x int
}

func newShelfPacker(width, padding int) *shelfPacker {
	return &shelfPacker{width: width, padding: padding}
}

func (p *shelfPacker) place(w, h int) (x, y int, err error) {
	paddedW := w + p.padding
	if paddedW > p.width {
		return 0, 0, fmt.Errorf("fontkit: glyph width %d exceeds atlas width %d", w, p.width)
	}

	for i := range p.shelves {
		s := &p.shelves[i]
		if s.x+paddedW > p.width || h > s.height {
			continue
		}
		x, y = s.x, s.y
		s.x += paddedW
		return x, y, nil
	}

	newY := 0
	if n := len(p.shelves); n > 0 {
		last := p.shelves[n-1]
		newY = last.y + last.height + p.padding
	}
	p.shelves = append(p.shelves, shelf{y: newY, height: h, x: paddedW})
	return 0, newY, nil
}

// height returns the total packed height so far.
func (p *shelfPacker) height() int {
	if len(p.shelves) == 0 {
		return 1
	}
	last := p.shelves[len(p.shelves)-1]
	return last.y + last.height + p.padding
}
