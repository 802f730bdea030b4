package fontkit

import (
	"image"
	"image/color"
	"math"
	"sync"
)

// distanceField converts an antialiased coverage mask into a signed distance
// field padded by spread pixels on every side. Output alpha maps distance
// linearly: 0 at spread outside the edge, 128 on the edge, 255 at spread
// inside.
func distanceField(mask *image.Alpha, spread int) *image.Alpha {
	srcW, srcH := mask.Rect.Dx(), mask.Rect.Dy()
	w := srcW + 2*spread
	h := srcH + 2*spread

	inside := func(x, y int) bool {
		sx, sy := x-spread, y-spread
		if sx < 0 || sy < 0 || sx >= srcW || sy >= srcH {
			return false
		}
		return mask.AlphaAt(mask.Rect.Min.X+sx, mask.Rect.Min.Y+sy).A >= 128
	}

	out := image.NewAlpha(image.Rect(0, 0, w, h))
	fs := float64(spread)

	var wg sync.WaitGroup
	workers := 4
	rows := (h + workers - 1) / workers
	for wk := 0; wk < workers; wk++ {
		start := wk * rows
		end := start + rows
		if end > h {
			end = h
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for y := start; y < end; y++ {
				for x := 0; x < w; x++ {
					in := inside(x, y)
					d := nearestOpposite(inside, x, y, spread, in)
					if !in {
						d = -d
					}
					v := (d/fs + 1) * 0.5 * 255
					out.SetAlpha(x, y, color.Alpha{A: clamp255(v)})
				}
			}
		}(start, end)
	}
	wg.Wait()
	return out
}

// nearestOpposite returns the distance from (x, y) to the closest pixel whose
// insideness differs, capped at spread.
func nearestOpposite(inside func(int, int) bool, x, y, spread int, in bool) float64 {
	best := float64(spread)
	for dy := -spread; dy <= spread; dy++ {
		for dx := -spread; dx <= spread; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			d := math.Sqrt(float64(dx*dx + dy*dy))
			if d >= best {
				continue
			}
			if inside(x+dx, y+dy) != in {
				best = d
			}
		}
	}
	return best
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
