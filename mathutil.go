package tess

import "github.com/chewxy/math32"

// Angles in the public API and throughout the tessellators are degrees;
// screen space is y-down, so positive angles rotate clockwise on screen.

const eqMargin = 1e-3

func isEqualMarg(a, b float32) bool {
	return math32.Abs(a-b) < eqMargin
}

func isZero(a float32) bool {
	return math32.Abs(a) < eqMargin
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// remap maps v from the range [fromMin, fromMax] to [toMin, toMax].
// A degenerate source range maps to toMin.
func remap(v, fromMin, fromMax, toMin, toMax float32) float32 {
	if fromMax == fromMin {
		return toMin
	}
	return toMin + (v-fromMin)*(toMax-toMin)/(fromMax-fromMin)
}

// rotate90 rotates v by 90 degrees. In y-down screen space, clockwise
// rotation of a path direction yields its outward-facing normal for
// clockwise-wound rings.
func rotate90(v Vec2, clockwise bool) Vec2 {
	if clockwise {
		return Vec2{X: v.Y, Y: -v.X}
	}
	return Vec2{X: -v.Y, Y: v.X}
}

// rotateAround rotates p about center by angle degrees.
func rotateAround(p, center Vec2, angle float32) Vec2 {
	rad := angle * math32.Pi / 180
	sin, cos := math32.Sincos(rad)
	d := p.Sub(center)
	return Vec2{
		X: center.X + d.X*cos - d.Y*sin,
		Y: center.Y + d.X*sin + d.Y*cos,
	}
}

// pointOnCircle returns the point at angle degrees on the circle around
// center with the given radius.
func pointOnCircle(center Vec2, radius, angle float32) Vec2 {
	rad := angle * math32.Pi / 180
	sin, cos := math32.Sincos(rad)
	return Vec2{X: center.X + cos*radius, Y: center.Y + sin*radius}
}

// angleFromCenter returns the angle of p as seen from center, in degrees
// normalized to [0, 360).
func angleFromCenter(center, p Vec2) float32 {
	deg := math32.Atan2(p.Y-center.Y, p.X-center.X) * 180 / math32.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// angleBetweenDirs returns the signed angle in degrees from dir a to dir b,
// in (-180, 180].
func angleBetweenDirs(a, b Vec2) float32 {
	return math32.Atan2(a.Cross(b), a.Dot(b)) * 180 / math32.Pi
}

// areLinesParallel reports whether segments (p1,p2) and (p3,p4) are parallel.
func areLinesParallel(p1, p2, p3, p4 Vec2) bool {
	d1 := p2.Sub(p1).Normalize()
	d2 := p4.Sub(p3).Normalize()
	return math32.Abs(d1.Cross(d2)) < 1e-4
}

// lineIntersection returns the intersection of the infinite lines through
// (p1,p2) and (p3,p4). Callers must rule out parallel lines first.
func lineIntersection(p1, p2, p3, p4 Vec2) Vec2 {
	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)
	denom := d1.Cross(d2)
	if denom == 0 {
		return p2
	}
	t := p3.Sub(p1).Cross(d2) / denom
	return p1.Add(d1.Mul(t))
}

// sampleParabola samples a parabolic arc spanning p1 to p2, bulging along
// dir (unit vector) by height at its apex. t in [0, 1].
func sampleParabola(p1, p2, dir Vec2, height, t float32) Vec2 {
	base := p1.Lerp(p2, t)
	bulge := 4 * t * (1 - t)
	return base.Add(dir.Mul(height * bulge))
}

// sampleBezier evaluates a cubic bezier at t.
func sampleBezier(p0, p1, p2, p3 Vec2, t float32) Vec2 {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return Vec2{
		X: b0*p0.X + b1*p1.X + b2*p2.X + b3*p3.X,
		Y: b0*p0.Y + b1*p1.Y + b2*p2.Y + b3*p3.Y,
	}
}

// extrudedFromNormal offsets p along the vertex normal implied by its ring
// neighbors. The ring is assumed to be wound clockwise in screen space
// (generation order of all tess shapes); positive thickness extrudes
// outward.
func extrudedFromNormal(p, prev, next Vec2, thickness float32) Vec2 {
	d1 := p.Sub(prev).Normalize()
	d2 := next.Sub(p).Normalize()
	dir := d1.Add(d2).Normalize()
	if dir == (Vec2{}) {
		// Degenerate hairpin: fall back to the first edge normal.
		dir = d1
	}
	return p.Add(rotate90(dir, true).Mul(thickness))
}

// extrudedFromNormalCCW is extrudedFromNormal for rings whose winding is not
// known statically; ccw flips the normal.
func extrudedFromNormalCCW(p, prev, next Vec2, thickness float32, ccw bool) Vec2 {
	if ccw {
		return extrudedFromNormal(p, prev, next, -thickness)
	}
	return extrudedFromNormal(p, prev, next, thickness)
}

// extrudedOneSided offsets an open-path endpoint along the normal of its
// single incident edge. The edge direction is p-other when fromPrev is set,
// other-p otherwise.
func extrudedOneSided(p, other Vec2, thickness float32, fromPrev bool) Vec2 {
	var dir Vec2
	if fromPrev {
		dir = p.Sub(other).Normalize()
	} else {
		dir = other.Sub(p).Normalize()
	}
	return p.Add(rotate90(dir, true).Mul(thickness))
}

// customRound rounds to the nearest integer, halves away from zero.
// Text is snapped to whole pixels with this so cached glyph geometry lands
// on the same subpixel phase at every position.
func customRound(v float32) float32 {
	return math32.Round(v)
}

// angleIncrease picks the corner-arc step for a rounding factor. Larger
// rounding needs a finer step to look smooth; small rounding can afford a
// coarse one.
func angleIncrease(rounding float32) float32 {
	switch {
	case rounding < 0.25:
		return 20
	case rounding < 0.5:
		return 15
	case rounding < 0.75:
		return 10
	default:
		return 5
	}
}
