package tess

import "github.com/chewxy/math32"

// Shape rings are generated clockwise in screen space: rect corners run
// top-left, top-right, bottom-right, bottom-left; circles and ngons step by
// increasing angle. Extrusion and outline math rely on this winding.

func vertexBounds(verts []Vertex) (mn, mx Vec2) {
	mn = Vec2{X: math32.MaxFloat32, Y: math32.MaxFloat32}
	mx = Vec2{X: -math32.MaxFloat32, Y: -math32.MaxFloat32}
	for i := range verts {
		p := verts[i].Pos
		if p.X < mn.X {
			mn.X = p.X
		}
		if p.X > mx.X {
			mx.X = p.X
		}
		if p.Y < mn.Y {
			mn.Y = p.Y
		}
		if p.Y > mx.Y {
			mx.Y = p.Y
		}
	}
	return mn, mx
}

func pointBounds(points []Vec2) (mn, mx Vec2) {
	mn = Vec2{X: math32.MaxFloat32, Y: math32.MaxFloat32}
	mx = Vec2{X: -math32.MaxFloat32, Y: -math32.MaxFloat32}
	for _, p := range points {
		if p.X < mn.X {
			mn.X = p.X
		}
		if p.X > mx.X {
			mx.X = p.X
		}
		if p.Y < mn.Y {
			mn.Y = p.Y
		}
		if p.Y > mx.Y {
			mx.Y = p.Y
		}
	}
	return mn, mx
}

// calculateVertexUVs remaps the UVs of buf.Vertices[start..end] onto the
// bounding box of those vertices, so (0,0) and (1,1) land on the box corners.
func calculateVertexUVs(buf *DrawBuffer, start, end int) {
	mn, mx := vertexBounds(buf.Vertices[start : end+1])
	for i := start; i <= end; i++ {
		buf.Vertices[i].UV.X = remap(buf.Vertices[i].Pos.X, mn.X, mx.X, 0, 1)
		buf.Vertices[i].UV.Y = remap(buf.Vertices[i].Pos.Y, mn.Y, mx.Y, 0, 1)
	}
}

func rotateVertices(verts []Vertex, center Vec2, start, end int, angle float32) {
	if isZero(angle) {
		return
	}
	for i := start; i <= end; i++ {
		verts[i].Pos = rotateAround(verts[i].Pos, center, angle)
	}
}

func verticesCenter(buf *DrawBuffer, start, end int) Vec2 {
	var total Vec2
	for i := start; i <= end; i++ {
		total = total.Add(buf.Vertices[i].Pos)
	}
	return total.Div(float32(end - start + 1))
}

// convexFillVertices fans a convex ring around its center vertex. The vertex
// at start is the center, the ring occupies start+1..end.
func convexFillVertices(buf *DrawBuffer, start, end int, skipLastTriangle bool) {
	for i := start + 1; i < end; i++ {
		buf.PushTriangle(Index(start), Index(i), Index(i+1))
	}
	if !skipLastTriangle {
		buf.PushTriangle(Index(start), Index(start+1), Index(end))
	}
}

// convexExtrudeVertices turns the ring buf.Vertices[start..end] into a
// stroked band by extruding a second ring at the given thickness and
// stitching the two with quads. skipEndClosing leaves open rings (arcs)
// unclosed and extrudes the endpoints along their single edge.
func (d *Drawer) convexExtrudeVertices(buf *DrawBuffer, start, end int, thickness float32, skipEndClosing bool) {
	totalSize := end - start + 1
	thickness *= d.cfg.framebufferScale

	for i := start; i < start+totalSize; i++ {
		prev := i - 1
		if i == start {
			prev = end
		}
		next := i + 1
		if i == end {
			next = start
		}
		v := Vertex{Col: buf.Vertices[i].Col}
		switch {
		case skipEndClosing && i == start:
			v.Pos = extrudedOneSided(buf.Vertices[i].Pos, buf.Vertices[next].Pos, thickness, false)
		case skipEndClosing && i == end:
			v.Pos = extrudedOneSided(buf.Vertices[i].Pos, buf.Vertices[prev].Pos, thickness, true)
		default:
			v.Pos = extrudedFromNormal(buf.Vertices[i].Pos, buf.Vertices[prev].Pos, buf.Vertices[next].Pos, thickness)
		}
		buf.PushVertex(v)
	}

	calculateVertexUVs(buf, start, end+totalSize)

	for i := start; i < start+totalSize; i++ {
		next := i + 1
		if next >= start+totalSize {
			next = start
		}
		if skipEndClosing && i == start+totalSize-1 {
			return
		}
		buf.PushTriangle(Index(i), Index(next), Index(i+totalSize))
		buf.PushTriangle(Index(next), Index(next+totalSize), Index(i+totalSize))
	}
}

// finishShape draws the outline or the antialias fringe of the geometry a
// shape just produced, operating on the last vertexCount vertices of h.
func (d *Drawer) finishShape(h BufferHandle, style StyleOptions, vertexCount int, skipEnds bool, order int) {
	if !isZero(style.Outline.Thickness) {
		d.drawOutline(h, style, vertexCount, skipEnds, order, outlineNormal, false)
	} else if style.AAEnabled {
		d.drawOutline(h, DeriveAAStyle(style), vertexCount, skipEnds, order, outlineAA, false)
	}
}

// rect

type rectCorners [4]Vertex

// rectData computes the rect's corner positions and UVs in ring order:
// top-left, top-right, bottom-right, bottom-left. Overrides installed on the
// arena replace positions (simple lines) or UVs (image crops).
func (d *Drawer) rectData(min, max Vec2) rectCorners {
	uvTL, uvBR := Vec2{}, Vec2{X: 1, Y: 1}
	if d.arena.uvOverride.active {
		uvTL, uvBR = d.arena.uvOverride.tl, d.arena.uvOverride.br
	}
	var v rectCorners
	if d.arena.rectOverride.active {
		for i := 0; i < 4; i++ {
			v[i].Pos = d.arena.rectOverride.p[i]
		}
	} else {
		v[0].Pos = min
		v[1].Pos = Vec2{X: max.X, Y: min.Y}
		v[2].Pos = max
		v[3].Pos = Vec2{X: min.X, Y: max.Y}
	}
	v[0].UV = uvTL
	v[1].UV = Vec2{X: uvBR.X, Y: uvTL.Y}
	v[2].UV = uvBR
	v[3].UV = Vec2{X: uvTL.X, Y: uvBR.Y}
	return v
}

func (d *Drawer) rectImpl(min, max Vec2, style StyleOptions, rotate float32, order int) {
	rounded := !isZero(style.Rounding)
	pnt := resolvePaint(style, rounded)
	h := pnt.buffer(d.arena, passShape, order)
	if rounded {
		d.fillRectRound(h, pnt, style, min, max, rotate, order)
	} else if pnt.kind == paintGradient {
		d.fillRectCenterFan(h, pnt, style, min, max, rotate, order)
	} else {
		d.fillRectFlat(h, pnt, style, min, max, rotate, order)
	}
}

// fillRectFlat is the 4-vertex rect: solid colors or gradients baked into
// vertex tints.
func (d *Drawer) fillRectFlat(h BufferHandle, pnt paint, style StyleOptions, min, max Vec2, rotate float32, order int) {
	buf := d.arena.Buffer(h)
	v := d.rectData(min, max)
	uvs := [4]Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	current := len(buf.Vertices)
	for i := 0; i < 4; i++ {
		v[i].Col = pnt.vertexColor(uvs[i])
		buf.PushVertex(v[i])
	}

	center := min.Add(max).Mul(0.5)
	if style.IsFilled {
		buf.PushTriangle(Index(current), Index(current+1), Index(current+3))
		buf.PushTriangle(Index(current+1), Index(current+2), Index(current+3))
	} else {
		d.convexExtrudeVertices(buf, current, current+3, style.Thickness.Start, false)
	}

	last := current + 3
	if !style.IsFilled {
		last = current + 7
	}
	rotateVertices(buf.Vertices, center, current, last, rotate)

	vc := 4
	if !style.IsFilled {
		vc = 8
	}
	d.finishShape(h, style, vc, false, order)
}

// fillRectCenterFan is the 5-vertex rect used by fragment-shaded gradients,
// fanned around a center vertex.
func (d *Drawer) fillRectCenterFan(h BufferHandle, pnt paint, style StyleOptions, min, max Vec2, rotate float32, order int) {
	buf := d.arena.Buffer(h)
	center := min.Add(max).Mul(0.5)
	corners := d.rectData(min, max)

	start := len(buf.Vertices)
	if style.IsFilled {
		uvTL, uvBR := corners[0].UV, corners[2].UV
		c := Vertex{
			Pos: center,
			UV:  uvTL.Add(uvBR).Mul(0.5),
			Col: pnt.vertexColor(Vec2{X: 0.5, Y: 0.5}),
		}
		buf.PushVertex(c)
	}
	for i := 0; i < 4; i++ {
		corners[i].Col = pnt.vertexColor(corners[i].UV)
		buf.PushVertex(corners[i])
	}

	if style.IsFilled {
		convexFillVertices(buf, start, start+4, false)
	} else {
		d.convexExtrudeVertices(buf, start, start+3, style.Thickness.Start, false)
	}

	rotStart, rotEnd := start, start+7
	if style.IsFilled {
		rotStart, rotEnd = start+1, start+4
	}
	rotateVertices(buf.Vertices, center, rotStart, rotEnd, rotate)

	vc := 4
	if !style.IsFilled {
		vc = 8
	}
	d.finishShape(h, style, vc, false, order)
}

func cornerSkipped(only []int, i int) bool {
	if len(only) == 0 {
		return false
	}
	for _, c := range only {
		if c == i {
			return false
		}
	}
	return true
}

func (d *Drawer) fillRectRound(h BufferHandle, pnt paint, style StyleOptions, min, max Vec2, rotate float32, order int) {
	buf := d.arena.Buffer(h)
	rounding := clamp(style.Rounding, 0, 0.9)
	col := pnt.color.Start

	v := d.rectData(min, max)
	center := min.Add(max).Mul(0.5)
	up := v[0].Pos.Sub(v[3].Pos)
	right := v[1].Pos.Sub(v[0].Pos)
	verticalMag := up.Length()
	horizontalMag := right.Length()
	halfShortestSide := math32.Min(verticalMag, horizontalMag) / 2
	up = up.Normalize()
	right = right.Normalize()

	roundingMag := rounding * halfShortestSide

	startAngle, endAngle := float32(180), float32(270)
	step := angleIncrease(rounding)
	start := len(buf.Vertices)
	vertexCount := 0

	if style.IsFilled {
		buf.PushVertex(Vertex{Pos: center, Col: col, UV: Vec2{X: 0.5, Y: 0.5}})
	}

	for i := 0; i < 4; i++ {
		if cornerSkipped(style.OnlyRoundCorners, i) {
			buf.PushVertex(Vertex{Pos: v[i].Pos, Col: col, UV: v[i].UV})
			vertexCount++
			startAngle += 90
			endAngle += 90
			continue
		}

		usedRight := right
		if i == 1 || i == 2 {
			usedRight = right.Neg()
		}
		usedUp := up
		if i == 0 || i == 1 {
			usedUp = up.Neg()
		}
		// Inflate the corner towards the center, then sweep its arc.
		inf0 := v[i].Pos.Add(usedUp.Mul(roundingMag))
		inf1 := inf0.Add(usedRight.Mul(roundingMag))
		for k := startAngle; k < endAngle+2.5; k += step {
			p := pointOnCircle(inf1, roundingMag, k)
			buf.PushVertex(Vertex{Pos: p, Col: col})
			vertexCount++
		}
		startAngle += 90
		endAngle += 90
	}

	if style.IsFilled {
		calculateVertexUVs(buf, start, start+vertexCount)
		convexFillVertices(buf, start, start+vertexCount, false)
	} else {
		d.convexExtrudeVertices(buf, start, start+vertexCount-1, style.Thickness.Start, false)
	}

	rotStart, rotEnd := start, start+vertexCount*2-1
	if style.IsFilled {
		rotStart, rotEnd = start+1, start+vertexCount
	}
	rotateVertices(buf.Vertices, center, rotStart, rotEnd, rotate)

	vc := vertexCount
	if !style.IsFilled {
		vc = vertexCount * 2
	}
	d.finishShape(h, style, vc, false, order)
}

// triangle

func (d *Drawer) triImpl(top, right, left Vec2, style StyleOptions, rotate float32, order int) {
	rounded := !isZero(style.Rounding)
	pnt := resolvePaint(style, rounded)
	h := pnt.buffer(d.arena, passShape, order)
	if rounded {
		d.fillTriRound(h, pnt, style, top, right, left, rotate, order)
	} else if pnt.kind == paintGradient {
		d.fillTriCenterFan(h, pnt, style, top, right, left, rotate, order)
	} else {
		d.fillTriFlat(h, pnt, style, top, right, left, rotate, order)
	}
}

func triData(top, right, left Vec2) ([3]Vertex, Vec2) {
	var v [3]Vertex
	v[0].Pos = top
	v[1].Pos = right
	v[2].Pos = left
	mn, mx := pointBounds([]Vec2{top, right, left})
	for i := range v {
		v[i].UV.X = remap(v[i].Pos.X, mn.X, mx.X, 0, 1)
		v[i].UV.Y = remap(v[i].Pos.Y, mn.Y, mx.Y, 0, 1)
	}
	center := top.Add(right).Add(left).Div(3)
	return v, center
}

func (d *Drawer) fillTriFlat(h BufferHandle, pnt paint, style StyleOptions, top, right, left Vec2, rotate float32, order int) {
	buf := d.arena.Buffer(h)
	v, center := triData(top, right, left)
	start := len(buf.Vertices)
	for i := range v {
		v[i].Col = pnt.vertexColor(v[i].UV)
		buf.PushVertex(v[i])
	}

	if style.IsFilled {
		buf.PushTriangle(Index(start), Index(start+1), Index(start+2))
	} else {
		d.convexExtrudeVertices(buf, start, start+2, style.Thickness.Start, false)
	}

	last := start + 2
	if !style.IsFilled {
		last = start + 5
	}
	rotateVertices(buf.Vertices, center, start, last, rotate)

	vc := 3
	if !style.IsFilled {
		vc = 6
	}
	d.finishShape(h, style, vc, false, order)
}

func (d *Drawer) fillTriCenterFan(h BufferHandle, pnt paint, style StyleOptions, top, right, left Vec2, rotate float32, order int) {
	buf := d.arena.Buffer(h)
	v, center := triData(top, right, left)
	mn, mx := pointBounds([]Vec2{top, right, left})

	start := len(buf.Vertices)
	if style.IsFilled {
		c := Vertex{Pos: center, Col: pnt.color.Start}
		c.UV.X = remap(center.X, mn.X, mx.X, 0, 1)
		c.UV.Y = remap(center.Y, mn.Y, mx.Y, 0, 1)
		buf.PushVertex(c)
	}
	for i := range v {
		v[i].Col = pnt.color.End
		buf.PushVertex(v[i])
	}

	if style.IsFilled {
		convexFillVertices(buf, start, start+3, false)
	} else {
		d.convexExtrudeVertices(buf, start, start+2, style.Thickness.Start, false)
	}

	rotStart, rotEnd := start, start+5
	if style.IsFilled {
		rotStart, rotEnd = start+1, start+3
	}
	rotateVertices(buf.Vertices, center, rotStart, rotEnd, rotate)

	vc := 3
	if !style.IsFilled {
		vc = 6
	}
	d.finishShape(h, style, vc, false, order)
}

func (d *Drawer) fillTriRound(h BufferHandle, pnt paint, style StyleOptions, top, right, left Vec2, rotate float32, order int) {
	buf := d.arena.Buffer(h)
	rounding := clamp(style.Rounding, 0, 1)
	col := pnt.color.Start

	v, center := triData(top, right, left)
	mn, mx := pointBounds([]Vec2{top, right, left})

	v01 := v[0].Pos.Sub(v[1].Pos)
	v02 := v[0].Pos.Sub(v[2].Pos)
	v12 := v[1].Pos.Sub(v[2].Pos)
	v01c := v[0].Pos.Add(v[1].Pos).Mul(0.5)
	v02c := v[0].Pos.Add(v[2].Pos).Mul(0.5)
	v12c := v[1].Pos.Add(v[2].Pos).Mul(0.5)

	ang0102 := math32.Abs(angleBetweenDirs(v01, v02))
	ang0112 := math32.Abs(angleBetweenDirs(v01, v12))
	ang0212 := math32.Abs(angleBetweenDirs(v02, v12))
	maxAngle := math32.Max(math32.Max(ang0102, ang0112), ang0212)
	shortestEdge := math32.Min(math32.Min(v01.Length(), v02.Length()), v12.Length())
	roundingMag := rounding * shortestEdge / 2

	start := len(buf.Vertices)
	vertexCount := 0

	if style.IsFilled {
		c := Vertex{Pos: center, Col: col}
		c.UV.X = remap(center.X, mn.X, mx.X, 0, 1)
		c.UV.Y = remap(center.Y, mn.Y, mx.Y, 0, 1)
		buf.PushVertex(c)
	}

	angleOffset := float32(45)
	if maxAngle > 90 {
		angleOffset = maxAngle - 90
	}

	// Edge midpoints adjoining each corner, in ring order.
	edgeCenters := [3][2]Vec2{
		{v01c, v02c},
		{v01c, v12c},
		{v12c, v02c},
	}

	for i := 0; i < 3; i++ {
		if cornerSkipped(style.OnlyRoundCorners, i) {
			buf.PushVertex(Vertex{Pos: v[i].Pos, Col: col})
			vertexCount++
			continue
		}
		to0 := edgeCenters[i][0].Sub(v[i].Pos).Normalize()
		to1 := edgeCenters[i][1].Sub(v[i].Pos).Normalize()
		inter1 := v[i].Pos.Add(to0.Mul(roundingMag))
		inter2 := v[i].Pos.Add(to1.Mul(roundingMag))
		arc := getArcPoints(inter1, inter2, v[i].Pos, 0, 36, false, angleOffset)
		for _, p := range arc {
			buf.PushVertex(Vertex{Pos: p, Col: col})
			vertexCount++
		}
	}

	if style.IsFilled {
		calculateVertexUVs(buf, start, start+vertexCount)
		convexFillVertices(buf, start, start+vertexCount, false)
	} else {
		d.convexExtrudeVertices(buf, start, start+vertexCount-1, style.Thickness.Start, false)
	}

	rotStart, rotEnd := start, start+vertexCount*2-1
	if style.IsFilled {
		rotStart, rotEnd = start+1, start+vertexCount
	}
	rotateVertices(buf.Vertices, center, rotStart, rotEnd, rotate)

	vc := vertexCount
	if !style.IsFilled {
		vc = vertexCount * 2
	}
	d.finishShape(h, style, vc, false, order)
}

// ngon

func (d *Drawer) ngonImpl(center Vec2, radius float32, n int, style StyleOptions, rotate float32, order int) {
	pnt := resolvePaint(style, false)
	h := pnt.buffer(d.arena, passShape, order)
	buf := d.arena.Buffer(h)

	verts := ngonData(style.IsFilled, center, radius, n)
	start := len(buf.Vertices)
	radial := pnt.kind == paintGradient
	for i := range verts {
		if radial {
			if i == 0 && style.IsFilled {
				verts[i].Col = pnt.color.Start
			} else {
				verts[i].Col = pnt.color.End
			}
		} else {
			verts[i].Col = pnt.vertexColor(verts[i].UV)
		}
		buf.PushVertex(verts[i])
	}

	if style.IsFilled {
		convexFillVertices(buf, start, start+n, false)
	} else {
		d.convexExtrudeVertices(buf, start, start+n-1, style.Thickness.Start, false)
	}

	rotStart, rotEnd := start, start+n*2-1
	if style.IsFilled {
		rotStart, rotEnd = start+1, start+n
	}
	rotateVertices(buf.Vertices, center, rotStart, rotEnd, rotate)

	vc := n
	if !style.IsFilled {
		vc = n * 2
	}
	d.finishShape(h, style, vc, false, order)
}

func ngonData(hasCenter bool, center Vec2, radius float32, n int) []Vertex {
	step := 360 / float32(n)
	mn := Vec2{X: center.X - radius, Y: center.Y - radius}
	mx := Vec2{X: center.X + radius, Y: center.Y + radius}
	var verts []Vertex
	uvOf := func(p Vec2) Vec2 {
		return Vec2{X: remap(p.X, mn.X, mx.X, 0, 1), Y: remap(p.Y, mn.Y, mx.Y, 0, 1)}
	}
	if hasCenter {
		verts = append(verts, Vertex{Pos: center, UV: uvOf(center)})
	}
	count := 0
	for a := float32(0); a < 360; a += step {
		p := pointOnCircle(center, radius, a)
		verts = append(verts, Vertex{Pos: p, UV: uvOf(p)})
		count++
		if count == n {
			break
		}
	}
	return verts
}

// circle

func (d *Drawer) circleImpl(center Vec2, radius float32, style StyleOptions, segments int, rotate, startAngle, endAngle float32, order int) {
	if startAngle == endAngle {
		endAngle = startAngle + 360
	}
	pnt := resolvePaint(style, false)
	h := pnt.buffer(d.arena, passShape, order)
	buf := d.arena.Buffer(h)

	verts := circleData(style.IsFilled, center, radius, segments, startAngle, endAngle)
	start := len(buf.Vertices)
	radial := pnt.kind == paintGradient
	for i := range verts {
		if radial {
			// Radial gradients fade from the center vertex outward.
			if i == 0 {
				verts[i].Col = pnt.color.Start
			} else {
				verts[i].Col = pnt.color.End
			}
		} else {
			verts[i].Col = pnt.vertexColor(verts[i].UV)
		}
		buf.PushVertex(verts[i])
	}

	isFullCircle := math32.Abs(endAngle-startAngle) == 360
	totalSize := len(verts) - 1

	if style.IsFilled {
		convexFillVertices(buf, start, start+totalSize, !isFullCircle)
	} else {
		d.convexExtrudeVertices(buf, start, start+totalSize, style.Thickness.Start, !isFullCircle)
	}

	rotStart, rotEnd := start, start+totalSize*2+1
	if style.IsFilled {
		rotStart, rotEnd = start+1, start+totalSize
	}
	rotateVertices(buf.Vertices, center, rotStart, rotEnd, rotate)

	d.finishCircle(h, style, start, len(verts), isFullCircle, order)
}

// finishCircle handles the outline and antialias pass of circles and arcs.
// Arc boundaries are open rings, so they cannot reuse the last-N window of
// finishShape and collect explicit boundary indices instead.
func (d *Drawer) finishCircle(h BufferHandle, style StyleOptions, start, ringLen int, isFullCircle bool, order int) {
	totalSize := ringLen - 1
	vc := totalSize
	if !style.IsFilled {
		vc = (totalSize + 1) * 2
	}

	if !isZero(style.Outline.Thickness) {
		if isFullCircle {
			d.drawOutline(h, style, vc, !isFullCircle, order, outlineNormal, false)
			return
		}
		switch {
		case style.IsFilled:
			indices := make([]int, 0, ringLen)
			for i := 0; i < ringLen; i++ {
				indices = append(indices, start+i)
			}
			d.drawOutlineAroundShape(h, style, indices, style.Outline.Thickness, true, order, outlineNormal)
		case style.Outline.Direction == OutlineBoth:
			indices := arcRingIndices(start, ringLen)
			d.drawOutlineAroundShape(h, style, indices, style.Outline.Thickness, false, order, outlineNormal)
		default:
			d.drawOutline(h, style, vc, !isFullCircle, order, outlineNormal, false)
		}
		return
	}

	if !style.AAEnabled {
		return
	}
	s2 := DeriveAAStyle(style)
	if style.IsFilled {
		if isFullCircle {
			d.drawOutline(h, style, vc, !isFullCircle, order, outlineAA, false)
			return
		}
		indices := make([]int, 0, ringLen)
		for i := 0; i < ringLen; i++ {
			indices = append(indices, start+i)
		}
		d.drawOutlineAroundShape(h, s2, indices, s2.Outline.Thickness, true, order, outlineAA)
		return
	}
	if style.Outline.Direction == OutlineBoth {
		indices := arcRingIndices(start, ringLen)
		d.drawOutlineAroundShape(h, s2, indices, s2.Outline.Thickness, false, order, outlineAA)
		return
	}
	d.drawOutline(h, s2, vc, !isFullCircle, order, outlineAA, false)
}

// arcRingIndices walks a stroked arc's boundary: inner ring forward, outer
// ring backward, forming one closed loop.
func arcRingIndices(start, halfSize int) []int {
	fullSize := halfSize * 2
	indices := make([]int, 0, fullSize)
	for i := 0; i < halfSize; i++ {
		indices = append(indices, start+i)
	}
	for i := fullSize - 1; i > halfSize-1; i-- {
		indices = append(indices, start+i)
	}
	return indices
}

func circleData(hasCenter bool, center Vec2, radius float32, segments int, startAngle, endAngle float32) []Vertex {
	if startAngle < 0 {
		startAngle += 360
	}
	if endAngle < 0 {
		endAngle += 360
	}
	if endAngle == startAngle {
		endAngle = 0
		startAngle = 360
	}

	segments = clampInt(segments, 6, 180)
	step := 360 / float32(segments)
	mn := Vec2{X: center.X - radius, Y: center.Y - radius}
	mx := Vec2{X: center.X + radius, Y: center.Y + radius}
	uvOf := func(p Vec2) Vec2 {
		return Vec2{X: remap(p.X, mn.X, mx.X, 0, 1), Y: remap(p.Y, mn.Y, mx.Y, 0, 1)}
	}

	var verts []Vertex
	if hasCenter {
		verts = append(verts, Vertex{Pos: center, UV: uvOf(center)})
	}

	end := endAngle
	if math32.Abs(startAngle-endAngle) != 360 {
		// Arcs get one extra step so the last sample lands on endAngle.
		end = endAngle + step
	}
	for a := startAngle; a < end; a += step {
		p := pointOnCircle(center, radius, a)
		verts = append(verts, Vertex{Pos: p, UV: uvOf(p)})
	}
	return verts
}

// convex polygon

func (d *Drawer) convexImpl(points []Vec2, style StyleOptions, rotate float32, order int) {
	pnt := resolvePaint(style, false)
	h := pnt.buffer(d.arena, passShape, order)
	buf := d.arena.Buffer(h)

	size := len(points)
	var centerSum Vec2
	for _, p := range points {
		centerSum = centerSum.Add(p)
	}
	center := centerSum.Div(float32(size))
	mn, mx := pointBounds(points)
	uvOf := func(p Vec2) Vec2 {
		return Vec2{X: remap(p.X, mn.X, mx.X, 0, 1), Y: remap(p.Y, mn.Y, mx.Y, 0, 1)}
	}

	start := len(buf.Vertices)
	if style.IsFilled {
		uv := uvOf(center)
		buf.PushVertex(Vertex{Pos: center, UV: uv, Col: pnt.vertexColor(uv)})
	}
	for _, p := range points {
		uv := uvOf(p)
		buf.PushVertex(Vertex{Pos: p, UV: uv, Col: pnt.vertexColor(uv)})
	}

	if style.IsFilled {
		convexFillVertices(buf, start, start+size, false)
	} else {
		d.convexExtrudeVertices(buf, start, start+size-1, style.Thickness.Start, false)
	}

	rotStart, rotEnd := start, start+size*2-1
	if style.IsFilled {
		rotStart, rotEnd = start+1, start+size
	}
	rotateVertices(buf.Vertices, center, rotStart, rotEnd, rotate)

	vc := size
	if !style.IsFilled {
		vc = size * 2
	}
	d.finishShape(h, style, vc, false, order)
}

// getArcPoints samples the arc spanning p1 to p2. A non-sentinel hint point
// picks which side the arc bulges away from; radius 0 walks a circle through
// the endpoints, nonzero radius bulges a parabola instead. angleOffset trims
// both arc ends, used by rounded triangle corners.
func getArcPoints(p1, p2, hint Vec2, radius, segments float32, flip bool, angleOffset float32) []Vec2 {
	halfMag := p2.Sub(p1).Length() / 2
	center := p1.Add(p2).Mul(0.5)
	dir := p2.Sub(p1)

	noHint := isEqualMarg(hint.X, -1) && isEqualMarg(hint.Y, -1)
	if !noHint {
		if isEqualMarg(p1.X-p2.X, 0) {
			if p1.Y < p2.Y {
				if hint.X < p1.X {
					flip = true
				}
			} else if hint.X > p1.X {
				flip = true
			}
		} else {
			centerToHint := hint.Sub(center)
			if p2.X > p1.X {
				if centerToHint.Y > 0 {
					flip = true
				} else if isZero(centerToHint.Y) && centerToHint.X < 0 {
					flip = true
				}
			} else {
				if centerToHint.Y < 0 {
					flip = true
				} else if isZero(centerToHint.Y) && centerToHint.X > 0 {
					flip = true
				}
			}
		}
	}

	a, b := p1, p2
	if flip {
		a, b = p2, p1
	}
	angle1 := angleFromCenter(center, a)
	angle2 := angleFromCenter(center, b)

	var points []Vec2
	if isZero(angleOffset) {
		points = append(points, a)
	}
	if angle2 < angle1 {
		angle2 += 360
	}

	step := float32(1)
	if segments < 180 && segments >= 0 {
		step = 180 / segments
	}

	for i := angle1 + step + angleOffset; i < angle2-angleOffset; i += step {
		var p Vec2
		if isZero(radius) {
			p = pointOnCircle(center, halfMag, i)
		} else {
			out := rotate90(dir, !flip).Normalize()
			p = sampleParabola(p1, p2, out, radius, remap(i, angle1, angle2, 0, 1))
		}
		points = append(points, p)
	}
	return points
}
