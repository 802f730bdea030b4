package tess

import "github.com/chewxy/math32"

// polyLine is one segment of a polyline while joints are still being
// resolved: its vertices, the triangle list indexing into them, and the
// ordered indices of its upper and lower boundary used later for outlines
// and antialiasing. Vertices 0..3 are the segment quad: 0 upper-start,
// 1 upper-end, 2 lower-end, 3 lower-start. Cap midpoints, when present, sit
// at 4 (start) and 5 (end).
type polyLine struct {
	verts []Vertex
	upper []int
	lower []int
	tris  [][3]int

	hasMidpoints   bool
	capVertexCount int
}

func removeIndex(s []int, val int) []int {
	for i, v := range s {
		if v == val {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// calculateLine builds the quad for segment p1-p2, tapering from
// style.Thickness.Start to End, and appends a parabolic cap on the end
// capToAdd names.
func calculateLine(line *polyLine, p1, p2 Vec2, style StyleOptions, capToAdd LineCapDirection) {
	up := rotate90(p2.Sub(p1), true).Normalize()
	var v0, v1, v2, v3 Vertex

	v0.Pos = p1.Add(up.Mul(style.Thickness.Start / 2))
	v3.Pos = p1.Sub(up.Mul(style.Thickness.Start / 2))
	v1.Pos = p2.Add(up.Mul(style.Thickness.End / 2))
	v2.Pos = p2.Sub(up.Mul(style.Thickness.End / 2))
	v0.Col = style.Color.Start
	v3.Col = style.Color.Start
	v1.Col = style.Color.End
	v2.Col = style.Color.End
	line.verts = append(line.verts, v0, v1, v2, v3)

	upRaw := v0.Pos.Sub(v3.Pos)
	addCap := capToAdd == CapLeft || capToAdd == CapRight

	if addCap {
		vmLeft := Vertex{Pos: v0.Pos.Lerp(v3.Pos, 0.5), Col: style.Color.Start}
		vmRight := Vertex{Pos: v1.Pos.Lerp(v2.Pos, 0.5), Col: style.Color.End}
		line.verts = append(line.verts, vmLeft, vmRight)
		line.hasMidpoints = true

		upVtx, downVtx := v0, v3
		capCol := style.Color.Start
		if capToAdd == CapRight {
			upVtx, downVtx = v1, v2
			capCol = style.Color.End
		}

		increase := remap(style.Rounding, 0, 1, 0.4, 0.1)
		radius := (upRaw.Length() / 2) * 0.6
		dir := rotate90(up, capToAdd == CapLeft)

		var upperParabola, lowerParabola []int
		for k := increase; k < 1; k += increase {
			p := sampleParabola(upVtx.Pos, downVtx.Pos, dir, radius, k)
			line.verts = append(line.verts, Vertex{Pos: p, Col: capCol})
			line.capVertexCount++

			if p.Distance(upVtx.Pos) < p.Distance(downVtx.Pos) {
				upperParabola = append(upperParabola, len(line.verts)-1)
			} else {
				lowerParabola = append(lowerParabola, len(line.verts)-1)
			}
		}

		if capToAdd == CapLeft {
			for i := len(upperParabola) - 1; i >= 0; i-- {
				line.upper = append(line.upper, upperParabola[i])
			}
			line.upper = append(line.upper, 0, 1)
			line.lower = append(line.lower, lowerParabola...)
			line.lower = append(line.lower, 3, 2)
		} else {
			line.upper = append(line.upper, 0, 1)
			line.upper = append(line.upper, upperParabola...)
			line.lower = append(line.lower, 3, 2)
			for i := len(lowerParabola) - 1; i >= 0; i-- {
				line.lower = append(line.lower, lowerParabola[i])
			}
		}
	} else {
		line.upper = append(line.upper, 0, 1)
		line.lower = append(line.lower, 3, 2)
	}

	if addCap {
		line.tris = append(line.tris,
			[3]int{0, 1, 4},
			[3]int{1, 4, 5},
			[3]int{4, 5, 3},
			[3]int{5, 2, 3})

		middle, upperIdx, lowerIdx := 4, 0, 3
		if capToAdd == CapRight {
			middle, upperIdx, lowerIdx = 5, 1, 2
		}
		line.tris = append(line.tris,
			[3]int{upperIdx, 6, middle},
			[3]int{lowerIdx, len(line.verts) - 1, middle})
		for i := 6; i < len(line.verts)-1; i++ {
			line.tris = append(line.tris, [3]int{i, i + 1, middle})
		}
	} else {
		line.tris = append(line.tris, [3]int{0, 1, 3}, [3]int{1, 2, 3})
	}
}

// SimpleLine is the quad of a single untapered segment, corner order upper
// start, upper end, lower end, lower start.
type SimpleLine struct {
	Points [4]Vec2
}

// CalculateSimpleLine computes the quad DrawLine renders for p1-p2 with the
// style's thickness.
func CalculateSimpleLine(p1, p2 Vec2, style StyleOptions) SimpleLine {
	up := rotate90(p2.Sub(p1), true).Normalize()
	var l SimpleLine
	l.Points[0] = p1.Add(up.Mul(style.Thickness.Start / 2))
	l.Points[3] = p1.Sub(up.Mul(style.Thickness.Start / 2))
	l.Points[1] = p2.Add(up.Mul(style.Thickness.End / 2))
	l.Points[2] = p2.Sub(up.Mul(style.Thickness.End / 2))
	return l
}

func (d *Drawer) lineImpl(p1, p2 Vec2, style StyleOptions, cap LineCapDirection, rotate float32, order int) {
	l := CalculateSimpleLine(p1, p2, style)
	s := style
	s.IsFilled = true

	// Cap rounding maps onto rect corners: 0 and 3 are the start end of the
	// quad, 1 and 2 the far end.
	if cap == CapLeft || cap == CapBoth {
		s.OnlyRoundCorners = append(append([]int(nil), s.OnlyRoundCorners...), 0, 3)
		s.Rounding = 1
	}
	if cap == CapRight || cap == CapBoth {
		s.OnlyRoundCorners = append(append([]int(nil), s.OnlyRoundCorners...), 1, 2)
		s.Rounding = 1
	}

	d.drawSimpleLine(l, s, rotate, order)
}

func (d *Drawer) drawSimpleLine(l SimpleLine, style StyleOptions, rotate float32, order int) {
	d.arena.rectOverride.active = true
	d.arena.rectOverride.p = l.Points
	d.rectImpl(l.Points[0], l.Points[2], style, rotate, order)
	d.arena.rectOverride.active = false
}

func (d *Drawer) bezierImpl(p0, p1, p2, p3 Vec2, style StyleOptions, cap LineCapDirection, joint LineJointType, segments, order int) {
	acc := float32(clampInt(segments, 0, 100))
	increase := remap(acc, 0, 100, 0.15, 0.01)

	var points []Vec2
	addLast := true
	for t := float32(0); t < 1; t += increase {
		points = append(points, sampleBezier(p0, p1, p2, p3, t))
		if isEqualMarg(t, 1) {
			addLast = false
		}
	}
	if addLast {
		points = append(points, sampleBezier(p0, p1, p2, p3, 1))
	}

	d.linesImpl(points, style, cap, joint, order)
}

func (d *Drawer) linesImpl(points []Vec2, base StyleOptions, cap LineCapDirection, joint LineJointType, order int) {
	count := len(points)
	style := base
	style.IsFilled = true

	pnt := resolvePaintForLines(style)
	h := pnt.buffer(d.arena, passShape, order)

	// Build one polyLine per segment, tapering thickness over the whole
	// polyline and capping only the outermost ends.
	lines := make([]*polyLine, 0, count-1)
	for i := 0; i < count-1; i++ {
		usedCap := CapNone
		if i == 0 && (cap == CapLeft || cap == CapBoth) {
			usedCap = CapLeft
		} else if i == count-2 && (cap == CapRight || cap == CapBoth) {
			usedCap = CapRight
		}

		t := float32(i) / float32(count-1)
		t2 := float32(i+1) / float32(count-1)
		segStyle := style
		segStyle.Thickness.Start = lerp(base.Thickness.Start, base.Thickness.End, t)
		segStyle.Thickness.End = lerp(base.Thickness.Start, base.Thickness.End, t2)

		line := &polyLine{}
		calculateLine(line, points[i], points[i+1], segStyle, usedCap)
		lines = append(lines, line)
	}

	// Resolve joints between consecutive segments.
	for i := 0; i < len(lines)-1; i++ {
		curr := lines[i]
		next := lines[i+1]

		currDir := curr.verts[2].Pos.Sub(curr.verts[3].Pos).Normalize()
		nextDir := next.verts[2].Pos.Sub(next.verts[3].Pos).Normalize()

		if areLinesParallel(curr.verts[3].Pos, curr.verts[2].Pos, next.verts[3].Pos, next.verts[2].Pos) {
			next.upper = removeIndex(next.upper, 0)
			next.lower = removeIndex(next.lower, 3)
			continue
		}

		// Positive angle means the next segment turns downward, so the
		// lower vertices merge and the gap opens on the upper side.
		angle := angleBetweenDirs(currDir, nextDir)
		usedJoint := joint
		if joint != JointVtxAverage {
			if math32.Abs(angle) < 15 {
				usedJoint = JointVtxAverage
			} else {
				if joint == JointMiter && math32.Abs(angle) > d.cfg.miterLimit {
					usedJoint = JointBevelRound
				}
				if usedJoint == JointBevelRound && isZero(style.Rounding) {
					usedJoint = JointBevel
				}
			}
		}
		joinLines(curr, next, style, usedJoint, angle < 0)
	}

	// UVs span the bounding box of the whole polyline.
	var all []Vertex
	for _, l := range lines {
		all = append(all, l.verts...)
	}
	mn, mx := vertexBounds(all)
	for _, l := range lines {
		for j := range l.verts {
			l.verts[j].UV.X = remap(l.verts[j].Pos.X, mn.X, mx.X, 0, 1)
			l.verts[j].UV.Y = remap(l.verts[j].Pos.Y, mn.Y, mx.Y, 0, 1)
		}
	}

	buf := d.arena.Buffer(h)
	bufStartBeforeLines := len(buf.Vertices)
	for _, l := range lines {
		base := len(buf.Vertices)
		for _, v := range l.verts {
			buf.PushVertex(v)
		}
		for _, tri := range l.tris {
			buf.PushTriangle(Index(base+tri[0]), Index(base+tri[1]), Index(base+tri[2]))
		}
	}

	if isZero(style.Outline.Thickness) && !style.AAEnabled {
		return
	}

	// The outline ring walks the whole polyline boundary: lower edge
	// forward, upper edge backward.
	runStart := bufStartBeforeLines
	var totalUpper, totalLower []int
	for _, l := range lines {
		for _, j := range l.upper {
			totalUpper = append(totalUpper, runStart+j)
		}
		for _, j := range l.lower {
			totalLower = append(totalLower, runStart+j)
		}
		runStart += len(l.verts)
	}

	ring := make([]int, 0, len(totalUpper)+len(totalLower))
	ring = append(ring, totalLower...)
	for i := len(totalUpper) - 1; i >= 0; i-- {
		ring = append(ring, totalUpper[i])
	}

	if !isZero(style.Outline.Thickness) {
		d.drawOutlineAroundShape(h, style, ring, style.Outline.Thickness, false, order, outlineNormal)
	} else {
		s2 := DeriveAAStyle(style)
		d.drawOutlineAroundShape(h, s2, ring, s2.Outline.Thickness, false, order, outlineAA)
	}
}

// resolvePaintForLines differs from shape paint resolution: polylines color
// their vertices per segment end, so any gradient needs the gradient buffer.
func resolvePaintForLines(style StyleOptions) paint {
	if style.Texture != 0 {
		return paint{
			kind:  paintTextured,
			color: style.Color,
			texture: TextureMeta{
				Handle: style.Texture,
				Tiling: style.TextureTiling,
				Offset: style.TextureOffset,
				Tint:   style.Color.Start,
			},
			userData: style.UserData,
		}
	}
	if !style.Color.IsSolid() {
		return paint{kind: paintGradient, color: style.Color, userData: style.UserData}
	}
	return paint{kind: paintSolid, color: style.Color, userData: style.UserData}
}

// joinLines connects line1 to line2 with the given joint. mergeUpper tells
// which side collapses into one point; the other side receives the joint
// geometry.
func joinLines(line1, line2 *polyLine, opts StyleOptions, joint LineJointType, mergeUpper bool) {
	trackBoundary := opts.AAEnabled || !isZero(opts.Outline.Thickness)

	switch joint {
	case JointVtxAverage:
		upperAvg := line1.verts[1].Pos.Add(line2.verts[0].Pos).Mul(0.5)
		lowerAvg := line1.verts[2].Pos.Add(line2.verts[3].Pos).Mul(0.5)
		line1.verts[1].Pos = upperAvg
		line2.verts[0].Pos = upperAvg
		line1.verts[2].Pos = lowerAvg
		line2.verts[3].Pos = lowerAvg
		if trackBoundary {
			line2.upper = removeIndex(line2.upper, 0)
			line2.lower = removeIndex(line2.lower, 3)
		}

	case JointMiter:
		upperInter := lineIntersection(line1.verts[0].Pos, line1.verts[1].Pos, line2.verts[0].Pos, line2.verts[1].Pos)
		lowerInter := lineIntersection(line1.verts[3].Pos, line1.verts[2].Pos, line2.verts[3].Pos, line2.verts[2].Pos)
		line1.verts[1].Pos = upperInter
		line2.verts[0].Pos = upperInter
		line1.verts[2].Pos = lowerInter
		line2.verts[3].Pos = lowerInter
		if trackBoundary {
			line2.upper = removeIndex(line2.upper, 0)
			line2.lower = removeIndex(line2.lower, 3)
		}

	case JointBevel:
		i0, i1, i2, i3 := 0, 1, 2, 3
		if !mergeUpper {
			i0, i1, i2, i3 = 3, 2, 1, 0
		}
		if trackBoundary {
			if mergeUpper {
				line2.upper = removeIndex(line2.upper, 0)
			} else {
				line2.lower = removeIndex(line2.lower, 3)
			}
		}
		inter := lineIntersection(line1.verts[i0].Pos, line1.verts[i1].Pos, line2.verts[i0].Pos, line2.verts[i1].Pos)
		line1.verts[i1].Pos = inter
		line2.verts[i0].Pos = inter

		vLowIdx := len(line1.verts)
		line1.verts = append(line1.verts, Vertex{Pos: line2.verts[i3].Pos, Col: opts.Color.Start})
		line1.tris = append(line1.tris, [3]int{i1, i2, vLowIdx})

	case JointBevelRound:
		i0, i1, i2, i3 := 0, 1, 2, 3
		if !mergeUpper {
			i0, i1, i2, i3 = 3, 2, 1, 0
		}
		upperInter := lineIntersection(line1.verts[i0].Pos, line1.verts[i1].Pos, line2.verts[i0].Pos, line2.verts[i1].Pos)
		lowerInter := lineIntersection(line1.verts[i3].Pos, line1.verts[i2].Pos, line2.verts[i3].Pos, line2.verts[i2].Pos)
		interCenter := upperInter.Add(lowerInter).Mul(0.5)
		ang2 := angleFromCenter(interCenter, line1.verts[i2].Pos)
		ang1 := angleFromCenter(interCenter, line2.verts[i3].Pos)
		startAngle := math32.Min(ang1, ang2)
		endAngle := math32.Max(ang1, ang2)
		arcRad := line1.verts[i2].Pos.Sub(interCenter).Length()

		line1.verts[i1].Pos = upperInter
		line2.verts[i0].Pos = upperInter

		if trackBoundary {
			if mergeUpper {
				line2.upper = removeIndex(line2.upper, 0)
			} else {
				line2.lower = removeIndex(line2.lower, 3)
			}
		}

		vLowIdx := len(line1.verts)
		line1.verts = append(line1.verts, Vertex{Pos: line2.verts[i3].Pos, Col: opts.Color.Start})

		increase := remap(opts.Rounding, 0, 1, 45, 6)
		arcStart := len(line1.verts)

		var boundaryToAdd []int
		for k := startAngle + increase; k < endAngle; k += increase {
			p := pointOnCircle(interCenter, arcRad, k)
			if trackBoundary {
				boundaryToAdd = append(boundaryToAdd, len(line1.verts))
			}
			line1.verts = append(line1.verts, Vertex{Pos: p, Col: opts.Color.Start})
		}

		if trackBoundary {
			// The arc samples run by increasing angle; flip them when that
			// runs against the boundary walk direction.
			forward := ang1 > ang2
			if mergeUpper {
				if forward {
					line1.lower = append(line1.lower, boundaryToAdd...)
				} else {
					for i := len(boundaryToAdd) - 1; i >= 0; i-- {
						line1.lower = append(line1.lower, boundaryToAdd[i])
					}
				}
			} else {
				if forward {
					line1.upper = append(line1.upper, boundaryToAdd...)
				} else {
					for i := len(boundaryToAdd) - 1; i >= 0; i-- {
						line1.upper = append(line1.upper, boundaryToAdd[i])
					}
				}
			}
		}

		last := len(line1.verts) - 1
		tri1Third, tri2Third := last, arcStart
		if ang1 > ang2 {
			tri1Third, tri2Third = arcStart, last
		}
		line1.tris = append(line1.tris,
			[3]int{i1, i2, tri1Third},
			[3]int{i1, vLowIdx, tri2Third})
		for i := arcStart; i < len(line1.verts)-1; i++ {
			line1.tris = append(line1.tris, [3]int{i1, i, i + 1})
		}
	}
}
