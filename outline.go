package tess

// callType distinguishes the three reasons boundary extrusion runs: a real
// outline, the antialias fringe of a shape, and the antialias fringe of an
// outline that was just drawn.
type callType int

const (
	outlineNormal callType = iota
	outlineAA
	outlineOutlineAA
)

func (d *Drawer) outlineThickness(style StyleOptions, kind callType, def float32) float32 {
	if kind != outlineNormal {
		return d.cfg.framebufferScale * style.AAMultiplier * d.cfg.aaMultiplier
	}
	return def * d.cfg.framebufferScale
}

// outlineDestBuffer picks the buffer an outline or fringe lands in. Fringes
// inherit the paint of what they soften; outlines carry their own paint.
func (d *Drawer) outlineDestBuffer(src BufferHandle, style StyleOptions, kind callType, order int) BufferHandle {
	isAA := kind != outlineNormal

	var isGradient bool
	if isAA {
		isGradient = d.arena.Buffer(src).Kind == KindGradient
	} else {
		isGradient = !style.Outline.Color.IsSolid()
	}

	var useTexture bool
	if kind == outlineAA {
		useTexture = style.Texture != 0
	} else {
		useTexture = style.Outline.Texture != 0
	}

	pass := passShape
	if isAA {
		pass = passAA
	}

	switch {
	case useTexture:
		meta := TextureMeta{
			Handle: style.Outline.Texture,
			Tiling: style.Outline.TextureTiling,
			Offset: style.Outline.TextureOffset,
			Tint:   style.Outline.Color.Start,
		}
		if kind == outlineAA {
			meta.Handle = style.Texture
			meta.Tiling = style.TextureTiling
			meta.Offset = style.TextureOffset
		}
		return d.arena.TextureBuffer(meta, pass, order, style.UserData)
	case isGradient && !useTexture:
		col := style.Outline.Color
		if kind == outlineAA {
			col = style.Color
		}
		return d.arena.GradientBuffer(col, pass, order, style.UserData)
	default:
		return d.arena.DefaultBuffer(pass, order, style.UserData)
	}
}

// drawOutlineAroundShape extrudes an outline ring around an arbitrary closed
// boundary given by indicesOrder, buffer-local vertex indices of src walked
// in ring order. Used for boundaries that are not the last N vertices of the
// buffer: polylines and arc strokes.
func (d *Drawer) drawOutlineAroundShape(src BufferHandle, style StyleOptions, indicesOrder []int, defThickness float32, ccw bool, order int, kind callType) BufferHandle {
	thickness := d.outlineThickness(style, kind, defThickness)
	isAA := kind != outlineNormal
	vertexCount := len(indicesOrder)

	dst := d.outlineDestBuffer(src, style, kind, order)
	srcBuf := d.arena.Buffer(src)
	dstBuf := d.arena.Buffer(dst)
	dstKind := dstBuf.Kind

	var copiedOrder, extrudedOrder []int
	collectAA := style.AAEnabled && !isAA

	dstStart := len(dstBuf.Vertices)
	for _, idx := range indicesOrder {
		v := Vertex{
			Pos: srcBuf.Vertices[idx].Pos,
			UV:  srcBuf.Vertices[idx].UV,
		}
		if isAA {
			v.Col = srcBuf.Vertices[idx].Col
		} else {
			v.Col = style.Outline.Color.Start
		}
		if collectAA {
			copiedOrder = append(copiedOrder, len(dstBuf.Vertices))
		}
		dstBuf.PushVertex(v)
	}

	for i := 0; i < vertexCount; i++ {
		prev := dstStart + i - 1
		if i == 0 {
			prev = dstStart + vertexCount - 1
		}
		next := dstStart + i + 1
		if i == vertexCount-1 {
			next = dstStart
		}
		current := dstStart + i

		v := Vertex{UV: dstBuf.Vertices[current].UV}
		if isAA {
			v.Col = srcBuf.Vertices[indicesOrder[i]].Col
			v.Col.A = 0
		} else {
			v.Col = style.Outline.Color.End
		}
		v.Pos = extrudedFromNormalCCW(dstBuf.Vertices[current].Pos,
			dstBuf.Vertices[prev].Pos, dstBuf.Vertices[next].Pos, thickness, ccw)

		if collectAA {
			extrudedOrder = append(extrudedOrder, len(dstBuf.Vertices))
		}
		dstBuf.PushVertex(v)
	}

	if !isAA && (dstKind == KindTextured || dstKind == KindGradient) {
		calculateVertexUVs(dstBuf, dstStart, dstStart+vertexCount*2-1)
	}

	for i := 0; i < vertexCount; i++ {
		current := dstStart + i
		next := dstStart + i + 1
		if i == vertexCount-1 {
			next = dstStart
		}
		dstBuf.PushTriangle(Index(current), Index(next), Index(current+vertexCount))
		dstBuf.PushTriangle(Index(next), Index(next+vertexCount), Index(current+vertexCount))
	}

	if collectAA {
		// Both fringes extrude around rings held in dst; extrudedOrder and
		// copiedOrder are dst-local indices.
		s2 := style
		d.drawOutlineAroundShape(dst, s2, extrudedOrder, defThickness, ccw, order, outlineOutlineAA)
		d.drawOutlineAroundShape(dst, s2, copiedOrder, -defThickness, !ccw, order, outlineOutlineAA)
	}

	return dst
}

// drawOutline extrudes an outline around the boundary held in the last
// vertexCount vertices of src. For filled shapes that window is the outer
// ring; for stroked shapes it is both rings of the band, halved by the
// outline direction. skipEnds handles open boundaries (arcs).
func (d *Drawer) drawOutline(src BufferHandle, style StyleOptions, vertexCount int, skipEnds bool, order int, kind callType, reverseDir bool) BufferHandle {
	isAA := kind != outlineNormal
	thickness := d.outlineThickness(style, kind, style.Outline.Thickness)
	if reverseDir {
		thickness = -thickness
	}

	dst := d.outlineDestBuffer(src, style, kind, order)
	srcBuf := d.arena.Buffer(src)
	dstBuf := d.arena.Buffer(dst)
	dstKind := dstBuf.Kind
	recalcUVs := dstKind == KindTextured || dstKind == KindGradient

	var startIndex, endIndex int
	if style.IsFilled {
		endIndex = len(srcBuf.Vertices) - 1
		startIndex = len(srcBuf.Vertices) - vertexCount
	} else {
		switch style.Outline.Direction {
		case OutlineOutwards:
			endIndex = len(srcBuf.Vertices) - 1
			startIndex = len(srcBuf.Vertices) - vertexCount/2
		case OutlineInwards:
			endIndex = len(srcBuf.Vertices) - vertexCount/2 - 1
			startIndex = len(srcBuf.Vertices) - vertexCount
		default:
			endIndex = len(srcBuf.Vertices) - 1
			startIndex = len(srcBuf.Vertices) - vertexCount
		}
	}

	copyAndFill := func(startIndex, endIndex int, thickness float32) {
		dstStart := len(dstBuf.Vertices)
		totalSize := endIndex - startIndex + 1

		for i := startIndex; i <= endIndex; i++ {
			v := Vertex{Pos: srcBuf.Vertices[i].Pos, UV: srcBuf.Vertices[i].UV}
			if isAA {
				v.Col = srcBuf.Vertices[i].Col
			} else {
				v.Col = style.Outline.Color.Start
			}
			dstBuf.PushVertex(v)
		}

		for i := startIndex; i <= endIndex; i++ {
			prev := i - 1
			if i == startIndex {
				prev = endIndex
			}
			next := i + 1
			if i == endIndex {
				next = startIndex
			}
			v := Vertex{UV: srcBuf.Vertices[i].UV}
			if isAA {
				v.Col = srcBuf.Vertices[i].Col
				v.Col.A = 0
			} else {
				v.Col = style.Outline.Color.End
			}
			switch {
			case skipEnds && i == startIndex:
				v.Pos = extrudedOneSided(srcBuf.Vertices[i].Pos, srcBuf.Vertices[next].Pos, thickness, false)
			case skipEnds && i == endIndex:
				v.Pos = extrudedOneSided(srcBuf.Vertices[i].Pos, srcBuf.Vertices[prev].Pos, thickness, true)
			default:
				v.Pos = extrudedFromNormal(srcBuf.Vertices[i].Pos, srcBuf.Vertices[prev].Pos, srcBuf.Vertices[next].Pos, thickness)
			}
			dstBuf.PushVertex(v)
		}

		if !isAA && recalcUVs {
			calculateVertexUVs(dstBuf, dstStart, dstStart+totalSize*2-1)
		}

		for i := dstStart; i < dstStart+totalSize; i++ {
			next := i + 1
			if next >= dstStart+totalSize {
				next = dstStart
			}
			if skipEnds && i == dstStart+totalSize-1 {
				return
			}
			dstBuf.PushTriangle(Index(i), Index(next), Index(i+totalSize))
			dstBuf.PushTriangle(Index(next), Index(next+totalSize), Index(i+totalSize))
		}
	}

	useAA := style.AAEnabled && !isAA

	if style.IsFilled {
		switch style.Outline.Direction {
		case OutlineOutwards, OutlineBoth:
			copyAndFill(startIndex, endIndex, thickness)
			if useAA {
				s2 := style
				s2.IsFilled = false
				s2.Outline.Direction = OutlineOutwards
				d.drawOutline(dst, s2, vertexCount*2, skipEnds, order, outlineOutlineAA, false)
				s2.Outline.Direction = OutlineInwards
				d.drawOutline(dst, s2, vertexCount*2, skipEnds, order, outlineOutlineAA, false)
			}
		case OutlineInwards:
			copyAndFill(startIndex, endIndex, -thickness)
			if useAA {
				s2 := style
				s2.Outline.Direction = OutlineOutwards
				d.drawOutline(dst, s2, vertexCount, skipEnds, order, outlineOutlineAA, true)
				s2.Outline.Direction = OutlineInwards
				s2.IsFilled = false
				d.drawOutline(dst, s2, vertexCount*2, skipEnds, order, outlineOutlineAA, true)
			}
		}
		return dst
	}

	switch style.Outline.Direction {
	case OutlineOutwards:
		if useAA {
			s3 := DeriveOutlineStyle(style, OutlineInwards)
			d.drawOutline(src, s3, vertexCount, skipEnds, order, outlineOutlineAA, false)
			dstBuf = d.arena.Buffer(dst)
			srcBuf = d.arena.Buffer(src)
		}
		copyAndFill(startIndex, endIndex, thickness)
		if useAA {
			s2 := style
			s2.Outline.Direction = OutlineOutwards
			d.drawOutline(dst, s2, vertexCount, skipEnds, order, outlineOutlineAA, false)
			s2.Outline.Direction = OutlineInwards
			d.drawOutline(dst, s2, vertexCount, skipEnds, order, outlineOutlineAA, false)
		}
	case OutlineInwards:
		if useAA {
			s3 := DeriveOutlineStyle(style, OutlineOutwards)
			d.drawOutline(src, s3, vertexCount, skipEnds, order, outlineOutlineAA, false)
			dstBuf = d.arena.Buffer(dst)
			srcBuf = d.arena.Buffer(src)
		}
		copyAndFill(startIndex, endIndex, -thickness)
		if useAA {
			s2 := style
			s2.Outline.Direction = OutlineOutwards
			d.drawOutline(dst, s2, vertexCount, skipEnds, order, outlineOutlineAA, true)
			s2.Outline.Direction = OutlineInwards
			d.drawOutline(dst, s2, vertexCount, skipEnds, order, outlineOutlineAA, true)
		}
	default:
		copyAndFill(startIndex, startIndex+vertexCount/2-1, -thickness)
		if useAA {
			s2 := style
			s2.Outline.Direction = OutlineOutwards
			d.drawOutline(dst, s2, vertexCount, skipEnds, order, outlineOutlineAA, true)
			s2.Outline.Direction = OutlineInwards
			d.drawOutline(dst, s2, vertexCount, skipEnds, order, outlineOutlineAA, true)
			dstBuf = d.arena.Buffer(dst)
			srcBuf = d.arena.Buffer(src)
		}
		copyAndFill(startIndex+vertexCount/2, endIndex, thickness)
		if useAA {
			s2 := style
			s2.Outline.Direction = OutlineOutwards
			d.drawOutline(dst, s2, vertexCount, skipEnds, order, outlineOutlineAA, false)
			s2.Outline.Direction = OutlineInwards
			d.drawOutline(dst, s2, vertexCount, skipEnds, order, outlineOutlineAA, false)
		}
	}
	return dst
}
