package tess

// Drawer tessellates shapes, lines and text into DrawBuffers held by its
// FrameArena. One Drawer serves one render target; it is not safe for
// concurrent use.
type Drawer struct {
	arena *FrameArena
	cfg   config
}

// NewDrawer returns a Drawer with its own FrameArena.
func NewDrawer(opts ...Option) *Drawer {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &Drawer{arena: newFrameArena(cfg), cfg: cfg}
}

// BeginFrame recycles last frame's buffers. Call it once per frame before
// any draw.
func (d *Drawer) BeginFrame() {
	d.arena.Reset()
}

// Arena exposes the drawer's buffer arena, for draining buffers into a
// backend and for resolving handles.
func (d *Drawer) Arena() *FrameArena { return d.arena }

// SetClip sets the scissor rect stamped onto subsequent draws. A zero rect
// disables clipping.
func (d *Drawer) SetClip(r Rect) { d.arena.SetClip(r) }

// DrawPoint draws a single pixel-sized point.
func (d *Drawer) DrawPoint(p Vec2, color RGBA, order int) {
	half := d.cfg.framebufferScale * 0.5
	style := DefaultStyle()
	style.Color = Solid(color)
	style.AAEnabled = false
	d.DrawRect(Vec2{X: p.X - half, Y: p.Y - half}, Vec2{X: p.X + half, Y: p.Y + half}, style, 0, order)
}

// DrawLine draws a single segment from p1 to p2. Rounded caps are added on
// the ends cap selects; style.Rounding shapes the cap arc.
func (d *Drawer) DrawLine(p1, p2 Vec2, style StyleOptions, cap LineCapDirection, rotate float32, order int) {
	d.lineImpl(p1, p2, style, cap, rotate, order)
}

// DrawLines draws a polyline through points, connecting segments with the
// given joint. It needs at least 3 points; use DrawLine for a single
// segment.
func (d *Drawer) DrawLines(points []Vec2, style StyleOptions, cap LineCapDirection, joint LineJointType, order int) error {
	if len(points) < 3 {
		return ErrTooFewPoints
	}
	d.linesImpl(points, style, cap, joint, order)
	return nil
}

// DrawBezier draws a cubic bezier from p0 to p3 with control points p1 and
// p2 as a polyline. segments in [0, 100] trades smoothness for vertex
// count.
func (d *Drawer) DrawBezier(p0, p1, p2, p3 Vec2, style StyleOptions, cap LineCapDirection, joint LineJointType, segments, order int) {
	d.bezierImpl(p0, p1, p2, p3, style, cap, joint, segments, order)
}

// DrawRect draws an axis-aligned rectangle spanning min to max, rotated by
// rotate degrees about its center.
func (d *Drawer) DrawRect(min, max Vec2, style StyleOptions, rotate float32, order int) {
	d.rectImpl(min, max, style, rotate, order)
}

// DrawTriangle draws the triangle top, right, left. The vertex order names
// the corners used by OnlyRoundCorners: 0 top, 1 right, 2 left.
func (d *Drawer) DrawTriangle(top, right, left Vec2, style StyleOptions, rotate float32, order int) {
	d.triImpl(top, right, left, style, rotate, order)
}

// DrawNGon draws a regular n-sided polygon. n below 3 is raised to 3.
func (d *Drawer) DrawNGon(center Vec2, radius float32, n int, style StyleOptions, rotate float32, order int) {
	if n < 3 {
		n = 3
	}
	d.ngonImpl(center, radius, n, style, rotate, order)
}

// DrawCircle draws a circle or arc. segments is clamped to [6, 180].
// startAngle and endAngle in degrees bound an arc; equal angles draw the
// full circle.
func (d *Drawer) DrawCircle(center Vec2, radius float32, style StyleOptions, segments int, rotate, startAngle, endAngle float32, order int) {
	d.circleImpl(center, radius, style, segments, rotate, startAngle, endAngle, order)
}

// DrawConvex draws the convex polygon wound clockwise through points. It
// needs at least 3 points. Rounding is ignored for arbitrary polygons.
func (d *Drawer) DrawConvex(points []Vec2, style StyleOptions, rotate float32, order int) error {
	if len(points) < 3 {
		return ErrTooFewPoints
	}
	d.convexImpl(points, style, rotate, order)
	return nil
}

// ImageOptions tunes DrawImage. The zero value draws the full texture
// untinted.
type ImageOptions struct {
	Tint   RGBA
	Tiling Vec2
	Offset Vec2

	// UVTopLeft and UVBottomRight crop the sampled region. Both zero means
	// the full texture.
	UVTopLeft     Vec2
	UVBottomRight Vec2

	Rounding         float32
	OnlyRoundCorners []int
	UserData         uint64
}

// DrawImage draws a texture as a rectangle of the given size centered at
// pos.
func (d *Drawer) DrawImage(texture TextureHandle, pos, size Vec2, opts ImageOptions, rotate float32, order int) {
	if texture == 0 {
		Logger().Warn("tess: DrawImage with zero texture handle")
		return
	}
	if opts.Tint == (RGBA{}) {
		opts.Tint = White
	}
	if opts.Tiling == (Vec2{}) {
		opts.Tiling = Vec2{X: 1, Y: 1}
	}
	style := DefaultStyle()
	style.Color = Solid(opts.Tint)
	style.Texture = texture
	style.TextureTiling = opts.Tiling
	style.TextureOffset = opts.Offset
	style.Rounding = opts.Rounding
	style.OnlyRoundCorners = opts.OnlyRoundCorners
	style.UserData = opts.UserData

	if opts.UVTopLeft != (Vec2{}) || opts.UVBottomRight != (Vec2{}) {
		d.arena.uvOverride.active = true
		d.arena.uvOverride.tl = opts.UVTopLeft
		d.arena.uvOverride.br = opts.UVBottomRight
		defer func() { d.arena.uvOverride.active = false }()
	}

	half := size.Mul(0.5)
	d.DrawRect(pos.Sub(half), pos.Add(half), style, rotate, order)
}
