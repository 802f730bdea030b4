package tess

// paintKind is the resolved fill mode of a draw, collapsing the texture /
// gradient / solid precedence into one tag checked everywhere.
type paintKind int

const (
	paintSolid paintKind = iota
	paintGradient
	paintTextured
)

// paint is the fully resolved fill of one shape draw.
type paint struct {
	kind     paintKind
	color    Gradient
	texture  TextureMeta
	userData uint64
}

// resolvePaint decides how a style fills geometry. Precedence: a texture
// wins over everything; a radial gradient, or any gradient on a rounded
// shape, needs fragment shading and goes to the gradient buffer; remaining
// gradients are baked into vertex colors in the default buffer.
func resolvePaint(style StyleOptions, rounded bool) paint {
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
		radial := style.Color.Type == GradientRadial || style.Color.Type == GradientRadialCorner
		if radial || rounded {
			return paint{kind: paintGradient, color: style.Color, userData: style.UserData}
		}
	}
	return paint{kind: paintSolid, color: style.Color, userData: style.UserData}
}

// buffer acquires the arena buffer this paint renders into.
func (p paint) buffer(a *FrameArena, pass drawPass, order int) BufferHandle {
	switch p.kind {
	case paintTextured:
		return a.TextureBuffer(p.texture, pass, order, p.userData)
	case paintGradient:
		return a.GradientBuffer(p.color, pass, order, p.userData)
	default:
		return a.DefaultBuffer(pass, order, p.userData)
	}
}

// vertexColor returns the color baked into a vertex at normalized shape
// position uv. Gradient-buffer paints carry the start color on every vertex
// and shade in the fragment stage; textured paints bake the gradient into
// the per-vertex tint.
func (p paint) vertexColor(uv Vec2) RGBA {
	if p.kind == paintGradient {
		return p.color.Start
	}
	switch p.color.Type {
	case GradientHorizontal:
		return lerpColor(p.color.Start, p.color.End, uv.X)
	case GradientVertical:
		return lerpColor(p.color.Start, p.color.End, uv.Y)
	default:
		return p.color.Start
	}
}
