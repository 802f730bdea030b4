package tess

import (
	"log/slog"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"
)

// BufferHandle refers to a DrawBuffer inside a FrameArena. Handles are
// only valid for the frame they were issued in; Buffer returns nil for a
// stale handle.
type BufferHandle struct {
	idx   int
	frame uint64
}

// FrameStats summarizes the geometry produced in one frame, computed by
// Drain.
type FrameStats struct {
	DrawCalls int
	Vertices  int
	Triangles int
}

// FrameArena owns every DrawBuffer produced during a frame. Buffers are
// pooled across frames so steady-state rendering allocates nothing. A
// FrameArena is not safe for concurrent use.
type FrameArena struct {
	buffers []DrawBuffer
	used    int
	frame   uint64

	clip Rect

	uvOverride struct {
		active bool
		tl, br Vec2
	}
	rectOverride struct {
		active bool
		p      [4]Vec2
	}

	textCache    *lru.Cache[textCacheKey, cachedGlyphRun]
	sdfTextCache *lru.Cache[textCacheKey, cachedGlyphRun]
}

func newFrameArena(cfg config) *FrameArena {
	a := &FrameArena{frame: 1}
	if cfg.textCacheSize > 0 {
		a.textCache, _ = lru.New[textCacheKey, cachedGlyphRun](cfg.textCacheSize)
	}
	if cfg.sdfTextCacheSize > 0 {
		a.sdfTextCache, _ = lru.New[textCacheKey, cachedGlyphRun](cfg.sdfTextCacheSize)
	}
	return a
}

// Reset recycles all buffers and starts a new frame. Handles issued before
// Reset become stale.
func (a *FrameArena) Reset() {
	for i := 0; i < a.used; i++ {
		a.buffers[i].reset()
	}
	a.used = 0
	a.frame++
}

// Frame returns the current frame counter.
func (a *FrameArena) Frame() uint64 { return a.frame }

// Buffer resolves a handle. It returns nil if the handle belongs to an
// earlier frame.
func (a *FrameArena) Buffer(h BufferHandle) *DrawBuffer {
	if h.frame != a.frame || h.idx >= a.used {
		Logger().Warn("tess: stale buffer handle",
			slog.Uint64("handle_frame", h.frame),
			slog.Uint64("arena_frame", a.frame))
		return nil
	}
	return &a.buffers[h.idx]
}

// SetClip sets the clip rect stamped onto buffers requested afterwards.
// A zero rect means unclipped.
func (a *FrameArena) SetClip(r Rect) { a.clip = r }

// Clip returns the active clip rect.
func (a *FrameArena) Clip() Rect { return a.clip }

func (a *FrameArena) alloc(kind BufferKind, pass drawPass, order int, userData uint64) BufferHandle {
	if a.used == len(a.buffers) {
		a.buffers = append(a.buffers, DrawBuffer{})
	}
	b := &a.buffers[a.used]
	b.Kind = kind
	b.pass = pass
	b.DrawOrder = order
	b.UserData = userData
	b.Clip = a.clip
	b.seq = a.used
	h := BufferHandle{idx: a.used, frame: a.frame}
	a.used++
	return h
}

func (a *FrameArena) match(kind BufferKind, pass drawPass, order int, userData uint64) (int, bool) {
	for i := 0; i < a.used; i++ {
		b := &a.buffers[i]
		if b.Kind == kind && b.pass == pass && b.DrawOrder == order &&
			b.UserData == userData && b.Clip == a.clip {
			return i, true
		}
	}
	return 0, false
}

// DefaultBuffer returns a buffer for plain vertex-colored geometry,
// batching into an existing one when the keys match.
func (a *FrameArena) DefaultBuffer(pass drawPass, order int, userData uint64) BufferHandle {
	if i, ok := a.match(KindDefault, pass, order, userData); ok {
		return BufferHandle{idx: i, frame: a.frame}
	}
	return a.alloc(KindDefault, pass, order, userData)
}

// GradientBuffer returns a buffer for fragment-shaded gradient geometry.
func (a *FrameArena) GradientBuffer(g Gradient, pass drawPass, order int, userData uint64) BufferHandle {
	for i := 0; i < a.used; i++ {
		b := &a.buffers[i]
		if b.Kind == KindGradient && b.pass == pass && b.DrawOrder == order &&
			b.UserData == userData && b.Clip == a.clip && b.Gradient == g {
			return BufferHandle{idx: i, frame: a.frame}
		}
	}
	h := a.alloc(KindGradient, pass, order, userData)
	a.buffers[h.idx].Gradient = g
	return h
}

// TextureBuffer returns a buffer for geometry sampling the given texture.
func (a *FrameArena) TextureBuffer(meta TextureMeta, pass drawPass, order int, userData uint64) BufferHandle {
	for i := 0; i < a.used; i++ {
		b := &a.buffers[i]
		if b.Kind == KindTextured && b.pass == pass && b.DrawOrder == order &&
			b.UserData == userData && b.Clip == a.clip && b.Texture == meta {
			return BufferHandle{idx: i, frame: a.frame}
		}
	}
	h := a.alloc(KindTextured, pass, order, userData)
	a.buffers[h.idx].Texture = meta
	return h
}

// SimpleTextBuffer returns a buffer for alpha-atlas text quads of one font.
func (a *FrameArena) SimpleTextBuffer(font *Font, order int, userData uint64, dropShadow bool) BufferHandle {
	for i := 0; i < a.used; i++ {
		b := &a.buffers[i]
		if b.Kind == KindSimpleText && b.DrawOrder == order && b.UserData == userData &&
			b.Clip == a.clip && b.Text.Font == font && b.Text.IsDropShadow == dropShadow {
			return BufferHandle{idx: i, frame: a.frame}
		}
	}
	h := a.alloc(KindSimpleText, passShape, order, userData)
	a.buffers[h.idx].Text = TextMeta{Font: font, IsDropShadow: dropShadow}
	return h
}

// SDFTextBuffer returns a buffer for SDF text quads sharing one font and one
// set of SDF shading parameters.
func (a *FrameArena) SDFTextBuffer(font *Font, sdf SDFMeta, order int, userData uint64, dropShadow bool) BufferHandle {
	for i := 0; i < a.used; i++ {
		b := &a.buffers[i]
		if b.Kind == KindSDFText && b.DrawOrder == order && b.UserData == userData &&
			b.Clip == a.clip && b.Text.Font == font && b.Text.SDF == sdf &&
			b.Text.IsDropShadow == dropShadow {
			return BufferHandle{idx: i, frame: a.frame}
		}
	}
	h := a.alloc(KindSDFText, passShape, order, userData)
	a.buffers[h.idx].Text = TextMeta{Font: font, SDF: sdf, IsDropShadow: dropShadow}
	return h
}

// Drain visits every non-empty buffer of the frame in render order: ascending
// draw order, shapes before their antialias fringes, grouped by kind, ties
// broken by creation order. It returns aggregate stats for the frame.
func (a *FrameArena) Drain(fn func(*DrawBuffer)) FrameStats {
	order := make([]*DrawBuffer, 0, a.used)
	for i := 0; i < a.used; i++ {
		if len(a.buffers[i].Indices) > 0 {
			order = append(order, &a.buffers[i])
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		bi, bj := order[i], order[j]
		if bi.DrawOrder != bj.DrawOrder {
			return bi.DrawOrder < bj.DrawOrder
		}
		if bi.pass != bj.pass {
			return bi.pass < bj.pass
		}
		if bi.Kind != bj.Kind {
			return bi.Kind < bj.Kind
		}
		return bi.seq < bj.seq
	})
	var stats FrameStats
	for _, b := range order {
		stats.DrawCalls++
		stats.Vertices += len(b.Vertices)
		stats.Triangles += len(b.Indices) / 3
		if fn != nil {
			fn(b)
		}
	}
	return stats
}
