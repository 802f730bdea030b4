// Package tess is a 2D vector-graphics tessellation engine for Go.
//
// # Overview
//
// tess turns high-level drawing requests (rectangles, circles, polygons,
// polylines, text) into triangulated vertex/index buffers ready for GPU
// submission, and batches those buffers by visual properties (solid, gradient,
// textured, text, SDF text) so a backend can render each batch with a single
// indexed draw call.
//
// # Quick Start
//
//	import "github.com/gogpu/tess"
//
//	d := tess.NewDrawer()
//	d.BeginFrame()
//
//	style := tess.DefaultStyle()
//	style.Color = tess.Solid(tess.Red)
//	d.DrawRect(tess.V2(0, 0), tess.V2(100, 50), style, 0, 0)
//
//	d.Arena().Drain(func(buf *tess.DrawBuffer) {
//	    // upload buf.Vertices / buf.Indices and issue one draw call
//	})
//
// # Architecture
//
// The library is organized into:
//   - Public API: Drawer, FrameArena, DrawBuffer, StyleOptions, Vec2
//   - fontkit: font loading, glyph atlas packing and kerning extraction
//   - backend: the rendering-backend seam with a software reference backend
//
// All geometry is float32, matching the vertex format consumed by GPUs.
// Index width is uint32 by default; build with the tessindex16 tag for
// uint16 indices.
//
// A Drawer is single-threaded by design: all draw calls for a frame run
// sequentially on one goroutine between BeginFrame and the backend drain.
package tess
