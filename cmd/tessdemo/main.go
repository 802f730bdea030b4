// Command tessdemo tessellates a set of shapes, lines and gradients and
// renders them to a PNG with the software backend.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/gogpu/tess"
	"github.com/gogpu/tess/backend"
)

func main() {
	var (
		width  = flag.Int("width", 800, "image width")
		height = flag.Int("height", 600, "image height")
		output = flag.String("output", "demo.png", "output file")
	)
	flag.Parse()

	be, err := backend.InitDefault()
	if err != nil {
		log.Fatalf("Failed to init backend: %v", err)
	}
	defer be.Close()

	d := tess.NewDrawer()
	d.BeginFrame()

	drawBackground(d, float32(*width), float32(*height))
	drawShapes(d)
	drawLines(d)

	target := image.NewRGBA(image.Rect(0, 0, *width, *height))
	stats, err := be.Render(target, d)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	defer f.Close()
	if err := png.Encode(f, target); err != nil {
		log.Fatalf("Failed to encode: %v", err)
	}

	log.Printf("Demo saved to %s (%d draw calls, %d tris)\n", *output, stats.DrawCalls, stats.Triangles)
}

func drawBackground(d *tess.Drawer, w, h float32) {
	style := tess.DefaultStyle()
	style.Color = tess.Gradient{
		Start: tess.RGBA{R: 0.1, G: 0.2, B: 0.4, A: 1},
		End:   tess.RGBA{R: 0.5, G: 0.5, B: 0.6, A: 1},
		Type:  tess.GradientVertical,
	}
	d.DrawRect(tess.V2(0, 0), tess.V2(w, h), style, 0, 0)
}

func drawShapes(d *tess.Drawer) {
	// Rounded rectangle with an outline.
	rect := tess.DefaultStyle()
	rect.Color = tess.Solid(tess.RGBA{R: 0.8, G: 0.2, B: 0.2, A: 1})
	rect.Rounding = 0.4
	rect.Outline = tess.OutlineOptions{
		Thickness: 3,
		Color:     tess.Solid(tess.White),
		Direction: tess.OutlineOutwards,
	}
	d.DrawRect(tess.V2(50, 50), tess.V2(200, 150), rect, 0, 1)

	// Radial gradient circle.
	circle := tess.DefaultStyle()
	circle.Color = tess.Gradient{
		Start:      tess.RGBA{R: 1, G: 0.9, B: 0.3, A: 1},
		End:        tess.RGBA{R: 0.9, G: 0.3, B: 0.1, A: 1},
		Type:       tess.GradientRadial,
		RadialSize: 1,
	}
	d.DrawCircle(tess.V2(350, 100), 60, circle, 48, 0, 0, 0, 1)

	// Stroked hexagon.
	hex := tess.DefaultStyle()
	hex.Color = tess.Solid(tess.RGBA{R: 0.4, G: 0.9, B: 0.5, A: 1})
	hex.IsFilled = false
	hex.Thickness = tess.Uniform(6)
	d.DrawNGon(tess.V2(520, 100), 55, 6, hex, 15, 1)

	// Arc.
	arc := tess.DefaultStyle()
	arc.Color = tess.Solid(tess.RGBA{R: 0.3, G: 0.7, B: 1, A: 1})
	arc.IsFilled = false
	arc.Thickness = tess.Uniform(8)
	d.DrawCircle(tess.V2(670, 100), 55, arc, 48, 0, 180, 360, 1)

	// Rotated triangle.
	tri := tess.DefaultStyle()
	tri.Color = tess.Solid(tess.RGBA{R: 0.9, G: 0.5, B: 0.1, A: 1})
	d.DrawTriangle(tess.V2(125, 250), tess.V2(185, 350), tess.V2(65, 350), tri, 20, 1)
}

func drawLines(d *tess.Drawer) {
	// Tapered single line with rounded caps.
	line := tess.DefaultStyle()
	line.Color = tess.Solid(tess.RGBA{R: 0.9, G: 0.9, B: 0.9, A: 1})
	line.Thickness = tess.Thickness{Start: 2, End: 14}
	line.Rounding = 1
	d.DrawLine(tess.V2(300, 250), tess.V2(550, 300), line, tess.CapBoth, 0, 2)

	// Polyline with round joints.
	poly := tess.DefaultStyle()
	poly.Color = tess.Gradient{
		Start: tess.RGBA{R: 0.2, G: 0.9, B: 0.9, A: 1},
		End:   tess.RGBA{R: 0.9, G: 0.2, B: 0.9, A: 1},
		Type:  tess.GradientHorizontal,
	}
	poly.Thickness = tess.Uniform(10)
	poly.Rounding = 0.5
	points := []tess.Vec2{
		tess.V2(80, 450), tess.V2(200, 400), tess.V2(320, 500),
		tess.V2(440, 420), tess.V2(560, 480),
	}
	if err := d.DrawLines(points, poly, tess.CapNone, tess.JointBevelRound, 2); err != nil {
		log.Fatalf("Failed to draw polyline: %v", err)
	}

	// Bezier curve.
	bez := tess.DefaultStyle()
	bez.Color = tess.Solid(tess.RGBA{R: 1, G: 0.8, B: 0.2, A: 1})
	bez.Thickness = tess.Uniform(5)
	d.DrawBezier(tess.V2(600, 550), tess.V2(650, 400), tess.V2(720, 580), tess.V2(770, 430),
		bez, tess.CapNone, tess.JointVtxAverage, 50, 2)
}
