package tess

import "errors"

// Sentinel errors for rejected draw calls. A rejected call emits no geometry
// and leaves the frame arena untouched; it is never fatal to the drawer.
var (
	// ErrTooFewPoints is returned when a polyline or convex shape is given
	// fewer than 3 points.
	ErrTooFewPoints = errors.New("tess: shape needs at least 3 points")

	// ErrNilFont is returned when a text draw call is issued without a font.
	ErrNilFont = errors.New("tess: nil font")

	// ErrNotSDFFont is returned when DrawTextSDF is called with a font that
	// was not loaded as SDF. Use DrawText instead.
	ErrNotSDFFont = errors.New("tess: font is not SDF, use DrawText")

	// ErrSDFFont is returned when DrawText is called with an SDF font.
	// Use DrawTextSDF instead.
	ErrSDFFont = errors.New("tess: font is SDF, use DrawTextSDF")
)
