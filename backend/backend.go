package backend

import (
	"errors"
	"image"

	"github.com/gogpu/tess"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not
	// available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")

	// ErrUnknownTexture is returned when a draw buffer references a texture
	// handle the backend never created.
	ErrUnknownTexture = errors.New("backend: unknown texture handle")
)

// RenderBackend consumes the buffers a frame produced and renders them.
// Backends must be registered via Register and are selected via Get or
// Default.
type RenderBackend interface {
	// Name returns the backend identifier (e.g. "software").
	Name() string

	// Init initializes the backend. It must be called before any rendering
	// operations.
	Init() error

	// Close releases all backend resources. The backend must not be used
	// after Close.
	Close()

	// CreateTexture uploads an image and returns the handle draw styles and
	// fonts reference it by.
	CreateTexture(img image.Image) tess.TextureHandle

	// Render drains the drawer's frame and renders every buffer to target
	// in draw order. It returns the frame's aggregate stats.
	Render(target *image.RGBA, d *tess.Drawer) (tess.FrameStats, error)
}
