package tess

type config struct {
	aaMultiplier     float32
	framebufferScale float32
	miterLimit       float32
	textCacheSize    int
	sdfTextCacheSize int
}

func defaultConfig() config {
	return config{
		aaMultiplier:     1,
		framebufferScale: 1,
		miterLimit:       150,
		textCacheSize:    512,
		sdfTextCacheSize: 512,
	}
}

// Option configures a Drawer.
type Option func(*config)

// WithAAMultiplier scales the width of every antialias fringe the drawer
// produces. It multiplies with the per-style AAMultiplier.
func WithAAMultiplier(m float32) Option {
	return func(c *config) { c.aaMultiplier = m }
}

// WithFramebufferScale adapts pixel-space thicknesses to high-DPI targets.
func WithFramebufferScale(s float32) Option {
	return func(c *config) { c.framebufferScale = s }
}

// WithMiterLimit sets the joint angle in degrees past which a miter joint
// falls back to a rounded bevel.
func WithMiterLimit(deg float32) Option {
	return func(c *config) { c.miterLimit = deg }
}

// WithTextCache sizes the shaped-text cache. Size 0 disables caching.
func WithTextCache(size int) Option {
	return func(c *config) { c.textCacheSize = size }
}

// WithSDFTextCache sizes the shaped SDF text cache. Size 0 disables caching.
func WithSDFTextCache(size int) Option {
	return func(c *config) { c.sdfTextCacheSize = size }
}
