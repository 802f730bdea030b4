// Package backend defines the rendering backend interface consuming the
// draw buffers a tess.Drawer produces, plus a registry for backend
// selection. The package ships a CPU rasterizer; GPU backends register
// themselves through Register from their own packages.
package backend
