//go:build !tessindex16

package tess

// Index is the vertex index element type. Build with the tessindex16 tag to
// shrink it to uint16 for backends with 16-bit index buffers.
type Index = uint32
