//go:build tessindex16

package tess

// Index is the vertex index element type, shrunk to uint16 under the
// tessindex16 build tag for backends with 16-bit index buffers.
type Index = uint16
