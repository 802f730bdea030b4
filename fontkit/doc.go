// Package fontkit bakes TrueType and OpenType fonts into glyph atlases
// consumable by the tess drawer. Load parses a font, rasterizes the requested
// runes at a fixed pixel size into a single alpha atlas, and returns the
// atlas image together with a populated tess.Font.
//
// The caller owns texture upload: hand Atlas.Image to the render backend and
// record the resulting handle on Atlas.Font.Texture.
package fontkit
