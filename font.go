package webterm

import _ "embed"

// EGA 8x14 text-mode font: 256 CP437 glyphs, one byte per scanline.
//
//go:embed fonts/ega-8x14.bin
var egaFont []byte

// Font dimensions in pixels.
const (
	FontWidth  = 8
	FontHeight = 14
)

// Glyph returns the 14 scanline bytes for a CP437 character code.
// The returned slice aliases the embedded font data and must not be modified.
func Glyph(c byte) []byte {
	start := int(c) * FontHeight
	return egaFont[start : start+FontHeight]
}

// PixelSet reports whether pixel x of a scanline byte is lit,
// where x=0 is the leftmost pixel.
func PixelSet(scanline byte, x int) bool {
	return scanline&(0x80>>uint(x)) != 0
}
