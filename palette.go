package webterm

import (
	"image/color"
	"strings"
)

// Palette is a 16-entry text-mode color table indexed by ANSI color number
// (0=black .. 7=light gray, 8..15 bright variants).
type Palette [16]color.RGBA

// VGA is the standard IBM VGA palette.
var VGA = Palette{
	{0x00, 0x00, 0x00, 0xFF}, // black
	{0xAA, 0x00, 0x00, 0xFF}, // red
	{0x00, 0xAA, 0x00, 0xFF}, // green
	{0xAA, 0x55, 0x00, 0xFF}, // brown
	{0x00, 0x00, 0xAA, 0xFF}, // blue
	{0xAA, 0x00, 0xAA, 0xFF}, // magenta
	{0x00, 0xAA, 0xAA, 0xFF}, // cyan
	{0xAA, 0xAA, 0xAA, 0xFF}, // light gray
	{0x55, 0x55, 0x55, 0xFF}, // dark gray
	{0xFF, 0x55, 0x55, 0xFF}, // light red
	{0x55, 0xFF, 0x55, 0xFF}, // light green
	{0xFF, 0xFF, 0x55, 0xFF}, // yellow
	{0x55, 0x55, 0xFF, 0xFF}, // light blue
	{0xFF, 0x55, 0xFF, 0xFF}, // light magenta
	{0x55, 0xFF, 0xFF, 0xFF}, // light cyan
	{0xFF, 0xFF, 0xFF, 0xFF}, // white
}

// CGA is an IBM 5153 CRT-accurate palette for an authentic DOS-era look.
var CGA = Palette{
	{0x00, 0x00, 0x00, 0xFF},
	{0xC4, 0x00, 0x00, 0xFF},
	{0x00, 0xC4, 0x00, 0xFF},
	{0xC4, 0x7E, 0x00, 0xFF},
	{0x00, 0x00, 0xC4, 0xFF},
	{0xC4, 0x00, 0xC4, 0xFF},
	{0x00, 0xC4, 0xC4, 0xFF},
	{0xC4, 0xC4, 0xC4, 0xFF},
	{0x4E, 0x4E, 0x4E, 0xFF},
	{0xDC, 0x4E, 0x4E, 0xFF},
	{0x4E, 0xDC, 0x4E, 0xFF},
	{0xF3, 0xF3, 0x4E, 0xFF},
	{0x4E, 0x4E, 0xDC, 0xFF},
	{0xF3, 0x4E, 0xF3, 0xFF},
	{0x4E, 0xF3, 0xF3, 0xFF},
	{0xFF, 0xFF, 0xFF, 0xFF},
}

// PaletteNamed returns the palette for a case-insensitive name.
// Unknown names fall back to VGA.
func PaletteNamed(name string) Palette {
	switch strings.ToLower(name) {
	case "cga":
		return CGA
	default:
		return VGA
	}
}
