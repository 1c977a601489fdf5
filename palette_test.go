package webterm

import (
	"image/color"
	"testing"
)

func TestPaletteNamed(t *testing.T) {
	if PaletteNamed("cga") != CGA || PaletteNamed("CGA") != CGA || PaletteNamed("CgA") != CGA {
		t.Error("expected case-insensitive CGA selection")
	}
	if PaletteNamed("vga") != VGA || PaletteNamed("VGA") != VGA {
		t.Error("expected case-insensitive VGA selection")
	}
	if PaletteNamed("ega") != VGA || PaletteNamed("") != VGA {
		t.Error("expected unknown names to default to VGA")
	}
}

func TestPaletteColors(t *testing.T) {
	tests := []struct {
		palette Palette
		index   int
		want    color.RGBA
	}{
		{VGA, 0, color.RGBA{0x00, 0x00, 0x00, 0xFF}},
		{VGA, 1, color.RGBA{0xAA, 0x00, 0x00, 0xFF}},
		{VGA, 9, color.RGBA{0xFF, 0x55, 0x55, 0xFF}},
		{VGA, 15, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}},
		{CGA, 1, color.RGBA{0xC4, 0x00, 0x00, 0xFF}},
		{CGA, 11, color.RGBA{0xF3, 0xF3, 0x4E, 0xFF}},
		{CGA, 8, color.RGBA{0x4E, 0x4E, 0x4E, 0xFF}},
	}
	for _, tt := range tests {
		if got := tt.palette[tt.index]; got != tt.want {
			t.Errorf("palette[%d] = %v, want %v", tt.index, got, tt.want)
		}
	}
}
