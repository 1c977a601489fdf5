package webterm

import (
	"bytes"
	"image/color"
	"testing"
)

func TestRenderDimensions(t *testing.T) {
	img := NewRenderer(VGA).Render(NewScreen())

	bounds := img.Bounds()
	if bounds.Dx() != CanvasWidth || bounds.Dy() != CanvasHeight {
		t.Errorf("expected %dx%d, got %dx%d", CanvasWidth, CanvasHeight, bounds.Dx(), bounds.Dy())
	}
	if CanvasWidth != 1920 || CanvasHeight != 1400 {
		t.Errorf("canvas constants changed: %dx%d", CanvasWidth, CanvasHeight)
	}
}

func TestRenderBlankScreenIsBlack(t *testing.T) {
	img := NewRenderer(VGA).Render(NewScreen())

	black := color.RGBA{0, 0, 0, 255}
	for _, pt := range [][2]int{{0, 0}, {CanvasWidth - 1, CanvasHeight - 1}, {960, 700}} {
		if got := img.RGBAAt(pt[0], pt[1]); got != black {
			t.Errorf("pixel (%d, %d) = %v, want black", pt[0], pt[1], got)
		}
	}
}

func TestRenderFullBlockCell(t *testing.T) {
	s := NewScreen()
	s.SetCell(2, 1, Cell{Ch: 0xDB, Fg: 9, Bg: 4})

	img := NewRenderer(VGA).Render(s)

	// Every pixel of a full block cell is the foreground color.
	want := VGA[9]
	for py := 0; py < CellPixelHeight; py++ {
		for px := 0; px < CellPixelWidth; px++ {
			got := img.RGBAAt(2*CellPixelWidth+px, 1*CellPixelHeight+py)
			if got != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", px, py, got, want)
			}
		}
	}
}

func TestRenderSpaceCellIsBackground(t *testing.T) {
	s := NewScreen()
	s.SetCell(0, 0, Cell{Ch: ' ', Fg: 7, Bg: 3})

	img := NewRenderer(CGA).Render(s)

	want := CGA[3]
	for py := 0; py < CellPixelHeight; py++ {
		for px := 0; px < CellPixelWidth; px++ {
			if got := img.RGBAAt(px, py); got != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", px, py, got, want)
			}
		}
	}
}

func TestRenderPixelBlockScaling(t *testing.T) {
	s := NewScreen()
	s.SetCell(0, 0, Cell{Ch: 0xDD, Fg: 15, Bg: 0}) // left half block

	img := NewRenderer(VGA).Render(s)

	// Font pixels 0..3 lit, 4..7 dark; each font pixel covers a 3x4 block.
	white := VGA[15]
	black := VGA[0]
	if got := img.RGBAAt(4*ScaleX-1, 0); got != white {
		t.Errorf("last lit subpixel = %v, want white", got)
	}
	if got := img.RGBAAt(4*ScaleX, 0); got != black {
		t.Errorf("first dark subpixel = %v, want black", got)
	}
}

func TestRenderDeterministic(t *testing.T) {
	term := New()
	term.ProcessBytes([]byte("\x1b[1;33mHello\x1b[2J\x1b[44mWorld"))
	term.HandleWheel(-200)

	r := NewRenderer(CGA)
	a := term.Rasterize(r)
	b := term.Rasterize(r)

	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("identical inputs must produce byte-identical output")
	}
}

func TestRenderViewShowsIndicator(t *testing.T) {
	term := New()
	fillHistory(term, 30)
	term.HandleWheel(-120)

	img := NewRenderer(VGA).RenderView(term.Screen(), term.Scrollback())

	// The indicator occupies the last 10 columns of the indicator row with
	// attribute 0x4E: background color 4 (blue) shows through the glyph gaps.
	found := false
	for px := 70 * CellPixelWidth; px < CanvasWidth; px++ {
		if img.RGBAAt(px, indicatorRow*CellPixelHeight) == VGA[4] {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected indicator background pixels in scrollback mode")
	}
}

func TestRenderViewNoIndicatorWhenInactive(t *testing.T) {
	term := New()
	fillHistory(term, 30)

	img := NewRenderer(VGA).RenderView(term.Screen(), term.Scrollback())

	for px := 0; px < CanvasWidth; px++ {
		for py := 0; py < CellPixelHeight; py++ {
			if img.RGBAAt(px, py) == VGA[4] {
				t.Fatal("found indicator pixels on an inactive terminal")
			}
		}
	}
}

func TestRenderViewNoIndicatorInViewerMode(t *testing.T) {
	term := New()
	fillHistory(term, 30)
	term.Scrollback().EnterViewer()

	img := NewRenderer(VGA).RenderView(term.Screen(), term.Scrollback())
	for px := 0; px < CanvasWidth; px++ {
		if img.RGBAAt(px, indicatorRow*CellPixelHeight+1) == VGA[4] {
			t.Fatal("viewer mode must not draw the indicator")
		}
	}
}

func TestRenderAlphaOpaque(t *testing.T) {
	img := NewRenderer(VGA).Render(NewScreen())
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0xFF {
			t.Fatal("expected fully opaque output")
		}
	}
}
