package webterm

import "image"

// Canvas dimensions in pixels. Each EGA pixel is scaled 3x4 to correct the
// non-square CRT pixel aspect ratio.
const (
	ScaleX = 3
	ScaleY = 4

	CellPixelWidth  = FontWidth * ScaleX   // 24
	CellPixelHeight = FontHeight * ScaleY  // 56

	CanvasWidth  = ScreenWidth * CellPixelWidth   // 1920
	CanvasHeight = ScreenHeight * CellPixelHeight // 1400
)

// indicatorRow is the screen row the SCROLLBACK banner is drawn on.
const indicatorRow = 0

// Renderer rasterizes the cell grid into an RGBA image with the EGA font.
// It holds no terminal state; identical inputs produce byte-identical output.
type Renderer struct {
	palette Palette
}

// NewRenderer creates a renderer using the given palette.
func NewRenderer(palette Palette) *Renderer {
	return &Renderer{palette: palette}
}

// Render rasterizes the live screen.
func (r *Renderer) Render(screen *Screen) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight))
	for y := 0; y < ScreenHeight; y++ {
		line := packScreenLine(screen, y)
		r.renderLine(img, y, line[:])
	}
	return img
}

// RenderView rasterizes the current view: the scrollback window when active,
// otherwise the live screen, with the SCROLLBACK indicator overlaid when the
// buffer asks for it.
func (r *Renderer) RenderView(screen *Screen, sb *Scrollback) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight))
	for y := 0; y < ScreenHeight; y++ {
		line := sb.DisplayLine(y, screen)
		r.renderLine(img, y, line[:])
	}
	if sb.ShouldShowIndicators() {
		indicator := ScrollbackIndicator()
		r.renderPacked(img, ScreenWidth-len(indicator)/2, indicatorRow, indicator[:])
	}
	return img
}

// renderLine draws one packed 80-cell line at screen row y.
func (r *Renderer) renderLine(img *image.RGBA, y int, packed []byte) {
	r.renderPacked(img, 0, y, packed)
}

// renderPacked draws packed cells starting at column x0 of screen row y.
func (r *Renderer) renderPacked(img *image.RGBA, x0, y int, packed []byte) {
	for i := 0; i < len(packed)/2; i++ {
		cell := UnpackCell(packed[i*2], packed[i*2+1])
		r.renderCell(img, x0+i, y, cell)
	}
}

func (r *Renderer) renderCell(img *image.RGBA, x, y int, cell Cell) {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return
	}
	glyph := Glyph(cell.Ch)
	fg := r.palette[cell.Fg&0x0F]
	bg := r.palette[cell.Bg&0x0F]

	px0 := x * CellPixelWidth
	py0 := y * CellPixelHeight

	for fy := 0; fy < FontHeight; fy++ {
		scanline := glyph[fy]
		for fx := 0; fx < FontWidth; fx++ {
			c := bg
			if PixelSet(scanline, fx) {
				c = fg
			}
			// Paint the ScaleX x ScaleY block for this font pixel.
			for sy := 0; sy < ScaleY; sy++ {
				rowOff := img.PixOffset(px0+fx*ScaleX, py0+fy*ScaleY+sy)
				for sx := 0; sx < ScaleX; sx++ {
					off := rowOff + sx*4
					img.Pix[off] = c.R
					img.Pix[off+1] = c.G
					img.Pix[off+2] = c.B
					img.Pix[off+3] = 0xFF
				}
			}
		}
	}
}
