package webterm

import (
	"image"

	"golang.org/x/image/draw"
)

// PostProcessor consumes a rasterized frame and produces the display image.
// Implementations may apply any CRT-style effect; the terminal core does not
// depend on their details.
type PostProcessor interface {
	// Process transforms src into the image to display. Implementations must
	// not retain or modify src.
	Process(src *image.RGBA) *image.RGBA
}

// NoopPostProcessor passes frames through unchanged.
type NoopPostProcessor struct{}

// Process returns a copy of src.
func (NoopPostProcessor) Process(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	draw.Copy(dst, src.Bounds().Min, src, src.Bounds(), draw.Src, nil)
	return dst
}

// blurKernel is the 5-tap separable Gaussian used for the CRT glow.
var blurKernel = [5]float64{0.06, 0.24, 0.40, 0.24, 0.06}

// BlurPostProcessor applies a separable two-pass Gaussian blur (horizontal
// then vertical), the CPU equivalent of the WebGL shader pipeline. Edges are
// clamped, matching CLAMP_TO_EDGE sampling.
type BlurPostProcessor struct{}

// NewBlurPostProcessor creates the standard CRT blur post-processor.
func NewBlurPostProcessor() *BlurPostProcessor {
	return &BlurPostProcessor{}
}

// Process runs the horizontal and vertical blur passes and returns the
// display image. Deterministic: equal inputs produce byte-identical outputs.
func (*BlurPostProcessor) Process(src *image.RGBA) *image.RGBA {
	intermediate := image.NewRGBA(src.Bounds())
	blurPass(intermediate, src, 1, 0)
	dst := image.NewRGBA(src.Bounds())
	blurPass(dst, intermediate, 0, 1)
	return dst
}

// blurPass convolves src with the 5-tap kernel along (dx, dy) into dst.
func blurPass(dst, src *image.RGBA, dx, dy int) {
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var r, g, b, a float64
			for tap := -2; tap <= 2; tap++ {
				sx := clamp(x+tap*dx, 0, w-1)
				sy := clamp(y+tap*dy, 0, h-1)
				off := src.PixOffset(bounds.Min.X+sx, bounds.Min.Y+sy)
				weight := blurKernel[tap+2]
				r += weight * float64(src.Pix[off])
				g += weight * float64(src.Pix[off+1])
				b += weight * float64(src.Pix[off+2])
				a += weight * float64(src.Pix[off+3])
			}
			off := dst.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
			dst.Pix[off] = uint8(r + 0.5)
			dst.Pix[off+1] = uint8(g + 0.5)
			dst.Pix[off+2] = uint8(b + 0.5)
			dst.Pix[off+3] = uint8(a + 0.5)
		}
	}
}
