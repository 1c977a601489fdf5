package webterm

import "image"

// Presenter receives rendered frames from the paced render loop. Hosts
// implement it to put frames on a canvas, a window, or a file.
type Presenter interface {
	// Present is called with the display image for one frame.
	Present(img *image.RGBA)
}

// NoopPresenter discards all frames (useful when only the final terminal
// state matters).
type NoopPresenter struct{}

func (NoopPresenter) Present(*image.RGBA) {}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(img *image.RGBA)

func (f PresenterFunc) Present(img *image.RGBA) { f(img) }

// ByteSink receives input bytes that the terminal did not handle itself,
// typically to forward them to the remote host channel.
type ByteSink interface {
	// Send forwards bytes to the host.
	Send(data []byte)
}

// NoopByteSink discards all input (useful for static ANSI rendering, which
// has no host channel).
type NoopByteSink struct{}

func (NoopByteSink) Send([]byte) {}

// Ensure implementations satisfy their interfaces
var _ Presenter = NoopPresenter{}
var _ Presenter = (PresenterFunc)(nil)
var _ ByteSink = NoopByteSink{}
var _ PostProcessor = NoopPostProcessor{}
var _ PostProcessor = (*BlurPostProcessor)(nil)
