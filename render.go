package webterm

import (
	"context"
	"time"
)

// targetFPS is the frame rate of the paced render loop.
const targetFPS = 30

// RenderOptions configures RenderAnsi.
type RenderOptions struct {
	// BPS simulates a modem baud rate. When > 0, bytes are consumed at BPS/8
	// bytes per second in 30 fps chunks, rendering between chunks. When 0,
	// everything is processed immediately and rendered once.
	BPS int

	// Palette selects the color table. Zero value renders with VGA.
	Palette Palette

	// ScrollbackLines overrides the history capacity (default 5000).
	ScrollbackLines int

	// Presenter receives each rendered frame. Defaults to NoopPresenter.
	Presenter Presenter

	// PostProcessor transforms rasterized frames before presentation.
	// Defaults to passthrough.
	PostProcessor PostProcessor

	// sleep is replaced in tests to avoid real delays.
	sleep func(time.Duration)
}

// RenderAnsi processes a complete CP437 ANSI byte stream through a fresh
// terminal and presents the rendered frames.
//
// With a positive BPS the stream is paced like a modem session: chunks of
// max(1, BPS/8/30) bytes at 30 fps, one frame presented per chunk. Without
// BPS the stream is processed in one step, scrollback enters viewer mode
// (content readable from the top) when any history was captured, and a
// single frame is presented.
//
// The returned terminal keeps the final state for interactive use. ctx
// cancels the pacing loop between frames.
func RenderAnsi(ctx context.Context, content []byte, opts RenderOptions) (*Terminal, error) {
	term := New(WithScrollbackLines(opts.ScrollbackLines))
	return term, term.Replay(ctx, content, opts)
}

// Replay feeds a byte stream into this terminal with the pacing and
// presentation behavior of RenderAnsi. Embedders that own the terminal (for
// live input handling afterwards) use this directly.
func (t *Terminal) Replay(ctx context.Context, content []byte, opts RenderOptions) error {
	var zero Palette
	if opts.Palette == zero {
		opts.Palette = VGA
	}
	if opts.Presenter == nil {
		opts.Presenter = NoopPresenter{}
	}
	if opts.PostProcessor == nil {
		opts.PostProcessor = NoopPostProcessor{}
	}
	if opts.sleep == nil {
		opts.sleep = time.Sleep
	}

	renderer := NewRenderer(opts.Palette)
	present := func() {
		opts.Presenter.Present(opts.PostProcessor.Process(t.Rasterize(renderer)))
	}

	if opts.BPS <= 0 {
		t.ProcessBytes(content)
		t.mu.Lock()
		if t.scrollback.Len() > 0 {
			t.scrollback.EnterViewer()
		}
		t.mu.Unlock()
		present()
		return nil
	}

	bytesPerFrame := opts.BPS / 8 / targetFPS
	if bytesPerFrame < 1 {
		bytesPerFrame = 1
	}
	frameDelay := time.Second / targetFPS

	for offset := 0; offset < len(content); {
		if err := ctx.Err(); err != nil {
			return err
		}
		end := offset + bytesPerFrame
		if end > len(content) {
			end = len(content)
		}
		t.ProcessBytes(content[offset:end])
		present()
		offset = end

		if offset < len(content) {
			opts.sleep(frameDelay)
		}
	}
	return nil
}
