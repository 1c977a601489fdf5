package webterm

import (
	"image"
	"math"
	"sync"
)

// Terminal ties the screen, parser, and scrollback together. It is the only
// path by which bytes reach the parser: destructive operations (full clear,
// bottom-line scroll) lose content, so the terminal captures it to scrollback
// strictly before the parser runs.
//
// All operations are safe for concurrent use via internal locking; input
// handlers hold the lock for the span of one handler call, which gives event
// closures a consistent view of the state.
type Terminal struct {
	mu         sync.RWMutex
	screen     *Screen
	parser     *Parser
	scrollback *Scrollback
}

// Option configures a Terminal during construction.
type Option func(*Terminal)

// WithScrollbackLines sets the history capacity. Values <= 0 are replaced
// with the default (5000).
func WithScrollbackLines(n int) Option {
	if n <= 0 {
		n = DefaultMaxLines
	}
	return func(t *Terminal) {
		t.scrollback = NewScrollbackWithMaxLines(n)
	}
}

// New creates a terminal with a blank screen and the given options.
func New(opts ...Option) *Terminal {
	t := &Terminal{
		screen:     NewScreen(),
		parser:     NewParser(),
		scrollback: NewScrollback(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Screen returns the live screen. Callers must not mutate it concurrently
// with ProcessBytes.
func (t *Terminal) Screen() *Screen { return t.screen }

// Scrollback returns the scrollback buffer.
func (t *Terminal) Scrollback() *Scrollback { return t.scrollback }

// ProcessByte feeds one byte to the parser, capturing any content the byte
// is about to destroy into scrollback first.
func (t *Terminal) ProcessByte(b byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.processByte(b)
}

// ProcessBytes processes a byte slice in order.
func (t *Terminal) ProcessBytes(data []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, b := range data {
		t.processByte(b)
	}
}

func (t *Terminal) processByte(b byte) {
	// Capture must happen before dispatch: the parser clears and scrolls
	// inline, and by the time it reports the action the content is gone.
	if t.parser.WillClearScreen(b) {
		t.scrollback.PushScreen(t.screen)
	}
	if t.aboutToScroll(b) {
		t.scrollback.PushLine(t.screen.Row(0))
	}
	t.parser.ProcessByte(b, t.screen)
}

// aboutToScroll reports whether feeding b next will scroll a line off the
// top: a newline on the bottom row, or a printable character in the
// bottom-right cell. Escape sequences never scroll directly.
func (t *Terminal) aboutToScroll(b byte) bool {
	if !t.parser.InNormalState() {
		return false
	}
	x, y := t.screen.Cursor()
	if y != ScreenHeight-1 {
		return false
	}
	if b == '\n' {
		return true
	}
	return b >= 0x20 && x == ScreenWidth-1
}

// HandleWheel processes a mouse wheel event with the given pixel delta.
// Negative deltas scroll back in history. Returns true if the event was
// handled and should not propagate to the host.
func (t *Terminal) HandleWheel(deltaY float64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	wasActive := t.scrollback.Active()

	// Typical wheel events are ~100-150 pixels per click; 40 px per line
	// gives roughly 3 lines per click.
	lines := int(math.Ceil(math.Abs(deltaY) / 40))
	if lines < 1 {
		lines = 1
	}

	switch {
	case deltaY < 0:
		t.scrollback.ScrollUp(lines)
		return true
	case deltaY > 0:
		if wasActive {
			t.scrollback.ScrollDown(lines)
			return true
		}
		return false
	default:
		return wasActive
	}
}

// HandleKey processes a keyboard event. Key names follow the browser
// KeyboardEvent.key convention ("Escape", "ArrowUp", ...). Returns true if
// the key was handled and must NOT be forwarded to the host channel; while
// scrollback is active all keys are swallowed.
func (t *Terminal) HandleKey(key string, alt bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if (key == "k" || key == "K") && alt {
		t.scrollback.ToggleKeyboard()
		return true
	}

	if !t.scrollback.Active() {
		return false
	}
	switch key {
	case "Escape":
		t.scrollback.StartAnimatedExit()
	case "ArrowUp":
		t.scrollback.ScrollUp(1)
	case "ArrowDown":
		t.scrollback.ScrollDown(1)
	case "PageUp":
		t.scrollback.PageUp()
	case "PageDown":
		t.scrollback.PageDown()
	default:
		// Swallow everything else while in scrollback.
	}
	return true
}

// HandleClick processes a mouse click. A click during scrollback starts the
// animated exit. Returns true if the click was handled.
func (t *Terminal) HandleClick() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.scrollback.Active() {
		t.scrollback.StartAnimatedExit()
		return true
	}
	return false
}

// AnimatingExit reports whether the scroll-to-bottom exit animation is
// running.
func (t *Terminal) AnimatingExit() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.scrollback.AnimatingExit()
}

// AnimateExitFrame advances the exit animation one frame; hosts call this at
// ~60 fps. Returns true while the animation is still running.
func (t *Terminal) AnimateExitFrame() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.scrollback.AnimateExitFrame()
}

// Rasterize renders the current view (scrollback window or live screen)
// under the terminal lock, so concurrent byte processing cannot tear the
// frame.
func (t *Terminal) Rasterize(r *Renderer) *image.RGBA {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return r.RenderView(t.screen, t.scrollback)
}

// LineContent returns the text content of live screen row y.
func (t *Terminal) LineContent(y int) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.screen.LineContent(y)
}

// String returns the visible screen content as a newline-separated string
// with trailing empty lines omitted. Implements fmt.Stringer.
func (t *Terminal) String() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	lastNonEmpty := -1
	lines := make([]string, ScreenHeight)
	for y := 0; y < ScreenHeight; y++ {
		lines[y] = t.screen.LineContent(y)
		if lines[y] != "" {
			lastNonEmpty = y
		}
	}
	if lastNonEmpty < 0 {
		return ""
	}
	out := ""
	for y := 0; y <= lastNonEmpty; y++ {
		if y > 0 {
			out += "\n"
		}
		out += lines[y]
	}
	return out
}
