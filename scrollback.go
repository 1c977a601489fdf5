package webterm

// Scrollback stores terminal history in CGA-packed form (2 bytes per cell)
// and manages the scrollback viewing state.

// DefaultMaxLines is the default history capacity.
const DefaultMaxLines = 5000

// LineBytes is the packed size of one history line (80 cells, 2 bytes each).
const LineBytes = ScreenWidth * 2

// exitLinesPerFrame is the animated exit speed: 6 lines per frame at 60 fps
// is 360 lines per second.
const exitLinesPerFrame = 6

// ScrollMode distinguishes the scrollback navigation regimes. The meaning of
// the viewport position depends on the mode.
type ScrollMode int

const (
	// ModeMouse: the viewport position is an offset from the END of the
	// virtual buffer (0 = live screen). Scrolling down to 0 auto-exits, and
	// the view stays anchored over the same lines as new content arrives.
	ModeMouse ScrollMode = iota
	// ModeKeyboard: the viewport position is an absolute index into the
	// virtual buffer. The window stays put as content grows; only an explicit
	// exit leaves scrollback.
	ModeKeyboard
	// ModeViewer: keyboard-style positioning starting at the top of history,
	// with indicators hidden and no auto-exit. Used for instant bulk renders.
	ModeViewer
)

// Scrollback is a bounded history of packed screen lines plus the viewing
// state: whether scrollback is active, which navigation mode is in effect,
// the viewport position, and the exit animation flag.
//
// Virtual buffer model: [history...][live screen, 25 lines].
type Scrollback struct {
	history       [][LineBytes]byte
	maxLines      int
	active        bool
	mode          ScrollMode
	viewportPos   int
	animatingExit bool
}

// NewScrollback creates a scrollback buffer with the default capacity.
func NewScrollback() *Scrollback {
	return NewScrollbackWithMaxLines(DefaultMaxLines)
}

// NewScrollbackWithMaxLines creates a scrollback buffer holding at most
// maxLines lines of history.
func NewScrollbackWithMaxLines(maxLines int) *Scrollback {
	return &Scrollback{maxLines: maxLines}
}

// Active reports whether scrollback viewing mode is on.
func (sb *Scrollback) Active() bool { return sb.active }

// Mode returns the current navigation mode.
func (sb *Scrollback) Mode() ScrollMode { return sb.mode }

// ViewportPos returns the raw viewport position. Its meaning depends on Mode.
func (sb *Scrollback) ViewportPos() int { return sb.viewportPos }

// Len returns the number of history lines stored.
func (sb *Scrollback) Len() int { return len(sb.history) }

// MaxLines returns the history capacity.
func (sb *Scrollback) MaxLines() int { return sb.maxLines }

// AnimatingExit reports whether the scroll-to-bottom exit animation is running.
func (sb *Scrollback) AnimatingExit() bool { return sb.animatingExit }

// ShouldShowIndicators reports whether the renderer should overlay the
// SCROLLBACK indicator. Viewer mode hides it.
func (sb *Scrollback) ShouldShowIndicators() bool {
	return sb.active && sb.mode != ModeViewer
}

// offsetFromEnd converts the viewport position to a mouse-style offset from
// the bottom of the virtual buffer. Every mode conversion goes through this
// or absoluteStart so the cancellation paths agree.
func (sb *Scrollback) offsetFromEnd() int {
	if sb.mode == ModeMouse {
		return sb.viewportPos
	}
	if sb.viewportPos > len(sb.history) {
		return 0
	}
	return len(sb.history) - sb.viewportPos
}

// absoluteStart converts the viewport position to a keyboard-style absolute
// start index into the virtual buffer.
func (sb *Scrollback) absoluteStart() int {
	if sb.mode != ModeMouse {
		return sb.viewportPos
	}
	if sb.viewportPos > len(sb.history) {
		return 0
	}
	return len(sb.history) - sb.viewportPos
}

// PushLine packs an 80-cell line and appends it to history.
//
// In mouse mode with a nonzero offset the viewport position is incremented so
// the displayed window stays anchored over the same lines - except during the
// exit animation, which converges toward the bottom. Oldest lines are dropped
// past the capacity, with matching position adjustments.
func (sb *Scrollback) PushLine(cells []Cell) {
	var line [LineBytes]byte
	n := len(cells)
	if n > ScreenWidth {
		n = ScreenWidth
	}
	for i := 0; i < n; i++ {
		packed := cells[i].Pack()
		line[i*2] = packed[0]
		line[i*2+1] = packed[1]
	}
	sb.history = append(sb.history, line)

	if sb.active && sb.mode == ModeMouse && !sb.animatingExit && sb.viewportPos > 0 {
		sb.viewportPos++
	}

	if len(sb.history) > sb.maxLines {
		sb.history = sb.history[1:]
		switch sb.mode {
		case ModeKeyboard, ModeViewer:
			if sb.viewportPos > 0 {
				sb.viewportPos--
			}
		case ModeMouse:
			// Content shifted out from under an offset-from-end view; during
			// the exit animation we let it converge instead.
			if !sb.animatingExit && sb.viewportPos > 0 {
				sb.viewportPos--
			}
		}
	}
}

// PushScreen appends all 25 lines of the screen to history. Called before a
// full clear so the display is preserved.
func (sb *Scrollback) PushScreen(screen *Screen) {
	for y := 0; y < ScreenHeight; y++ {
		sb.PushLine(screen.Row(y))
	}
}

// EnterMouse enters scrollback in mouse mode, viewing the live screen.
// No-op when already active or when there is no history.
func (sb *Scrollback) EnterMouse() {
	if sb.active || len(sb.history) == 0 {
		return
	}
	sb.active = true
	sb.mode = ModeMouse
	sb.viewportPos = 0
}

// EnterKeyboard enters scrollback in keyboard mode with the viewport at the
// live screen. No-op when already active or when there is no history.
func (sb *Scrollback) EnterKeyboard() {
	if sb.active || len(sb.history) == 0 {
		return
	}
	sb.active = true
	sb.mode = ModeKeyboard
	sb.viewportPos = len(sb.history)
}

// EnterViewer enters viewer mode at the top of history. Used after instant
// bulk renders so the content can be read from the beginning.
func (sb *Scrollback) EnterViewer() {
	if len(sb.history) == 0 {
		return
	}
	sb.active = true
	sb.mode = ModeViewer
	sb.viewportPos = 0
}

// Exit leaves scrollback viewing mode immediately, with no animation.
func (sb *Scrollback) Exit() {
	sb.active = false
	sb.mode = ModeMouse
	sb.viewportPos = 0
	sb.animatingExit = false
}

// StartAnimatedExit begins the scroll-to-bottom animation. Returns true if
// the animation started, false if not active or already at the bottom (in
// which case scrollback is exited directly).
func (sb *Scrollback) StartAnimatedExit() bool {
	if !sb.active {
		return false
	}
	offset := sb.offsetFromEnd()
	if offset == 0 {
		sb.Exit()
		return false
	}
	sb.mode = ModeMouse
	sb.viewportPos = offset
	sb.animatingExit = true
	return true
}

// AnimateExitFrame advances the exit animation by one frame; the host calls
// this at ~60 fps. Returns true while the animation is still running.
func (sb *Scrollback) AnimateExitFrame() bool {
	if !sb.animatingExit || !sb.active {
		return false
	}
	if sb.viewportPos <= exitLinesPerFrame {
		sb.Exit()
		return false
	}
	sb.viewportPos -= exitLinesPerFrame
	return true
}

// ToggleKeyboard implements Alt+K. A running exit animation is cancelled and
// the view parks at the current visual position in keyboard mode; otherwise
// an active scrollback starts the animated exit, and an idle one enters
// keyboard mode.
func (sb *Scrollback) ToggleKeyboard() {
	if sb.animatingExit {
		sb.animatingExit = false
		sb.viewportPos = sb.absoluteStart()
		sb.mode = ModeKeyboard
		return
	}
	if sb.active {
		sb.StartAnimatedExit()
	} else {
		sb.EnterKeyboard()
	}
}

// ScrollUp moves the view back in history by n lines, entering mouse mode if
// scrollback was idle. A running exit animation is cancelled and scrolling
// continues from the current position.
func (sb *Scrollback) ScrollUp(n int) {
	if sb.animatingExit {
		// Already in mouse mode with an offset-from-end position.
		sb.animatingExit = false
		sb.viewportPos = minInt(sb.viewportPos+n, len(sb.history))
		return
	}
	if !sb.active {
		sb.EnterMouse()
	}
	if !sb.active {
		return
	}
	switch sb.mode {
	case ModeMouse:
		sb.viewportPos = minInt(sb.viewportPos+n, len(sb.history))
	default:
		sb.viewportPos -= n
		if sb.viewportPos < 0 {
			sb.viewportPos = 0
		}
	}
}

// ScrollDown moves the view toward the present by n lines. In mouse mode,
// reaching the bottom exits scrollback; keyboard and viewer modes stop at the
// live screen instead.
func (sb *Scrollback) ScrollDown(n int) {
	if !sb.active {
		return
	}
	switch sb.mode {
	case ModeMouse:
		if sb.viewportPos <= n {
			sb.Exit()
		} else {
			sb.viewportPos -= n
		}
	default:
		sb.viewportPos = minInt(sb.viewportPos+n, len(sb.history))
	}
}

// PageUp scrolls back one full screen.
func (sb *Scrollback) PageUp() { sb.ScrollUp(ScreenHeight) }

// PageDown scrolls forward one full screen.
func (sb *Scrollback) PageDown() { sb.ScrollDown(ScreenHeight) }

// DisplayLine returns the packed line to show at screen row y, taking the
// viewport into account. Rows past the end of history fall through to the
// live screen.
func (sb *Scrollback) DisplayLine(y int, screen *Screen) [LineBytes]byte {
	if y < 0 || y >= ScreenHeight {
		return [LineBytes]byte{}
	}
	if !sb.active {
		return packScreenLine(screen, y)
	}

	var lineIndex int
	switch sb.mode {
	case ModeKeyboard, ModeViewer:
		lineIndex = sb.viewportPos + y
	default: // ModeMouse
		if sb.viewportPos == 0 {
			return packScreenLine(screen, y)
		}
		lineIndex = sb.absoluteStart() + y
	}

	if lineIndex < len(sb.history) {
		return sb.history[lineIndex]
	}
	return packScreenLine(screen, lineIndex-len(sb.history))
}

// HistoryLine returns the packed history line at index (0 = oldest) and
// whether the index was in range.
func (sb *Scrollback) HistoryLine(index int) ([LineBytes]byte, bool) {
	if index < 0 || index >= len(sb.history) {
		return [LineBytes]byte{}, false
	}
	return sb.history[index], true
}

func packScreenLine(screen *Screen, y int) [LineBytes]byte {
	var line [LineBytes]byte
	if y < 0 || y >= ScreenHeight {
		return line
	}
	for x := 0; x < ScreenWidth; x++ {
		cell, _ := screen.Cell(x, y)
		packed := cell.Pack()
		line[x*2] = packed[0]
		line[x*2+1] = packed[1]
	}
	return line
}

// ScrollbackIndicator returns the 10-character "SCROLLBACK" banner in packed
// form with attribute 0x4E (foreground 14, background 4: light cyan on blue
// with the VGA and CGA palettes).
func ScrollbackIndicator() [20]byte {
	const text = "SCROLLBACK"
	const attr = 0x4E
	var out [20]byte
	for i := 0; i < len(text); i++ {
		out[i*2] = text[i]
		out[i*2+1] = attr
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
