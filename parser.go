package webterm

// ANSI escape sequence parser for the VT-100/VT-102 subset used by DOS-era
// BBS systems. The parser mutates a Screen and reports the actions a caller
// may need to anticipate (scroll, full clear) for history capture.

// Action describes a side effect of processing one byte that callers need to
// know about.
type Action int

const (
	// ActionNone means no special action occurred.
	ActionNone Action = iota
	// ActionScreenCleared means the screen was cleared (ESC[2J).
	ActionScreenCleared
	// ActionLineScrolled means a line was scrolled off the top of the screen.
	ActionLineScrolled
)

type parserState int

const (
	stateNormal parserState = iota
	stateEscape
	stateCsi
)

// Parser is the three-state ANSI escape sequence state machine. It holds the
// current SGR style and applies it to every character written.
type Parser struct {
	state        parserState
	params       []int
	currentParam []byte

	fg      uint8
	bg      uint8
	bold    bool
	blink   bool
	reverse bool
}

// NewParser creates a parser in the Normal state with default attributes
// (light gray on black).
func NewParser() *Parser {
	return &Parser{fg: 7, bg: 0}
}

// InNormalState reports whether the parser is outside any escape sequence.
// When true, printable bytes will be written to the screen.
func (p *Parser) InNormalState() bool {
	return p.state == stateNormal
}

// WillClearScreen reports whether feeding the given byte next would trigger a
// full screen clear (ESC[2J). Callers use this to capture the screen to
// scrollback before it is lost.
func (p *Parser) WillClearScreen(b byte) bool {
	if p.state != stateCsi || b != 'J' {
		return false
	}
	param := 0
	if len(p.currentParam) > 0 {
		param = atoi(p.currentParam)
	} else if len(p.params) > 0 {
		param = p.params[0]
	}
	return param == 2
}

// ProcessByte feeds one byte through the state machine, mutating the screen.
// The returned Action reports scrolls and clears after the fact; callers that
// need to capture content first should use WillClearScreen and InNormalState
// before dispatching (see Terminal).
func (p *Parser) ProcessByte(b byte, screen *Screen) Action {
	switch p.state {
	case stateNormal:
		switch {
		case b == 0x1B:
			p.state = stateEscape
			return ActionNone
		case b == '\n':
			return p.newline(screen)
		case b == '\r':
			_, y := screen.Cursor()
			screen.SetCursor(0, y)
			return ActionNone
		case b >= 0x20:
			return p.writeChar(b, screen)
		default:
			return ActionNone
		}
	case stateEscape:
		if b == '[' {
			p.state = stateCsi
			p.params = p.params[:0]
			p.currentParam = p.currentParam[:0]
		} else {
			// Unknown escape sequence, discard.
			p.state = stateNormal
		}
		return ActionNone
	default: // stateCsi
		switch {
		case b >= '0' && b <= '9':
			p.currentParam = append(p.currentParam, b)
			return ActionNone
		case b == ';':
			p.pushParam()
			return ActionNone
		default:
			p.pushParam()
			action := p.dispatchCsi(b, screen)
			p.state = stateNormal
			return action
		}
	}
}

func (p *Parser) pushParam() {
	if len(p.currentParam) > 0 {
		p.params = append(p.params, atoi(p.currentParam))
		p.currentParam = p.currentParam[:0]
	}
}

// param returns the i-th CSI parameter or def if absent.
func (p *Parser) param(i, def int) int {
	if i < len(p.params) {
		return p.params[i]
	}
	return def
}

func (p *Parser) dispatchCsi(cmd byte, screen *Screen) Action {
	switch cmd {
	case 'H', 'f':
		row := p.param(0, 1) - 1
		col := p.param(1, 1) - 1
		screen.SetCursor(col, row)
	case 'A':
		x, y := screen.Cursor()
		screen.SetCursor(x, y-p.param(0, 1))
	case 'B':
		x, y := screen.Cursor()
		screen.SetCursor(x, y+p.param(0, 1))
	case 'C':
		x, y := screen.Cursor()
		screen.SetCursor(x+p.param(0, 1), y)
	case 'D':
		x, y := screen.Cursor()
		screen.SetCursor(x-p.param(0, 1), y)
	case 'J':
		if p.param(0, 0) == 2 {
			screen.ClearWithBg(p.effectiveBg())
			return ActionScreenCleared
		}
		// Other erase-in-display modes are not used by BBS art.
	case 'K':
		// TODO: erase-in-line, once content that needs it shows up.
	case 'm':
		p.applySgr()
	}
	return ActionNone
}

func (p *Parser) applySgr() {
	if len(p.params) == 0 {
		p.resetAttrs()
		return
	}
	for _, param := range p.params {
		switch {
		case param == 0:
			p.resetAttrs()
		case param == 1:
			p.bold = true
		case param == 5:
			p.blink = true
		case param == 7:
			p.reverse = true
		case param >= 30 && param <= 37:
			p.fg = uint8(param - 30)
		case param >= 40 && param <= 47:
			p.bg = uint8(param - 40)
		case param >= 90 && param <= 97:
			p.fg = uint8(param - 90 + 8)
		case param >= 100 && param <= 107:
			p.bg = uint8(param - 100 + 8)
		}
	}
}

func (p *Parser) resetAttrs() {
	p.fg = 7
	p.bg = 0
	p.bold = false
	p.blink = false
	p.reverse = false
}

// effectiveFg applies reverse and bold to the current foreground attribute.
func (p *Parser) effectiveFg() uint8 {
	fg := p.fg
	if p.reverse {
		fg = p.bg
	}
	if p.bold && fg < 8 {
		fg += 8
	}
	return fg
}

// effectiveBg applies reverse and blink to the current background attribute.
// Blink maps to bright background, per DOS convention.
func (p *Parser) effectiveBg() uint8 {
	bg := p.bg
	if p.reverse {
		bg = p.fg
	}
	if p.blink && bg < 8 {
		bg += 8
	}
	return bg
}

func (p *Parser) writeChar(ch byte, screen *Screen) Action {
	x, y := screen.Cursor()
	screen.SetCell(x, y, Cell{Ch: ch, Fg: p.effectiveFg(), Bg: p.effectiveBg()})

	if x+1 < ScreenWidth {
		screen.SetCursor(x+1, y)
		return ActionNone
	}
	// Wrap to the start of the next line.
	if y+1 < ScreenHeight {
		screen.SetCursor(0, y+1)
		return ActionNone
	}
	screen.ScrollUp()
	screen.SetCursor(0, y)
	return ActionLineScrolled
}

func (p *Parser) newline(screen *Screen) Action {
	_, y := screen.Cursor()
	if y+1 < ScreenHeight {
		screen.SetCursor(0, y+1)
		return ActionNone
	}
	screen.ScrollUp()
	screen.SetCursor(0, y)
	return ActionLineScrolled
}

func atoi(digits []byte) int {
	n := 0
	for _, d := range digits {
		n = n*10 + int(d-'0')
	}
	return n
}
