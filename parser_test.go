package webterm

import "testing"

func feed(p *Parser, s *Screen, data string) Action {
	action := ActionNone
	for i := 0; i < len(data); i++ {
		if a := p.ProcessByte(data[i], s); a != ActionNone {
			action = a
		}
	}
	return action
}

func TestSgrColorWrite(t *testing.T) {
	p := NewParser()
	s := NewScreen()

	feed(p, s, "\x1b[31;44mX")

	cell, _ := s.Cell(0, 0)
	if cell.Ch != 'X' || cell.Fg != 1 || cell.Bg != 4 {
		t.Errorf("expected {X 1 4}, got %+v", cell)
	}
	if x, y := s.Cursor(); x != 1 || y != 0 {
		t.Errorf("expected cursor (1, 0), got (%d, %d)", x, y)
	}
}

func TestSgrBoldBrightens(t *testing.T) {
	p := NewParser()
	s := NewScreen()

	feed(p, s, "\x1b[1;32mA")

	cell, _ := s.Cell(0, 0)
	if cell.Fg != 10 || cell.Bg != 0 {
		t.Errorf("expected bright green on black, got fg=%d bg=%d", cell.Fg, cell.Bg)
	}
}

func TestSgrReverseVideo(t *testing.T) {
	p := NewParser()
	s := NewScreen()

	feed(p, s, "\x1b[31;43;7mZ")

	cell, _ := s.Cell(0, 0)
	if cell.Fg != 3 || cell.Bg != 1 {
		t.Errorf("expected fg=3 bg=1 after reverse, got fg=%d bg=%d", cell.Fg, cell.Bg)
	}
}

func TestSgrBlinkBrightensBackground(t *testing.T) {
	p := NewParser()
	s := NewScreen()

	feed(p, s, "\x1b[5;41mB")

	cell, _ := s.Cell(0, 0)
	if cell.Bg != 9 {
		t.Errorf("expected blink to map to bright background 9, got %d", cell.Bg)
	}
}

func TestSgrReset(t *testing.T) {
	p := NewParser()
	s := NewScreen()

	feed(p, s, "\x1b[1;31;44mA\x1b[0mB")
	feed(p, s, "\x1b[1;31;44m\x1b[mC") // empty param list acts as reset

	for i, want := range []Cell{{Ch: 'A', Fg: 9, Bg: 4}, {Ch: 'B', Fg: 7, Bg: 0}, {Ch: 'C', Fg: 7, Bg: 0}} {
		if cell, _ := s.Cell(i, 0); cell != want {
			t.Errorf("cell %d = %+v, want %+v", i, cell, want)
		}
	}
}

func TestSgrBrightRanges(t *testing.T) {
	p := NewParser()
	s := NewScreen()

	feed(p, s, "\x1b[95;103mH")

	cell, _ := s.Cell(0, 0)
	if cell.Fg != 13 || cell.Bg != 11 {
		t.Errorf("expected fg=13 bg=11, got fg=%d bg=%d", cell.Fg, cell.Bg)
	}
}

func TestSgrUnknownParamIgnored(t *testing.T) {
	p := NewParser()
	s := NewScreen()

	// 4 (underline) is not honored; 31 still applies.
	feed(p, s, "\x1b[4;31mU")

	cell, _ := s.Cell(0, 0)
	if cell.Fg != 1 {
		t.Errorf("expected fg=1, got %d", cell.Fg)
	}
}

func TestCursorPosition(t *testing.T) {
	p := NewParser()
	s := NewScreen()

	feed(p, s, "\x1b[10;20H")
	if x, y := s.Cursor(); x != 19 || y != 9 {
		t.Errorf("expected (19, 9), got (%d, %d)", x, y)
	}

	// f is an alias for H; missing params default to 1.
	feed(p, s, "\x1b[f")
	if x, y := s.Cursor(); x != 0 || y != 0 {
		t.Errorf("expected home after ESC[f, got (%d, %d)", x, y)
	}

	// Out-of-range coordinates clamp.
	feed(p, s, "\x1b[99;199H")
	if x, y := s.Cursor(); x != 79 || y != 24 {
		t.Errorf("expected clamp to (79, 24), got (%d, %d)", x, y)
	}
}

func TestCursorMovement(t *testing.T) {
	p := NewParser()
	s := NewScreen()

	feed(p, s, "\x1b[12;40H")
	feed(p, s, "\x1b[3A")
	if x, y := s.Cursor(); x != 39 || y != 8 {
		t.Errorf("after up 3: got (%d, %d)", x, y)
	}
	feed(p, s, "\x1b[B")
	if x, y := s.Cursor(); x != 39 || y != 9 {
		t.Errorf("after down 1: got (%d, %d)", x, y)
	}
	feed(p, s, "\x1b[5C")
	if x, y := s.Cursor(); x != 44 || y != 9 {
		t.Errorf("after forward 5: got (%d, %d)", x, y)
	}
	feed(p, s, "\x1b[2D")
	if x, y := s.Cursor(); x != 42 || y != 9 {
		t.Errorf("after backward 2: got (%d, %d)", x, y)
	}

	// Up and backward saturate at zero.
	feed(p, s, "\x1b[1;1H\x1b[9A\x1b[9D")
	if x, y := s.Cursor(); x != 0 || y != 0 {
		t.Errorf("expected saturation at origin, got (%d, %d)", x, y)
	}
}

func TestCarriageReturnAndNewline(t *testing.T) {
	p := NewParser()
	s := NewScreen()

	feed(p, s, "AB\rC")
	if cell, _ := s.Cell(0, 0); cell.Ch != 'C' {
		t.Errorf("expected CR to rewind to column 0, got %q at origin", cell.Ch)
	}

	feed(p, s, "\nD")
	if cell, _ := s.Cell(0, 1); cell.Ch != 'D' {
		t.Errorf("expected newline to move to (0, 1), got %q", cell.Ch)
	}
}

func TestLineWrap(t *testing.T) {
	p := NewParser()
	s := NewScreen()

	for i := 0; i < 81; i++ {
		p.ProcessByte('a', s)
	}
	if x, y := s.Cursor(); x != 1 || y != 1 {
		t.Errorf("expected wrap to (1, 1) after 81 chars, got (%d, %d)", x, y)
	}
}

func TestScrollAtBottom(t *testing.T) {
	p := NewParser()
	s := NewScreen()

	feed(p, s, "TOP")
	feed(p, s, "\x1b[25;1H")
	if action := p.ProcessByte('\n', s); action != ActionLineScrolled {
		t.Errorf("expected ActionLineScrolled, got %v", action)
	}
	if x, y := s.Cursor(); x != 0 || y != 24 {
		t.Errorf("expected cursor to stay at (0, 24), got (%d, %d)", x, y)
	}
	if got := s.LineContent(0); got != "" {
		t.Errorf("expected TOP scrolled away, row 0 = %q", got)
	}
}

func TestScrollAtBottomRightCell(t *testing.T) {
	p := NewParser()
	s := NewScreen()

	feed(p, s, "\x1b[25;80H")
	if action := p.ProcessByte('x', s); action != ActionLineScrolled {
		t.Errorf("expected ActionLineScrolled writing the bottom-right cell, got %v", action)
	}
	// The written row scrolled up one line.
	if cell, _ := s.Cell(79, 23); cell.Ch != 'x' {
		t.Errorf("expected 'x' at (79, 23) after scroll, got %q", cell.Ch)
	}
	if x, y := s.Cursor(); x != 0 || y != 24 {
		t.Errorf("expected cursor (0, 24), got (%d, %d)", x, y)
	}
}

func TestEraseDisplay(t *testing.T) {
	p := NewParser()
	s := NewScreen()

	feed(p, s, "ABC\x1b[44m")
	if action := feed(p, s, "\x1b[2J"); action != ActionScreenCleared {
		t.Errorf("expected ActionScreenCleared, got %v", action)
	}

	want := Cell{Ch: ' ', Fg: 7, Bg: 4}
	if cell, _ := s.Cell(0, 0); cell != want {
		t.Errorf("expected clear with current background, got %+v", cell)
	}
	if x, y := s.Cursor(); x != 0 || y != 0 {
		t.Errorf("expected cursor home after clear, got (%d, %d)", x, y)
	}

	// Other erase modes are no-ops.
	feed(p, s, "Q")
	if action := feed(p, s, "\x1b[0J"); action != ActionNone {
		t.Errorf("expected ESC[0J to be a no-op, got %v", action)
	}
	if cell, _ := s.Cell(0, 0); cell.Ch != 'Q' {
		t.Error("ESC[0J should not clear the screen")
	}
}

func TestEraseLineIsNoop(t *testing.T) {
	p := NewParser()
	s := NewScreen()

	feed(p, s, "KEEP\x1b[1;1H\x1b[K")
	if got := s.LineContent(0); got != "KEEP" {
		t.Errorf("expected ESC[K to be a no-op, row 0 = %q", got)
	}
}

func TestUnknownEscapeDiscarded(t *testing.T) {
	p := NewParser()
	s := NewScreen()

	feed(p, s, "\x1b(")
	if !p.InNormalState() {
		t.Error("expected return to normal state after unknown escape")
	}
	// The byte after ESC was consumed; the next one prints normally.
	feed(p, s, "A")
	if cell, _ := s.Cell(0, 0); cell.Ch != 'A' {
		t.Errorf("expected 'A' printed after discarded escape, got %q", cell.Ch)
	}
}

func TestUnknownCsiCommandIgnored(t *testing.T) {
	p := NewParser()
	s := NewScreen()

	feed(p, s, "\x1b[3qZ")
	cell, _ := s.Cell(0, 0)
	if cell.Ch != 'Z' {
		t.Errorf("expected 'Z' written after unknown CSI command, got %q", cell.Ch)
	}
}

func TestControlBytesIgnored(t *testing.T) {
	p := NewParser()
	s := NewScreen()

	feed(p, s, "\x07\x00A")
	if cell, _ := s.Cell(0, 0); cell.Ch != 'A' {
		t.Errorf("expected control bytes to be ignored, got %q at origin", cell.Ch)
	}
}

func TestHighBytesWriteAsCp437(t *testing.T) {
	p := NewParser()
	s := NewScreen()

	p.ProcessByte(0xB0, s)
	p.ProcessByte(0xDB, s)

	if cell, _ := s.Cell(0, 0); cell.Ch != 0xB0 {
		t.Errorf("expected 0xB0 stored verbatim, got 0x%02X", cell.Ch)
	}
	if cell, _ := s.Cell(1, 0); cell.Ch != 0xDB {
		t.Errorf("expected 0xDB stored verbatim, got 0x%02X", cell.Ch)
	}
}

func TestWillClearScreen(t *testing.T) {
	p := NewParser()
	s := NewScreen()

	// Param still in the accumulator.
	feed(p, s, "\x1b[2")
	if !p.WillClearScreen('J') {
		t.Error("expected WillClearScreen with in-progress param 2")
	}
	if p.WillClearScreen('K') {
		t.Error("WillClearScreen must only trigger on J")
	}

	// Param already flushed by the separator.
	feed(p, s, "J") // finish the pending sequence first
	feed(p, s, "\x1b[2;")
	if !p.WillClearScreen('J') {
		t.Error("expected WillClearScreen with stored param 2")
	}
	feed(p, s, "J")

	feed(p, s, "\x1b[0")
	if p.WillClearScreen('J') {
		t.Error("ESC[0J must not report a pending clear")
	}
	feed(p, s, "J")

	if p.WillClearScreen('J') {
		t.Error("WillClearScreen must be false in normal state")
	}
}

func TestCursorBoundsInvariant(t *testing.T) {
	p := NewParser()
	s := NewScreen()

	// A hostile mix of sequences and text; cursor must stay in bounds.
	inputs := []string{
		"\x1b[999;999H", "\x1b[999Axyz", "\x1b[999B", "\x1b[999C", "\x1b[999D",
		"\x1b[25;80Hqq\n\n", "plain text", "\x1b[;H", "\r\n\r\n",
	}
	for _, in := range inputs {
		feed(p, s, in)
		x, y := s.Cursor()
		if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
			t.Fatalf("cursor out of bounds after %q: (%d, %d)", in, x, y)
		}
	}
}
