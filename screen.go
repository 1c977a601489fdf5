package webterm

import "strings"

// Screen dimensions in character cells. The display is fixed 80x25 text mode.
const (
	ScreenWidth  = 80
	ScreenHeight = 25
)

// Screen is the 80x25 cell grid plus the cursor position.
// The cursor is always in bounds after any operation.
type Screen struct {
	cells   [ScreenWidth * ScreenHeight]Cell
	cursorX int
	cursorY int
}

// NewScreen creates a blank 80x25 screen with the cursor at the origin.
func NewScreen() *Screen {
	s := &Screen{}
	for i := range s.cells {
		s.cells[i] = DefaultCell()
	}
	return s
}

// Cell returns the cell at (x, y), or a zero Cell and false if out of bounds.
func (s *Screen) Cell(x, y int) (Cell, bool) {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return Cell{}, false
	}
	return s.cells[y*ScreenWidth+x], true
}

// SetCell replaces the cell at (x, y). Out-of-bounds writes are ignored.
func (s *Screen) SetCell(x, y int, cell Cell) {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return
	}
	s.cells[y*ScreenWidth+x] = cell
}

// Row returns a copy of the 80 cells in row y. Returns nil if out of bounds.
func (s *Screen) Row(y int) []Cell {
	if y < 0 || y >= ScreenHeight {
		return nil
	}
	row := make([]Cell, ScreenWidth)
	copy(row, s.cells[y*ScreenWidth:(y+1)*ScreenWidth])
	return row
}

// Cursor returns the cursor position.
func (s *Screen) Cursor() (x, y int) {
	return s.cursorX, s.cursorY
}

// SetCursor moves the cursor, clamping into the screen bounds.
func (s *Screen) SetCursor(x, y int) {
	s.cursorX = clamp(x, 0, ScreenWidth-1)
	s.cursorY = clamp(y, 0, ScreenHeight-1)
}

// ScrollUp shifts all rows up by one, discarding row 0 and filling the new
// bottom row with default cells. The cursor does not move.
func (s *Screen) ScrollUp() {
	copy(s.cells[:], s.cells[ScreenWidth:])
	for x := 0; x < ScreenWidth; x++ {
		s.cells[(ScreenHeight-1)*ScreenWidth+x] = DefaultCell()
	}
}

// ClearWithBg fills the whole screen with spaces on the given background
// color and homes the cursor.
func (s *Screen) ClearWithBg(bg uint8) {
	for i := range s.cells {
		s.cells[i] = Cell{Ch: ' ', Fg: 7, Bg: bg}
	}
	s.cursorX = 0
	s.cursorY = 0
}

// LineContent returns the text of row y decoded from CP437, with trailing
// spaces trimmed. Returns "" for an empty or out-of-bounds row.
func (s *Screen) LineContent(y int) string {
	if y < 0 || y >= ScreenHeight {
		return ""
	}
	var b strings.Builder
	for x := 0; x < ScreenWidth; x++ {
		b.WriteRune(DecodeCP437(s.cells[y*ScreenWidth+x].Ch))
	}
	return strings.TrimRight(b.String(), " ")
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
