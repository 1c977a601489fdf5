package webterm

import "strings"

// Snapshot is a JSON-serializable capture of the current view: the 25 rows
// the user would see (live screen or scrollback window), the cursor, and the
// scrollback state. Used by the wasm API and handy in tests.
type Snapshot struct {
	Cursor     SnapshotCursor     `json:"cursor"`
	Lines      []SnapshotLine     `json:"lines"`
	Scrollback SnapshotScrollback `json:"scrollback"`
}

// SnapshotCursor holds the cursor position.
type SnapshotCursor struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// SnapshotLine is one display row: decoded text plus per-cell colors.
type SnapshotLine struct {
	Text  string         `json:"text"`
	Cells []SnapshotCell `json:"cells,omitempty"`
}

// SnapshotCell is a single cell with its CP437 code and colors.
type SnapshotCell struct {
	Ch byte  `json:"ch"`
	Fg uint8 `json:"fg"`
	Bg uint8 `json:"bg"`
}

// SnapshotScrollback describes the navigation state.
type SnapshotScrollback struct {
	Active      bool `json:"active"`
	Mode        int  `json:"mode"`
	ViewportPos int  `json:"viewportPos"`
	HistoryLen  int  `json:"historyLen"`
}

// TakeSnapshot captures the current view. When withCells is false only the
// decoded text is included, which keeps the JSON small for polling hosts.
func (t *Terminal) TakeSnapshot(withCells bool) Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	snap := Snapshot{
		Lines: make([]SnapshotLine, ScreenHeight),
	}
	snap.Cursor.X, snap.Cursor.Y = t.screen.Cursor()
	snap.Scrollback = SnapshotScrollback{
		Active:      t.scrollback.Active(),
		Mode:        int(t.scrollback.Mode()),
		ViewportPos: t.scrollback.ViewportPos(),
		HistoryLen:  t.scrollback.Len(),
	}

	for y := 0; y < ScreenHeight; y++ {
		line := t.scrollback.DisplayLine(y, t.screen)
		var text strings.Builder
		var cells []SnapshotCell
		if withCells {
			cells = make([]SnapshotCell, ScreenWidth)
		}
		for x := 0; x < ScreenWidth; x++ {
			cell := UnpackCell(line[x*2], line[x*2+1])
			text.WriteRune(DecodeCP437(cell.Ch))
			if withCells {
				cells[x] = SnapshotCell{Ch: cell.Ch, Fg: cell.Fg, Bg: cell.Bg}
			}
		}
		snap.Lines[y] = SnapshotLine{
			Text:  strings.TrimRight(text.String(), " "),
			Cells: cells,
		}
	}
	return snap
}
