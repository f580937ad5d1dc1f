package editor

import "github.com/iw2rmb/kanapad/buffer"

// screenToDocPos maps viewport-local mouse coordinates to a document position.
//
// Coordinates are in terminal cells relative to the viewport: (0,0) is the
// top-left of the visible content. Each document line occupies one row.
// Gutter and padding clicks map to column 1; y is clamped into the document.
func (m *Model) screenToDocPos(x, y int) buffer.Pos {
	layout := m.ensureLayout()
	if len(layout.lines) == 0 {
		return buffer.Pos{Line: 1, Col: 1}
	}

	row := clampInt(m.viewport.YOffset+y, 0, len(layout.lines)-1)
	ll := layout.lines[row]
	x -= m.gutterWidth(len(layout.lines)) + ll.padding
	return buffer.Pos{Line: ll.number, Col: ll.colAtCell(x)}
}
