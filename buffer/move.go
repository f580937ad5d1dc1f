package buffer

// MoveCursor moves the caret one slot in dir, wrapping across line ends.
//
// Backward from column 1 goes to the end of the previous line; Forward from a
// line's end goes to column 1 of the next line. Both are no-ops at the
// document boundary. A non-empty selection collapses onto the new caret.
func (s *State) MoveCursor(dir Direction) {
	s.MoveCursorSelection(dir, false)
}

// MoveCursorSelection moves the caret like MoveCursor. With extend, only
// SelectionEnd follows the caret and SelectionStart stays anchored; without
// it both collapse onto the new caret.
func (s *State) MoveCursorSelection(dir Direction, extend bool) {
	next, ok := s.stepTarget(dir)
	if !ok {
		return
	}
	kind := ChangeMove
	if extend {
		kind = ChangeSelect
	}
	s.moveTo(next, extend, kind)
}

// GoToLine moves to the line above (Backward) or below (Forward) and resets
// the caret to column 1. It is a no-op past the first or last line.
func (s *State) GoToLine(dir Direction) {
	target := s.line + int(dir)
	if dir != Backward && dir != Forward {
		return
	}
	if target < 1 || target > s.buf.LineCount() {
		return
	}
	s.moveTo(Pos{Line: target, Col: 1}, false, ChangeMove)
}

// SetCursor places the caret at an absolute position, typically resolved
// from a pointer click. Out-of-range values are clamped into the document.
func (s *State) SetCursor(line, position int) {
	s.moveTo(s.clampPos(Pos{Line: line, Col: position}), false, ChangeMove)
}

func (s *State) SetCursorStartOfLine() {
	s.moveTo(Pos{Line: s.line, Col: 1}, false, ChangeMove)
}

func (s *State) SetCursorEndOfLine() {
	s.moveTo(Pos{Line: s.line, Col: s.buf.LineLen(s.line) + 1}, false, ChangeMove)
}

func (s *State) stepTarget(dir Direction) (Pos, bool) {
	switch dir {
	case Backward:
		if s.atDocStart() {
			return Pos{}, false
		}
		if s.pos > 1 {
			return Pos{Line: s.line, Col: s.pos - 1}, true
		}
		prev := s.line - 1
		return Pos{Line: prev, Col: s.buf.LineLen(prev) + 1}, true
	case Forward:
		if s.atLineEnd() {
			if s.onLastLine() {
				return Pos{}, false
			}
			return Pos{Line: s.line + 1, Col: 1}, true
		}
		return Pos{Line: s.line, Col: s.pos + 1}, true
	default:
		return Pos{}, false
	}
}

func (s *State) moveTo(next Pos, extend bool, kind ChangeKind) {
	selStart, selEnd := next, next
	if extend {
		selStart = s.selStart
	}
	if next == s.Cursor() && selStart == s.selStart && selEnd == s.selEnd {
		return
	}

	change := s.beginChange(kind)
	s.line, s.pos = next.Line, next.Col
	s.selStart, s.selEnd = selStart, selEnd
	s.version++
	s.commitChange(change)
}
