package buffer

import "testing"

func TestState_MoveCursor_WrapsLines(t *testing.T) {
	s := New("ab\ncd", Options{})
	s.SetCursor(1, 3)
	s.MoveCursor(Forward)
	assertCursor(t, s, 2, 1)

	s.MoveCursor(Backward)
	assertCursor(t, s, 1, 3)
}

func TestState_MoveCursor_Boundaries(t *testing.T) {
	s := New("ab\ncd", Options{})
	v := s.Version()
	s.MoveCursor(Backward)
	if s.Version() != v {
		t.Fatalf("backward at document start changed version")
	}

	s.SetCursor(2, 3)
	v = s.Version()
	s.MoveCursor(Forward)
	if s.Version() != v {
		t.Fatalf("forward at document end changed version")
	}
	assertCursor(t, s, 2, 3)
}

func TestState_MoveCursor_RecordsChange(t *testing.T) {
	s := New("ab", Options{})
	s.MoveCursor(Forward)
	c, ok := s.LastChange()
	if !ok {
		t.Fatalf("expected change")
	}
	if c.Kind != ChangeMove || c.TextChanged {
		t.Fatalf("change=%+v", c)
	}
	if c.CursorBefore != (Pos{Line: 1, Col: 1}) || c.CursorAfter != (Pos{Line: 1, Col: 2}) {
		t.Fatalf("change cursors=%v -> %v", c.CursorBefore, c.CursorAfter)
	}
	if s.TextVersion() != 0 {
		t.Fatalf("text version=%d, want 0", s.TextVersion())
	}
}

func TestState_GoToLine(t *testing.T) {
	s := New("ab\ncd\nef", Options{})
	s.SetCursor(2, 2)

	s.GoToLine(Forward)
	assertCursor(t, s, 3, 1)

	v := s.Version()
	s.GoToLine(Forward)
	if s.Version() != v {
		t.Fatalf("GoToLine past last line changed version")
	}

	s.GoToLine(Backward)
	s.GoToLine(Backward)
	s.GoToLine(Backward)
	assertCursor(t, s, 1, 1)
}

func TestState_SetCursor_Clamps(t *testing.T) {
	s := New("ab\ncd", Options{})
	s.SetCursor(9, 99)
	assertCursor(t, s, 2, 3)

	s.SetCursor(0, 0)
	assertCursor(t, s, 1, 1)
}

func TestState_SetCursor_SamePositionIsNoop(t *testing.T) {
	s := New("ab", Options{})
	s.SetCursor(1, 2)
	v := s.Version()
	s.SetCursor(1, 2)
	if s.Version() != v {
		t.Fatalf("version=%d, want %d", s.Version(), v)
	}
}

func TestState_LineStartEnd(t *testing.T) {
	s := New("hello", Options{})
	s.SetCursorEndOfLine()
	assertCursor(t, s, 1, 6)
	s.SetCursorStartOfLine()
	assertCursor(t, s, 1, 1)
}

func TestState_MoveCursorSelection_Extend(t *testing.T) {
	s := New("hello", Options{})
	s.SetCursor(1, 2)

	s.MoveCursorSelection(Forward, true)
	s.MoveCursorSelection(Forward, true)

	if got, want := s.SelectionStart(), (Pos{Line: 1, Col: 2}); got != want {
		t.Fatalf("selection start=%v, want %v", got, want)
	}
	if got, want := s.SelectionEnd(), (Pos{Line: 1, Col: 4}); got != want {
		t.Fatalf("selection end=%v, want %v", got, want)
	}
	assertCursor(t, s, 1, 4)
	if got, want := s.SelectedText(), "el"; got != want {
		t.Fatalf("selected=%q, want %q", got, want)
	}

	s.MoveCursor(Forward)
	if s.HasSelection() {
		t.Fatalf("plain move should collapse the selection")
	}
	if s.SelectionStart() != s.Cursor() {
		t.Fatalf("selection start=%v, want caret %v", s.SelectionStart(), s.Cursor())
	}
}

func TestState_MoveCursorSelection_AcrossLines(t *testing.T) {
	s := New("ab\ncd", Options{})
	s.SetCursor(1, 2)
	for i := 0; i < 3; i++ {
		s.MoveCursorSelection(Forward, true)
	}
	assertCursor(t, s, 2, 2)
	if got, want := s.SelectedText(), "b\nc"; got != want {
		t.Fatalf("selected=%q, want %q", got, want)
	}
}

func TestState_MoveCursor_ForwardThenBackwardFromEveryPosition(t *testing.T) {
	s := New("ab\n\nか\u00a0d", Options{})
	for line := 1; line <= s.LineCount(); line++ {
		for col := 1; col <= s.buf.LineLen(line)+1; col++ {
			if line == s.LineCount() && col == s.buf.LineLen(line)+1 {
				continue
			}
			s.SetCursor(line, col)
			s.MoveCursor(Forward)
			s.MoveCursor(Backward)
			if got, want := s.Cursor(), (Pos{Line: line, Col: col}); got != want {
				t.Fatalf("forward then backward from %v: got %v", want, got)
			}
		}
	}
}
