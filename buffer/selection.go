package buffer

import "strings"

// Selection returns the normalized selection and whether it is non-empty.
func (s *State) Selection() (Range, bool) {
	r := NormalizeRange(Range{Start: s.selStart, End: s.selEnd})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// HasSelection reports whether SelectionStart and SelectionEnd differ.
func (s *State) HasSelection() bool { return s.selStart != s.selEnd }

// SetSelection anchors the selection at anchor and moves the caret and
// SelectionEnd to end. Both positions are clamped into the document.
func (s *State) SetSelection(anchor, end Pos) {
	anchor = s.clampPos(anchor)
	end = s.clampPos(end)
	if anchor == s.selStart && end == s.selEnd && end == s.Cursor() {
		return
	}
	change := s.beginChange(ChangeSelect)
	s.line, s.pos = end.Line, end.Col
	s.selStart, s.selEnd = anchor, end
	s.version++
	s.commitChange(change)
}

// ClearSelection collapses the selection onto the caret.
func (s *State) ClearSelection() {
	if !s.HasSelection() && s.selStart == s.Cursor() {
		return
	}
	change := s.beginChange(ChangeSelect)
	s.collapseSelection()
	s.version++
	s.commitChange(change)
}

// SelectedText returns the content of the selection, lines joined by '\n'.
func (s *State) SelectedText() string {
	r, ok := s.Selection()
	if !ok {
		return ""
	}
	r = s.clampRange(r)

	if r.Start.Line == r.End.Line {
		return s.buf.lines[r.Start.Line-1].Slice(r.Start.Col-1, r.End.Col-1).Text()
	}

	var sb strings.Builder
	for n := r.Start.Line; n <= r.End.Line; n++ {
		l := s.buf.lines[n-1]
		from, to := 0, l.Len()
		if n == r.Start.Line {
			from = r.Start.Col - 1
		}
		if n == r.End.Line {
			to = r.End.Col - 1
		}
		if n > r.Start.Line {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.Slice(from, to).Text())
	}
	return sb.String()
}

// DeleteSelection removes the selected glyphs and places the caret at the
// selection start.
func (s *State) DeleteSelection() {
	r, ok := s.Selection()
	if !ok {
		return
	}
	r = s.clampRange(r)

	prev := s.snapshot()
	change := s.beginChange(ChangeDelete)

	first := s.buf.line(r.Start.Line)
	tail := s.buf.line(r.End.Line).Slice(r.End.Col-1, s.buf.LineLen(r.End.Line))
	first.Split(r.Start.Col - 1)
	for n := r.End.Line; n > r.Start.Line; n-- {
		s.buf.RemoveLine(n)
	}
	s.buf.line(r.Start.Line).Append(tail)

	s.line, s.pos = r.Start.Line, r.Start.Col
	s.commitText(prev, change)
}

func (s *State) clampRange(r Range) Range {
	return Range{Start: s.clampPos(r.Start), End: s.clampPos(r.End)}
}

func (s *State) collapseSelection() {
	c := s.Cursor()
	s.selStart, s.selEnd = c, c
}
