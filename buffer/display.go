package buffer

import "strings"

// DisplayLine returns a copy of line n with a Cursor glyph at the caret when n
// is the caret's line. It panics when n is out of range.
func (s *State) DisplayLine(n int) Line {
	l := s.buf.Line(n)
	if n != s.line {
		return l
	}
	return l.WithCursor(s.pos)
}

// DisplayText flattens l for classification. Cursor glyphs render as
// CursorMarker, followed by ComposingSuffix when composing is set.
func DisplayText(l Line, composing bool) string {
	var sb strings.Builder
	for _, g := range l.glyphs {
		sb.WriteString(g.String())
		if g.Kind == GlyphCursor && composing {
			sb.WriteString(ComposingSuffix)
		}
	}
	return sb.String()
}
