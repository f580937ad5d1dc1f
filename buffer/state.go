package buffer

import "iter"

type Options struct {
	HistoryLimit int // default: 1000; negative disables undo
}

// State is the editing state machine: a Buffer plus the caret and the
// selection anchored at SelectionStart and following SelectionEnd.
//
// Every public method leaves 1 <= CurrentLine <= LineCount and
// 1 <= CursorPosition <= len(current line)+1. Boundary requests are no-ops.
type State struct {
	buf *Buffer

	line int
	pos  int

	selStart Pos
	selEnd   Pos

	version     uint64
	textVersion uint64

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool
}

// New builds a state from seed text with the caret at (1, 1).
func New(text string, opt Options) *State {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	origin := Pos{Line: 1, Col: 1}
	return &State{
		buf:      FromText(text),
		line:     1,
		pos:      1,
		selStart: origin,
		selEnd:   origin,
		opt:      opt,
	}
}

func (s *State) CurrentLine() int    { return s.line }
func (s *State) CursorPosition() int { return s.pos }

// Cursor returns the caret as a Pos.
func (s *State) Cursor() Pos { return Pos{Line: s.line, Col: s.pos} }

func (s *State) SelectionStart() Pos { return s.selStart }
func (s *State) SelectionEnd() Pos   { return s.selEnd }

// Version increments on every effective change to content, caret or selection.
func (s *State) Version() uint64 { return s.version }

// TextVersion increments only when content changes.
func (s *State) TextVersion() uint64 { return s.textVersion }

func (s *State) LineCount() int { return s.buf.LineCount() }

// Line returns a copy of line n. It panics when n is out of range.
func (s *State) Line(n int) Line { return s.buf.Line(n) }

// CurrentLineLen returns the glyph count of the caret's line.
func (s *State) CurrentLineLen() int { return s.buf.LineLen(s.line) }

// LineText returns the Char/Text content of line n, or "" when n is out of range.
func (s *State) LineText(n int) string {
	if n < 1 || n > s.buf.LineCount() {
		return ""
	}
	return s.buf.lines[n-1].Text()
}

// CaretPrefix returns the Char/Text content of the caret's line up to the
// caret.
func (s *State) CaretPrefix() string {
	return s.buf.lines[s.line-1].Slice(0, s.pos-1).Text()
}

// LineString returns the flat rendering of line n including widgets, or ""
// when n is out of range.
func (s *State) LineString(n int) string {
	if n < 1 || n > s.buf.LineCount() {
		return ""
	}
	return s.buf.lines[n-1].String()
}

// Text returns the document content joined with '\n'.
func (s *State) Text() string { return s.buf.Text() }

// Iterate yields (lineNumber, line) for the whole document.
func (s *State) Iterate() iter.Seq2[int, Line] { return s.buf.Iterate() }

func (s *State) clampPos(p Pos) Pos {
	return ClampPos(p, s.buf.LineCount(), s.buf.lineLen)
}

func (s *State) atDocStart() bool { return s.line == 1 && s.pos == 1 }

func (s *State) atLineEnd() bool { return s.pos == s.buf.LineLen(s.line)+1 }

func (s *State) onLastLine() bool { return s.line == s.buf.LineCount() }
