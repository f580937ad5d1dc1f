package buffer

import (
	"strings"

	"github.com/iw2rmb/kanapad/internal/grapheme"
)

// InsertChar inserts one Char glyph at the caret and advances it.
func (s *State) InsertChar(c rune) {
	s.insertGlyph(Char(c))
}

// InsertText inserts text as a single Text glyph and advances the caret by one
// slot regardless of the text's length.
func (s *State) InsertText(text string) {
	if text == "" {
		return
	}
	s.insertGlyph(Text(text))
}

// Insert inserts text one character at a time, each as its own Text glyph and
// its own undo step.
func (s *State) Insert(text string) {
	for _, c := range grapheme.Split(text) {
		s.insertGlyph(Text(c))
	}
}

// InsertWidget inserts opaque markup as one glyph.
func (s *State) InsertWidget(markup string) {
	s.insertGlyph(Widget(markup))
}

// InsertPill inserts a pill widget labelled label.
func (s *State) InsertPill(label string) {
	s.insertGlyph(Widget(PillMarkup(label)))
}

// InsertComponent inserts a reference to an externally rendered component.
func (s *State) InsertComponent(ref string) {
	s.insertGlyph(Component(ref))
}

// InsertListing inserts a widget listing items, as produced by listing commands.
func (s *State) InsertListing(items []string) {
	s.insertGlyph(Widget(ListingMarkup(items)))
}

// InsertNotice inserts a widget with a bold title followed by message.
func (s *State) InsertNotice(title, message string) {
	s.insertGlyph(Widget(NoticeMarkup(title, message)))
}

// Paste inserts text as Char glyphs, splitting lines at '\n'. The whole paste
// is one undo step.
func (s *State) Paste(text string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if text == "" {
		return
	}

	prev := s.snapshot()
	change := s.beginChange(ChangeInsert)
	for i, part := range strings.Split(text, "\n") {
		if i > 0 {
			s.splitAtCaret()
		}
		for _, c := range grapheme.Split(part) {
			s.buf.Insert(s.line, s.pos, Cluster(c))
			s.pos++
		}
	}
	s.commitText(prev, change)
}

// NextLineOrNew inserts an empty line after the current one and moves the
// caret to its start. Content after the caret stays on the current line.
func (s *State) NextLineOrNew() {
	prev := s.snapshot()
	change := s.beginChange(ChangeNewline)
	s.buf.AddEmptyLine(s.line)
	s.line++
	s.pos = 1
	s.commitText(prev, change)
}

// InsertNewline splits the current line at the caret and moves the caret to
// the start of the new line.
func (s *State) InsertNewline() {
	prev := s.snapshot()
	change := s.beginChange(ChangeNewline)
	s.splitAtCaret()
	s.commitText(prev, change)
}

// Delete removes one glyph in dir.
//
// Backward at the start of a line joins it into the previous line. Forward at
// the end of a line joins the next line into it. Both are no-ops at the
// matching document boundary.
func (s *State) Delete(dir Direction) {
	switch dir {
	case Backward:
		switch {
		case s.pos <= 1 && s.line > 1:
			s.JoinLines()
		case s.pos > 1:
			prev := s.snapshot()
			change := s.beginChange(ChangeDelete)
			s.buf.RemoveGlyph(s.line, s.pos-1)
			s.pos--
			s.commitText(prev, change)
		}
	case Forward:
		switch {
		case !s.atLineEnd():
			prev := s.snapshot()
			change := s.beginChange(ChangeDelete)
			s.buf.RemoveGlyph(s.line, s.pos)
			s.commitText(prev, change)
		case !s.onLastLine():
			prev := s.snapshot()
			change := s.beginChange(ChangeJoin)
			next := s.buf.RemoveLine(s.line + 1)
			s.buf.line(s.line).Append(next)
			s.commitText(prev, change)
		}
	}
}

// JoinLines appends the current line to the previous one and places the caret
// at the boundary between the two. It is a no-op on the first line.
func (s *State) JoinLines() {
	if s.line <= 1 {
		return
	}
	prev := s.snapshot()
	change := s.beginChange(ChangeJoin)

	removed := s.buf.RemoveLine(s.line)
	s.line--
	s.pos = s.buf.LineLen(s.line) + 1
	s.buf.line(s.line).Append(removed)

	s.commitText(prev, change)
}

func (s *State) insertGlyph(g Glyph) {
	prev := s.snapshot()
	change := s.beginChange(ChangeInsert)
	s.buf.Insert(s.line, s.pos, g)
	s.pos++
	s.commitText(prev, change)
}

func (s *State) splitAtCaret() {
	tail := s.buf.line(s.line).Split(s.pos - 1)
	s.buf.insertLine(s.line, tail)
	s.line++
	s.pos = 1
}

// commitText finishes a content mutation: the selection collapses onto the
// caret and the change is recorded for undo.
func (s *State) commitText(prev stateSnapshot, cb changeBuilder) {
	s.collapseSelection()
	s.version++
	s.textVersion++
	s.recordUndo(prev)
	s.commitChange(cb)
}
