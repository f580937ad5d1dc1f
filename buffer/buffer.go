package buffer

import (
	"fmt"
	"iter"
	"strings"
)

// Buffer is the ordered collection of lines. Lines are addressed 1-based and
// at least one line always exists.
//
// Index arguments are preconditions: out-of-range values panic. State keeps
// its own indices valid before delegating here.
type Buffer struct {
	lines []Line
}

// FromText splits text on '\n'; each piece becomes a line of Char glyphs.
func FromText(text string) *Buffer {
	parts := strings.Split(text, "\n")
	lines := make([]Line, len(parts))
	for i, p := range parts {
		lines[i] = LineFromText(p)
	}
	return &Buffer{lines: lines}
}

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns a copy of line n.
func (b *Buffer) Line(n int) Line {
	return b.line(n).Clone()
}

// LineLen returns the glyph count of line n.
func (b *Buffer) LineLen(n int) int {
	return b.line(n).Len()
}

// Insert places g into line n at caret column position (1-based), i.e. at
// glyph offset position-1.
func (b *Buffer) Insert(n, position int, g Glyph) {
	l := b.line(n)
	if position < 1 || position > l.Len()+1 {
		panic(fmt.Sprintf("buffer: position %d out of range [1,%d] on line %d", position, l.Len()+1, n))
	}
	l.Insert(position-1, g)
}

// RemoveGlyph deletes and returns the glyph at glyph index position-1 of line n.
func (b *Buffer) RemoveGlyph(n, position int) Glyph {
	l := b.line(n)
	if position < 1 || position > l.Len() {
		panic(fmt.Sprintf("buffer: position %d out of range [1,%d] on line %d", position, l.Len(), n))
	}
	return l.Remove(position - 1)
}

// AddEmptyLine inserts an empty line immediately after line after.
// after may be 0 to insert at the top.
func (b *Buffer) AddEmptyLine(after int) {
	b.insertLine(after, Line{})
}

// RemoveLine removes and returns line n. Removing the only line panics.
func (b *Buffer) RemoveLine(n int) Line {
	l := b.line(n)
	if len(b.lines) == 1 {
		panic("buffer: cannot remove the only line")
	}
	removed := *l
	b.lines = append(b.lines[:n-1], b.lines[n:]...)
	return removed
}

// Text joins the content of every line with '\n'. Widgets, components and
// cursor glyphs are skipped.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, l := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.Text())
	}
	return sb.String()
}

// Iterate yields (lineNumber, line) pairs in order. Lines are copies.
func (b *Buffer) Iterate() iter.Seq2[int, Line] {
	return func(yield func(int, Line) bool) {
		for i, l := range b.lines {
			if !yield(i+1, l.Clone()) {
				return
			}
		}
	}
}

func (b *Buffer) Clone() *Buffer {
	lines := make([]Line, len(b.lines))
	for i, l := range b.lines {
		lines[i] = l.Clone()
	}
	return &Buffer{lines: lines}
}

func (b *Buffer) insertLine(after int, l Line) {
	if after < 0 || after > len(b.lines) {
		panic(fmt.Sprintf("buffer: line %d out of range [0,%d]", after, len(b.lines)))
	}
	b.lines = append(b.lines, Line{})
	copy(b.lines[after+1:], b.lines[after:])
	b.lines[after] = l
}

func (b *Buffer) line(n int) *Line {
	if n < 1 || n > len(b.lines) {
		panic(fmt.Sprintf("buffer: line %d out of range [1,%d]", n, len(b.lines)))
	}
	return &b.lines[n-1]
}

func (b *Buffer) lineLen(n int) int {
	if n < 1 || n > len(b.lines) {
		return 0
	}
	return b.lines[n-1].Len()
}
