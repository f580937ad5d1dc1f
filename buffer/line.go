package buffer

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/kanapad/internal/grapheme"
)

// Line is an ordered sequence of glyphs. The zero value is an empty line.
type Line struct {
	glyphs []Glyph
}

// NewLine returns a line holding a copy of glyphs.
func NewLine(glyphs ...Glyph) Line {
	if len(glyphs) == 0 {
		return Line{}
	}
	return Line{glyphs: append([]Glyph(nil), glyphs...)}
}

// LineFromText returns a line with one Char glyph per grapheme cluster.
func LineFromText(s string) Line {
	clusters := grapheme.Split(s)
	if len(clusters) == 0 {
		return Line{}
	}
	glyphs := make([]Glyph, len(clusters))
	for i, c := range clusters {
		glyphs[i] = Cluster(c)
	}
	return Line{glyphs: glyphs}
}

// Len returns the number of glyphs.
func (l Line) Len() int { return len(l.glyphs) }

// At returns the glyph at 0-based index i.
func (l Line) At(i int) Glyph {
	if i < 0 || i >= len(l.glyphs) {
		panic(fmt.Sprintf("buffer: glyph index %d out of range [0,%d)", i, len(l.glyphs)))
	}
	return l.glyphs[i]
}

// Glyphs returns a copy of the line's glyphs.
func (l Line) Glyphs() []Glyph {
	return append([]Glyph(nil), l.glyphs...)
}

// Insert places g at 0-based index i, shifting later glyphs right.
// i may equal Len to append.
func (l *Line) Insert(i int, g Glyph) {
	if i < 0 || i > len(l.glyphs) {
		panic(fmt.Sprintf("buffer: insert index %d out of range [0,%d]", i, len(l.glyphs)))
	}
	l.glyphs = append(l.glyphs, Glyph{})
	copy(l.glyphs[i+1:], l.glyphs[i:])
	l.glyphs[i] = g
}

// Remove deletes and returns the glyph at 0-based index i.
func (l *Line) Remove(i int) Glyph {
	if i < 0 || i >= len(l.glyphs) {
		panic(fmt.Sprintf("buffer: remove index %d out of range [0,%d)", i, len(l.glyphs)))
	}
	g := l.glyphs[i]
	l.glyphs = append(l.glyphs[:i], l.glyphs[i+1:]...)
	return g
}

// Append adds every glyph of other to the end of l.
func (l *Line) Append(other Line) {
	l.glyphs = append(l.glyphs, other.glyphs...)
}

// Split cuts the line at 0-based index i, keeping [0,i) and returning [i,Len).
func (l *Line) Split(i int) Line {
	if i < 0 || i > len(l.glyphs) {
		panic(fmt.Sprintf("buffer: split index %d out of range [0,%d]", i, len(l.glyphs)))
	}
	tail := NewLine(l.glyphs[i:]...)
	l.glyphs = l.glyphs[:i:i]
	return tail
}

func (l Line) Clone() Line { return NewLine(l.glyphs...) }

// Slice returns a copy of glyphs [from, to) as a new line.
func (l Line) Slice(from, to int) Line {
	from = clampInt(from, 0, len(l.glyphs))
	to = clampInt(to, from, len(l.glyphs))
	return NewLine(l.glyphs[from:to]...)
}

// WithCursor returns a display copy with a Cursor glyph at caret column col
// (1-based). col is clamped into [1, Len+1].
func (l Line) WithCursor(col int) Line {
	out := l.Clone()
	out.Insert(clampInt(col, 1, len(l.glyphs)+1)-1, Cursor())
	return out
}

// Text concatenates the Char and Text glyphs only.
func (l Line) Text() string {
	var sb strings.Builder
	for _, g := range l.glyphs {
		if g.IsContent() {
			sb.WriteString(g.Value)
		}
	}
	return sb.String()
}

// String concatenates the flat rendering of every glyph.
func (l Line) String() string {
	var sb strings.Builder
	for _, g := range l.glyphs {
		sb.WriteString(g.String())
	}
	return sb.String()
}

func (l Line) GoString() string {
	var sb strings.Builder
	sb.WriteString("LINE<")
	for i, g := range l.glyphs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(g.GoString())
	}
	sb.WriteByte('>')
	return sb.String()
}
