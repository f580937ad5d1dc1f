package editor

import (
	"strings"

	"github.com/iw2rmb/kanapad/buffer"
	"github.com/iw2rmb/kanapad/classify"
	"github.com/iw2rmb/kanapad/internal/grapheme"
)

type tokenKind uint8

const (
	tokenContent tokenKind = iota
	tokenWidget
	tokenComponent
	tokenCaret
	tokenComposing
	tokenDecoration
	tokenPlaceholder
)

// token is one rendered piece of a line.
type token struct {
	kind tokenKind
	// text is what the terminal shows; raw is the glyph's flat text as seen
	// by the classifier.
	text string
	raw  string
	// col is the caret column of the glyph the token renders. Zero for
	// tokens not backed by a glyph.
	col int

	startCell int
	cells     int
}

type lineLayout struct {
	number  int
	glyphs  int
	class   classify.Result
	padding int
	tokens  []token
}

type layoutKey struct {
	version   uint64
	focused   bool
	imeOn     bool
	composing string
}

type layoutCache struct {
	valid bool
	key   layoutKey
	lines []lineLayout
}

func (m *Model) ensureLayout() layoutCache {
	key := layoutKey{
		version:   m.state.Version(),
		focused:   m.focused,
		imeOn:     m.imeOn,
		composing: m.composing,
	}
	if m.layout.valid && m.layout.key == key {
		return m.layout
	}

	cache := layoutCache{
		valid: true,
		key:   key,
		lines: make([]lineLayout, 0, m.state.LineCount()),
	}
	for n, l := range m.state.Iterate() {
		cache.lines = append(cache.lines, m.buildLineLayout(n, l))
	}
	m.layout = cache
	return cache
}

func (m *Model) buildLineLayout(n int, l buffer.Line) lineLayout {
	display := l
	if m.focused && n == m.state.CurrentLine() {
		display = m.state.DisplayLine(n)
	}
	composing := m.imeOn || m.composing != ""
	class := classify.Classify(buffer.DisplayText(display, composing))

	tokens := make([]token, 0, display.Len()+2)
	col := 0
	for _, g := range display.Glyphs() {
		switch g.Kind {
		case buffer.GlyphCursor:
			text := g.String()
			if composing {
				text += buffer.ComposingSuffix
			}
			tokens = append(tokens, token{kind: tokenCaret, text: text, raw: text})
			if m.composing != "" {
				tokens = append(tokens, token{kind: tokenComposing, text: m.composing})
			}
		case buffer.GlyphWidget:
			col++
			tokens = append(tokens, token{kind: tokenWidget, text: buffer.WidgetText(g.Value), raw: g.String(), col: col})
		case buffer.GlyphComponent:
			col++
			tokens = append(tokens, token{kind: tokenComponent, text: m.componentText(g.Value), raw: g.String(), col: col})
		default:
			col++
			tokens = append(tokens, token{kind: tokenContent, text: g.Value, raw: g.Value, col: col})
		}
	}
	tokens = applyMarker(tokens, class)

	cell := 0
	for i := range tokens {
		tokens[i].startCell = cell
		tokens[i].cells = grapheme.Width(tokens[i].text)
		cell += tokens[i].cells
	}

	return lineLayout{
		number:  n,
		glyphs:  l.Len(),
		class:   class,
		padding: paddingCells(class.Container),
		tokens:  tokens,
	}
}

// applyMarker hides the marker bytes the classifier removed from the line
// and puts the marker's replacement (and the code input slot) in front.
// Headings drop up to Level occurrences of their marker, other blocks one.
func applyMarker(tokens []token, class classify.Result) []token {
	if class.Marker != "" {
		var flat strings.Builder
		for _, tok := range tokens {
			flat.WriteString(tok.raw)
		}
		n := 1
		if class.Kind == classify.Heading {
			n = class.Level
		}
		hideRanges(tokens, markerRanges(flat.String(), class.Marker, n))
	}

	var lead []token
	if class.Replacement != "" {
		lead = append(lead, token{kind: tokenDecoration, text: class.Replacement})
	}
	if class.Kind == classify.Code {
		lead = append(lead, token{kind: tokenPlaceholder, text: codeSlot})
	}
	if len(lead) == 0 {
		return tokens
	}
	return append(lead, tokens...)
}

// markerRanges returns the byte ranges of the first n non-overlapping
// occurrences of marker in flat, left to right like strings.Replace.
func markerRanges(flat, marker string, n int) [][2]int {
	var out [][2]int
	off := 0
	for len(out) < n {
		i := strings.Index(flat[off:], marker)
		if i < 0 {
			break
		}
		start := off + i
		out = append(out, [2]int{start, start + len(marker)})
		off = start + len(marker)
	}
	return out
}

// hideRanges cuts the bytes inside ranges out of the tokens' raw text.
// Content tokens show what is left; other tokens are only hidden when
// nothing is left, since their text is not their raw markup.
func hideRanges(tokens []token, ranges [][2]int) {
	if len(ranges) == 0 {
		return
	}
	off := 0
	for i := range tokens {
		raw := tokens[i].raw
		from, to := off, off+len(raw)
		off = to
		if raw == "" {
			continue
		}

		var kept strings.Builder
		cut := false
		for b := from; b < to; b++ {
			if inRanges(b, ranges) {
				cut = true
				continue
			}
			kept.WriteByte(raw[b-from])
		}
		if !cut {
			continue
		}
		tokens[i].raw = kept.String()
		if tokens[i].kind == tokenContent || tokens[i].raw == "" {
			tokens[i].text = tokens[i].raw
		}
	}
}

func inRanges(b int, ranges [][2]int) bool {
	for _, r := range ranges {
		if b >= r[0] && b < r[1] {
			return true
		}
	}
	return false
}

// codeSlot stands in for the input field shown in front of code lines.
const codeSlot = "[ ] "

func (m *Model) componentText(ref string) string {
	if fn, ok := m.cfg.Components[ref]; ok && fn != nil {
		return fn(ref)
	}
	return buffer.ComponentMarker
}

// colAtCell maps a cell offset within the line's content area to a caret
// column. A click on a glyph places the caret before it; a click past the
// end places it at the end.
func (ll lineLayout) colAtCell(x int) int {
	if x < 0 {
		x = 0
	}
	end := 1
	for _, tok := range ll.tokens {
		if tok.col == 0 {
			continue
		}
		if x < tok.startCell+tok.cells {
			return tok.col
		}
		end = tok.col + 1
	}
	return clampInt(end, 1, ll.glyphs+1)
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
