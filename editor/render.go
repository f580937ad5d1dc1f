package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/kanapad/buffer"
)

func (m *Model) renderContent() string {
	layout := m.ensureLayout()

	cursorLine := m.state.CurrentLine()
	sel, selOK := m.state.Selection()
	digits := gutterDigits(len(layout.lines))
	width := m.contentWidth(len(layout.lines))

	out := make([]string, 0, len(layout.lines))
	for _, ll := range layout.lines {
		var sb strings.Builder

		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && ll.number == cursorLine {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, ll.number)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		line := renderLine(m.cfg.Style, ll, sel, selOK)
		if width > 0 {
			line = ansi.Truncate(line, width, "")
		}
		sb.WriteString(line)

		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func renderLine(st Style, ll lineLayout, sel buffer.Range, selOK bool) string {
	text := hintStyle(st.Text, ll.class.Container)
	if n := len(ll.class.Fragments); n > 0 {
		text = hintStyle(text, ll.class.Fragments[n-1].Style)
	}

	selected := func(col int) bool {
		if !selOK || col == 0 {
			return false
		}
		p := buffer.Pos{Line: ll.number, Col: col}
		return buffer.ComparePos(sel.Start, p) <= 0 && buffer.ComparePos(p, sel.End) < 0
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", ll.padding))
	for _, tok := range ll.tokens {
		if tok.text == "" {
			continue
		}
		var style lipgloss.Style
		switch tok.kind {
		case tokenCaret:
			style = st.Cursor
		case tokenComposing:
			style = st.Cursor.Underline(true)
		case tokenPlaceholder:
			style = st.Placeholder
		case tokenWidget, tokenComponent:
			style = st.Widget
			if selected(tok.col) {
				style = st.Selection
			}
		default:
			style = text
			if selected(tok.col) {
				style = st.Selection.Inherit(text)
			}
		}
		sb.WriteString(style.Render(tok.text))
	}
	return sb.String()
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}

func (m Model) gutterWidth(lineCount int) int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(lineCount) + 1
}

func (m Model) contentWidth(lineCount int) int {
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize() - m.gutterWidth(lineCount)
	if w < 0 {
		return 0
	}
	return w
}
