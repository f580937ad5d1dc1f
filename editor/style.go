package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/kanapad/classify"
)

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	// Widget renders pills, listings and notices.
	Widget lipgloss.Style
	// Placeholder renders the input slot in front of code lines.
	Placeholder lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Widget:        lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("62")),
		Placeholder:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

// pxPerCell converts CSS pixel paddings into terminal cells.
const pxPerCell = 8

var hintColors = map[string]lipgloss.Color{
	"red": lipgloss.Color("9"),
}

// hintStyle layers a classifier hint onto base. Font sizes have no terminal
// equivalent; a bottom border becomes an underline.
func hintStyle(base lipgloss.Style, h classify.StyleHint) lipgloss.Style {
	st := base
	if h.Bold {
		st = st.Bold(true)
	}
	if c, ok := hintColors[h.Color]; ok {
		st = st.Foreground(c)
	} else if h.Color != "" {
		st = st.Foreground(lipgloss.Color(h.Color))
	}
	if h.BorderBottom {
		st = st.Underline(true)
	}
	return st
}

func paddingCells(h classify.StyleHint) int {
	return h.PaddingLeft / pxPerCell
}
