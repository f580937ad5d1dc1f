package classify

import (
	"fmt"
	"strings"
)

// StyleHint is a renderer-neutral description of how a fragment or a line
// container should look. Sizes are in CSS pixels; zero means unset.
type StyleHint struct {
	FontSize     int
	Bold         bool
	Color        string
	PaddingLeft  int
	MarginBottom int
	BorderBottom bool
}

// IsZero reports whether h carries no styling.
func (h StyleHint) IsZero() bool { return h == StyleHint{} }

// CSS renders h as an inline style declaration list.
func (h StyleHint) CSS() string {
	var parts []string
	if h.Color != "" {
		parts = append(parts, "color: "+h.Color+";")
	}
	if h.FontSize > 0 {
		parts = append(parts, fmt.Sprintf("font-size: %dpx;", h.FontSize))
	}
	if h.Bold {
		parts = append(parts, "font-weight: bold;")
	}
	if h.MarginBottom > 0 {
		parts = append(parts, fmt.Sprintf("margin-bottom: %dpx;", h.MarginBottom))
	}
	if h.PaddingLeft > 0 {
		parts = append(parts, fmt.Sprintf("padding-left: %dpx;", h.PaddingLeft))
	}
	if h.BorderBottom {
		parts = append(parts, "border-bottom: 0.5px solid rgba(0, 0, 0, 0.5);")
	}
	return strings.Join(parts, " ")
}

var headingText = [...]StyleHint{
	1: {FontSize: 36, Bold: true},
	2: {FontSize: 30, Bold: true},
	3: {FontSize: 24, Bold: true},
	4: {FontSize: 16, Bold: true},
}

var headingContainer = [...]StyleHint{
	1: {FontSize: 28, MarginBottom: 8, PaddingLeft: 16, BorderBottom: true},
	2: {FontSize: 24, MarginBottom: 4, PaddingLeft: 8},
	3: {FontSize: 20, PaddingLeft: 4},
	4: {FontSize: 16, PaddingLeft: 2},
}

var (
	bulletStyle      = StyleHint{PaddingLeft: 8}
	warningText      = StyleHint{Color: "red", Bold: true}
	warningContainer = StyleHint{Color: "red"}
)

func listStyle(indent int) StyleHint {
	return StyleHint{PaddingLeft: 8 * (indent + 1)}
}
