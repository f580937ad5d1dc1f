// Package grapheme wraps uniseg for the user-perceived character handling
// shared by the buffer and the editor.
package grapheme

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// IsSingle reports whether text is exactly one grapheme cluster.
func IsSingle(text string) bool {
	if text == "" {
		return false
	}
	g := uniseg.NewGraphemes(text)
	g.Next()
	return !g.Next()
}

// Width returns the terminal cell width of text. Zero-width results from
// runewidth fall back to uniseg so combining sequences still occupy a cell.
func Width(text string) int {
	w := runewidth.StringWidth(text)
	if w <= 0 && text != "" {
		w = uniseg.StringWidth(text)
	}
	if w < 0 {
		return 0
	}
	return w
}
