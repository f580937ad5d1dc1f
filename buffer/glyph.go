package buffer

import (
	"fmt"

	"github.com/iw2rmb/kanapad/internal/grapheme"
)

// GlyphKind tags the variant held by a Glyph.
type GlyphKind uint8

const (
	// GlyphChar is a single user-perceived character.
	GlyphChar GlyphKind = iota
	// GlyphText is a run of text inserted as one unit.
	GlyphText
	// GlyphCursor marks the caret in display copies of a line.
	GlyphCursor
	// GlyphWidget is opaque caller-supplied markup.
	GlyphWidget
	// GlyphComponent references a component resolved by the renderer.
	GlyphComponent
)

const (
	// CursorMarker is the flat rendering of a Cursor glyph.
	CursorMarker = "❮"
	// ComposingSuffix is appended to CursorMarker while composition is active.
	ComposingSuffix = ":IME"
	// ComponentMarker is the flat rendering of a Component glyph.
	ComponentMarker = "<Component>"
)

func (k GlyphKind) String() string {
	switch k {
	case GlyphChar:
		return "char"
	case GlyphText:
		return "text"
	case GlyphCursor:
		return "cursor"
	case GlyphWidget:
		return "widget"
	case GlyphComponent:
		return "component"
	default:
		return fmt.Sprintf("GlyphKind(%d)", uint8(k))
	}
}

// Glyph is the atomic content unit of a Line.
//
// Value holds the character for Char, the run for Text, the markup for
// Widget and the registry key for Component. It is empty for Cursor.
type Glyph struct {
	Kind  GlyphKind
	Value string
}

func Char(c rune) Glyph { return Glyph{Kind: GlyphChar, Value: string(c)} }

// Cluster builds a Char glyph from one grapheme cluster. It panics when c is
// empty or holds more than one cluster.
func Cluster(c string) Glyph {
	if !grapheme.IsSingle(c) {
		panic(fmt.Sprintf("buffer: %q is not a single grapheme cluster", c))
	}
	return Glyph{Kind: GlyphChar, Value: c}
}

func Text(s string) Glyph { return Glyph{Kind: GlyphText, Value: s} }

func Cursor() Glyph { return Glyph{Kind: GlyphCursor} }

func Widget(markup string) Glyph { return Glyph{Kind: GlyphWidget, Value: markup} }

func Component(ref string) Glyph { return Glyph{Kind: GlyphComponent, Value: ref} }

// IsContent reports whether g carries document text (Char or Text).
func (g Glyph) IsContent() bool {
	return g.Kind == GlyphChar || g.Kind == GlyphText
}

// String returns the flat rendering used by the line classifier.
func (g Glyph) String() string {
	switch g.Kind {
	case GlyphChar, GlyphText, GlyphWidget:
		return g.Value
	case GlyphCursor:
		return CursorMarker
	case GlyphComponent:
		return ComponentMarker
	default:
		return ""
	}
}

func (g Glyph) GoString() string {
	if g.Kind == GlyphCursor {
		return "Cursor"
	}
	return fmt.Sprintf("%s(%q)", g.Kind, g.Value)
}
