package editor

import (
	"github.com/charmbracelet/log"

	"github.com/iw2rmb/kanapad/ime"
)

// ScrollPolicy controls whether the viewport may scroll independently of the
// caret.
type ScrollPolicy int

const (
	// ScrollAllowManual lets the mouse wheel scroll the viewport.
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFollowCursorOnly ignores wheel events; only caret moves scroll.
	ScrollFollowCursorOnly
)

// ComponentFunc renders the component registered under ref as one line of
// terminal text.
type ComponentFunc func(ref string) string

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal state.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style
	ScrollPolicy ScrollPolicy

	// Forwarded to buffer.Options.
	HistoryLimit int

	ReadOnly bool
	KeyMap   KeyMap

	// Composition table used in IME mode. Nil selects ime.DefaultTable.
	Table *ime.Table
	// IME starts the editor in IME mode.
	IME bool

	// Pills holds the labels inserted by the F1..F4 bindings.
	// Empty entries fall back to "F1".."F4".
	Pills [4]string

	// Commands run, in order, when Enter is pressed outside IME mode. The
	// first command whose Match accepts the text before the caret runs.
	Commands []Command

	// Components resolves Component glyphs by reference.
	Components map[string]ComponentFunc

	Clipboard Clipboard
	OnChange  func(ChangeEvent)

	// Logger receives debug output. Nil disables logging.
	Logger *log.Logger
}

func (c Config) pillLabel(i int) string {
	if i >= 0 && i < len(c.Pills) && c.Pills[i] != "" {
		return c.Pills[i]
	}
	return defaultPills[i]
}

var defaultPills = [4]string{"F1", "F2", "F3", "F4"}
