package editor

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/kanapad/ime"
)

// CompositionPhase identifies a step of a host composition session.
type CompositionPhase uint8

const (
	CompositionStart CompositionPhase = iota
	CompositionUpdate
	CompositionEnd
)

// CompositionMsg delivers text composed by a host input method. It bypasses
// the editor's own matcher: start and update show Text as a preview at the
// caret, end inserts it.
type CompositionMsg struct {
	Phase CompositionPhase
	Text  string
}

// SetIMEMsg switches IME mode on or off.
type SetIMEMsg struct {
	On bool
}

// ToggleIME returns a command that delivers a SetIMEMsg.
func ToggleIME(on bool) tea.Cmd {
	return func() tea.Msg { return SetIMEMsg{On: on} }
}

// Composing returns the preview text of an active composition.
func (m Model) Composing() string { return m.composing }

func (m Model) updateComposition(msg CompositionMsg) Model {
	switch msg.Phase {
	case CompositionStart, CompositionUpdate:
		m.composing = msg.Text
	case CompositionEnd:
		m.composing = ""
		if !m.cfg.ReadOnly {
			m.state.InsertText(msg.Text)
		}
	}
	m.rebuildContent()
	return m
}

// feedIME sends the codes of msg through the matcher and inserts every
// composed result as one Text glyph.
func (m *Model) feedIME(msg tea.KeyMsg) {
	for _, c := range keyCodes(msg) {
		if text, ok := m.matcher.Feed(c); ok {
			m.state.InsertText(text)
		}
	}
}

// keyCodes expands a terminal key event into physical key codes, modifiers
// first.
func keyCodes(msg tea.KeyMsg) []ime.Code {
	var codes []ime.Code
	name := strings.TrimPrefix(msg.String(), "alt+")

	if c, ok := ime.CodeForKey(name); ok {
		if msg.Alt {
			codes = append(codes, ime.AltLeft)
		}
		return append(codes, c)
	}

	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		codes = append(codes, ime.ControlLeft)
		if msg.Alt {
			codes = append(codes, ime.AltLeft)
		}
		return append(codes, ime.Key(rune('a'+int(msg.Type-tea.KeyCtrlA))))
	}

	if msg.Type == tea.KeyRunes {
		if msg.Alt {
			codes = append(codes, ime.AltLeft)
		}
		for _, r := range msg.Runes {
			codes = append(codes, ime.CodesForRune(r)...)
		}
	}
	return codes
}
