package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/kanapad/buffer"
	"github.com/iw2rmb/kanapad/classify"
)

const nbsp = '\u00a0'

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.state.Paste(string(msg.Runes))
		}
		return m, nil
	}

	km := m.cfg.KeyMap
	if key.Matches(msg, km.ToggleIME) {
		return m.SetIME(!m.imeOn), nil
	}

	// In IME mode a key feeds the matcher and still runs its shortcut below.
	if m.imeOn && !m.cfg.ReadOnly {
		m.feedIME(msg)
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, km.Left):
		m.state.MoveCursor(buffer.Backward)
	case key.Matches(msg, km.Right):
		m.state.MoveCursor(buffer.Forward)
	case key.Matches(msg, km.Up):
		m.state.GoToLine(buffer.Backward)
	case key.Matches(msg, km.Down):
		m.state.GoToLine(buffer.Forward)

	case key.Matches(msg, km.ShiftLeft):
		m.state.MoveCursorSelection(buffer.Backward, true)
	case key.Matches(msg, km.ShiftRight):
		m.state.MoveCursorSelection(buffer.Forward, true)

	case key.Matches(msg, km.Home):
		m.state.SetCursorStartOfLine()
	case key.Matches(msg, km.End):
		m.state.SetCursorEndOfLine()

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.deleteDir(buffer.Backward)
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			m.deleteDir(buffer.Forward)
		}
	case key.Matches(msg, km.Enter):
		if !m.cfg.ReadOnly {
			cmd = m.enter()
		}
	case key.Matches(msg, km.Tab):
		if !m.cfg.ReadOnly {
			m.indent()
		}
	case key.Matches(msg, km.Space):
		if !m.cfg.ReadOnly {
			m.state.InsertChar(nbsp)
		}

	case key.Matches(msg, km.Pill1, km.Pill2, km.Pill3, km.Pill4):
		if !m.cfg.ReadOnly {
			for i, b := range km.pills() {
				if key.Matches(msg, b) {
					m.state.InsertPill(m.cfg.pillLabel(i))
					break
				}
			}
		}

	case key.Matches(msg, km.Undo):
		if !m.cfg.ReadOnly {
			_ = m.state.Undo()
		}
	case key.Matches(msg, km.Redo):
		if !m.cfg.ReadOnly {
			_ = m.state.Redo()
		}

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if !m.cfg.ReadOnly {
			m.cutSelection()
		} else {
			m.copySelection()
		}
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			m.pasteClipboard()
		}

	default:
		if m.imeOn || m.cfg.ReadOnly {
			return m, nil
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.state.Insert(string(msg.Runes))
		}
	}

	return m, cmd
}

func (m *Model) deleteDir(dir buffer.Direction) {
	if m.state.HasSelection() {
		m.state.DeleteSelection()
		return
	}
	m.state.Delete(dir)
}

// enter runs command hooks against the text before the caret, opens a new
// line and continues a list when the previous line was a list item. Hooks and
// list continuation are skipped in IME mode.
func (m *Model) enter() tea.Cmd {
	line := m.state.LineText(m.state.CurrentLine())
	if m.imeOn {
		m.state.NextLineOrNew()
		return nil
	}

	cmd := m.runCommands(m.state.CaretPrefix())
	m.state.NextLineOrNew()
	if next, ok := classify.NextListItem(line); ok {
		m.state.InsertText(next)
	}
	return cmd
}

// indent inserts two no-break spaces on list lines and four elsewhere.
func (m *Model) indent() {
	n := 4
	if classify.IsListItem(m.state.LineText(m.state.CurrentLine())) {
		n = 2
	}
	for range n {
		m.state.InsertChar(nbsp)
	}
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.state.SelectedText()
	if s == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		m.log.Debug("clipboard write", "err", err)
	}
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil || !m.state.HasSelection() {
		return
	}
	if s := m.state.SelectedText(); s != "" {
		if err := m.cfg.Clipboard.WriteText(s); err != nil {
			m.log.Debug("clipboard write", "err", err)
		}
	}
	m.state.DeleteSelection()
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.log.Debug("clipboard read", "err", err)
		return
	}
	if s == "" {
		return
	}
	if m.state.HasSelection() {
		m.state.DeleteSelection()
	}
	m.state.Paste(strings.ReplaceAll(s, "\t", "    "))
}
