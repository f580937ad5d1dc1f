package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/kanapad/buffer"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.cfg.ScrollPolicy == ScrollAllowManual || !isWheel(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
	}

	if !m.focused {
		return m, cmd
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.mouseInBounds(msg.X, msg.Y) {
			return m, cmd
		}
		m.pressAt(m.screenToDocPos(msg.X, msg.Y), msg.Shift)

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, cmd
		}
		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		m.state.SetSelection(m.mouseAnchor, m.screenToDocPos(x, y))

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}

	return m, cmd
}

// pressAt moves the caret to p, or extends the selection from its start when
// extend is set. Pending IME keys belong to the old caret and are dropped.
func (m *Model) pressAt(p buffer.Pos, extend bool) {
	if len(m.matcher.Pending()) > 0 {
		m.matcher.Reset()
	}
	if extend {
		m.mouseAnchor = m.state.SelectionStart()
		m.state.SetSelection(m.mouseAnchor, p)
	} else {
		m.mouseAnchor = p
		m.state.SetCursor(p.Line, p.Col)
	}
	m.mouseDragging = true
}

func isWheel(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress {
		return false
	}
	switch msg.Button { //nolint:exhaustive
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown,
		tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		return true
	}
	return false
}

func (m Model) mouseInBounds(x, y int) bool {
	w, h := m.viewport.Width, m.viewport.Height
	return w > 0 && h > 0 && x >= 0 && x < w && y >= 0 && y < h
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		x = clampInt(x, 0, m.viewport.Width-1)
	}
	if m.viewport.Height > 0 {
		y = clampInt(y, 0, m.viewport.Height-1)
	}
	return x, y
}
