package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/kanapad/buffer"
)

func TestHitTest_NoLineNums_ClampsAndYOffset(t *testing.T) {
	m := New(Config{Text: "abc\ndef\nghi"})
	m.viewport.YOffset = 1

	if got := m.screenToDocPos(2, 0); got != (buffer.Pos{Line: 2, Col: 3}) {
		t.Fatalf("pos at (2,0) with yoffset=1: got %v, want %v", got, buffer.Pos{Line: 2, Col: 3})
	}

	// Clamp x past end of line.
	if got := m.screenToDocPos(999, 0); got != (buffer.Pos{Line: 2, Col: 4}) {
		t.Fatalf("pos at (999,0): got %v, want %v", got, buffer.Pos{Line: 2, Col: 4})
	}

	// Clamp y past the last line.
	if got := m.screenToDocPos(0, 99); got != (buffer.Pos{Line: 3, Col: 1}) {
		t.Fatalf("pos at (0,99): got %v, want %v", got, buffer.Pos{Line: 3, Col: 1})
	}
}

func TestHitTest_WithLineNums_GutterMapsToStartOfLine(t *testing.T) {
	m := New(Config{Text: "abcd\nefgh", ShowLineNums: true})

	// 2 lines => 1 digit + 1 gutter space => width 2.
	for _, x := range []int{0, 1, 2} {
		if got := m.screenToDocPos(x, 1); got != (buffer.Pos{Line: 2, Col: 1}) {
			t.Fatalf("click x=%d: got %v, want %v", x, got, buffer.Pos{Line: 2, Col: 1})
		}
	}
	if got := m.screenToDocPos(3, 1); got != (buffer.Pos{Line: 2, Col: 2}) {
		t.Fatalf("second cell x=3: got %v, want %v", got, buffer.Pos{Line: 2, Col: 2})
	}
}

func TestHitTest_CaretMarkerTakesACell(t *testing.T) {
	m := New(Config{Text: "abc"})
	m.State().SetCursor(1, 2)

	// Visual: "a❮bc"
	if got := m.screenToDocPos(1, 0); got != (buffer.Pos{Line: 1, Col: 2}) {
		t.Fatalf("click on caret: got %v, want %v", got, buffer.Pos{Line: 1, Col: 2})
	}
	if got := m.screenToDocPos(3, 0); got != (buffer.Pos{Line: 1, Col: 3}) {
		t.Fatalf("click on c: got %v, want %v", got, buffer.Pos{Line: 1, Col: 3})
	}
}

func TestHitTest_BulletMarkerAndPadding(t *testing.T) {
	m := New(Config{Text: "x\n-\u00a0ab"})

	// Visual line 2: " ・ab" (one cell of padding, a two-cell bullet).
	if got := m.screenToDocPos(1, 1); got != (buffer.Pos{Line: 2, Col: 1}) {
		t.Fatalf("click on bullet: got %v, want %v", got, buffer.Pos{Line: 2, Col: 1})
	}
	if got := m.screenToDocPos(3, 1); got != (buffer.Pos{Line: 2, Col: 3}) {
		t.Fatalf("click on a: got %v, want %v", got, buffer.Pos{Line: 2, Col: 3})
	}
	if got := m.screenToDocPos(4, 1); got != (buffer.Pos{Line: 2, Col: 4}) {
		t.Fatalf("click on b: got %v, want %v", got, buffer.Pos{Line: 2, Col: 4})
	}
}

func TestHitTest_WidgetIsOneColumn(t *testing.T) {
	m := New(Config{Text: "x\n"})
	m.State().GoToLine(buffer.Forward)
	m.State().InsertPill("todo")
	m.State().InsertChar('z')
	m.State().GoToLine(buffer.Backward)

	// Visual line 2: "todoz"
	if got := m.screenToDocPos(3, 1); got != (buffer.Pos{Line: 2, Col: 1}) {
		t.Fatalf("click inside pill: got %v, want %v", got, buffer.Pos{Line: 2, Col: 1})
	}
	if got := m.screenToDocPos(4, 1); got != (buffer.Pos{Line: 2, Col: 2}) {
		t.Fatalf("click on z: got %v, want %v", got, buffer.Pos{Line: 2, Col: 2})
	}
}

func TestMouse_ClickMovesCaretAndDragSelects(t *testing.T) {
	m := New(Config{Text: "abc\ndef"})
	m = m.SetSize(20, 5)

	m, _ = m.Update(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.State().Cursor(); got != (buffer.Pos{Line: 2, Col: 2}) {
		t.Fatalf("cursor after click: got %v, want %v", got, buffer.Pos{Line: 2, Col: 2})
	}

	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if got := m.State().SelectedText(); got != "abc\nd" {
		t.Fatalf("selection after drag: got %q, want %q", got, "abc\nd")
	}

	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 1, Action: tea.MouseActionMotion})
	if got := m.State().SelectedText(); got != "abc\nd" {
		t.Fatalf("selection after release: got %q, want %q", got, "abc\nd")
	}
}

func TestMouse_WheelIgnoredWhenFollowingCursor(t *testing.T) {
	m := New(Config{
		Text:         "0\n1\n2\n3\n4\n5",
		ScrollPolicy: ScrollFollowCursorOnly,
	})
	m = m.SetSize(10, 2)

	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if got := m.viewport.YOffset; got != 0 {
		t.Fatalf("yoffset after wheel: got %d, want %d", got, 0)
	}
}

func TestMouse_ClickDropsPendingIMEKeys(t *testing.T) {
	m := New(Config{Text: "abc\ndef", IME: true})
	m = m.SetSize(20, 5)

	m, _ = m.Update(runes("k"))
	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := len(m.Pending()); got != 0 {
		t.Fatalf("pending after click: got %d, want %d", got, 0)
	}

	m, _ = m.Update(runes("a"))
	if got := m.Text(); got != "abc\nあdef" {
		t.Fatalf("text=%q, want %q", got, "abc\nあdef")
	}
}
