package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/kanapad/buffer"
)

func TestOnChange_FiresOnMutationsAndSkipsNoOps(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Text: "ab",
		OnChange: func(ev ChangeEvent) {
			events = append(events, ev)
		},
	})
	events = nil

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if len(events) != 1 {
		t.Fatalf("events after move: got %d, want %d", len(events), 1)
	}
	if got := events[0].Text; got != "ab" {
		t.Fatalf("event text after move: got %q, want %q", got, "ab")
	}
	if got := events[0].Cursor; got != (buffer.Pos{Line: 1, Col: 2}) {
		t.Fatalf("event cursor after move: got %v, want %v", got, buffer.Pos{Line: 1, Col: 2})
	}
	if !events[0].HasChange || events[0].Change.Kind != buffer.ChangeMove {
		t.Fatalf("event change after move: got %v (has=%v), want move", events[0].Change.Kind, events[0].HasChange)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight}) // to line end
	if len(events) != 2 {
		t.Fatalf("events after move to line end: got %d, want %d", len(events), 2)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight}) // no-op at document end
	if len(events) != 2 {
		t.Fatalf("events after no-op: got %d, want %d", len(events), 2)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	if len(events) != 3 {
		t.Fatalf("events after insert: got %d, want %d", len(events), 3)
	}
	if got := events[2].Text; got != "abX" {
		t.Fatalf("event text after insert: got %q, want %q", got, "abX")
	}
	if events[2].TextVersion == events[1].TextVersion {
		t.Fatalf("text version after insert: got %d, want it to change", events[2].TextVersion)
	}
}

func TestOnChange_ReportsSelectionAndIME(t *testing.T) {
	var last ChangeEvent
	m := New(Config{
		Text:     "abc",
		OnChange: func(ev ChangeEvent) { last = ev },
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	if !last.Selection.Active {
		t.Fatalf("selection active: got %v, want %v", last.Selection.Active, true)
	}
	want := buffer.Range{Start: buffer.Pos{Line: 1, Col: 1}, End: buffer.Pos{Line: 1, Col: 2}}
	if got := last.Selection.Range; got != want {
		t.Fatalf("selection range: got %v, want %v", got, want)
	}

	m, _ = m.Update(SetIMEMsg{On: true})
	if !last.IME {
		t.Fatalf("ime: got %v, want %v", last.IME, true)
	}
}
