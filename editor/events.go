package editor

import "github.com/iw2rmb/kanapad/buffer"

// ChangeEvent reports the editor state after an effective change.
type ChangeEvent struct {
	Version     uint64
	TextVersion uint64
	Cursor      buffer.Pos
	Selection   struct {
		Range  buffer.Range
		Active bool
	}
	IME bool

	// Change is the last state transition, when one exists.
	Change    buffer.Change
	HasChange bool

	Text string
}

func buildChangeEvent(s *buffer.State, imeOn bool) ChangeEvent {
	ev := ChangeEvent{
		Version:     s.Version(),
		TextVersion: s.TextVersion(),
		Cursor:      s.Cursor(),
		IME:         imeOn,
		Text:        s.Text(),
	}
	if r, ok := s.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	ev.Change, ev.HasChange = s.LastChange()
	return ev
}
