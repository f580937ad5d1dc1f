package buffer

type stateSnapshot struct {
	buf      *Buffer
	line     int
	pos      int
	selStart Pos
	selEnd   Pos
}

type historyState struct {
	undo []stateSnapshot
	redo []stateSnapshot
}

func (s *State) snapshot() stateSnapshot {
	return stateSnapshot{
		buf:      s.buf.Clone(),
		line:     s.line,
		pos:      s.pos,
		selStart: s.selStart,
		selEnd:   s.selEnd,
	}
}

func (s *State) restore(snap stateSnapshot) {
	s.buf = snap.buf.Clone()
	c := s.clampPos(Pos{Line: snap.line, Col: snap.pos})
	s.line, s.pos = c.Line, c.Col
	s.selStart = s.clampPos(snap.selStart)
	s.selEnd = s.clampPos(snap.selEnd)
}

func (s *State) recordUndo(prev stateSnapshot) {
	limit := s.opt.HistoryLimit
	if limit <= 0 {
		return
	}

	s.hist.undo = append(s.hist.undo, prev)
	if len(s.hist.undo) > limit {
		s.hist.undo = s.hist.undo[len(s.hist.undo)-limit:]
	}
	s.hist.redo = nil
}

func (s *State) CanUndo() bool { return len(s.hist.undo) > 0 }

func (s *State) CanRedo() bool { return len(s.hist.redo) > 0 }

// Undo restores the state before the most recent content change.
func (s *State) Undo() bool {
	if len(s.hist.undo) == 0 {
		return false
	}

	cur := s.snapshot()
	change := s.beginChange(ChangeUndo)

	i := len(s.hist.undo) - 1
	prev := s.hist.undo[i]
	s.hist.undo = s.hist.undo[:i]
	s.hist.redo = append(s.hist.redo, cur)

	s.restore(prev)
	s.version++
	s.textVersion++
	s.commitChange(change)
	return true
}

// Redo reapplies the most recently undone change.
func (s *State) Redo() bool {
	if len(s.hist.redo) == 0 {
		return false
	}

	cur := s.snapshot()
	change := s.beginChange(ChangeRedo)

	i := len(s.hist.redo) - 1
	next := s.hist.redo[i]
	s.hist.redo = s.hist.redo[:i]

	if limit := s.opt.HistoryLimit; limit > 0 {
		s.hist.undo = append(s.hist.undo, cur)
		if len(s.hist.undo) > limit {
			s.hist.undo = s.hist.undo[len(s.hist.undo)-limit:]
		}
	}

	s.restore(next)
	s.version++
	s.textVersion++
	s.commitChange(change)
	return true
}
