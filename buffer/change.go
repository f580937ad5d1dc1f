package buffer

// ChangeKind identifies the operation that produced a Change.
type ChangeKind uint8

const (
	ChangeInsert ChangeKind = iota
	ChangeDelete
	ChangeJoin
	ChangeNewline
	ChangeMove
	ChangeSelect
	ChangeUndo
	ChangeRedo
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeInsert:
		return "insert"
	case ChangeDelete:
		return "delete"
	case ChangeJoin:
		return "join"
	case ChangeNewline:
		return "newline"
	case ChangeMove:
		return "move"
	case ChangeSelect:
		return "select"
	case ChangeUndo:
		return "undo"
	case ChangeRedo:
		return "redo"
	default:
		return "unknown"
	}
}

// Change describes one effective state transition.
type Change struct {
	Kind            ChangeKind
	VersionBefore   uint64
	VersionAfter    uint64
	CursorBefore    Pos
	CursorAfter     Pos
	SelectionBefore Range
	SelectionAfter  Range
	LinesBefore     int
	LinesAfter      int
	TextChanged     bool
}

type changeBuilder struct {
	kind            ChangeKind
	versionBefore   uint64
	textBefore      uint64
	cursorBefore    Pos
	selectionBefore Range
	linesBefore     int
}

// LastChange returns the most recent effective change.
func (s *State) LastChange() (Change, bool) {
	if !s.hasLastChange {
		return Change{}, false
	}
	return s.lastChange, true
}

func (s *State) beginChange(kind ChangeKind) changeBuilder {
	return changeBuilder{
		kind:            kind,
		versionBefore:   s.version,
		textBefore:      s.textVersion,
		cursorBefore:    s.Cursor(),
		selectionBefore: Range{Start: s.selStart, End: s.selEnd},
		linesBefore:     s.buf.LineCount(),
	}
}

func (s *State) commitChange(cb changeBuilder) {
	if s.version == cb.versionBefore {
		return
	}
	s.lastChange = Change{
		Kind:            cb.kind,
		VersionBefore:   cb.versionBefore,
		VersionAfter:    s.version,
		CursorBefore:    cb.cursorBefore,
		CursorAfter:     s.Cursor(),
		SelectionBefore: cb.selectionBefore,
		SelectionAfter:  Range{Start: s.selStart, End: s.selEnd},
		LinesBefore:     cb.linesBefore,
		LinesAfter:      s.buf.LineCount(),
		TextChanged:     s.textVersion != cb.textBefore,
	}
	s.hasLastChange = true
}
