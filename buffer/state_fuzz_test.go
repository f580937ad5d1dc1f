package buffer

import (
	"strings"
	"testing"
)

func FuzzState_RandomOps(f *testing.F) {
	seeds := [][]byte{
		{},
		{0},
		{1, 2, 3, 4, 5},
		{255, 0, 128, 64, 32, 16, 8, 4, 2, 1},
		{12, 12, 12, 5, 5, 5, 14, 14, 15},
		[]byte("select-and-delete"),
		[]byte("multiline\nseed"),
		[]byte("unicode-seed-👨‍👩‍👧‍👦"),
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		r := fuzzByteReader{data: data}
		s := New(fuzzDocText(&r, 1+r.nextInt(4), 5), Options{HistoryLimit: 1 + r.nextInt(8)})
		assertStateInvariants(t, s, "initial")

		steps := 1 + r.nextInt(48)
		for i := 0; i < steps; i++ {
			name := applyFuzzOp(t, s, &r)
			assertStateInvariants(t, s, name)
		}
	})
}

type fuzzByteReader struct {
	data []byte
	idx  int
}

func (r *fuzzByteReader) nextByte() byte {
	if len(r.data) == 0 {
		return 0
	}
	b := r.data[r.idx%len(r.data)]
	r.idx++
	return b
}

func (r *fuzzByteReader) nextBool() bool {
	return r.nextByte()&1 == 1
}

func (r *fuzzByteReader) nextInt(max int) int {
	if max <= 0 {
		return 0
	}
	return int(r.nextByte()) % max
}

var fuzzClusters = []string{"a", "b", "x", " ", "\u00a0", "#", "\u00e9", "e\u0301", "か", "👨\u200d👩\u200d👧\u200d👦"}

func fuzzDocText(r *fuzzByteReader, lineCount, maxClusters int) string {
	lines := make([]string, 0, lineCount)
	for i := 0; i < lineCount; i++ {
		n := r.nextInt(maxClusters + 1)
		var sb strings.Builder
		for j := 0; j < n; j++ {
			sb.WriteString(fuzzClusters[r.nextInt(len(fuzzClusters))])
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

func fuzzDirection(r *fuzzByteReader) Direction {
	if r.nextBool() {
		return Forward
	}
	return Backward
}

// fuzzPos may fall outside the document so that clamping is exercised.
func fuzzPos(s *State, r *fuzzByteReader) Pos {
	line := r.nextInt(s.LineCount()+3) - 1
	n := clampInt(line, 1, s.LineCount())
	return Pos{Line: line, Col: r.nextInt(s.buf.LineLen(n)+4) - 1}
}

func applyFuzzOp(t *testing.T, s *State, r *fuzzByteReader) string {
	t.Helper()

	switch r.nextInt(21) {
	case 0:
		s.InsertChar([]rune("aか#")[r.nextInt(3)])
		return "InsertChar"
	case 1:
		s.InsertText(fuzzClusters[r.nextInt(len(fuzzClusters))] + "ん")
		return "InsertText"
	case 2:
		s.Insert(fuzzDocText(r, 1, 3))
		return "Insert"
	case 3:
		s.InsertPill("F1")
		return "InsertPill"
	case 4:
		s.InsertComponent("clock")
		return "InsertComponent"
	case 5:
		s.Delete(fuzzDirection(r))
		return "Delete"
	case 6:
		s.JoinLines()
		return "JoinLines"
	case 7:
		s.MoveCursor(fuzzDirection(r))
		return "MoveCursor"
	case 8:
		s.MoveCursorSelection(fuzzDirection(r), r.nextBool())
		return "MoveCursorSelection"
	case 9:
		s.GoToLine(fuzzDirection(r))
		return "GoToLine"
	case 10:
		p := fuzzPos(s, r)
		s.SetCursor(p.Line, p.Col)
		return "SetCursor"
	case 11:
		s.NextLineOrNew()
		return "NextLineOrNew"
	case 12:
		s.InsertNewline()
		return "InsertNewline"
	case 13:
		s.Undo()
		return "Undo"
	case 14:
		s.Redo()
		return "Redo"
	case 15:
		s.Paste(fuzzDocText(r, 1+r.nextInt(3), 3) + []string{"", "\r\n", "\r"}[r.nextInt(3)])
		return "Paste"
	case 16:
		s.DeleteSelection()
		return "DeleteSelection"
	case 17:
		s.SetSelection(fuzzPos(s, r), fuzzPos(s, r))
		return "SetSelection"
	case 18:
		s.ClearSelection()
		return "ClearSelection"
	case 19:
		before := s.Text()
		s.InsertChar('z')
		s.Delete(Backward)
		if got := s.Text(); got != before {
			t.Fatalf("insert then delete: text=%q, want %q", got, before)
		}
		return "InsertChar+Delete"
	default:
		before := s.Cursor()
		v := s.Version()
		s.MoveCursor(Forward)
		if s.Version() == v {
			return "MoveCursor(Forward) at end"
		}
		s.MoveCursor(Backward)
		if got := s.Cursor(); got != before {
			t.Fatalf("forward then backward: cursor=%v, want %v", got, before)
		}
		return "MoveCursor round trip"
	}
}

func assertStateInvariants(t *testing.T, s *State, after string) {
	t.Helper()

	lines := s.LineCount()
	if lines < 1 {
		t.Fatalf("after %s: line count=%d, want >= 1", after, lines)
	}
	if l := s.CurrentLine(); l < 1 || l > lines {
		t.Fatalf("after %s: current line=%d, want in [1,%d]", after, l, lines)
	}
	if p, hi := s.CursorPosition(), s.CurrentLineLen()+1; p < 1 || p > hi {
		t.Fatalf("after %s: cursor position=%d, want in [1,%d]", after, p, hi)
	}
	for _, p := range []Pos{s.SelectionStart(), s.SelectionEnd()} {
		if p != s.clampPos(p) {
			t.Fatalf("after %s: selection endpoint %v outside the document", after, p)
		}
	}

	for n := 1; n <= lines; n++ {
		if c := countCursors(s.Line(n)); c != 0 {
			t.Fatalf("after %s: line %d holds %d cursor glyphs, want 0", after, n, c)
		}
		want := 0
		if n == s.CurrentLine() {
			want = 1
		}
		if c := countCursors(s.DisplayLine(n)); c != want {
			t.Fatalf("after %s: display line %d holds %d cursor glyphs, want %d", after, n, c, want)
		}
	}

	text := s.Text()
	if got := FromText(text).Text(); got != text {
		t.Fatalf("after %s: FromText round trip=%q, want %q", after, got, text)
	}
	_ = s.SelectedText()
	_ = s.CaretPrefix()
}

func countCursors(l Line) int {
	n := 0
	for _, g := range l.Glyphs() {
		if g.Kind == GlyphCursor {
			n++
		}
	}
	return n
}
