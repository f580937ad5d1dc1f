package buffer

// Pos points into the document by (line, col). Both are 1-based.
type Pos struct {
	Line int
	Col  int
}

// Range is a half-open span between two positions: [Start, End).
// Start <= End in document order once normalized.
type Range struct {
	Start Pos
	End   Pos
}

// Direction selects backward (towards the document start) or forward
// movement and deletion.
type Direction int8

const (
	Backward Direction = -1
	Forward  Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Backward:
		return "backward"
	case Forward:
		return "forward"
	default:
		return "invalid"
	}
}

func ComparePos(a, b Pos) int {
	if a.Line < b.Line {
		return -1
	}
	if a.Line > b.Line {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

func NormalizeRange(r Range) Range {
	if ComparePos(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampPos clamps p into document bounds described by lineCount and lineLen.
//
// - lineCount is the number of lines (treated as at least 1).
// - lineLen(n) returns the glyph count of line n.
//
// The returned Pos always satisfies 1 <= Line <= lineCount and
// 1 <= Col <= lineLen(Line)+1.
func ClampPos(p Pos, lineCount int, lineLen func(line int) int) Pos {
	if lineCount <= 0 {
		lineCount = 1
	}
	line := clampInt(p.Line, 1, lineCount)

	maxCol := 1
	if lineLen != nil {
		maxCol = lineLen(line) + 1
		if maxCol < 1 {
			maxCol = 1
		}
	}
	return Pos{Line: line, Col: clampInt(p.Col, 1, maxCol)}
}
