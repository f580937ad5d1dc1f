package ime

import (
	"cmp"
	"slices"
	"strings"
)

// Entry maps one key-code sequence to its output.
type Entry struct {
	Seq  []Code
	Text string
}

// Table is an immutable sequence lookup. The zero value is an empty table.
type Table struct {
	m      map[string]Entry
	maxLen int
}

// NewTable builds a table from entries. Empty sequences are skipped and a
// repeated sequence keeps the last entry.
func NewTable(entries ...Entry) *Table {
	t := &Table{m: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		t.add(e)
	}
	return t
}

func (t *Table) add(e Entry) {
	if len(e.Seq) == 0 {
		return
	}
	e.Seq = slices.Clone(e.Seq)
	t.m[seqKey(e.Seq)] = e
	t.maxLen = max(t.maxLen, len(e.Seq))
}

// Lookup returns the text mapped to seq.
func (t *Table) Lookup(seq []Code) (string, bool) {
	if t == nil || len(seq) == 0 {
		return "", false
	}
	e, ok := t.m[seqKey(seq)]
	return e.Text, ok
}

// MaxLen is the length of the longest sequence in the table.
func (t *Table) MaxLen() int {
	if t == nil {
		return 0
	}
	return t.maxLen
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.m)
}

// Merge returns a new table holding t's entries overlaid by other's.
func (t *Table) Merge(other *Table) *Table {
	out := NewTable()
	for _, src := range []*Table{t, other} {
		if src == nil {
			continue
		}
		for _, e := range src.m {
			out.add(e)
		}
	}
	return out
}

// Entries lists the table ordered by sequence length, then by sequence.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, 0, len(t.m))
	for _, e := range t.m {
		e.Seq = slices.Clone(e.Seq)
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Entry) int {
		if c := cmp.Compare(len(a.Seq), len(b.Seq)); c != 0 {
			return c
		}
		return cmp.Compare(seqKey(a.Seq), seqKey(b.Seq))
	})
	return out
}

func seqKey(seq []Code) string {
	var sb strings.Builder
	for i, c := range seq {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(string(c))
	}
	return sb.String()
}
