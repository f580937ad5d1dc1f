package ime

import "slices"

// Matcher turns a stream of key codes into composed text using a Table.
//
// The queue never holds more codes than the table's longest sequence; the
// oldest code is dropped on overflow. There is no timeout.
type Matcher struct {
	table *Table
	queue []Code
}

func NewMatcher(t *Table) *Matcher {
	return &Matcher{table: t}
}

// Table returns the lookup table the matcher was built with.
func (m *Matcher) Table() *Table { return m.table }

// Feed appends c to the queue and tries suffixes from the longest down to a
// single code. On a hit the suffix leaves the queue and its text is returned.
func (m *Matcher) Feed(c Code) (string, bool) {
	limit := m.table.MaxLen()
	if limit <= 0 {
		m.queue = m.queue[:0]
		return "", false
	}

	m.queue = append(m.queue, c)
	if len(m.queue) > limit {
		m.queue = append(m.queue[:0], m.queue[len(m.queue)-limit:]...)
	}

	for n := len(m.queue); n >= 1; n-- {
		tail := m.queue[len(m.queue)-n:]
		if text, ok := m.table.Lookup(tail); ok {
			m.queue = m.queue[:len(m.queue)-n]
			return text, true
		}
	}
	return "", false
}

// Pending returns a copy of the queued codes.
func (m *Matcher) Pending() []Code { return slices.Clone(m.queue) }

func (m *Matcher) Reset() { m.queue = m.queue[:0] }
