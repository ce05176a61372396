package records

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Record is one row of a Table. The ID only addresses the row for selection
// and deletion; it is never shown.
type Record struct {
	ID     string
	values []string
}

func (r Record) Values() []string {
	out := make([]string, len(r.values))
	copy(out, r.values)
	return out
}

func (r Record) Len() int {
	return len(r.values)
}

// Value returns "" when i is out of range.
func (r Record) Value(i int) string {
	if i < 0 || i >= len(r.values) {
		return ""
	}
	return r.values[i]
}

// Table keeps records in insertion order. Every record has exactly arity
// non-empty values.
type Table struct {
	arity int
	rows  []Record
}

func NewTable(arity int) *Table {
	return &Table{arity: arity}
}

func (t *Table) Arity() int {
	return t.arity
}

func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) Append(values []string) (Record, error) {
	if len(values) != t.arity {
		return Record{}, fmt.Errorf("%w: got %d, want %d", ErrArity, len(values), t.arity)
	}
	for i, v := range values {
		if strings.TrimSpace(v) == "" {
			return Record{}, fmt.Errorf("%w at column %d", ErrEmptyValue, i)
		}
	}
	rec := Record{ID: uuid.NewString(), values: make([]string, len(values))}
	copy(rec.values, values)
	t.rows = append(t.rows, rec)
	return rec, nil
}

// At returns the record at position i.
func (t *Table) At(i int) (Record, bool) {
	if i < 0 || i >= len(t.rows) {
		return Record{}, false
	}
	return t.rows[i], true
}

// IndexOf returns the position of the record with the given id, or -1.
func (t *Table) IndexOf(id string) int {
	for i, r := range t.rows {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (t *Table) Rows() []Record {
	out := make([]Record, len(t.rows))
	copy(out, t.rows)
	return out
}

// Delete removes every record whose id is in sel and reports how many went.
// The remaining records keep their relative order.
func (t *Table) Delete(sel Selection) int {
	if sel.Len() == 0 {
		return 0
	}
	kept := t.rows[:0]
	removed := 0
	for _, r := range t.rows {
		if sel.Has(r.ID) {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	for i := len(kept); i < len(t.rows); i++ {
		t.rows[i] = Record{}
	}
	t.rows = kept
	return removed
}
