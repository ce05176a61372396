// Package records holds the in-memory data of a form page: its ordered fields,
// the table of submitted rows and the add/clear/delete operations between them.
package records

import (
	"fmt"
	"strings"
)

// Form binds a FieldSet to the Table its rows are appended to.
type Form struct {
	fields *FieldSet
	table  *Table
}

func NewForm(labels ...string) (*Form, error) {
	fields, err := NewFieldSet(labels...)
	if err != nil {
		return nil, fmt.Errorf("new form: %w", err)
	}
	return &Form{fields: fields, table: NewTable(fields.Len())}, nil
}

func (f *Form) Fields() *FieldSet {
	return f.fields
}

func (f *Form) Table() *Table {
	return f.table
}

// Add appends the trimmed field values as a new record and clears the fields.
// If any value is blank it returns a *ValidationError and leaves fields and
// table untouched.
func (f *Form) Add() (Record, error) {
	values := f.fields.Values()
	var missing []string
	for i, v := range values {
		values[i] = strings.TrimSpace(v)
		if values[i] == "" {
			missing = append(missing, f.fields.labels[i])
		}
	}
	if len(missing) > 0 {
		return Record{}, &ValidationError{Missing: missing}
	}
	rec, err := f.table.Append(values)
	if err != nil {
		return Record{}, err
	}
	f.fields.Clear()
	return rec, nil
}

func (f *Form) Clear() {
	f.fields.Clear()
}

// DeleteSelected removes the marked records, empties sel and returns the
// number of records removed.
func (f *Form) DeleteSelected(sel Selection) int {
	n := f.table.Delete(sel)
	sel.Clear()
	return n
}
