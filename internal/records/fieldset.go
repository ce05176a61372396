package records

import (
	"fmt"
	"strings"
)

// FieldSet is the ordered set of named inputs of a form page.
type FieldSet struct {
	labels []string
	values map[string]string
}

func NewFieldSet(labels ...string) (*FieldSet, error) {
	if len(labels) == 0 {
		return nil, ErrNoFields
	}
	fs := &FieldSet{
		labels: make([]string, 0, len(labels)),
		values: make(map[string]string, len(labels)),
	}
	for _, label := range labels {
		if strings.TrimSpace(label) == "" {
			return nil, fmt.Errorf("blank field label at position %d", len(fs.labels))
		}
		if _, ok := fs.values[label]; ok {
			return nil, fmt.Errorf("duplicate field label %q", label)
		}
		fs.labels = append(fs.labels, label)
		fs.values[label] = ""
	}
	return fs, nil
}

func (f *FieldSet) Labels() []string {
	out := make([]string, len(f.labels))
	copy(out, f.labels)
	return out
}

func (f *FieldSet) Len() int {
	return len(f.labels)
}

func (f *FieldSet) Set(label, value string) error {
	if _, ok := f.values[label]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, label)
	}
	f.values[label] = value
	return nil
}

// Get returns "" for unknown labels.
func (f *FieldSet) Get(label string) string {
	return f.values[label]
}

// Values returns the current text of every field in label order, untrimmed.
func (f *FieldSet) Values() []string {
	out := make([]string, len(f.labels))
	for i, label := range f.labels {
		out[i] = f.values[label]
	}
	return out
}

func (f *FieldSet) Clear() {
	for _, label := range f.labels {
		f.values[label] = ""
	}
}
