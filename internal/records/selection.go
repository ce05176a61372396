package records

// Selection is the set of record ids currently marked in a table display.
// It lives in the display, not in the Table.
type Selection map[string]struct{}

func NewSelection(ids ...string) Selection {
	s := make(Selection, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s Selection) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s Selection) Len() int {
	return len(s)
}

// Toggle flips the mark on id and reports whether it is now marked.
func (s Selection) Toggle(id string) bool {
	if s.Has(id) {
		delete(s, id)
		return false
	}
	s[id] = struct{}{}
	return true
}

func (s Selection) Clear() {
	for id := range s {
		delete(s, id)
	}
}

// Prune drops ids that no longer name a record in t.
func (s Selection) Prune(t *Table) {
	for id := range s {
		if t.IndexOf(id) < 0 {
			delete(s, id)
		}
	}
}
