// Package pages switches between the fixed screens of the application.
package pages

import "github.com/vcrini/schoolrecords/internal/records"

type PageID int

const (
	Home PageID = iota
	Teacher
	Student
)

func (p PageID) String() string {
	switch p {
	case Home:
		return "home"
	case Teacher:
		return "teacher"
	case Student:
		return "student"
	default:
		return "unknown"
	}
}

func (p PageID) valid() bool {
	return p >= Home && p <= Student
}

// Navigator shows exactly one page at a time and owns the record forms of
// the Teacher and Student pages.
type Navigator struct {
	current   PageID
	forms     map[PageID]*records.Form
	listeners []func(from, to PageID)
}

func NewNavigator(teacher, student *records.Form) *Navigator {
	return &Navigator{
		current: Home,
		forms: map[PageID]*records.Form{
			Teacher: teacher,
			Student: student,
		},
	}
}

func (n *Navigator) Current() PageID {
	return n.current
}

func (n *Navigator) Visible(p PageID) bool {
	return n.current == p
}

// Show makes p the visible page. Any page may follow any other; unknown ids
// are ignored.
func (n *Navigator) Show(p PageID) {
	if !p.valid() {
		return
	}
	from := n.current
	n.current = p
	for _, fn := range n.listeners {
		fn(from, p)
	}
}

// OnShow registers fn to run after every Show.
func (n *Navigator) OnShow(fn func(from, to PageID)) {
	n.listeners = append(n.listeners, fn)
}

// Form returns the form owned by a record page. Home has none.
func (n *Navigator) Form(p PageID) (*records.Form, bool) {
	f, ok := n.forms[p]
	return f, ok && f != nil
}
