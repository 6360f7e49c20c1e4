// Package model defines the core data structures for td.
package model

// Task is a single todo entry.
type Task struct {
	ID   int64  `json:"id" yaml:"id" toml:"id"`
	Text string `json:"text" yaml:"text" toml:"text"`
	Done bool   `json:"done" yaml:"done" toml:"done"`
}

// List is the ordered sequence of all tasks.
// Insertion order is display order and persistence order.
type List []Task

// Clone returns a copy of l that shares no backing array with it.
// A nil list clones to an empty, non-nil list.
func (l List) Clone() List {
	out := make(List, len(l))
	copy(out, l)
	return out
}

// Index returns the position of the task with the given ID, or -1.
func (l List) Index(id int64) int {
	for i := range l {
		if l[i].ID == id {
			return i
		}
	}
	return -1
}

// MaxID returns the largest ID in the list, or 0 for an empty list.
func (l List) MaxID() int64 {
	var max int64
	for _, t := range l {
		if t.ID > max {
			max = t.ID
		}
	}
	return max
}

// Stats returns the number of done and pending tasks.
func (l List) Stats() (done, pending int) {
	for _, t := range l {
		if t.Done {
			done++
		} else {
			pending++
		}
	}
	return done, pending
}

// EditSession is the transient in-progress edit of one task.
// It is either NoActiveEdit or Editing; it is never persisted.
type EditSession interface {
	editSession()
}

// NoActiveEdit means no task is being edited.
type NoActiveEdit struct{}

// Editing holds the task being edited and its unsaved draft text.
type Editing struct {
	TargetID int64
	Draft    string
}

func (NoActiveEdit) editSession() {}
func (Editing) editSession()      {}

// ActiveEdit returns the Editing value of s, if any.
func ActiveEdit(s EditSession) (Editing, bool) {
	e, ok := s.(Editing)
	return e, ok
}
