// Package todo holds the task record, the ordered task list, and its JSON form.
package todo

import (
	"errors"
	"strings"
)

// MaxID is the largest id a stored list may hold. Ids stay within the range
// a JSON number represents exactly.
const MaxID = 1<<53 - 1

// ErrIDsExhausted is returned by NextID when the list already holds MaxID.
var ErrIDsExhausted = errors.New("task ids exhausted")

// Task represents a single entry in the list.
//
// Name is stored exactly as typed; callers only check that it is not blank.
type Task struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Done bool   `json:"done" yaml:"done"`
}

// IsBlank reports whether name has nothing but whitespace in it.
func IsBlank(name string) bool {
	return strings.TrimSpace(name) == ""
}

// List is an ordered task list. Insertion order is display order.
//
// The list holds pointers so a row rendered for a task and the list itself
// share one record: flipping Done through either is seen by both.
type List []*Task

// NextID returns max(existing ids, 0) + 1, or ErrIDsExhausted when that
// would pass MaxID.
func (l List) NextID() (int, error) {
	maxID := 0
	for _, t := range l {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	if maxID >= MaxID {
		return 0, ErrIDsExhausted
	}
	return maxID + 1, nil
}

// DuplicateIDs returns each id held by more than one task, in order of first
// repetition.
func (l List) DuplicateIDs() []int {
	seen := make(map[int]int, len(l))
	var dups []int
	for _, t := range l {
		seen[t.ID]++
		if seen[t.ID] == 2 {
			dups = append(dups, t.ID)
		}
	}
	return dups
}

// Index returns the position of the first task with the given id, or -1.
func (l List) Index(id int) int {
	for i, t := range l {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Get returns the task with the given id, or nil if not found.
func (l List) Get(id int) *Task {
	if i := l.Index(id); i >= 0 {
		return l[i]
	}
	return nil
}

// Append adds a task at the end of the list.
func (l *List) Append(t *Task) {
	*l = append(*l, t)
}

// Remove deletes the task with the given id and reports whether it was present.
func (l *List) Remove(id int) bool {
	i := l.Index(id)
	if i < 0 {
		return false
	}
	s := *l
	copy(s[i:], s[i+1:])
	s[len(s)-1] = nil
	*l = s[:len(s)-1]
	return true
}

// Snapshot returns a value copy of every task, in order.
func (l List) Snapshot() []Task {
	out := make([]Task, len(l))
	for i, t := range l {
		out[i] = *t
	}
	return out
}

// FromSnapshot builds a list of fresh records from value copies.
func FromSnapshot(tasks []Task) List {
	l := make(List, len(tasks))
	for i := range tasks {
		t := tasks[i]
		l[i] = &t
	}
	return l
}
