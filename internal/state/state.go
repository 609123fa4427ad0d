// Package state holds the todo list and the operations the View dispatches
// against it.
//
// Entries are addressed by position. An index is only valid until the next
// structural change (Remove, ClearCompleted, or an edit committed blank);
// callers must not keep indices across those. Passing an index outside
// [0, len(Entries)) is a programming error and panics.
package state

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/todomvc/internal/model"
)

// State is the aggregate root of the application.
type State struct {
	Entries []model.Entry
	Filter  model.Filter

	// Value stages the description of the entry being composed.
	Value string
	// EditValue stages the description of the entry being edited.
	EditValue string
}

// New returns a state holding a copy of entries under the All filter.
func New(entries []model.Entry) *State {
	return &State{Entries: append([]model.Entry{}, entries...), Filter: model.All}
}

func (s *State) check(idx int) {
	if idx < 0 || idx >= len(s.Entries) {
		panic(fmt.Sprintf("state: index %d out of range [0,%d)", idx, len(s.Entries)))
	}
}

// Add appends the staged Value as a new entry when it is not blank, and
// always clears the staging text.
func (s *State) Add() bool {
	desc := strings.TrimSpace(s.Value)
	s.Value = ""
	if desc == "" {
		return false
	}
	s.Entries = append(s.Entries, model.NewEntry(desc))
	return true
}

func (s *State) Toggle(idx int) {
	s.check(idx)
	s.Entries[idx].Completed = !s.Entries[idx].Completed
}

// ToggleAll sets every entry's completion to status.
func (s *State) ToggleAll(status bool) {
	for i := range s.Entries {
		s.Entries[i].Completed = status
	}
}

// IsAllCompleted reports whether no active entry exists. An empty list
// counts as all completed.
func (s *State) IsAllCompleted() bool {
	for _, e := range s.Entries {
		if !e.Completed {
			return false
		}
	}
	return true
}

func (s *State) ClearAllEdit() {
	for i := range s.Entries {
		s.Entries[i].Editing = false
	}
}

// ToggleEdit flips the editing flag of the entry at idx and clears it on
// every other entry, so at most one entry is ever being edited.
func (s *State) ToggleEdit(idx int) {
	s.check(idx)
	editing := s.Entries[idx].Editing
	s.ClearAllEdit()
	s.Entries[idx].Editing = !editing
}

// CompleteEdit stores description on the entry at idx and leaves edit mode.
// A blank description removes the entry.
func (s *State) CompleteEdit(idx int, description string) {
	s.check(idx)
	description = strings.TrimSpace(description)
	if description == "" {
		s.Remove(idx)
		return
	}
	s.Entries[idx].Description = description
	s.Entries[idx].Editing = false
}

// BeginEdit stages the current description of idx and puts it in edit mode.
func (s *State) BeginEdit(idx int) {
	s.check(idx)
	s.EditValue = s.Entries[idx].Description
	s.ToggleEdit(idx)
}

// CommitEdit completes the edit of idx with the staged EditValue.
func (s *State) CommitEdit(idx int) {
	s.CompleteEdit(idx, s.EditValue)
	s.EditValue = ""
}

// CancelEdit leaves edit mode on idx without touching its description.
func (s *State) CancelEdit(idx int) {
	s.check(idx)
	s.Entries[idx].Editing = false
	s.EditValue = ""
}

// Remove deletes the entry at idx. Entries after it move down by one.
func (s *State) Remove(idx int) {
	s.check(idx)
	s.Entries = append(s.Entries[:idx], s.Entries[idx+1:]...)
}

// ClearCompleted drops every completed entry, keeping the order of the rest.
func (s *State) ClearCompleted() {
	kept := s.Entries[:0]
	for _, e := range s.Entries {
		if !e.Completed {
			kept = append(kept, e)
		}
	}
	// zero the tail so dropped descriptions are not retained
	for i := len(kept); i < len(s.Entries); i++ {
		s.Entries[i] = model.Entry{}
	}
	s.Entries = kept
}

// Total counts the entries still to do.
func (s *State) Total() int {
	return len(s.Entries) - s.TotalCompleted()
}

func (s *State) TotalCompleted() int {
	n := 0
	for _, e := range s.Entries {
		if e.Completed {
			n++
		}
	}
	return n
}

// Visible returns the indices of the entries that fit the current filter.
func (s *State) Visible() []int {
	out := make([]int, 0, len(s.Entries))
	for i, e := range s.Entries {
		if s.Filter.Fits(e) {
			out = append(out, i)
		}
	}
	return out
}

// Editing returns the index of the entry in edit mode, or -1.
func (s *State) Editing() int {
	for i, e := range s.Entries {
		if e.Editing {
			return i
		}
	}
	return -1
}
