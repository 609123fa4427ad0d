package model

import (
	"fmt"
	"strings"
)

// Entry is one todo item. Entries have no identity beyond their position in
// the list that holds them.
type Entry struct {
	Description string `json:"description" yaml:"description"`
	Completed   bool   `json:"completed" yaml:"completed"`
	Editing     bool   `json:"editing" yaml:"editing"`
}

// NewEntry returns an active, non-editing entry. The description is trimmed;
// callers must reject blank input before calling.
func NewEntry(description string) Entry {
	return Entry{Description: strings.TrimSpace(description)}
}

// Filter selects which entries are displayed. It never changes data.
type Filter int

const (
	All Filter = iota
	Active
	Completed
)

// Filters returns every filter in display order.
func Filters() []Filter { return []Filter{All, Active, Completed} }

// Fits reports whether e is visible under f.
func (f Filter) Fits(e Entry) bool {
	switch f {
	case Active:
		return !e.Completed
	case Completed:
		return e.Completed
	default:
		return true
	}
}

// Href is the routing fragment used to deep-link to f.
func (f Filter) Href() string {
	switch f {
	case Active:
		return "#/active"
	case Completed:
		return "#/completed"
	default:
		return "#/"
	}
}

func (f Filter) String() string {
	switch f {
	case Active:
		return "Active"
	case Completed:
		return "Completed"
	default:
		return "All"
	}
}

// ParseFilter accepts a filter name (any case) or its href.
func ParseFilter(s string) (Filter, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, f := range Filters() {
		if v == strings.ToLower(f.String()) || v == f.Href() {
			return f, nil
		}
	}
	if v == "" || v == "#" {
		return All, nil
	}
	return All, fmt.Errorf("unknown filter %q", s)
}
