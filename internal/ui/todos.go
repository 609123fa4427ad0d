package ui

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/todomvc/internal/model"
	"github.com/idilsaglam/todomvc/internal/state"
)

const maxDescription = 80

// ItemsLeft is the footer counter, e.g. "1 item left".
func ItemsLeft(n int) string {
	if n == 1 {
		return "1 item left"
	}
	return fmt.Sprintf("%d items left", n)
}

// ListLines renders st for the plain `ls` output. Numbers are the 1-based
// positions in the full list, so they can be passed back to other commands
// whatever filter is showing.
func ListLines(st *state.State, group bool) []string {
	t := Current()
	done, left := st.TotalCompleted(), st.Total()

	var lines []string
	lines = append(lines, fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		C(t.Title, "todos"),
		C(t.Success, symCheck), done,
		C(t.Pending, "•"), left,
		C(t.Accent, "Total"), len(st.Entries),
	))
	lines = append(lines, C(t.Muted, ProgressBar(done, done+left, 28)))
	lines = append(lines, "")

	if group {
		lines = append(lines, groupLines(st)...)
	} else {
		lines = append(lines, entryLines(st, st.Visible())...)
	}

	if len(st.Entries) > 0 {
		lines = append(lines, "")
		lines = append(lines, fmt.Sprintf("%s   %s   %s",
			C(t.Pending, ItemsLeft(left)),
			FilterBar(st.Filter),
			C(t.Muted, fmt.Sprintf("Clear completed (%d)", done)),
		))
	}
	return lines
}

// FilterBar lists every filter with the selected one highlighted.
func FilterBar(selected model.Filter) string {
	t := Current()
	parts := make([]string, 0, len(model.Filters()))
	for _, f := range model.Filters() {
		if f == selected {
			parts = append(parts, C(t.Accent, "["+f.String()+"]"))
		} else {
			parts = append(parts, C(t.Muted, f.String()))
		}
	}
	return strings.Join(parts, " ") + " " + C(t.Muted, selected.Href())
}

// EntryLine renders one entry with its 1-based number.
func EntryLine(n int, e model.Entry) string {
	t := Current()
	box, color := t.BoxUnchecked, t.Muted
	desc := e.Description
	if len([]rune(desc)) > maxDescription {
		desc = string([]rune(desc)[:maxDescription-3]) + "..."
	}
	if e.Completed {
		box, color = t.BoxChecked, t.Success
		desc = C(t.Done, desc)
	}
	line := fmt.Sprintf("%s %s %s", C(dim, fmt.Sprintf("%2d.", n)), C(color, box), desc)
	if e.Editing {
		line += " " + C(t.Pending, t.SymEditing)
	}
	return line
}

func entryLines(st *state.State, idxs []int) []string {
	if len(idxs) == 0 {
		return []string{C(Current().Muted, "no items")}
	}
	out := make([]string, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, EntryLine(i+1, st.Entries[i]))
	}
	return out
}

func groupLines(st *state.State) []string {
	var pend, done []int
	for _, i := range st.Visible() {
		if st.Entries[i].Completed {
			done = append(done, i)
		} else {
			pend = append(pend, i)
		}
	}
	t := Current()
	var lines []string
	lines = append(lines, C(t.Accent, "Active"))
	if len(pend) == 0 {
		lines = append(lines, C(t.Muted, "(none)"))
	} else {
		lines = append(lines, entryLines(st, pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, C(t.Accent, "Completed"))
	if len(done) == 0 {
		lines = append(lines, C(t.Muted, "(none)"))
	} else {
		lines = append(lines, entryLines(st, done)...)
	}
	return lines
}
