package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todomvc/internal/model"
	"github.com/idilsaglam/todomvc/internal/state"
	"github.com/idilsaglam/todomvc/internal/ui"
)

func (m Model) View() string {
	st := m.mgr.State()
	var b strings.Builder

	var help string
	if m.mode == modeList {
		help = m.help.View(m.keys)
	} else {
		help = m.help.View(inputKeys{submit: m.keys.Submit, cancel: m.keys.Cancel})
	}

	b.WriteString(titleStyle.Render("todos"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	// main section and footer are hidden while the list is empty
	if len(st.Entries) > 0 {
		b.WriteString("\n")
		b.WriteString(m.toggleAllView(st))
		b.WriteString("\n")
		b.WriteString(m.entriesView(st, m.listRows(help)))
		b.WriteString("\n")
		b.WriteString(footerView(st))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(help)

	return panelString(b.String(), m.width)
}

func (m Model) toggleAllView(st *state.State) string {
	box := mutedStyle.Render(boxUnchecked)
	if st.IsAllCompleted() {
		box = successStyle.Render(boxChecked)
	}
	return box + " " + mutedStyle.Render("Mark all as complete")
}

// panelChrome is the number of panel rows around the entry list: border,
// title, input, blank, toggle-all, footer and blank.
const panelChrome = 8

// listRows is the height left for entries once the panel and help are
// drawn. Zero means the window size is not known yet.
func (m Model) listRows(help string) int {
	if m.height == 0 {
		return 0
	}
	return max(m.height-panelChrome-lipgloss.Height(help), 1)
}

func (m Model) entriesView(st *state.State, rows int) string {
	visible := st.Visible()
	if len(visible) == 0 {
		return mutedStyle.Render("  nothing " + strings.ToLower(st.Filter.String()))
	}

	items := make([]list.Item, 0, len(visible))
	for _, idx := range visible {
		items = append(items, entryItem{index: idx, entry: st.Entries[idx]})
	}
	d := entryDelegate{selecting: m.mode == modeList, editIdx: -1}
	if m.mode == modeEdit {
		d.editIdx = m.editIdx
		d.editView = m.edit.View()
	}

	paged := rows > 0 && rows < len(items)
	if !paged {
		rows = len(items)
	}

	l := m.list
	l.SetDelegate(d)
	l.SetShowPagination(paged)
	l.SetHeight(rows)
	l.SetItems(items)
	// the pager line only counts once there is more than one page
	l.SetHeight(rows)
	l.Select(m.cursor)
	return l.View()
}

func entryLine(e model.Entry, selected bool) string {
	box := mutedStyle.Render(boxUnchecked)
	text := e.Description
	if e.Completed {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}
	prefix := "  "
	if selected {
		prefix = selectedStyle.Render("> ")
	}
	return fmt.Sprintf("%s%s %s", prefix, box, text)
}

func footerView(st *state.State) string {
	tabs := make([]string, 0, len(model.Filters()))
	for _, f := range model.Filters() {
		if f == st.Filter {
			tabs = append(tabs, filterStyle.Render(accentStyle.Render(f.String())))
		} else {
			tabs = append(tabs, mutedStyle.Render(f.String()))
		}
	}

	parts := []string{
		pendingStyle.Render(ui.ItemsLeft(st.Total())),
		strings.Join(tabs, "  "),
		mutedStyle.Render(st.Filter.Href()),
	}
	if n := st.TotalCompleted(); n > 0 {
		parts = append(parts, mutedStyle.Render(fmt.Sprintf("Clear completed (%d)", n)))
	}
	return strings.Join(parts, "   ")
}

// helpers for View
func panelString(inner string, width int) string {
	style := panelStyle
	if width > 4 {
		style = style.Width(width - 2)
	}
	return style.Render(inner)
}
