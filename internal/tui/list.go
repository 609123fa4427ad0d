package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todomvc/internal/model"
)

// entryItem adapts a visible entry to bubbles/list.Item. index is the
// entry's position in State.Entries, not in the visible list.
type entryItem struct {
	index int
	entry model.Entry
}

func (i entryItem) FilterValue() string { return i.entry.Description }

// entryDelegate renders one entry per row. editIdx is -1 unless an entry
// is being edited, in which case editView replaces that row.
type entryDelegate struct {
	selecting bool
	editIdx   int
	editView  string
}

func (d entryDelegate) Height() int                             { return 1 }
func (d entryDelegate) Spacing() int                            { return 0 }
func (d entryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d entryDelegate) Render(w io.Writer, l list.Model, pos int, it list.Item) {
	e, ok := it.(entryItem)
	if !ok {
		return
	}
	if e.index == d.editIdx {
		fmt.Fprint(w, editStyle.Render(d.editView))
		return
	}
	fmt.Fprint(w, entryLine(e.entry, d.selecting && pos == l.Index()))
}

func newEntryList() list.Model {
	l := list.New(nil, entryDelegate{editIdx: -1}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	return l
}
