// Package tui is the interactive terminal View. It renders the state and
// turns key presses into intents dispatched to the state manager.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todomvc/internal/model"
	"github.com/idilsaglam/todomvc/internal/state"
)

type mode int

const (
	modeList mode = iota // navigating entries
	modeNew              // typing into the new-todo input
	modeEdit             // typing into an entry's edit input
)

// Model implements tea.Model.
type Model struct {
	mgr  *state.Manager
	keys keyMap
	help help.Model

	input textinput.Model // new-todo
	edit  textinput.Model
	list  list.Model // pages the visible entries

	mode    mode
	cursor  int // position within the visible entries
	editIdx int // entry index being edited, valid in modeEdit

	width, height int
}

// New builds the view over mgr. An empty list starts with the new-todo
// input focused; an entry restored in edit mode resumes editing.
func New(mgr *state.Manager) Model {
	m := Model{
		mgr:  mgr,
		keys: defaultKeys(),
		help: help.New(),
		list: newEntryList(),
	}

	m.input = textinput.New()
	m.input.Prompt = "❯ "
	m.input.Placeholder = "What needs to be done?"
	m.input.CharLimit = 200
	m.input.SetValue(mgr.State().Value)

	m.edit = textinput.New()
	m.edit.Prompt = "✎ "
	m.edit.CharLimit = 200

	st := mgr.State()
	switch {
	case st.Editing() >= 0:
		idx := st.Editing()
		m.mgr.Dispatch(state.UpdateEdit{Value: st.Entries[idx].Description})
		m.focusEdit(idx)
	case len(st.Entries) == 0:
		m.mode = modeNew
		m.input.Focus()
	}
	return m
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = max(msg.Width-4, 0)
		m.input.Width = max(msg.Width-12, 10)
		m.edit.Width = max(msg.Width-14, 10)
		m.list.SetSize(max(msg.Width-4, 0), msg.Height)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeNew:
			return m.updateNew(msg)
		case modeEdit:
			return m.updateEdit(msg)
		default:
			return m.updateList(msg)
		}
	}

	var cmd tea.Cmd
	switch m.mode {
	case modeNew:
		m.input, cmd = m.input.Update(msg)
	case modeEdit:
		m.edit, cmd = m.edit.Update(msg)
	}
	return m, cmd
}

func (m Model) updateNew(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.mgr.Dispatch(state.Add{})
		m.input.SetValue(m.mgr.State().Value)
		m.clampCursor()
		return m, nil
	case key.Matches(msg, m.keys.Cancel), msg.Type == tea.KeyTab:
		m.mode = modeList
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.mgr.State().Value {
		m.mgr.Dispatch(state.Update{Value: v})
	}
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.mgr.Dispatch(state.Edit{Index: m.editIdx})
		m.leaveEdit()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.mgr.Dispatch(state.CancelEdit{Index: m.editIdx})
		m.leaveEdit()
		return m, nil
	}

	var cmd tea.Cmd
	m.edit, cmd = m.edit.Update(msg)
	if v := m.edit.Value(); v != m.mgr.State().EditValue {
		m.mgr.Dispatch(state.UpdateEdit{Value: v})
	}
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.mgr.State()
	n := len(model.Filters())

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.New):
		m.mode = modeNew
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.cursor--
	case key.Matches(msg, m.keys.Down):
		m.cursor++
	case key.Matches(msg, m.keys.ToggleAll):
		if len(st.Entries) > 0 {
			m.mgr.Dispatch(state.ToggleAll{})
		}
	case key.Matches(msg, m.keys.ClearCompleted):
		m.mgr.Dispatch(state.ClearCompleted{})
	case key.Matches(msg, m.keys.All):
		m.setFilter(model.All)
	case key.Matches(msg, m.keys.Active):
		m.setFilter(model.Active)
	case key.Matches(msg, m.keys.Completed):
		m.setFilter(model.Completed)
	case key.Matches(msg, m.keys.PrevFilter):
		m.setFilter(model.Filter((int(st.Filter) + n - 1) % n))
	case key.Matches(msg, m.keys.NextFilter):
		m.setFilter(model.Filter((int(st.Filter) + 1) % n))
	default:
		return m.updateSelected(msg)
	}
	m.clampCursor()
	return m, nil
}

// updateSelected handles the keys that act on the entry under the cursor.
func (m Model) updateSelected(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.mgr.State().Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return m, nil
	}
	idx := visible[m.cursor]

	switch {
	case key.Matches(msg, m.keys.Toggle):
		m.mgr.Dispatch(state.Toggle{Index: idx})
	case key.Matches(msg, m.keys.Edit):
		m.mgr.Dispatch(state.ToggleEdit{Index: idx})
		return m, m.focusEdit(idx)
	case key.Matches(msg, m.keys.Remove):
		m.mgr.Dispatch(state.Remove{Index: idx})
	}
	m.clampCursor()
	return m, nil
}

func (m *Model) setFilter(f model.Filter) {
	m.mgr.Dispatch(state.SetFilter{Filter: f})
	m.cursor = 0
}

// focusEdit moves keyboard focus into the edit input for idx. Focus is a
// one-shot request; the returned command only drives the cursor blink.
func (m *Model) focusEdit(idx int) tea.Cmd {
	m.mode = modeEdit
	m.editIdx = idx
	for pos, v := range m.mgr.State().Visible() {
		if v == idx {
			m.cursor = pos
		}
	}
	m.input.Blur()
	m.edit.SetValue(m.mgr.State().EditValue)
	m.edit.CursorEnd()
	return m.edit.Focus()
}

func (m *Model) leaveEdit() {
	m.mode = modeList
	m.edit.Blur()
	m.edit.SetValue("")
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.mgr.State().Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Run starts the program on the terminal's alternate screen and returns
// when the user quits.
func Run(mgr *state.Manager) error {
	p := tea.NewProgram(New(mgr), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
