package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down       key.Binding
	Toggle         key.Binding
	Edit           key.Binding
	Remove         key.Binding
	ToggleAll      key.Binding
	ClearCompleted key.Binding
	All, Active    key.Binding
	Completed      key.Binding
	PrevFilter     key.Binding
	NextFilter     key.Binding
	New            key.Binding
	Help           key.Binding
	Quit           key.Binding

	// input modes
	Submit key.Binding
	Cancel key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:             key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:           key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:         key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Edit:           key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("e", "edit")),
		Remove:         key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "remove")),
		ToggleAll:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle all")),
		ClearCompleted: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear completed")),
		All:            key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		Active:         key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
		Completed:      key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
		PrevFilter:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "filter")),
		NextFilter:     key.NewBinding(key.WithKeys("right", "l")),
		New:            key.NewBinding(key.WithKeys("n", "/"), key.WithHelp("n", "new todo")),
		Help:           key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Edit, k.Remove, k.New, k.PrevFilter, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Edit, k.Remove},
		{k.ToggleAll, k.ClearCompleted, k.New},
		{k.All, k.Active, k.Completed, k.PrevFilter},
		{k.Help, k.Quit},
	}
}

// inputKeys is the help shown while a text input has focus.
type inputKeys struct{ submit, cancel key.Binding }

func (k inputKeys) ShortHelp() []key.Binding  { return []key.Binding{k.submit, k.cancel} }
func (k inputKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
