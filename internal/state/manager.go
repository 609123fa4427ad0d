package state

import (
	"go.uber.org/zap"

	"github.com/idilsaglam/todomvc/internal/model"
)

// Msg is a user intent the View dispatches to the Manager.
type Msg interface{ isMsg() }

type (
	// Add commits the staged Value as a new entry.
	Add struct{}
	// Update replaces the staged Value.
	Update struct{ Value string }
	// UpdateEdit replaces the staged EditValue.
	UpdateEdit struct{ Value string }
	// Edit commits the staged EditValue to the entry at Index.
	Edit struct{ Index int }
	// CancelEdit leaves edit mode on Index, discarding EditValue.
	CancelEdit struct{ Index int }
	Remove     struct{ Index int }
	SetFilter  struct{ Filter model.Filter }
	// ToggleAll completes every entry, or reopens them all when they are
	// already complete.
	ToggleAll struct{}
	// ToggleEdit puts the entry at Index in edit mode.
	ToggleEdit     struct{ Index int }
	Toggle         struct{ Index int }
	ClearCompleted struct{}
)

func (Add) isMsg()            {}
func (Update) isMsg()         {}
func (UpdateEdit) isMsg()     {}
func (Edit) isMsg()           {}
func (CancelEdit) isMsg()     {}
func (Remove) isMsg()         {}
func (SetFilter) isMsg()      {}
func (ToggleAll) isMsg()      {}
func (ToggleEdit) isMsg()     {}
func (Toggle) isMsg()         {}
func (ClearCompleted) isMsg() {}

// Listener observes the entries after every committed change. It receives
// a copy it may keep.
type Listener func(entries []model.Entry)

// Manager applies intents to a State and notifies listeners afterwards.
// It is not safe for concurrent use; all dispatches happen on one goroutine.
type Manager struct {
	st        *State
	listeners []Listener
	logger    *zap.Logger
}

func NewManager(st *State, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{st: st, logger: logger}
}

// State exposes the managed state for rendering. Callers must mutate it only
// through Dispatch.
func (m *Manager) State() *State { return m.st }

func (m *Manager) Subscribe(l Listener) {
	m.listeners = append(m.listeners, l)
}

// Dispatch applies msg. Listeners run after any intent that can change the
// entries; staging and filter changes do not notify.
func (m *Manager) Dispatch(msg Msg) {
	s := m.st
	changed := true

	switch x := msg.(type) {
	case Add:
		changed = s.Add()
	case Update:
		s.Value = x.Value
		changed = false
	case UpdateEdit:
		s.EditValue = x.Value
		changed = false
	case Edit:
		s.CommitEdit(x.Index)
	case CancelEdit:
		s.CancelEdit(x.Index)
	case Remove:
		s.Remove(x.Index)
	case SetFilter:
		s.Filter = x.Filter
		changed = false
	case ToggleAll:
		s.ToggleAll(!s.IsAllCompleted())
	case ToggleEdit:
		s.BeginEdit(x.Index)
	case Toggle:
		s.Toggle(x.Index)
	case ClearCompleted:
		s.ClearCompleted()
	default:
		m.logger.Warn("unknown intent", zap.Any("msg", msg))
		return
	}

	m.logger.Debug("dispatched",
		zap.String("intent", intentName(msg)),
		zap.Int("entries", len(s.Entries)),
		zap.Bool("changed", changed))

	if changed {
		m.notify()
	}
}

func (m *Manager) notify() {
	for _, l := range m.listeners {
		snapshot := make([]model.Entry, len(m.st.Entries))
		copy(snapshot, m.st.Entries)
		l(snapshot)
	}
}

func intentName(msg Msg) string {
	switch msg.(type) {
	case Add:
		return "add"
	case Update:
		return "update"
	case UpdateEdit:
		return "update_edit"
	case Edit:
		return "edit"
	case CancelEdit:
		return "cancel_edit"
	case Remove:
		return "remove"
	case SetFilter:
		return "set_filter"
	case ToggleAll:
		return "toggle_all"
	case ToggleEdit:
		return "toggle_edit"
	case Toggle:
		return "toggle"
	case ClearCompleted:
		return "clear_completed"
	}
	return "unknown"
}
