package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todomvc/internal/model"
)

type recorder struct {
	calls [][]model.Entry
}

func (r *recorder) listen(e []model.Entry) { r.calls = append(r.calls, e) }

func newManager(t *testing.T, es []model.Entry) (*Manager, *recorder) {
	t.Helper()
	m := NewManager(New(es), nil)
	r := &recorder{}
	m.Subscribe(r.listen)
	return m, r
}

func TestDispatchAddFlow(t *testing.T) {
	m, r := newManager(t, nil)

	m.Dispatch(Update{Value: "Buy milk"})
	assert.Equal(t, "Buy milk", m.State().Value)
	assert.Empty(t, r.calls, "staging must not persist")

	m.Dispatch(Add{})
	require.Len(t, r.calls, 1)
	assert.Equal(t, []model.Entry{{Description: "Buy milk"}}, r.calls[0])
	assert.Equal(t, "", m.State().Value)
}

func TestDispatchBlankAddDoesNotNotify(t *testing.T) {
	m, r := newManager(t, nil)
	m.Dispatch(Update{Value: "   "})
	m.Dispatch(Add{})
	assert.Empty(t, r.calls)
	assert.Empty(t, m.State().Entries)
}

func TestDispatchEditFlow(t *testing.T) {
	m, r := newManager(t, entries("a", false, "b", false))

	m.Dispatch(ToggleEdit{Index: 1})
	assert.Equal(t, "b", m.State().EditValue)
	assert.Equal(t, 1, m.State().Editing())

	m.Dispatch(UpdateEdit{Value: "  bread "})
	m.Dispatch(Edit{Index: 1})

	assert.Equal(t, model.Entry{Description: "bread"}, m.State().Entries[1])
	assert.Equal(t, "", m.State().EditValue)
	assert.Len(t, r.calls, 2)
}

func TestDispatchEditBlankDeletes(t *testing.T) {
	m, _ := newManager(t, entries("a", false, "b", false))
	m.Dispatch(ToggleEdit{Index: 0})
	m.Dispatch(UpdateEdit{Value: ""})
	m.Dispatch(Edit{Index: 0})
	assert.Equal(t, entries("b", false), m.State().Entries)
}

func TestDispatchCancelEdit(t *testing.T) {
	m, _ := newManager(t, entries("a", false))
	m.Dispatch(ToggleEdit{Index: 0})
	m.Dispatch(UpdateEdit{Value: "zzz"})
	m.Dispatch(CancelEdit{Index: 0})
	assert.Equal(t, entries("a", false), m.State().Entries)
}

func TestDispatchToggleAllFlips(t *testing.T) {
	m, _ := newManager(t, entries("a", false, "b", true))

	m.Dispatch(ToggleAll{})
	assert.True(t, m.State().IsAllCompleted())

	m.Dispatch(ToggleAll{})
	assert.Equal(t, 2, m.State().Total())
}

func TestDispatchSetFilter(t *testing.T) {
	m, r := newManager(t, entries("a", false, "b", true))
	m.Dispatch(SetFilter{Filter: model.Completed})
	assert.Equal(t, model.Completed, m.State().Filter)
	assert.Equal(t, []int{1}, m.State().Visible())
	assert.Empty(t, r.calls)
}

func TestDispatchToggleRemoveClear(t *testing.T) {
	m, r := newManager(t, entries("a", false, "b", false, "c", false))

	m.Dispatch(Toggle{Index: 0})
	m.Dispatch(Remove{Index: 1})
	m.Dispatch(ClearCompleted{})

	assert.Equal(t, entries("c", false), m.State().Entries)
	assert.Len(t, r.calls, 3)
}

func TestListenerGetsCopy(t *testing.T) {
	m, r := newManager(t, entries("a", false))
	m.Dispatch(Toggle{Index: 0})
	require.Len(t, r.calls, 1)

	r.calls[0][0].Description = "mutated"
	assert.Equal(t, "a", m.State().Entries[0].Description)
}

func TestDispatchOutOfRangePanics(t *testing.T) {
	m, r := newManager(t, nil)
	assert.Panics(t, func() { m.Dispatch(Toggle{Index: 0}) })
	assert.Empty(t, r.calls)
}
