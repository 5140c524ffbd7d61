package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminctl/internal/ui/input/keymap"
	"adminctl/internal/ui/input/types"
)

type stubContext struct {
	rowID   string
	rows    bool
	search  string
	typ     string
	types   []string
	actions []string
}

func (c *stubContext) CurrentRowID() string  { return c.rowID }
func (c *stubContext) HasRows() bool         { return c.rows }
func (c *stubContext) SelectedCount() int    { return 0 }
func (c *stubContext) SearchValue() string   { return c.search }
func (c *stubContext) TypeFilter() string    { return c.typ }
func (c *stubContext) TypeOptions() []string { return append([]string{""}, c.types...) }
func (c *stubContext) BulkActions() []string { return c.actions }

func newStubContext() *stubContext {
	return &stubContext{
		rowID:   "7",
		rows:    true,
		types:   []string{"internship", "job"},
		actions: []string{"approve", "reject"},
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNormalModeRowActionsCarryCursorID(t *testing.T) {
	h := New(keymap.Default())
	ctx := newStubContext()

	actions, _ := h.HandleKey(runes("d"), ctx)
	assert.Equal(t, []types.Action{types.DeleteRowAction{ID: "7"}}, actions)

	actions, _ = h.HandleKey(runes("t"), ctx)
	assert.Equal(t, []types.Action{types.ToggleStatusAction{ID: "7"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.ShowDetailsAction{ID: "7"}}, actions)
}

func TestNormalModeIgnoresRowActionsWithoutRows(t *testing.T) {
	h := New(keymap.Default())
	ctx := newStubContext()
	ctx.rows = false
	ctx.rowID = ""

	actions, _ := h.HandleKey(runes("d"), ctx)
	assert.Empty(t, actions)
	actions, _ = h.HandleKey(runes("t"), ctx)
	assert.Empty(t, actions)
}

func TestSearchModeEmitsTextUpdates(t *testing.T) {
	h := New(keymap.Default())
	ctx := newStubContext()

	_, cmd := h.HandleKey(runes("/"), ctx)
	require.Equal(t, types.ModeSearch, h.GetMode())
	assert.NotNil(t, cmd, "entering search starts the cursor blink")
	require.NotNil(t, h.TextInput())

	actions, _ := h.HandleKey(runes("g"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "g"}}, actions)
	actions, _ = h.HandleKey(runes("o"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "go"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Contains(t, actions, types.Action(types.SubmitTextAction{Text: "go", Mode: types.ModeSearch}))
	assert.Equal(t, types.ModeNormal, h.GetMode())
	assert.Nil(t, h.TextInput())
}

func TestSearchModeKeepsExistingValue(t *testing.T) {
	h := New(keymap.Default())
	ctx := newStubContext()
	ctx.search = "grant"

	h.HandleKey(runes("/"), ctx)
	require.NotNil(t, h.TextInput())
	assert.Equal(t, "grant", h.TextInput().Value())

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Contains(t, actions, types.Action(types.CancelTextAction{}))
	assert.Equal(t, types.ModeNormal, h.GetMode())
}

func TestTypeFilterEscRestoresOriginal(t *testing.T) {
	h := New(keymap.Default())
	ctx := newStubContext()
	ctx.typ = "internship"

	h.HandleKey(runes("f"), ctx)
	require.NotNil(t, h.Choice())
	assert.Equal(t, 1, h.Choice().Index())

	actions, _ := h.HandleKey(runes("j"), ctx)
	assert.Equal(t, []types.Action{types.SetTypeFilterAction{TypeName: "job"}}, actions)

	// Wraps back to "any type"
	actions, _ = h.HandleKey(runes("j"), ctx)
	assert.Equal(t, []types.Action{types.SetTypeFilterAction{TypeName: ""}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{types.SetTypeFilterAction{TypeName: "internship"}}, actions)
	assert.Equal(t, types.ModeNormal, h.GetMode())
	assert.Nil(t, h.Choice())
}

func TestBulkActionChosenOnEnter(t *testing.T) {
	h := New(keymap.Default())
	ctx := newStubContext()

	h.HandleKey(runes("b"), ctx)
	require.Equal(t, types.ModeBulkAction, h.GetMode())

	actions, _ := h.HandleKey(runes("j"), ctx)
	assert.Empty(t, actions, "moving does not choose")

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.BulkActionChosenAction{Action: "reject"}}, actions)
	assert.Equal(t, types.ModeNormal, h.GetMode())
}

func TestConfirmModeSwallowsOtherKeys(t *testing.T) {
	h := New(keymap.Default())
	ctx := newStubContext()
	h.ChangeMode(types.ModeConfirm, ctx)

	actions, _ := h.HandleKey(runes("d"), ctx)
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeConfirm, h.GetMode())

	actions, _ = h.HandleKey(runes("y"), ctx)
	assert.Equal(t, []types.Action{types.ConfirmAction{}}, actions)
	assert.Equal(t, types.ModeNormal, h.GetMode())

	h.ChangeMode(types.ModeConfirm, ctx)
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{types.CancelConfirmAction{}}, actions)
}

func TestCtrlCQuitsFromAnyMode(t *testing.T) {
	ctrlC := tea.KeyMsg{Type: tea.KeyCtrlC}
	for _, mode := range []types.Mode{types.ModeNormal, types.ModeSearch, types.ModeTypeFilter, types.ModeBulkAction, types.ModeConfirm} {
		h := New(keymap.Default())
		ctx := newStubContext()
		h.ChangeMode(mode, ctx)

		actions, _ := h.HandleKey(ctrlC, ctx)
		require.NotEmpty(t, actions, "mode %d", mode)
		_, ok := actions[0].(types.QuitAction)
		assert.True(t, ok, "mode %d", mode)
	}
}
