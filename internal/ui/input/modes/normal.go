package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"adminctl/internal/ui/input/keymap"
	"adminctl/internal/ui/input/types"
)

type NormalMode struct {
	keys keymap.KeyMap
}

func NewNormalMode(keys keymap.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	k := m.keys
	switch {
	case key.Matches(msg, k.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, k.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, k.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case key.Matches(msg, k.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	case key.Matches(msg, k.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case key.Matches(msg, k.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, k.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true
	case key.Matches(msg, k.TypeFilter):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeTypeFilter}}, true

	case key.Matches(msg, k.Select):
		if !ctx.HasRows() {
			return nil, false
		}
		return []types.Action{types.ToggleRowAction{}}, true
	case key.Matches(msg, k.SelectAll):
		return []types.Action{types.ToggleAllAction{}}, true

	case key.Matches(msg, k.Delete):
		// The model validates the id, so an empty one still produces the action
		if !ctx.HasRows() {
			return nil, false
		}
		return []types.Action{types.DeleteRowAction{ID: ctx.CurrentRowID()}}, true
	case key.Matches(msg, k.Toggle):
		if !ctx.HasRows() {
			return nil, false
		}
		return []types.Action{types.ToggleStatusAction{ID: ctx.CurrentRowID()}}, true
	case key.Matches(msg, k.Details):
		if !ctx.HasRows() {
			return nil, false
		}
		return []types.Action{types.ShowDetailsAction{ID: ctx.CurrentRowID()}}, true

	case key.Matches(msg, k.Bulk):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeBulkAction}}, true

	case key.Matches(msg, k.Reload):
		return []types.Action{types.ReloadAction{}}, true
	case key.Matches(msg, k.Sort):
		return []types.Action{types.CycleSortAction{}}, true
	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}
