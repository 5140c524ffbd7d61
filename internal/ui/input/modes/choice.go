package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"adminctl/internal/ui/input/types"
)

// ChoiceMode is a popup list of options navigated with up/down.
// Live choices apply as the cursor moves and esc restores the original;
// otherwise nothing happens until enter.
type ChoiceMode struct {
	name          string
	title         string
	live          bool
	options       func(ctx types.Context) []string
	current       func(ctx types.Context) string
	choose        func(option string) types.Action
	items         []string
	index         int
	originalIndex int
}

// NewTypeFilterMode builds the type filter selector. The first option is
// the empty "any type" entry.
func NewTypeFilterMode() *ChoiceMode {
	return &ChoiceMode{
		name:    "type filter",
		title:   "Filter by type",
		live:    true,
		options: func(ctx types.Context) []string { return ctx.TypeOptions() },
		current: func(ctx types.Context) string { return ctx.TypeFilter() },
		choose: func(option string) types.Action {
			return types.SetTypeFilterAction{TypeName: option}
		},
	}
}

// NewBulkActionMode builds the bulk action selector
func NewBulkActionMode() *ChoiceMode {
	return &ChoiceMode{
		name:    "bulk action",
		title:   "Bulk action",
		options: func(ctx types.Context) []string { return ctx.BulkActions() },
		current: func(ctx types.Context) string { return "" },
		choose: func(option string) types.Action {
			return types.BulkActionChosenAction{Action: option}
		},
	}
}

func (m *ChoiceMode) Name() string {
	return m.name
}

// Title is the popup heading
func (m *ChoiceMode) Title() string {
	return m.title
}

// Options returns the items captured on Enter
func (m *ChoiceMode) Options() []string {
	return m.items
}

// Index returns the highlighted option
func (m *ChoiceMode) Index() int {
	return m.index
}

func (m *ChoiceMode) Enter(ctx types.Context) []types.Action {
	m.items = append([]string(nil), m.options(ctx)...)
	m.index = 0
	current := m.current(ctx)
	for i, item := range m.items {
		if item == current {
			m.index = i
			break
		}
	}
	m.originalIndex = m.index
	return nil
}

func (m *ChoiceMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ChoiceMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "q":
		var actions []types.Action
		if m.live && m.originalIndex != m.index && m.originalIndex < len(m.items) {
			actions = append(actions, m.choose(m.items[m.originalIndex]))
		}
		return append(actions, types.ChangeModeAction{Mode: types.ModeNormal}), true

	case "enter":
		var actions []types.Action
		if !m.live && m.index < len(m.items) {
			actions = append(actions, m.choose(m.items[m.index]))
		}
		return append(actions, types.ChangeModeAction{Mode: types.ModeNormal}), true

	case "up", "k":
		return m.move(-1), true

	case "down", "j":
		return m.move(1), true
	}

	return nil, true
}

func (m *ChoiceMode) move(delta int) []types.Action {
	if len(m.items) == 0 {
		return nil
	}
	m.index = (m.index + delta + len(m.items)) % len(m.items)
	if m.live {
		return []types.Action{m.choose(m.items[m.index])}
	}
	return nil
}
