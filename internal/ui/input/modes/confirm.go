package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"adminctl/internal/ui/input/types"
)

// ConfirmMode is the blocking yes/no prompt. The model keeps what is being
// confirmed; this mode only answers.
type ConfirmMode struct{}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "confirm"
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "y", "Y", "enter":
		return []types.Action{
			types.ConfirmAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "n", "N", "esc", "q":
		return []types.Action{
			types.CancelConfirmAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	// Everything else is swallowed while the prompt is open
	return nil, true
}
