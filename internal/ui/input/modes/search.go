package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"adminctl/internal/ui/input/types"
)

type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", ti),
	}
}

// Enter keeps whatever is already in the search box, like a page input would
func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	actions := m.TextInputMode.Enter(ctx)
	if m.textInput != nil {
		m.textInput.SetValue(ctx.SearchValue())
		m.textInput.CursorEnd()
	}
	return actions
}
