package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"adminctl/internal/ui/input/types"
)

// InputTransformer turns the active input mode into the search box line
type InputTransformer struct {
	mode      types.Mode
	textInput *textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer() *InputTransformer {
	return &InputTransformer{mode: types.ModeNormal}
}

// SetMode sets the current input mode and the live text input, if any
func (it *InputTransformer) SetMode(mode types.Mode, ti *textinput.Model) {
	it.mode = mode
	it.textInput = ti
}

// GetInputText returns the search box line for the view
func (it *InputTransformer) GetInputText() string {
	if it.mode != types.ModeSearch || it.textInput == nil {
		return ""
	}
	return "Search: " + it.textInput.View()
}
