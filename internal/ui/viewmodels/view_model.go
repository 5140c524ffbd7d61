package viewmodels

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"adminctl/internal/domain"
	"adminctl/internal/ui/input/keymap"
	"adminctl/internal/ui/input/modes"
	"adminctl/internal/ui/input/types"
	"adminctl/internal/ui/services/notify"
	"adminctl/internal/ui/services/pending"
	"adminctl/internal/ui/services/search"
	"adminctl/internal/ui/services/selection"
	"adminctl/internal/ui/state"
	"adminctl/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state     *state.AppState
	resource  domain.Resource
	selection *selection.Service
	search    *search.Service
	pending   *pending.Service
	notify    *notify.Service
	keys      keymap.KeyMap

	width            int
	height           int
	help             help.Model
	confirmPrompt    string
	choice           *modes.ChoiceMode
	details          string
	inputTransformer *InputTransformer
	now              func() time.Time
}

// Services groups the UI services the view model reads from
type Services struct {
	Selection *selection.Service
	Search    *search.Service
	Pending   *pending.Service
	Notify    *notify.Service
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, resource domain.Resource, svc Services, keys keymap.KeyMap) *ViewModel {
	return &ViewModel{
		state:            appState,
		resource:         resource,
		selection:        svc.Selection,
		search:           svc.Search,
		pending:          svc.Pending,
		notify:           svc.Notify,
		keys:             keys,
		help:             help.New(),
		inputTransformer: NewInputTransformer(),
		now:              time.Now,
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetInputMode records the input mode, its text input and selector popup
func (vm *ViewModel) SetInputMode(mode types.Mode, ti *textinput.Model, choice *modes.ChoiceMode) {
	vm.inputTransformer.SetMode(mode, ti)
	vm.choice = choice
}

// SetConfirmPrompt sets the prompt of the open confirmation, "" for none
func (vm *ViewModel) SetConfirmPrompt(prompt string) {
	vm.confirmPrompt = prompt
}

// SetDetails sets the in-app details popup content, "" to close it
func (vm *ViewModel) SetDetails(details string) {
	vm.details = details
}

// SetClock replaces the clock used for relative timestamps
func (vm *ViewModel) SetClock(now func() time.Time) {
	vm.now = now
}

// BuildViewState creates the view state from the current application state
func (vm *ViewModel) BuildViewState() views.ViewState {
	selected := make(map[string]bool)
	pendingRows := make(map[string]bool)
	for _, row := range vm.state.Visible {
		if vm.selection.IsSelected(row.ID) {
			selected[row.ID] = true
		}
		if vm.pending.IsPending(row.ID) {
			pendingRows[row.ID] = true
		}
	}

	vs := views.ViewState{
		Width:          vm.width,
		Height:         vm.height,
		Resource:       vm.resource,
		Rows:           vm.state.Visible,
		TotalRows:      len(vm.state.Rows),
		Cursor:         vm.state.Cursor,
		ViewportOffset: vm.state.ViewportOffset,
		ViewportHeight: vm.state.ViewportHeight,
		Selected:       selected,
		Pending:        pendingRows,
		AllChecked:     vm.selection.AllChecked(),
		SelectedCount:  vm.selection.Count(),
		BulkPending:    vm.pending.BulkPending(),
		NoResults:      vm.state.NoResults(),
		Loading:        vm.state.Loading,
		LoadError:      vm.state.LoadError,
		SearchQuery:    vm.search.Query(),
		SearchInput:    vm.inputTransformer.GetInputText(),
		TypeFilter:     vm.state.Filter.Type,
		SortLabel:      vm.state.Sort.String(),
		Notifications:  vm.notify.Active(),
		ConfirmPrompt:  vm.confirmPrompt,
		Details:        vm.details,
		ShowHelp:       vm.state.ShowHelp,
		HelpModel:      vm.help,
		KeyMap:         vm.keys,
		Now:            vm.now(),
	}

	if vm.choice != nil {
		vs.Choice = &views.ChoiceView{
			Title:   vm.choice.Title(),
			Options: vm.choice.Options(),
			Index:   vm.choice.Index(),
		}
	}

	return vs
}
