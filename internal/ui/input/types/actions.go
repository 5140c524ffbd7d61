package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Selection actions
type ToggleRowAction struct{}

func (a ToggleRowAction) Type() string { return "toggle_row" }

type ToggleAllAction struct{}

func (a ToggleAllAction) Type() string { return "toggle_all" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Row actions
type DeleteRowAction struct {
	ID string
}

func (a DeleteRowAction) Type() string { return "delete_row" }

type ToggleStatusAction struct {
	ID string
}

func (a ToggleStatusAction) Type() string { return "toggle_status" }

type ShowDetailsAction struct {
	ID string
}

func (a ShowDetailsAction) Type() string { return "show_details" }

// Selector actions
type SetTypeFilterAction struct {
	TypeName string // "" for any type
}

func (a SetTypeFilterAction) Type() string { return "set_type_filter" }

type BulkActionChosenAction struct {
	Action string
}

func (a BulkActionChosenAction) Type() string { return "bulk_action_chosen" }

// Confirmation actions
type ConfirmAction struct{}

func (a ConfirmAction) Type() string { return "confirm" }

type CancelConfirmAction struct{}

func (a CancelConfirmAction) Type() string { return "cancel_confirm" }

// Command actions
type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

type CycleSortAction struct{}

func (a CycleSortAction) Type() string { return "cycle_sort" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
