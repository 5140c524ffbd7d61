package selection

// State holds selection state
type State struct {
	Selected   map[string]bool // row id -> checked
	AllChecked bool            // the select-all checkbox
}
