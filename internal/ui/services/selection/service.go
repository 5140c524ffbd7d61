package selection

// Service handles row checkbox state and the select-all checkbox
type Service struct {
	state *State
}

// NewService creates a new selection service
func NewService() *Service {
	return &Service{
		state: &State{
			Selected: make(map[string]bool),
		},
	}
}

// SetAll sets the select-all checkbox and copies its state to every row
// checkbox. ids are all loaded rows.
func (s *Service) SetAll(checked bool, ids []string) {
	s.state.Selected = make(map[string]bool)
	if checked {
		for _, id := range ids {
			if id != "" {
				s.state.Selected[id] = true
			}
		}
	}
	// An empty table never shows a checked select-all box
	s.state.AllChecked = checked && len(s.state.Selected) > 0
}

// ToggleAll flips the select-all checkbox
func (s *Service) ToggleAll(ids []string) {
	s.SetAll(!s.state.AllChecked, ids)
}

// Toggle flips one row checkbox and reconciles the select-all checkbox
func (s *Service) Toggle(id string, ids []string) {
	if id == "" {
		return
	}
	if s.state.Selected[id] {
		delete(s.state.Selected, id)
	} else {
		s.state.Selected[id] = true
	}
	s.reconcile(ids)
}

// IsSelected checks if a row is selected
func (s *Service) IsSelected(id string) bool {
	return s.state.Selected[id]
}

// AllChecked reports the select-all checkbox state
func (s *Service) AllChecked() bool {
	return s.state.AllChecked
}

// Selected returns the selected ids in the order of ids
func (s *Service) Selected(ids []string) []string {
	var out []string
	for _, id := range ids {
		if s.state.Selected[id] {
			out = append(out, id)
		}
	}
	return out
}

// Count returns the number of selected rows
func (s *Service) Count() int {
	return len(s.state.Selected)
}

// Retain drops selections for rows that no longer exist (after a delete or
// reload) and reconciles the select-all checkbox
func (s *Service) Retain(ids []string) {
	present := make(map[string]bool, len(ids))
	for _, id := range ids {
		present[id] = true
	}
	for id := range s.state.Selected {
		if !present[id] {
			delete(s.state.Selected, id)
		}
	}
	s.reconcile(ids)
}

// Clear deselects everything
func (s *Service) Clear() {
	s.state.Selected = make(map[string]bool)
	s.state.AllChecked = false
}

func (s *Service) reconcile(ids []string) {
	if len(ids) == 0 {
		s.state.AllChecked = false
		return
	}
	for _, id := range ids {
		if !s.state.Selected[id] {
			s.state.AllChecked = false
			return
		}
	}
	s.state.AllChecked = true
}
