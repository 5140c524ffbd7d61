package state

import (
	"adminctl/internal/domain"
	"adminctl/internal/ui/logic"
)

// AppState contains the list state. It owns no rendering concerns; views
// render from a snapshot of it.
type AppState struct {
	// Row data
	Rows    []domain.Row // loaded rows in display order
	Visible []domain.Row // rows passing the filter, recomputed by Refilter
	Loaded  bool         // at least one list fetch finished

	// Filter and order
	Filter logic.FilterState
	Sort   logic.SortMode
	Types  []string // configured types, extended by loaded rows

	// Navigation over Visible
	Cursor         int
	ViewportOffset int
	ViewportHeight int

	// UI state
	Loading   bool
	LoadError string
	ShowHelp  bool
}

// NewAppState creates a new application state
func NewAppState(types []string) *AppState {
	return &AppState{
		Rows:           make([]domain.Row, 0),
		Visible:        make([]domain.Row, 0),
		Types:          logic.KnownTypes(types, nil),
		ViewportHeight: 20,
	}
}

// SetRows replaces the loaded rows, applying the current sort and filter
func (s *AppState) SetRows(rows []domain.Row) {
	s.Rows = append(make([]domain.Row, 0, len(rows)), rows...)
	logic.SortRows(s.Rows, s.Sort)
	s.Types = logic.KnownTypes(s.Types, s.Rows)
	s.Loaded = true
	s.Refilter()
}

// SetSort changes the sort mode and reorders rows
func (s *AppState) SetSort(mode logic.SortMode) {
	s.Sort = mode
	logic.SortRows(s.Rows, s.Sort)
	s.Refilter()
}

// SetFilter replaces the filter state and recomputes visibility
func (s *AppState) SetFilter(f logic.FilterState) {
	s.Filter = f
	s.Refilter()
}

// Refilter recomputes the visible rows and keeps the cursor on a valid row
func (s *AppState) Refilter() {
	var currentID string
	if row, ok := s.CurrentRow(); ok {
		currentID = row.ID
	}

	s.Visible = logic.VisibleRows(s.Rows, s.Filter)

	// Stay on the same row when it is still visible
	for i, r := range s.Visible {
		if r.ID == currentID {
			s.Cursor = i
			break
		}
	}
	s.clampCursor()
}

// NoResults reports whether the synthetic "no results" row should be shown
func (s *AppState) NoResults() bool {
	return s.Loaded && len(s.Visible) == 0
}

// Row operations

// Row returns the loaded row with id
func (s *AppState) Row(id string) (domain.Row, bool) {
	for _, r := range s.Rows {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Row{}, false
}

// RemoveRow removes exactly the row with id. It reports whether it existed.
func (s *AppState) RemoveRow(id string) bool {
	for i, r := range s.Rows {
		if r.ID == id {
			s.Rows = append(s.Rows[:i:i], s.Rows[i+1:]...)
			s.Refilter()
			return true
		}
	}
	return false
}

// SetStatus updates a row's status and returns the previous value. The
// visible copy is patched in place; visibility only changes on the next
// filter pass.
func (s *AppState) SetStatus(id, status string) (string, bool) {
	for i, r := range s.Rows {
		if r.ID != id {
			continue
		}
		prev := r.Status
		s.Rows[i].Status = status
		for j := range s.Visible {
			if s.Visible[j].ID == id {
				s.Visible[j].Status = status
				break
			}
		}
		return prev, true
	}
	return "", false
}

// AllIDs returns the ids of all loaded rows
func (s *AppState) AllIDs() []string {
	ids := make([]string, 0, len(s.Rows))
	for _, r := range s.Rows {
		ids = append(ids, r.ID)
	}
	return ids
}

// Navigation

// CurrentRow returns the visible row under the cursor
func (s *AppState) CurrentRow() (domain.Row, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Visible) {
		return domain.Row{}, false
	}
	return s.Visible[s.Cursor], true
}

// MoveCursor moves the cursor by delta, clamped to the visible rows
func (s *AppState) MoveCursor(delta int) {
	s.Cursor += delta
	s.clampCursor()
}

// MoveToStart moves the cursor to the first row
func (s *AppState) MoveToStart() {
	s.Cursor = 0
	s.ViewportOffset = 0
}

// MoveToEnd moves the cursor to the last row
func (s *AppState) MoveToEnd() {
	s.Cursor = len(s.Visible) - 1
	s.clampCursor()
}

// PageSize is the cursor jump for page up/down
func (s *AppState) PageSize() int {
	if s.ViewportHeight > 1 {
		return s.ViewportHeight - 1
	}
	return 1
}

// SetViewportHeight updates the number of table lines that fit on screen
func (s *AppState) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	s.ViewportHeight = height
	s.ensureVisible()
}

func (s *AppState) clampCursor() {
	if s.Cursor >= len(s.Visible) {
		s.Cursor = len(s.Visible) - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	s.ensureVisible()
}

func (s *AppState) ensureVisible() {
	if s.Cursor < s.ViewportOffset {
		s.ViewportOffset = s.Cursor
	} else if s.Cursor >= s.ViewportOffset+s.ViewportHeight {
		s.ViewportOffset = s.Cursor - s.ViewportHeight + 1
	}
	maxOffset := len(s.Visible) - s.ViewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.ViewportOffset > maxOffset {
		s.ViewportOffset = maxOffset
	}
	if s.ViewportOffset < 0 {
		s.ViewportOffset = 0
	}
}
