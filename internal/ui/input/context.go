package input

import (
	"adminctl/internal/ui/services/search"
	"adminctl/internal/ui/services/selection"
	"adminctl/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State     *state.AppState
	Selection *selection.Service
	Search    *search.Service
	Actions   []string
}

// CurrentRowID returns the id of the row under the cursor
func (c *ModelContext) CurrentRowID() string {
	if row, ok := c.State.CurrentRow(); ok {
		return row.ID
	}
	return ""
}

func (c *ModelContext) HasRows() bool {
	return len(c.State.Visible) > 0
}

func (c *ModelContext) SelectedCount() int {
	return c.Selection.Count()
}

// SearchValue returns the live text of the search box
func (c *ModelContext) SearchValue() string {
	return c.Search.Value()
}

func (c *ModelContext) TypeFilter() string {
	return c.State.Filter.Type
}

// TypeOptions lists the known types led by the "any" entry
func (c *ModelContext) TypeOptions() []string {
	return append([]string{""}, c.State.Types...)
}

func (c *ModelContext) BulkActions() []string {
	return c.Actions
}
