package views

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminctl/internal/domain"
	"adminctl/internal/ui/input/keymap"
)

var now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func baseState() ViewState {
	return ViewState{
		Width:    120,
		Height:   30,
		Resource: domain.Applications,
		Rows: []domain.Row{
			{ID: "1", Title: "Ocean Fund", Type: "internship", Owner: "ana", Status: "active", CreatedAt: now.Add(-time.Hour)},
			{ID: "2", Title: "City Grant", Type: "job", Owner: "ben", Status: "inactive", CreatedAt: now.Add(-48 * time.Hour)},
		},
		TotalRows:      2,
		ViewportHeight: 10,
		Selected:       map[string]bool{},
		Pending:        map[string]bool{},
		SortLabel:      "created",
		HelpModel:      help.New(),
		KeyMap:         keymap.Default(),
		Now:            now,
	}
}

func TestRenderShowsRowsAndHeader(t *testing.T) {
	out := NewRenderer().Render(baseState())

	assert.Contains(t, out, "adminctl · applications")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Ocean Fund")
	assert.Contains(t, out, "City Grant")
	assert.Contains(t, out, "1 hour ago")
	assert.Contains(t, out, "sort: created")
}

func TestRenderNoResultsPlaceholder(t *testing.T) {
	s := baseState()
	s.Rows = nil
	s.NoResults = true
	s.SearchQuery = "zzz"

	out := NewRenderer().Render(s)

	assert.Equal(t, 1, strings.Count(out, "No results found"))
	assert.Contains(t, out, "[Search: zzz]")
	assert.NotContains(t, out, "Ocean Fund")
}

func TestRenderSelectionAndPending(t *testing.T) {
	s := baseState()
	s.Selected = map[string]bool{"2": true}
	s.SelectedCount = 1
	s.Pending = map[string]bool{"1": true}
	s.BulkPending = true

	out := NewRenderer().Render(s)

	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "1 selected")
	assert.Contains(t, out, "⟳ active")
	assert.Contains(t, out, "⟳ Bulk action")
}

func TestRenderLoadErrorWithoutRows(t *testing.T) {
	s := baseState()
	s.Rows = nil
	s.TotalRows = 0
	s.LoadError = "Error loading applications"

	out := NewRenderer().Render(s)

	assert.Contains(t, out, "Error loading applications")
	assert.Contains(t, out, "Press r to retry.")
}

func TestRenderConfirmOverlayWinsOverChoice(t *testing.T) {
	s := baseState()
	s.ConfirmPrompt = "Are you sure you want to delete this application?"
	s.Choice = &ChoiceView{Title: "Bulk action", Options: []string{"approve"}}

	out := NewRenderer().Render(s)

	assert.Contains(t, out, "Are you sure you want to delete this application?")
	assert.Contains(t, out, "y confirm • n cancel")
	assert.NotContains(t, out, "Bulk action")
}

func TestRenderChoiceMarksCurrentOption(t *testing.T) {
	s := baseState()
	s.Choice = &ChoiceView{Title: "Filter by type", Options: []string{"", "internship", "job"}, Index: 2}

	out := NewRenderer().Render(s)

	assert.Contains(t, out, "Filter by type")
	assert.Contains(t, out, "All types")
	assert.Contains(t, out, "> job")
}

func TestRenderScrollIndicators(t *testing.T) {
	s := baseState()
	s.Rows = nil
	for i := 0; i < 10; i++ {
		s.Rows = append(s.Rows, domain.Row{ID: string(rune('a' + i)), Title: "row", Status: "active"})
	}
	s.ViewportHeight = 3
	s.ViewportOffset = 2
	s.Cursor = 3

	out := NewRenderer().Render(s)

	assert.Contains(t, out, "↑ 2 more above ↑")
	assert.Contains(t, out, "↓ 5 more below ↓")
}

func TestRenderNotificationsAtBottom(t *testing.T) {
	s := baseState()
	s.Notifications = []domain.Notification{{ID: 1, Text: "Deleted", Level: domain.LevelSuccess}}

	out := NewRenderer().Render(s)

	idx := strings.Index(out, "Deleted")
	require.GreaterOrEqual(t, idx, 0)
	assert.Greater(t, idx, strings.Index(out, "City Grant"))
}

func TestTruncateAddsEllipsis(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "abc…", truncate("abcdefgh", 4))
}

func TestHighlightMatchKeepsText(t *testing.T) {
	r := NewRowRenderer(NewStyles())
	out := r.highlightMatch("City Grant", "grant", NewStyles().Highlight, NewStyles().Dim)
	assert.Contains(t, out, "Grant")
	assert.Contains(t, out, "City ")
}

func TestSplitAroundPadsShortLines(t *testing.T) {
	left, right := splitAround("abc", 5, 8)
	assert.Equal(t, "abc  ", left)
	assert.Empty(t, right)

	left, right = splitAround("0123456789", 2, 5)
	assert.Equal(t, "01", left)
	assert.Equal(t, "56789", right)
}
