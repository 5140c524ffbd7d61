package views

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"adminctl/internal/domain"
)

// Column widths. The title column takes whatever is left.
const (
	checkWidth   = 3
	typeWidth    = 12
	ownerWidth   = 18
	statusWidth  = 10
	createdWidth = 14
	minTitle     = 12
	colGap       = 2
)

// RowRenderer handles rendering of table rows
type RowRenderer struct {
	styles *Styles
}

// NewRowRenderer creates a new row renderer
func NewRowRenderer(styles *Styles) *RowRenderer {
	return &RowRenderer{styles: styles}
}

// RowOptions carries the per-row flags the renderer needs
type RowOptions struct {
	IsCursor    bool
	IsSelected  bool
	IsPending   bool
	SearchQuery string
	Width       int
	Now         time.Time
}

// titleWidth returns the width left for the title column
func titleWidth(total int) int {
	fixed := checkWidth + typeWidth + ownerWidth + statusWidth + createdWidth + 5*colGap
	if w := total - fixed; w > minTitle {
		return w
	}
	return minTitle
}

// RenderHeader renders the column header; the checkbox reflects select-all
func (r *RowRenderer) RenderHeader(allChecked bool, width int) string {
	check := "[ ]"
	if allChecked {
		check = "[x]"
	}
	cells := []string{
		pad(check, checkWidth),
		pad("Title", titleWidth(width)),
		pad("Type", typeWidth),
		pad("Owner", ownerWidth),
		pad("Status", statusWidth),
		pad("Created", createdWidth),
	}
	return r.styles.Header.Render(strings.Join(cells, gap()))
}

// RenderRow renders one table row
func (r *RowRenderer) RenderRow(row domain.Row, opts RowOptions) string {
	bg := lipgloss.NewStyle()
	if opts.IsCursor {
		bg = r.styles.SelectionBg
	}

	check := "[ ]"
	if opts.IsSelected {
		check = "[x]"
	}

	tw := titleWidth(opts.Width)
	title := pad(truncate(row.Title, tw), tw)
	if opts.SearchQuery != "" {
		title = r.highlightMatch(title, opts.SearchQuery, bg.Foreground(r.styles.Highlight.GetForeground()).Bold(true), bg)
	} else {
		title = bg.Render(title)
	}

	typeStyle := bg.Foreground(lipgloss.Color(TypeColor(row.Type)))

	status := row.Status
	statusStyle := r.styles.StatusOther
	if row.IsActive() {
		statusStyle = r.styles.StatusActive
	}
	if opts.IsPending {
		status = "⟳ " + status
		statusStyle = r.styles.StatusPending
	}
	if opts.IsCursor {
		statusStyle = statusStyle.Background(r.styles.SelectionBg.GetBackground())
	}

	cells := []string{
		bg.Render(pad(check, checkWidth)),
		title,
		typeStyle.Render(pad(truncate(row.Type, typeWidth), typeWidth)),
		bg.Render(pad(truncate(row.Owner, ownerWidth), ownerWidth)),
		statusStyle.Render(pad(truncate(status, statusWidth), statusWidth)),
		bg.Render(pad(formatCreated(row.CreatedAt, opts.Now), createdWidth)),
	}
	return strings.Join(cells, bg.Render(gap()))
}

// RenderNoResults renders the single placeholder row shown when nothing matches
func (r *RowRenderer) RenderNoResults(width int) string {
	return r.styles.Dim.Render(pad("", checkWidth) + gap() + "No results found")
}

// highlightMatch highlights the first case-insensitive match of query in text
func (r *RowRenderer) highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	index := strings.Index(lowerText, lowerQuery)
	if index == -1 || len(lowerText) != len(text) {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(query)]
	after := text[index+len(query):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}
	return strings.Join(result, "")
}

func formatCreated(t, now time.Time) string {
	if t.IsZero() {
		return "-"
	}
	if now.IsZero() {
		now = time.Now()
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

func gap() string {
	return strings.Repeat(" ", colGap)
}

// truncate shortens s to at most w cells, marking the cut with an ellipsis
func truncate(s string, w int) string {
	if lipgloss.Width(s) <= w {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > w {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

func pad(s string, w int) string {
	if n := w - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
