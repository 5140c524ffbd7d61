package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"adminctl/internal/domain"
	"adminctl/internal/ui/input/keymap"
)

// ChoiceView is the selector popup content
type ChoiceView struct {
	Title   string
	Options []string
	Index   int
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Resource       domain.Resource
	Rows           []domain.Row // visible rows, in order
	TotalRows      int          // loaded rows before filtering
	Cursor         int
	ViewportOffset int
	ViewportHeight int
	Selected       map[string]bool
	Pending        map[string]bool
	AllChecked     bool
	SelectedCount  int
	BulkPending    bool
	NoResults      bool
	Loading        bool
	LoadError      string
	SearchQuery    string // applied query, used for highlighting
	SearchInput    string // rendered search box, empty unless searching
	TypeFilter     string
	SortLabel      string
	Notifications  []domain.Notification
	ConfirmPrompt  string
	Choice         *ChoiceView
	Details        string
	ShowHelp       bool
	HelpModel      help.Model
	KeyMap         keymap.KeyMap
	Now            time.Time
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	rowRender   *RowRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		rowRender:   NewRowRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	innerWidth := termWidth - 4 // main container padding

	content.WriteString(r.renderTitleLine(state, innerWidth))
	content.WriteString("\n")

	if state.SearchInput != "" {
		content.WriteString(state.SearchInput)
		content.WriteString("\n\n")
	}

	switch {
	case state.Loading && !state.NoResults && len(state.Rows) == 0:
		content.WriteString(r.styles.Dim.Render(fmt.Sprintf("Loading %s...", state.Resource.Plural)))
	case state.LoadError != "" && len(state.Rows) == 0 && state.TotalRows == 0:
		content.WriteString(r.styles.NoticeError.Render(state.LoadError))
		content.WriteString("\n")
		content.WriteString(r.styles.Dim.Render("Press r to retry."))
	default:
		content.WriteString(r.renderTable(state, innerWidth))
	}

	// Notifications and help sit at the bottom
	var bottom []string
	for _, n := range state.Notifications {
		bottom = append(bottom, r.styles.NoticeStyle(n.Level).Render(n.Text))
	}
	if !state.ShowHelp {
		bottom = append(bottom, state.HelpModel.ShortHelpView(state.KeyMap.ShortHelp()))
	}

	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22
	}
	if paddingNeeded := availableLines - currentLines - len(bottom); paddingNeeded > 0 {
		content.WriteString(strings.Repeat("\n", paddingNeeded))
	}
	for _, line := range bottom {
		content.WriteString("\n")
		content.WriteString(line)
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	// Overlay popups on top of main content
	switch {
	case state.ConfirmPrompt != "":
		prompt := r.styles.Confirm.Render(state.ConfirmPrompt) + "\n\n" + r.styles.Dim.Render("y confirm • n cancel")
		return r.popupRender.RenderPopupOverlay(finalContent, prompt, state.Height, state.Width, r.styles.PopupBox)
	case state.Choice != nil:
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderChoice(*state.Choice), state.Height, state.Width, r.styles.PopupBox)
	case state.Details != "":
		return r.popupRender.RenderPopupOverlay(finalContent, state.Details, state.Height, state.Width, r.styles.InfoBox)
	case state.ShowHelp:
		full := state.HelpModel
		full.ShowAll = true
		return r.popupRender.RenderPopupOverlay(finalContent, full.View(state.KeyMap), state.Height, state.Width, r.styles.PopupBox)
	}

	return finalContent
}

// renderTitleLine renders the title with right-aligned indicators
func (r *Renderer) renderTitleLine(state ViewState, width int) string {
	logo := r.styles.Title.Render("adminctl · " + state.Resource.Plural)

	var indicators []string
	if state.Loading {
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(state.Now.UnixMilli()/80) % len(spinner)
		indicators = append(indicators, r.styles.Dim.Render(spinner[frame]+" Loading"))
	}
	if state.BulkPending {
		indicators = append(indicators, r.styles.StatusPending.Render("⟳ Bulk action"))
	}
	if state.SelectedCount > 0 {
		indicators = append(indicators, r.styles.Dim.Render(fmt.Sprintf("%d selected", state.SelectedCount)))
	}
	if state.SortLabel != "" {
		indicators = append(indicators, r.styles.Dim.Render("sort: "+state.SortLabel))
	}
	if state.TypeFilter != "" {
		indicators = append(indicators, r.styles.Filter.Render(fmt.Sprintf("[Type: %s]", state.TypeFilter)))
	}
	if state.SearchQuery != "" {
		indicators = append(indicators, r.styles.Filter.Render(fmt.Sprintf("[Search: %s]", state.SearchQuery)))
	}

	if len(indicators) == 0 {
		return logo
	}

	right := strings.Join(indicators, "  ")
	if padding := width - lipgloss.Width(logo) - lipgloss.Width(right); padding > 0 {
		return logo + strings.Repeat(" ", padding) + right
	}
	return logo + "  " + right
}

// renderTable renders the header, the rows in the viewport and scroll indicators
func (r *Renderer) renderTable(state ViewState, width int) string {
	lines := []string{r.rowRender.RenderHeader(state.AllChecked, width)}

	if state.NoResults {
		lines = append(lines, r.rowRender.RenderNoResults(width))
		return strings.Join(lines, "\n")
	}

	height := state.ViewportHeight
	if height <= 0 {
		height = len(state.Rows)
	}

	start := state.ViewportOffset
	if start < 0 || start > len(state.Rows) {
		start = 0
	}
	end := start + height
	if end > len(state.Rows) {
		end = len(state.Rows)
	}

	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", start)))
	}
	for i := start; i < end; i++ {
		row := state.Rows[i]
		lines = append(lines, r.rowRender.RenderRow(row, RowOptions{
			IsCursor:    i == state.Cursor,
			IsSelected:  state.Selected[row.ID],
			IsPending:   state.Pending[row.ID],
			SearchQuery: state.SearchQuery,
			Width:       width,
			Now:         state.Now,
		}))
	}
	if below := len(state.Rows) - end; below > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	}

	return strings.Join(lines, "\n")
}

// renderChoice renders the selector popup body
func (r *Renderer) renderChoice(choice ChoiceView) string {
	var b strings.Builder
	b.WriteString(r.styles.Confirm.Render(choice.Title))
	b.WriteString("\n\n")
	for i, option := range choice.Options {
		label := option
		if label == "" {
			label = "All types"
		}
		if i == choice.Index {
			b.WriteString(r.styles.Highlight.Render("> " + label))
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render("↑/↓ or j/k to move • Enter to accept • Esc to cancel"))
	return b.String()
}
