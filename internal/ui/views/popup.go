package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup centered on top of the main content.
// The content underneath is greyed out but stays visible around the box.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	if width <= 0 {
		width = lipgloss.Width(mainContent)
	}
	if height <= 0 {
		height = lipgloss.Height(mainContent)
	}

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x := (width - modalW) / 2
	y := (height - modalH) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	base := strings.Split(ansiRE.ReplaceAllString(mainContent, ""), "\n")
	for len(base) < y+modalH {
		base = append(base, "")
	}

	grey := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	popupLines := strings.Split(styledPopup, "\n")
	out := make([]string, len(base))
	for i, line := range base {
		if i < y || i >= y+len(popupLines) {
			out[i] = grey.Render(line)
			continue
		}
		left, right := splitAround(line, x, x+modalW)
		out[i] = grey.Render(left) + popupLines[i-y] + grey.Render(right)
	}
	return strings.Join(out, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// splitAround returns the parts of a plain line left of column from and
// right of column to, padding the left part when the line is short
func splitAround(line string, from, to int) (string, string) {
	var left, right strings.Builder
	col := 0
	for _, r := range line {
		w := lipgloss.Width(string(r))
		switch {
		case col+w <= from:
			left.WriteRune(r)
		case col >= to:
			right.WriteRune(r)
		}
		col += w
	}
	if n := from - lipgloss.Width(left.String()); n > 0 {
		left.WriteString(strings.Repeat(" ", n))
	}
	return left.String(), right.String()
}
