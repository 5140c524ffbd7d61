package views

import (
	"github.com/charmbracelet/lipgloss"

	"adminctl/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Confirm       lipgloss.Style
	Dim           lipgloss.Style
	Header        lipgloss.Style
	Filter        lipgloss.Style
	Search        lipgloss.Style
	PopupBox      lipgloss.Style
	InfoBox       lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	SelectionBg   lipgloss.Style
	StatusActive  lipgloss.Style
	StatusOther   lipgloss.Style
	StatusPending lipgloss.Style
	NoticeInfo    lipgloss.Style
	NoticeSuccess lipgloss.Style
	NoticeWarning lipgloss.Style
	NoticeError   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Confirm: lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Faint(true),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("241")),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Search: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		PopupBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("99")),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			Width(70).
			BorderForeground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		StatusActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusOther:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusPending: lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // cyan
		NoticeInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		NoticeSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		NoticeWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		NoticeError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// NoticeStyle returns the style for a notification level
func (s *Styles) NoticeStyle(level domain.Level) lipgloss.Style {
	switch level {
	case domain.LevelSuccess:
		return s.NoticeSuccess
	case domain.LevelWarning:
		return s.NoticeWarning
	case domain.LevelError:
		return s.NoticeError
	default:
		return s.NoticeInfo
	}
}

// TypeColor returns a stable color for a row type
func TypeColor(typeName string) string {
	switch typeName {
	case "internship":
		return "33" // blue
	case "job":
		return "78" // green
	case "hackathon":
		return "170" // magenta
	default:
		return "214" // yellow for anything the server adds later
	}
}
