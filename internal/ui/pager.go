package ui

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/noborus/ov/oviewer"

	"adminctl/internal/domain"
)

// PagerOps runs the ov pager on top of the TUI
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program whose terminal the pager borrows
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// Available reports whether the pager can take over the terminal
func (p *PagerOps) Available() bool {
	return p.program != nil
}

// Show displays content in the ov pager
func (p *PagerOps) Show(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// RenderDetails renders a row for the pager or the fallback popup
func RenderDetails(row domain.Row, res domain.Resource, now time.Time) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	var b strings.Builder

	title := row.Title
	if title == "" {
		title = fmt.Sprintf("%s %s", res.Noun, row.ID)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	created := "-"
	if !row.CreatedAt.IsZero() {
		created = fmt.Sprintf("%s (%s)", row.CreatedAt.Format(time.RFC3339), humanize.RelTime(row.CreatedAt, now, "ago", "from now"))
	}

	fields := []struct{ key, value string }{
		{"ID", row.ID},
		{"Type", row.Type},
		{"Owner", row.Owner},
		{"Status", row.Status},
		{"Created", created},
	}
	for _, f := range fields {
		b.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(fmt.Sprintf("%-8s", f.key)), f.value))
	}

	if raw, err := json.MarshalIndent(row, "  ", "  "); err == nil {
		b.WriteString(sectionStyle.Render("Raw"))
		b.WriteString("\n  ")
		b.Write(raw)
		b.WriteString("\n")
	}

	return b.String()
}
