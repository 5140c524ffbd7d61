package commands

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(b Backend, timeout time.Duration) *Executor {
	return &Executor{
		ctx: &CommandContext{
			Backend: b,
			Timeout: timeout,
		},
	}
}

// ExecuteLoad creates and executes a load command
func (e *Executor) ExecuteLoad() tea.Cmd {
	return NewLoadCommand(e.ctx).Execute()
}

// ExecuteDelete creates and executes a delete command
func (e *Executor) ExecuteDelete(id string) tea.Cmd {
	return NewDeleteCommand(e.ctx, id).Execute()
}

// ExecuteStatus creates and executes a status command
func (e *Executor) ExecuteStatus(id, status, previous string) tea.Cmd {
	return NewStatusCommand(e.ctx, id, status, previous).Execute()
}

// ExecuteBulk creates and executes a bulk command
func (e *Executor) ExecuteBulk(action string, ids []string) tea.Cmd {
	return NewBulkCommand(e.ctx, action, ids).Execute()
}
