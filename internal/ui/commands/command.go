package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"adminctl/internal/backend"
	"adminctl/internal/domain"
)

// Backend is the admin API the commands call
type Backend interface {
	List(ctx context.Context) ([]domain.Row, error)
	Delete(ctx context.Context, id string) (backend.Response, error)
	UpdateStatus(ctx context.Context, id, status string) (backend.Response, error)
	BulkAction(ctx context.Context, action string, ids []string) (backend.Response, error)
}

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	Backend Backend
	Timeout time.Duration
}

func (c *CommandContext) withTimeout() (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), c.Timeout)
}

// RowsLoadedMsg carries the result of a list fetch
type RowsLoadedMsg struct {
	Rows []domain.Row
	Err  error
}

// DeleteResultMsg carries the result of a row delete
type DeleteResultMsg struct {
	ID       string
	Response backend.Response
	Err      error
}

// StatusResultMsg carries the result of a status update. Previous is the
// status to restore on failure.
type StatusResultMsg struct {
	ID       string
	Status   string
	Previous string
	Response backend.Response
	Err      error
}

// BulkResultMsg carries the result of a bulk action
type BulkResultMsg struct {
	Action   string
	IDs      []string
	Response backend.Response
	Err      error
}

// LoadCommand fetches the row list
type LoadCommand struct {
	ctx *CommandContext
}

// NewLoadCommand creates a new load command
func NewLoadCommand(ctx *CommandContext) *LoadCommand {
	return &LoadCommand{ctx: ctx}
}

// Execute performs the list fetch
func (c *LoadCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := c.ctx.withTimeout()
		defer cancel()
		rows, err := c.ctx.Backend.List(ctx)
		return RowsLoadedMsg{Rows: rows, Err: err}
	}
}

// DeleteCommand deletes one row
type DeleteCommand struct {
	ctx *CommandContext
	id  string
}

// NewDeleteCommand creates a new delete command
func NewDeleteCommand(ctx *CommandContext, id string) *DeleteCommand {
	return &DeleteCommand{ctx: ctx, id: id}
}

// Execute performs the delete
func (c *DeleteCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := c.ctx.withTimeout()
		defer cancel()
		resp, err := c.ctx.Backend.Delete(ctx, c.id)
		return DeleteResultMsg{ID: c.id, Response: resp, Err: err}
	}
}

// StatusCommand sets a row's status
type StatusCommand struct {
	ctx      *CommandContext
	id       string
	status   string
	previous string
}

// NewStatusCommand creates a new status command
func NewStatusCommand(ctx *CommandContext, id, status, previous string) *StatusCommand {
	return &StatusCommand{ctx: ctx, id: id, status: status, previous: previous}
}

// Execute performs the status update
func (c *StatusCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := c.ctx.withTimeout()
		defer cancel()
		resp, err := c.ctx.Backend.UpdateStatus(ctx, c.id, c.status)
		return StatusResultMsg{ID: c.id, Status: c.status, Previous: c.previous, Response: resp, Err: err}
	}
}

// BulkCommand applies an action to several rows
type BulkCommand struct {
	ctx    *CommandContext
	action string
	ids    []string
}

// NewBulkCommand creates a new bulk command
func NewBulkCommand(ctx *CommandContext, action string, ids []string) *BulkCommand {
	return &BulkCommand{ctx: ctx, action: action, ids: append([]string(nil), ids...)}
}

// Execute performs the bulk action
func (c *BulkCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := c.ctx.withTimeout()
		defer cancel()
		resp, err := c.ctx.Backend.BulkAction(ctx, c.action, c.ids)
		return BulkResultMsg{Action: c.action, IDs: c.ids, Response: resp, Err: err}
	}
}
