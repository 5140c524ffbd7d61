package handlers

import (
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"adminctl/internal/backend"
	"adminctl/internal/domain"
	"adminctl/internal/eventbus"
	"adminctl/internal/ui/commands"
	"adminctl/internal/ui/services/notify"
	"adminctl/internal/ui/services/pending"
	"adminctl/internal/ui/services/selection"
	"adminctl/internal/ui/state"
)

// Deps are the pieces of UI state a ResultHandler mutates
type Deps struct {
	State     *state.AppState
	Selection *selection.Service
	Pending   *pending.Service
	Notices   *notify.Service
	Bus       eventbus.EventBus
	Resource  domain.Resource
	Logger    *zap.Logger
	Reload    func() tea.Cmd
}

// ResultHandler applies backend results to state and reports them to the user
type ResultHandler struct {
	deps Deps
}

// NewResultHandler creates a new result handler
func NewResultHandler(d Deps) *ResultHandler {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	return &ResultHandler{deps: d}
}

// Notify posts a notification and schedules its expiry
func (h *ResultHandler) Notify(text string, level domain.Level) tea.Cmd {
	n := h.deps.Notices.Post(text, level)
	h.publish(eventbus.NotificationPostedEvent{Notification: n})
	return tea.Tick(h.deps.Notices.TTL(), func(time.Time) tea.Msg {
		return notify.ExpiredMsg{ID: n.ID}
	})
}

// Handle processes a command result. It reports false for other messages.
func (h *ResultHandler) Handle(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case commands.RowsLoadedMsg:
		return h.rowsLoaded(msg), true
	case commands.DeleteResultMsg:
		return h.deleteResult(msg), true
	case commands.StatusResultMsg:
		return h.statusResult(msg), true
	case commands.BulkResultMsg:
		return h.bulkResult(msg), true
	}
	return nil, false
}

func (h *ResultHandler) rowsLoaded(msg commands.RowsLoadedMsg) tea.Cmd {
	s := h.deps.State
	s.Loading = false

	if msg.Err != nil {
		text := backend.UserMessage(msg.Err, "Error loading "+h.deps.Resource.Plural)
		s.LoadError = text
		return h.fail(text, msg.Err)
	}

	s.LoadError = ""
	s.SetRows(msg.Rows)
	h.deps.Selection.Retain(s.AllIDs())
	h.publish(eventbus.RowsLoadedEvent{Resource: h.deps.Resource.Name, Count: len(msg.Rows)})
	return nil
}

func (h *ResultHandler) deleteResult(msg commands.DeleteResultMsg) tea.Cmd {
	h.deps.Pending.Unlock(msg.ID)

	if msg.Err != nil {
		return h.fail(backend.UserMessage(msg.Err, "Error deleting "+h.deps.Resource.Noun), msg.Err)
	}

	h.deps.State.RemoveRow(msg.ID)
	h.deps.Selection.Retain(h.deps.State.AllIDs())
	h.publish(eventbus.RowDeletedEvent{Resource: h.deps.Resource.Name, ID: msg.ID})

	text := msg.Response.Message
	if text == "" {
		text = capitalize(h.deps.Resource.Noun) + " deleted"
	}
	return h.Notify(text, domain.LevelSuccess)
}

func (h *ResultHandler) statusResult(msg commands.StatusResultMsg) tea.Cmd {
	h.deps.Pending.Unlock(msg.ID)

	if msg.Err != nil {
		h.deps.State.SetStatus(msg.ID, msg.Previous)
		h.publish(eventbus.StatusChangedEvent{
			Resource: h.deps.Resource.Name,
			ID:       msg.ID,
			Status:   msg.Previous,
			Reverted: true,
		})
		return h.fail(backend.UserMessage(msg.Err, "Error updating status"), msg.Err)
	}

	h.publish(eventbus.StatusChangedEvent{Resource: h.deps.Resource.Name, ID: msg.ID, Status: msg.Status})

	text := msg.Response.Message
	if text == "" {
		text = "Status updated to " + msg.Status
	}
	return h.Notify(text, domain.LevelSuccess)
}

func (h *ResultHandler) bulkResult(msg commands.BulkResultMsg) tea.Cmd {
	h.deps.Pending.UnlockBulk()

	event := eventbus.BulkActionCompletedEvent{
		Resource: h.deps.Resource.Name,
		Action:   msg.Action,
		IDs:      msg.IDs,
		Success:  msg.Err == nil,
	}
	h.publish(event)

	if msg.Err != nil {
		return h.fail(backend.UserMessage(msg.Err, "Error performing bulk action"), msg.Err)
	}

	text := msg.Response.Message
	if text == "" {
		text = fmt.Sprintf("%s applied to %d %s", capitalize(msg.Action), len(msg.IDs), h.deps.Resource.Plural)
	}
	h.deps.Selection.Clear()

	cmds := []tea.Cmd{h.Notify(text, domain.LevelSuccess)}
	if h.deps.Reload != nil {
		cmds = append(cmds, h.deps.Reload())
	}
	return tea.Batch(cmds...)
}

// fail logs err and shows text; validation problems are warnings
func (h *ResultHandler) fail(text string, err error) tea.Cmd {
	h.deps.Logger.Warn("backend call failed", zap.String("resource", h.deps.Resource.Name), zap.Error(err))
	h.publish(eventbus.ErrorEvent{Message: text, Err: err})

	level := domain.LevelError
	if backend.IsValidation(err) {
		level = domain.LevelWarning
	}
	return h.Notify(text, level)
}

func (h *ResultHandler) publish(e eventbus.DomainEvent) {
	if h.deps.Bus != nil {
		h.deps.Bus.Publish(e)
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
