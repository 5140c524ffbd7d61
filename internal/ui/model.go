package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"adminctl/internal/config"
	"adminctl/internal/domain"
	"adminctl/internal/eventbus"
	"adminctl/internal/ui/commands"
	"adminctl/internal/ui/handlers"
	"adminctl/internal/ui/input"
	"adminctl/internal/ui/input/keymap"
	inputtypes "adminctl/internal/ui/input/types"
	"adminctl/internal/ui/logic"
	"adminctl/internal/ui/services/notify"
	"adminctl/internal/ui/services/pending"
	"adminctl/internal/ui/services/search"
	"adminctl/internal/ui/services/selection"
	"adminctl/internal/ui/state"
	"adminctl/internal/ui/viewmodels"
	"adminctl/internal/ui/views"
)

// chromeLines is the number of screen lines not available to table rows
const chromeLines = 12

// confirmation is an open y/n prompt and what to run on yes
type confirmation struct {
	prompt string
	run    func() tea.Cmd
}

// Model represents the UI state
type Model struct {
	bus      eventbus.EventBus
	config   *config.Config
	resource domain.Resource
	logger   *zap.Logger
	state    *state.AppState // centralized state

	// UI-specific state not in AppState
	width       int
	height      int
	keys        keymap.KeyMap
	inPagerMode bool // tracks if we're currently in pager mode
	confirm     *confirmation
	details     string // fallback details popup when the pager is unavailable

	// Services
	selection *selection.Service
	search    *search.Service
	pending   *pending.Service
	notices   *notify.Service

	// Handlers
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	cmdExecutor  *commands.Executor
	results      *handlers.ResultHandler
	inputHandler *input.Handler
	pager        *PagerOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, b commands.Backend, bus eventbus.EventBus, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	keys := keymap.Default()
	resource := cfg.ResourceInfo()

	m := &Model{
		bus:          bus,
		config:       cfg,
		resource:     resource,
		logger:       logger,
		state:        state.NewAppState(cfg.Types),
		keys:         keys,
		selection:    selection.NewService(),
		search:       search.NewService(cfg.SearchDebounce),
		pending:      pending.NewService(),
		notices:      notify.NewService(cfg.NotificationTTL),
		renderer:     views.NewRenderer(),
		cmdExecutor:  commands.NewExecutor(b, cfg.RequestTimeout),
		inputHandler: input.New(keys),
		pager:        NewPagerOps(),
	}

	m.viewModel = viewmodels.NewViewModel(m.state, resource, viewmodels.Services{
		Selection: m.selection,
		Search:    m.search,
		Pending:   m.pending,
		Notify:    m.notices,
	}, keys)

	m.results = handlers.NewResultHandler(handlers.Deps{
		State:     m.state,
		Selection: m.selection,
		Pending:   m.pending,
		Notices:   m.notices,
		Bus:       bus,
		Resource:  resource,
		Logger:    logger,
		Reload:    m.reload,
	})

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init starts the first list fetch
func (m *Model) Init() tea.Cmd {
	return m.reload()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		m.inputHandler.SetTextWidth(msg.Width - 16)
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		// Handle details/help popups first
		if m.details != "" {
			switch msg.String() {
			case "esc", "enter", "q":
				m.details = ""
			}
			return m, nil
		}
		if m.state.ShowHelp {
			switch msg.String() {
			case "esc", "?", "q":
				m.state.ShowHelp = false
			}
			return m, nil
		}

		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	prompt := ""
	if m.confirm != nil {
		prompt = m.confirm.prompt
	}

	m.viewModel.SetInputMode(m.inputHandler.GetMode(), m.inputHandler.TextInput(), m.inputHandler.Choice())
	m.viewModel.SetConfirmPrompt(prompt)
	m.viewModel.SetDetails(m.details)

	return m.renderer.Render(m.viewModel.BuildViewState())
}

// handleNonKeyboardMsg handles async results and timers
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.results.Handle(msg); ok {
		m.updateViewportHeight()
		return m, cmd
	}

	switch msg := msg.(type) {
	case search.DebounceMsg:
		// Only the timer of the latest keystroke applies the query
		if m.search.Due(msg.Seq) && m.search.Apply() {
			m.applyFilter()
		}
		return m, nil

	case notify.ExpiredMsg:
		m.notices.Expire(msg.ID)
		m.updateViewportHeight()
		return m, nil

	case tickMsg:
		if m.state.Loading {
			return m, tick()
		}
		return m, nil

	case detailsPagerMsg:
		if msg.err != nil {
			// Pager failed, log and fall back to popup silently
			m.logger.Warn("details pager failed", zap.String("id", msg.id), zap.Error(msg.err))
			if row, ok := m.state.Row(msg.id); ok {
				m.details = RenderDetails(row, m.resource, time.Now())
			}
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		// Bubble Tea's RestoreTerminal() handles the actual resuming
		m.inPagerMode = false
		return m, nil
	}

	// Handle non-keyboard messages for text input (cursor blink)
	return m, m.inputHandler.Update(msg)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		switch a.Direction {
		case "up":
			m.state.MoveCursor(-1)
		case "down":
			m.state.MoveCursor(1)
		case "pageup":
			m.state.MoveCursor(-m.state.PageSize())
		case "pagedown":
			m.state.MoveCursor(m.state.PageSize())
		case "home":
			m.state.MoveToStart()
		case "end":
			m.state.MoveToEnd()
		}

	case inputtypes.ToggleRowAction:
		if row, ok := m.state.CurrentRow(); ok {
			m.selection.Toggle(row.ID, m.state.AllIDs())
		}

	case inputtypes.ToggleAllAction:
		m.selection.ToggleAll(m.state.AllIDs())

	case inputtypes.UpdateTextAction:
		seq := m.search.Input(a.Text)
		return tea.Tick(m.search.Delay(), func(time.Time) tea.Msg {
			return search.DebounceMsg{Seq: seq}
		})

	case inputtypes.SubmitTextAction:
		m.search.Input(a.Text)
		if m.search.Apply() {
			m.applyFilter()
		}

	case inputtypes.CancelTextAction:
		if m.search.Clear() {
			m.applyFilter()
		}

	case inputtypes.SetTypeFilterAction:
		m.state.SetFilter(logic.FilterState{Query: m.search.Query(), Type: a.TypeName})

	case inputtypes.DeleteRowAction:
		return m.requestDelete(a.ID)

	case inputtypes.ToggleStatusAction:
		return m.toggleStatus(a.ID)

	case inputtypes.ShowDetailsAction:
		return m.showDetails(a.ID)

	case inputtypes.BulkActionChosenAction:
		return m.requestBulk(a.Action)

	case inputtypes.ConfirmAction:
		c := m.confirm
		m.confirm = nil
		if c != nil {
			return c.run()
		}

	case inputtypes.CancelConfirmAction:
		m.confirm = nil

	case inputtypes.ReloadAction:
		return m.reload()

	case inputtypes.CycleSortAction:
		m.state.SetSort(m.state.Sort.Next())

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// requestDelete validates the row and asks for confirmation
func (m *Model) requestDelete(id string) tea.Cmd {
	id = strings.TrimSpace(id)
	if id == "" {
		return m.results.Notify(fmt.Sprintf("Invalid %s ID", m.resource.Noun), domain.LevelWarning)
	}
	if m.pending.IsPending(id) {
		return m.results.Notify("A request for this "+m.resource.Noun+" is already in progress", domain.LevelWarning)
	}

	m.openConfirm(fmt.Sprintf("Are you sure you want to delete this %s?", m.resource.Noun), func() tea.Cmd {
		if !m.pending.Lock(id) {
			return m.results.Notify("A request for this "+m.resource.Noun+" is already in progress", domain.LevelWarning)
		}
		m.logger.Info("deleting row", zap.String("resource", m.resource.Name), zap.String("id", id))
		return m.cmdExecutor.ExecuteDelete(id)
	})
	return nil
}

// toggleStatus flips the row's status optimistically and sends the update
func (m *Model) toggleStatus(id string) tea.Cmd {
	id = strings.TrimSpace(id)
	row, ok := m.state.Row(id)
	if id == "" || !ok {
		return m.results.Notify(fmt.Sprintf("Invalid %s ID", m.resource.Noun), domain.LevelWarning)
	}
	if !m.pending.Lock(id) {
		return m.results.Notify("A request for this "+m.resource.Noun+" is already in progress", domain.LevelWarning)
	}

	next := row.ToggledStatus()
	previous, _ := m.state.SetStatus(id, next)
	m.logger.Info("updating status",
		zap.String("resource", m.resource.Name),
		zap.String("id", id),
		zap.String("from", previous),
		zap.String("to", next))
	return m.cmdExecutor.ExecuteStatus(id, next, previous)
}

// requestBulk validates the selection and asks for confirmation
func (m *Model) requestBulk(action string) tea.Cmd {
	if action == "" {
		return nil
	}
	if m.pending.BulkPending() {
		return m.results.Notify("A bulk action is already in progress", domain.LevelWarning)
	}

	ids := m.selection.Selected(m.state.AllIDs())
	if len(ids) == 0 {
		return m.results.Notify(fmt.Sprintf("Please select %s to perform action", m.resource.Plural), domain.LevelWarning)
	}

	m.openConfirm(fmt.Sprintf("Are you sure you want to %s the selected %s?", action, m.resource.Plural), func() tea.Cmd {
		if !m.pending.LockBulk() {
			return m.results.Notify("A bulk action is already in progress", domain.LevelWarning)
		}
		m.logger.Info("bulk action",
			zap.String("resource", m.resource.Name),
			zap.String("action", action),
			zap.Strings("ids", ids))
		return m.cmdExecutor.ExecuteBulk(action, ids)
	})
	return nil
}

// showDetails opens the row in the pager, or in a popup when there is none
func (m *Model) showDetails(id string) tea.Cmd {
	row, ok := m.state.Row(id)
	if !ok {
		return nil
	}
	content := RenderDetails(row, m.resource, time.Now())

	if !m.pager.Available() {
		m.details = content
		return nil
	}

	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.Show(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return detailsPagerMsg{id: id, err: err}
	}
}

func (m *Model) openConfirm(prompt string, run func() tea.Cmd) {
	m.confirm = &confirmation{prompt: prompt, run: run}
	m.inputHandler.ChangeMode(inputtypes.ModeConfirm, m.inputContext())
}

// reload fetches the list; the spinner ticks while it runs
func (m *Model) reload() tea.Cmd {
	wasLoading := m.state.Loading
	m.state.Loading = true
	if wasLoading {
		return m.cmdExecutor.ExecuteLoad()
	}
	return tea.Batch(m.cmdExecutor.ExecuteLoad(), tick())
}

// applyFilter re-evaluates visibility with the applied search query
func (m *Model) applyFilter() {
	m.state.SetFilter(logic.FilterState{Query: m.search.Query(), Type: m.state.Filter.Type})
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		State:     m.state,
		Selection: m.selection,
		Search:    m.search,
		Actions:   m.config.BulkActions,
	}
}

// updateViewportHeight sizes the table to the terminal
func (m *Model) updateViewportHeight() {
	if m.height == 0 {
		return
	}
	m.state.SetViewportHeight(m.height - chromeLines - len(m.notices.Active()))
}

func tick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}
