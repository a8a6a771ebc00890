package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cryptocoder0x/openclaw-mission-control/internal/application"
	"github.com/cryptocoder0x/openclaw-mission-control/internal/domain"
)

type screen int

const (
	screenLogin screen = iota
	screenAgents
	screenAgentForm
	screenAgentDetail
	screenBoardPicker
)

type inputMode int

const (
	inputNone inputMode = iota
	inputSearch
	inputAgentForm
)

type boardsLoadedMsg struct {
	boards []domain.Board
	err    error
}

type agentsLoadedMsg struct {
	agents []domain.Agent
	err    error
}

type agentLoadedMsg struct {
	agent domain.Agent
	err   error
}

type agentSavedMsg struct {
	agent  domain.Agent
	create bool
	err    error
}

type authChangedMsg struct {
	gate application.AuthGate
}

type opResultMsg struct {
	status string
	err    error
}

type Model struct {
	agentService   *application.AgentService
	contextService *application.ContextService
	sessionService *application.SessionService

	gate   application.AuthGate
	screen screen

	boards   []domain.Board
	board    domain.Board
	boardSet bool

	agents     []domain.Agent
	selected   int
	nameFilter string

	detail domain.Agent

	form      *agentForm
	isLoading bool

	loginInput textinput.Model
	loginError string

	textInput textinput.Model
	textArea  textarea.Model
	inputMode inputMode

	pickerIndex int

	statusLine string
	err        error

	width  int
	height int

	keys keyMap
	date userDateFormat
}

func NewModel(
	agentService *application.AgentService,
	contextService *application.ContextService,
	sessionService *application.SessionService,
	gate application.AuthGate,
) Model {
	li := textinput.New()
	li.Placeholder = "Paste the shared access token"
	li.EchoMode = textinput.EchoPassword
	li.EchoCharacter = '•'
	li.CharLimit = 512
	li.Prompt = "> "

	ti := textinput.New()
	ti.Placeholder = "Type..."
	ti.CharLimit = 512
	ti.Prompt = "> "

	ta := textarea.New()
	ta.Placeholder = "Markdown..."
	ta.SetHeight(10)
	ta.Prompt = ""

	initial := screenAgents
	if gate == application.GateLogin {
		initial = screenLogin
		li.Focus()
	}

	return Model{
		agentService:   agentService,
		contextService: contextService,
		sessionService: sessionService,
		gate:           gate,
		screen:         initial,
		loginInput:     li,
		textInput:      ti,
		textArea:       ta,
		keys:           newKeyMap(),
		date:           detectUserDateFormat(),
	}
}

func (m Model) Init() tea.Cmd {
	if m.screen == screenLogin {
		return textinput.Blink
	}
	// Boards and agents load independently; whichever lands first
	// renders, the other fills in later.
	return tea.Batch(m.loadBoardsCmd(), m.loadAgentsCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textArea.SetWidth(max(20, msg.Width-8))
		return m, nil
	case authChangedMsg:
		m.gate = msg.gate
		if msg.gate == application.GateLogin {
			m.screen = screenLogin
			m.loginInput.SetValue("")
			m.loginInput.Focus()
			return m, textinput.Blink
		}
		m.screen = screenAgents
		m.loginError = ""
		return m, tea.Batch(m.loadBoardsCmd(), m.loadAgentsCmd())
	case boardsLoadedMsg:
		return m.handleBoardsLoaded(msg)
	case agentsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.statusLine = "Unable to load agents"
			return m, nil
		}
		m.err = nil
		m.agents = msg.agents
		m.ensureSelection()
		return m, nil
	case agentLoadedMsg:
		return m.handleAgentLoaded(msg)
	case agentSavedMsg:
		return m.handleAgentSaved(msg)
	case opResultMsg:
		if msg.err != nil {
			m.err = msg.err
			m.statusLine = msg.err.Error()
			return m, nil
		}
		m.statusLine = msg.status
		return m, nil
	}

	switch m.screen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenAgentForm:
		return m.updateAgentForm(msg)
	case screenAgentDetail:
		return m.updateAgentDetail(msg)
	case screenBoardPicker:
		return m.updateBoardPicker(msg)
	default:
		return m.updateAgentList(msg)
	}
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	switch m.screen {
	case screenLogin:
		return m.renderLoginScreen()
	case screenAgentForm:
		return m.renderAgentFormScreen()
	case screenAgentDetail:
		return m.renderAgentDetailScreen()
	case screenBoardPicker:
		return m.renderBoardPickerScreen()
	default:
		return m.renderAgentListScreen()
	}
}

func (m Model) handleBoardsLoaded(msg boardsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// A missing board list degrades the selector, it does not take
		// the dashboard down.
		m.statusLine = "Unable to load boards"
		return m, nil
	}
	m.boards = msg.boards

	preferred := ""
	if m.boardSet {
		preferred = m.board.ID
	} else if m.form != nil && m.form.mode == agentFormEdit {
		preferred = m.form.boardID
	}
	board, ok := m.contextService.ResolveBoard(context.Background(), m.boards, preferred)
	if ok {
		m.board = board
		m.boardSet = true
	}
	if m.form != nil {
		selected := m.form.boardID
		if selected == "" {
			selected = m.board.ID
		}
		m.form.seedBoards(m.boards, selected)
	}
	return m, nil
}

func (m Model) handleAgentLoaded(msg agentLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.statusLine = "Unable to load agent"
		m.err = msg.err
		if m.form != nil {
			m.form = nil
			m.inputMode = inputNone
			m.screen = screenAgents
		}
		return m, nil
	}
	if m.form != nil && m.form.mode == agentFormEdit && m.form.agentID == msg.agent.ID {
		m.form.seedFromAgent(msg.agent)
		m.form.seedBoards(m.boards, msg.agent.BoardID)
		m.loadFormStep()
		return m, textinput.Blink
	}
	m.detail = msg.agent
	return m, nil
}

func (m Model) handleAgentSaved(msg agentSavedMsg) (tea.Model, tea.Cmd) {
	m.isLoading = false
	if msg.err != nil {
		if m.form != nil {
			if msg.create {
				m.form.submitError = "Unable to create agent"
			} else {
				m.form.submitError = "Unable to update agent"
			}
		}
		m.err = msg.err
		return m, nil
	}

	m.form = nil
	m.inputMode = inputNone
	m.textInput.Blur()
	m.textArea.Blur()
	m.detail = msg.agent
	m.screen = screenAgentDetail
	if msg.create {
		m.statusLine = "agent created"
	} else {
		m.statusLine = "agent updated"
	}
	return m, m.loadAgentsCmd()
}

func (m Model) updateAgentList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.inputMode == inputSearch {
		return m.updateSearchInput(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		m.selected--
		m.ensureSelection()
		return m, nil
	case key.Matches(keyMsg, m.keys.Down):
		m.selected++
		m.ensureSelection()
		return m, nil
	case key.Matches(keyMsg, m.keys.Open):
		if agent, ok := m.currentAgent(); ok {
			m.detail = agent
			m.screen = screenAgentDetail
			return m, m.loadAgentCmd(agent.ID)
		}
		return m, nil
	case key.Matches(keyMsg, m.keys.NewAgent):
		m.startCreateAgentForm()
		return m, tea.Batch(m.loadBoardsCmd(), textinput.Blink)
	case key.Matches(keyMsg, m.keys.EditAgent):
		if agent, ok := m.currentAgent(); ok {
			return m.startEditAgentForm(agent.ID)
		}
		return m, nil
	case key.Matches(keyMsg, m.keys.Refresh):
		return m, tea.Batch(m.loadBoardsCmd(), m.loadAgentsCmd())
	case key.Matches(keyMsg, m.keys.SwitchBoard):
		if len(m.boards) == 0 {
			return m, nil
		}
		m.screen = screenBoardPicker
		m.pickerIndex = m.boardIndex(m.board.ID)
		return m, nil
	case key.Matches(keyMsg, m.keys.Search):
		m.inputMode = inputSearch
		m.textInput.SetValue(m.nameFilter)
		m.textInput.Placeholder = "Search agents by name"
		m.textInput.Focus()
		m.statusLine = "Search by name"
		return m, textinput.Blink
	case key.Matches(keyMsg, m.keys.ClearSearch):
		if strings.TrimSpace(m.nameFilter) == "" {
			return m, nil
		}
		m.nameFilter = ""
		m.statusLine = ""
		return m, m.loadAgentsCmd()
	case key.Matches(keyMsg, m.keys.Logout):
		return m, m.logoutCmd()
	}
	return m, nil
}

func (m Model) updateSearchInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Cancel):
			m.inputMode = inputNone
			m.textInput.Blur()
			m.statusLine = ""
			return m, nil
		case key.Matches(keyMsg, m.keys.Confirm):
			m.nameFilter = strings.TrimSpace(m.textInput.Value())
			m.inputMode = inputNone
			m.textInput.Blur()
			m.statusLine = ""
			return m, m.loadAgentsCmd()
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m Model) updateAgentDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Cancel):
		m.screen = screenAgents
		return m, nil
	case key.Matches(keyMsg, m.keys.EditAgent):
		return m.startEditAgentForm(m.detail.ID)
	}
	return m, nil
}

func (m Model) updateBoardPicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Cancel):
		m.screen = screenAgents
		return m, nil
	case key.Matches(keyMsg, m.keys.Up):
		if m.pickerIndex > 0 {
			m.pickerIndex--
		}
		return m, nil
	case key.Matches(keyMsg, m.keys.Down):
		if m.pickerIndex < len(m.boards)-1 {
			m.pickerIndex++
		}
		return m, nil
	case key.Matches(keyMsg, m.keys.Confirm):
		if m.pickerIndex >= 0 && m.pickerIndex < len(m.boards) {
			m.board = m.boards[m.pickerIndex]
			m.boardSet = true
			m.screen = screenAgents
			return m, tea.Batch(m.rememberBoardCmd(m.board.ID), m.loadAgentsCmd())
		}
		m.screen = screenAgents
		return m, nil
	}
	return m, nil
}

func (m *Model) ensureSelection() {
	if len(m.agents) == 0 {
		m.selected = 0
		return
	}
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected >= len(m.agents) {
		m.selected = len(m.agents) - 1
	}
}

func (m Model) currentAgent() (domain.Agent, bool) {
	if len(m.agents) == 0 || m.selected < 0 || m.selected >= len(m.agents) {
		return domain.Agent{}, false
	}
	return m.agents[m.selected], true
}

func (m Model) boardIndex(boardID string) int {
	for i, b := range m.boards {
		if b.ID == boardID {
			return i
		}
	}
	return 0
}

func (m Model) boardName(boardID string) string {
	for _, b := range m.boards {
		if b.ID == boardID {
			return b.Name
		}
	}
	return boardID
}

func (m Model) loadBoardsCmd() tea.Cmd {
	service := m.contextService
	return func() tea.Msg {
		boards, err := service.ListBoards(context.Background())
		return boardsLoadedMsg{boards: boards, err: err}
	}
}

func (m Model) loadAgentsCmd() tea.Cmd {
	service := m.agentService
	filters := application.ListAgentFilters{NameQuery: m.nameFilter}
	if m.boardSet {
		filters.BoardID = m.board.ID
	}
	return func() tea.Msg {
		agents, err := service.ListAgents(context.Background(), filters)
		return agentsLoadedMsg{agents: agents, err: err}
	}
}

func (m Model) loadAgentCmd(agentID string) tea.Cmd {
	service := m.agentService
	return func() tea.Msg {
		agent, err := service.GetAgent(context.Background(), agentID)
		return agentLoadedMsg{agent: agent, err: err}
	}
}

func (m Model) rememberBoardCmd(boardID string) tea.Cmd {
	service := m.contextService
	return func() tea.Msg {
		if err := service.SetActiveBoard(context.Background(), boardID); err != nil {
			return opResultMsg{err: err}
		}
		return opResultMsg{}
	}
}

func (m Model) logoutCmd() tea.Cmd {
	service := m.sessionService
	return func() tea.Msg {
		if err := service.Logout(context.Background()); err != nil {
			return opResultMsg{err: err}
		}
		return authChangedMsg{gate: application.GateLogin}
	}
}

func headerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
