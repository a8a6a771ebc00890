package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cryptocoder0x/openclaw-mission-control/internal/application"
	"github.com/cryptocoder0x/openclaw-mission-control/internal/domain"
)

type agentFormMode int

const (
	agentFormCreate agentFormMode = iota
	agentFormEdit
)

type agentFormStep int

const (
	stepName agentFormStep = iota
	stepBoard
	stepEvery
	stepTarget
	stepIdentity
	stepSoul
	stepCount
)

// heartbeatTargets is the cycle order of the target selector. The wire
// value "last" is shown to the user as "Last channel".
var heartbeatTargets = []string{domain.HeartbeatTargetLast, "none"}

func targetLabel(target string) string {
	switch target {
	case domain.HeartbeatTargetLast:
		return "Last channel"
	case "none":
		return "None"
	default:
		return target
	}
}

type agentForm struct {
	mode    agentFormMode
	step    agentFormStep
	agentID string

	name     string
	boardID  string
	every    string
	target   string
	identity string
	soul     string

	boards      []domain.Board
	boardChoice int
	targets     []string
	targetIndex int
	awaitAgent  bool

	fieldError  string
	submitError string
}

func newCreateAgentForm() *agentForm {
	return &agentForm{
		mode:    agentFormCreate,
		target:  domain.HeartbeatTargetLast,
		targets: heartbeatTargets,
	}
}

func newEditAgentForm(agentID string) *agentForm {
	return &agentForm{
		mode:       agentFormEdit,
		agentID:    agentID,
		targets:    heartbeatTargets,
		awaitAgent: true,
	}
}

func (f *agentForm) seedFromAgent(agent domain.Agent) {
	f.name = agent.Name
	f.boardID = agent.BoardID
	f.every = agent.Heartbeat.Every
	f.target = agent.Heartbeat.Target
	f.identity = agent.IdentityTemplate
	f.soul = agent.SoulTemplate
	f.awaitAgent = false

	// A target naming a specific channel becomes an extra selector
	// option so editing never loses it.
	f.targets = heartbeatTargets
	f.targetIndex = -1
	for i, t := range f.targets {
		if t == f.target {
			f.targetIndex = i
			break
		}
	}
	if f.targetIndex < 0 {
		if f.target == "" {
			f.targetIndex = 0
		} else {
			f.targets = append(append([]string{}, heartbeatTargets...), f.target)
			f.targetIndex = len(f.targets) - 1
		}
	}
}

func (f *agentForm) seedBoards(boards []domain.Board, selectedID string) {
	f.boards = boards
	f.boardChoice = 0
	for i, b := range boards {
		if b.ID == selectedID {
			f.boardChoice = i
			break
		}
	}
	if len(boards) > 0 {
		f.boardID = boards[f.boardChoice].ID
	}
}

func (f *agentForm) selectedTarget() string {
	if f.targetIndex >= 0 && f.targetIndex < len(f.targets) {
		return f.targets[f.targetIndex]
	}
	return domain.HeartbeatTargetLast
}

func (m *Model) startCreateAgentForm() {
	m.form = newCreateAgentForm()
	m.form.seedBoards(m.boards, m.board.ID)
	m.screen = screenAgentForm
	m.inputMode = inputAgentForm
	m.loadFormStep()
}

func (m Model) startEditAgentForm(agentID string) (tea.Model, tea.Cmd) {
	m.form = newEditAgentForm(agentID)
	m.screen = screenAgentForm
	m.inputMode = inputAgentForm
	m.isLoading = false
	// Boards and the agent load in parallel. The board selector stays
	// unresolved until both have landed.
	return m, tea.Batch(m.loadBoardsCmd(), m.loadAgentCmd(agentID))
}

// loadFormStep syncs the shared inputs with the current step's value.
func (m *Model) loadFormStep() {
	f := m.form
	if f == nil {
		return
	}
	m.textInput.Blur()
	m.textArea.Blur()

	switch f.step {
	case stepName:
		m.textInput.Placeholder = "Agent name"
		m.textInput.SetValue(f.name)
		m.textInput.CursorEnd()
		m.textInput.Focus()
	case stepEvery:
		m.textInput.Placeholder = domain.DefaultHeartbeatEvery
		m.textInput.SetValue(f.every)
		m.textInput.CursorEnd()
		m.textInput.Focus()
	case stepIdentity:
		m.textArea.Placeholder = "Identity template (markdown, blank for default)"
		m.textArea.SetValue(f.identity)
		m.textArea.Focus()
	case stepSoul:
		m.textArea.Placeholder = "Soul template (markdown, blank for default)"
		m.textArea.SetValue(f.soul)
		m.textArea.Focus()
	}
}

// saveFormStep writes the shared input back into the form.
func (m *Model) saveFormStep() {
	f := m.form
	switch f.step {
	case stepName:
		f.name = m.textInput.Value()
	case stepBoard:
		if f.boardChoice >= 0 && f.boardChoice < len(f.boards) {
			f.boardID = f.boards[f.boardChoice].ID
		}
	case stepEvery:
		f.every = m.textInput.Value()
	case stepTarget:
		f.target = f.selectedTarget()
	case stepIdentity:
		f.identity = m.textArea.Value()
	case stepSoul:
		f.soul = m.textArea.Value()
	}
}

func (m Model) updateAgentForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	f := m.form
	if f == nil {
		m.screen = screenAgents
		return m, nil
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch {
		case key.Matches(keyMsg, m.keys.Cancel):
			m.form = nil
			m.inputMode = inputNone
			m.isLoading = false
			m.textInput.Blur()
			m.textArea.Blur()
			m.screen = screenAgents
			return m, nil
		case keyMsg.String() == "ctrl+c":
			return m, tea.Quit
		}
	}

	if f.awaitAgent || m.isLoading {
		// Edits arriving before the agent loads, or during a submit,
		// are dropped.
		return m, nil
	}

	if isKey {
		switch f.step {
		case stepBoard:
			switch {
			case key.Matches(keyMsg, m.keys.Left):
				if f.boardChoice > 0 {
					f.boardChoice--
				}
				return m, nil
			case key.Matches(keyMsg, m.keys.Right):
				if f.boardChoice < len(f.boards)-1 {
					f.boardChoice++
				}
				return m, nil
			case key.Matches(keyMsg, m.keys.Confirm):
				return m.advanceFormStep()
			}
			return m, nil
		case stepTarget:
			switch {
			case key.Matches(keyMsg, m.keys.Left):
				if f.targetIndex > 0 {
					f.targetIndex--
				}
				return m, nil
			case key.Matches(keyMsg, m.keys.Right):
				if f.targetIndex < len(f.targets)-1 {
					f.targetIndex++
				}
				return m, nil
			case key.Matches(keyMsg, m.keys.Confirm):
				return m.advanceFormStep()
			}
			return m, nil
		case stepIdentity, stepSoul:
			// Textareas take enter as a newline, ctrl+s advances.
			if keyMsg.String() == "ctrl+s" {
				return m.advanceFormStep()
			}
		default:
			if key.Matches(keyMsg, m.keys.Confirm) {
				return m.advanceFormStep()
			}
		}
	}

	var cmd tea.Cmd
	switch f.step {
	case stepIdentity, stepSoul:
		m.textArea, cmd = m.textArea.Update(msg)
	default:
		m.textInput, cmd = m.textInput.Update(msg)
	}
	return m, cmd
}

func (m Model) advanceFormStep() (tea.Model, tea.Cmd) {
	f := m.form
	m.saveFormStep()

	switch f.step {
	case stepName:
		if strings.TrimSpace(f.name) == "" {
			f.fieldError = "name is required"
			return m, nil
		}
	case stepBoard:
		if f.boardID == "" {
			f.fieldError = "board is required"
			return m, nil
		}
	}
	f.fieldError = ""

	if f.step < stepCount-1 {
		f.step++
		m.loadFormStep()
		return m, nil
	}
	return m.submitAgentForm()
}

func (m Model) submitAgentForm() (tea.Model, tea.Cmd) {
	f := m.form
	f.submitError = ""
	m.isLoading = true
	m.textInput.Blur()
	m.textArea.Blur()

	if f.mode == agentFormCreate {
		input := application.CreateAgentInput{
			Name:             f.name,
			BoardID:          f.boardID,
			HeartbeatEvery:   f.every,
			HeartbeatTarget:  f.target,
			IdentityTemplate: f.identity,
			SoulTemplate:     f.soul,
		}
		service := m.agentService
		return m, func() tea.Msg {
			agent, err := service.CreateAgent(context.Background(), input)
			return agentSavedMsg{agent: agent, create: true, err: err}
		}
	}

	input := application.UpdateAgentInput{
		Name:             &f.name,
		BoardID:          &f.boardID,
		HeartbeatEvery:   &f.every,
		HeartbeatTarget:  &f.target,
		IdentityTemplate: &f.identity,
		SoulTemplate:     &f.soul,
	}
	agentID := f.agentID
	service := m.agentService
	return m, func() tea.Msg {
		agent, err := service.UpdateAgent(context.Background(), agentID, input)
		return agentSavedMsg{agent: agent, err: err}
	}
}

func (m Model) renderAgentFormScreen() string {
	f := m.form
	if f == nil {
		return ""
	}

	title := "New agent"
	if f.mode == agentFormEdit {
		title = "Edit agent"
	}

	if f.awaitAgent {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			headerStyle().Render(title)+"\n\nLoading agent...")
	}

	labelStyle := lipgloss.NewStyle().Bold(true)
	faint := lipgloss.NewStyle().Faint(true)

	var body string
	switch f.step {
	case stepName:
		body = labelStyle.Render("Name") + "\n" + m.textInput.View()
	case stepBoard:
		body = labelStyle.Render("Board") + "\n" + m.renderBoardChoice()
	case stepEvery:
		body = labelStyle.Render("Heartbeat every") + "\n" + m.textInput.View() + "\n" +
			faint.Render(fmt.Sprintf("blank uses %s", domain.DefaultHeartbeatEvery))
	case stepTarget:
		body = labelStyle.Render("Heartbeat target") + "\n" + m.renderTargetChoice()
	case stepIdentity:
		body = labelStyle.Render("Identity template") + "\n" + m.textArea.View() + "\n" +
			faint.Render("ctrl+s continue")
	case stepSoul:
		body = labelStyle.Render("Soul template") + "\n" + m.textArea.View() + "\n" +
			faint.Render("ctrl+s save")
	}

	lines := []string{
		headerStyle().Render(title),
		faint.Render(fmt.Sprintf("step %d of %d", int(f.step)+1, int(stepCount))),
		"",
		body,
	}
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	if f.fieldError != "" {
		lines = append(lines, "", errStyle.Render(f.fieldError))
	}
	if f.submitError != "" {
		lines = append(lines, "", errStyle.Render(f.submitError))
	}
	if m.isLoading {
		lines = append(lines, "", faint.Render("Saving..."))
	}
	lines = append(lines, "", faint.Render("enter next • esc cancel"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 3).
		Width(min(m.width-4, 76)).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderBoardChoice() string {
	f := m.form
	if len(f.boards) == 0 {
		return lipgloss.NewStyle().Faint(true).Render("No boards available yet")
	}
	parts := make([]string, 0, len(f.boards))
	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	for i, b := range f.boards {
		if i == f.boardChoice {
			parts = append(parts, selectedStyle.Render("["+b.Name+"]"))
		} else {
			parts = append(parts, b.Name)
		}
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderTargetChoice() string {
	f := m.form
	parts := make([]string, 0, len(f.targets))
	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	for i, t := range f.targets {
		label := targetLabel(t)
		if i == f.targetIndex {
			parts = append(parts, selectedStyle.Render("["+label+"]"))
		} else {
			parts = append(parts, label)
		}
	}
	return strings.Join(parts, "  ")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
