package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cryptocoder0x/openclaw-mission-control/internal/application"
)

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch {
		case keyMsg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Confirm):
			gate, err := m.sessionService.Login(context.Background(), m.loginInput.Value())
			if err != nil {
				m.loginError = err.Error()
				return m, nil
			}
			m.loginError = ""
			m.loginInput.Blur()
			return m, func() tea.Msg { return authChangedMsg{gate: gate} }
		}
	}
	var cmd tea.Cmd
	m.loginInput, cmd = m.loginInput.Update(msg)
	return m, cmd
}

func (m Model) renderLoginScreen() string {
	title := headerStyle().Render("Mission Control")
	prompt := "Enter the shared access token to connect."
	if m.gate == application.GateDegraded {
		prompt = "Hosted sign-in is unavailable. Enter a token to continue."
	}

	lines := []string{
		title,
		"",
		prompt,
		"",
		m.loginInput.View(),
	}
	if m.loginError != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		lines = append(lines, "", errStyle.Render(m.loginError))
	}
	lines = append(lines, "", lipgloss.NewStyle().Faint(true).Render("enter connect • ctrl+c quit"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 3).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
