package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderBoardPickerScreen() string {
	title := headerStyle().Render("Switch board")

	lines := []string{title, ""}
	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	slugStyle := lipgloss.NewStyle().Faint(true)
	for i, b := range m.boards {
		line := fmt.Sprintf("  %s %s", b.Name, slugStyle.Render(b.Slug))
		if i == m.pickerIndex {
			line = selectedStyle.Render(fmt.Sprintf("› %s", b.Name)) + " " + slugStyle.Render(b.Slug)
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", lipgloss.NewStyle().Faint(true).Render("enter select • esc cancel"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 3).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
