package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	liptable "github.com/charmbracelet/lipgloss/table"

	"github.com/cryptocoder0x/openclaw-mission-control/internal/domain"
)

func (m Model) renderAgentListScreen() string {
	containerWidth := max(40, m.width-2)

	topRow := m.renderListTopRow(containerWidth)
	filterBar := m.renderListFilterBar(containerWidth)
	footer := m.renderListFooter(containerWidth)

	mainHeight := m.height - lipgloss.Height(topRow) - lipgloss.Height(filterBar) - lipgloss.Height(footer)
	if mainHeight < 8 {
		mainHeight = 8
	}

	table := m.renderAgentTable(containerWidth, mainHeight)

	page := lipgloss.JoinVertical(lipgloss.Left, topRow, filterBar, table, footer)
	return lipgloss.NewStyle().Padding(0, 1).Render(page)
}

func (m Model) renderListTopRow(width int) string {
	bar := lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Foreground(lipgloss.Color("255"))

	icon := lipgloss.NewStyle().
		Foreground(lipgloss.Color("195")).
		Render("◉")

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("191")).Render("Mission Control")
	left := fmt.Sprintf("%s  %s", icon, title)

	clock := lipgloss.NewStyle().Foreground(lipgloss.Color("183")).Render(time.Now().Format("Mon Jan 2 15:04:05 MST"))
	return bar.Render(lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.NewStyle().Width(max(1, width-28)).Render(left),
		lipgloss.NewStyle().Width(28).Align(lipgloss.Right).Render(clock),
	))
}

func (m Model) renderListFilterBar(width int) string {
	board := "all boards"
	if m.boardSet {
		board = m.board.Name
	}
	content := fmt.Sprintf("Board: %s", board)
	if strings.TrimSpace(m.nameFilter) != "" {
		content = fmt.Sprintf("%s | Search: %s", content, m.nameFilter)
	}
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Foreground(lipgloss.Color("253")).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("250")).
		Render(content)
}

func (m Model) renderAgentTable(width, height int) string {
	if len(m.agents) == 0 {
		empty := lipgloss.NewStyle().
			Width(max(1, width-4)).
			Height(max(1, height-4)).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(lipgloss.Color("245")).
			Render("No agents yet.\nPress n to create one.")
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("250")).
			Render(empty)
	}

	innerWidth := max(12, width-4)
	visibleRows := max(2, height-4) // Includes table header row.
	visibleAgentRows := max(1, visibleRows-1)

	offset := 0
	if m.selected >= visibleAgentRows {
		offset = m.selected - visibleAgentRows + 1
	}
	maxOffset := max(0, len(m.agents)-visibleAgentRows)
	if offset > maxOffset {
		offset = maxOffset
	}

	nameColWidth := max(16, innerWidth-46)
	rows := make([][]string, 0, len(m.agents))
	for _, agent := range m.agents {
		updated, _ := m.recencyDisplay(agent.UpdatedAt)
		rows = append(rows, []string{
			truncate(agent.Name, nameColWidth),
			truncate(m.boardName(agent.BoardID), 14),
			truncate(heartbeatSummary(agent.Heartbeat), 16),
			truncate(updated, 12),
		})
	}

	selectedTableRow := m.selected - offset
	t := liptable.New().
		Headers("Agent", "Board", "Heartbeat", "Updated").
		Rows(rows...).
		Border(lipgloss.HiddenBorder()).
		Width(innerWidth).
		Offset(offset).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("252"))
			if row == liptable.HeaderRow {
				style = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("245"))
			} else if row == selectedTableRow {
				style = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62"))
			} else if col == 3 && row >= 0 && row < len(m.agents)-offset {
				_, color := m.recencyDisplay(m.agents[row+offset].UpdatedAt)
				style = style.Foreground(color)
			}
			switch col {
			case 0:
				return style.MaxWidth(nameColWidth)
			case 1:
				return style.Width(14)
			case 2:
				return style.Width(16)
			case 3:
				return style.Width(12)
			default:
				return style
			}
		})

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("250")).
		Render(t.String())
}

func (m Model) renderListFooter(width int) string {
	shortcuts := "N: New agent | E: Edit | Enter: Open | B: Board | /: Search | R: Refresh | Ctrl+L: Logout | Q: Quit"
	helpLine := lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Foreground(lipgloss.Color("248")).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("250")).
		Render(shortcuts)

	lines := []string{}
	if strings.TrimSpace(m.statusLine) != "" {
		statusLine := lipgloss.NewStyle().
			Width(width).
			Padding(0, 1).
			Foreground(lipgloss.Color("222")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("250")).
			Render(m.statusLine)
		lines = append(lines, statusLine)
	}
	lines = append(lines, helpLine)

	if m.inputMode == inputSearch {
		inputLine := lipgloss.NewStyle().
			Width(width).
			Padding(0, 1).
			Foreground(lipgloss.Color("221")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("250")).
			Render(m.textInput.View())
		lines = append(lines, inputLine)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func heartbeatSummary(hb domain.HeartbeatConfig) string {
	every := hb.Every
	if every == "" {
		every = domain.DefaultHeartbeatEvery
	}
	target := hb.Target
	if target == "" {
		target = domain.HeartbeatTargetLast
	}
	return fmt.Sprintf("%s → %s", every, targetLabel(target))
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
