package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderAgentDetailScreen() string {
	agent := m.detail

	panelWidth := m.width - 6
	if panelWidth < 60 {
		panelWidth = max(20, m.width-2)
	}
	contentWidth := max(20, panelWidth-4)

	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")).Render(agent.Name)

	meta := []string{
		fmt.Sprintf("Board: %s", m.boardName(agent.BoardID)),
		fmt.Sprintf("Heartbeat: %s", heartbeatSummary(agent.Heartbeat)),
	}
	if !agent.UpdatedAt.IsZero() {
		meta = append(meta, fmt.Sprintf("Updated: %s", m.formatDateTime(agent.UpdatedAt)))
	}
	metaLine := lipgloss.NewStyle().Foreground(lipgloss.Color("246")).Render(strings.Join(meta, " | "))

	sectionTitle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("221"))

	identity := renderTemplateMarkdown(agent.IdentityTemplate, contentWidth)
	soul := renderTemplateMarkdown(agent.SoulTemplate, contentWidth)

	footer := lipgloss.NewStyle().Faint(true).Render("e edit • esc back • q quit")

	content := strings.Join([]string{
		header,
		metaLine,
		"",
		sectionTitle.Render("Identity"),
		identity,
		"",
		sectionTitle.Render("Soul"),
		soul,
		"",
		footer,
	}, "\n")

	panel := lipgloss.NewStyle().
		Width(panelWidth).
		Padding(0, 1).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("250")).
		Render(content)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
}

func renderTemplateMarkdown(md string, width int) string {
	md = strings.TrimSpace(normalizeTemplateText(md))
	if md == "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("(empty)")
	}

	rendered, err := renderMarkdownWithGlamour(md, width)
	if err != nil {
		return md
	}
	rendered = strings.TrimRight(normalizeTemplateText(rendered), "\n")
	if rendered == "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("(empty)")
	}
	return rendered
}

func renderMarkdownWithGlamour(md string, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	style := styles.DarkStyleConfig
	style.H1.Prefix = " "
	style.H2.Prefix = "  "
	style.H3.Prefix = "   "
	style.H1.BackgroundColor = nil
	style.H1.Color = stringPtr("51")
	style.H1.Bold = boolPtr(true)
	style.H2.Bold = boolPtr(true)
	style.H2.Color = stringPtr("45")
	style.H2.Underline = boolPtr(false)
	style.H3.Bold = boolPtr(true)
	style.H3.Color = stringPtr("44")

	renderer, err := glamour.NewTermRenderer(
		glamour.WithWordWrap(width),
		glamour.WithStyles(style),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(md)
}

func boolPtr(v bool) *bool {
	return &v
}

func stringPtr(v string) *string {
	return &v
}

func normalizeTemplateText(text string) string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(normalized, "\r", "\n")
}
