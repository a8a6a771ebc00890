package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	recencyColorFresh   = lipgloss.Color("120")
	recencyColorRecent  = lipgloss.Color("252")
	recencyColorStale   = lipgloss.Color("220")
	recencyColorDormant = lipgloss.Color("203")
)

// recencyDisplay renders how long ago an agent was last updated and a
// color that flags agents nobody has touched in a while.
func (m Model) recencyDisplay(updatedAt time.Time) (string, lipgloss.Color) {
	if updatedAt.IsZero() {
		return "-", recencyColorRecent
	}
	age := time.Since(updatedAt)

	switch {
	case age < time.Minute:
		return "just now", recencyColorFresh
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes())), recencyColorFresh
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(age.Hours())), recencyColorRecent
	case age < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(age.Hours()/24)), recencyColorStale
	default:
		return m.formatDate(updatedAt), recencyColorDormant
	}
}
