package render

import "github.com/charmbracelet/lipgloss"

// Theme bundles the lipgloss styles shared by the CLI output and the dashboard.
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Muted    lipgloss.Style
	Emphasis lipgloss.Style
	Error    lipgloss.Style
	Badge    lipgloss.Style
	Card     lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		Subtitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:    lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Faint(true),
		Emphasis: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		Badge: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("15")),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("15")),
	}
}
