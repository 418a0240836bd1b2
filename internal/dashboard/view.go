package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// headerHeight is the number of rows View draws above the viewport.
const headerHeight = 8

func (m Model) View() string {
	t := m.theme
	var sb strings.Builder

	sb.WriteString(t.Title.Render("GITHUB STATS"))
	sb.WriteString("\n")

	tabs := make([]string, 0, tabCount)
	for i := tab(0); i < tabCount; i++ {
		label := " " + i.title() + " "
		if i == m.active {
			tabs = append(tabs, t.Badge.Render(label))
		} else {
			tabs = append(tabs, t.Label.Render(label))
		}
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	sb.WriteString("\n\n")

	if m.active != tabHelp {
		sb.WriteString(m.input.View())
	}
	sb.WriteString("\n")

	switch {
	case m.loading:
		sb.WriteString(m.spinner.View() + " " + t.Muted.Render("Working..."))
	case m.err != nil:
		sb.WriteString(m.renderer.Error(m.err))
	}
	sb.WriteString("\n\n")

	sb.WriteString(m.view.View())
	sb.WriteString("\n")
	sb.WriteString(t.Muted.Render("tab/shift+tab switch • enter run • esc clear • ↑/↓ scroll • ctrl+c quit"))
	return sb.String()
}
