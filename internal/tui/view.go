package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/debaite/podium/internal/tui/styles"
)

// View renders the active screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading..."
	}

	var body string
	switch m.view {
	case ViewSetup:
		body = m.viewSetup()
	case ViewLive:
		body = m.viewLive()
	case ViewResults:
		body = m.viewResults()
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.viewFooter())
}

// viewFooter renders the status line, error line and key help.
func (m Model) viewFooter() string {
	var lines []string
	if m.errorMessage != "" {
		lines = append(lines, styles.ErrorBar.Render(m.errorMessage))
	} else if m.statusLine != "" {
		lines = append(lines, styles.StatusBar.Render(m.statusLine))
	}
	lines = append(lines, m.helpLine())
	return strings.Join(lines, "\n")
}

func (m Model) helpLine() string {
	var keys [][2]string
	switch m.view {
	case ViewSetup:
		if m.editing {
			keys = [][2]string{{"enter", "save"}, {"esc", "cancel"}}
		} else {
			keys = [][2]string{
				{"↑/↓", "move"}, {"enter", "edit"}, {"a", "add stance"},
				{"p", "add participant"}, {"d", "delete"}, {"c", "check key"},
				{"s", "start"}, {"r", "results"}, {"q", "quit"},
			}
		}
	case ViewLive:
		keys = [][2]string{{"esc", "setup"}, {"r", "results"}, {"q", "quit"}}
	case ViewResults:
		keys = [][2]string{
			{"↑/↓", "move"}, {"enter", "open"}, {"R", "reload"},
			{"esc", "setup"}, {"q", "quit"},
		}
	}

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, styles.HelpKey.Render(k[0])+" "+styles.HelpDesc.Render(k[1]))
	}
	return strings.Join(parts, styles.HelpDesc.Render(" · "))
}
