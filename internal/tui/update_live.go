package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleLiveKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.switchView(ViewSetup)
		return m, nil
	case "r":
		m.switchView(ViewResults)
		return m, loadSummariesCmd(context.Background(), m.browser)
	}
	return m, nil
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.resultsCursor > 0 {
			m.resultsCursor--
		}
	case "down", "j":
		if m.resultsCursor < len(m.browser.Summaries)-1 {
			m.resultsCursor++
		}
	case "enter":
		if m.resultsCursor < len(m.browser.Summaries) {
			id := m.browser.Summaries[m.resultsCursor].ID
			tag := m.browser.Select(id)
			m.loadingDetail = true
			return m, loadDetailCmd(context.Background(), m.browser, tag, id)
		}
	case "R":
		return m, loadSummariesCmd(context.Background(), m.browser)
	case "esc", "backspace":
		m.switchView(ViewSetup)
	}
	return m, nil
}
