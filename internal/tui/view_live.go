package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/debaite/podium/internal/debate"
	"github.com/debaite/podium/internal/tui/styles"
	"github.com/debaite/podium/internal/util"
)

func (m Model) viewLive() string {
	header := m.viewLiveHeader()
	sidebar := m.viewSidebar()
	transcript := m.viewTranscript()

	columns := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, transcript)
	return lipgloss.JoinVertical(lipgloss.Left, header, columns)
}

func (m Model) viewLiveHeader() string {
	topic := m.live.Topic
	if topic == "" {
		topic = "debate"
	}

	var status string
	switch m.live.Phase {
	case debate.PhaseInitializing:
		status = styles.Warning.Render("initializing")
	case debate.PhaseStepping:
		status = styles.Secondary.Render(fmt.Sprintf("round %d · turn %d", m.live.Round, m.live.Turn))
	case debate.PhaseFinished:
		status = styles.Primary.Render("finished")
	case debate.PhaseFailed:
		status = styles.Error.Render("halted")
	default:
		status = styles.Muted.Render("idle")
	}

	line := styles.Title.Render(topic) + "  " + status
	if m.live.TotalCost > 0 {
		line += "  " + styles.Muted.Render(fmt.Sprintf("$%.4f", m.live.TotalCost))
	}
	return line
}

func (m Model) viewSidebar() string {
	width := m.cfg.TUI.SidebarWidth
	var b strings.Builder
	b.WriteString(styles.SectionHeader.Render("Participants"))
	b.WriteString("\n")

	if len(m.live.Participants) == 0 {
		b.WriteString(styles.Muted.Render("waiting for roster"))
	}

	for _, p := range m.live.Participants {
		b.WriteString(renderParticipant(p, width-4))
		b.WriteString("\n")
	}

	return styles.Sidebar.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

func renderParticipant(p debate.Participant, width int) string {
	marker := lipgloss.NewStyle().
		Foreground(styles.StatusColor(string(p.Status))).
		Render("●")

	name := p.Name
	if p.IsModerator {
		name += " ⚖"
	}
	line := fmt.Sprintf("%s %s", marker, util.TruncateString(name, width-2))

	detail := fmt.Sprintf("  %s · %d%%", p.Status, p.Confidence)
	if p.Strikes > 0 {
		detail += fmt.Sprintf(" · %d strikes", p.Strikes)
	}
	return line + "\n" + styles.Muted.Render(util.TruncateString(detail, width))
}

func (m Model) viewTranscript() string {
	width := m.contentWidth() - m.cfg.TUI.SidebarWidth
	if width < 20 {
		width = 20
	}

	messages := m.live.Transcript
	if max := m.cfg.TUI.TranscriptLines; len(messages) > max {
		messages = messages[len(messages)-max:]
	}

	var b strings.Builder
	for _, msg := range messages {
		b.WriteString(renderMessage(msg, width-4))
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		b.WriteString(styles.Muted.Render("no interventions yet"))
	}

	return styles.Transcript.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

func renderMessage(msg debate.Message, width int) string {
	var speaker string
	switch msg.Type {
	case debate.MessageSystem:
		speaker = styles.Muted.Render(msg.Speaker)
	case debate.MessageModerator:
		speaker = styles.Warning.Render(msg.Speaker + " [" + msg.Action + "]")
	default:
		speaker = styles.Secondary.Render(msg.Speaker)
	}
	return speaker + " " + styles.Text.Render(util.TruncateString(msg.Text, width))
}
