package tui

import (
	"strings"

	"github.com/debaite/podium/internal/setup"
	"github.com/debaite/podium/internal/tui/styles"
	"github.com/debaite/podium/internal/util"
)

func (m Model) viewSetup() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Configure a debate"))
	b.WriteString("\n")

	fields := m.setupFields()
	section := ""
	for i, f := range fields {
		if f.section != section {
			section = f.section
			b.WriteString("\n")
			b.WriteString(styles.SectionHeader.Render(section))
			b.WriteString("\n")
		}
		b.WriteString(m.renderSetupField(i, f))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderSetupField(i int, f setupField) string {
	value := f.get()
	if f.secret && value != "" && !(m.editing && i == m.setupCursor) {
		value = maskKey(value)
	}
	if value == "" {
		value = styles.Muted.Render("(empty)")
	}

	label := f.label
	if f.provider != "" {
		if row := m.builder.Provider(f.provider); row != nil && strings.HasSuffix(f.label, "key") {
			label += " " + renderProviderStatus(row.Status)
		}
	}

	if m.editing && i == m.setupCursor {
		return styles.Selected.Render(label) + " " + m.input.View()
	}

	line := label + ": " + value
	if i == m.setupCursor {
		return styles.Selected.Render("› " + line)
	}
	return styles.Unselected.Render("  " + util.TruncateANSI(line, m.contentWidth()))
}

func renderProviderStatus(status setup.ProviderStatus) string {
	switch status {
	case setup.StatusVerified:
		return styles.CredVerified.Render("[verified]")
	case setup.StatusFailed:
		return styles.CredFailed.Render("[failed]")
	default:
		return styles.CredUnchecked.Render("[unchecked]")
	}
}

func maskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}

func (m Model) contentWidth() int {
	if m.width <= 4 {
		return 76
	}
	return m.width - 4
}
