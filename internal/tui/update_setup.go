package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/debaite/podium/internal/setup"
)

// fieldKind distinguishes how a setup field reacts to enter.
type fieldKind int

const (
	fieldText fieldKind = iota
	fieldToggle
)

// setupField is one navigable row of the setup screen. Text fields open
// the shared textinput on enter; toggle fields flip in place.
type setupField struct {
	section string
	label   string
	kind    fieldKind

	get    func() string
	set    func(string)
	toggle func()

	// provider is set on credential rows so "c" knows what to check.
	provider string
	// stanceIdx and participantIdx are set on deletable rows.
	stanceIdx      int
	participantIdx int
	secret         bool
}

// textField builds a row with sentinel indexes so "d" ignores it.
func textField(section, label string, get func() string, set func(string)) setupField {
	return setupField{
		section:        section,
		label:          label,
		kind:           fieldText,
		get:            get,
		set:            set,
		stanceIdx:      -1,
		participantIdx: -1,
	}
}

func toggleField(section, label string, get func() string, toggle func()) setupField {
	return setupField{
		section:        section,
		label:          label,
		kind:           fieldToggle,
		get:            get,
		toggle:         toggle,
		stanceIdx:      -1,
		participantIdx: -1,
	}
}

// setupFields lays out the setup screen top to bottom. Regenerated on
// every render and key press, so indexes always match what is shown.
func (m *Model) setupFields() []setupField {
	b := m.builder
	fields := []setupField{
		textField("Debate", "Topic",
			func() string { return b.Topic },
			func(v string) { b.Topic = v }),
		textField("Debate", "Description",
			func() string { return b.Description },
			func(v string) { b.Description = v }),
	}

	for i := range b.Stances {
		f := textField("Stances", "Stance "+strconv.Itoa(i+1),
			func() string { return b.Stances[i] },
			func(v string) { b.SetStance(i, v) })
		f.stanceIdx = i
		fields = append(fields, f)
	}

	for pi := range b.Providers {
		row := &b.Providers[pi]
		key := textField("Providers", row.Name+" key",
			func() string { return row.Key },
			func(v string) { b.SetProviderKey(row.Name, v) })
		key.provider = row.Name
		key.secret = true
		model := textField("Providers", row.Name+" model",
			func() string { return row.Model },
			func(v string) { b.SetProviderModel(row.Name, v) })
		model.provider = row.Name
		fields = append(fields, key, model)
	}

	fields = append(fields,
		textField("Rules", "Max letters",
			func() string { return strconv.Itoa(b.MaxLetters) },
			func(v string) {
				if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
					b.MaxLetters = n
				}
			}),
		toggleField("Rules", "Insults allowed",
			func() string { return onOff(b.InsultsAllowed) },
			func() { b.InsultsAllowed = !b.InsultsAllowed }),
		toggleField("Rules", "Lies allowed",
			func() string { return onOff(b.LiesAllowed) },
			func() { b.LiesAllowed = !b.LiesAllowed }),
		toggleField("Rules", "Moderator",
			func() string { return moderatorLabel(b.Moderator) },
			func() { b.Moderator = nextModeratorMode(b.Moderator) }),
	)

	for i := range b.Participants {
		p := &b.Participants[i]
		idx := i
		num := strconv.Itoa(i + 1)
		for _, attr := range []struct {
			label string
			ptr   *string
		}{
			{"Participant " + num + " name", &p.Name},
			{"Participant " + num + " role", &p.Role},
			{"Participant " + num + " brain", &p.Brain},
			{"Participant " + num + " attitude", &p.Attitude},
			{"Participant " + num + " position", &p.Position},
		} {
			ptr := attr.ptr
			f := textField("Participants", attr.label,
				func() string { return *ptr },
				func(v string) { *ptr = v })
			f.participantIdx = idx
			fields = append(fields, f)
		}
	}

	return fields
}

func (m Model) handleSetupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fields := m.setupFields()

	switch msg.String() {
	case "up", "k":
		if m.setupCursor > 0 {
			m.setupCursor--
		}
	case "down", "j":
		if m.setupCursor < len(fields)-1 {
			m.setupCursor++
		}
	case "enter":
		if m.setupCursor < len(fields) {
			f := fields[m.setupCursor]
			if f.kind == fieldToggle {
				f.toggle()
				return m, nil
			}
			m.editing = true
			m.input.SetValue(f.get())
			m.input.CursorEnd()
			m.input.Focus()
			return m, textinput.Blink
		}
	case "a":
		m.builder.AddStance()
	case "p":
		m.builder.AddParticipant()
	case "d":
		if m.setupCursor < len(fields) {
			f := fields[m.setupCursor]
			switch {
			case f.stanceIdx >= 0:
				m.builder.RemoveStance(f.stanceIdx)
			case f.participantIdx >= 0:
				m.builder.RemoveParticipant(f.participantIdx)
			}
			if fields = m.setupFields(); m.setupCursor >= len(fields) {
				m.setupCursor = len(fields) - 1
			}
		}
	case "c":
		if m.setupCursor < len(fields) {
			if name := fields[m.setupCursor].provider; name != "" {
				if row := m.builder.Provider(name); row != nil && strings.TrimSpace(row.Key) == "" {
					m.statusLine = name + " has no key, nothing to check"
					return m, nil
				}
				m.statusLine = "checking " + name
				return m, checkProviderCmd(context.Background(), m.builder, m.client, name)
			}
		}
	case "s":
		if err := m.builder.Validate(); err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		m.statusLine = "starting debate"
		return m, stageConfigCmd(m.builder, m.cfg.Paths.ResolveStateDir())
	case "r":
		m.switchView(ViewResults)
		return m, loadSummariesCmd(context.Background(), m.browser)
	}

	return m, nil
}

// handleSetupEditingKey feeds keys into the active text field.
func (m Model) handleSetupEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		fields := m.setupFields()
		if m.setupCursor < len(fields) && fields[m.setupCursor].set != nil {
			fields[m.setupCursor].set(m.input.Value())
		}
		m.editing = false
		m.input.Blur()
		return m, nil
	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func onOff(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func moderatorLabel(mode setup.ModeratorMode) string {
	switch mode {
	case setup.ModeratorEnabled:
		return "enabled"
	case setup.ModeratorDisabled:
		return "disabled"
	default:
		return "backend default"
	}
}

func nextModeratorMode(mode setup.ModeratorMode) setup.ModeratorMode {
	switch mode {
	case setup.ModeratorDefault:
		return setup.ModeratorEnabled
	case setup.ModeratorEnabled:
		return setup.ModeratorDisabled
	default:
		return setup.ModeratorDefault
	}
}
