package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/debaite/podium/internal/debate"
	"github.com/debaite/podium/internal/errors"
)

// startViewMsg kicks off the work scoped to the initial view. Init
// cannot mutate the model, so the bootstrap runs through Update.
type startViewMsg struct {
	view View
}

// Init schedules the bootstrap for the starting view.
func (m Model) Init() tea.Cmd {
	start := m.view
	return tea.Batch(textinput.Blink, func() tea.Msg {
		return startViewMsg{view: start}
	})
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case startViewMsg:
		switch msg.view {
		case ViewLive:
			return m, m.startLive()
		case ViewResults:
			return m, loadSummariesCmd(context.Background(), m.browser)
		}
		return m, nil

	case providerCheckedMsg:
		if msg.err != nil {
			m.errorMessage = "credential check failed: " + msg.err.Error()
		} else {
			m.statusLine = msg.provider + " checked"
		}
		return m, nil

	case stagedMsg:
		if msg.err != nil {
			if errors.IsUserFacing(msg.err) {
				m.errorMessage = msg.err.Error()
			} else {
				m.errorMessage = "could not stage configuration: " + msg.err.Error()
			}
			return m, nil
		}
		m.switchView(ViewLive)
		return m, m.startLive()

	case debateStartedMsg:
		return m.handleDebateStarted(msg)

	case stepMsg:
		return m.handleStep(msg)

	case decayMsg:
		m.live = debate.ApplyDecay(m.live, msg.gen)
		return m, nil

	case summariesMsg:
		if msg.err != nil {
			m.errorMessage = "could not load results: " + msg.err.Error()
			return m, nil
		}
		m.browser.Summaries = msg.summaries
		if m.resultsCursor >= len(msg.summaries) {
			m.resultsCursor = 0
		}
		return m, nil

	case detailMsg:
		m.loadingDetail = false
		if msg.err != nil {
			m.errorMessage = "could not load result detail: " + msg.err.Error()
			return m, nil
		}
		m.browser.Accept(msg.tag, msg.detail)
		return m, nil
	}

	return m, nil
}

// handleKey routes key presses to the active view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// text editing captures everything except its own commit/cancel keys
	if m.view == ViewSetup && m.editing {
		return m.handleSetupEditingKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		m.cancelLive()
		return m, tea.Quit
	}

	switch m.view {
	case ViewSetup:
		return m.handleSetupKey(msg)
	case ViewLive:
		return m.handleLiveKey(msg)
	case ViewResults:
		return m.handleResultsKey(msg)
	}
	return m, nil
}

// startLive wires a fresh driver and cancellation scope and kicks off
// the init request against the staged configuration.
func (m *Model) startLive() tea.Cmd {
	m.cancelLive()
	m.liveCtx, m.liveCancel = context.WithCancel(context.Background())
	m.driver = debate.NewDriver(m.client, m.log.WithView("live"))
	m.live = debate.NewState()
	m.live.Phase = debate.PhaseInitializing
	return initDebateCmd(m.liveCtx, m.driver, m.cfg.Paths.ResolveStateDir())
}

func (m Model) handleDebateStarted(msg debateStartedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if errors.Is(msg.err, errors.ErrNoStagedConfig) || errors.Is(msg.err, errors.ErrStagedConfigCorrupt) {
			m.cancelLive()
			m.switchView(ViewSetup)
			m.errorMessage = "no usable staged configuration, set one up first"
			return m, nil
		}
		m.live.Phase = debate.PhaseFailed
		m.errorMessage = "could not start debate: " + msg.err.Error()
		return m, nil
	}

	m.live.Phase = debate.PhaseStepping
	m.live.DebateID = msg.id
	m.stepping = true
	m.statusLine = "debate " + msg.id + " running"
	return m, nextStepCmd(m.liveCtx, m.driver)
}

func (m Model) handleStep(msg stepMsg) (tea.Model, tea.Cmd) {
	if !m.stepping {
		// a step resolved after the view was left
		return m, nil
	}
	if msg.err != nil {
		m.stepping = false
		if errors.Is(msg.err, errors.ErrCanceled) {
			return m, nil
		}
		m.live.Phase = debate.PhaseFailed
		m.errorMessage = "debate halted: " + msg.err.Error()
		return m, nil
	}

	var cmds []tea.Cmd
	if msg.event != nil {
		before := m.live.SpeakGen
		m.live = debate.Apply(m.live, msg.event, time.Now())
		if m.live.SpeakGen != before {
			cmds = append(cmds, decayCmd(m.cfg.TUI.SpeakingDecay(), m.live.SpeakGen))
		}
	}

	if msg.done {
		m.stepping = false
		if m.live.Phase != debate.PhaseFinished {
			m.live.Phase = debate.PhaseFinished
		}
		m.statusLine = finishedStatus(m.live)
		return m, tea.Batch(cmds...)
	}

	cmds = append(cmds, nextStepCmd(m.liveCtx, m.driver))
	return m, tea.Batch(cmds...)
}

func finishedStatus(s debate.State) string {
	if s.Winner != "" {
		return "debate finished, winner: " + s.Winner
	}
	return "debate finished"
}
