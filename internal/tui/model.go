package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/debaite/podium/internal/api"
	"github.com/debaite/podium/internal/config"
	"github.com/debaite/podium/internal/debate"
	"github.com/debaite/podium/internal/logging"
	"github.com/debaite/podium/internal/results"
	"github.com/debaite/podium/internal/setup"
)

// View identifies which screen the application is showing.
type View int

const (
	// ViewSetup is the configuration builder.
	ViewSetup View = iota

	// ViewLive is the running debate.
	ViewLive

	// ViewResults is the historical results browser.
	ViewResults
)

// String returns the view name used in logs.
func (v View) String() string {
	switch v {
	case ViewSetup:
		return "setup"
	case ViewLive:
		return "live"
	case ViewResults:
		return "results"
	default:
		return "unknown"
	}
}

// Model holds the TUI application state
type Model struct {
	// Core components
	cfg    *config.Config
	client api.Client
	log    *logging.Logger

	// UI state
	view         View
	width        int
	height       int
	ready        bool
	quitting     bool
	statusLine   string
	errorMessage string

	// Setup view
	builder     *setup.Builder
	setupCursor int
	editing     bool
	input       textinput.Model

	// Live view
	driver     *debate.Driver
	live       debate.State
	liveCancel context.CancelFunc
	liveCtx    context.Context
	stepping   bool

	// Results view
	browser       *results.Browser
	resultsCursor int
	loadingDetail bool
}

// NewModel creates the application model starting on the given view.
func NewModel(cfg *config.Config, client api.Client, log *logging.Logger, start View) Model {
	if log == nil {
		log = logging.NopLogger()
	}

	input := textinput.New()
	input.CharLimit = 256

	return Model{
		cfg:     cfg,
		client:  client,
		log:     log,
		view:    start,
		builder: setup.NewBuilder(cfg),
		live:    debate.NewState(),
		browser: results.NewBrowser(client, log.WithView("results")),
		input:   input,
	}
}

// switchView changes the visible screen, canceling any work scoped to
// the one being left.
func (m *Model) switchView(v View) {
	if m.view == ViewLive && v != ViewLive {
		m.cancelLive()
	}
	m.view = v
	m.errorMessage = ""
	m.statusLine = ""
	m.log.Debug("view switched", "view", v.String())
}

// cancelLive aborts all in-flight live-session requests.
func (m *Model) cancelLive() {
	if m.liveCancel != nil {
		m.liveCancel()
		m.liveCancel = nil
		m.liveCtx = nil
	}
	m.stepping = false
}
