package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/debaite/podium/internal/api"
	"github.com/debaite/podium/internal/config"
	"github.com/debaite/podium/internal/logging"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
}

// New creates the TUI application opening on the given view.
func New(cfg *config.Config, client api.Client, log *logging.Logger, start View) *App {
	return &App{model: NewModel(cfg, client, log, start)}
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)
	_, err := a.program.Run()
	return err
}
