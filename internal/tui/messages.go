package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/debaite/podium/internal/api"
	"github.com/debaite/podium/internal/debate"
	"github.com/debaite/podium/internal/results"
	"github.com/debaite/podium/internal/setup"
)

// providerCheckedMsg reports the outcome of a credential check. The
// builder row already carries the new status; err is for the status line.
type providerCheckedMsg struct {
	provider string
	err      error
}

// stagedMsg reports that the built configuration was written to the
// staging file.
type stagedMsg struct {
	cfg *api.DebateConfig
	err error
}

// debateStartedMsg carries the id assigned by the init call.
type debateStartedMsg struct {
	id  string
	err error
}

// stepMsg carries one decoded step of the running debate.
type stepMsg struct {
	event debate.Event
	done  bool
	err   error
}

// decayMsg fires when a speaking highlight should return to rest. gen
// is the speaking generation it was armed for; stale generations are
// dropped by the reducer.
type decayMsg struct {
	gen int
}

// summariesMsg carries the fetched results list.
type summariesMsg struct {
	summaries []api.ResultSummary
	err       error
}

// detailMsg carries one fetched result detail and its selection tag.
type detailMsg struct {
	tag    int
	detail *api.ResultDetail
	err    error
}

// checkProviderCmd verifies one provider credential against the backend.
func checkProviderCmd(ctx context.Context, b *setup.Builder, client api.Client, name string) tea.Cmd {
	return func() tea.Msg {
		err := b.CheckProvider(ctx, client, name)
		return providerCheckedMsg{provider: name, err: err}
	}
}

// stageConfigCmd builds the wire configuration and writes the staging
// file the live view consumes.
func stageConfigCmd(b *setup.Builder, stateDir string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := b.Build()
		if err != nil {
			return stagedMsg{err: err}
		}
		if err := setup.SaveStaged(stateDir, cfg); err != nil {
			return stagedMsg{err: err}
		}
		return stagedMsg{cfg: cfg}
	}
}

// initDebateCmd reads the staged configuration and starts a session.
func initDebateCmd(ctx context.Context, d *debate.Driver, stateDir string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := setup.LoadStaged(stateDir)
		if err != nil {
			return debateStartedMsg{err: err}
		}
		id, err := d.Init(ctx, *cfg)
		return debateStartedMsg{id: id, err: err}
	}
}

// nextStepCmd advances the debate by one step.
func nextStepCmd(ctx context.Context, d *debate.Driver) tea.Cmd {
	return func() tea.Msg {
		ev, done, err := d.Next(ctx)
		return stepMsg{event: ev, done: done, err: err}
	}
}

// decayCmd arms the speaking-highlight decay for one generation.
func decayCmd(after time.Duration, gen int) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return decayMsg{gen: gen}
	})
}

// loadSummariesCmd fetches the results list.
func loadSummariesCmd(ctx context.Context, b *results.Browser) tea.Cmd {
	return func() tea.Msg {
		summaries, err := b.FetchSummaries(ctx)
		return summariesMsg{summaries: summaries, err: err}
	}
}

// loadDetailCmd fetches one result detail under a selection tag.
func loadDetailCmd(ctx context.Context, b *results.Browser, tag int, id string) tea.Cmd {
	return func() tea.Msg {
		detail, err := b.FetchDetail(ctx, id)
		return detailMsg{tag: tag, detail: detail, err: err}
	}
}
