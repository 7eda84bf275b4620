package debate

import (
	"context"

	"github.com/debaite/podium/internal/api"
	"github.com/debaite/podium/internal/errors"
	"github.com/debaite/podium/internal/logging"
)

// Driver owns the step loop of one live session. The TUI calls Init and
// Next one at a time; the headless runner uses Run to drain a whole
// debate in one call. The driver holds no state of its own besides the
// debate id, so reducing events into State stays the caller's job.
type Driver struct {
	client   api.Client
	log      *logging.Logger
	debateID string
	step     int
}

// NewDriver creates a driver over the given backend client.
func NewDriver(client api.Client, log *logging.Logger) *Driver {
	if log == nil {
		log = logging.NopLogger()
	}
	return &Driver{client: client, log: log}
}

// DebateID returns the id assigned by the backend, empty before Init.
func (d *Driver) DebateID() string { return d.debateID }

// Init registers the debate configuration with the backend and stores
// the assigned debate id for the step loop.
func (d *Driver) Init(ctx context.Context, cfg api.DebateConfig) (string, error) {
	id, err := d.client.InitDebate(ctx, cfg)
	if err != nil {
		return "", errors.NewDriverError("failed to initialize debate session", err)
	}
	d.debateID = id
	d.step = 0
	d.log = d.log.WithDebate(id)
	d.log.Info("debate session initialized", "topic", cfg.TopicName)
	return id, nil
}

// Next advances the debate by one step and decodes the returned event.
// A nil event with done=false means the backend produced nothing for
// this step; the caller should keep polling. done=true means the debate
// is over and no further calls should be made.
func (d *Driver) Next(ctx context.Context) (ev Event, done bool, err error) {
	if d.debateID == "" {
		return nil, false, errors.NewDriverError("next step requested before init", nil)
	}

	resp, err := d.client.NextStep(ctx, d.debateID)
	if err != nil {
		return nil, false, errors.NewDriverError("failed to advance debate", err).
			WithDebateID(d.debateID).WithStep(d.step)
	}
	d.step++

	if resp.HasEvent() {
		ev, err = DecodeEvent(resp.Event)
		if err != nil {
			return nil, false, errors.NewDriverError("backend sent unreadable event", err).
				WithDebateID(d.debateID).WithStep(d.step)
		}
		d.log.Debug("debate event", "step", d.step, "event", ev.Type())
	}
	return ev, resp.Finished, nil
}

// Run drives a debate from init to completion, folding every event into
// the returned state. onEvent, if non-nil, is called with each decoded
// event and the state after applying it. Run stops on the first error
// or when ctx is canceled, returning the last state it reached.
func (d *Driver) Run(ctx context.Context, cfg api.DebateConfig, onEvent func(Event, State)) (State, error) {
	state := NewState()
	state.Phase = PhaseInitializing

	id, err := d.Init(ctx, cfg)
	if err != nil {
		state.Phase = PhaseFailed
		return state, err
	}
	state.DebateID = id
	state.Phase = PhaseStepping

	clock := newStepClock()
	for {
		if err := ctx.Err(); err != nil {
			state.Phase = PhaseFailed
			return state, errors.Wrap(errors.ErrCanceled, "debate run canceled")
		}

		ev, done, err := d.Next(ctx)
		if err != nil {
			state.Phase = PhaseFailed
			return state, err
		}
		if ev != nil {
			state = Apply(state, ev, clock())
			if onEvent != nil {
				onEvent(ev, state)
			}
		}
		if done {
			if state.Phase != PhaseFinished {
				state.Phase = PhaseFinished
			}
			d.log.Info("debate finished", "winner", state.Winner, "cost", state.TotalCost)
			return state, nil
		}
	}
}
