// Package setup holds the configuration-builder state: the stance list,
// the provider credential table, the optional manual participant roster,
// and the mapping from all of that onto the wire configuration the
// backend accepts.
package setup

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/debaite/podium/internal/api"
	"github.com/debaite/podium/internal/config"
	"github.com/debaite/podium/internal/errors"
)

// ProviderStatus is the verification state of one credential row.
type ProviderStatus string

const (
	// StatusUnchecked means the key has not been verified since its last edit.
	StatusUnchecked ProviderStatus = "unchecked"

	// StatusVerified means the backend confirmed the credential works.
	StatusVerified ProviderStatus = "verified"

	// StatusFailed means verification failed or could not be reached.
	StatusFailed ProviderStatus = "failed"
)

// ProviderRow is one mutable row of the provider credential table.
type ProviderRow struct {
	Name         string
	Key          string
	Model        string
	Status       ProviderStatus
	DefaultModel string
	Color        string
}

// ParticipantRow is one manually configured participant. ID is a local
// list key only and is never sent to the backend.
type ParticipantRow struct {
	ID       string
	Name     string
	Role     string
	Brain    string
	Attitude string
	Position string
}

// ModeratorMode selects how the moderator override is sent.
type ModeratorMode int

const (
	// ModeratorDefault omits the override so the backend decides.
	ModeratorDefault ModeratorMode = iota

	// ModeratorEnabled requests a judge explicitly.
	ModeratorEnabled

	// ModeratorDisabled sends an explicit null so the backend runs
	// without a moderator.
	ModeratorDisabled
)

// Display colors for the provider table, keyed by provider identifier.
var providerColors = map[string]string{
	"gemini":   "#4285F4",
	"openai":   "#10A37F",
	"deepseek": "#4D6BFE",
	"claude":   "#D97757",
}

// Builder accumulates everything needed to start a debate session.
type Builder struct {
	Topic       string
	Description string
	Stances     []string

	Providers    []ProviderRow
	Participants []ParticipantRow

	MaxLetters     int
	InsultsAllowed bool
	LiesAllowed    bool
	Moderator      ModeratorMode

	minStances int
}

// NewBuilder returns a builder seeded from the client configuration:
// one provider row per known provider with its default model, one empty
// stance to start typing into, and the configured engagement rules.
func NewBuilder(cfg *config.Config) *Builder {
	providers := config.ValidProviders()
	rows := make([]ProviderRow, 0, len(providers))
	for _, name := range providers {
		model := cfg.Providers.DefaultModel(name)
		rows = append(rows, ProviderRow{
			Name:         name,
			Model:        model,
			Status:       StatusUnchecked,
			DefaultModel: model,
			Color:        providerColors[name],
		})
	}

	return &Builder{
		Stances:        []string{""},
		Providers:      rows,
		MaxLetters:     cfg.Debate.MaxLetters,
		InsultsAllowed: cfg.Debate.InsultsAllowed,
		LiesAllowed:    cfg.Debate.LiesAllowed,
		Moderator:      ModeratorDefault,
		minStances:     cfg.Debate.MinStances,
	}
}

// AddStance appends an empty stance row.
func (b *Builder) AddStance() {
	b.Stances = append(b.Stances, "")
}

// SetStance updates the stance text at index i. Out-of-range indexes
// are ignored.
func (b *Builder) SetStance(i int, text string) {
	if i < 0 || i >= len(b.Stances) {
		return
	}
	b.Stances[i] = text
}

// RemoveStance removes the stance at index i. Out-of-range indexes are
// ignored.
func (b *Builder) RemoveStance(i int) {
	if i < 0 || i >= len(b.Stances) {
		return
	}
	b.Stances = append(b.Stances[:i], b.Stances[i+1:]...)
}

// UsableStances returns the stances that would be submitted: blanks
// dropped, order and duplicates kept.
func (b *Builder) UsableStances() []string {
	out := make([]string, 0, len(b.Stances))
	for _, s := range b.Stances {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

// Provider returns the credential row for a provider identifier.
func (b *Builder) Provider(name string) *ProviderRow {
	for i := range b.Providers {
		if b.Providers[i].Name == name {
			return &b.Providers[i]
		}
	}
	return nil
}

// SetProviderKey updates a provider's API key. Any edit drops the row
// back to unchecked.
func (b *Builder) SetProviderKey(name, key string) {
	if row := b.Provider(name); row != nil && row.Key != key {
		row.Key = key
		row.Status = StatusUnchecked
	}
}

// SetProviderModel updates a provider's model. Any edit drops the row
// back to unchecked.
func (b *Builder) SetProviderModel(name, model string) {
	if row := b.Provider(name); row != nil && row.Model != model {
		row.Model = model
		row.Status = StatusUnchecked
	}
}

// CheckProvider verifies one provider's credential against the backend
// and records the outcome on the row. Rows without a key are left
// untouched and no request is made. The returned error reports
// transport problems for logging; the row status already reflects them.
func (b *Builder) CheckProvider(ctx context.Context, client api.Client, name string) error {
	row := b.Provider(name)
	if row == nil {
		return errors.NewValidationError("unknown provider").WithField("provider").WithValue(name)
	}
	if strings.TrimSpace(row.Key) == "" {
		return nil
	}

	resp, err := client.CheckProviderStatus(ctx, api.CheckStatusRequest{
		Provider: row.Name,
		APIKey:   row.Key,
		Model:    b.modelFor(row),
	})
	if err != nil {
		row.Status = StatusFailed
		return err
	}
	if resp.Status == api.StatusVerified {
		row.Status = StatusVerified
	} else {
		row.Status = StatusFailed
	}
	return nil
}

// AddParticipant appends a roster row with the default persona: a calm
// scholar on gemini, arguing the first usable stance if one exists.
func (b *Builder) AddParticipant() *ParticipantRow {
	position := ""
	if usable := b.UsableStances(); len(usable) > 0 {
		position = usable[0]
	}
	b.Participants = append(b.Participants, ParticipantRow{
		ID:       uuid.NewString(),
		Role:     "scholar",
		Brain:    "gemini",
		Attitude: "calm",
		Position: position,
	})
	return &b.Participants[len(b.Participants)-1]
}

// RemoveParticipant removes the roster row at index i. Out-of-range
// indexes are ignored.
func (b *Builder) RemoveParticipant(i int) {
	if i < 0 || i >= len(b.Participants) {
		return
	}
	b.Participants = append(b.Participants[:i], b.Participants[i+1:]...)
}

// Validate reports whether the builder can produce a startable
// configuration.
func (b *Builder) Validate() error {
	if strings.TrimSpace(b.Topic) == "" {
		return errors.NewValidationError("topic is required").WithField("topic")
	}
	if len(b.UsableStances()) < b.minStances {
		return errors.NewValidationError("at least one non-blank stance is required").
			WithField("stances").WithCause(errors.ErrNoUsableStance)
	}
	return nil
}

// Build maps the builder state onto the wire configuration. It fails
// when Validate fails; the result is otherwise always submittable.
func (b *Builder) Build() (*api.DebateConfig, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	overrides := &api.Overrides{
		MaxLetters:     b.MaxLetters,
		InsultsAllowed: &b.InsultsAllowed,
		LiesAllowed:    &b.LiesAllowed,
	}

	for _, row := range b.Providers {
		if strings.TrimSpace(row.Key) == "" {
			continue
		}
		if overrides.ProviderConfig == nil {
			overrides.ProviderConfig = make(map[string]api.ProviderSettings)
		}
		overrides.ProviderConfig[row.Name] = api.ProviderSettings{
			APIKey: row.Key,
			Model:  b.modelFor(&row),
		}
	}

	for _, p := range b.Participants {
		overrides.Participants = append(overrides.Participants, api.ParticipantOverride{
			Name:             p.Name,
			Role:             p.Role,
			Brain:            p.Brain,
			AttitudeType:     p.Attitude,
			OriginalPosition: p.Position,
		})
	}

	switch b.Moderator {
	case ModeratorEnabled:
		overrides.Moderator = api.ModeratorEnabled()
	case ModeratorDisabled:
		overrides.Moderator = api.ModeratorDisabled()
	}

	return &api.DebateConfig{
		TopicName:        b.Topic,
		Description:      b.Description,
		AllowedPositions: b.UsableStances(),
		Overrides:        overrides,
	}, nil
}

func (b *Builder) modelFor(row *ProviderRow) string {
	if strings.TrimSpace(row.Model) == "" {
		return row.DefaultModel
	}
	return row.Model
}
