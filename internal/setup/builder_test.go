package setup

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/debaite/podium/internal/api"
	"github.com/debaite/podium/internal/config"
	"github.com/debaite/podium/internal/errors"
)

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	return NewBuilder(config.Default())
}

func TestNewBuilderSeedsProviderRows(t *testing.T) {
	b := newTestBuilder(t)

	if len(b.Providers) != 4 {
		t.Fatalf("len(Providers) = %d, want 4", len(b.Providers))
	}
	gemini := b.Provider("gemini")
	if gemini == nil {
		t.Fatal("gemini row missing")
	}
	if gemini.Status != StatusUnchecked {
		t.Errorf("gemini status = %q, want %q", gemini.Status, StatusUnchecked)
	}
	if gemini.Model != gemini.DefaultModel || gemini.Model == "" {
		t.Errorf("gemini model = %q, want default %q", gemini.Model, gemini.DefaultModel)
	}
}

func TestEditResetsProviderStatus(t *testing.T) {
	tests := []struct {
		name string
		edit func(b *Builder)
	}{
		{name: "key edit", edit: func(b *Builder) { b.SetProviderKey("openai", "sk-new") }},
		{name: "model edit", edit: func(b *Builder) { b.SetProviderModel("openai", "gpt-4o") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuilder(t)
			b.Provider("openai").Status = StatusVerified

			tt.edit(b)

			if got := b.Provider("openai").Status; got != StatusUnchecked {
				t.Errorf("status after edit = %q, want %q", got, StatusUnchecked)
			}
		})
	}
}

func TestIdenticalEditKeepsStatus(t *testing.T) {
	b := newTestBuilder(t)
	row := b.Provider("claude")
	row.Key = "sk-same"
	row.Status = StatusVerified

	b.SetProviderKey("claude", "sk-same")

	if row.Status != StatusVerified {
		t.Errorf("status after no-op edit = %q, want %q", row.Status, StatusVerified)
	}
}

func TestCheckProviderEmptyKeyIsNoOp(t *testing.T) {
	b := newTestBuilder(t)
	mock := api.NewMockClient()

	if err := b.CheckProvider(context.Background(), mock, "gemini"); err != nil {
		t.Fatalf("CheckProvider() error = %v", err)
	}
	if got := b.Provider("gemini").Status; got != StatusUnchecked {
		t.Errorf("status = %q, want %q (row untouched)", got, StatusUnchecked)
	}
	if len(mock.Calls) != 0 {
		t.Errorf("backend calls = %v, want none for empty key", mock.Calls)
	}
}

func TestCheckProviderVerified(t *testing.T) {
	b := newTestBuilder(t)
	b.SetProviderKey("gemini", "key-123")
	mock := api.NewMockClient(api.WithCheckResponse(api.CheckStatusResponse{Status: api.StatusVerified}))

	if err := b.CheckProvider(context.Background(), mock, "gemini"); err != nil {
		t.Fatalf("CheckProvider() error = %v", err)
	}
	if got := b.Provider("gemini").Status; got != StatusVerified {
		t.Errorf("status = %q, want %q", got, StatusVerified)
	}
}

func TestCheckProviderRejected(t *testing.T) {
	b := newTestBuilder(t)
	b.SetProviderKey("gemini", "bad-key")
	mock := api.NewMockClient(api.WithCheckResponse(api.CheckStatusResponse{Status: "invalid_key"}))

	if err := b.CheckProvider(context.Background(), mock, "gemini"); err != nil {
		t.Fatalf("CheckProvider() error = %v", err)
	}
	if got := b.Provider("gemini").Status; got != StatusFailed {
		t.Errorf("status = %q, want %q", got, StatusFailed)
	}
}

func TestCheckProviderTransportFailure(t *testing.T) {
	b := newTestBuilder(t)
	b.SetProviderKey("gemini", "key-123")
	mock := api.NewMockClient(api.WithCheckError(errors.ErrBackendUnavailable))

	err := b.CheckProvider(context.Background(), mock, "gemini")
	if err == nil {
		t.Fatal("CheckProvider() error = nil, want transport error")
	}
	if got := b.Provider("gemini").Status; got != StatusFailed {
		t.Errorf("status = %q, want %q on transport failure", got, StatusFailed)
	}
}

func TestStanceOps(t *testing.T) {
	b := newTestBuilder(t)
	b.SetStance(0, "for")
	b.AddStance()
	b.SetStance(1, "against")
	b.AddStance()

	if got := len(b.Stances); got != 3 {
		t.Fatalf("len(Stances) = %d, want 3", got)
	}

	b.RemoveStance(2)
	if got := len(b.Stances); got != 2 {
		t.Fatalf("len(Stances) after remove = %d, want 2", got)
	}

	// out-of-range ops are ignored
	b.SetStance(9, "x")
	b.RemoveStance(-1)
	if got := len(b.Stances); got != 2 {
		t.Errorf("len(Stances) after bad indexes = %d, want 2", got)
	}
}

func TestUsableStancesFiltersBlanks(t *testing.T) {
	b := newTestBuilder(t)
	b.Stances = []string{"for", "", "  ", "against", "for"}

	got := b.UsableStances()
	want := []string{"for", "against", "for"}
	if len(got) != len(want) {
		t.Fatalf("UsableStances() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("UsableStances()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAddParticipantDefaults(t *testing.T) {
	b := newTestBuilder(t)
	b.SetStance(0, "tabs")

	row := b.AddParticipant()

	if row.ID == "" {
		t.Error("participant ID is empty")
	}
	if row.Role != "scholar" || row.Brain != "gemini" || row.Attitude != "calm" {
		t.Errorf("defaults = %q/%q/%q, want scholar/gemini/calm", row.Role, row.Brain, row.Attitude)
	}
	if row.Position != "tabs" {
		t.Errorf("position = %q, want first stance %q", row.Position, "tabs")
	}

	second := b.AddParticipant()
	if second.ID == row.ID {
		t.Error("participant IDs are not unique")
	}
}

func TestAddParticipantNoStances(t *testing.T) {
	b := newTestBuilder(t)
	row := b.AddParticipant()
	if row.Position != "" {
		t.Errorf("position = %q, want empty when no stance exists", row.Position)
	}
}

func TestValidateRequiresStance(t *testing.T) {
	b := newTestBuilder(t)
	b.Topic = "X"
	b.Stances = []string{"", "   "}

	err := b.Validate()
	if err == nil {
		t.Fatal("Validate() error = nil, want stance validation error")
	}
	if !stderrors.Is(err, errors.ErrNoUsableStance) {
		t.Errorf("Validate() error = %v, want wrapped ErrNoUsableStance", err)
	}
}

func TestValidateRequiresTopic(t *testing.T) {
	b := newTestBuilder(t)
	b.SetStance(0, "for")
	if err := b.Validate(); err == nil {
		t.Fatal("Validate() error = nil, want topic validation error")
	}
}

func TestBuildFiltersBlanksAndKeys(t *testing.T) {
	b := newTestBuilder(t)
	b.Topic = "Pineapple on pizza"
	b.Stances = []string{"for", "", "against"}
	b.SetProviderKey("gemini", "key-g")
	b.SetProviderModel("openai", "gpt-4o")

	cfg, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if len(cfg.AllowedPositions) != 2 {
		t.Errorf("AllowedPositions = %v, want 2 entries", cfg.AllowedPositions)
	}
	if len(cfg.Overrides.ProviderConfig) != 1 {
		t.Fatalf("ProviderConfig = %v, want only gemini", cfg.Overrides.ProviderConfig)
	}
	settings, ok := cfg.Overrides.ProviderConfig["gemini"]
	if !ok {
		t.Fatal("gemini missing from provider_config")
	}
	if settings.APIKey != "key-g" {
		t.Errorf("gemini api_key = %q, want %q", settings.APIKey, "key-g")
	}
}

func TestBuildParticipantsPresentOnlyWithRows(t *testing.T) {
	b := newTestBuilder(t)
	b.Topic = "X"
	b.SetStance(0, "a")

	cfg, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if cfg.Overrides.Participants != nil {
		t.Errorf("Participants = %v, want nil without manual rows", cfg.Overrides.Participants)
	}

	b.AddParticipant().Name = "Alice"
	cfg, err = b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(cfg.Overrides.Participants) != 1 {
		t.Fatalf("Participants = %v, want 1 row", cfg.Overrides.Participants)
	}
	if cfg.Overrides.Participants[0].Name != "Alice" {
		t.Errorf("participant name = %q, want %q", cfg.Overrides.Participants[0].Name, "Alice")
	}
}

func TestBuildModeratorTriState(t *testing.T) {
	tests := []struct {
		name string
		mode ModeratorMode
		want string
	}{
		{name: "default omits", mode: ModeratorDefault, want: ""},
		{name: "enabled sends judge", mode: ModeratorEnabled, want: `{"role":"Judge"}`},
		{name: "disabled sends null", mode: ModeratorDisabled, want: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuilder(t)
			b.Topic = "X"
			b.SetStance(0, "a")
			b.Moderator = tt.mode

			cfg, err := b.Build()
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if got := string(cfg.Overrides.Moderator); got != tt.want {
				t.Errorf("moderator override = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildEngagementRules(t *testing.T) {
	b := newTestBuilder(t)
	b.Topic = "X"
	b.SetStance(0, "a")
	b.MaxLetters = 900
	b.InsultsAllowed = true

	cfg, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if cfg.Overrides.MaxLetters != 900 {
		t.Errorf("MaxLetters = %d, want 900", cfg.Overrides.MaxLetters)
	}
	if cfg.Overrides.InsultsAllowed == nil || !*cfg.Overrides.InsultsAllowed {
		t.Error("InsultsAllowed not carried")
	}
	if cfg.Overrides.LiesAllowed == nil || *cfg.Overrides.LiesAllowed {
		t.Error("LiesAllowed should be false")
	}
}

func TestBuildBlankModelFallsBackToDefault(t *testing.T) {
	b := newTestBuilder(t)
	b.Topic = "X"
	b.SetStance(0, "a")
	b.SetProviderKey("deepseek", "key-d")
	b.SetProviderModel("deepseek", "")

	cfg, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	want := b.Provider("deepseek").DefaultModel
	if got := cfg.Overrides.ProviderConfig["deepseek"].Model; got != want {
		t.Errorf("deepseek model = %q, want default %q", got, want)
	}
}
