package api

import "encoding/json"

// DebateConfig is the configuration payload sent to POST /debates/init.
type DebateConfig struct {
	TopicName        string     `json:"topic_name"`
	Description      string     `json:"description"`
	AllowedPositions []string   `json:"allowed_positions"`
	SessionID        string     `json:"session_id,omitempty"`
	Overrides        *Overrides `json:"overrides,omitempty"`
}

// Overrides carries the optional knobs the backend accepts alongside a
// debate configuration. Absent keys tell the backend to pick its own
// values, so omitempty semantics are part of the wire contract.
type Overrides struct {
	ProviderConfig map[string]ProviderSettings `json:"provider_config,omitempty"`
	MaxLetters     int                         `json:"max_letters,omitempty"`
	InsultsAllowed *bool                       `json:"insults_allowed,omitempty"`
	LiesAllowed    *bool                       `json:"lies_allowed,omitempty"`
	Participants   []ParticipantOverride       `json:"participants,omitempty"`

	// Moderator is tri-state: nil omits the key and lets the backend
	// decide, ModeratorEnabled() requests a judge, ModeratorDisabled()
	// sends an explicit null so the backend runs without one.
	Moderator json.RawMessage `json:"moderator,omitempty"`
}

// ModeratorEnabled returns the moderator override requesting a judge.
func ModeratorEnabled() json.RawMessage {
	return json.RawMessage(`{"role":"Judge"}`)
}

// ModeratorDisabled returns an explicit null moderator override.
// json.RawMessage("null") is non-empty, so omitempty keeps the key.
func ModeratorDisabled() json.RawMessage {
	return json.RawMessage("null")
}

// ProviderSettings is one provider's credential and model selection.
type ProviderSettings struct {
	APIKey string `json:"api_key"`
	Model  string `json:"model"`
}

// ParticipantOverride is one manually configured participant. The backend
// fills every field left empty from its own persona generator.
type ParticipantOverride struct {
	Name             string `json:"name,omitempty"`
	Role             string `json:"role,omitempty"`
	Brain            string `json:"brain,omitempty"`
	AttitudeType     string `json:"attitude_type,omitempty"`
	OriginalPosition string `json:"original_position,omitempty"`
}

// CheckStatusRequest is the payload for POST /providers/check_status.
type CheckStatusRequest struct {
	Provider string `json:"provider"`
	APIKey   string `json:"api_key"`
	Model    string `json:"model"`
}

// CheckStatusResponse reports a provider verification outcome.
// Status is "verified" on success; anything else is a failure.
type CheckStatusResponse struct {
	Status  string  `json:"status"`
	Latency float64 `json:"latency"`
	Message string  `json:"message"`
}

// StatusVerified is the backend's positive verification status.
const StatusVerified = "verified"

// InitResponse is the response from POST /debates/init.
type InitResponse struct {
	DebateID string `json:"debate_id"`
}

// StepResponse is the response from POST /debates/{id}/next. Event is
// left raw here; the debate package decodes it into a typed event.
type StepResponse struct {
	Event    json.RawMessage `json:"event"`
	Finished bool            `json:"finished"`
}

// HasEvent reports whether the step carried an event. The backend sends
// "event": null on the final step of an exhausted debate.
func (s *StepResponse) HasEvent() bool {
	return len(s.Event) > 0 && string(s.Event) != "null"
}

// ResultSummary is one row of GET /results.
type ResultSummary struct {
	ID     string `json:"id"`
	Topic  string `json:"topic"`
	Date   string `json:"date"`
	Winner string `json:"winner"`
	Path   string `json:"path"`
}

// ResultDetail is the full record behind GET /results/{id}.
type ResultDetail struct {
	Metadata        ResultMetadata      `json:"metadata"`
	Participants    []ResultParticipant `json:"participants"`
	ModeratorStats  ModeratorStats      `json:"moderator_stats"`
	PositionChanges []PositionChange    `json:"position_changes"`
	Evaluation      Evaluation          `json:"evaluation"`
}

// ResultMetadata describes a persisted debate run.
type ResultMetadata struct {
	ID                    string   `json:"id"`
	SessionID             string   `json:"session_id"`
	Topic                 string   `json:"topic"`
	Description           string   `json:"description"`
	Date                  string   `json:"date"`
	TotalRoundsConfigured int      `json:"total_rounds_configured"`
	TotalTurnsConfigured  int      `json:"total_turns_configured"`
	AllowedPositions      []string `json:"allowed_positions"`
	TotalEstimatedCostUSD float64  `json:"total_estimated_cost_usd"`
}

// ResultParticipant is one participant's final record.
type ResultParticipant struct {
	Name              string    `json:"name"`
	Role              string    `json:"role"`
	AttitudeType      string    `json:"attitude_type"`
	Brain             string    `json:"brain"`
	OriginalPosition  string    `json:"original_position"`
	FinalPosition     string    `json:"final_position"`
	IsVetoed          bool      `json:"is_vetoed"`
	VetoReason        string    `json:"veto_reason"`
	Strikes           int       `json:"strikes"`
	TotalCost         float64   `json:"total_cost"`
	OrderInDebate     int       `json:"order_in_debate"`
	ConfidenceHistory []float64 `json:"confidence_history"`
	FinalConfidence   float64   `json:"final_confidence"`
}

// ModeratorStats counts moderator actions over one debate.
type ModeratorStats struct {
	Interventions int `json:"interventions"`
	Sanctions     int `json:"sanctions"`
	Skips         int `json:"skips"`
	Vetos         int `json:"vetos"`
	Stops         int `json:"stops"`
	Limits        int `json:"limits"`
}

// PositionChange records one participant switching stances mid-debate.
type PositionChange struct {
	Name             string `json:"name"`
	FromPosition     string `json:"from"`
	ToPosition       string `json:"to"`
	RoundWhenChanged int    `json:"round_when_changed"`
}

// Evaluation holds the post-debate scoring section.
type Evaluation struct {
	Participants  []ParticipantScore `json:"participants"`
	GlobalOutcome *GlobalOutcome     `json:"global_outcome"`
}

// ParticipantScore is one voter's scoring of the debate.
type ParticipantScore struct {
	Voter             string             `json:"voter"`
	Winner            string             `json:"winner"`
	BestIntervention  *InterventionRef   `json:"best_intervention"`
	WorstIntervention *InterventionRef   `json:"worst_intervention"`
	Scores            map[string]float64 `json:"scores"`
}

// GlobalOutcome is the aggregated verdict of a debate.
type GlobalOutcome struct {
	WinnerName        string             `json:"winner_name"`
	WinnerPosition    string             `json:"winner_position"`
	VoteDistribution  map[string]int     `json:"vote_distribution"`
	AverageScores     map[string]float64 `json:"average_scores"`
	BestIntervention  *InterventionRef   `json:"best_intervention"`
	WorstIntervention *InterventionRef   `json:"worst_intervention"`
}

// InterventionRef points at a notable intervention in the transcript.
type InterventionRef struct {
	ID          int    `json:"id"`
	Participant string `json:"participant"`
	Text        string `json:"text"`
}

// ConfigSummary is one row of GET /configs: a server-side saved
// configuration addressed by filename.
type ConfigSummary struct {
	Filename    string `json:"filename"`
	TopicName   string `json:"topic_name"`
	Description string `json:"description"`
}

// HealthResponse is the response from GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
