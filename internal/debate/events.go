package debate

import (
	"encoding/json"
	"fmt"
)

// Event is one decoded step of a running debate. The backend emits a
// discriminated union keyed by the "type" field.
type Event interface {
	// Type returns the wire discriminator of the event.
	Type() string
}

// Wire discriminators emitted by the backend's step generator.
const (
	EventTypeInitialState = "initial_state"
	EventTypeIntervention = "intervention"
	EventTypeRoundStart   = "round_start"
	EventTypeTurnStart    = "turn_start"
	EventTypeSanction     = "sanction"
	EventTypeVeto         = "veto"
	EventTypeFinished     = "debate_finished"
)

// Debater is a participant snapshot inside an initial_state event.
type Debater struct {
	Name             string  `json:"name"`
	Role             string  `json:"role"`
	AttitudeType     string  `json:"attitude_type"`
	Brain            string  `json:"brain"`
	OriginalPosition string  `json:"original_position"`
	ConfidenceScore  float64 `json:"confidence_score"`
	Strikes          int     `json:"strikes"`
	IsVetoed         bool    `json:"is_vetoed"`
}

// InitialStateEvent announces the full roster at the start of a session.
type InitialStateEvent struct {
	DebateID     string    `json:"debate_id"`
	Topic        string    `json:"topic"`
	Description  string    `json:"description"`
	Participants []Debater `json:"participants"`
	Moderator    *Debater  `json:"moderator"`
	TotalRounds  int       `json:"total_rounds"`
	TotalTurns   int       `json:"total_turns"`
}

// Type returns the wire discriminator.
func (InitialStateEvent) Type() string { return EventTypeInitialState }

// InterventionEvent is one turn of speech. Action is non-empty only for
// moderator interventions; Participant is the SystemSpeaker sentinel for
// engine announcements.
type InterventionEvent struct {
	Participant string  `json:"participant"`
	Text        string  `json:"text"`
	Cost        float64 `json:"cost"`
	Role        string  `json:"role"`
	Action      string  `json:"action"`
	Target      string  `json:"target"`
}

// Type returns the wire discriminator.
func (InterventionEvent) Type() string { return EventTypeIntervention }

// IsSystem reports whether this is an engine announcement.
func (e InterventionEvent) IsSystem() bool { return e.Participant == SystemSpeaker }

// IsModerator reports whether this intervention carries a moderator action.
func (e InterventionEvent) IsModerator() bool { return e.Action != "" }

// RoundStartEvent marks the beginning of a round.
type RoundStartEvent struct {
	Round int `json:"round"`
}

// Type returns the wire discriminator.
func (RoundStartEvent) Type() string { return EventTypeRoundStart }

// TurnStartEvent marks the beginning of a turn within a round.
type TurnStartEvent struct {
	Round int `json:"round"`
	Turn  int `json:"turn"`
}

// Type returns the wire discriminator.
func (TurnStartEvent) Type() string { return EventTypeTurnStart }

// SanctionEvent sets a participant's strike count. Strikes is absolute,
// not an increment.
type SanctionEvent struct {
	Participant string `json:"participant"`
	Strikes     int    `json:"strikes"`
}

// Type returns the wire discriminator.
func (SanctionEvent) Type() string { return EventTypeSanction }

// VetoEvent permanently removes a participant from active speaking.
type VetoEvent struct {
	Participant string `json:"participant"`
	Reason      string `json:"reason"`
}

// Type returns the wire discriminator.
func (VetoEvent) Type() string { return EventTypeVeto }

// FinishedEvent announces the end of the debate.
type FinishedEvent struct {
	Winner     string `json:"winner"`
	ResultPath string `json:"result_path"`
}

// Type returns the wire discriminator.
func (FinishedEvent) Type() string { return EventTypeFinished }

// DecodeEvent decodes a raw step event into its typed form.
// Unknown event types are an error so new backend events surface loudly
// instead of being silently dropped.
func DecodeEvent(raw json.RawMessage) (Event, error) {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode event envelope: %w", err)
	}

	switch envelope.Type {
	case EventTypeInitialState:
		var ev InitialStateEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			return nil, fmt.Errorf("decode initial_state event: %w", err)
		}
		return ev, nil
	case EventTypeIntervention:
		var ev InterventionEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			return nil, fmt.Errorf("decode intervention event: %w", err)
		}
		return ev, nil
	case EventTypeRoundStart:
		var ev RoundStartEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			return nil, fmt.Errorf("decode round_start event: %w", err)
		}
		return ev, nil
	case EventTypeTurnStart:
		var ev TurnStartEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			return nil, fmt.Errorf("decode turn_start event: %w", err)
		}
		return ev, nil
	case EventTypeSanction:
		var ev SanctionEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			return nil, fmt.Errorf("decode sanction event: %w", err)
		}
		return ev, nil
	case EventTypeVeto:
		var ev VetoEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			return nil, fmt.Errorf("decode veto event: %w", err)
		}
		return ev, nil
	case EventTypeFinished:
		var ev FinishedEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			return nil, fmt.Errorf("decode debate_finished event: %w", err)
		}
		return ev, nil
	case "":
		return nil, fmt.Errorf("event has no type field")
	default:
		return nil, fmt.Errorf("unknown event type %q", envelope.Type)
	}
}
