package debate

// Phase represents the current state of the live-session driver.
type Phase string

const (
	// PhaseIdle indicates no session has been started yet.
	PhaseIdle Phase = "idle"

	// PhaseInitializing indicates the init request is in flight.
	PhaseInitializing Phase = "initializing"

	// PhaseStepping indicates the step loop is advancing the debate.
	PhaseStepping Phase = "stepping"

	// PhaseFinished indicates the backend reported normal completion.
	PhaseFinished Phase = "finished"

	// PhaseFailed indicates a request failed before completion.
	// Distinct from PhaseFinished: the debate did not run to its end.
	PhaseFailed Phase = "failed"
)

// ParticipantStatus represents what a live participant is currently doing.
type ParticipantStatus string

const (
	// StatusListening is the resting status of a debater.
	StatusListening ParticipantStatus = "listening"

	// StatusSpeaking marks the participant of the latest intervention.
	StatusSpeaking ParticipantStatus = "speaking"

	// StatusAdjudicating is the resting status of the moderator.
	StatusAdjudicating ParticipantStatus = "adjudicating"

	// StatusVetoed marks a participant removed from the debate.
	// Sticky: no later event reverts it.
	StatusVetoed ParticipantStatus = "vetoed"
)

// Participant is one row of the live-session sidebar. Derived entirely
// from backend events, never user-edited.
type Participant struct {
	Name        string
	Role        string
	IsModerator bool
	Status      ParticipantStatus
	Strikes     int
	// Confidence is a display percentage (confidence_score × 100).
	Confidence int
}

// restingStatus is the status a participant returns to when nobody is
// speaking. Vetoed participants never come back.
func (p Participant) restingStatus() ParticipantStatus {
	if p.Status == StatusVetoed {
		return StatusVetoed
	}
	if p.IsModerator {
		return StatusAdjudicating
	}
	return StatusListening
}

// MessageType classifies a transcript entry.
type MessageType string

const (
	// MessageNormal is a regular debater intervention.
	MessageNormal MessageType = "normal"

	// MessageSystem is an announcement from the debate engine itself.
	MessageSystem MessageType = "system"

	// MessageModerator is a moderator intervention carrying an action.
	MessageModerator MessageType = "moderator"
)

// SystemSpeaker is the sentinel participant name the backend uses for
// engine announcements.
const SystemSpeaker = "System"
