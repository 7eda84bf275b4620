package debate

import (
	"fmt"
	"time"
)

// Message is one transcript entry.
type Message struct {
	Speaker string
	Text    string
	Type    MessageType
	Cost    float64
	Action  string
	Target  string
	At      time.Time
}

// State is the full derived state of a live session. It is only ever
// produced by Apply and ApplyDecay from a stream of backend events, so
// two sessions fed the same events in the same order render identically.
type State struct {
	Phase       Phase
	DebateID    string
	Topic       string
	Description string

	Round       int
	Turn        int
	TotalRounds int
	TotalTurns  int

	Participants []Participant
	Transcript   []Message

	// Speaking is the name of the participant currently highlighted as
	// speaking, empty when nobody is. SpeakGen increments every time the
	// highlight moves; a decay notification older than the current
	// generation is ignored.
	Speaking string
	SpeakGen int

	TotalCost  float64
	Winner     string
	ResultPath string
}

// NewState returns the state of a session that has not started yet.
func NewState() State {
	return State{Phase: PhaseIdle}
}

// clone copies the state so reducers never mutate their input.
func (s State) clone() State {
	out := s
	out.Participants = make([]Participant, len(s.Participants))
	copy(out.Participants, s.Participants)
	out.Transcript = make([]Message, len(s.Transcript))
	copy(out.Transcript, s.Transcript)
	return out
}

func (s *State) participant(name string) *Participant {
	for i := range s.Participants {
		if s.Participants[i].Name == name {
			return &s.Participants[i]
		}
	}
	return nil
}

// Participant returns the named participant and whether it exists.
func (s State) Participant(name string) (Participant, bool) {
	if p := s.participant(name); p != nil {
		return *p, true
	}
	return Participant{}, false
}

// Apply folds one event into the state and returns the new state.
// The input state is not modified. at is the arrival time recorded on
// transcript entries.
func Apply(s State, ev Event, at time.Time) State {
	out := s.clone()

	switch ev := ev.(type) {
	case InitialStateEvent:
		out.DebateID = ev.DebateID
		out.Topic = ev.Topic
		out.Description = ev.Description
		out.TotalRounds = ev.TotalRounds
		out.TotalTurns = ev.TotalTurns
		out.Participants = make([]Participant, 0, len(ev.Participants)+1)
		for _, d := range ev.Participants {
			out.Participants = append(out.Participants, fromDebater(d, false))
		}
		if ev.Moderator != nil {
			out.Participants = append(out.Participants, fromDebater(*ev.Moderator, true))
		}

	case InterventionEvent:
		out.Transcript = append(out.Transcript, Message{
			Speaker: ev.Participant,
			Text:    ev.Text,
			Type:    classify(ev),
			Cost:    ev.Cost,
			Action:  ev.Action,
			Target:  ev.Target,
			At:      at,
		})
		out.TotalCost += ev.Cost
		if !ev.IsSystem() {
			out.setSpeaking(ev.Participant)
		}

	case RoundStartEvent:
		out.Round = ev.Round
		out.Turn = 0

	case TurnStartEvent:
		out.Round = ev.Round
		out.Turn = ev.Turn

	case SanctionEvent:
		if p := out.participant(ev.Participant); p != nil {
			p.Strikes = ev.Strikes
		}

	case VetoEvent:
		if p := out.participant(ev.Participant); p != nil {
			p.Status = StatusVetoed
		}
		if out.Speaking == ev.Participant {
			out.Speaking = ""
		}
		out.Transcript = append(out.Transcript, Message{
			Speaker: SystemSpeaker,
			Text:    vetoNotice(ev),
			Type:    MessageSystem,
			At:      at,
		})

	case FinishedEvent:
		out.Phase = PhaseFinished
		out.Winner = ev.Winner
		out.ResultPath = ev.ResultPath
		out.clearSpeaking()
	}

	return out
}

// ApplyDecay returns the speaking highlight to rest if gen is still the
// current speaking generation. Decay notifications armed for an earlier
// intervention are dropped, so a participant who spoke again keeps the
// highlight for the full interval.
func ApplyDecay(s State, gen int) State {
	if gen != s.SpeakGen || s.Speaking == "" {
		return s
	}
	out := s.clone()
	out.clearSpeaking()
	return out
}

func (s *State) setSpeaking(name string) {
	p := s.participant(name)
	if p == nil || p.Status == StatusVetoed {
		return
	}
	if prev := s.participant(s.Speaking); prev != nil && prev.Name != name {
		prev.Status = prev.restingStatus()
	}
	p.Status = StatusSpeaking
	s.Speaking = name
	s.SpeakGen++
}

func (s *State) clearSpeaking() {
	if p := s.participant(s.Speaking); p != nil && p.Status == StatusSpeaking {
		p.Status = p.restingStatus()
	}
	s.Speaking = ""
}

func fromDebater(d Debater, moderator bool) Participant {
	p := Participant{
		Name:        d.Name,
		Role:        d.Role,
		IsModerator: moderator,
		Strikes:     d.Strikes,
		Confidence:  int(d.ConfidenceScore*100 + 0.5),
	}
	if moderator {
		p.Confidence = 100
	}
	if d.IsVetoed {
		p.Status = StatusVetoed
	} else {
		p.Status = p.restingStatus()
	}
	return p
}

func classify(ev InterventionEvent) MessageType {
	switch {
	case ev.IsSystem():
		return MessageSystem
	case ev.IsModerator():
		return MessageModerator
	default:
		return MessageNormal
	}
}

func vetoNotice(ev VetoEvent) string {
	if ev.Reason == "" {
		return fmt.Sprintf("%s has been vetoed and removed from the debate", ev.Participant)
	}
	return fmt.Sprintf("%s has been vetoed: %s", ev.Participant, ev.Reason)
}
