package debate

import (
	"testing"
	"time"
)

var testTime = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

func initialEvent() InitialStateEvent {
	return InitialStateEvent{
		DebateID: "d-1",
		Topic:    "Pineapple on pizza",
		Participants: []Debater{
			{Name: "Alice", Role: "Scholar", ConfidenceScore: 0.8},
			{Name: "Bob", Role: "Comedian", ConfidenceScore: 0.5},
		},
		Moderator:   &Debater{Name: "Mod", Role: "Judge"},
		TotalRounds: 3,
		TotalTurns:  2,
	}
}

func applyAll(t *testing.T, s State, evs ...Event) State {
	t.Helper()
	for _, ev := range evs {
		s = Apply(s, ev, testTime)
	}
	return s
}

func TestApplyInitialState(t *testing.T) {
	s := Apply(NewState(), initialEvent(), testTime)

	if s.Topic != "Pineapple on pizza" {
		t.Errorf("Topic = %q, want %q", s.Topic, "Pineapple on pizza")
	}
	if len(s.Participants) != 3 {
		t.Fatalf("len(Participants) = %d, want 3", len(s.Participants))
	}

	alice, ok := s.Participant("Alice")
	if !ok {
		t.Fatal("Alice missing from state")
	}
	if alice.Confidence != 80 {
		t.Errorf("Alice confidence = %d, want 80", alice.Confidence)
	}
	if alice.Status != StatusListening {
		t.Errorf("Alice status = %q, want %q", alice.Status, StatusListening)
	}

	mod, ok := s.Participant("Mod")
	if !ok {
		t.Fatal("moderator missing from state")
	}
	if !mod.IsModerator {
		t.Error("moderator IsModerator = false")
	}
	if mod.Status != StatusAdjudicating {
		t.Errorf("moderator status = %q, want %q", mod.Status, StatusAdjudicating)
	}
	if mod.Confidence != 100 {
		t.Errorf("moderator confidence = %d, want 100", mod.Confidence)
	}
}

func TestApplyEventSequence(t *testing.T) {
	s := applyAll(t, NewState(),
		initialEvent(),
		InterventionEvent{Participant: "Alice", Text: "Opening argument", Cost: 0.01},
		RoundStartEvent{Round: 2},
		SanctionEvent{Participant: "Alice", Strikes: 1},
	)

	alice, _ := s.Participant("Alice")
	if alice.Strikes != 1 {
		t.Errorf("Alice strikes = %d, want 1", alice.Strikes)
	}
	if s.Round != 2 {
		t.Errorf("Round = %d, want 2", s.Round)
	}
	if len(s.Transcript) != 1 {
		t.Fatalf("len(Transcript) = %d, want 1", len(s.Transcript))
	}
	if s.Transcript[0].Speaker != "Alice" {
		t.Errorf("Transcript[0].Speaker = %q, want %q", s.Transcript[0].Speaker, "Alice")
	}
	if s.TotalCost != 0.01 {
		t.Errorf("TotalCost = %v, want 0.01", s.TotalCost)
	}
}

func TestSanctionIsAbsolute(t *testing.T) {
	s := applyAll(t, NewState(),
		initialEvent(),
		SanctionEvent{Participant: "Bob", Strikes: 2},
		SanctionEvent{Participant: "Bob", Strikes: 1},
	)
	bob, _ := s.Participant("Bob")
	if bob.Strikes != 1 {
		t.Errorf("Bob strikes = %d, want 1 (last value wins, not a sum)", bob.Strikes)
	}
}

func TestVetoIsSticky(t *testing.T) {
	s := applyAll(t, NewState(),
		initialEvent(),
		VetoEvent{Participant: "Bob", Reason: "too many lies"},
		InterventionEvent{Participant: "Bob", Text: "but wait"},
		RoundStartEvent{Round: 2},
	)

	bob, _ := s.Participant("Bob")
	if bob.Status != StatusVetoed {
		t.Errorf("Bob status = %q, want %q after later events", bob.Status, StatusVetoed)
	}
	if s.Speaking == "Bob" {
		t.Error("vetoed participant marked as speaking")
	}

	// veto emits a system transcript notice
	found := false
	for _, m := range s.Transcript {
		if m.Type == MessageSystem && m.Speaker == SystemSpeaker {
			found = true
		}
	}
	if !found {
		t.Error("no system notice recorded for veto")
	}
}

func TestSpeakingMovesBetweenParticipants(t *testing.T) {
	s := applyAll(t, NewState(),
		initialEvent(),
		InterventionEvent{Participant: "Alice", Text: "first"},
	)
	alice, _ := s.Participant("Alice")
	if alice.Status != StatusSpeaking {
		t.Fatalf("Alice status = %q, want %q", alice.Status, StatusSpeaking)
	}

	s = Apply(s, InterventionEvent{Participant: "Bob", Text: "second"}, testTime)
	alice, _ = s.Participant("Alice")
	bob, _ := s.Participant("Bob")
	if alice.Status != StatusListening {
		t.Errorf("Alice status = %q, want %q after Bob speaks", alice.Status, StatusListening)
	}
	if bob.Status != StatusSpeaking {
		t.Errorf("Bob status = %q, want %q", bob.Status, StatusSpeaking)
	}
	if s.Speaking != "Bob" {
		t.Errorf("Speaking = %q, want %q", s.Speaking, "Bob")
	}
}

func TestSystemInterventionDoesNotHighlight(t *testing.T) {
	s := applyAll(t, NewState(),
		initialEvent(),
		InterventionEvent{Participant: SystemSpeaker, Text: "Debate begins"},
	)
	if s.Speaking != "" {
		t.Errorf("Speaking = %q, want empty after system message", s.Speaking)
	}
	if s.Transcript[0].Type != MessageSystem {
		t.Errorf("Transcript[0].Type = %q, want %q", s.Transcript[0].Type, MessageSystem)
	}
}

func TestModeratorInterventionClassified(t *testing.T) {
	s := applyAll(t, NewState(),
		initialEvent(),
		InterventionEvent{Participant: "Mod", Text: "Strike one", Action: "sanction", Target: "Alice"},
	)
	if s.Transcript[0].Type != MessageModerator {
		t.Errorf("Transcript[0].Type = %q, want %q", s.Transcript[0].Type, MessageModerator)
	}
	mod, _ := s.Participant("Mod")
	if mod.Status != StatusSpeaking {
		t.Errorf("Mod status = %q, want %q while intervening", mod.Status, StatusSpeaking)
	}
}

func TestDecayReturnsToRest(t *testing.T) {
	s := applyAll(t, NewState(),
		initialEvent(),
		InterventionEvent{Participant: "Alice", Text: "hello"},
	)
	gen := s.SpeakGen

	s = ApplyDecay(s, gen)
	alice, _ := s.Participant("Alice")
	if alice.Status != StatusListening {
		t.Errorf("Alice status = %q, want %q after decay", alice.Status, StatusListening)
	}
	if s.Speaking != "" {
		t.Errorf("Speaking = %q, want empty after decay", s.Speaking)
	}
}

func TestStaleDecayIsIgnored(t *testing.T) {
	s := applyAll(t, NewState(),
		initialEvent(),
		InterventionEvent{Participant: "Alice", Text: "first"},
	)
	stale := s.SpeakGen

	s = Apply(s, InterventionEvent{Participant: "Alice", Text: "second"}, testTime)
	s = ApplyDecay(s, stale)

	alice, _ := s.Participant("Alice")
	if alice.Status != StatusSpeaking {
		t.Errorf("Alice status = %q, want %q; stale decay must not clear a re-armed highlight", alice.Status, StatusSpeaking)
	}

	s = ApplyDecay(s, s.SpeakGen)
	alice, _ = s.Participant("Alice")
	if alice.Status != StatusListening {
		t.Errorf("Alice status = %q, want %q after current decay", alice.Status, StatusListening)
	}
}

func TestModeratorDecaysToAdjudicating(t *testing.T) {
	s := applyAll(t, NewState(),
		initialEvent(),
		InterventionEvent{Participant: "Mod", Text: "order", Action: "warn"},
	)
	s = ApplyDecay(s, s.SpeakGen)
	mod, _ := s.Participant("Mod")
	if mod.Status != StatusAdjudicating {
		t.Errorf("Mod status = %q, want %q after decay", mod.Status, StatusAdjudicating)
	}
}

func TestFinishedEvent(t *testing.T) {
	s := applyAll(t, NewState(),
		initialEvent(),
		InterventionEvent{Participant: "Alice", Text: "closing"},
		FinishedEvent{Winner: "Alice", ResultPath: "results/d-1.json"},
	)
	if s.Phase != PhaseFinished {
		t.Errorf("Phase = %q, want %q", s.Phase, PhaseFinished)
	}
	if s.Winner != "Alice" {
		t.Errorf("Winner = %q, want %q", s.Winner, "Alice")
	}
	if s.Speaking != "" {
		t.Errorf("Speaking = %q, want empty after finish", s.Speaking)
	}
	alice, _ := s.Participant("Alice")
	if alice.Status != StatusListening {
		t.Errorf("Alice status = %q, want %q after finish", alice.Status, StatusListening)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	before := Apply(NewState(), initialEvent(), testTime)
	snapshot := before.Participants[0]

	_ = Apply(before, SanctionEvent{Participant: snapshot.Name, Strikes: 3}, testTime)

	if before.Participants[0].Strikes != snapshot.Strikes {
		t.Error("Apply mutated its input state")
	}
}

func TestUnknownParticipantEventsIgnored(t *testing.T) {
	s := applyAll(t, NewState(),
		initialEvent(),
		SanctionEvent{Participant: "Nobody", Strikes: 5},
		InterventionEvent{Participant: "Nobody", Text: "ghost"},
	)
	if s.Speaking != "" {
		t.Errorf("Speaking = %q, want empty for unknown speaker", s.Speaking)
	}
	// the transcript still records the message even if the roster does not
	// know the speaker
	if len(s.Transcript) != 1 {
		t.Errorf("len(Transcript) = %d, want 1", len(s.Transcript))
	}
}
