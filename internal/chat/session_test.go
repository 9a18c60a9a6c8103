package chat

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewWithGreeting(t *testing.T) {
	s := New(DefaultGreeting)

	msgs := s.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected greeting only, got %d messages", len(msgs))
	}
	if msgs[0].Role != RoleAssistant || msgs[0].Text != DefaultGreeting {
		t.Errorf("unexpected greeting: %+v", msgs[0])
	}
	if s.Pending() {
		t.Error("new session should not be pending")
	}
	if s.ID() == "" {
		t.Error("session should have an ID")
	}
}

func TestNewWithoutGreeting(t *testing.T) {
	if n := New("").Len(); n != 0 {
		t.Errorf("expected empty transcript, got %d", n)
	}
}

func TestSessionIDsAreUnique(t *testing.T) {
	if New("").ID() == New("").ID() {
		t.Error("two sessions share an ID")
	}
}

func TestTurnAppendsExactlyTwo(t *testing.T) {
	s := New(DefaultGreeting)
	before := s.Len()

	turn, err := s.Begin("  What is useState?  ")
	if err != nil {
		t.Fatalf("Begin error: %v", err)
	}
	if !s.Pending() {
		t.Error("session should be pending after Begin")
	}
	if turn.Question != "What is useState?" {
		t.Errorf("question should be trimmed, got %q", turn.Question)
	}

	if !s.Complete(turn, "A hook for state.") {
		t.Fatal("Complete should accept the outstanding turn")
	}
	if s.Pending() {
		t.Error("session should not be pending after Complete")
	}
	if got := s.Len() - before; got != 2 {
		t.Errorf("turn should add exactly 2 messages, added %d", got)
	}

	want := []Message{
		{Role: RoleAssistant, Text: DefaultGreeting},
		{Role: RoleUser, Text: "What is useState?"},
		{Role: RoleAssistant, Text: "A hook for state."},
	}
	if diff := cmp.Diff(want, s.Messages()); diff != "" {
		t.Errorf("transcript mismatch (-want +got):\n%s", diff)
	}
}

func TestBeginWhilePendingIsRejected(t *testing.T) {
	s := New("")
	turn, err := s.Begin("first")
	if err != nil {
		t.Fatalf("Begin error: %v", err)
	}

	_, err = s.Begin("second")
	if !errors.Is(err, ErrPending) {
		t.Errorf("expected ErrPending, got %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("rejected submission must not be recorded, have %d messages", s.Len())
	}

	s.Complete(turn, "answer")
	if _, err := s.Begin("second"); err != nil {
		t.Errorf("Begin after Complete should succeed, got %v", err)
	}
}

func TestBeginEmpty(t *testing.T) {
	s := New("")
	for _, text := range []string{"", "   ", "\n\t"} {
		if _, err := s.Begin(text); !errors.Is(err, ErrEmpty) {
			t.Errorf("Begin(%q) = %v, want ErrEmpty", text, err)
		}
	}
	if s.Len() != 0 || s.Pending() {
		t.Error("blank submissions must not change the session")
	}
}

func TestCompleteStaleTurn(t *testing.T) {
	s := New("")
	other := New("")

	turn, _ := other.Begin("elsewhere")
	if s.Complete(turn, "nope") {
		t.Error("turn from another session must be ignored")
	}

	mine, _ := s.Begin("mine")
	if !s.Complete(mine, "ok") {
		t.Fatal("own turn should complete")
	}
	if s.Complete(mine, "again") {
		t.Error("completing twice must be a no-op")
	}
	if s.Len() != 2 {
		t.Errorf("expected 2 messages, got %d", s.Len())
	}
}

func TestMessagesIsCopy(t *testing.T) {
	s := New(DefaultGreeting)
	msgs := s.Messages()
	msgs[0].Text = "changed"
	if s.Messages()[0].Text != DefaultGreeting {
		t.Error("Messages must return a copy")
	}
}
