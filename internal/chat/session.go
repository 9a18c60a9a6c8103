// Package chat keeps the transcript of one assistant conversation.
//
// A Session lives for a single detail-view visit. It is append-only and
// allows at most one outstanding assistant request: Begin records the user
// message and marks the session pending, Complete records the answer and
// clears it. Like the rest of the UI state it is owned by one event loop.
package chat

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Role tags who wrote a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// DefaultGreeting opens every new session.
const DefaultGreeting = "Hi! I can help you understand this tutorial. Ask me anything about it."

var (
	// ErrPending is returned when a turn is submitted while another is outstanding.
	ErrPending = errors.New("chat: a request is already pending")
	// ErrEmpty is returned for blank submissions.
	ErrEmpty = errors.New("chat: message is empty")
)

// Message is one transcript entry.
type Message struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Turn identifies an accepted user submission awaiting its answer.
type Turn struct {
	SessionID string
	Seq       int
	Question  string
}

// Session is an append-only transcript with a single pending slot.
type Session struct {
	id       string
	messages []Message
	pending  bool
	seq      int
}

// New starts a session. A non-empty greeting is recorded as the first
// assistant message.
func New(greeting string) *Session {
	s := &Session{id: uuid.NewString()}
	if greeting != "" {
		s.messages = append(s.messages, Message{Role: RoleAssistant, Text: greeting})
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Pending reports whether an assistant reply is outstanding.
func (s *Session) Pending() bool { return s.pending }

// Len returns the number of messages in the transcript.
func (s *Session) Len() int { return len(s.messages) }

// Messages returns a copy of the transcript.
func (s *Session) Messages() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Begin accepts a user message. The text is trimmed; blank text and
// submissions while pending are rejected without touching the transcript.
func (s *Session) Begin(text string) (Turn, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Turn{}, ErrEmpty
	}
	if s.pending {
		return Turn{}, ErrPending
	}

	s.seq++
	s.pending = true
	s.messages = append(s.messages, Message{Role: RoleUser, Text: text})
	return Turn{SessionID: s.id, Seq: s.seq, Question: text}, nil
}

// Complete appends the answer for turn and clears the pending flag. It
// returns false, changing nothing, when turn is not this session's
// outstanding one.
func (s *Session) Complete(turn Turn, answer string) bool {
	if !s.pending || turn.SessionID != s.id || turn.Seq != s.seq {
		return false
	}
	s.pending = false
	s.messages = append(s.messages, Message{Role: RoleAssistant, Text: answer})
	return true
}
