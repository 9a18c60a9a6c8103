// Package ui provides the Bubble Tea TUI for tutoriais.
package ui

import (
	"github.com/abelbrown/tutoriais/internal/chat"
	"github.com/abelbrown/tutoriais/internal/session"
)

// SummaryLoaded is sent when a summary request finishes. Summary is "" when
// the assistant had nothing to offer; the excerpt is shown instead.
type SummaryLoaded struct {
	ItemID     string
	Activation session.Activation // dropped unless still current
	Summary    string
}

// AnswerReceived is sent when the assistant answers a chat turn.
type AnswerReceived struct {
	Turn   chat.Turn // identifies session and sequence for stale-check
	Answer string
}
