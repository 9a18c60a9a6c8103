// Package activity keeps a short in-memory history of what the program did:
// route changes, searches and assistant calls. The TUI shows it in its debug
// overlay; every event is also mirrored to the file logger.
package activity

import "time"

// Kind identifies an event. Dot-delimited: "<subsystem>.<action>".
type Kind string

const (
	KindSummaryStart    Kind = "summary.start"
	KindSummaryComplete Kind = "summary.complete"
	KindSummaryEmpty    Kind = "summary.empty"
	KindSummaryStale    Kind = "summary.stale"

	KindAskStart    Kind = "ask.start"
	KindAskComplete Kind = "ask.complete"
	KindAskStale    Kind = "ask.stale"

	KindRoute    Kind = "nav.route"
	KindNotFound Kind = "nav.not_found"
	KindSearch   Kind = "nav.search"
	KindFilter   Kind = "nav.filter"

	KindStartup  Kind = "sys.startup"
	KindShutdown Kind = "sys.shutdown"
)

// Event is one activity record. Only Kind is required; Record fills Time.
type Event struct {
	Time       time.Time
	Kind       Kind
	ItemID     string
	SessionID  string // chat session, for ask.* events
	Activation uint64 // detail activation, for summary.* events
	Dur        time.Duration
	Msg        string
}
