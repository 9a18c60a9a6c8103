package activity

import (
	"time"

	"github.com/abelbrown/tutoriais/internal/logging"
)

// Recorder stamps events, keeps them in a Ring and mirrors them to the log.
// A nil *Recorder discards everything, so callers never need to check.
type Recorder struct {
	ring *Ring
	now  func() time.Time
}

// NewRecorder creates a Recorder with a ring of the given size.
func NewRecorder(size int) *Recorder {
	return &Recorder{ring: NewRing(size), now: time.Now}
}

// Record stores e. Safe for concurrent use.
func (r *Recorder) Record(e Event) {
	if r == nil {
		return
	}
	if e.Time.IsZero() {
		e.Time = r.now()
	}
	r.ring.Push(e)

	keyvals := []interface{}{"kind", string(e.Kind)}
	if e.ItemID != "" {
		keyvals = append(keyvals, "item", e.ItemID)
	}
	if e.SessionID != "" {
		keyvals = append(keyvals, "chat", e.SessionID)
	}
	if e.Activation != 0 {
		keyvals = append(keyvals, "activation", e.Activation)
	}
	if e.Dur > 0 {
		keyvals = append(keyvals, "dur", e.Dur)
	}
	if e.Msg != "" {
		keyvals = append(keyvals, "msg", e.Msg)
	}
	logging.Debug("activity", keyvals...)
}

// Ring exposes the underlying buffer for display. Nil for a nil Recorder.
func (r *Recorder) Ring() *Ring {
	if r == nil {
		return nil
	}
	return r.ring
}
