package activity

import "sync"

// DefaultRingSize is the default ring capacity.
const DefaultRingSize = 256

// Ring is a fixed-size circular buffer of Events.
// Goroutine-safe. The TUI records from its Update loop; the lock lets
// other goroutines read a snapshot concurrently.
type Ring struct {
	mu    sync.Mutex
	buf   []Event
	size  int
	head  int // next write position
	count int // valid entries (0..size)
}

// NewRing creates a ring with the given capacity.
func NewRing(size int) *Ring {
	if size <= 0 {
		size = DefaultRingSize
	}
	return &Ring{
		buf:  make([]Event, size),
		size: size,
	}
}

// Push adds an event, overwriting the oldest when full.
func (r *Ring) Push(e Event) {
	r.mu.Lock()
	r.buf[r.head] = e
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
	r.mu.Unlock()
}

// Last returns the n most recent events, oldest first.
// n larger than Len returns everything; n <= 0 returns nil.
func (r *Ring) Last(n int) []Event {
	if n <= 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.count == 0 {
		return nil
	}
	if n > r.count {
		n = r.count
	}

	out := make([]Event, n)
	start := (r.head - n + r.size) % r.size
	if start+n <= r.size {
		copy(out, r.buf[start:start+n])
	} else {
		first := r.size - start
		copy(out, r.buf[start:])
		copy(out[first:], r.buf[:n-first])
	}
	return out
}

// Len returns the number of buffered events.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Cap returns the ring capacity.
func (r *Ring) Cap() int {
	return r.size
}

// Counts tallies buffered events by Kind.
func (r *Ring) Counts() map[Kind]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[Kind]int)
	start := 0
	if r.count >= r.size {
		start = r.head
	}
	for i := 0; i < r.count; i++ {
		counts[r.buf[(start+i)%r.size].Kind]++
	}
	return counts
}
