package ecs

import "sort"

type deferredCall struct {
	due float64
	seq uint64
	fn  func()
}

// Timeline runs one-shot callbacks at a later point on the clock. It is driven
// from the main loop, so callbacks run on the same thread as the systems.
type Timeline struct {
	clock   *Clock
	pending []deferredCall
	seq     uint64
}

func NewTimeline(clock *Clock) *Timeline {
	return &Timeline{clock: clock}
}

// CallAfter schedules fn to run once the clock has advanced delaySeconds.
// Negative delays are treated as zero.
func (t *Timeline) CallAfter(delaySeconds float64, fn func()) {
	if fn == nil {
		return
	}
	if delaySeconds < 0 {
		delaySeconds = 0
	}
	t.seq++
	t.pending = append(t.pending, deferredCall{
		due: t.clock.Time() + delaySeconds,
		seq: t.seq,
		fn:  fn,
	})
}

// Advance runs every callback due at or before the current clock time, in due
// order. Callbacks scheduled while advancing wait for the next call.
func (t *Timeline) Advance() {
	if len(t.pending) == 0 {
		return
	}
	now := t.clock.Time()

	var due, later []deferredCall
	for _, call := range t.pending {
		if call.due <= now {
			due = append(due, call)
		} else {
			later = append(later, call)
		}
	}
	if len(due) == 0 {
		return
	}
	t.pending = later

	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})
	for _, call := range due {
		call.fn()
	}
}

// Reset drops every pending callback.
func (t *Timeline) Reset() {
	t.pending = nil
}

// Pending returns the number of callbacks waiting to run.
func (t *Timeline) Pending() int {
	return len(t.pending)
}
