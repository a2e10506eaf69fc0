package ecs

import (
	"slices"
	"time"
)

// Clock tells timers what time it is.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

type TimerID uint64

type timer struct {
	id TimerID
	at time.Time
	fn func()
}

// Timers holds wall-clock callbacks owned by a single run. Callbacks only
// run from Poll, on the caller's goroutine. After Close nothing fires.
type Timers struct {
	clock   Clock
	next    TimerID
	pending map[TimerID]*timer
	closed  bool
}

func NewTimers(clock Clock) *Timers {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Timers{clock: clock, pending: make(map[TimerID]*timer)}
}

// After schedules fn to run on the first Poll at least d from now. It
// returns 0 once the timers are closed.
func (t *Timers) After(d time.Duration, fn func()) TimerID {
	if t == nil || t.closed || fn == nil {
		return 0
	}
	t.next++
	id := t.next
	t.pending[id] = &timer{id: id, at: t.clock.Now().Add(d), fn: fn}
	return id
}

// Cancel drops a pending timer and reports whether it was still pending.
func (t *Timers) Cancel(id TimerID) bool {
	if t == nil || id == 0 {
		return false
	}
	if _, ok := t.pending[id]; !ok {
		return false
	}
	delete(t.pending, id)
	return true
}

// Poll fires every due timer in deadline order and returns how many ran.
func (t *Timers) Poll() int {
	if t == nil || t.closed || len(t.pending) == 0 {
		return 0
	}

	now := t.clock.Now()
	var due []*timer
	for _, tm := range t.pending {
		if !tm.at.After(now) {
			due = append(due, tm)
		}
	}
	slices.SortFunc(due, func(a, b *timer) int {
		if c := a.at.Compare(b.at); c != 0 {
			return c
		}
		return int(a.id) - int(b.id)
	})

	fired := 0
	for _, tm := range due {
		// an earlier callback may have cancelled this one or closed us
		if t.closed {
			break
		}
		if _, ok := t.pending[tm.id]; !ok {
			continue
		}
		delete(t.pending, tm.id)
		tm.fn()
		fired++
	}
	return fired
}

func (t *Timers) Pending() int {
	if t == nil {
		return 0
	}
	return len(t.pending)
}

// Close cancels everything pending. Idempotent.
func (t *Timers) Close() {
	if t == nil {
		return
	}
	t.closed = true
	clear(t.pending)
}
