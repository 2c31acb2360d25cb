// Package clock provides the cooperative scheduler that drives the dart
// simulation. Nothing in here starts goroutines: the owner calls Advance with
// a monotonically increasing timestamp (a real frame clock in front ends, a
// synthetic one in tests) and every due callback runs on the caller's goroutine.
package clock

import (
	"sort"
	"time"
)

// Handle identifies a pending frame request or timer. The zero Handle is never issued.
type Handle uint64

// FrameFunc receives the timestamp of the frame it was scheduled for
type FrameFunc func(ts time.Duration)

type timer struct {
	handle   Handle
	deadline time.Duration
	fn       func()
}

type frame struct {
	handle Handle
	fn     FrameFunc
}

// Loop is a single-threaded frame and timer scheduler. It is not safe for
// concurrent use.
type Loop struct {
	now    time.Duration
	next   Handle
	frames []frame
	timers []timer

	// frames of the batch currently being run by Advance
	running []frame
}

// NewLoop creates a loop whose clock starts at zero
func NewLoop() *Loop {
	return &Loop{}
}

// Now returns the timestamp of the last Advance
func (l *Loop) Now() time.Duration {
	return l.now
}

func (l *Loop) issue() Handle {
	l.next++
	return l.next
}

// RequestFrame schedules fn to run once on the next Advance
func (l *Loop) RequestFrame(fn FrameFunc) Handle {
	h := l.issue()
	l.frames = append(l.frames, frame{handle: h, fn: fn})
	return h
}

// CancelFrame drops a pending frame request. Unknown handles are ignored.
func (l *Loop) CancelFrame(h Handle) {
	for i, f := range l.frames {
		if f.handle == h {
			l.frames = append(l.frames[:i], l.frames[i+1:]...)
			return
		}
	}
	for i := range l.running {
		if l.running[i].handle == h {
			l.running[i].fn = nil
			return
		}
	}
}

// AfterFunc schedules fn to run once the clock reaches Now()+d
func (l *Loop) AfterFunc(d time.Duration, fn func()) Handle {
	h := l.issue()
	l.timers = append(l.timers, timer{handle: h, deadline: l.now + d, fn: fn})
	return h
}

// Stop cancels a pending timer and reports whether it was still pending
func (l *Loop) Stop(h Handle) bool {
	for i, t := range l.timers {
		if t.handle == h {
			l.timers = append(l.timers[:i], l.timers[i+1:]...)
			return true
		}
	}
	return false
}

// Pending returns the number of scheduled frames and timers
func (l *Loop) Pending() (frames, timers int) {
	return len(l.frames), len(l.timers)
}

// Advance moves the clock to ts. Timers due at or before ts fire first, in
// deadline order (ties in scheduling order), including timers scheduled by
// other timers that are already due. Then every frame requested before this
// call runs once with ts; frames requested from inside a frame wait for the
// next Advance. A ts earlier than Now() is treated as Now().
func (l *Loop) Advance(ts time.Duration) {
	if ts > l.now {
		l.now = ts
	}

	for {
		t, ok := l.popDue()
		if !ok {
			break
		}
		t.fn()
	}

	l.running = l.frames
	l.frames = nil
	for i := range l.running {
		if fn := l.running[i].fn; fn != nil {
			fn(l.now)
		}
	}
	l.running = nil
}

func (l *Loop) popDue() (timer, bool) {
	if len(l.timers) == 0 {
		return timer{}, false
	}
	sort.SliceStable(l.timers, func(i, j int) bool {
		if l.timers[i].deadline != l.timers[j].deadline {
			return l.timers[i].deadline < l.timers[j].deadline
		}
		return l.timers[i].handle < l.timers[j].handle
	})
	if l.timers[0].deadline > l.now {
		return timer{}, false
	}
	t := l.timers[0]
	l.timers = l.timers[1:]
	return t, true
}
