// Package input turns raw pointer button state into aim calls. Front ends
// report every pointer sample, already converted to play-area pixels.
package input

import (
	"github.com/opd-ai/go-darts/pkg/physics"
)

// Aimer is the part of the engine a pointer drives
type Aimer interface {
	Touches(p physics.Vector2D) bool
	BeginAim(p physics.Vector2D) bool
	UpdateAim(p physics.Vector2D)
	EndAim(p physics.Vector2D) bool
	CancelAim()
}

// Tracker follows one pointer. A press only starts an aim when it lands on
// the dart; presses elsewhere are ignored until the button is released.
type Tracker struct {
	aimer    Aimer
	down     bool
	dragging bool
	last     physics.Vector2D
}

// NewTracker creates a tracker driving aimer
func NewTracker(aimer Aimer) *Tracker {
	return &Tracker{aimer: aimer}
}

// Dragging reports whether an aim started by this tracker is in progress
func (t *Tracker) Dragging() bool {
	return t.dragging
}

// Last returns the most recent pointer position
func (t *Tracker) Last() physics.Vector2D {
	return t.last
}

// Press handles the button going down at p
func (t *Tracker) Press(p physics.Vector2D) {
	t.last = p
	if t.down {
		return
	}
	t.down = true
	if !t.aimer.Touches(p) {
		return
	}
	t.dragging = t.aimer.BeginAim(p)
}

// Move handles pointer motion
func (t *Tracker) Move(p physics.Vector2D) {
	t.last = p
	if t.dragging {
		t.aimer.UpdateAim(p)
	}
}

// Release handles the button coming up at p and reports whether a shot was fired
func (t *Tracker) Release(p physics.Vector2D) bool {
	t.last = p
	t.down = false
	if !t.dragging {
		return false
	}
	t.dragging = false
	return t.aimer.EndAim(p)
}

// Sample feeds a pointer position together with the current button state,
// for sources that report state rather than edges.
func (t *Tracker) Sample(p physics.Vector2D, pressed bool) {
	switch {
	case pressed && !t.down:
		t.Press(p)
	case !pressed && t.down:
		t.Release(p)
	case p != t.last:
		t.Move(p)
	}
}

// Cancel abandons a drag, e.g. when the pointer leaves the window
func (t *Tracker) Cancel() {
	t.down = false
	if t.dragging {
		t.dragging = false
		t.aimer.CancelAim()
	}
}
