package engine

import (
	"time"

	"github.com/opd-ai/go-darts/pkg/config"
	"github.com/opd-ai/go-darts/pkg/entity"
	"github.com/opd-ai/go-darts/pkg/event"
	"github.com/opd-ai/go-darts/pkg/physics"
)

// step runs one animation frame of an active flight
func (e *Engine) step(ts time.Duration) {
	e.frame = 0
	if e.state != StateInFlight {
		return
	}

	// the first frame only fixes the time base
	if !e.ticking {
		e.ticking = true
		e.lastTick = ts
		e.flightStart = ts
		e.requestFrame()
		return
	}

	dt := (ts - e.lastTick).Seconds()
	e.lastTick = ts
	elapsed := ts - e.flightStart

	if elapsed > config.MaxFlightDuration {
		e.timeout()
		return
	}

	arena, ok := e.arena()
	if !ok {
		// hold position until the play area is measured again
		e.requestFrame()
		return
	}

	next := e.dart.Advance(dt, config.Gravity)

	switch arena.Boundary(next) {
	case BoundaryWall:
		e.miss(event.MissWall, next)
		return
	case BoundaryCeiling:
		e.miss(event.MissCeiling, next)
		return
	case BoundaryFloor:
		next.Y = arena.FloorLevel()
		e.dart.Position = next
		e.miss(event.MissFloor, next)
		return
	}

	e.dart.Position = next
	if t, ok := e.registry.HitTest(next); ok {
		e.handleHit(t)
		return
	}
	e.requestFrame()
}

// miss ends the flight without a hit and schedules the reset
func (e *Engine) miss(reason event.MissReason, at physics.Vector2D) {
	e.cancelFrame()
	e.state = StateResolving

	e.log.Info(e.ctx, "shot missed", "reason", string(reason), "x", at.X, "y", at.Y)
	e.bus.Publish(event.NewMissEvent(e, e.flightID, reason, at.X, at.Y))
	e.cues.Miss()

	e.actions.schedule(actionReset, config.MissResetDelay, e.reset)
}

// timeout force-terminates a flight that ran past the cap
func (e *Engine) timeout() {
	pos := e.dart.Position
	e.log.Warn(e.ctx, "flight exceeded maximum duration", "x", pos.X, "y", pos.Y)
	e.bus.Publish(event.NewMissEvent(e, e.flightID, event.MissTimeout, pos.X, pos.Y))
	e.cues.Miss()
	e.reset()
}

// handleHit resolves a hit on t. Only the first hit of a flight counts.
func (e *Engine) handleHit(t entity.Target) {
	if e.hit {
		return
	}
	e.hit = true
	e.flightHit = t.ID
	e.cancelFrame()
	e.state = StateResolving

	e.log.Info(e.ctx, "target reached", "target_id", t.ID, "label", t.Label)
	e.bus.Publish(event.NewTargetEvent(e, e.flightID, t.ID, t.Label))
	e.cues.Hit()
	if e.nav != nil {
		e.nav.Navigate(e.ctx, t)
	}

	e.highlight = t.ID
	e.actions.schedule(actionHighlight, config.HighlightDuration, func() {
		e.highlight = ""
	})
	e.pushToast(t)
	e.actions.schedule(actionReset, config.HitResetDelay, e.reset)
}

func (e *Engine) pushToast(t entity.Target) {
	toast := entity.Toast{ID: e.newID(), TargetID: t.ID, Label: t.Label}
	e.toasts = append(e.toasts, toast)
	e.bus.Publish(event.NewToastEvent(event.ToastShown, e, toast.ID, toast.TargetID, toast.Label))

	e.actions.schedule(toastAction(toast.ID), config.ToastLifetime, e.expireToast)
}

// expireToast drops the oldest toast
func (e *Engine) expireToast() {
	if len(e.toasts) == 0 {
		return
	}
	oldest := e.toasts[0]
	e.toasts = e.toasts[1:]
	e.bus.Publish(event.NewToastEvent(event.ToastExpired, e, oldest.ID, oldest.TargetID, oldest.Label))
}
