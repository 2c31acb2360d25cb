package engine

import (
	"github.com/opd-ai/go-darts/pkg/config"
	"github.com/opd-ai/go-darts/pkg/entity"
	"github.com/opd-ai/go-darts/pkg/physics"
)

// AimLine is the rubber band drawn from the anchor while aiming
type AimLine struct {
	Anchor physics.Vector2D
	Drag   physics.Vector2D
	Length float64 // px, capped at the max pull
	Angle  float64 // radians
}

// TargetView is a target as it should be drawn this frame
type TargetView struct {
	entity.Target
	Bounds      physics.Rect
	Placed      bool
	Highlighted bool
}

// Frame is a read-only snapshot of everything a front end draws
type Frame struct {
	State   State
	Arena   Arena
	Ready   bool
	Dart    entity.Dart
	Aim     *AimLine
	Preview []TrajectoryPoint
	Targets []TargetView
	Toasts  []entity.Toast

	// Hint is true while the dart waits at rest to be picked up
	Hint bool
}

// Frame builds a snapshot of the current state. Target bounds are queried
// from geometry now, like every other lookup.
func (e *Engine) Frame() Frame {
	arena, ready := e.arena()
	f := Frame{
		State:   e.state,
		Arena:   arena,
		Ready:   ready && e.placed,
		Dart:    e.dart,
		Preview: e.Preview(),
		Toasts:  e.Toasts(),
		Hint:    e.state == StateIdle && ready && e.placed && !e.closed,
	}

	if e.aim != nil {
		f.Aim = &AimLine{
			Anchor: e.aim.anchor,
			Drag:   e.aim.drag,
			Length: ClampPull(e.aim.drag).Length(),
			Angle:  e.aim.drag.Angle(),
		}
	}

	for _, t := range e.registry.Targets() {
		bounds, ok := e.geo.TargetBounds(t.ID)
		f.Targets = append(f.Targets, TargetView{
			Target:      t,
			Bounds:      bounds,
			Placed:      ok,
			Highlighted: t.ID == e.highlight,
		})
	}
	return f
}

// PullFraction is how much of the max pull the aim uses, in [0,1]
func (a AimLine) PullFraction() float64 {
	return a.Length / config.MaxPull
}
