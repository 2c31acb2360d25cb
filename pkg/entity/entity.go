// pkg/entity/entity.go
package entity

import (
	"github.com/opd-ai/go-darts/pkg/config"
	"github.com/opd-ai/go-darts/pkg/physics"
)

// Dart is the single projectile of the game
type Dart struct {
	Position physics.Vector2D
	Velocity physics.Vector2D
	Rotation float64 // degrees, visual only
}

// NewDart creates a dart resting at pos
func NewDart(pos physics.Vector2D) Dart {
	return Dart{
		Position: pos,
		Rotation: config.RestRotation,
	}
}

// GetCollider returns the dart's collision shape
func (d *Dart) GetCollider() physics.Circle {
	return physics.Circle{
		Center: d.Position,
		Radius: config.DartRadius,
	}
}

// Advance integrates one step of flight under gravity g. The new position is
// returned rather than committed so the caller can run collision checks
// first; velocity and rotation are updated in place.
func (d *Dart) Advance(dt, g float64) physics.Vector2D {
	next, v := physics.Integrate(d.Position, d.Velocity, g, dt)
	d.Velocity = v
	d.Rotation = v.AngleDegrees()
	return next
}

// Rest puts the dart back at pos, motionless and at its resting angle
func (d *Dart) Rest(pos physics.Vector2D) {
	*d = NewDart(pos)
}

// Target is a board that navigates somewhere when hit
type Target struct {
	ID    string
	Label string
	Color string
}

// Toast is a transient "Bullseye!" notification
type Toast struct {
	ID       string
	TargetID string
	Label    string
}
