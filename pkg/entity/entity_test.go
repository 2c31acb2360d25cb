// pkg/entity/entity_test.go
package entity

import (
	"math"
	"testing"

	"github.com/opd-ai/go-darts/pkg/config"
	"github.com/opd-ai/go-darts/pkg/physics"
)

func TestNewDart_RestsAtAngle(t *testing.T) {
	d := NewDart(physics.Vector2D{X: 200, Y: 554})

	if d.Position != (physics.Vector2D{X: 200, Y: 554}) {
		t.Errorf("Position = %v", d.Position)
	}
	if d.Velocity != (physics.Vector2D{}) {
		t.Errorf("Velocity = %v, expected zero", d.Velocity)
	}
	if d.Rotation != config.RestRotation {
		t.Errorf("Rotation = %v, expected %v", d.Rotation, config.RestRotation)
	}
}

func TestDart_GetCollider(t *testing.T) {
	d := NewDart(physics.Vector2D{X: 10, Y: 20})
	c := d.GetCollider()

	if c.Center != d.Position || c.Radius != config.DartRadius {
		t.Errorf("GetCollider() = %+v", c)
	}
}

func TestDart_Advance(t *testing.T) {
	tests := []struct {
		name         string
		velocity     physics.Vector2D
		dt           float64
		wantPosition physics.Vector2D
		wantVelocity physics.Vector2D
		wantRotation float64
	}{
		{
			name:         "horizontal_starts_falling",
			velocity:     physics.Vector2D{X: 900, Y: 0},
			dt:           0.1,
			wantPosition: physics.Vector2D{X: 90, Y: 0},
			wantVelocity: physics.Vector2D{X: 900, Y: 180},
			wantRotation: math.Atan2(180, 900) * 180 / math.Pi,
		},
		{
			name:         "straight_up",
			velocity:     physics.Vector2D{X: 0, Y: -1980},
			dt:           0.01,
			wantPosition: physics.Vector2D{X: 0, Y: -19.8},
			wantVelocity: physics.Vector2D{X: 0, Y: -1962},
			wantRotation: -90,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDart(physics.Vector2D{})
			d.Velocity = tt.velocity

			next := d.Advance(tt.dt, config.Gravity)

			if math.Abs(next.X-tt.wantPosition.X) > 1e-9 || math.Abs(next.Y-tt.wantPosition.Y) > 1e-9 {
				t.Errorf("next = %v, expected %v", next, tt.wantPosition)
			}
			if d.Position != (physics.Vector2D{}) {
				t.Errorf("Advance must not commit position, got %v", d.Position)
			}
			if math.Abs(d.Velocity.X-tt.wantVelocity.X) > 1e-9 || math.Abs(d.Velocity.Y-tt.wantVelocity.Y) > 1e-9 {
				t.Errorf("Velocity = %v, expected %v", d.Velocity, tt.wantVelocity)
			}
			if math.Abs(d.Rotation-tt.wantRotation) > 1e-9 {
				t.Errorf("Rotation = %v, expected %v", d.Rotation, tt.wantRotation)
			}
		})
	}
}

func TestDart_Rest(t *testing.T) {
	d := Dart{
		Position: physics.Vector2D{X: 5, Y: 5},
		Velocity: physics.Vector2D{X: 300, Y: -20},
		Rotation: 12,
	}

	d.Rest(physics.Vector2D{X: 200, Y: 554})

	if d != NewDart(physics.Vector2D{X: 200, Y: 554}) {
		t.Errorf("Rest() left %+v", d)
	}
}
