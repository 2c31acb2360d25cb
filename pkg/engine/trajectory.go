package engine

import (
	"math"

	"github.com/opd-ai/go-darts/pkg/config"
	"github.com/opd-ai/go-darts/pkg/physics"
)

// TrajectoryPoint is one sample of the aiming preview
type TrajectoryPoint struct {
	X       float64
	Y       float64
	Opacity float64
}

// ClampPull limits a drag vector to the maximum pull distance, keeping its direction.
func ClampPull(drag physics.Vector2D) physics.Vector2D {
	return drag.ClampLength(config.MaxPull)
}

// LaunchVelocity turns a drag vector into the dart's initial velocity: the
// clamped pull, reversed and scaled by the power constant. ok is false when
// the drag is too short to fire.
func LaunchVelocity(drag physics.Vector2D) (v physics.Vector2D, ok bool) {
	if drag.Length() < config.MinFireDistance {
		return physics.Vector2D{}, false
	}
	return ClampPull(drag).Negate().Scale(config.PowerScale), true
}

// PredictTrajectory samples the path a dart launched from anchor with the
// given drag would follow. It stops at the first sample outside the arena and
// returns nothing inside the dead zone or for non-finite drags.
func PredictTrajectory(anchor, drag physics.Vector2D, arena Arena) []TrajectoryPoint {
	dist := drag.Length()
	if dist < config.PreviewDeadZone || math.IsNaN(dist) || math.IsInf(dist, 0) {
		return nil
	}
	v := ClampPull(drag).Negate().Scale(config.PowerScale)

	points := make([]TrajectoryPoint, 0, config.PreviewSteps)
	for i := 1; i <= config.PreviewSteps; i++ {
		t := config.PreviewStepTime * float64(i)
		p := physics.PositionAt(anchor, v, config.Gravity, t)
		if arena.previewOutside(p) {
			break
		}
		points = append(points, TrajectoryPoint{
			X:       p.X,
			Y:       p.Y,
			Opacity: math.Max(0, 1-float64(i)/float64(config.PreviewSteps+2)),
		})
	}
	return points
}
