package engine

import (
	"math"

	"github.com/opd-ai/go-darts/pkg/config"
	"github.com/opd-ai/go-darts/pkg/geometry"
	"github.com/opd-ai/go-darts/pkg/physics"
)

// Arena is the play area the dart flies in, in play-area-local pixels.
type Arena struct {
	Width  float64
	Height float64
}

// ArenaFrom converts a measured geometry size
func ArenaFrom(size geometry.Size) Arena {
	return Arena{Width: size.Width, Height: size.Height}
}

// Boundary is the playfield edge a point has crossed
type Boundary int

const (
	BoundaryNone Boundary = iota
	BoundaryWall
	BoundaryCeiling
	BoundaryFloor
)

func (b Boundary) String() string {
	switch b {
	case BoundaryWall:
		return "wall"
	case BoundaryCeiling:
		return "ceiling"
	case BoundaryFloor:
		return "floor"
	default:
		return "none"
	}
}

// Ready reports whether the arena has a usable size
func (a Arena) Ready() bool {
	return a.Width > 0 && a.Height > 0
}

// FloorLevel is the y coordinate the dart rests on and lands at
func (a Arena) FloorLevel() float64 {
	return math.Max(config.DartRadius+config.FloorClearance, a.Height-config.DartRadius-config.FloorMargin)
}

// RestPosition is bottom center, on the floor
func (a Arena) RestPosition() physics.Vector2D {
	return physics.Vector2D{X: a.Width / 2, Y: a.FloorLevel()}
}

// Boundary classifies p. When several edges are crossed the first of
// wall, ceiling, floor wins.
func (a Arena) Boundary(p physics.Vector2D) Boundary {
	r := config.DartRadius
	switch {
	case p.X < r || p.X > a.Width-r:
		return BoundaryWall
	case p.Y < r:
		return BoundaryCeiling
	case p.Y >= a.FloorLevel():
		return BoundaryFloor
	default:
		return BoundaryNone
	}
}

// previewOutside reports whether a preview sample has left the visible field.
// The floor gets one dart radius of slack so the arc visibly touches down.
func (a Arena) previewOutside(p physics.Vector2D) bool {
	r := config.DartRadius
	return p.X < r || p.X > a.Width-r || p.Y > a.FloorLevel()+r
}
