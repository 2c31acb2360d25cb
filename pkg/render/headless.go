package render

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/opd-ai/go-darts/pkg/clock"
	"github.com/opd-ai/go-darts/pkg/engine"
	"github.com/opd-ai/go-darts/pkg/physics"
)

var ErrDartUnavailable = errors.New("dart is not ready to be picked up")

// PullResult is the outcome of one scripted throw
type PullResult struct {
	Pull     physics.Vector2D
	Fired    bool
	TargetID string
	Duration time.Duration
}

// Script throws the dart without a window. Each pull is a drag vector
// applied from the resting dart; after release the clock runs in fixed steps
// until the dart is idle again.
type Script struct {
	Engine   *engine.Engine
	Loop     *clock.Loop
	Renderer Renderer
	Step     time.Duration
	MaxWait  time.Duration
}

// Run plays pulls in order. It stops early if ctx is cancelled or the dart
// cannot be picked up.
func (s *Script) Run(ctx context.Context, pulls []physics.Vector2D) ([]PullResult, error) {
	step := s.Step
	if step <= 0 {
		step = 16 * time.Millisecond
	}
	maxWait := s.MaxWait
	if maxWait <= 0 {
		maxWait = 5 * time.Second
	}

	results := make([]PullResult, 0, len(pulls))
	for i, pull := range pulls {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		anchor := s.Engine.Dart().Position
		if !s.Engine.Touches(anchor) || !s.Engine.BeginAim(anchor) {
			return results, fmt.Errorf("pull %d: %w", i, ErrDartUnavailable)
		}
		s.Engine.UpdateAim(anchor.Add(pull))
		s.draw()

		res := PullResult{Pull: pull, Fired: s.Engine.EndAim(anchor.Add(pull))}
		start := s.Loop.Now()
		for res.Fired && s.Engine.State() != engine.StateIdle {
			if s.Loop.Now()-start >= maxWait {
				break
			}
			s.Loop.Advance(s.Loop.Now() + step)
			s.draw()
		}
		if res.Fired {
			res.TargetID, _ = s.Engine.FlightHit()
		}
		res.Duration = s.Loop.Now() - start
		results = append(results, res)
	}
	return results, nil
}

func (s *Script) draw() {
	if s.Renderer != nil {
		s.Renderer.Draw(s.Engine.Frame())
	}
}

// ParsePulls reads drag vectors written as "x,y" pairs separated by ';'
func ParsePulls(s string) ([]physics.Vector2D, error) {
	var pulls []physics.Vector2D
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		xy := strings.Split(part, ",")
		if len(xy) != 2 {
			return nil, fmt.Errorf("pull %q: expected x,y", part)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xy[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("pull %q: %w", part, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(xy[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("pull %q: %w", part, err)
		}
		pulls = append(pulls, physics.Vector2D{X: x, Y: y})
	}
	return pulls, nil
}
