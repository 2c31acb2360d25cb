// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-darts/pkg/engine"
	"github.com/opd-ai/go-darts/pkg/logging"
)

// Renderer draws one engine snapshot. Front ends call Draw once per frame
// after advancing the clock.
type Renderer interface {
	Draw(frame engine.Frame)
}

// NullRenderer is a Renderer that only logs what it would draw. It backs the
// headless front end.
type NullRenderer struct {
	logger *logging.Logger
	last   engine.State
	drawn  int
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.NewLogger()
	}
	return &NullRenderer{
		logger: logger,
		last:   engine.StateIdle,
	}
}

// Frames returns how many frames have been drawn
func (d *NullRenderer) Frames() int {
	return d.drawn
}

// Draw implements Renderer.
func (d *NullRenderer) Draw(frame engine.Frame) {
	ctx := context.Background()
	d.drawn++

	if !frame.Ready {
		d.logger.Debug(ctx, "Draw called before layout")
		return
	}

	if frame.State != d.last {
		d.logger.Info(ctx, "State changed",
			"from", d.last.String(),
			"to", frame.State.String(),
			"dart_x", frame.Dart.Position.X,
			"dart_y", frame.Dart.Position.Y,
		)
		d.last = frame.State
	}

	d.logger.Debug(ctx, "Draw called",
		"state", frame.State.String(),
		"dart_x", frame.Dart.Position.X,
		"dart_y", frame.Dart.Position.Y,
		"rotation", frame.Dart.Rotation,
		"preview_points", len(frame.Preview),
		"toasts", len(frame.Toasts),
	)
}

var _ Renderer = (*NullRenderer)(nil)
