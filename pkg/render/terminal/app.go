// Package terminal runs the dart game inside a terminal using tcell. Mouse
// cells are mapped to play-area pixels through a Viewport so the engine never
// sees terminal coordinates.
package terminal

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-darts/pkg/clock"
	"github.com/opd-ai/go-darts/pkg/engine"
	"github.com/opd-ai/go-darts/pkg/geometry"
	"github.com/opd-ai/go-darts/pkg/input"
	"github.com/opd-ai/go-darts/pkg/logging"
)

var ErrNoScreen = errors.New("terminal app requires a screen")

// Options configures an App
type Options struct {
	Screen    tcell.Screen
	Engine    *engine.Engine
	Loop      *clock.Loop
	Layout    *geometry.Layout
	TargetIDs []string
	Viewport  Viewport
	FrameRate int
	Logger    *logging.Logger
}

// App owns the screen and feeds terminal events into the engine
type App struct {
	screen  tcell.Screen
	engine  *engine.Engine
	loop    *clock.Loop
	layout  *geometry.Layout
	ids     []string
	view    Viewport
	tracker *input.Tracker
	painter *Painter
	log     *logging.Logger
	period  time.Duration
}

// NewApp wires an App. The screen is initialised by Run, not here.
func NewApp(opts Options) (*App, error) {
	if opts.Screen == nil {
		return nil, ErrNoScreen
	}
	if opts.Engine == nil || opts.Loop == nil || opts.Layout == nil {
		return nil, errors.New("terminal app requires engine, loop and layout")
	}
	if opts.Viewport.CellWidth <= 0 || opts.Viewport.CellHeight <= 0 {
		opts.Viewport = Viewport{CellWidth: 8, CellHeight: 16}
	}
	if opts.FrameRate <= 0 {
		opts.FrameRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	return &App{
		screen:  opts.Screen,
		engine:  opts.Engine,
		loop:    opts.Loop,
		layout:  opts.Layout,
		ids:     opts.TargetIDs,
		view:    opts.Viewport,
		tracker: input.NewTracker(opts.Engine),
		painter: NewPainter(opts.Screen, opts.Viewport),
		log:     opts.Logger,
		period:  time.Second / time.Duration(opts.FrameRate),
	}, nil
}

// Run initialises the screen and blocks until the user quits or ctx is done
func (a *App) Run(ctx context.Context) error {
	if err := a.screen.Init(); err != nil {
		return logging.WrapError(err, "failed to initialize screen")
	}
	defer a.screen.Fini()

	a.screen.EnableMouse()
	a.screen.HideCursor()
	a.measure()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(a.period)
	defer ticker.Stop()
	start := time.Now()

	a.log.Info(ctx, "Terminal front end started", "frame_period", a.period.String())
	defer a.engine.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if a.HandleEvent(ev) {
				a.log.Info(ctx, "Quit requested")
				return nil
			}
		case <-ticker.C:
			a.Tick(time.Since(start))
		}
	}
}

// Tick advances the simulation clock to elapsed and redraws
func (a *App) Tick(elapsed time.Duration) {
	a.loop.Advance(elapsed)
	a.painter.Draw(a.engine.Frame())
}

// HandleEvent applies one terminal event and reports whether the app should quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		a.handleMouse(x, y, ev.Buttons())
	case *tcell.EventResize:
		a.measure()
		a.screen.Sync()
	}
	return false
}

func (a *App) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape:
		if a.tracker.Dragging() {
			a.tracker.Cancel()
			return false
		}
		return true
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return r == 'q' || r == 'Q'
	}
	return false
}

func (a *App) handleMouse(x, y int, buttons tcell.ButtonMask) {
	a.tracker.Sample(a.view.ToPixel(x, y), buttons&tcell.Button1 != 0)
}

// measure pushes the current screen size into the layout and restarts the
// dart, which must follow any change of play area.
func (a *App) measure() {
	cols, rows := a.screen.Size()
	a.layout.Apply(a.view.Area(cols, rows), a.ids)
	a.tracker.Cancel()
	a.engine.Resize()
}
