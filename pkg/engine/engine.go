// Package engine is the dart flight engine: it owns the single dart, turns
// pointer drags into launches, steps the flight under gravity on scheduler
// frames and resolves hits and misses through named deferred actions.
//
// The engine is single threaded. Every method, and every callback it hands
// to its Scheduler, must run on the same goroutine.
package engine

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/opd-ai/go-darts/pkg/clock"
	"github.com/opd-ai/go-darts/pkg/config"
	"github.com/opd-ai/go-darts/pkg/entity"
	"github.com/opd-ai/go-darts/pkg/event"
	"github.com/opd-ai/go-darts/pkg/geometry"
	"github.com/opd-ai/go-darts/pkg/logging"
	"github.com/opd-ai/go-darts/pkg/physics"
	"github.com/opd-ai/go-darts/pkg/target"
)

//go:generate go tool mockgen -destination=./mocks/navigator_mock.go -package=mocks . Navigator,Cues

var (
	ErrNoGeometry  = errors.New("engine requires a geometry provider")
	ErrNoScheduler = errors.New("engine requires a scheduler")
)

// State is the flight state of the dart
type State int

const (
	StateIdle State = iota
	StateAiming
	StateInFlight
	StateResolving
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAiming:
		return "aiming"
	case StateInFlight:
		return "in-flight"
	case StateResolving:
		return "resolving"
	default:
		return "unknown"
	}
}

// Scheduler supplies animation frames and one-shot timers. *clock.Loop
// implements it.
type Scheduler interface {
	RequestFrame(fn clock.FrameFunc) clock.Handle
	CancelFrame(h clock.Handle)
	AfterFunc(d time.Duration, fn func()) clock.Handle
	Stop(h clock.Handle) bool
}

// Navigator is told about every target the dart reaches.
type Navigator interface {
	Navigate(ctx context.Context, t entity.Target)
}

// Cues receives feedback moments, typically to play a sound.
type Cues interface {
	Launch()
	Hit()
	Miss()
}

// Options configures New. Geometry and Scheduler are required.
type Options struct {
	Geometry  geometry.Provider
	Scheduler Scheduler

	// Registry is used as is when set; otherwise one is built on Geometry
	// from Targets.
	Registry *target.Registry
	Targets  []entity.Target

	Bus       *event.Bus
	Navigator Navigator
	Cues      Cues
	Logger    *logging.Logger

	// NewID issues flight and toast ids. Defaults to uuid.NewString.
	NewID func() string
}

type aimSession struct {
	anchor physics.Vector2D
	drag   physics.Vector2D
}

// Engine is the dart flight engine
type Engine struct {
	geo      geometry.Provider
	sched    Scheduler
	registry *target.Registry
	bus      *event.Bus
	nav      Navigator
	cues     Cues
	log      *logging.Logger
	newID    func() string

	dart    entity.Dart
	placed  bool
	state   State
	aim     *aimSession
	preview []TrajectoryPoint

	// flight bookkeeping
	frame       clock.Handle
	ticking     bool
	lastTick    time.Duration
	flightStart time.Duration
	hit         bool
	flightHit   string
	flightID    string
	ctx         context.Context

	highlight string
	toasts    []entity.Toast
	actions   *deferredActions
	closed    bool
}

// New creates an engine. When geometry is already measured the dart is
// placed at rest immediately.
func New(opts Options) (*Engine, error) {
	if opts.Geometry == nil {
		return nil, ErrNoGeometry
	}
	if opts.Scheduler == nil {
		return nil, ErrNoScheduler
	}

	registry := opts.Registry
	if registry == nil {
		registry = target.NewRegistry(opts.Geometry)
		for _, t := range opts.Targets {
			if err := registry.Register(t); err != nil {
				return nil, logging.WrapError(err, "failed to register target")
			}
		}
	}

	e := &Engine{
		geo:      opts.Geometry,
		sched:    opts.Scheduler,
		registry: registry,
		bus:      opts.Bus,
		nav:      opts.Navigator,
		cues:     opts.Cues,
		log:      opts.Logger,
		newID:    opts.NewID,
		ctx:      context.Background(),
	}
	if e.cues == nil {
		e.cues = nopCues{}
	}
	if e.log == nil {
		e.log = logging.Discard()
	}
	if e.newID == nil {
		e.newID = uuid.NewString
	}
	e.actions = newDeferredActions(e.sched)

	if arena, ok := e.arena(); ok {
		e.dart = entity.NewDart(arena.RestPosition())
		e.placed = true
	} else {
		e.dart = entity.NewDart(physics.Vector2D{})
	}
	return e, nil
}

// State returns the current flight state
func (e *Engine) State() State {
	return e.state
}

// Dart returns a copy of the dart
func (e *Engine) Dart() entity.Dart {
	return e.dart
}

// Registry returns the target registry the engine hit-tests against
func (e *Engine) Registry() *target.Registry {
	return e.registry
}

// HitTarget returns the id of the currently highlighted target
func (e *Engine) HitTarget() (string, bool) {
	return e.highlight, e.highlight != ""
}

// FlightHit returns the target reached by the current or most recent flight.
// Unlike HitTarget it is cleared as soon as the next shot is fired.
func (e *Engine) FlightHit() (string, bool) {
	return e.flightHit, e.flightHit != ""
}

// Preview returns a copy of the current trajectory preview
func (e *Engine) Preview() []TrajectoryPoint {
	return append([]TrajectoryPoint(nil), e.preview...)
}

// Toasts returns the visible toasts, oldest first
func (e *Engine) Toasts() []entity.Toast {
	return append([]entity.Toast(nil), e.toasts...)
}

func (e *Engine) arena() (Arena, bool) {
	size, ok := e.geo.PlayArea()
	if !ok || !size.Ready() {
		return Arena{}, false
	}
	return ArenaFrom(size), true
}

// Touches reports whether p is close enough to the resting dart to pick it up.
func (e *Engine) Touches(p physics.Vector2D) bool {
	if e.closed || !e.placed {
		return false
	}
	if e.state != StateIdle && e.state != StateResolving {
		return false
	}
	return p.Distance(e.dart.Position) <= config.GrabRadius
}

// BeginAim opens an aim session anchored at the dart. It is ignored while a
// dart is in the air or already being aimed, and until geometry is measured.
// A dart still resolving its last throw is reset first.
func (e *Engine) BeginAim(p physics.Vector2D) bool {
	if e.closed {
		return false
	}
	arena, ok := e.arena()
	if !ok {
		return false
	}

	switch e.state {
	case StateInFlight, StateAiming:
		return false
	case StateResolving:
		// the dart jumps back to rest, so a press that grabbed it where it
		// lay only finishes the reset
		e.reset()
		if p.Distance(e.dart.Position) > config.GrabRadius {
			return false
		}
	}
	if !e.placed {
		e.dart.Rest(arena.RestPosition())
		e.placed = true
	}

	e.aim = &aimSession{anchor: e.dart.Position}
	e.preview = nil
	e.state = StateAiming
	e.log.Debug(e.ctx, "aim started", "x", p.X, "y", p.Y)
	return true
}

// UpdateAim records the pointer at p and recomputes the preview
func (e *Engine) UpdateAim(p physics.Vector2D) {
	if e.state != StateAiming || e.aim == nil {
		return
	}
	e.aim.drag = p.Sub(e.aim.anchor)

	arena, ok := e.arena()
	if !ok {
		e.preview = nil
		return
	}
	e.preview = PredictTrajectory(e.aim.anchor, e.aim.drag, arena)
}

// EndAim releases the dart at p. Short drags cancel the shot and leave the
// dart at rest; it reports whether a flight started.
func (e *Engine) EndAim(p physics.Vector2D) bool {
	if e.state != StateAiming || e.aim == nil {
		return false
	}
	drag := p.Sub(e.aim.anchor)
	e.aim = nil
	e.preview = nil

	v, ok := LaunchVelocity(drag)
	if !ok {
		e.state = StateIdle
		e.log.Debug(e.ctx, "shot cancelled", "drag", drag.Length())
		return false
	}

	e.launch(drag, v)
	return true
}

// CancelAim abandons the aim session without firing
func (e *Engine) CancelAim() {
	if e.state != StateAiming {
		return
	}
	e.aim = nil
	e.preview = nil
	e.state = StateIdle
}

func (e *Engine) launch(drag, v physics.Vector2D) {
	e.flightID = e.newID()
	e.ctx = logging.WithFlightID(context.Background(), e.flightID)

	e.dart.Velocity = v
	e.hit = false
	e.flightHit = ""
	e.ticking = false
	e.state = StateInFlight
	e.requestFrame()

	e.log.Info(e.ctx, "shot fired", "vx", v.X, "vy", v.Y)
	e.bus.Publish(event.NewShotEvent(e, e.flightID, drag.X, drag.Y, v.X, v.Y))
	e.cues.Launch()
}

func (e *Engine) requestFrame() {
	if e.frame != 0 {
		return
	}
	e.frame = e.sched.RequestFrame(e.step)
}

func (e *Engine) cancelFrame() {
	if e.frame == 0 {
		return
	}
	e.sched.CancelFrame(e.frame)
	e.frame = 0
}

// Resize re-measures the play area and returns the dart to its new rest
// position, abandoning any flight, pending reset or aim.
func (e *Engine) Resize() {
	if e.closed {
		return
	}
	e.reset()
	e.log.Debug(e.ctx, "play area resized", "placed", e.placed)
}

// Close stops the engine. Pending frames and deferred actions are cancelled
// and every later call is a no-op.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.cancelFrame()
	e.actions.cancelAll()
	e.aim = nil
	e.preview = nil
	e.toasts = nil
	e.highlight = ""
	e.state = StateIdle
	e.closed = true
}

// reset returns the dart to rest and supersedes any pending reset. Without
// measured geometry the dart keeps its position but the flight is still cleared.
func (e *Engine) reset() {
	e.cancelFrame()
	e.actions.cancel(actionReset)
	e.aim = nil
	e.preview = nil
	e.hit = false
	e.ticking = false
	e.state = StateIdle

	if arena, ok := e.arena(); ok {
		e.dart.Rest(arena.RestPosition())
		e.placed = true
	} else {
		e.dart.Velocity = physics.Vector2D{}
		e.dart.Rotation = config.RestRotation
	}

	if e.flightID != "" {
		e.log.Debug(e.ctx, "dart reset", "x", e.dart.Position.X, "y", e.dart.Position.Y)
	}
	e.bus.Publish(event.NewResetEvent(e, e.flightID, e.dart.Position.X, e.dart.Position.Y))
	e.flightID = ""
	e.ctx = context.Background()
}

type nopCues struct{}

func (nopCues) Launch() {}
func (nopCues) Hit()    {}
func (nopCues) Miss()   {}
