// pkg/engine/engine_test.go
package engine

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/opd-ai/go-darts/pkg/clock"
	"github.com/opd-ai/go-darts/pkg/config"
	"github.com/opd-ai/go-darts/pkg/engine/mocks"
	"github.com/opd-ai/go-darts/pkg/entity"
	"github.com/opd-ai/go-darts/pkg/event"
	"github.com/opd-ai/go-darts/pkg/geometry"
	"github.com/opd-ai/go-darts/pkg/physics"
	"github.com/opd-ai/go-darts/pkg/target"
)

const tick = 10 * time.Millisecond

type harness struct {
	t      *testing.T
	loop   *clock.Loop
	layout *geometry.Layout
	events []event.Event
	engine *Engine
}

var allEventTypes = []event.Type{
	event.ShotFired, event.TargetReached, event.ShotMissed, event.FlightTimedOut,
	event.DartReset, event.ToastShown, event.ToastExpired,
}

func newHarness(t *testing.T, w, h float64, opts Options) *harness {
	t.Helper()
	hs := &harness{
		t:      t,
		loop:   clock.NewLoop(),
		layout: geometry.NewLayout(),
	}
	hs.layout.SetPlayArea(geometry.Size{Width: w, Height: h})

	bus := event.NewEventBus()
	for _, et := range allEventTypes {
		bus.Subscribe(et, func(e event.Event) { hs.events = append(hs.events, e) })
	}

	ids := 0
	opts.Geometry = hs.layout
	opts.Scheduler = hs.loop
	opts.Bus = bus
	opts.NewID = func() string {
		ids++
		return fmt.Sprintf("id-%d", ids)
	}

	e, err := New(opts)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	hs.engine = e
	return hs
}

func (h *harness) advance(d time.Duration) {
	h.loop.Advance(h.loop.Now() + d)
}

// shoot aims from the dart and releases at dart+drag
func (h *harness) shoot(drag physics.Vector2D) {
	h.t.Helper()
	anchor := h.engine.Dart().Position
	if !h.engine.BeginAim(anchor) {
		h.t.Fatalf("BeginAim rejected in state %v", h.engine.State())
	}
	if !h.engine.EndAim(anchor.Add(drag)) {
		h.t.Fatalf("EndAim(%v) did not launch", drag)
	}
}

// fly ticks until the flight ends or limit passes
func (h *harness) fly(limit time.Duration) {
	end := h.loop.Now() + limit
	for h.engine.State() == StateInFlight && h.loop.Now() < end {
		h.advance(tick)
	}
}

func (h *harness) eventTypes() []event.Type {
	out := make([]event.Type, 0, len(h.events))
	for _, e := range h.events {
		out = append(out, e.GetType())
	}
	return out
}

func (h *harness) lastEvent(et event.Type) event.Event {
	for i := len(h.events) - 1; i >= 0; i-- {
		if h.events[i].GetType() == et {
			return h.events[i]
		}
	}
	return nil
}

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNew_Errors(t *testing.T) {
	layout := geometry.NewLayout()
	loop := clock.NewLoop()

	tests := []struct {
		name    string
		opts    Options
		wantErr error
	}{
		{"no_geometry", Options{Scheduler: loop}, ErrNoGeometry},
		{"no_scheduler", Options{Geometry: layout}, ErrNoScheduler},
		{
			"duplicate_target",
			Options{Geometry: layout, Scheduler: loop, Targets: []entity.Target{{ID: "a"}, {ID: "a"}}},
			target.ErrDuplicateID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNew_PlacesDartAtRest(t *testing.T) {
	h := newHarness(t, 400, 600, Options{})

	d := h.engine.Dart()
	if d.Position != (physics.Vector2D{X: 200, Y: 554}) {
		t.Errorf("rest position = %v, expected (200, 554)", d.Position)
	}
	if d.Rotation != config.RestRotation {
		t.Errorf("rest rotation = %v, expected %v", d.Rotation, config.RestRotation)
	}
	if h.engine.State() != StateIdle {
		t.Errorf("state = %v, expected idle", h.engine.State())
	}
	if !h.engine.Frame().Hint {
		t.Error("resting dart should show the aim hint")
	}
}

func TestEngine_UnmeasuredGeometryIsNoOp(t *testing.T) {
	loop := clock.NewLoop()
	layout := geometry.NewLayout()
	e, err := New(Options{Geometry: layout, Scheduler: loop})
	if err != nil {
		t.Fatal(err)
	}

	if e.BeginAim(physics.Vector2D{}) {
		t.Error("BeginAim should be ignored before the play area is measured")
	}
	if e.Touches(physics.Vector2D{}) {
		t.Error("unplaced dart cannot be touched")
	}
	if e.Frame().Ready {
		t.Error("frame should not be ready")
	}

	layout.SetPlayArea(geometry.Size{Width: 400, Height: 600})
	if !e.BeginAim(physics.Vector2D{X: 200, Y: 554}) {
		t.Fatal("BeginAim should work once measured")
	}
	if e.Dart().Position != (physics.Vector2D{X: 200, Y: 554}) {
		t.Errorf("dart not placed at rest: %v", e.Dart().Position)
	}
}

func TestEngine_TinyDragCancels(t *testing.T) {
	h := newHarness(t, 400, 600, Options{})
	anchor := h.engine.Dart().Position

	h.engine.BeginAim(anchor)
	if h.engine.EndAim(anchor.Add(physics.Vector2D{X: -11.9})) {
		t.Fatal("a drag under the fire threshold must not launch")
	}
	if h.engine.State() != StateIdle {
		t.Errorf("state = %v, expected idle", h.engine.State())
	}
	if h.engine.Dart().Velocity != (physics.Vector2D{}) {
		t.Errorf("velocity = %v, expected zero", h.engine.Dart().Velocity)
	}
	if frames, _ := h.loop.Pending(); frames != 0 {
		t.Errorf("cancelled shot scheduled %d frames", frames)
	}
	if len(h.events) != 0 {
		t.Errorf("cancelled shot published %v", h.eventTypes())
	}
}

func TestEngine_AimRejectedWhileBusy(t *testing.T) {
	h := newHarness(t, 400, 600, Options{})
	anchor := h.engine.Dart().Position

	h.engine.BeginAim(anchor)
	if h.engine.BeginAim(anchor) {
		t.Error("second BeginAim while aiming should be rejected")
	}

	h.engine.EndAim(anchor.Add(physics.Vector2D{X: -50, Y: 50}))
	if h.engine.State() != StateInFlight {
		t.Fatalf("state = %v, expected in-flight", h.engine.State())
	}
	if h.engine.BeginAim(anchor) {
		t.Error("BeginAim during flight should be rejected")
	}
	if h.engine.Touches(h.engine.Dart().Position) {
		t.Error("dart in flight cannot be grabbed")
	}
	h.engine.UpdateAim(anchor)
	if h.engine.EndAim(anchor) {
		t.Error("EndAim outside an aim session should do nothing")
	}
}

func TestEngine_FirstFrameOnlySetsBaseline(t *testing.T) {
	h := newHarness(t, 400, 600, Options{})
	rest := h.engine.Dart().Position
	h.shoot(physics.Vector2D{X: -50, Y: 50})

	h.advance(time.Second)
	if h.engine.Dart().Position != rest {
		t.Errorf("first frame moved the dart to %v", h.engine.Dart().Position)
	}
	if frames, _ := h.loop.Pending(); frames != 1 {
		t.Errorf("expected exactly one pending frame, got %d", frames)
	}

	h.advance(tick)
	if h.engine.Dart().Position == rest {
		t.Error("second frame should move the dart")
	}
}

func TestEngine_EulerStepsAtHalfSecond(t *testing.T) {
	h := newHarness(t, 2000, 2000, Options{})
	rest := h.engine.Dart().Position
	h.shoot(physics.Vector2D{X: -50, Y: 50})

	v := physics.Vector2D{X: 900, Y: -900}
	if h.engine.Dart().Velocity != v {
		t.Fatalf("launch velocity = %v, expected %v", h.engine.Dart().Velocity, v)
	}

	h.advance(tick) // baseline
	for i := 0; i < 50; i++ {
		h.advance(tick)
	}

	// explicit Euler at 10ms frames sits ½·g·t·dt above the parabola
	want := physics.PositionAt(rest, v, config.Gravity, 0.5)
	want.Y -= 0.5 * config.Gravity * 0.5 * tick.Seconds()
	got := h.engine.Dart().Position
	if !approx(got.X, want.X, 1e-6) || !approx(got.Y, want.Y, 1e-6) {
		t.Errorf("position at 0.5s = %v, expected %v", got, want)
	}
	if !approx(h.engine.Dart().Velocity.Y, 0, 1e-6) {
		t.Errorf("vy at 0.5s = %v, expected 0", h.engine.Dart().Velocity.Y)
	}
	if h.engine.State() != StateInFlight {
		t.Errorf("state = %v, expected in-flight", h.engine.State())
	}
}

func TestEngine_FloorLandingClamps(t *testing.T) {
	h := newHarness(t, 400, 600, Options{})
	h.shoot(physics.Vector2D{X: -10, Y: 50})

	h.advance(tick)
	h.fly(2 * time.Second)

	if h.engine.State() != StateResolving {
		t.Fatalf("state = %v, expected resolving", h.engine.State())
	}
	d := h.engine.Dart()
	if d.Position.Y != 554 {
		t.Errorf("landed y = %v, expected exactly the floor level 554", d.Position.Y)
	}
	if d.Position.X <= 200 {
		t.Errorf("landed x = %v, expected the dart to have travelled right", d.Position.X)
	}
	miss, ok := h.lastEvent(event.ShotMissed).(*event.MissEvent)
	if !ok || miss.Reason != event.MissFloor {
		t.Fatalf("expected floor miss event, got %v", h.eventTypes())
	}

	h.advance(config.MissResetDelay - time.Millisecond)
	if h.engine.State() != StateResolving {
		t.Errorf("reset ran early, state = %v", h.engine.State())
	}
	h.advance(time.Millisecond)
	if h.engine.State() != StateIdle {
		t.Errorf("state = %v, expected idle after the miss delay", h.engine.State())
	}
	if h.engine.Dart().Position != (physics.Vector2D{X: 200, Y: 554}) {
		t.Errorf("dart not back at rest: %v", h.engine.Dart().Position)
	}
}

func TestEngine_HorizontalShotFromRestHitsFloorAtOnce(t *testing.T) {
	h := newHarness(t, 400, 600, Options{})
	h.shoot(physics.Vector2D{X: -50})

	if v := h.engine.Dart().Velocity; v != (physics.Vector2D{X: 900}) {
		t.Fatalf("velocity = %v, expected (900, 0)", v)
	}

	h.advance(tick)
	h.advance(tick)

	if h.engine.State() != StateResolving {
		t.Fatalf("state = %v, expected resolving", h.engine.State())
	}
	if got := h.engine.Dart().Position; !approx(got.X, 209, 1e-9) || got.Y != 554 {
		t.Errorf("position = %v, expected (209, 554)", got)
	}
}

func TestEngine_BoundaryMisses(t *testing.T) {
	tests := []struct {
		name   string
		drag   physics.Vector2D
		reason event.MissReason
	}{
		{"wall", physics.Vector2D{X: -50, Y: 50}, event.MissWall},
		{"ceiling", physics.Vector2D{Y: 110}, event.MissCeiling},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, 400, 600, Options{})
			h.shoot(tt.drag)
			h.advance(tick)

			var before physics.Vector2D
			for h.engine.State() == StateInFlight && h.loop.Now() < 3*time.Second {
				before = h.engine.Dart().Position
				h.advance(tick)
			}

			if h.engine.State() != StateResolving {
				t.Fatalf("state = %v, expected resolving", h.engine.State())
			}
			miss, ok := h.lastEvent(event.ShotMissed).(*event.MissEvent)
			if !ok || miss.Reason != tt.reason {
				t.Fatalf("expected %s miss, got %v", tt.reason, h.eventTypes())
			}
			if h.engine.Dart().Position != before {
				t.Errorf("out-of-bounds step committed: %v, last in-bounds %v", h.engine.Dart().Position, before)
			}

			h.advance(config.MissResetDelay)
			if h.engine.State() != StateIdle {
				t.Errorf("state = %v, expected idle", h.engine.State())
			}
		})
	}
}

func TestEngine_WallBeforeFloor(t *testing.T) {
	arena := Arena{Width: 400, Height: 600}
	if got := arena.Boundary(physics.Vector2D{X: 390, Y: 590}); got != BoundaryWall {
		t.Errorf("wall and floor crossed together: %v, expected wall", got)
	}
	if got := arena.Boundary(physics.Vector2D{X: 2, Y: 2}); got != BoundaryWall {
		t.Errorf("wall and ceiling crossed together: %v, expected wall", got)
	}
}

func newTargetHarness(t *testing.T, opts Options) *harness {
	opts.Targets = []entity.Target{
		{ID: "about", Label: "About", Color: "#00d4ff"},
		{ID: "work", Label: "Work", Color: "#ff6b9d"},
	}
	h := newHarness(t, 400, 600, opts)
	h.layout.SetTarget("about", physics.Rect{Center: physics.Vector2D{X: 200, Y: 400}, Width: 80, Height: 80})
	h.layout.SetTarget("work", physics.Rect{Center: physics.Vector2D{X: 330, Y: 200}, Width: 80, Height: 80})
	return h
}

func TestEngine_HitResolution(t *testing.T) {
	ctrl := gomock.NewController(t)
	nav := mocks.NewMockNavigator(ctrl)
	nav.EXPECT().Navigate(gomock.Any(), entity.Target{ID: "about", Label: "About", Color: "#00d4ff"}).Times(1)

	h := newTargetHarness(t, Options{Navigator: nav})
	h.shoot(physics.Vector2D{Y: 50})
	h.advance(tick)
	h.fly(time.Second)

	if h.engine.State() != StateResolving {
		t.Fatalf("state = %v, expected resolving", h.engine.State())
	}
	if id, ok := h.engine.HitTarget(); !ok || id != "about" {
		t.Errorf("HitTarget() = %q, %v", id, ok)
	}
	if d := h.engine.Dart().Position.Distance(physics.Vector2D{X: 200, Y: 400}); d >= config.HitRadius {
		t.Errorf("dart stopped %v px from the target", d)
	}

	toasts := h.engine.Toasts()
	if len(toasts) != 1 || toasts[0].Label != "About" || toasts[0].TargetID != "about" {
		t.Fatalf("Toasts() = %+v", toasts)
	}

	want := []event.Type{event.ShotFired, event.TargetReached, event.ToastShown}
	got := h.eventTypes()
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("events = %v, expected %v", got, want)
	}
	shot := h.events[0].(*event.ShotEvent)
	hit := h.events[1].(*event.TargetEvent)
	if shot.FlightID == "" || hit.FlightID != shot.FlightID {
		t.Errorf("flight ids differ: shot %q hit %q", shot.FlightID, hit.FlightID)
	}

	if frames, _ := h.loop.Pending(); frames != 0 {
		t.Errorf("resolving dart still has %d frames", frames)
	}

	// reset after 600ms, highlight until 1200ms, toast until 1600ms
	h.advance(config.HitResetDelay)
	if h.engine.State() != StateIdle {
		t.Errorf("state = %v after hit reset delay", h.engine.State())
	}
	if _, ok := h.engine.HitTarget(); !ok {
		t.Error("highlight should outlive the reset")
	}

	h.advance(config.HighlightDuration - config.HitResetDelay)
	if _, ok := h.engine.HitTarget(); ok {
		t.Error("highlight should clear after its duration")
	}
	if len(h.engine.Toasts()) != 1 {
		t.Error("toast expired too early")
	}

	h.advance(config.ToastLifetime - config.HighlightDuration)
	if len(h.engine.Toasts()) != 0 {
		t.Errorf("toast still visible: %+v", h.engine.Toasts())
	}
	expired, ok := h.lastEvent(event.ToastExpired).(*event.ToastEvent)
	if !ok || expired.ToastID != toasts[0].ID {
		t.Errorf("expected expiry of %q, got %v", toasts[0].ID, h.eventTypes())
	}
}

func TestEngine_HitIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	nav := mocks.NewMockNavigator(ctrl)
	nav.EXPECT().Navigate(gomock.Any(), gomock.Any()).Times(1)

	h := newTargetHarness(t, Options{Navigator: nav})
	h.shoot(physics.Vector2D{Y: 50})
	h.advance(tick)
	h.fly(time.Second)

	work := h.engine.Registry().Targets()[1]
	h.engine.handleHit(work)
	h.engine.handleHit(work)

	if id, _ := h.engine.HitTarget(); id != "about" {
		t.Errorf("HitTarget() = %q after repeated hits, expected about", id)
	}
	if n := len(h.engine.Toasts()); n != 1 {
		t.Errorf("expected 1 toast, got %d", n)
	}
}

func TestEngine_FlightHitClearedOnNextShot(t *testing.T) {
	h := newTargetHarness(t, Options{})

	h.shoot(physics.Vector2D{Y: 50})
	h.advance(tick)
	h.fly(time.Second)
	if id, ok := h.engine.FlightHit(); !ok || id != "about" {
		t.Fatalf("FlightHit() = %q, %v, expected about", id, ok)
	}
	h.advance(config.HitResetDelay)

	// straight down into the floor
	h.shoot(physics.Vector2D{Y: -20})
	if _, ok := h.engine.FlightHit(); ok {
		t.Error("FlightHit() should clear when the next shot is fired")
	}
	h.advance(tick)
	h.fly(time.Second)

	miss, ok := h.lastEvent(event.ShotMissed).(*event.MissEvent)
	if !ok || miss.Reason != event.MissFloor {
		t.Fatalf("expected floor miss, got %v", h.eventTypes())
	}
	if id, ok := h.engine.FlightHit(); ok {
		t.Errorf("FlightHit() = %q after a miss", id)
	}
	if id, ok := h.engine.HitTarget(); !ok || id != "about" {
		t.Errorf("HitTarget() = %q, %v, expected the earlier highlight", id, ok)
	}
}

func TestEngine_ToastsExpireOldestFirst(t *testing.T) {
	h := newTargetHarness(t, Options{})

	h.shoot(physics.Vector2D{Y: 50})
	h.advance(tick)
	h.fly(time.Second)
	h.advance(config.HitResetDelay)

	h.shoot(physics.Vector2D{Y: 50})
	h.advance(tick)
	h.fly(time.Second)

	toasts := h.engine.Toasts()
	if len(toasts) != 2 {
		t.Fatalf("expected 2 toasts, got %+v", toasts)
	}

	// first toast is older by roughly 600ms plus the second flight
	for len(h.engine.Toasts()) == 2 {
		h.advance(tick)
	}
	if rest := h.engine.Toasts(); len(rest) != 1 || rest[0].ID != toasts[1].ID {
		t.Errorf("expected the newer toast to remain, got %+v", rest)
	}
}

func TestEngine_FlightCap(t *testing.T) {
	h := newHarness(t, 400, 600, Options{})
	anchor := h.engine.Dart().Position

	h.engine.BeginAim(anchor)
	nan := math.NaN()
	if !h.engine.EndAim(physics.Vector2D{X: nan, Y: nan}) {
		t.Fatal("expected a degenerate launch")
	}

	h.advance(100 * time.Millisecond) // baseline
	for i := 0; i < 29; i++ {
		h.advance(100 * time.Millisecond)
	}
	if h.engine.State() != StateInFlight {
		t.Fatalf("flight ended after 2.9s, state %v", h.engine.State())
	}

	h.advance(100 * time.Millisecond)
	if h.engine.State() != StateInFlight {
		t.Fatalf("flight ended at exactly 3s, state %v", h.engine.State())
	}

	h.advance(100 * time.Millisecond)
	if h.engine.State() != StateIdle {
		t.Fatalf("flight not force-reset past the cap, state %v", h.engine.State())
	}
	if h.lastEvent(event.FlightTimedOut) == nil {
		t.Errorf("expected a timeout event, got %v", h.eventTypes())
	}
	d := h.engine.Dart()
	if d.Position != anchor || d.Velocity != (physics.Vector2D{}) || d.Rotation != config.RestRotation {
		t.Errorf("dart not reset: %+v", d)
	}
}

func TestEngine_GeometryLostMidFlight(t *testing.T) {
	h := newHarness(t, 400, 600, Options{})
	h.shoot(physics.Vector2D{X: -50, Y: 50})
	h.advance(tick)
	h.advance(tick)

	held := h.engine.Dart().Position
	h.layout.SetPlayArea(geometry.Size{})

	h.advance(tick)
	if h.engine.Dart().Position != held {
		t.Errorf("dart moved without geometry: %v", h.engine.Dart().Position)
	}
	if h.engine.State() != StateInFlight {
		t.Fatalf("state = %v, expected in-flight", h.engine.State())
	}

	h.fly(4 * time.Second)
	if h.engine.State() != StateIdle {
		t.Errorf("cap did not end the flight, state %v", h.engine.State())
	}
	if h.engine.Dart().Position != held {
		t.Errorf("reset without geometry should keep position, got %v", h.engine.Dart().Position)
	}
}

// wallMiss leaves the dart resolving against the right wall
func (h *harness) wallMiss() physics.Vector2D {
	h.t.Helper()
	h.shoot(physics.Vector2D{X: -50, Y: 50})
	h.advance(tick)
	h.fly(2 * time.Second)
	if h.engine.State() != StateResolving {
		h.t.Fatalf("state = %v, expected resolving", h.engine.State())
	}
	return h.engine.Dart().Position
}

func TestEngine_BeginAimDuringResolvingResets(t *testing.T) {
	h := newHarness(t, 400, 600, Options{})
	h.wallMiss()

	rest := physics.Vector2D{X: 200, Y: 554}
	if !h.engine.BeginAim(rest) {
		t.Fatal("BeginAim at the rest position should supersede the pending reset")
	}
	if h.engine.Dart().Position != rest {
		t.Errorf("dart not reset before aiming: %v", h.engine.Dart().Position)
	}
	if _, timers := h.loop.Pending(); timers != 0 {
		t.Errorf("pending reset not cancelled, %d timers", timers)
	}

	h.advance(config.MissResetDelay)
	if h.engine.State() != StateAiming {
		t.Errorf("stale reset changed state to %v", h.engine.State())
	}

	if !h.engine.EndAim(rest.Add(physics.Vector2D{X: -50, Y: 50})) {
		t.Fatal("aim from rest should launch")
	}
	if v := h.engine.Dart().Velocity; v != (physics.Vector2D{X: 900, Y: -900}) {
		t.Errorf("velocity = %v, expected (900, -900)", v)
	}
}

func TestEngine_TapOnResolvingDartOnlyResets(t *testing.T) {
	tests := []struct {
		name    string
		release func(lying physics.Vector2D) physics.Vector2D
	}{
		{"tap", func(lying physics.Vector2D) physics.Vector2D { return lying }},
		{"short_drag", func(lying physics.Vector2D) physics.Vector2D {
			return lying.Add(physics.Vector2D{X: -8, Y: 6})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, 400, 600, Options{})
			lying := h.wallMiss()
			shots := len(h.events)

			if !h.engine.Touches(lying) {
				t.Fatal("a dart waiting for its reset should be grabbable where it lies")
			}
			if h.engine.BeginAim(lying) {
				t.Error("press away from the rest position should not start an aim")
			}
			if h.engine.EndAim(tt.release(lying)) {
				t.Error("release after the reset launched a shot")
			}

			if h.engine.State() != StateIdle {
				t.Errorf("state = %v, expected idle", h.engine.State())
			}
			d := h.engine.Dart()
			if d.Position != (physics.Vector2D{X: 200, Y: 554}) || d.Velocity != (physics.Vector2D{}) {
				t.Errorf("dart not at rest: %+v", d)
			}
			if frames, timers := h.loop.Pending(); frames != 0 || timers != 0 {
				t.Errorf("pending after tap: %d frames, %d timers", frames, timers)
			}
			for _, e := range h.events[shots:] {
				if e.GetType() == event.ShotFired {
					t.Errorf("tap fired a shot: %v", h.eventTypes())
				}
			}
		})
	}
}

func TestEngine_ResizeMidFlight(t *testing.T) {
	h := newHarness(t, 400, 600, Options{})
	h.shoot(physics.Vector2D{X: -50, Y: 50})
	h.advance(tick)
	h.advance(tick)

	h.layout.SetPlayArea(geometry.Size{Width: 800, Height: 1000})
	h.engine.Resize()

	if h.engine.State() != StateIdle {
		t.Errorf("state = %v, expected idle", h.engine.State())
	}
	if h.engine.Dart().Position != (physics.Vector2D{X: 400, Y: 954}) {
		t.Errorf("dart at %v, expected new rest (400, 954)", h.engine.Dart().Position)
	}
	if frames, timers := h.loop.Pending(); frames != 0 || timers != 0 {
		t.Errorf("pending after resize: %d frames, %d timers", frames, timers)
	}
	if h.lastEvent(event.DartReset) == nil {
		t.Error("expected a reset event")
	}
}

func TestEngine_ResizeCancelsAim(t *testing.T) {
	h := newHarness(t, 400, 600, Options{})
	h.engine.BeginAim(h.engine.Dart().Position)
	h.engine.UpdateAim(physics.Vector2D{X: 150, Y: 554})

	h.engine.Resize()

	if h.engine.State() != StateIdle || h.engine.Frame().Aim != nil || len(h.engine.Preview()) != 0 {
		t.Errorf("aim survived resize: %+v", h.engine.Frame())
	}
}

func TestEngine_Close(t *testing.T) {
	h := newTargetHarness(t, Options{})
	h.shoot(physics.Vector2D{Y: 50})
	h.advance(tick)
	h.fly(time.Second)

	h.engine.Close()

	if frames, timers := h.loop.Pending(); frames != 0 || timers != 0 {
		t.Errorf("pending after Close: %d frames, %d timers", frames, timers)
	}
	if len(h.engine.Toasts()) != 0 {
		t.Error("Close should drop toasts")
	}
	if h.engine.BeginAim(h.engine.Dart().Position) {
		t.Error("closed engine accepted an aim")
	}
	h.engine.Resize()
	h.engine.Close()
}

func TestEngine_AimPreviewAndFrame(t *testing.T) {
	h := newTargetHarness(t, Options{})
	anchor := h.engine.Dart().Position

	h.engine.BeginAim(anchor)
	h.engine.UpdateAim(anchor.Add(physics.Vector2D{X: -50}))

	preview := h.engine.Preview()
	if len(preview) != 2 {
		t.Fatalf("expected the preview to stop after 2 samples, got %d", len(preview))
	}
	if !approx(preview[0].X, 254, 1e-9) || !approx(preview[0].Y, 557.24, 1e-9) {
		t.Errorf("first sample = %+v", preview[0])
	}

	f := h.engine.Frame()
	if f.State != StateAiming || f.Hint {
		t.Errorf("frame state = %v hint = %v", f.State, f.Hint)
	}
	if f.Aim == nil || f.Aim.Length != 50 || !approx(f.Aim.Angle, math.Pi, 1e-12) {
		t.Fatalf("aim line = %+v", f.Aim)
	}
	if len(f.Targets) != 2 || !f.Targets[0].Placed || f.Targets[0].Bounds.Center.Y != 400 {
		t.Errorf("targets = %+v", f.Targets)
	}

	h.engine.UpdateAim(anchor.Add(physics.Vector2D{X: 120, Y: 160}))
	if got := h.engine.Frame().Aim.Length; !approx(got, config.MaxPull, 1e-9) {
		t.Errorf("aim length = %v, expected clamp to %v", got, config.MaxPull)
	}
	if got := h.engine.Frame().Aim.PullFraction(); !approx(got, 1, 1e-9) {
		t.Errorf("pull fraction = %v", got)
	}

	h.engine.UpdateAim(anchor.Add(physics.Vector2D{X: 3}))
	if len(h.engine.Preview()) != 0 {
		t.Error("dead-zone drag should clear the preview")
	}

	h.engine.CancelAim()
	if h.engine.State() != StateIdle || h.engine.Frame().Aim != nil {
		t.Error("CancelAim left an aim session")
	}
}

func TestEngine_Touches(t *testing.T) {
	h := newHarness(t, 400, 600, Options{})

	tests := []struct {
		name  string
		point physics.Vector2D
		want  bool
	}{
		{"center", physics.Vector2D{X: 200, Y: 554}, true},
		{"edge", physics.Vector2D{X: 232, Y: 554}, true},
		{"outside", physics.Vector2D{X: 233, Y: 554}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.engine.Touches(tt.point); got != tt.want {
				t.Errorf("Touches(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestEngine_Cues(t *testing.T) {
	ctrl := gomock.NewController(t)
	cues := mocks.NewMockCues(ctrl)
	gomock.InOrder(
		cues.EXPECT().Launch(),
		cues.EXPECT().Miss(),
	)

	h := newHarness(t, 400, 600, Options{Cues: cues})
	h.shoot(physics.Vector2D{X: -50})
	h.advance(tick)
	h.advance(tick)
}

func TestState_String(t *testing.T) {
	tests := map[State]string{
		StateIdle:      "idle",
		StateAiming:    "aiming",
		StateInFlight:  "in-flight",
		StateResolving: "resolving",
		State(42):      "unknown",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("State(%d).String() = %q, want %q", int(s), s.String(), want)
		}
	}
}
