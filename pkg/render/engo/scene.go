// pkg/render/engo/scene.go
package engo

import (
	"context"
	"errors"
	"image/color"
	"time"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-darts/pkg/clock"
	"github.com/opd-ai/go-darts/pkg/engine"
	"github.com/opd-ai/go-darts/pkg/geometry"
	"github.com/opd-ai/go-darts/pkg/input"
	"github.com/opd-ai/go-darts/pkg/logging"
	"github.com/opd-ai/go-darts/pkg/render"
)

const sceneType = "DartScene"

// Options configures a DartScene
type Options struct {
	Engine    *engine.Engine
	Loop      *clock.Loop
	Layout    *geometry.Layout
	TargetIDs []string
	Logger    *logging.Logger
}

// DartScene is the engo scene hosting the dart game
type DartScene struct {
	engine *engine.Engine
	loop   *clock.Loop
	layout *geometry.Layout
	ids    []string
	log    *logging.Logger

	assets   *AssetManager
	tracker  *input.Tracker
	renderer *EngoRenderer
	flight   *FlightSystem
}

// NewDartScene creates the scene. Nothing touches engo until Setup.
func NewDartScene(opts Options) (*DartScene, error) {
	if opts.Engine == nil || opts.Loop == nil || opts.Layout == nil {
		return nil, errors.New("dart scene requires engine, loop and layout")
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return &DartScene{
		engine:  opts.Engine,
		loop:    opts.Loop,
		layout:  opts.Layout,
		ids:     opts.TargetIDs,
		log:     opts.Logger,
		assets:  NewAssetManager(),
		tracker: input.NewTracker(opts.Engine),
	}, nil
}

// Type returns the scene type (required by Engo)
func (scene *DartScene) Type() string {
	return sceneType
}

// Preload is called before the scene starts (required by Engo)
func (scene *DartScene) Preload() {
	if err := scene.assets.Preload(); err != nil {
		scene.log.Error(context.Background(), "Preload failed, text disabled", err)
	}
}

// Setup is called when the scene starts (required by Engo)
func (scene *DartScene) Setup(u engo.Updater) {
	world, ok := u.(*ecs.World)
	if !ok {
		panic("dart scene needs an *ecs.World updater")
	}
	ctx := context.Background()

	common.SetBackground(color.RGBA{16, 18, 28, 255})
	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	if err := scene.assets.LoadAssets(); err != nil {
		scene.log.Error(ctx, "Font unavailable, text disabled", err)
	}
	scene.renderer = NewEngoRenderer(renderSystem, scene.assets)

	SetupInputBindings()
	world.AddSystem(NewInputSystem(scene.tracker))

	scene.flight = NewFlightSystem(scene.loop, scene.engine, scene.renderer)
	world.AddSystem(scene.flight)

	engo.Mailbox.Listen("WindowResizeMessage", func(msg engo.Message) {
		resize, ok := msg.(engo.WindowResizeMessage)
		if !ok {
			return
		}
		scene.measure(float64(resize.NewWidth), float64(resize.NewHeight))
	})
	scene.measure(float64(engo.GameWidth()), float64(engo.GameHeight()))

	scene.log.Info(ctx, "Scene ready", "width", engo.GameWidth(), "height", engo.GameHeight())
}

// measure lays the boards out for a w x h play area and restarts the dart
func (scene *DartScene) measure(w, h float64) {
	scene.layout.Apply(geometry.Size{Width: w, Height: h}, scene.ids)
	scene.tracker.Cancel()
	scene.engine.Resize()
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *DartScene) Exit() {
	scene.engine.Close()
	scene.log.Info(context.Background(), "Scene exited")
	engo.Exit()
}

// FlightSystem drives the simulation clock from engo's frame delta and hands
// every frame to the renderer.
type FlightSystem struct {
	loop     *clock.Loop
	engine   *engine.Engine
	renderer render.Renderer
	elapsed  time.Duration
}

// NewFlightSystem creates a flight system
func NewFlightSystem(loop *clock.Loop, eng *engine.Engine, renderer render.Renderer) *FlightSystem {
	return &FlightSystem{loop: loop, engine: eng, renderer: renderer}
}

// Remove satisfies the ecs.System interface
func (fs *FlightSystem) Remove(basic ecs.BasicEntity) {}

// Update advances the clock by dt seconds and redraws
func (fs *FlightSystem) Update(dt float32) {
	if dt > 0 {
		fs.elapsed += time.Duration(float64(dt) * float64(time.Second))
	}
	fs.loop.Advance(fs.elapsed)
	fs.renderer.Draw(fs.engine.Frame())
}

// Elapsed returns the simulated time so far
func (fs *FlightSystem) Elapsed() time.Duration {
	return fs.elapsed
}

// RunOptions are the window settings for Run
type RunOptions struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
}

// Run opens the window and blocks until it closes
func Run(opts RunOptions, scene *DartScene) {
	if opts.Title == "" {
		opts.Title = "Darts"
	}
	engo.Run(engo.RunOptions{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Fullscreen: opts.Fullscreen,
		VSync:      true,
	}, scene)
}
