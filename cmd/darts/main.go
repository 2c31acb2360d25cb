// cmd/darts/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-darts/pkg/audio"
	"github.com/opd-ai/go-darts/pkg/clock"
	"github.com/opd-ai/go-darts/pkg/config"
	"github.com/opd-ai/go-darts/pkg/engine"
	"github.com/opd-ai/go-darts/pkg/entity"
	"github.com/opd-ai/go-darts/pkg/event"
	"github.com/opd-ai/go-darts/pkg/geometry"
	"github.com/opd-ai/go-darts/pkg/logging"
	"github.com/opd-ai/go-darts/pkg/render"
	engorender "github.com/opd-ai/go-darts/pkg/render/engo"
	"github.com/opd-ai/go-darts/pkg/render/terminal"
)

func main() {
	configPath := flag.String("config", "darts.json", "Path to configuration file")
	renderer := flag.String("renderer", "", "Renderer type: 'terminal', 'engo' or 'null' (overrides config)")
	logPath := flag.String("log", "", "Write logs to this file (the terminal renderer logs nowhere otherwise)")
	pulls := flag.String("pulls", "0,60", "Drag vectors for the null renderer, e.g. '0,60;-40,80'")
	flag.Parse()

	// Load configuration
	var gameConfig *config.GameConfig
	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		log.Printf("Configuration file not found, using default configuration")
		gameConfig = config.DefaultConfig()
	} else {
		gameConfig, err = config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	if err := config.ApplyEnvOverrides(gameConfig); err != nil {
		log.Printf("Ignoring invalid environment overrides: %v", err)
	}
	if *renderer != "" {
		gameConfig.Display.Renderer = *renderer
	}
	if err := gameConfig.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, closeLog, err := newLogger(gameConfig, *logPath)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	// one correlation id per session
	ctx = logging.WithCorrelationID(ctx, "")

	if err := run(ctx, gameConfig, logger, *pulls); err != nil {
		logger.Error(ctx, "Darts exited with error", err)
		closeLog()
		log.Fatalf("%v", err)
	}
}

// newLogger picks the log destination. The terminal renderer owns stdout and
// stderr, so it only logs when given a file.
func newLogger(cfg *config.GameConfig, path string) (*logging.Logger, func(), error) {
	level := logging.ParseLevel(cfg.LogLevel)
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		return logging.New(f, level), func() { _ = f.Close() }, nil
	}
	if cfg.Display.Renderer == config.RendererTerminal {
		return logging.New(io.Discard, level), func() {}, nil
	}
	return logging.New(os.Stderr, level), func() {}, nil
}

func run(ctx context.Context, cfg *config.GameConfig, logger *logging.Logger, pulls string) error {
	// Create event bus
	bus := event.NewEventBus()
	subscribeLogging(ctx, bus, logger)

	targets := make([]entity.Target, 0, len(cfg.Targets))
	ids := make([]string, 0, len(cfg.Targets))
	for _, t := range cfg.Targets {
		targets = append(targets, entity.Target{ID: t.ID, Label: t.Label, Color: t.Color})
		ids = append(ids, t.ID)
	}

	var cues engine.Cues
	if cfg.Audio.Enabled && cfg.Display.Renderer != config.RendererNull {
		sound := audio.NewSoundManager(cfg.Audio.Volume)
		if err := sound.Initialize(); err != nil {
			logger.Warn(ctx, "Audio unavailable, continuing without sound", "error", err.Error())
		} else {
			defer sound.Close()
			cues = sound
		}
	}

	layout := geometry.NewLayout()
	loop := clock.NewLoop()
	eng, err := engine.New(engine.Options{
		Geometry:  layout,
		Scheduler: loop,
		Targets:   targets,
		Bus:       bus,
		Navigator: &logNavigator{logger: logger},
		Cues:      cues,
		Logger:    logger,
	})
	if err != nil {
		return logging.WrapError(err, "failed to create engine")
	}

	logger.Info(ctx, "Starting darts",
		"renderer", cfg.Display.Renderer,
		"targets", len(targets),
		"audio", cues != nil,
	)

	switch cfg.Display.Renderer {
	case config.RendererEngo:
		return startEngoRenderer(cfg, eng, loop, layout, ids, logger)
	case config.RendererNull:
		return startNullRenderer(ctx, cfg, eng, loop, layout, ids, logger, pulls)
	default:
		return startTerminalRenderer(ctx, cfg, eng, loop, layout, ids, logger)
	}
}

// startEngoRenderer starts the Engo GUI front end
func startEngoRenderer(cfg *config.GameConfig, eng *engine.Engine, loop *clock.Loop, layout *geometry.Layout, ids []string, logger *logging.Logger) error {
	scene, err := engorender.NewDartScene(engorender.Options{
		Engine:    eng,
		Loop:      loop,
		Layout:    layout,
		TargetIDs: ids,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	engorender.Run(engorender.RunOptions{
		Title:      "Darts",
		Width:      cfg.Display.Width,
		Height:     cfg.Display.Height,
		Fullscreen: cfg.Display.Fullscreen,
	}, scene)
	return nil
}

// startTerminalRenderer starts the tcell front end
func startTerminalRenderer(ctx context.Context, cfg *config.GameConfig, eng *engine.Engine, loop *clock.Loop, layout *geometry.Layout, ids []string, logger *logging.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return logging.WrapError(err, "failed to create screen")
	}

	app, err := terminal.NewApp(terminal.Options{
		Screen:    screen,
		Engine:    eng,
		Loop:      loop,
		Layout:    layout,
		TargetIDs: ids,
		Viewport: terminal.Viewport{
			CellWidth:  cfg.Display.CellWidth,
			CellHeight: cfg.Display.CellHeight,
		},
		FrameRate: cfg.Display.FrameRate,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	return app.Run(ctx)
}

// startNullRenderer throws the scripted pulls headlessly and prints the outcome
func startNullRenderer(ctx context.Context, cfg *config.GameConfig, eng *engine.Engine, loop *clock.Loop, layout *geometry.Layout, ids []string, logger *logging.Logger, pulls string) error {
	drags, err := render.ParsePulls(pulls)
	if err != nil {
		return logging.WrapError(err, "invalid -pulls")
	}
	if len(drags) == 0 {
		return errors.New("no pulls to throw")
	}

	layout.Apply(geometry.Size{
		Width:  float64(cfg.Display.Width),
		Height: float64(cfg.Display.Height),
	}, ids)
	eng.Resize()
	defer eng.Close()

	script := &render.Script{
		Engine:   eng,
		Loop:     loop,
		Renderer: render.NewNullRenderer(logger),
		Step:     time.Second / time.Duration(cfg.Display.FrameRate),
	}
	results, err := script.Run(ctx, drags)
	for i, r := range results {
		outcome := "miss"
		switch {
		case !r.Fired:
			outcome = "cancelled"
		case r.TargetID != "":
			outcome = "hit " + r.TargetID
		}
		fmt.Printf("pull %d (%g,%g): %s after %v\n", i+1, r.Pull.X, r.Pull.Y, outcome, r.Duration)
	}
	return err
}

// logNavigator stands in for page navigation: it records where a hit would go
type logNavigator struct {
	logger *logging.Logger
}

func (n *logNavigator) Navigate(ctx context.Context, t entity.Target) {
	n.logger.Info(ctx, "Navigating to section", "target_id", t.ID, "label", t.Label)
}

// subscribeLogging mirrors every bus event into the log
func subscribeLogging(ctx context.Context, bus *event.Bus, logger *logging.Logger) {
	bus.Subscribe(event.ShotFired, func(e event.Event) {
		if shot, ok := e.(*event.ShotEvent); ok {
			logger.Info(logging.WithFlightID(ctx, shot.FlightID), "Shot fired", "vx", shot.VX, "vy", shot.VY)
		}
	})
	bus.Subscribe(event.TargetReached, func(e event.Event) {
		if hit, ok := e.(*event.TargetEvent); ok {
			logger.Info(logging.WithFlightID(ctx, hit.FlightID), "Target reached", "target_id", hit.TargetID)
		}
	})
	missed := func(e event.Event) {
		if miss, ok := e.(*event.MissEvent); ok {
			logger.Info(logging.WithFlightID(ctx, miss.FlightID), "Shot missed",
				"reason", string(miss.Reason), "x", miss.X, "y", miss.Y)
		}
	}
	bus.Subscribe(event.ShotMissed, missed)
	bus.Subscribe(event.FlightTimedOut, missed)
	bus.Subscribe(event.DartReset, func(e event.Event) {
		logger.Debug(ctx, "Dart reset")
	})
	bus.Subscribe(event.ToastShown, func(e event.Event) {
		if toast, ok := e.(*event.ToastEvent); ok {
			logger.Debug(ctx, "Toast shown", "toast_id", toast.ToastID, "label", toast.Label)
		}
	})
}
