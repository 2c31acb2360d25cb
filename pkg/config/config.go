// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Renderer names accepted by DisplayConfig.Renderer
const (
	RendererTerminal = "terminal"
	RendererEngo     = "engo"
	RendererNull     = "null"
)

var (
	ErrNoTargets       = errors.New("at least one target is required")
	ErrEmptyTargetID   = errors.New("target id must not be empty")
	ErrDuplicateTarget = errors.New("duplicate target id")
	ErrUnknownRenderer = errors.New("unknown renderer")
	ErrInvalidDisplay  = errors.New("invalid display settings")
	ErrInvalidVolume   = errors.New("invalid audio volume")
)

// GameConfig contains the runtime configuration of the dart game
type GameConfig struct {
	Targets  []TargetConfig `json:"targets"`
	Display  DisplayConfig  `json:"display"`
	Audio    AudioConfig    `json:"audio"`
	LogLevel string         `json:"logLevel"`
}

// TargetConfig describes one board on the wall
type TargetConfig struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// DisplayConfig contains front-end settings
type DisplayConfig struct {
	Renderer   string  `json:"renderer"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Fullscreen bool    `json:"fullscreen"`
	CellWidth  float64 `json:"cellWidth"`
	CellHeight float64 `json:"cellHeight"`
	FrameRate  int     `json:"frameRate"`
}

// AudioConfig contains sound cue settings
type AudioConfig struct {
	Enabled bool    `json:"enabled"`
	Volume  float64 `json:"volume"`
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the stock three-target setup
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Targets: []TargetConfig{
			{ID: "about", Label: "About", Color: "#00d4ff"},
			{ID: "work", Label: "Work", Color: "#ff6b9d"},
			{ID: "contact", Label: "Contact", Color: "#ffd166"},
		},
		Display: DisplayConfig{
			Renderer:   RendererTerminal,
			Width:      960,
			Height:     640,
			Fullscreen: false,
			CellWidth:  8,
			CellHeight: 16,
			FrameRate:  60,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		LogLevel: "INFO",
	}
}

// ApplyEnvOverrides overlays DARTS_* environment variables on the config.
// Unparseable values are reported and leave the field untouched.
func ApplyEnvOverrides(config *GameConfig) error {
	var errs []error

	if v, ok := os.LookupEnv("DARTS_RENDERER"); ok {
		config.Display.Renderer = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := os.LookupEnv("DARTS_LOG_LEVEL"); ok {
		config.LogLevel = strings.ToUpper(strings.TrimSpace(v))
	}
	overrideInt := func(key string, dst *int) {
		v, ok := os.LookupEnv(key)
		if !ok {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			return
		}
		*dst = n
	}
	overrideBool := func(key string, dst *bool) {
		v, ok := os.LookupEnv(key)
		if !ok {
			return
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			return
		}
		*dst = b
	}

	overrideInt("DARTS_WIDTH", &config.Display.Width)
	overrideInt("DARTS_HEIGHT", &config.Display.Height)
	overrideInt("DARTS_FRAME_RATE", &config.Display.FrameRate)
	overrideBool("DARTS_FULLSCREEN", &config.Display.Fullscreen)
	overrideBool("DARTS_AUDIO", &config.Audio.Enabled)

	return errors.Join(errs...)
}

// Validate checks the configuration for values the game cannot run with
func (c *GameConfig) Validate() error {
	var errs []error

	if len(c.Targets) == 0 {
		errs = append(errs, ErrNoTargets)
	}
	seen := make(map[string]bool, len(c.Targets))
	for i, t := range c.Targets {
		id := strings.TrimSpace(t.ID)
		if id == "" {
			errs = append(errs, fmt.Errorf("target %d: %w", i, ErrEmptyTargetID))
			continue
		}
		if seen[id] {
			errs = append(errs, fmt.Errorf("target %q: %w", id, ErrDuplicateTarget))
		}
		seen[id] = true
	}

	switch c.Display.Renderer {
	case RendererTerminal, RendererEngo, RendererNull:
	default:
		errs = append(errs, fmt.Errorf("%q: %w", c.Display.Renderer, ErrUnknownRenderer))
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		errs = append(errs, fmt.Errorf("size %dx%d: %w", c.Display.Width, c.Display.Height, ErrInvalidDisplay))
	}
	if c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("cell %gx%g: %w", c.Display.CellWidth, c.Display.CellHeight, ErrInvalidDisplay))
	}
	if c.Display.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("frame rate %d: %w", c.Display.FrameRate, ErrInvalidDisplay))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("%g: %w", c.Audio.Volume, ErrInvalidVolume))
	}

	return errors.Join(errs...)
}
