// Package geometry describes where things are on screen. The simulation never
// caches these values: it asks a Provider every time it needs them, because
// the host layout may change between frames.
package geometry

import (
	"sync"

	"github.com/opd-ai/go-darts/pkg/physics"
)

//go:generate go tool mockgen -destination=./mocks/provider_mock.go -package=mocks . Provider

// Size is the measured play area in pixels
type Size struct {
	Width  float64
	Height float64
}

// Ready reports whether the area has been measured
func (s Size) Ready() bool {
	return s.Width > 0 && s.Height > 0
}

// Provider exposes live play-area and target geometry in play-area-local pixels.
type Provider interface {
	// PlayArea returns the current play area; ok is false until it has been measured.
	PlayArea() (Size, bool)
	// TargetBounds returns the bounding box of the target with the given id.
	TargetBounds(id string) (physics.Rect, bool)
}

// Layout is a Provider whose geometry is pushed by a front end. It is safe
// for concurrent use so a resize handler may update it from another goroutine.
type Layout struct {
	mu      sync.RWMutex
	area    Size
	targets map[string]physics.Rect
}

// NewLayout creates an unmeasured layout
func NewLayout() *Layout {
	return &Layout{
		targets: make(map[string]physics.Rect),
	}
}

// SetPlayArea records the measured play area
func (l *Layout) SetPlayArea(size Size) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.area = size
}

// SetTarget records the bounds of one target
func (l *Layout) SetTarget(id string, bounds physics.Rect) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.targets[id] = bounds
}

// RemoveTarget forgets a target; later lookups report it as missing
func (l *Layout) RemoveTarget(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.targets, id)
}

// PlayArea implements Provider.
func (l *Layout) PlayArea() (Size, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.area, l.area.Ready()
}

// TargetBounds implements Provider.
func (l *Layout) TargetBounds(id string) (physics.Rect, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	r, ok := l.targets[id]
	return r, ok
}

// Row arrangement of the boards along the top of the play area
const (
	rowHeightFraction = 0.28
	minBoardSize      = 24.0
	maxBoardSize      = 96.0
)

// ArrangeRow places square boards of the given ids in one evenly spaced row
// across the upper part of area, keeping the order of ids. Boards shrink to
// fit narrow areas.
func ArrangeRow(area Size, ids []string) map[string]physics.Rect {
	out := make(map[string]physics.Rect, len(ids))
	if !area.Ready() || len(ids) == 0 {
		return out
	}

	slot := area.Width / float64(len(ids))
	size := slot * 0.6
	if size > maxBoardSize {
		size = maxBoardSize
	}
	if size < minBoardSize {
		size = minBoardSize
	}

	y := area.Height * rowHeightFraction
	for i, id := range ids {
		out[id] = physics.Rect{
			Center: physics.Vector2D{X: slot*float64(i) + slot/2, Y: y},
			Width:  size,
			Height: size,
		}
	}
	return out
}

// Apply measures area and arranges ids on l in one step
func (l *Layout) Apply(area Size, ids []string) {
	rects := ArrangeRow(area, ids)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.area = area
	l.targets = make(map[string]physics.Rect, len(rects))
	for id, r := range rects {
		l.targets[id] = r
	}
}
