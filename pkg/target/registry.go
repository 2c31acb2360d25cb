// Package target holds the boards the dart can hit and answers hit tests
// against their live on-screen positions.
package target

import (
	"errors"
	"fmt"

	"github.com/opd-ai/go-darts/pkg/config"
	"github.com/opd-ai/go-darts/pkg/entity"
	"github.com/opd-ai/go-darts/pkg/geometry"
	"github.com/opd-ai/go-darts/pkg/physics"
)

var (
	ErrEmptyID     = errors.New("target id must not be empty")
	ErrDuplicateID = errors.New("target already registered")
)

// Registry keeps targets in registration order. Centers are looked up from
// the geometry provider on every call and never stored.
type Registry struct {
	provider geometry.Provider
	targets  []entity.Target
	radius   float64
}

// NewRegistry creates an empty registry backed by provider
func NewRegistry(provider geometry.Provider) *Registry {
	return &Registry{
		provider: provider,
		radius:   config.HitRadius,
	}
}

// Register appends t. Ids must be non-empty and unique.
func (r *Registry) Register(t entity.Target) error {
	if t.ID == "" {
		return ErrEmptyID
	}
	for _, existing := range r.targets {
		if existing.ID == t.ID {
			return fmt.Errorf("%q: %w", t.ID, ErrDuplicateID)
		}
	}
	r.targets = append(r.targets, t)
	return nil
}

// Targets returns a copy of the registered targets in order
func (r *Registry) Targets() []entity.Target {
	out := make([]entity.Target, len(r.targets))
	copy(out, r.targets)
	return out
}

// Center returns the live center of target id
func (r *Registry) Center(id string) (physics.Vector2D, bool) {
	bounds, ok := r.provider.TargetBounds(id)
	if !ok {
		return physics.Vector2D{}, false
	}
	return bounds.Center, true
}

// HitTest returns the first target, in registration order, whose live center
// lies within the hit radius of p. Targets the provider cannot place are skipped.
func (r *Registry) HitTest(p physics.Vector2D) (entity.Target, bool) {
	for _, t := range r.targets {
		center, ok := r.Center(t.ID)
		if !ok {
			continue
		}
		if (physics.Circle{Center: center, Radius: r.radius}).Contains(p) {
			return t, true
		}
	}
	return entity.Target{}, false
}
