// pkg/render/engo/hud.go
package engo

import (
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-darts/pkg/engine"
	"github.com/opd-ai/go-darts/pkg/entity"
	"github.com/opd-ai/go-darts/pkg/physics"
)

const (
	hintText    = "Use me to aim"
	toastPrefix = "Bullseye! "
	toastMargin = 16.0
	toastGap    = 6.0
)

// HUD draws the text overlays: the pick-up hint and the toast stack
type HUD struct {
	r      *EngoRenderer
	hint   *sprite
	toasts map[string]*sprite
}

// NewHUD creates the overlay for r. Without a font it draws nothing.
func NewHUD(r *EngoRenderer) *HUD {
	hud := &HUD{
		r:      r,
		toasts: make(map[string]*sprite),
	}
	if r.assets.HasFont() {
		hud.hint = r.newSprite(r.assets.Text(hintText), colorText, zText)
	}
	return hud
}

// Update syncs the overlay with f
func (hud *HUD) Update(f engine.Frame) {
	if hud.hint == nil {
		return
	}

	if f.Hint {
		text := hud.hint.Drawable.(common.Text)
		pos := f.Dart.Position.Add(physics.Vector2D{X: 0, Y: -2.5 * 16})
		hud.hint.place(pos, float64(text.Width()), float64(text.Height()), 0)
	} else {
		hud.hint.hide()
	}

	hud.syncToasts(f)
}

func (hud *HUD) syncToasts(f engine.Frame) {
	live := make(map[string]bool, len(f.Toasts))
	y := toastMargin
	for _, t := range f.Toasts {
		live[t.ID] = true
		s := hud.toastSprite(t)
		text := s.Drawable.(common.Text)
		w, h := float64(text.Width()), float64(text.Height())
		s.place(physics.Vector2D{X: f.Arena.Width - toastMargin - w/2, Y: y + h/2}, w, h, 0)
		y += h + toastGap
	}

	for id, s := range hud.toasts {
		if !live[id] {
			hud.r.remove(s)
			delete(hud.toasts, id)
		}
	}
}

func (hud *HUD) toastSprite(t entity.Toast) *sprite {
	if s, ok := hud.toasts[t.ID]; ok {
		return s
	}
	s := hud.r.newSprite(hud.r.assets.Text(toastMessage(t)), colorToast, zText)
	hud.toasts[t.ID] = s
	return s
}

func toastMessage(t entity.Toast) string {
	return toastPrefix + t.Label
}
