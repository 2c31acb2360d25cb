// pkg/render/engo/renderer.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-darts/pkg/config"
	"github.com/opd-ai/go-darts/pkg/engine"
	"github.com/opd-ai/go-darts/pkg/physics"
	"github.com/opd-ai/go-darts/pkg/render"
)

// Draw order, back to front
const (
	zFloor float32 = iota
	zBoard
	zPreview
	zBand
	zDart
	zText
)

const (
	dartLength = config.DartRadius * 2.5
	dartWidth  = config.DartRadius * 0.75
	dotSize    = 6.0
	bandWidth  = 3.0
	floorWidth = 2.0
)

// sprite is one drawable entity in the render system
type sprite struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// place centers the sprite on c with the given size and rotation in degrees
func (s *sprite) place(c physics.Vector2D, w, h, rotation float64) {
	s.Width = float32(w)
	s.Height = float32(h)
	s.Rotation = float32(rotation)
	s.SetCenter(toPoint(c))
	s.Hidden = false
}

func (s *sprite) hide() {
	s.Hidden = true
}

// EngoRenderer implements render.Renderer by keeping one sprite per drawn
// object and updating them in place every frame.
type EngoRenderer struct {
	renderSystem *common.RenderSystem
	assets       *AssetManager
	hud          *HUD

	floor   *sprite
	dart    *sprite
	band    *sprite
	boards  map[string]*sprite
	labels  map[string]*sprite
	preview []*sprite
}

// NewEngoRenderer creates a renderer drawing into renderSystem
func NewEngoRenderer(renderSystem *common.RenderSystem, assets *AssetManager) *EngoRenderer {
	r := &EngoRenderer{
		renderSystem: renderSystem,
		assets:       assets,
		boards:       make(map[string]*sprite),
		labels:       make(map[string]*sprite),
	}
	r.floor = r.newSprite(assets.FloorSprite(), colorFloor, zFloor)
	r.band = r.newSprite(assets.BandSprite(), colorBand, zBand)
	r.dart = r.newSprite(assets.DartSprite(), colorDart, zDart)
	for i := 0; i < config.PreviewSteps; i++ {
		r.preview = append(r.preview, r.newSprite(assets.DotSprite(), colorText, zPreview))
	}
	r.hud = NewHUD(r)
	return r
}

var _ render.Renderer = (*EngoRenderer)(nil)

func (r *EngoRenderer) newSprite(d common.Drawable, c color.Color, z float32) *sprite {
	s := &sprite{BasicEntity: ecs.NewBasic()}
	s.RenderComponent = common.RenderComponent{Drawable: d, Color: c}
	s.SetZIndex(z)
	s.Hidden = true
	r.renderSystem.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
	return s
}

func (r *EngoRenderer) remove(s *sprite) {
	r.renderSystem.Remove(s.BasicEntity)
}

// Draw implements render.Renderer.
func (r *EngoRenderer) Draw(f engine.Frame) {
	if !f.Ready {
		r.hideAll()
		r.hud.Update(f)
		return
	}

	floor := f.Arena.FloorLevel() + config.DartRadius
	r.floor.place(physics.Vector2D{X: f.Arena.Width / 2, Y: floor}, f.Arena.Width, floorWidth, 0)

	r.drawBoards(f.Targets)
	r.drawPreview(f.Preview)

	if f.Aim != nil {
		mid := f.Aim.Anchor.Add(engine.ClampPull(f.Aim.Drag).Scale(0.5))
		r.band.place(mid, f.Aim.Length, bandWidth, f.Aim.Drag.AngleDegrees())
		r.band.Color = withAlpha(colorBand, 0.4+0.6*f.Aim.PullFraction())
	} else {
		r.band.hide()
	}

	// the triangle's apex points up, the dart heading is measured from +x
	r.dart.place(f.Dart.Position, dartWidth, dartLength, f.Dart.Rotation+90)

	r.hud.Update(f)
}

func (r *EngoRenderer) drawBoards(targets []engine.TargetView) {
	seen := make(map[string]bool, len(targets))
	for i, t := range targets {
		seen[t.ID] = true
		ring := boardColor(t.Color, i)

		board, ok := r.boards[t.ID]
		if !ok {
			board = r.newSprite(r.assets.BoardSprite(ring), colorBoardBG, zBoard)
			r.boards[t.ID] = board
		}
		label, ok := r.labels[t.ID]
		if !ok && r.assets.HasFont() {
			label = r.newSprite(r.assets.Text(t.Label), ring, zText)
			r.labels[t.ID] = label
		}

		if !t.Placed {
			board.hide()
			if label != nil {
				label.hide()
			}
			continue
		}

		board.Drawable = r.assets.BoardSprite(ring)
		board.Color = colorBoardBG
		if t.Highlighted {
			board.Drawable = r.assets.BoardSprite(colorHighlit)
			board.Color = ring
		}
		board.place(t.Bounds.Center, t.Bounds.Width, t.Bounds.Height, 0)

		if label != nil {
			text := label.Drawable.(common.Text)
			w := float64(text.Width())
			label.place(physics.Vector2D{X: t.Bounds.Center.X, Y: t.Bounds.Bottom() + 14}, w, float64(text.Height()), 0)
		}
	}

	for id, board := range r.boards {
		if seen[id] {
			continue
		}
		r.remove(board)
		delete(r.boards, id)
		if label, ok := r.labels[id]; ok {
			r.remove(label)
			delete(r.labels, id)
		}
	}
}

func (r *EngoRenderer) drawPreview(points []engine.TrajectoryPoint) {
	for i, dot := range r.preview {
		if i >= len(points) {
			dot.hide()
			continue
		}
		p := points[i]
		dot.Color = withAlpha(colorText, p.Opacity)
		dot.place(physics.Vector2D{X: p.X, Y: p.Y}, dotSize, dotSize, 0)
	}
}

func (r *EngoRenderer) hideAll() {
	r.floor.hide()
	r.band.hide()
	r.dart.hide()
	for _, s := range r.boards {
		s.hide()
	}
	for _, s := range r.labels {
		s.hide()
	}
	for _, s := range r.preview {
		s.hide()
	}
}

func toPoint(v physics.Vector2D) engo.Point {
	return engo.Point{X: float32(v.X), Y: float32(v.Y)}
}
