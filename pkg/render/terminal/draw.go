package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-darts/pkg/engine"
	"github.com/opd-ai/go-darts/pkg/physics"
	"github.com/opd-ai/go-darts/pkg/render"
)

const (
	hintText   = "Use me to aim"
	toastText  = "Bullseye! "
	waitText   = "measuring..."
	statusHelp = "drag the dart with the mouse | q quit"
)

// Arrow runes indexed by heading in 45 degree steps, clockwise from east.
// Screen y grows downwards, so +90 degrees points down.
var arrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

var (
	styleFloor   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleAim     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleDart    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHint    = tcell.StyleDefault.Foreground(tcell.ColorGray).Italic(true)
	styleToast   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen).Bold(true)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	defaultBoard = tcell.ColorTeal
)

// Painter draws engine frames onto a tcell screen
type Painter struct {
	screen tcell.Screen
	view   Viewport
}

// NewPainter creates a painter for screen using view to place pixels
func NewPainter(screen tcell.Screen, view Viewport) *Painter {
	return &Painter{screen: screen, view: view}
}

var _ render.Renderer = (*Painter)(nil)

// Draw implements render.Renderer.
func (p *Painter) Draw(f engine.Frame) {
	p.screen.Clear()
	cols, rows := p.screen.Size()

	if !f.Ready {
		p.text((cols-len(waitText))/2, rows/2, waitText, styleStatus)
		p.screen.Show()
		return
	}

	_, floorRow := p.view.ToCell(physics.Vector2D{Y: f.Arena.FloorLevel()})
	for x := 0; x < cols; x++ {
		p.set(x, floorRow+1, '─', styleFloor)
	}

	for _, t := range f.Targets {
		if t.Placed {
			p.board(t)
		}
	}

	for _, pt := range f.Preview {
		col, row := p.view.ToCell(physics.Vector2D{X: pt.X, Y: pt.Y})
		p.set(col, row, '·', tcell.StyleDefault.Foreground(fade(pt.Opacity)))
	}

	if f.Aim != nil {
		p.aimLine(*f.Aim)
	}

	col, row := p.view.ToCell(f.Dart.Position)
	p.set(col, row, arrowRune(f.Dart.Rotation), styleDart)
	if f.Hint {
		p.text(col+2, row, hintText, styleHint)
	}

	for i, toast := range f.Toasts {
		msg := toastText + toast.Label
		p.text(cols-len([]rune(msg))-1, i, msg, styleToast)
	}

	p.text(0, rows-1, f.State.String()+"  "+statusHelp, styleStatus)
	p.screen.Show()
}

func (p *Painter) board(t engine.TargetView) {
	color := defaultBoard
	if t.Color != "" {
		if c := tcell.GetColor(t.Color); c != tcell.ColorDefault {
			color = c
		}
	}
	style := tcell.StyleDefault.Foreground(color)
	if t.Highlighted {
		style = style.Reverse(true).Bold(true)
	}

	left, top := p.view.ToCell(physics.Vector2D{X: t.Bounds.Left(), Y: t.Bounds.Top()})
	right, bottom := p.view.ToCell(physics.Vector2D{X: t.Bounds.Right(), Y: t.Bounds.Bottom()})
	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			p.set(x, y, '░', style)
		}
	}
	cx, cy := p.view.ToCell(t.Bounds.Center)
	p.set(cx, cy, '◎', style)

	label := []rune(t.Label)
	p.text(cx-len(label)/2, bottom, t.Label, tcell.StyleDefault.Foreground(color))
}

func (p *Painter) aimLine(a engine.AimLine) {
	step := math.Min(p.view.CellWidth, p.view.CellHeight)
	if step <= 0 || a.Length <= 0 {
		return
	}
	dir := physics.Vector2D{X: math.Cos(a.Angle), Y: math.Sin(a.Angle)}
	for d := step; d <= a.Length; d += step {
		col, row := p.view.ToCell(a.Anchor.Add(dir.Scale(d)))
		p.set(col, row, '•', styleAim)
	}
}

func (p *Painter) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		p.set(x, y, r, style)
		x++
	}
}

func (p *Painter) set(x, y int, r rune, style tcell.Style) {
	cols, rows := p.screen.Size()
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return
	}
	p.screen.SetContent(x, y, r, nil, style)
}

// arrowRune picks the arrow closest to a heading given in degrees
func arrowRune(degrees float64) rune {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return arrows[7]
	}
	i := int(math.Round(degrees/45)) % 8
	if i < 0 {
		i += 8
	}
	return arrows[i]
}

// fade maps a preview opacity onto a grey ramp
func fade(opacity float64) tcell.Color {
	v := int32(60 + 195*math.Max(0, math.Min(1, opacity)))
	return tcell.NewRGBColor(v, v, v)
}
