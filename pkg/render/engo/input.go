// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-darts/pkg/input"
	"github.com/opd-ai/go-darts/pkg/physics"
)

// Button names registered with engo.Input
const (
	buttonCancel = "cancel"
	buttonQuit   = "quit"
)

// InputSystem turns engo mouse state into aim gestures
type InputSystem struct {
	tracker *input.Tracker
}

// NewInputSystem creates an input system driving tracker
func NewInputSystem(tracker *input.Tracker) *InputSystem {
	return &InputSystem{tracker: tracker}
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {}

// Update reads the mouse and keyboard once per frame
func (is *InputSystem) Update(dt float32) {
	if engo.Input.Button(buttonQuit).JustPressed() {
		engo.Exit()
		return
	}
	if engo.Input.Button(buttonCancel).JustPressed() {
		is.tracker.Cancel()
		return
	}
	applyPointer(is.tracker, engo.Input.Mouse)
}

// applyPointer forwards one mouse sample. Only the left button aims.
func applyPointer(t *input.Tracker, m engo.Mouse) {
	p := physics.Vector2D{X: float64(m.X), Y: float64(m.Y)}

	switch m.Action {
	case engo.Press:
		if m.Button == engo.MouseButtonLeft {
			t.Press(p)
		}
	case engo.Release:
		if m.Button == engo.MouseButtonLeft {
			t.Release(p)
		}
	default:
		if p != t.Last() {
			t.Move(p)
		}
	}
}

// SetupInputBindings sets up the key bindings for the game
func SetupInputBindings() {
	engo.Input.RegisterButton(buttonCancel, engo.KeyEscape)
	engo.Input.RegisterButton(buttonQuit, engo.KeyQ)
}
