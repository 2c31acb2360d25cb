package terminal

import (
	"math"

	"github.com/opd-ai/go-darts/pkg/geometry"
	"github.com/opd-ai/go-darts/pkg/physics"
)

// Viewport maps terminal cells to play-area pixels. Every cell stands for a
// CellWidth x CellHeight block of pixels.
type Viewport struct {
	CellWidth  float64
	CellHeight float64
}

// Area returns the pixel size of a cols x rows screen
func (v Viewport) Area(cols, rows int) geometry.Size {
	return geometry.Size{
		Width:  float64(cols) * v.CellWidth,
		Height: float64(rows) * v.CellHeight,
	}
}

// ToPixel returns the pixel at the center of cell (col, row)
func (v Viewport) ToPixel(col, row int) physics.Vector2D {
	return physics.Vector2D{
		X: (float64(col) + 0.5) * v.CellWidth,
		Y: (float64(row) + 0.5) * v.CellHeight,
	}
}

// ToCell returns the cell containing pixel p
func (v Viewport) ToCell(p physics.Vector2D) (col, row int) {
	return int(math.Floor(p.X / v.CellWidth)), int(math.Floor(p.Y / v.CellHeight))
}
