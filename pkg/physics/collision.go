// pkg/physics/collision.go
package physics

// Circle represents a circular hit area
type Circle struct {
	Center Vector2D
	Radius float64
}

// Contains reports whether point lies strictly inside the circle
func (c Circle) Contains(point Vector2D) bool {
	return c.Center.Distance(point) < c.Radius
}

// Rect represents a rectangular area by its center
type Rect struct {
	Center Vector2D
	Width  float64
	Height float64
}

// RectFromCorner builds a Rect from its top-left corner and size
func RectFromCorner(left, top, width, height float64) Rect {
	return Rect{
		Center: Vector2D{X: left + width/2, Y: top + height/2},
		Width:  width,
		Height: height,
	}
}

func (r Rect) Left() float64   { return r.Center.X - r.Width/2 }
func (r Rect) Right() float64  { return r.Center.X + r.Width/2 }
func (r Rect) Top() float64    { return r.Center.Y - r.Height/2 }
func (r Rect) Bottom() float64 { return r.Center.Y + r.Height/2 }

// Contains reports whether point is inside the rectangle (right and bottom edges exclusive)
func (r Rect) Contains(point Vector2D) bool {
	return point.X >= r.Left() &&
		point.X < r.Right() &&
		point.Y >= r.Top() &&
		point.Y < r.Bottom()
}
