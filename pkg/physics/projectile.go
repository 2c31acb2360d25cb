// pkg/physics/projectile.go
package physics

// PositionAt returns where a body launched from origin with velocity v is
// after t seconds under downward gravity g:
//
//	x(t) = x0 + vx·t
//	y(t) = y0 + vy·t + ½·g·t²
func PositionAt(origin, v Vector2D, g, t float64) Vector2D {
	return Vector2D{
		X: origin.X + v.X*t,
		Y: origin.Y + v.Y*t + 0.5*g*t*t,
	}
}

// Integrate advances a body by dt under constant gravity g with an explicit
// Euler step: position moves with the old velocity, then gravity is applied.
// Over n equal steps y comes out ½·g·t·dt less than PositionAt.
func Integrate(pos, v Vector2D, g, dt float64) (Vector2D, Vector2D) {
	next := Vector2D{
		X: pos.X + v.X*dt,
		Y: pos.Y + v.Y*dt,
	}
	v.Y += g * dt
	return next, v
}
