// File: game/ball.go
package game

// Ball is the circular projectile. Position is the center of the circle.
// Direction components are in {-1, 0, 1}; DirX is never 0 during play.
// StepX and StepY are the per-tick speeds, re-randomized on every paddle
// bounce.
type Ball struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Radius int `json:"radius"`
	DirX   int `json:"dirX"`
	DirY   int `json:"dirY"`
	StepX  int `json:"stepX"`
	StepY  int `json:"stepY"`
}

// Tentative returns the position the ball would reach this tick if nothing
// blocks it: current position plus direction times step, component-wise.
func (b *Ball) Tentative() (int, int) {
	return b.X + b.DirX*b.StepX, b.Y + b.DirY*b.StepY
}

// PerimeterAt samples the ball's perimeter as if centered at (x, y).
func (b *Ball) PerimeterAt(x, y, samples int) PointSet {
	return FullCirclePoints(Point{x, y}, b.Radius, samples)
}

// Perimeter samples the ball's perimeter at its current position.
func (b *Ball) Perimeter(samples int) PointSet {
	return b.PerimeterAt(b.X, b.Y, samples)
}
