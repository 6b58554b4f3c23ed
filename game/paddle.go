// File: game/paddle.go
package game

// Paddle is a rounded rectangle fixed to one side of the board. X is the
// horizontal center and never changes; Y is the vertical center and moves
// under player or autopilot control. Length runs along the wall, Width is the
// thickness facing the opponent.
type Paddle struct {
	X            int `json:"x"`
	Y            int `json:"y"`
	Width        int `json:"width"`
	Length       int `json:"length"`
	CornerRadius int `json:"-"`
}

// RegionsAt samples the paddle's four perimeter regions as if its vertical
// center were y.
func (p *Paddle) RegionsAt(y, arcSamples int) RectRegions {
	return RoundedRectPoints(Point{p.X, y}, p.Width, p.Length, p.CornerRadius, arcSamples)
}

// Regions samples the paddle's four perimeter regions at its current center.
func (p *Paddle) Regions(arcSamples int) RectRegions {
	return p.RegionsAt(p.Y, arcSamples)
}

// MinCenterY and MaxCenterY bound the paddle's legal vertical center so the
// paddle body always clears both horizontal walls by one pixel.
func (p *Paddle) MinCenterY() int { return p.Length/2 + 1 }

func (p *Paddle) MaxCenterY(boardHeight int) int { return boardHeight - p.Length/2 - 1 }
