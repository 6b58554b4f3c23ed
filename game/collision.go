// File: game/collision.go
package game

// HitRegion classifies which part of a paddle the ball struck. The region
// decides the post-bounce trajectory: a side hit re-randomizes the vertical
// direction, a top or bottom hit forces it.
type HitRegion int

const (
	HitNone HitRegion = iota
	HitSide
	HitTop
	HitBottom
)

func (h HitRegion) String() string {
	switch h {
	case HitSide:
		return "side"
	case HitTop:
		return "top"
	case HitBottom:
		return "bottom"
	}
	return "none"
}

// exceedsVerticalBounds reports whether a body centered at newY with the
// given half extent would cross the top or bottom wall. Shared by the ball
// bounce and the paddle clamp.
func exceedsVerticalBounds(newY, halfExtent, boardHeight int) bool {
	return newY+halfExtent > boardHeight || newY-halfExtent < 0
}

// withinReach reports whether ballX is inside the culling band near either
// edge. Paddle-vs-ball checks are skipped entirely outside the band, so
// outside it a collision can never be detected.
func (m *Match) withinReach(ballX int) bool {
	band := m.cfg.CullingBandPaddleWidths * m.cfg.PaddleWidth
	return ballX <= band || ballX >= m.cfg.BoardWidth-band
}

// facingRegion returns the paddle edge that faces the playfield: the right
// edge of the left paddle and the left edge of the right paddle.
func facingRegion(side PlayerSide, regions RectRegions) PointSet {
	if side == SideLeft {
		return regions.Right
	}
	return regions.Left
}

// detectPaddleHit tests the ball perimeter sampled at its tentative position
// against both paddles. Per paddle the facing side is tested first, then the
// top region, then the bottom region; the first non-disjoint region wins.
// The perimeter is only sampled once the culling band admits the position.
func (m *Match) detectPaddleHit(tentativeX, tentativeY int) (PlayerSide, HitRegion) {
	if !m.withinReach(tentativeX) {
		return 0, HitNone
	}
	perimeter := m.ball.PerimeterAt(tentativeX, tentativeY, m.cfg.BallSamples)

	for side := SideLeft; side <= SideRight; side++ {
		paddle := &m.paddles[side]
		regions := paddle.Regions(m.cfg.ArcSamples)

		if perimeter.Intersects(facingRegion(side, regions)) {
			return side, HitSide
		}
		if perimeter.Intersects(regions.Top) {
			return side, HitTop
		}
		if perimeter.Intersects(regions.Bottom) {
			return side, HitBottom
		}
	}
	return 0, HitNone
}

// paddleBlockedByBall reports whether moving the paddle's center to
// candidateY would push its top or bottom region into the ball's current
// perimeter. Side regions are not tested: a paddle slides along its wall and
// can only sweep into the ball lengthwise.
func (m *Match) paddleBlockedByBall(side PlayerSide, candidateY int) bool {
	if !m.withinReach(m.ball.X) {
		return false
	}

	perimeter := m.ball.Perimeter(m.cfg.BallSamples)
	regions := m.paddles[side].RegionsAt(candidateY, m.cfg.ArcSamples)
	return perimeter.Intersects(regions.Top) || perimeter.Intersects(regions.Bottom)
}
