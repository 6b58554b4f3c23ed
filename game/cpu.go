// File: game/cpu.go
package game

import "github.com/gopong/gopong/utils"

// autopilot moves every CPU-controlled paddle toward the ball's current
// vertical position. The step is capped at the remaining gap so the paddle
// never overshoots, and at the regular per-tick paddle step so the autopilot
// has no speed advantage over a human player. Moves go through MovePaddle
// and obey the same clamping and rejection rules.
func (m *Match) autopilot() {
	ballY := m.ball.Y
	for side := SideLeft; side <= SideRight; side++ {
		if !m.players[side].CPU {
			continue
		}

		paddleY := m.paddles[side].Y
		gap := utils.Abs(paddleY - ballY)
		step := utils.MinInt(gap, m.cfg.PaddleStep)

		switch {
		case paddleY > ballY:
			m.MovePaddle(side, MoveUp, step)
		case paddleY < ballY:
			m.MovePaddle(side, MoveDown, step)
		}
	}
}
