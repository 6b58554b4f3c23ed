// File: game/match.go
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gopong/gopong/utils"
)

// Rand is the randomness source a Match draws from. *rand.Rand satisfies it;
// tests supply scripted sequences to pin down post-bounce outcomes.
type Rand interface {
	Intn(n int) int
}

// MatchStatus is the lifecycle state of a match.
type MatchStatus int

const (
	StatusIdle MatchStatus = iota
	StatusPlaying
	StatusGameOver
)

func (s MatchStatus) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "gameOver"
	}
	return "idle"
}

// MoveDir is a manual paddle movement intent for one tick.
type MoveDir int

const (
	MoveNone MoveDir = 0
	MoveUp   MoveDir = -1
	MoveDown MoveDir = 1
)

// TickInput carries the per-player intents for one simulation tick. Moves are
// ignored for players whose CPU flag is set.
type TickInput struct {
	Moves [NumPlayers]MoveDir
	CPU   [NumPlayers]bool
}

// TickResult reports what the tick produced so the caller can render
// transitions. GameOver is set only on the tick that ends the match.
type TickResult struct {
	Scored   bool
	Scorer   PlayerSide
	GameOver bool
	Winner   PlayerSide
}

// ballDirections are the six permitted direction tuples a reset chooses from.
// The horizontal component is never zero during play.
var ballDirections = [6][2]int{
	{1, 0}, {1, -1}, {1, 1},
	{-1, 0}, {-1, -1}, {-1, 1},
}

// Match owns the complete simulation state: the ball, both paddles, both
// player states and the board dimensions. All mutation goes through its
// operations; it is single-threaded and must be externally confined if the
// host is concurrent.
type Match struct {
	cfg     utils.Config
	rng     Rand
	status  MatchStatus
	winner  PlayerSide
	ball    Ball
	paddles [NumPlayers]Paddle
	players [NumPlayers]Player
	steps   [][2]int
}

// NewMatch validates the configuration and builds an idle match. A nil rng
// falls back to a time-seeded source. Call Initialize to start playing.
func NewMatch(cfg utils.Config, rng Rand) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new match: %w", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	steps := make([][2]int, 0, (cfg.BallStepXMax-cfg.BallStepXMin+1)*(cfg.BallStepYMax-cfg.BallStepYMin+1))
	for x := cfg.BallStepXMin; x <= cfg.BallStepXMax; x++ {
		for y := cfg.BallStepYMin; y <= cfg.BallStepYMax; y++ {
			steps = append(steps, [2]int{x, y})
		}
	}

	m := &Match{
		cfg:    cfg,
		rng:    rng,
		status: StatusIdle,
		steps:  steps,
		ball: Ball{
			Radius: cfg.BallRadius,
			StepX:  cfg.BallStepXMin,
			StepY:  cfg.BallStepYMin,
		},
	}

	centerY := cfg.BoardHeight / 2
	m.paddles[SideLeft] = Paddle{
		X:            cfg.PaddleWidth / 2,
		Y:            centerY,
		Width:        cfg.PaddleWidth,
		Length:       cfg.PaddleLength,
		CornerRadius: cfg.PaddleCornerRadius,
	}
	m.paddles[SideRight] = Paddle{
		X:            cfg.BoardWidth - cfg.PaddleWidth/2,
		Y:            centerY,
		Width:        cfg.PaddleWidth,
		Length:       cfg.PaddleLength,
		CornerRadius: cfg.PaddleCornerRadius,
	}

	return m, nil
}

// Initialize establishes a fresh match from any prior state: scores to zero,
// paddles centered, then a point reset. It is the only transition into
// StatusPlaying.
func (m *Match) Initialize() {
	centerY := m.cfg.BoardHeight / 2
	for side := range m.players {
		m.players[side].Score = 0
		m.paddles[side].Y = centerY
	}
	m.status = StatusPlaying
	m.winner = 0
	m.Reset()
}

// Reset starts a new point: re-randomized ball direction, rally counters to
// zero, ball centered. Paddles and scores are untouched.
func (m *Match) Reset() {
	dir := ballDirections[m.rng.Intn(len(ballDirections))]
	m.ball.DirX, m.ball.DirY = dir[0], dir[1]
	m.ball.X = m.cfg.BoardWidth / 2
	m.ball.Y = m.cfg.BoardHeight / 2
	for side := range m.players {
		m.players[side].Rally = 0
	}
}

// Tick advances exactly one frame: CPU flags, manual paddle moves for human
// players, autopilot moves, ball physics, then goal and game-over checks.
// Ticking a match that is not playing does nothing.
func (m *Match) Tick(in TickInput) TickResult {
	if m.status != StatusPlaying {
		return TickResult{}
	}

	for side := SideLeft; side <= SideRight; side++ {
		m.players[side].CPU = in.CPU[side]
	}
	for side := SideLeft; side <= SideRight; side++ {
		if !m.players[side].CPU && in.Moves[side] != MoveNone {
			m.MovePaddle(side, in.Moves[side], m.cfg.PaddleStep)
		}
	}
	m.autopilot()
	m.moveBall()

	var res TickResult
	if scorer, ok := m.checkGoal(); ok {
		m.players[scorer].Score++
		res.Scored = true
		res.Scorer = scorer
		if m.players[scorer].Score >= m.cfg.WinThreshold {
			m.status = StatusGameOver
			m.winner = scorer
			res.GameOver = true
			res.Winner = scorer
		}
		m.Reset()
	}
	return res
}

// MovePaddle shifts a paddle's vertical center by step pixels in the given
// direction, clamped to the legal range. The move is silently rejected when
// the clamped position would still violate the walls or push the paddle into
// the ball.
func (m *Match) MovePaddle(side PlayerSide, dir MoveDir, step int) {
	if !side.Valid() || (dir != MoveUp && dir != MoveDown) || step <= 0 {
		return
	}

	paddle := &m.paddles[side]
	newY := paddle.Y + int(dir)*step
	newY = utils.Clamp(newY, paddle.MinCenterY(), paddle.MaxCenterY(m.cfg.BoardHeight))

	if exceedsVerticalBounds(newY, paddle.Length/2, m.cfg.BoardHeight) ||
		m.paddleBlockedByBall(side, newY) {
		return
	}
	paddle.Y = newY
}

// moveBall performs the physics step. A paddle bounce consumes the whole
// tick: the ball holds its pre-move position and only the velocity state
// changes. A wall bounce reflects within the tick instead.
func (m *Match) moveBall() {
	dirY := m.ball.DirY
	newX, newY := m.ball.Tentative()

	if side, region := m.detectPaddleHit(newX, newY); region != HitNone {
		m.bounceOffPaddle(side, region)
		return
	}

	if exceedsVerticalBounds(newY, m.ball.Radius, m.cfg.BoardHeight) {
		m.ball.DirY = -dirY
		newY = m.ball.Y + m.ball.DirY*m.ball.StepY
	}

	m.ball.X = newX
	m.ball.Y = newY
}

// bounceOffPaddle applies the post-collision direction and speed changes and
// credits the rally. The vertical direction draw happens before the speed
// draw; tests that script the randomness rely on that order.
func (m *Match) bounceOffPaddle(side PlayerSide, region HitRegion) {
	switch region {
	case HitSide:
		m.ball.DirY = m.rng.Intn(3) - 1
	case HitTop:
		m.ball.DirY = -1
	case HitBottom:
		m.ball.DirY = 1
	default:
		return
	}
	m.ball.DirX = -m.ball.DirX

	step := m.steps[m.rng.Intn(len(m.steps))]
	m.ball.StepX, m.ball.StepY = step[0], step[1]

	m.players[side].Rally++
}

// checkGoal detects a goal from the tentative next x position. Crossing the
// left goal line scores for the right player and vice versa.
func (m *Match) checkGoal() (PlayerSide, bool) {
	tentativeX := m.ball.X + m.ball.DirX*m.ball.StepX
	if tentativeX <= m.ball.Radius {
		return SideRight, true
	}
	if tentativeX >= m.cfg.BoardWidth-m.ball.Radius {
		return SideLeft, true
	}
	return 0, false
}

// --- Read accessors ---

func (m *Match) Status() MatchStatus { return m.status }

// Winner returns the winning side once the match is over.
func (m *Match) Winner() (PlayerSide, bool) {
	return m.winner, m.status == StatusGameOver
}

func (m *Match) BoardWidth() int  { return m.cfg.BoardWidth }
func (m *Match) BoardHeight() int { return m.cfg.BoardHeight }

// BallPosition returns the ball's center.
func (m *Match) BallPosition() (int, int) { return m.ball.X, m.ball.Y }

// BallState returns a copy of the full ball state.
func (m *Match) BallState() Ball { return m.ball }

// PaddleCenter returns the given paddle's center point.
func (m *Match) PaddleCenter(side PlayerSide) (int, int) {
	return m.paddles[side].X, m.paddles[side].Y
}

func (m *Match) PaddleLength(side PlayerSide) int { return m.paddles[side].Length }

func (m *Match) Score(side PlayerSide) int { return m.players[side].Score }

func (m *Match) Rally(side PlayerSide) int { return m.players[side].Rally }

func (m *Match) CPUEnabled(side PlayerSide) bool { return m.players[side].CPU }
