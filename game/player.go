// File: game/player.go
package game

// PlayerSide identifies the two players by the wall their paddle defends.
type PlayerSide int

const (
	SideLeft PlayerSide = iota
	SideRight
)

// NumPlayers is the fixed player count of a match.
const NumPlayers = 2

func (s PlayerSide) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "unknown"
}

// Opponent returns the other side.
func (s PlayerSide) Opponent() PlayerSide {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Valid reports whether s names an actual player slot.
func (s PlayerSide) Valid() bool {
	return s == SideLeft || s == SideRight
}

// Player carries the per-player match state: the running score, the rally
// counter (consecutive bounces since the last point), and whether the
// autopilot drives this player's paddle.
type Player struct {
	Score int  `json:"score"`
	Rally int  `json:"rally"`
	CPU   bool `json:"cpu"`
}
