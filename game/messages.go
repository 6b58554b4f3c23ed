// File: game/messages.go
package game

// --- WebSocket messages (client -> server) ---

// Command is the JSON message a client sends to steer the match. Player is
// the side the command applies to (0 left, 1 right). Known commands:
//
//	"up"      hold the paddle's upward intent
//	"down"    hold the paddle's downward intent
//	"stop"    release the held intent
//	"cpuOn"   hand the paddle to the autopilot
//	"cpuOff"  take the paddle back from the autopilot
//	"restart" reinitialize the match (player field is ignored)
type Command struct {
	Player  int    `json:"player"`
	Command string `json:"command"`
}

// --- Actor messages (MatchActor mailbox) ---

// MatchTick advances the simulation by one frame.
type MatchTick struct{}

// PaddleIntent sets or clears a player's held movement intent. The intent is
// applied on every tick until replaced, mirroring a held key.
type PaddleIntent struct {
	Side PlayerSide
	Move MoveDir
}

// SetCPU toggles the autopilot for one player.
type SetCPU struct {
	Side    PlayerSide
	Enabled bool
}

// RestartMatch reinitializes the match from any state.
type RestartMatch struct{}
