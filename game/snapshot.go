// File: game/snapshot.go
package game

// BoardSnapshot carries the immutable board dimensions to clients.
type BoardSnapshot struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Snapshot is the full renderable match state sent over the wire. Clients
// only ever read it; all mutation happens through match operations.
type Snapshot struct {
	MessageType string             `json:"messageType"` // "state"
	Status      string             `json:"status"`
	Board       BoardSnapshot      `json:"board"`
	Ball        Ball               `json:"ball"`
	Paddles     [NumPlayers]Paddle `json:"paddles"`
	Players     [NumPlayers]Player `json:"players"`
	Winner      string             `json:"winner,omitempty"`
}

// Snapshot copies the current match state into its wire representation.
func (m *Match) Snapshot() Snapshot {
	snap := Snapshot{
		MessageType: "state",
		Status:      m.status.String(),
		Board: BoardSnapshot{
			Width:  m.cfg.BoardWidth,
			Height: m.cfg.BoardHeight,
		},
		Ball:    m.ball,
		Paddles: m.paddles,
		Players: m.players,
	}
	if winner, over := m.Winner(); over {
		snap.Winner = winner.String()
	}
	return snap
}
