package server

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/lguibr/bollywood"

	"github.com/gopong/gopong/game"
)

// Server bridges HTTP/websocket clients and the MatchActor. Handlers never
// read match state directly; they consume the snapshot store the actor
// publishes into, and steer the match only through actor messages.
type Server struct {
	engine          *bollywood.Engine
	matchPID        *bollywood.PID
	store           *game.SnapshotStore
	logger          *log.Logger
	broadcastPeriod time.Duration
}

// New wires a server to a running match actor. A nil logger falls back to
// the package default; a non-positive broadcast period falls back to ~60Hz.
func New(engine *bollywood.Engine, matchPID *bollywood.PID, store *game.SnapshotStore, logger *log.Logger, broadcastPeriod time.Duration) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if broadcastPeriod <= 0 {
		broadcastPeriod = 16 * time.Millisecond
	}
	return &Server{
		engine:          engine,
		matchPID:        matchPID,
		store:           store,
		logger:          logger,
		broadcastPeriod: broadcastPeriod,
	}
}

// Engine returns the actor engine the server sends through.
func (s *Server) Engine() *bollywood.Engine { return s.engine }

// MatchPID returns the PID of the match actor.
func (s *Server) MatchPID() *bollywood.PID { return s.matchPID }
