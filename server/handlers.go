// File: server/handlers.go
package server

import (
	"errors"
	"io"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"golang.org/x/net/websocket"

	"github.com/gopong/gopong/game"
)

// HandleState serves the latest match snapshot as JSON.
func (s *Server) HandleState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic recovered in HandleState", "panic", rec, "stack", string(debug.Stack()))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write(s.store.Get()); err != nil {
			s.logger.Warn("failed to write state response", "err", err)
		}
	}
}

// HandleSubscribe upgrades the connection to a websocket, streams snapshots
// at the broadcast cadence and forwards client commands to the match actor.
func (s *Server) HandleSubscribe() func(ws *websocket.Conn) {
	return func(ws *websocket.Conn) {
		remote := ws.RemoteAddr().String()
		s.logger.Info("client subscribed", "remote", remote)

		stopCh := make(chan struct{})
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic recovered in HandleSubscribe", "remote", remote, "panic", rec, "stack", string(debug.Stack()))
			}
			close(stopCh)
			_ = ws.Close()
			s.logger.Info("client disconnected", "remote", remote)
		}()

		go s.writeLoop(ws, stopCh)
		s.readLoop(ws)
	}
}

// writeLoop pushes the latest snapshot to one client until stopCh closes.
func (s *Server) writeLoop(ws *websocket.Conn, stopCh <-chan struct{}) {
	ticker := time.NewTicker(s.broadcastPeriod)
	defer ticker.Stop()

	var last []byte
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			snapshot := s.store.Get()
			if len(snapshot) <= 2 {
				continue
			}
			// Skip rebroadcasting identical frames (paused or game over).
			if string(snapshot) == string(last) {
				continue
			}
			if _, err := ws.Write(snapshot); err != nil {
				return
			}
			last = snapshot
		}
	}
}

// readLoop receives client commands until the connection closes.
func (s *Server) readLoop(ws *websocket.Conn) {
	remote := ws.RemoteAddr().String()
	for {
		var cmd game.Command
		if err := websocket.JSON.Receive(ws, &cmd); err != nil {
			if !isClosedError(err) {
				s.logger.Warn("failed to receive command", "remote", remote, "err", err)
			}
			return
		}

		msg, ok := commandMessage(cmd)
		if !ok {
			s.logger.Debug("ignoring unknown command", "remote", remote, "player", cmd.Player, "command", cmd.Command)
			continue
		}
		s.engine.Send(s.matchPID, msg, nil)
	}
}

// commandMessage translates a wire command into its actor message.
func commandMessage(cmd game.Command) (interface{}, bool) {
	if cmd.Command == "restart" {
		return game.RestartMatch{}, true
	}

	side := game.PlayerSide(cmd.Player)
	if !side.Valid() {
		return nil, false
	}
	switch cmd.Command {
	case "up":
		return game.PaddleIntent{Side: side, Move: game.MoveUp}, true
	case "down":
		return game.PaddleIntent{Side: side, Move: game.MoveDown}, true
	case "stop":
		return game.PaddleIntent{Side: side, Move: game.MoveNone}, true
	case "cpuOn":
		return game.SetCPU{Side: side, Enabled: true}, true
	case "cpuOff":
		return game.SetCPU{Side: side, Enabled: false}, true
	}
	return nil, false
}

func isClosedError(err error) bool {
	return errors.Is(err, io.EOF) ||
		strings.Contains(err.Error(), "closed")
}
