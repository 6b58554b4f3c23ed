// File: game/match_actor.go
package game

import (
	"encoding/json"
	"fmt"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lguibr/bollywood"

	"github.com/gopong/gopong/utils"
)

// SnapshotStore publishes the latest marshalled snapshot to readers outside
// the actor, so the HTTP handler and the per-connection write loops never
// touch match state directly.
type SnapshotStore struct {
	value atomic.Value
}

// NewSnapshotStore returns an empty store.
func NewSnapshotStore() *SnapshotStore {
	s := &SnapshotStore{}
	s.value.Store([]byte("{}"))
	return s
}

// Set replaces the stored snapshot bytes.
func (s *SnapshotStore) Set(b []byte) { s.value.Store(b) }

// Get returns the most recently stored snapshot bytes.
func (s *SnapshotStore) Get() []byte { return s.value.Load().([]byte) }

// MatchActor owns the Match instance and confines every mutation to its
// message loop. Ticks arrive from an internal time.Ticker; paddle intents,
// CPU toggles and restarts arrive as messages from the websocket handlers.
type MatchActor struct {
	cfg    utils.Config
	match  *Match
	store  *SnapshotStore
	logger *log.Logger

	engine  *bollywood.Engine
	selfPID *bollywood.PID

	intents [NumPlayers]MoveDir
	cpu     [NumPlayers]bool

	ticker *time.Ticker
	stopCh chan struct{}
}

// NewMatchActorProducer creates a producer for the MatchActor. The match is
// constructed eagerly so configuration errors surface before spawning.
func NewMatchActorProducer(engine *bollywood.Engine, cfg utils.Config, rng Rand, store *SnapshotStore, logger *log.Logger) (bollywood.Producer, error) {
	match, err := NewMatch(cfg, rng)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	return func() bollywood.Actor {
		return &MatchActor{
			cfg:    cfg,
			match:  match,
			store:  store,
			logger: logger,
			engine: engine,
			stopCh: make(chan struct{}),
		}
	}, nil
}

// Receive is the main message handler for the MatchActor.
func (a *MatchActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("panic recovered in MatchActor",
				"pid", fmt.Sprint(a.selfPID), "panic", r, "stack", string(debug.Stack()))
		}
	}()

	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		a.handleStart()
	case MatchTick:
		a.handleTick()
	case PaddleIntent:
		if msg.Side.Valid() {
			a.intents[msg.Side] = msg.Move
		}
	case SetCPU:
		if msg.Side.Valid() {
			a.cpu[msg.Side] = msg.Enabled
			a.logger.Info("autopilot toggled", "side", msg.Side.String(), "enabled", msg.Enabled)
		}
	case RestartMatch:
		a.match.Initialize()
		a.publishSnapshot()
		a.startTicker()
		a.logger.Info("match restarted")
	case bollywood.Stopping:
		a.stopTicker()
	case bollywood.Stopped:
		// Final message; nothing left to release.
	}
}

func (a *MatchActor) handleStart() {
	a.match.Initialize()
	a.publishSnapshot()
	a.startTicker()
	a.logger.Info("match started",
		"board", fmt.Sprintf("%dx%d", a.match.BoardWidth(), a.match.BoardHeight()),
		"winThreshold", a.cfg.WinThreshold)
}

func (a *MatchActor) handleTick() {
	in := TickInput{Moves: a.intents, CPU: a.cpu}
	res := a.match.Tick(in)

	if res.Scored {
		a.logger.Info("goal",
			"scorer", res.Scorer.String(),
			"score", fmt.Sprintf("%d-%d", a.match.Score(SideLeft), a.match.Score(SideRight)))
	}
	if res.GameOver {
		a.logger.Info("game over", "winner", res.Winner.String())
		a.stopTicker()
	}
	a.publishSnapshot()
}

func (a *MatchActor) publishSnapshot() {
	data, err := json.Marshal(a.match.Snapshot())
	if err != nil {
		a.logger.Error("failed to marshal snapshot", "err", err)
		return
	}
	a.store.Set(data)
}

// startTicker drives MatchTick messages at the configured cadence. A zero
// period disables the ticker; tests send MatchTick directly instead.
func (a *MatchActor) startTicker() {
	if a.cfg.TickPeriod <= 0 || a.ticker != nil {
		return
	}
	a.ticker = time.NewTicker(a.cfg.TickPeriod)
	tickerCh := a.ticker.C
	stopCh := a.stopCh

	engine := a.engine
	selfPID := a.selfPID
	go func() {
		for {
			select {
			case <-stopCh:
				return
			case _, ok := <-tickerCh:
				if !ok {
					return
				}
				engine.Send(selfPID, MatchTick{}, nil)
			}
		}
	}()
}

func (a *MatchActor) stopTicker() {
	if a.ticker != nil {
		a.ticker.Stop()
		a.ticker = nil
		close(a.stopCh)
		a.stopCh = make(chan struct{})
	}
}
