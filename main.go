// gopong serves a two-paddle ball game simulation over HTTP and websocket.
//
// Usage:
//
//	gopong serve                     - Serve on the default port
//	gopong serve --addr :3001        - Serve on port 3001
//	gopong serve --config game.yaml  - Override game parameters from a file
//	gopong serve --seed 42           - Fix the RNG seed for reproducible matches
//	gopong serve --tick 60           - Set the simulation tick rate
//
// Clients read state via GET /state or subscribe to /subscribe for a
// websocket stream, sending paddle commands on the same connection.
package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lguibr/bollywood"
	"github.com/spf13/cobra"
	"golang.org/x/net/websocket"

	"github.com/gopong/gopong/game"
	"github.com/gopong/gopong/server"
	"github.com/gopong/gopong/utils"
)

var (
	flagAddr   string
	flagConfig string
	flagSeed   int64
	flagTick   int
)

var rootCmd = &cobra.Command{
	Use:   "gopong",
	Short: "gopong - a two-paddle ball game engine served over websocket",
	Long: `gopong runs the match simulation and exposes it to clients:

  GET /state       - latest match snapshot as JSON
  WS  /subscribe   - snapshot stream; accepts paddle commands

Commands are JSON objects like {"player":0,"command":"up"}. Supported
commands: up, down, stop, cpuOn, cpuOff, restart.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the match and serve it over HTTP and websocket",
	Long: `Start the simulation and listen for clients.

Examples:
  gopong serve                    # Listen on :3001
  gopong serve --addr :8080       # Listen on port 8080
  gopong serve --config game.yaml # Load game parameters from a file
  gopong serve --seed 42          # Reproducible match`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", ":3001", "HTTP listen address (host:port)")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML game config (defaults are used if empty)")
	serveCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed for reproducible matches (0 = time-seeded)")
	serveCmd.Flags().IntVar(&flagTick, "tick", 0, "Simulation ticks per second (0 = config value)")

	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gopong",
	})

	cfg, err := utils.LoadConfig(flagConfig)
	if err != nil {
		return err
	}
	if flagTick > 0 {
		cfg.TickPeriod = time.Second / time.Duration(flagTick)
	}

	var rng game.Rand
	if flagSeed != 0 {
		rng = rand.New(rand.NewSource(flagSeed))
	}

	store := game.NewSnapshotStore()
	engine := bollywood.NewEngine()

	producer, err := game.NewMatchActorProducer(engine, cfg, rng, store, logger)
	if err != nil {
		return err
	}
	matchPID := engine.Spawn(bollywood.NewProps(producer))
	if matchPID == nil {
		return fmt.Errorf("failed to spawn match actor")
	}

	srv := server.New(engine, matchPID, store, logger, cfg.TickPeriod)
	http.HandleFunc("/state", srv.HandleState())
	http.Handle("/subscribe", websocket.Handler(srv.HandleSubscribe()))

	logger.Info("serving", "addr", flagAddr, "tickPeriod", cfg.TickPeriod)
	return http.ListenAndServe(flagAddr, nil)
}
