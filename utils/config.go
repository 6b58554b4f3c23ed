// File: utils/config.go
package utils

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configurable game parameters.
type Config struct {
	// Timing
	TickPeriod time.Duration `json:"tickPeriod" yaml:"tickPeriod"` // Time between simulation ticks (0 disables the internal ticker)

	// Board
	BoardWidth  int `json:"boardWidth" yaml:"boardWidth"`   // Horizontal playfield size in pixels
	BoardHeight int `json:"boardHeight" yaml:"boardHeight"` // Vertical playfield size in pixels

	// Ball
	BallRadius   int `json:"ballRadius" yaml:"ballRadius"`     // Radius of the ball
	BallSamples  int `json:"ballSamples" yaml:"ballSamples"`   // Perimeter sample count for the ball circle
	BallStepXMin int `json:"ballStepXMin" yaml:"ballStepXMin"` // Smallest horizontal step after a bounce
	BallStepXMax int `json:"ballStepXMax" yaml:"ballStepXMax"` // Largest horizontal step after a bounce
	BallStepYMin int `json:"ballStepYMin" yaml:"ballStepYMin"` // Smallest vertical step after a bounce
	BallStepYMax int `json:"ballStepYMax" yaml:"ballStepYMax"` // Largest vertical step after a bounce

	// Paddles
	PaddleWidth        int `json:"paddleWidth" yaml:"paddleWidth"`               // Thickness of each paddle
	PaddleLength       int `json:"paddleLength" yaml:"paddleLength"`             // Length of each paddle along the wall
	PaddleCornerRadius int `json:"paddleCornerRadius" yaml:"paddleCornerRadius"` // Corner rounding of the paddle rectangle
	PaddleStep         int `json:"paddleStep" yaml:"paddleStep"`                 // Pixels a paddle moves per tick
	ArcSamples         int `json:"arcSamples" yaml:"arcSamples"`                 // Sample count per paddle corner arc

	// Collision
	CullingBandPaddleWidths int `json:"cullingBandPaddleWidths" yaml:"cullingBandPaddleWidths"` // Paddle-vs-ball checks run only while the ball is within this many paddle widths of an edge

	// Match
	WinThreshold int `json:"winThreshold" yaml:"winThreshold"` // Score that ends the match
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		TickPeriod: 16 * time.Millisecond, // ~60 ticks per second

		BoardWidth:  1500,
		BoardHeight: 700,

		BallRadius:   20,
		BallSamples:  360,
		BallStepXMin: 10,
		BallStepXMax: 15,
		BallStepYMin: 5,
		BallStepYMax: 15,

		PaddleWidth:        60,
		PaddleLength:       120,
		PaddleCornerRadius: 10,
		PaddleStep:         15,
		ArcSamples:         90,

		CullingBandPaddleWidths: 2,

		WinThreshold: 10,
	}
}

// LoadConfig reads a YAML config file and overlays it on the defaults.
// An empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations that cannot describe a playable board.
// These indicate a caller bug, so construction fails fast instead of
// normalizing.
func (c Config) Validate() error {
	switch {
	case c.BoardWidth <= 0 || c.BoardHeight <= 0:
		return fmt.Errorf("board dimensions must be positive, got %dx%d", c.BoardWidth, c.BoardHeight)
	case c.BallRadius <= 0:
		return fmt.Errorf("ball radius must be positive, got %d", c.BallRadius)
	case c.BallSamples < 1 || c.ArcSamples < 1:
		return fmt.Errorf("sample counts must be at least 1, got ball=%d arc=%d", c.BallSamples, c.ArcSamples)
	case c.BallStepXMin <= 0 || c.BallStepYMin <= 0:
		return fmt.Errorf("minimum ball steps must be positive, got x=%d y=%d", c.BallStepXMin, c.BallStepYMin)
	case c.BallStepXMax < c.BallStepXMin || c.BallStepYMax < c.BallStepYMin:
		return fmt.Errorf("ball step ranges are inverted: x=[%d,%d] y=[%d,%d]",
			c.BallStepXMin, c.BallStepXMax, c.BallStepYMin, c.BallStepYMax)
	case c.PaddleWidth <= 0 || c.PaddleLength <= 0:
		return fmt.Errorf("paddle dimensions must be positive, got %dx%d", c.PaddleWidth, c.PaddleLength)
	case c.PaddleLength+2 > c.BoardHeight:
		return fmt.Errorf("paddle length %d does not fit board height %d", c.PaddleLength, c.BoardHeight)
	case c.PaddleCornerRadius < 0:
		return fmt.Errorf("paddle corner radius must not be negative, got %d", c.PaddleCornerRadius)
	case c.PaddleStep <= 0:
		return fmt.Errorf("paddle step must be positive, got %d", c.PaddleStep)
	case c.CullingBandPaddleWidths < 0:
		return fmt.Errorf("culling band must not be negative, got %d", c.CullingBandPaddleWidths)
	case c.WinThreshold <= 0:
		return fmt.Errorf("win threshold must be positive, got %d", c.WinThreshold)
	case c.TickPeriod < 0:
		return fmt.Errorf("tick period must not be negative, got %s", c.TickPeriod)
	}
	return nil
}
