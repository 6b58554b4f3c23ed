// File: game/helpers_test.go
package game

import (
	"testing"

	"github.com/gopong/gopong/utils"
)

// scriptedRand replays a fixed sequence of draws so tests can pin down the
// post-bounce direction, speed and reset direction exactly. Each value is
// reduced modulo the requested bound; an exhausted script keeps returning 0.
type scriptedRand struct {
	values []int
	pos    int
}

func (r *scriptedRand) Intn(n int) int {
	if r.pos >= len(r.values) {
		return 0
	}
	v := r.values[r.pos] % n
	r.pos++
	return v
}

// mustMatch builds a match from the default config and fails the test on a
// construction error.
func mustMatch(t *testing.T, cfg utils.Config, rng Rand) *Match {
	t.Helper()
	m, err := NewMatch(cfg, rng)
	if err != nil {
		t.Fatalf("NewMatch returned error: %v", err)
	}
	return m
}
