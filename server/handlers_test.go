// File: server/handlers_test.go
package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/lguibr/bollywood"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"

	"github.com/gopong/gopong/game"
)

// mockActor captures every message sent to it so tests can assert on the
// command translation without a real match behind the PID.
type mockActor struct {
	mu       sync.Mutex
	received []interface{}
}

func (a *mockActor) Receive(ctx bollywood.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.received = append(a.received, ctx.Message())
}

func (a *mockActor) messages() []interface{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	msgs := make([]interface{}, len(a.received))
	copy(msgs, a.received)
	return msgs
}

func setupTestServer(t *testing.T) (*Server, *mockActor) {
	t.Helper()
	engine := bollywood.NewEngine()
	t.Cleanup(func() { engine.Shutdown(5 * time.Second) })

	mock := &mockActor{}
	pid := engine.Spawn(bollywood.NewProps(func() bollywood.Actor { return mock }))
	require.NotNil(t, pid)

	store := game.NewSnapshotStore()
	srv := New(engine, pid, store, nil, 5*time.Millisecond)
	return srv, mock
}

// waitForMessage polls the mock actor until a message of the target's type
// shows up or the timeout expires.
func waitForMessage(t *testing.T, mock *mockActor, target interface{}, timeout time.Duration) (interface{}, bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		for _, msg := range mock.messages() {
			if fmt.Sprintf("%T", msg) == fmt.Sprintf("%T", target) {
				return msg, true
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil, false
}

func TestHandleState(t *testing.T) {
	srv, _ := setupTestServer(t)
	srv.store.Set([]byte(`{"messageType":"state","status":"playing"}`))

	req := httptest.NewRequest(http.MethodGet, "/state", nil)
	rec := httptest.NewRecorder()
	srv.HandleState()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"messageType":"state","status":"playing"}`, rec.Body.String())
}

func TestHandleStateServesEmptyStore(t *testing.T) {
	srv, _ := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/state", nil)
	rec := httptest.NewRecorder()
	srv.HandleState()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "{}", rec.Body.String())
}

func TestCommandMessage(t *testing.T) {
	testCases := []struct {
		name   string
		cmd    game.Command
		want   interface{}
		wantOK bool
	}{
		{"up left", game.Command{Player: 0, Command: "up"},
			game.PaddleIntent{Side: game.SideLeft, Move: game.MoveUp}, true},
		{"down right", game.Command{Player: 1, Command: "down"},
			game.PaddleIntent{Side: game.SideRight, Move: game.MoveDown}, true},
		{"stop releases intent", game.Command{Player: 0, Command: "stop"},
			game.PaddleIntent{Side: game.SideLeft, Move: game.MoveNone}, true},
		{"cpu on", game.Command{Player: 1, Command: "cpuOn"},
			game.SetCPU{Side: game.SideRight, Enabled: true}, true},
		{"cpu off", game.Command{Player: 1, Command: "cpuOff"},
			game.SetCPU{Side: game.SideRight, Enabled: false}, true},
		{"restart ignores player", game.Command{Player: 9, Command: "restart"},
			game.RestartMatch{}, true},
		{"unknown command", game.Command{Player: 0, Command: "jump"}, nil, false},
		{"player out of range", game.Command{Player: 2, Command: "up"}, nil, false},
		{"negative player", game.Command{Player: -1, Command: "down"}, nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := commandMessage(tc.cmd)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHandleSubscribeForwardsCommands(t *testing.T) {
	srv, mock := setupTestServer(t)

	ts := httptest.NewServer(websocket.Handler(srv.HandleSubscribe()))
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http")
	ws, err := websocket.Dial(wsURL, "", ts.URL)
	require.NoError(t, err)
	defer ws.Close()

	require.NoError(t, websocket.JSON.Send(ws, game.Command{Player: 0, Command: "up"}))
	msg, found := waitForMessage(t, mock, game.PaddleIntent{}, 2*time.Second)
	require.True(t, found, "the actor should receive the translated intent")
	assert.Equal(t, game.PaddleIntent{Side: game.SideLeft, Move: game.MoveUp}, msg)

	require.NoError(t, websocket.JSON.Send(ws, game.Command{Player: 1, Command: "cpuOn"}))
	msg, found = waitForMessage(t, mock, game.SetCPU{}, 2*time.Second)
	require.True(t, found, "the actor should receive the CPU toggle")
	assert.Equal(t, game.SetCPU{Side: game.SideRight, Enabled: true}, msg)
}

func TestHandleSubscribeIgnoresUnknownCommands(t *testing.T) {
	srv, mock := setupTestServer(t)

	ts := httptest.NewServer(websocket.Handler(srv.HandleSubscribe()))
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http")
	ws, err := websocket.Dial(wsURL, "", ts.URL)
	require.NoError(t, err)
	defer ws.Close()

	require.NoError(t, websocket.JSON.Send(ws, game.Command{Player: 0, Command: "jump"}))
	require.NoError(t, websocket.JSON.Send(ws, game.Command{Player: 0, Command: "restart"}))

	// The restart arrives, the unknown command never does.
	_, found := waitForMessage(t, mock, game.RestartMatch{}, 2*time.Second)
	require.True(t, found)
	for _, msg := range mock.messages() {
		if _, ok := msg.(game.PaddleIntent); ok {
			t.Errorf("unknown command should not produce an intent, got %+v", msg)
		}
	}
}

func TestHandleSubscribeStreamsSnapshots(t *testing.T) {
	srv, _ := setupTestServer(t)
	srv.store.Set([]byte(`{"messageType":"state","status":"playing"}`))

	ts := httptest.NewServer(websocket.Handler(srv.HandleSubscribe()))
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http")
	ws, err := websocket.Dial(wsURL, "", ts.URL)
	require.NoError(t, err)
	defer ws.Close()

	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	buf := make([]byte, 4096)
	n, err := ws.Read(buf)
	require.NoError(t, err)
	assert.JSONEq(t, `{"messageType":"state","status":"playing"}`, string(buf[:n]))
}
