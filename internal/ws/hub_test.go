package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialTestConn(t *testing.T, hub *Hub, sessionID string) *websocket.Conn {
	t.Helper()
	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.AddConnection(sessionID, conn)
	}))
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err, "dial websocket")
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, hub *Hub, sessionID string, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		hub.mu.RLock()
		n := len(hub.sessions[sessionID])
		hub.mu.RUnlock()
		if n == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("session %s never reached %d clients", sessionID, want)
}

func TestHubBroadcastReachesSessionClients(t *testing.T) {
	hub := NewHub()
	conn := dialTestConn(t, hub, "session-1")
	waitForClients(t, hub, "session-1", 1)

	hub.Broadcast("session-1", WSMessage{Type: "state", Data: map[string]string{"mode": "practicing"}})

	conn.SetReadDeadline(time.Now().Add(time.Second))
	var msg WSMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "state", msg.Type)

	data, err := json.Marshal(msg.Data)
	require.NoError(t, err)
	assert.Contains(t, string(data), "practicing")
}

func TestHubBroadcastToUnknownSessionIsNoOp(t *testing.T) {
	hub := NewHub()
	hub.Broadcast("nobody", WSMessage{Type: "state"})
}

func TestHubRemoveConnection(t *testing.T) {
	hub := NewHub()
	dialTestConn(t, hub, "session-2")
	waitForClients(t, hub, "session-2", 1)

	hub.mu.RLock()
	var serverConn *websocket.Conn
	for c := range hub.sessions["session-2"] {
		serverConn = c
	}
	hub.mu.RUnlock()
	require.NotNil(t, serverConn, "connection was never registered")

	hub.RemoveConnection("session-2", serverConn)

	hub.mu.RLock()
	_, ok := hub.sessions["session-2"]
	hub.mu.RUnlock()
	assert.False(t, ok, "empty session entry should be cleaned up")
}
