package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// newConnPair dials a throwaway upgrade server and returns both ends of a
// websocket connection.
func newConnPair(t *testing.T) (client, server *websocket.Conn) {
	t.Helper()

	upgrader := websocket.Upgrader{}
	serverConns := make(chan *websocket.Conn, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		serverConns <- conn
	}))
	t.Cleanup(ts.Close)

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http"), nil)
	if err != nil {
		t.Fatalf("failed to dial test server: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	select {
	case server = <-serverConns:
	case <-time.After(2 * time.Second):
		t.Fatal("server connection never arrived")
	}
	return client, server
}

func TestRegisterAndList(t *testing.T) {
	m := NewManager()

	_, a := newConnPair(t)
	_, b := newConnPair(t)

	m.Register("sub-a", a)
	m.Register("sub-b", b)

	if m.Count() != 2 {
		t.Fatalf("expected 2 subscribers, got %d", m.Count())
	}

	ids := m.List()
	found := map[string]bool{}
	for _, id := range ids {
		found[id] = true
	}
	if !found["sub-a"] || !found["sub-b"] {
		t.Errorf("expected both subscriber ids in %v", ids)
	}

	m.Unregister("sub-a")
	if m.Count() != 1 {
		t.Errorf("expected 1 subscriber after unregister, got %d", m.Count())
	}
}

func TestBroadcastReachesAllSubscribers(t *testing.T) {
	m := NewManager()

	clientA, serverA := newConnPair(t)
	clientB, serverB := newConnPair(t)
	m.Register("sub-a", serverA)
	m.Register("sub-b", serverB)

	m.Broadcast([]byte(`{"type":"security_event"}`))

	for _, client := range []*websocket.Conn{clientA, clientB} {
		client.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, message, err := client.ReadMessage()
		if err != nil {
			t.Fatalf("subscriber did not receive broadcast: %v", err)
		}
		if string(message) != `{"type":"security_event"}` {
			t.Errorf("unexpected payload %q", message)
		}
	}
}

func TestBroadcastDropsDeadSubscribers(t *testing.T) {
	m := NewManager()

	_, serverA := newConnPair(t)
	m.Register("sub-a", serverA)

	// Close the server side so the next write fails
	serverA.Close()

	m.Broadcast([]byte("ping"))
	if m.Count() != 0 {
		t.Errorf("expected dead subscriber to be dropped, got %d", m.Count())
	}
}
