package stream

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/pigroll/engine"
	"github.com/lixenwraith/pigroll/events"
)

func dial(t *testing.T, h *Hub) (*websocket.Conn, func()) {
	t.Helper()
	server := httptest.NewServer(h)
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		server.Close()
		t.Fatalf("Failed to connect to WebSocket server: %v", err)
	}
	return conn, func() {
		conn.Close()
		server.Close()
	}
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("decode %s: %v", data, err)
	}
	return msg
}

func waitClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for h.ClientCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("client count = %d, want %d", h.ClientCount(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHubStreamsSnapshots(t *testing.T) {
	h := NewHub()
	defer h.Close()

	c := engine.NewController(engine.DefaultParams())
	h.Publish(c.Snapshot())

	conn, cleanup := dial(t, h)
	defer cleanup()

	// Late joiner receives the latest snapshot first
	msg := readMessage(t, conn)
	if msg.Type != MessageTypeSnapshot || msg.Snapshot == nil {
		t.Fatalf("first message = %+v", msg)
	}
	if msg.Snapshot.Players[0].Name != "Player 1" {
		t.Errorf("snapshot players = %+v", msg.Snapshot.Players)
	}

	waitClients(t, h, 1)
	c.Toss()
	h.Publish(c.Snapshot())
	msg = readMessage(t, conn)
	if msg.Snapshot == nil || msg.Snapshot.Tosses != 1 {
		t.Errorf("second snapshot = %+v", msg.Snapshot)
	}
}

func TestHubForwardsEvents(t *testing.T) {
	h := NewHub()
	defer h.Close()

	conn, cleanup := dial(t, h)
	defer cleanup()
	waitClients(t, h, 1)

	q := events.NewEventQueue()
	r := events.NewRouter(q)
	r.Register(h)
	q.Push(events.GameEvent{Type: events.EventImpact, Payload: &events.ImpactPayload{Pig: 1, Speed: 3}})
	r.DispatchAll()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, `"type":"event"`) || !strings.Contains(s, `"type":"impact"`) || !strings.Contains(s, `"speed":3`) {
		t.Errorf("event message = %s", s)
	}
}

func TestHubCloseDisconnectsViewers(t *testing.T) {
	h := NewHub()
	conn, cleanup := dial(t, h)
	defer cleanup()
	waitClients(t, h, 1)

	h.Close()
	if h.ClientCount() != 0 {
		t.Errorf("clients after close = %d", h.ClientCount())
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("expected the connection to close")
	}
}

func TestHubDropsDisconnectedViewer(t *testing.T) {
	h := NewHub()
	defer h.Close()

	conn, cleanup := dial(t, h)
	waitClients(t, h, 1)
	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	cleanup()

	waitClients(t, h, 0)
}
