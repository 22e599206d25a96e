// Package stream serves a read-only websocket feed of match snapshots and events
// for external viewers such as a 3D renderer
package stream

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/pigroll/engine"
	"github.com/lixenwraith/pigroll/events"
)

const (
	DefaultPingInterval = 2 * time.Second
	writeTimeout        = 5 * time.Second
	clientBuffer        = 32
)

// Message types on the wire
const (
	MessageTypeSnapshot = "snapshot"
	MessageTypeEvent    = "event"
)

// Message is the JSON envelope sent to viewers
type Message struct {
	Type     string            `json:"type"`
	Snapshot *engine.Snapshot  `json:"snapshot,omitempty"`
	Event    *events.GameEvent `json:"event,omitempty"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
}

// Hub fans snapshots and events out to connected viewers
// Publish and HandleEvent are called from the game loop and never block on a slow viewer;
// each viewer has its own writer goroutine and drops frames when its buffer is full
type Hub struct {
	upgrader     websocket.Upgrader
	pingInterval time.Duration

	mu      sync.RWMutex
	clients map[*client]struct{}
	latest  []byte
	closed  bool
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		pingInterval: DefaultPingInterval,
		clients:      make(map[*client]struct{}),
	}
}

// ServeHTTP upgrades the connection and streams until the viewer disconnects
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Websocket upgrade error: %v", err)
		return
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, clientBuffer),
		done: make(chan struct{}),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.clients[c] = struct{}{}
	if h.latest != nil {
		c.send <- h.latest
	}
	h.mu.Unlock()

	log.Printf("Viewer connected from %s", conn.RemoteAddr())
	go h.writePump(c)

	// Viewers are read-only; reading drives control frames and detects close
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Viewer read error: %v", err)
			}
			break
		}
	}

	h.remove(c)
	log.Printf("Viewer disconnected: %s", conn.RemoteAddr())
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(h.pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				h.remove(c)
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				h.remove(c)
				return
			}
		case <-c.done:
			c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeTimeout))
			return
		}
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.done)
	}
}

// Publish sends a snapshot to every viewer and keeps it for late joiners
func (h *Hub) Publish(s engine.Snapshot) {
	data, err := json.Marshal(Message{Type: MessageTypeSnapshot, Snapshot: &s})
	if err != nil {
		log.Printf("Snapshot encode error: %v", err)
		return
	}
	h.mu.Lock()
	h.latest = data
	h.mu.Unlock()
	h.Broadcast(data)
}

// Broadcast queues raw data for every viewer
func (h *Hub) Broadcast(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			// Viewer lagging; next snapshot supersedes
		}
	}
}

// EventTypes implements events.Handler
func (h *Hub) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventToss,
		events.EventImpact,
		events.EventRollResolved,
		events.EventTurnEnd,
		events.EventMatchEnd,
		events.EventReset,
	}
}

// HandleEvent implements events.Handler
func (h *Hub) HandleEvent(ev events.GameEvent) {
	data, err := json.Marshal(Message{Type: MessageTypeEvent, Event: &ev})
	if err != nil {
		log.Printf("Event encode error: %v", err)
		return
	}
	h.Broadcast(data)
}

// ClientCount returns the number of connected viewers
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every viewer and rejects new ones
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.done)
	}
}
