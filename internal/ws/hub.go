package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser origin policy is enforced by the CORS layer for the REST API;
	// the update feed itself carries no privileged data.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Event is the payload pushed to connected clients whenever teams or
// recorded winners change. Clients re-fetch the affected resource.
type Event struct {
	Event string `json:"event"`
}

const (
	EventRegistrations = "registrations"
	EventMatches       = "matches"
)

// Hub fans mutation events out to every connected client.
type Hub struct {
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	clients    map[*client]bool
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 16),
		clients:    make(map[*client]bool),
	}
}

// Run owns the client set; all membership changes go through its channels.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
		case message := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- message:
				default:
					// Slow consumer, drop it.
					delete(h.clients, c)
					close(c.send)
				}
			}
		}
	}
}

// Broadcast notifies every client that the named resource changed.
func (h *Hub) Broadcast(event string) {
	payload, err := json.Marshal(Event{Event: event})
	if err != nil {
		slog.Error("failed to marshal event", "event", event, "error", err)
		return
	}
	h.broadcast <- payload
}

// ServeWS upgrades the connection and registers the client with the hub.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := &client{hub: h, conn: conn, send: make(chan []byte, 256)}
	h.register <- c

	go c.writePump()
	go c.readPump()
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// readPump discards inbound messages; the feed is one-way. It exists to
// detect disconnects and unregister the client.
func (c *client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	defer c.conn.Close()
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
