package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lastcentaur/engine/game/service"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Transport owns auth (§6.3); origin policy belongs to the host, not the engine.
		return true
	},
}

// Message is one envelope pushed to every client watching an instance.
type Message struct {
	InstanceID string                  `json:"instance_id"`
	Result     *service.CommandResult  `json:"result,omitempty"`
	Event      string                  `json:"event,omitempty"`
	Data       any                     `json:"data,omitempty"`
}

// Client is one connected websocket peer, subscribed to a single
// instance's stream.
type Client struct {
	hub        *Hub
	conn       *websocket.Conn
	send       chan []byte
	instanceID string
}

// Hub fans narrated command results out to every client watching each
// game instance.
type Hub struct {
	watchers   map[string]map[*Client]bool
	broadcast  chan *Message
	register   chan *Client
	unregister chan *Client
}

// NewHub creates an empty hub. Call Run in its own goroutine before
// serving any connections.
func NewHub() *Hub {
	return &Hub{
		watchers:   make(map[string]map[*Client]bool),
		broadcast:  make(chan *Message),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run drives the hub's event loop; it blocks until the process exits.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)
		case client := <-h.unregister:
			h.unregisterClient(client)
		case message := <-h.broadcast:
			h.broadcastMessage(message)
		}
	}
}

// ServeWS upgrades r to a websocket connection and subscribes it to
// instanceID's stream.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, instanceID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] upgrade failed: %v", err)
		return
	}

	client := &Client{hub: h, conn: conn, send: make(chan []byte, 256), instanceID: instanceID}
	client.hub.register <- client

	go client.writePump()
	go client.readPump()
}

// BroadcastResult pushes a freshly produced command result to every
// client watching instanceID.
func (h *Hub) BroadcastResult(instanceID string, result *service.CommandResult) {
	h.broadcast <- &Message{InstanceID: instanceID, Result: result, Event: "command_result"}
}

// BroadcastEvent pushes an arbitrary named event, used for state that
// isn't itself a command result (e.g. a day/night transition narrated
// inside a handler's response but worth a distinct client-side toast).
func (h *Hub) BroadcastEvent(instanceID, event string, data any) {
	h.broadcast <- &Message{InstanceID: instanceID, Event: event, Data: data}
}

func (h *Hub) registerClient(client *Client) {
	if h.watchers[client.instanceID] == nil {
		h.watchers[client.instanceID] = make(map[*Client]bool)
	}
	h.watchers[client.instanceID][client] = true
	log.Printf("[WS] client registered for instance %s (total %d)", client.instanceID, len(h.watchers[client.instanceID]))
}

func (h *Hub) unregisterClient(client *Client) {
	clients, ok := h.watchers[client.instanceID]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.watchers, client.instanceID)
	}
	log.Printf("[WS] client unregistered from instance %s (remaining %d)", client.instanceID, len(clients))
}

func (h *Hub) broadcastMessage(message *Message) {
	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("[WS] marshal failed: %v", err)
		return
	}
	for client := range h.watchers[message.InstanceID] {
		select {
		case client.send <- data:
		default:
			h.unregisterClient(client)
		}
	}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[WS] read error: %v", err)
			}
			break
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}
			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
