package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"crypto_dash/internal/dashboard"
	"crypto_dash/internal/quotes"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	sendBuffer   = 8
	writeTimeout = 10 * time.Second
	pingPeriod   = 30 * time.Second
	readLimit    = 4096
)

// client is one connected page.
type client struct {
	id   uuid.UUID
	conn *websocket.Conn
	send chan []byte
}

// Hub pushes dashboard state to every connected page and forwards selector
// changes from pages to the binder. It is a quotes.RenderTarget.
type Hub struct {
	upgrader websocket.Upgrader
	binder   *dashboard.Binder
	state    func(frame quotes.Frame) State
	current  func() quotes.Frame

	mu      sync.RWMutex
	clients map[uuid.UUID]*client
}

// NewHub creates a hub. state turns a frame into the pushed message;
// current returns the frame sent to newly connected pages.
func NewHub(binder *dashboard.Binder, state func(quotes.Frame) State, current func() quotes.Frame) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		binder:  binder,
		state:   state,
		current: current,
		clients: make(map[uuid.UUID]*client),
	}
}

// Paint broadcasts frame without blocking. Pages that cannot keep up are
// disconnected.
func (h *Hub) Paint(frame quotes.Frame) error {
	msg, err := json.Marshal(h.state(frame))
	if err != nil {
		return err
	}

	var slow []*client
	h.mu.RLock()
	for _, c := range h.clients {
		select {
		case c.send <- msg:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		slog.Warn("Dropping slow websocket client", slog.String("client", c.id.String()))
		h.remove(c)
	}
	return nil
}

// Count returns the number of connected pages.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("Websocket upgrade failed", slog.Any("error", err))
		return
	}

	c := &client{id: uuid.New(), conn: conn, send: make(chan []byte, sendBuffer)}

	initial, err := json.Marshal(h.state(h.current()))
	if err != nil {
		conn.Close()
		return
	}
	c.send <- initial

	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()
	slog.Info("Websocket client connected", slog.String("client", c.id.String()), slog.String("remote", r.RemoteAddr))

	go h.writeLoop(c)
	h.readLoop(c)
}

func (h *Hub) readLoop(c *client) {
	defer h.remove(c)

	c.conn.SetReadLimit(readLimit)
	for {
		var ev dashboard.ChangeEvent
		if err := c.conn.ReadJSON(&ev); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("Websocket read error", slog.String("client", c.id.String()), slog.Any("error", err))
			}
			return
		}
		if err := h.binder.Dispatch(ev); err != nil {
			slog.Warn("Selector change rejected", slog.String("control", ev.Control), slog.Any("error", err))
		}
	}
}

func (h *Hub) writeLoop(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	defer c.conn.Close()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// remove unregisters c once and lets its write loop close the connection.
func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c.id]; !ok {
		return
	}
	delete(h.clients, c.id)
	close(c.send)
	slog.Info("Websocket client disconnected", slog.String("client", c.id.String()))
}

// CloseAll disconnects every page.
func (h *Hub) CloseAll() {
	h.mu.RLock()
	all := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		all = append(all, c)
	}
	h.mu.RUnlock()

	for _, c := range all {
		h.remove(c)
	}
}
