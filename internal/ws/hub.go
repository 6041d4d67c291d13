package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// connection wraps a websocket with a write mutex. gorilla/websocket
// allows at most one concurrent writer per connection, and both
// broadcasts and the ping loop write to it.
type connection struct {
	ws   *websocket.Conn
	mu   sync.Mutex
	done chan struct{}
}

func (c *connection) writeJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.ws.WriteJSON(v)
}

func (c *connection) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.ws.WriteMessage(websocket.PingMessage, nil)
}

// Hub tracks connected clients and pushes refresh events to them when
// bookings change, so an open bookings or calendar page can reload
// without polling.
type Hub struct {
	clients map[*connection]bool
	mu      sync.RWMutex

	allowedOrigins []string
	logger         *zap.Logger
}

func NewHub(allowedOrigins []string, logger *zap.Logger) *Hub {
	return &Hub{
		clients:        make(map[*connection]bool),
		allowedOrigins: allowedOrigins,
		logger:         logger,
	}
}

// BroadcastRefresh tells every connected client to re-fetch its view.
// Safe to call from any number of request goroutines concurrently.
func (h *Hub) BroadcastRefresh(reason string) {
	h.mu.RLock()
	clients := make([]*connection, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		err := c.writeJSON(map[string]string{
			"type":   "refresh",
			"reason": reason,
		})

		if err != nil {
			h.logger.Warn("failed to broadcast refresh to client", zap.Error(err))
			h.remove(c)
			c.ws.Close()
		}
	}
}

// Handle upgrades the request and keeps the connection registered until
// the client goes away. Mounted behind the auth middleware.
func (h *Hub) Handle(c *gin.Context) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			for _, allowed := range h.allowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	conn.SetReadLimit(maxMessageSize)
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		h.logger.Warn("failed to set initial read deadline", zap.Error(err))
		conn.Close()
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	client := &connection{ws: conn, done: make(chan struct{})}

	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()

	defer func() {
		close(client.done)
		h.remove(client)
		conn.Close()
	}()

	if err := client.writeJSON(map[string]string{"type": "connected"}); err != nil {
		h.logger.Warn("failed to send welcome message", zap.Error(err))
		return
	}

	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := client.ping(); err != nil {
					return
				}
			case <-client.done:
				return
			}
		}
	}()

	for {
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			break
		}

		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Debug("websocket closed unexpectedly", zap.Error(err))
			}
			break
		}
	}
}

func (h *Hub) remove(c *connection) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
}
