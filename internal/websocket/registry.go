package websocket

import (
	"net/http"
	"sync"

	"CheckDiskGo/internal/pkg/logger"

	"github.com/gorilla/websocket"
)

var (
	// Registry singleton
	registry *Registry
	once     sync.Once
)

// Registry manages the WebSocket handlers of the service
type Registry struct {
	mu            sync.RWMutex
	reportHandler *Handler
}

// GetRegistry returns the WebSocket registry singleton
func GetRegistry() *Registry {
	once.Do(func() {
		registry = &Registry{}
	})
	return registry
}

// Handler manages WebSocket connections
type Handler struct {
	clients  map[*Client]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader
}

// Client represents a WebSocket client connection
type Client struct {
	conn *websocket.Conn
}

// NewHandler creates a new WebSocket handler
func NewHandler() *Handler {
	return &Handler{
		clients: make(map[*Client]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// ServeHTTP handles WebSocket connections
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.ServeHTTPWithInitial(w, r, nil)
}

// ServeHTTPWithInitial handles a WebSocket connection and, if initial is
// non-nil, sends it to the new client before joining the broadcast set.
func (h *Handler) ServeHTTPWithInitial(w http.ResponseWriter, r *http.Request, initial []byte) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("Failed to upgrade to WebSocket connection",
			logger.String("error", err.Error()))
		return
	}

	client := &Client{conn: conn}

	if initial != nil {
		if err := conn.WriteMessage(websocket.TextMessage, initial); err != nil {
			conn.Close()
			return
		}
	}

	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()

	defer func() {
		conn.Close()
		h.mu.Lock()
		delete(h.clients, client)
		h.mu.Unlock()
	}()

	// Read and discard client messages; this stream is broadcast-only.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// Broadcast sends a message to all clients of this handler
func (h *Handler) Broadcast(message []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		err := client.conn.WriteMessage(websocket.TextMessage, message)
		if err != nil {
			logger.Error("Error broadcasting to WebSocket client",
				logger.String("error", err.Error()))
			client.conn.Close()
			delete(h.clients, client)
		}
	}
}

// GetReportHandler returns the report stream handler
func (r *Registry) GetReportHandler() *Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.reportHandler
}

// RegisterReportHandler sets the report stream handler
func (r *Registry) RegisterReportHandler(handler *Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reportHandler = handler
}
