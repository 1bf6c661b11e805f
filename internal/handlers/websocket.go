package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/bayurmdn/garuda-saham-insight/internal/common"
	"github.com/bayurmdn/garuda-saham-insight/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

// WSMessage is the envelope for every WebSocket message.
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// helloPayload is sent once when a client connects. Clients compare
// server_instance_id across reconnects to detect a server restart and
// refetch state instead of trusting their cache.
type helloPayload struct {
	ServerInstanceID string `json:"server_instance_id"`
	Timestamp        string `json:"timestamp"`
}

// WebSocketHandler pushes stock-change notifications to connected
// clients. Payloads are refresh hints, not stock records: the UI
// refetches /api/stocks when one arrives.
type WebSocketHandler struct {
	logger           *common.Logger
	clients          map[*websocket.Conn]bool
	clientMutex      map[*websocket.Conn]*sync.Mutex
	mu               sync.RWMutex
	throttler        *rate.Limiter
	serverInstanceID string
}

// defaultBroadcastInterval throttles stock-change broadcasts so bulk
// imports do not flood every client with one message per write batch.
const defaultBroadcastInterval = 500 * time.Millisecond

// NewWebSocketHandler creates a new WebSocket handler.
func NewWebSocketHandler(logger *common.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		logger:           logger,
		clients:          make(map[*websocket.Conn]bool),
		clientMutex:      make(map[*websocket.Conn]*sync.Mutex),
		throttler:        rate.NewLimiter(rate.Every(defaultBroadcastInterval), 1),
		serverInstanceID: uuid.New().String(),
	}
}

// HandleWebSocket handles GET /ws connections.
func (h *WebSocketHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error().Str("error", err.Error()).Msg("failed to upgrade WebSocket connection")
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.clientMutex[conn] = &sync.Mutex{}
	total := len(h.clients)
	h.mu.Unlock()

	h.logger.Debug().Int("total", total).Msg("WebSocket client connected")

	h.sendHello(conn)

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		delete(h.clientMutex, conn)
		remaining := len(h.clients)
		h.mu.Unlock()

		conn.Close()
		h.logger.Debug().Int("remaining", remaining).Msg("WebSocket client disconnected")
	}()

	// Read loop keeps the connection alive; clients do not send commands.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warn().Str("error", err.Error()).Msg("WebSocket error")
			}
			break
		}
	}
}

// BroadcastStockChange notifies every client that stock data changed.
// Broadcasts are throttled; suppressed batches are dropped because the
// next surviving broadcast triggers the same full refetch.
func (h *WebSocketHandler) BroadcastStockChange(change models.StockChange) {
	if !h.throttler.Allow() {
		return
	}

	msg := WSMessage{
		Type: "stocks_changed",
		Payload: map[string]interface{}{
			"updates":     change.Updates,
			"occurred_at": change.OccurredAt.Format(time.RFC3339),
		},
	}
	h.broadcast(msg)
}

// ClientCount returns the number of connected clients.
func (h *WebSocketHandler) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *WebSocketHandler) sendHello(conn *websocket.Conn) {
	msg := WSMessage{
		Type: "hello",
		Payload: helloPayload{
			ServerInstanceID: h.serverInstanceID,
			Timestamp:        time.Now().Format(time.RFC3339),
		},
	}

	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error().Str("error", err.Error()).Msg("failed to marshal hello message")
		return
	}

	h.mu.RLock()
	mutex := h.clientMutex[conn]
	h.mu.RUnlock()

	if mutex != nil {
		mutex.Lock()
		err := conn.WriteMessage(websocket.TextMessage, data)
		mutex.Unlock()

		if err != nil {
			h.logger.Warn().Str("error", err.Error()).Msg("failed to send hello")
		}
	}
}

func (h *WebSocketHandler) broadcast(msg WSMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error().Str("error", err.Error()).Msg("failed to marshal broadcast message")
		return
	}

	h.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	mutexes := make([]*sync.Mutex, 0, len(h.clients))
	for conn := range h.clients {
		clients = append(clients, conn)
		mutexes = append(mutexes, h.clientMutex[conn])
	}
	h.mu.RUnlock()

	for i, conn := range clients {
		mutex := mutexes[i]
		mutex.Lock()
		err := conn.WriteMessage(websocket.TextMessage, data)
		mutex.Unlock()

		if err != nil {
			h.logger.Warn().Str("error", err.Error()).Msg("failed to send broadcast to client")
		}
	}
}
