package httpapi

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"webdesk/internal/domain"
)

const monitorSendBuffer = 32

// MonitorHub streams session notifications (file uploads, future connect
// requests) to attached host observers over WebSocket. It implements
// usecase.EventSink; Notify never blocks: each connection has a buffered
// send queue drained by its own writer goroutine, and a stalled observer
// loses notifications instead of delaying the caller.
type MonitorHub struct {
	mu       sync.RWMutex
	clients  map[*websocket.Conn]chan []byte
	upgrader websocket.Upgrader
}

func NewMonitorHub() *MonitorHub {
	return &MonitorHub{
		clients:  make(map[*websocket.Conn]chan []byte),
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
	}
}

func (h *MonitorHub) HandleWS(w http.ResponseWriter, r *http.Request) {
	c, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	send := make(chan []byte, monitorSendBuffer)
	h.mu.Lock()
	h.clients[c] = send
	h.mu.Unlock()

	go func() {
		for data := range send {
			_ = c.SetWriteDeadline(time.Now().Add(2 * time.Second))
			if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
				_ = c.Close()
				return
			}
		}
		_ = c.Close()
	}()

	_ = c.SetReadDeadline(time.Time{})
	for {
		// keepalive reads to detect observer close
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	close(send)
}

func (h *MonitorHub) Notify(n domain.Notification) {
	data, _ := json.Marshal(n)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, send := range h.clients {
		select {
		case send <- data:
		default:
			// observer not draining; drop rather than stall an upload
		}
	}
}
