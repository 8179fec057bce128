// internal/websocket/hub.go
package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// Event is one change notification pushed to dashboard clients. Events are
// fanned out per company: a client only ever sees its own tenant's changes.
type Event struct {
	Type     string `json:"type"`     // created, updated, deleted
	Resource string `json:"resource"` // job, invoice
	ID       int64  `json:"id"`
}

type broadcastMessage struct {
	companyID int64
	payload   []byte
}

type Hub struct {
	// Registered clients by company ID
	clients map[int64]map[*Client]bool
	mu      sync.RWMutex

	register   chan *Client
	unregister chan *Client
	broadcast  chan *broadcastMessage

	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[int64]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *broadcastMessage, 256),
		logger:     logger,
	}
}

// Run processes registrations and broadcasts until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.companyID] == nil {
				h.clients[client.companyID] = make(map[*Client]bool)
			}
			h.clients[client.companyID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.clients[client.companyID]; ok {
				if _, ok := conns[client]; ok {
					delete(conns, client)
					close(client.send)
					if len(conns) == 0 {
						delete(h.clients, client.companyID)
					}
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients[msg.companyID] {
				select {
				case client.send <- msg.payload:
				default:
					// Slow consumer; drop the event rather than block the hub.
					h.logger.Warn("dropping websocket event, client buffer full",
						zap.Int64("company_id", client.companyID))
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Publish queues an event for every client of the given company.
func (h *Hub) Publish(companyID int64, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to marshal event", zap.Error(err))
		return
	}

	select {
	case h.broadcast <- &broadcastMessage{companyID: companyID, payload: payload}:
	default:
		h.logger.Warn("event dropped, broadcast buffer full", zap.Int64("company_id", companyID))
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, conns := range h.clients {
		for client := range conns {
			close(client.send)
		}
	}
	h.clients = make(map[int64]map[*Client]bool)
}
