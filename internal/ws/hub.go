package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// Subscription ties a connection to the tenant it authenticated as.
type Subscription struct {
	TenantID uuid.UUID
	Conn     *websocket.Conn
}

// Event is delivered only to connections of the same tenant.
type Event struct {
	TenantID uuid.UUID
	Payload  []byte
}

// Hub fans ledger events out to live clients, keyed by tenant so broadcasts
// never cross accounts.
type Hub struct {
	clients    map[uuid.UUID]map[*websocket.Conn]bool
	Register   chan Subscription
	Unregister chan Subscription
	Broadcast  chan Event
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]map[*websocket.Conn]bool),
		Register:   make(chan Subscription),
		Unregister: make(chan Subscription),
		Broadcast:  make(chan Event),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case sub := <-h.Register:
			h.mutex.Lock()
			if h.clients[sub.TenantID] == nil {
				h.clients[sub.TenantID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.TenantID][sub.Conn] = true
			h.mutex.Unlock()
			log.Println("New WS client connected")

		case sub := <-h.Unregister:
			h.mutex.Lock()
			if conns, ok := h.clients[sub.TenantID]; ok {
				if _, ok := conns[sub.Conn]; ok {
					delete(conns, sub.Conn)
					sub.Conn.Close()
				}
				if len(conns) == 0 {
					delete(h.clients, sub.TenantID)
				}
			}
			h.mutex.Unlock()

		case event := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.clients[event.TenantID] {
				if err := conn.WriteMessage(websocket.TextMessage, event.Payload); err != nil {
					conn.Close()
					delete(h.clients[event.TenantID], conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// Publish marshals payload and queues it for the tenant's connections.
// Safe to call on a nil hub (services running without live clients).
func (h *Hub) Publish(tenantID uuid.UUID, payload interface{}) {
	if h == nil {
		return
	}
	msg, err := json.Marshal(payload)
	if err != nil {
		return
	}
	h.Broadcast <- Event{TenantID: tenantID, Payload: msg}
}
