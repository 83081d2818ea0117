package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	TypePing        EventType = "ping"
	TypePong        EventType = "pong"
	TypeMessage     EventType = "message"
	TypeUserOnline  EventType = "user_online"
	TypeUserOffline EventType = "user_offline"
)

// Event is the frame pushed to connected clients: new direct messages and
// presence changes.
type Event struct {
	Type      EventType       `json:"type"`
	UserID    uuid.UUID       `json:"user_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// Hub tracks connected clients per user. A user may hold several
// connections (phone and web) at once.
type Hub struct {
	clients     map[uuid.UUID]*Client
	userClients map[uuid.UUID]map[uuid.UUID]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	ctx    context.Context
	cancel context.CancelFunc
}

func NewHub() *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		clients:     make(map[uuid.UUID]*Client),
		userClients: make(map[uuid.UUID]map[uuid.UUID]*Client),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		ctx:         ctx,
		cancel:      cancel,
	}
}

func (h *Hub) Run() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-h.ctx.Done():
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case <-ticker.C:
			h.ping()
		}
	}
}

func (h *Hub) Stop() {
	h.cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, client := range h.clients {
		close(client.Send)
		client.Conn.Close()
	}
}

func (h *Hub) Register(client *Client)   { h.register <- client }
func (h *Hub) Unregister(client *Client) { h.unregister <- client }

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client.ID] = client

	if _, ok := h.userClients[client.UserID]; !ok {
		h.userClients[client.UserID] = make(map[uuid.UUID]*Client)
		h.notifyStatus(client.UserID, TypeUserOnline)
	}
	h.userClients[client.UserID][client.ID] = client

	log.Printf("ws client registered: %s (user %s)", client.ID, client.UserID)
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.ID]; !ok {
		return
	}

	if userClients, ok := h.userClients[client.UserID]; ok {
		delete(userClients, client.ID)
		if len(userClients) == 0 {
			delete(h.userClients, client.UserID)
			h.notifyStatus(client.UserID, TypeUserOffline)
		}
	}

	delete(h.clients, client.ID)
	close(client.Send)

	log.Printf("ws client unregistered: %s (user %s)", client.ID, client.UserID)
}

// SendToUser delivers an event to every connection the user holds. Slow
// consumers are skipped rather than blocking the caller.
func (h *Hub) SendToUser(userID uuid.UUID, eventType EventType, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		log.Printf("ws marshal failed: %v", err)
		return
	}

	frame, err := json.Marshal(Event{
		Type:      eventType,
		UserID:    userID,
		Data:      payload,
		Timestamp: time.Now(),
	})
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.userClients[userID] {
		select {
		case client.Send <- frame:
		default:
			log.Printf("ws client %s queue full, dropping event", client.ID)
		}
	}
}

// IsOnline reports whether a user has at least one live connection.
func (h *Hub) IsOnline(userID uuid.UUID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.userClients[userID]) > 0
}

func (h *Hub) OnlineUsers() []uuid.UUID {
	h.mu.RLock()
	defer h.mu.RUnlock()

	users := make([]uuid.UUID, 0, len(h.userClients))
	for userID := range h.userClients {
		users = append(users, userID)
	}
	return users
}

// notifyStatus fans presence changes out to everyone connected.
// Caller must hold h.mu.
func (h *Hub) notifyStatus(userID uuid.UUID, status EventType) {
	frame, err := json.Marshal(Event{Type: status, UserID: userID, Timestamp: time.Now()})
	if err != nil {
		return
	}
	for _, client := range h.clients {
		select {
		case client.Send <- frame:
		default:
		}
	}
}

func (h *Hub) ping() {
	h.mu.RLock()
	defer h.mu.RUnlock()

	frame, err := json.Marshal(Event{Type: TypePing, Timestamp: time.Now()})
	if err != nil {
		return
	}
	for _, client := range h.clients {
		select {
		case client.Send <- frame:
		default:
		}
	}
}
