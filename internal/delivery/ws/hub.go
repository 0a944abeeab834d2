package ws

import (
	"fmt"
	"sync"

	"go-jobportal-backend/pkg/logger"
)

// Hub tracks connected notification clients grouped into rooms: one
// room per role and one per user ("user-<id>"), matching how events
// are targeted.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*Client]struct{}),
	}
}

func userRoom(userID int64) string {
	return fmt.Sprintf("user-%d", userID)
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, room := range []string{c.role, userRoom(c.userID)} {
		if h.rooms[room] == nil {
			h.rooms[room] = make(map[*Client]struct{})
		}
		h.rooms[room][c] = struct{}{}
	}
	if logger.Log != nil {
		logger.Log.Info("ws client connected", "email", c.email, "role", c.role)
	}
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, room := range []string{c.role, userRoom(c.userID)} {
		if clients, ok := h.rooms[room]; ok {
			delete(clients, c)
			if len(clients) == 0 {
				delete(h.rooms, room)
			}
		}
	}
	if logger.Log != nil {
		logger.Log.Info("ws client disconnected", "email", c.email)
	}
}

func (h *Hub) broadcast(room string, msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms[room] {
		select {
		case c.send <- msg:
		default:
			// Slow consumer; drop the message rather than block the hub.
		}
	}
}

// BroadcastToRole pushes a message to every client with the given role.
func (h *Hub) BroadcastToRole(role string, event string, data interface{}) {
	h.broadcast(role, Message{Event: event, Data: data})
}

// BroadcastToUser pushes a message to every connection of one user.
func (h *Hub) BroadcastToUser(userID int64, event string, data interface{}) {
	h.broadcast(userRoom(userID), Message{Event: event, Data: data})
}
