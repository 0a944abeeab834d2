package ws

import (
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	// Notification channel carries small JSON events only.
	maxMessageSize = 4096
	sendBuffer     = 16
)

// Message is the JSON frame exchanged on the notification channel.
type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan Message
	userID int64
	email  string
	role   string
}

func newClient(hub *Hub, conn *websocket.Conn, userID int64, email, role string) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		send:   make(chan Message, sendBuffer),
		userID: userID,
		email:  email,
		role:   role,
	}
}

// readPump consumes inbound frames. The only client-initiated event is
// "ping", answered with a "pong" carrying a server timestamp.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}
		if msg.Event == "ping" {
			c.send <- Message{
				Event: "pong",
				Data: map[string]interface{}{
					"message":   "Server is alive",
					"timestamp": time.Now().UTC(),
				},
			}
		}
	}
}

// writePump serializes outbound frames and keeps the connection alive
// with protocol-level pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
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
