package ws

import (
	"net/http"
	"strings"

	"go-jobportal-backend/config"
	"go-jobportal-backend/internal/delivery/http/middleware"
	"go-jobportal-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Cross-origin is policed by the HTTP CORS layer; the handshake
	// itself accepts any origin like the previous backend did.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler upgrades /ws requests into notification-channel clients.
// Browsers cannot set headers on websocket handshakes, so the token is
// accepted from a "token" query parameter as well as the
// Authorization header.
func Handler(hub *Hub, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			token = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		}
		if token == "" {
			response.Error(c, http.StatusUnauthorized, "Authentication error: No token provided", nil)
			return
		}

		claims, err := middleware.ParseToken(token, cfg.JWTSecret)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Authentication error: Invalid token", nil)
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade already wrote the handshake failure.
			return
		}

		client := newClient(hub, conn, claims.UserID, claims.Email, claims.Role)
		hub.register(client)

		go client.writePump()
		go client.readPump()
	}
}
