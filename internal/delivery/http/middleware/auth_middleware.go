package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"go-jobportal-backend/config"
	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware verifies an HS256 bearer token and loads its id,
// email and role claims into the gin context. Tokens are minted by the
// external auth service; this layer only verifies them.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}

		claims, err := ParseToken(tokenString, cfg.JWTSecret)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), claims.UserID)
		c.Set(string(domain.KeyUserEmail), claims.Email)
		c.Set(string(domain.KeyUserRole), claims.Role)

		c.Next()
	}
}

// TokenClaims are the claims this backend relies on.
type TokenClaims struct {
	UserID int64
	Email  string
	Role   string
}

// ParseToken validates an HS256 token and extracts the claims. Shared
// with the websocket handshake, which authenticates outside the gin
// middleware chain.
func ParseToken(tokenString, secret string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		if secret == "" {
			return nil, fmt.Errorf("JWT_SECRET is not configured")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims")
	}

	// Numeric claims arrive as float64 from encoding/json.
	id, _ := claims["id"].(float64)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return &TokenClaims{
		UserID: int64(id),
		Email:  email,
		Role:   role,
	}, nil
}

// RequireRole rejects authenticated requests whose role claim does not
// match.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.EqualFold(c.GetString(string(domain.KeyUserRole)), role) {
			response.Error(c, http.StatusForbidden, "Insufficient permissions", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
