package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"coach-booking-engine/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxPartyIDKey = "party_id"
	ctxRoleKey    = "party_role"
)

// AuthMiddleware resolves the calling party from a bearer token issued by
// the identity service. The engine never accepts a party id from the
// request body; authorization always starts from the token identity.
type AuthMiddleware struct {
	tokens *jwt.Service
}

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxPartyIDKey, claims.PartyID)
		c.Set(ctxRoleKey, claims.Role)
		c.Set("jwt_claims", map[string]any{
			"party_id": claims.PartyID.String(),
			"role":     claims.Role,
		})
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetPartyID(c *gin.Context) (uuid.UUID, bool) {
	partyID, exists := c.Get(ctxPartyIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := partyID.(uuid.UUID)
	return id, ok
}
