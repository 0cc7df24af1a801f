package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/profilehub/accounts-server/internal/logger"
	"github.com/profilehub/accounts-server/internal/model"
)

// TokenParser resolves user IDs from bearer tokens.
type TokenParser interface {
	ParseAccessToken(token string) (uuid.UUID, error)
}

// Authenticate validates bearer tokens and injects the requester's user
// ID into the request context. Requests without an Authorization header
// pass through as anonymous; the access policies decide what anonymous
// requesters may do.
type Authenticate struct {
	tokenParser    TokenParser
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenParser TokenParser, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenParser: tokenParser, contextManager: contextManager, logger: logger}
}

// Handle parses the Authorization header when present. A malformed or
// expired token is rejected outright rather than downgraded to anonymous.
func (m *Authenticate) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := m.tokenParser.ParseAccessToken(tokenString)
		if err != nil || userID == uuid.Nil {
			m.logger.Info("Authenticate middleware: rejected token",
				"path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization token"})
			return
		}

		ctx := m.contextManager.SetUserIDToContext(c.Request.Context(), userID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
