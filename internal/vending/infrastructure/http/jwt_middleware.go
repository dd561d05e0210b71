package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/szilard-n/vending-machine/internal/pkg/jwt"
	"github.com/szilard-n/vending-machine/internal/pkg/logging"
)

const (
	authHeaderName = "Authorization"
)

// NewAuthMiddleware resolves the calling principal from a bearer token and
// stores the account id and role for the handlers. Token issuance and session
// management live outside this service.
func NewAuthMiddleware(secret []byte, tokenParser jwt.TokenParser, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeaderName)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "missing authorization header"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid auth header"})
			return
		}

		claims, err := tokenParser.ParseToken(secret, parts[1])
		if err != nil {
			logger.Warn("rejected request with invalid token", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid token"})
			return
		}

		c.Set(accountIdContextKey, claims.AccountID)
		c.Set(roleContextKey, claims.Role)
		c.Next()
	}
}

func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerRole, ok := roleFromContext(c)
		if !ok || callerRole != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"errors": "operation not allowed for this role"})
			return
		}

		c.Next()
	}
}
