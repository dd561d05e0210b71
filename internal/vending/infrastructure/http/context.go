package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	accountIdContextKey = "accountId"
	roleContextKey      = "role"
)

func accountIdFromContext(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(accountIdContextKey)
	if !exists {
		return uuid.Nil, false
	}

	accountId, ok := value.(uuid.UUID)
	return accountId, ok
}

func roleFromContext(c *gin.Context) (string, bool) {
	value, exists := c.Get(roleContextKey)
	if !exists {
		return "", false
	}

	role, ok := value.(string)
	return role, ok
}
