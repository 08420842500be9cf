//go:build unit

package api_test

import (
	"cosme-store/internal/domain/user"
	"cosme-store/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// fakeAuth stands in for RequireAuth: any bearer token authenticates as
// userID with role.
func fakeAuth(userID uuid.UUID, role user.Role) gin.HandlerFunc {
	sessionID := uuid.New()
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			httperr.AbortUnauthenticated(c)
			return
		}
		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Set("session_id", sessionID)
		c.Next()
	}
}
