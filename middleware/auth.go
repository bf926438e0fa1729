package middleware

import (
	"net/http"
	"strings"

	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by Auth and trusted downstream.
const (
	CtxUserID = "userID"
	CtxRole   = "role"
)

// Auth verifies the Bearer token and injects the caller identity into the
// gin context. Handlers trust these fields without re-validating them.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := ""
		if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
			raw = strings.TrimPrefix(header, "Bearer ")
		} else if q := c.Query("token"); q != "" {
			// browsers cannot set headers on websocket upgrades
			raw = q
		}
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing bearer token"})
			return
		}

		id, role, err := utils.ParseToken(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
			return
		}

		c.Set(CtxUserID, id)
		c.Set(CtxRole, role)
		c.Next()
	}
}

// RequireRole gates a route group to the given roles. Must run after Auth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "insufficient permissions"})
	}
}

// CallerID returns the authenticated user id from the context.
func CallerID(c *gin.Context) uint {
	if v, ok := c.Get(CtxUserID); ok {
		if id, ok2 := v.(uint); ok2 {
			return id
		}
	}
	return 0
}
