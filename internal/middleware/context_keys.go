package middleware

import (
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// userIDKey and roleKey store the authenticated identity in the request context.
// Using a custom type prevents collisions.
const (
	userIDKey = contextKey("userID")
	roleKey   = contextKey("role")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (int64, bool) {
	if v, exists := c.Get(string(userIDKey)); exists {
		userID, ok := v.(int64)
		return userID, ok
	}
	// check in the request context as well
	if v, ok := c.Request.Context().Value(userIDKey).(int64); ok {
		return v, true
	}
	return 0, false
}

// GetRoleFromContext retrieves the authenticated user's role.
func GetRoleFromContext(c *gin.Context) (domain.Role, bool) {
	if v, exists := c.Get(string(roleKey)); exists {
		role, ok := v.(domain.Role)
		return role, ok
	}
	if v, ok := c.Request.Context().Value(roleKey).(domain.Role); ok {
		return v, true
	}
	return "", false
}
