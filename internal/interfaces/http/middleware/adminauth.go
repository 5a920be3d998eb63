package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"milkrun/internal/shared/auth"
	"milkrun/internal/shared/utils"
)

const (
	// APIKeyHeader carries the caller's admin key.
	APIKeyHeader = "X-API-Key"

	// PrivilegedKey is the gin context key set when the caller passed the
	// admin guard.
	PrivilegedKey = "privileged"
)

// AdminAuth gates a route group on the privileged-caller allow list.
func AdminAuth(guard *auth.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(APIKeyHeader)
		if key == "" || !guard.IsPrivileged(key) {
			utils.ErrorResponse(c, http.StatusForbidden, "access denied: admin privileges required")
			c.Abort()
			return
		}

		c.Set(PrivilegedKey, true)
		c.Next()
	}
}

// IsPrivileged reports whether the current request passed the admin guard.
func IsPrivileged(c *gin.Context) bool {
	return c.GetBool(PrivilegedKey)
}
