package handlers

import (
	"github.com/gin-gonic/gin"

	"milkrun/internal/interfaces/http/middleware"
	"milkrun/internal/shared/auth"
	"milkrun/internal/shared/utils"
)

// AuthHandler answers the privilege probe so clients can decide whether to
// show admin controls.
type AuthHandler struct {
	guard *auth.Guard
}

func NewAuthHandler(guard *auth.Guard) *AuthHandler {
	return &AuthHandler{guard: guard}
}

// Check handles GET /api/auth/check
func (h *AuthHandler) Check(c *gin.Context) {
	key := c.GetHeader(middleware.APIKeyHeader)
	utils.OKResponse(c, gin.H{
		"privileged": key != "" && h.guard.IsPrivileged(key),
	})
}
