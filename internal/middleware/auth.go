package middleware

import (
	"strings"

	"github.com/codeverse-africa/whingan-core/internal/pkg/jwt"
	"github.com/codeverse-africa/whingan-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

const (
	ContextKeyUserID   = "user_id"
	ContextKeyIdentity = "identity"
	ContextKeyIsAdmin  = "is_admin"
)

// Auth enforces bearer-token authentication. A missing token yields 401, a
// bad or expired one 403, matching the original middleware contract.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("Authorization")
		if strings.TrimSpace(raw) == "" {
			response.Unauthorized(c)
			return
		}
		claims, err := jwt.Parse(NormalizeToken(raw))
		if err != nil {
			response.Forbidden(c)
			return
		}
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyIsAdmin, claims.IsAdmin())
		if claims.IsAdmin() {
			c.Set(ContextKeyIdentity, claims.Username)
		} else {
			c.Set(ContextKeyIdentity, claims.Email)
		}
		c.Next()
	}
}

// CurrentUserID extracts the authenticated caller's id from context.
func CurrentUserID(c *gin.Context) string {
	v, _ := c.Get(ContextKeyUserID)
	id, _ := v.(string)
	return id
}

// CurrentIdentity extracts the authenticated caller's email or username.
func CurrentIdentity(c *gin.Context) string {
	v, _ := c.Get(ContextKeyIdentity)
	id, _ := v.(string)
	return id
}

// IsAdmin reports whether the authenticated caller is a dashboard admin.
func IsAdmin(c *gin.Context) bool {
	v, _ := c.Get(ContextKeyIsAdmin)
	b, _ := v.(bool)
	return b
}

// NormalizeToken trims spaces and strips the optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
