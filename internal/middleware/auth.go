package middleware

import (
	"net/http"
	"strings"

	"github.com/Vipul-2220/EventMate/internal/auth"
	"github.com/Vipul-2220/EventMate/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const (
	ctxUserID   = "auth_user_id"
	ctxUserRole = "auth_user_role"
)

// Auth validates the bearer token and stores the trusted user id and role
// claim on the request context. Registration itself is open to any
// authenticated user; role is only consulted for metadata edits.
func Auth(jwtSecret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "missing bearer token"},
			)
			return
		}

		claims, err := auth.Parse(jwtSecret, tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid token"},
			)
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxUserRole, claims.Role)
		c.Next()
	}
}

// RequireAdmin aborts unless Auth stored an admin role claim.
func RequireAdmin() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if UserRole(c) != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden,
				ginext.H{"error": "admin access required"},
			)
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user id set by Auth.
func UserID(c *ginext.Context) string {
	id, _ := c.Get(ctxUserID)
	s, _ := id.(string)
	return s
}

// UserRole returns the authenticated role set by Auth.
func UserRole(c *ginext.Context) domain.Role {
	role, _ := c.Get(ctxUserRole)
	r, _ := role.(domain.Role)
	return r
}
