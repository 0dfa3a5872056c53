package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"inventory-hub/internal/model"
	userRepo "inventory-hub/internal/user/repository"
	"inventory-hub/pkg/response"
)

const scopeContextKey = "auth.scope"

// GetScope returns the caller scope set by Auth(). Zero scope when the route
// is unauthenticated.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeContextKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}

// Auth verifies the bearer token, rejects revoked sessions and blocked
// accounts, and stores the caller scope on the gin context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc, err := m.jwtManager.Verify(token)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		if revoked, err := m.sessions.IsRevoked(ctx, sc.TokenID); err != nil || revoked {
			if err != nil {
				m.l.Errorf(ctx, "middleware.Auth IsRevoked: %v", err)
			}
			response.Unauthorized(c)
			c.Abort()
			return
		}

		u, err := m.users.GetOneUser(ctx, userRepo.GetOneUserOptions{ID: sc.UserID})
		if err != nil || u.ID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		if u.Blocked {
			response.Forbidden(c)
			c.Abort()
			return
		}

		// The DB is authoritative for the role; a stale token cannot keep
		// admin rights after a demotion.
		sc.Role = u.Role
		c.Set(scopeContextKey, sc)
		c.Next()
	}
}

// AdminOnly rejects callers without the admin role. Must run after Auth.
func (m Middleware) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetScope(c).IsAdmin() {
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
