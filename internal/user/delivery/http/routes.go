package http

import (
	"github.com/gin-gonic/gin"

	"inventory-hub/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/google", h.GoogleRedirect)
		auth.GET("/google/callback", h.GoogleCallback)
		auth.POST("/logout", mw.Auth(), h.Logout)
	}

	users := rg.Group("/users")
	{
		users.GET("/me", mw.Auth(), h.Me)
		users.GET("/:id", h.Profile)
	}

	admin := rg.Group("/admin", mw.Auth(), mw.AdminOnly())
	{
		admin.GET("/users", h.AdminList)
		admin.PATCH("/users/:id/role", h.AdminSetRole)
		admin.PATCH("/users/:id/block", h.AdminSetBlocked)
		admin.DELETE("/users/:id", h.AdminDelete)
	}
}
