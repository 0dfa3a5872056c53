package http

import (
	"github.com/gin-gonic/gin"

	"inventory-hub/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	inventories := rg.Group("/inventories/:id/items")
	{
		inventories.GET("", h.List)
		inventories.POST("", mw.Auth(), h.Create)
		inventories.DELETE("", mw.Auth(), h.DeleteBulk)
	}

	items := rg.Group("/items")
	{
		items.GET("/:id", h.Detail)
		items.PUT("/:id", mw.Auth(), h.Update)
		items.DELETE("/:id", mw.Auth(), h.Delete)
		items.POST("/:id/like", mw.Auth(), h.Like)
		items.DELETE("/:id/like", mw.Auth(), h.Unlike)
	}
}
