package http

import (
	"github.com/gin-gonic/gin"

	"inventory-hub/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	inventories := rg.Group("/inventories/:id/comments")
	{
		inventories.GET("", h.List)
		inventories.POST("", mw.Auth(), h.Create)
	}

	rg.DELETE("/comments/:commentId", mw.Auth(), h.Delete)
}
