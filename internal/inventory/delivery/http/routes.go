package http

import (
	"github.com/gin-gonic/gin"

	"inventory-hub/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.GET("/home", h.Home)
	rg.GET("/dashboard", mw.Auth(), h.Dashboard)

	tags := rg.Group("/tags")
	{
		tags.GET("", h.SearchTags)
		tags.GET("/:name/inventories", h.ListByTag)
	}

	inventories := rg.Group("/inventories")
	{
		inventories.GET("", h.List)
		inventories.GET("/:id", h.Detail)
		inventories.GET("/:id/stats", h.Stats)

		inventories.POST("", mw.Auth(), h.Create)
		inventories.PUT("/:id", mw.Auth(), h.Update)
		inventories.DELETE("/:id", mw.Auth(), h.Delete)
		inventories.PUT("/:id/custom-id-format", mw.Auth(), h.ReplaceFormat)
		inventories.PUT("/:id/fields", mw.Auth(), h.ReplaceFields)
		inventories.POST("/:id/access", mw.Auth(), h.GrantAccess)
		inventories.DELETE("/:id/access/:grantId", mw.Auth(), h.RevokeAccess)
		inventories.POST("/:id/tags", mw.Auth(), h.AddTag)
		inventories.DELETE("/:id/tags/:tagId", mw.Auth(), h.RemoveTag)
	}
}
