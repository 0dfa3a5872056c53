package http

import (
	"github.com/gin-gonic/gin"

	"inventory-hub/internal/inventory"
	"inventory-hub/pkg/log"
)

// Handler is the public interface for the inventory HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	ReplaceFormat(c *gin.Context)
	ReplaceFields(c *gin.Context)
	GrantAccess(c *gin.Context)
	RevokeAccess(c *gin.Context)
	AddTag(c *gin.Context)
	RemoveTag(c *gin.Context)
	SearchTags(c *gin.Context)
	ListByTag(c *gin.Context)
	Stats(c *gin.Context)
	Home(c *gin.Context)
	Dashboard(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc inventory.UseCase
}

// New creates a new HTTP handler for the inventory domain.
func New(l log.Logger, uc inventory.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
