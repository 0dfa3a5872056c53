package http

import (
	"github.com/gin-gonic/gin"

	"inventory-hub/internal/search"
	"inventory-hub/pkg/log"
)

// Handler is the public interface for the search HTTP delivery layer.
type Handler interface {
	Search(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc search.UseCase
}

// New creates a new HTTP handler for search.
func New(l log.Logger, uc search.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
