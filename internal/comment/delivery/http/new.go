package http

import (
	"github.com/gin-gonic/gin"

	"inventory-hub/internal/comment"
	"inventory-hub/pkg/log"
)

// Handler is the public interface for the comment HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc comment.UseCase
}

// New creates a new HTTP handler for the comment domain.
func New(l log.Logger, uc comment.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
