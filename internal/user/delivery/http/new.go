package http

import (
	"github.com/gin-gonic/gin"

	"inventory-hub/internal/user"
	"inventory-hub/pkg/log"
)

// Handler is the public interface for the user HTTP delivery layer.
type Handler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	GoogleRedirect(c *gin.Context)
	GoogleCallback(c *gin.Context)
	Logout(c *gin.Context)
	Me(c *gin.Context)
	Profile(c *gin.Context)
	AdminList(c *gin.Context)
	AdminSetRole(c *gin.Context)
	AdminSetBlocked(c *gin.Context)
	AdminDelete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc user.UseCase
}

// New creates a new HTTP handler for the user domain.
func New(l log.Logger, uc user.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
