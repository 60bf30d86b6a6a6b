package http

import (
	"github.com/gin-gonic/gin"

	"campus-lost-found/internal/item"
	"campus-lost-found/pkg/log"
)

// Handler is the public interface for the item HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Recent(c *gin.Context)
	Detail(c *gin.Context)
	Create(c *gin.Context)
	Claim(c *gin.Context)
	Delete(c *gin.Context)
	Catalog(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc item.UseCase
}

// New creates a new HTTP handler for the item domain.
func New(l log.Logger, uc item.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
