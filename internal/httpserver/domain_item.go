package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	itemHTTP "campus-lost-found/internal/item/delivery/http"
)

// setupItemDomain registers /api/v1/items and /api/v1/catalog.
// The repository, use case and handler are built in main and handed over through Config.
func (srv HTTPServer) setupItemDomain(ctx context.Context, api *gin.RouterGroup) error {
	itemHTTP.RegisterRoutes(api, srv.itemHandler, srv.mw)

	srv.l.Infof(ctx, "Item domain registered")
	return nil
}
