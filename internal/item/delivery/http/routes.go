package http

import (
	"github.com/gin-gonic/gin"

	"campus-lost-found/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Routes that write
// to the backend are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	items := rg.Group("/items")
	{
		items.GET("", h.List)
		items.GET("/recent", h.Recent)
		items.GET("/:id", h.Detail)
		items.POST("", mw.RateLimit(), h.Create)
		items.POST("/:id/claim", mw.RateLimit(), h.Claim)
		items.DELETE("/:id", mw.RateLimit(), h.Delete)
	}
	rg.GET("/catalog", h.Catalog)
}
