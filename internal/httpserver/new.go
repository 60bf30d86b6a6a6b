package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	itemHTTP "campus-lost-found/internal/item/delivery/http"
	"campus-lost-found/internal/middleware"
	"campus-lost-found/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw middleware.Middleware

	// Item domain
	itemHandler itemHTTP.Handler

	// ready reports whether downstream dependencies are usable.
	ready func() error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware  middleware.Middleware
	ItemHandler itemHTTP.Handler
	Ready       func() error
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          cfg.Middleware,
		itemHandler: cfg.ItemHandler,
		ready:       cfg.Ready,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.itemHandler == nil {
		return errors.New("item handler is required")
	}
	return nil
}

// Handler exposes the gin engine, e.g. for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
