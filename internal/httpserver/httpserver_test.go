package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-lost-found/internal/middleware"
	"campus-lost-found/pkg/log"
)

type stubHandler struct{ hits map[string]int }

func (s *stubHandler) hit(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.hits[name]++
		c.Status(http.StatusNoContent)
	}
}

func (s *stubHandler) List(c *gin.Context)    { s.hit("list")(c) }
func (s *stubHandler) Recent(c *gin.Context)  { s.hit("recent")(c) }
func (s *stubHandler) Detail(c *gin.Context)  { s.hit("detail")(c) }
func (s *stubHandler) Create(c *gin.Context)  { s.hit("create")(c) }
func (s *stubHandler) Claim(c *gin.Context)   { s.hit("claim")(c) }
func (s *stubHandler) Delete(c *gin.Context)  { s.hit("delete")(c) }
func (s *stubHandler) Catalog(c *gin.Context) { s.hit("catalog")(c) }

func newServer(t *testing.T, ready func() error) (*HTTPServer, *stubHandler) {
	t.Helper()
	l := log.NewNop()
	h := &stubHandler{hits: map[string]int{}}
	srv, err := New(l, Config{
		Logger:      l,
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "development",
		Middleware:  middleware.New(l, middleware.Config{RateLimitPerMin: 600}),
		ItemHandler: h,
		Ready:       ready,
	})
	require.NoError(t, err)
	return srv, h
}

func serve(srv *HTTPServer, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestNewValidates(t *testing.T) {
	l := log.NewNop()
	_, err := New(l, Config{Mode: gin.TestMode, Port: 8080})
	assert.Error(t, err)

	_, err = New(l, Config{Mode: gin.TestMode, ItemHandler: &stubHandler{}})
	assert.Error(t, err)
}

func TestItemRoutes(t *testing.T) {
	srv, h := newServer(t, nil)

	cases := []struct {
		method, path, name string
	}{
		{http.MethodGet, "/api/v1/items", "list"},
		{http.MethodGet, "/api/v1/items/recent", "recent"},
		{http.MethodGet, "/api/v1/items/42", "detail"},
		{http.MethodPost, "/api/v1/items", "create"},
		{http.MethodPost, "/api/v1/items/42/claim", "claim"},
		{http.MethodDelete, "/api/v1/items/42", "delete"},
		{http.MethodGet, "/api/v1/catalog", "catalog"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(srv, tc.method, tc.path)
			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, 1, h.hits[tc.name])
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	srv, _ := newServer(t, nil)

	assert.Equal(t, http.StatusOK, serve(srv, http.MethodGet, "/health").Code)
	assert.Equal(t, http.StatusOK, serve(srv, http.MethodGet, "/live").Code)
	assert.Equal(t, http.StatusOK, serve(srv, http.MethodGet, "/ready").Code)

	down, _ := newServer(t, func() error { return errors.New("circuit open") })
	w := serve(down, http.MethodGet, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "circuit open")
}

func TestRunStopsOnCancel(t *testing.T) {
	srv, _ := newServer(t, nil)
	srv.port = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
