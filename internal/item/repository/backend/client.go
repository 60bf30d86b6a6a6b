package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"

	"campus-lost-found/internal/item"
	"campus-lost-found/internal/item/normalizer"
	pkgLog "campus-lost-found/pkg/log"
)

const maxErrorBody = 512

// Client is the HTTP wrapper for the lost & found backend REST API.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	breaker       *gobreaker.CircuitBreaker[[]byte]
	retryAttempts int
	retryDelay    time.Duration
	l             pkgLog.Logger
}

// NewClient creates a backend client. Every call goes through one circuit breaker.
func NewClient(cfg Config, l pkgLog.Logger) *Client {
	cfg = cfg.withDefaults()
	c := &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:    &http.Client{Timeout: cfg.Timeout},
		retryAttempts: cfg.RetryAttempts,
		retryDelay:    cfg.RetryDelay,
		l:             l,
	}

	c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "lostfound-backend",
		MaxRequests: cfg.Breaker.MaxRequests,
		Interval:    cfg.Breaker.Interval,
		Timeout:     cfg.Breaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.Breaker.FailureThreshold
		},
		// A missing item is an answer, not a backend fault.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, item.ErrNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			l.Warnf(context.Background(), "backend.client: circuit %s changed from %s to %s", name, from, to)
		},
	})
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Ready reports an error while the circuit breaker is open.
func (c *Client) Ready() error {
	if c.breaker.State() == gobreaker.StateOpen {
		return &item.TransportError{Op: "ready", Err: gobreaker.ErrOpenState}
	}
	return nil
}

// ListItems fetches GET /api/items.
func (c *Client) ListItems(ctx context.Context) ([]map[string]any, error) {
	body, err := c.read(ctx, "list", c.baseURL+itemsPath)
	if err != nil {
		return nil, err
	}
	raws, err := normalizer.DecodeList(body)
	if err != nil {
		return nil, &item.TransportError{Op: "list", Err: err}
	}
	return raws, nil
}

// GetItem fetches GET /api/items/{id}. A 404 or an empty body yields item.ErrNotFound.
func (c *Client) GetItem(ctx context.Context, id string) (map[string]any, error) {
	body, err := c.read(ctx, "get", c.itemURL(id))
	if err != nil {
		return nil, err
	}
	return decodeOne("get", body)
}

// CreateItem posts a multipart form to POST /api/items.
func (c *Client) CreateItem(ctx context.Context, req CreateItemRequest) (map[string]any, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := []struct{ key, value string }{
		{"name", req.Name},
		{"category", req.Category},
		{"color", req.Color},
		{"location", req.Location},
		{"description", req.Description},
		{"type", req.Type},
		{"date", req.Date},
	}
	for _, f := range fields {
		if err := w.WriteField(f.key, f.value); err != nil {
			return nil, fmt.Errorf("failed to write form field %s: %w", f.key, err)
		}
	}
	if len(req.Image) > 0 {
		part, err := w.CreateFormFile("image", req.ImageName)
		if err != nil {
			return nil, fmt.Errorf("failed to create image part: %w", err)
		}
		if _, err := part.Write(req.Image); err != nil {
			return nil, fmt.Errorf("failed to write image part: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart body: %w", err)
	}

	body, err := c.do(ctx, "create", http.MethodPost, c.baseURL+itemsPath, w.FormDataContentType(), buf.Bytes())
	if err != nil {
		return nil, err
	}
	return decodeOne("create", body)
}

// UpdateItem sends a partial JSON update to PUT /api/items/{id}.
func (c *Client) UpdateItem(ctx context.Context, id string, req UpdateItemRequest) (map[string]any, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal update request: %w", err)
	}
	body, err := c.do(ctx, "update", http.MethodPut, c.itemURL(id), "application/json", payload)
	if err != nil {
		return nil, err
	}
	return decodeOne("update", body)
}

// DeleteItem calls DELETE /api/items/{id}.
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	_, err := c.do(ctx, "delete", http.MethodDelete, c.itemURL(id), "", nil)
	return err
}

func (c *Client) itemURL(id string) string {
	return fmt.Sprintf("%s%s/%s", c.baseURL, itemsPath, url.PathEscape(id))
}

// read performs a GET, retrying transport failures with a linearly growing delay.
// Not-found answers and cancelled contexts are returned immediately.
func (c *Client) read(ctx context.Context, op, target string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt < c.retryAttempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * c.retryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, &item.TransportError{Op: op, Err: ctx.Err()}
			}
			c.l.Debugf(ctx, "backend.client.%s: retry %d after %v", op, attempt, lastErr)
		}

		body, err := c.do(ctx, op, http.MethodGet, target, "", nil)
		if err == nil {
			return body, nil
		}
		if errors.Is(err, item.ErrNotFound) || ctx.Err() != nil || errors.Is(err, gobreaker.ErrOpenState) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

// do sends one request through the breaker and returns the response body of a 2xx answer.
func (c *Client) do(ctx context.Context, op, method, target, contentType string, payload []byte) ([]byte, error) {
	body, err := c.breaker.Execute(func() ([]byte, error) {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, target, reader)
		if err != nil {
			return nil, &item.TransportError{Op: op, Err: err}
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, &item.TransportError{Op: op, Err: err}
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, &item.TransportError{Op: op, StatusCode: resp.StatusCode, Err: err}
		}
		if resp.StatusCode == http.StatusNotFound {
			return nil, item.ErrNotFound
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, &item.TransportError{Op: op, StatusCode: resp.StatusCode, Err: errors.New(snippet(raw))}
		}
		return raw, nil
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, &item.TransportError{Op: op, Err: err}
	}
	return body, err
}

func decodeOne(op string, body []byte) (map[string]any, error) {
	raw, err := normalizer.DecodeOne(body)
	if errors.Is(err, item.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, &item.TransportError{Op: op, Err: err}
	}
	return raw, nil
}

func snippet(raw []byte) string {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return "empty response"
	}
	if len(s) > maxErrorBody {
		s = s[:maxErrorBody]
	}
	return s
}
