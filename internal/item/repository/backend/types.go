package backend

import "time"

const (
	DefaultBaseURL       = "http://localhost:4000"
	DefaultTimeout       = 10 * time.Second
	DefaultRetryAttempts = 3
	DefaultRetryDelay    = 300 * time.Millisecond

	itemsPath = "/api/items"
)

// Config configures the backend client.
type Config struct {
	BaseURL       string
	Timeout       time.Duration
	RetryAttempts int           // total tries for reads, at least 1
	RetryDelay    time.Duration // grows linearly with each retry
	Breaker       BreakerConfig
}

// BreakerConfig configures the circuit breaker wrapped around every backend call.
type BreakerConfig struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.RetryAttempts <= 0 {
		c.RetryAttempts = DefaultRetryAttempts
	}
	if c.RetryDelay < 0 {
		c.RetryDelay = 0
	}
	if c.Breaker.MaxRequests == 0 {
		c.Breaker.MaxRequests = 1
	}
	if c.Breaker.Timeout <= 0 {
		c.Breaker.Timeout = 30 * time.Second
	}
	if c.Breaker.FailureThreshold == 0 {
		c.Breaker.FailureThreshold = 5
	}
	return c
}

// CreateItemRequest is the multipart form of POST /api/items.
type CreateItemRequest struct {
	Name        string
	Category    string
	Color       string
	Location    string
	Description string
	Type        string
	Date        string
	ImageName   string
	Image       []byte
}

// UpdateItemRequest is the JSON body of PUT /api/items/{id}.
type UpdateItemRequest struct {
	Status string `json:"status,omitempty"`
	Type   string `json:"type,omitempty"`
}
