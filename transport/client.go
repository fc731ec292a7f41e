package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osrstools/womgo/errs"
	"github.com/osrstools/womgo/pkg/logger"
	"github.com/osrstools/womgo/pkg/metrics"
)

const (
	// DefaultBaseURL is the public API base.
	DefaultBaseURL = "https://api.wiseoldman.net/v2"

	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "womgo (github.com/osrstools/womgo)"
)

// Client is the pooled HTTP Requester. It must be started before the
// first request and closed after the last one; Send fails fast with
// errs.ErrNotStarted / errs.ErrClosed instead of hanging.
type Client struct {
	mu sync.RWMutex

	baseURL   string
	apiKey    string
	userAgent string
	timeout   time.Duration

	httpClient *http.Client
	started    bool
	closed     bool

	log logger.Logger
	mtr *metrics.Manager
}

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Useful for development
// against a local instance.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithAPIKey sets the api key sent with every request.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithUserAgent sets the user agent sent with every request.
func WithUserAgent(agent string) Option {
	return func(c *Client) {
		if agent != "" {
			c.userAgent = agent
		}
	}
}

// WithTimeout bounds each request round trip.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(log logger.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithMetrics sets the metrics manager that records request counts
// and latencies.
func WithMetrics(m *metrics.Manager) Option {
	return func(c *Client) {
		c.mtr = m
	}
}

// NewClient creates an unstarted Client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: defaultUserAgent,
		timeout:   defaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SetAPIKey replaces the api key used for subsequent requests.
func (c *Client) SetAPIKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apiKey = key
}

// UnsetAPIKey stops sending an api key with subsequent requests.
func (c *Client) UnsetAPIKey() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apiKey = ""
}

// Start initializes the pooled connection. Calling Start on an
// already started client is a no-op.
func (c *Client) Start(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errs.ErrClosed
	}

	if c.started {
		return nil
	}

	c.httpClient = &http.Client{Timeout: c.timeout}
	c.started = true

	return nil
}

// Close releases the pooled connection. The client cannot be
// restarted afterwards.
func (c *Client) Close(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started || c.closed {
		c.closed = true
		return nil
	}

	c.httpClient.CloseIdleConnections()
	c.closed = true

	return nil
}

// Send implements Requester.
func (c *Client) Send(ctx context.Context, req *Request) (*Response, error) {
	c.mu.RLock()

	switch {
	case c.closed:
		c.mu.RUnlock()
		return nil, errs.ErrClosed
	case !c.started:
		c.mu.RUnlock()
		return nil, errs.ErrNotStarted
	}

	httpClient, apiKey, userAgent, baseURL := c.httpClient, c.apiKey, c.userAgent, c.baseURL
	c.mu.RUnlock()

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, baseURL+req.Path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	if len(req.Query) > 0 {
		httpReq.URL.RawQuery = req.Query.Encode()
	}

	requestID := uuid.NewString()
	httpReq.Header.Set("x-request-id", requestID)
	httpReq.Header.Set("x-user-agent", userAgent)
	httpReq.Header.Set("User-Agent", userAgent)

	if apiKey != "" {
		httpReq.Header.Set("x-api-key", apiKey)
	}

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()

	httpResp, err := httpClient.Do(httpReq)
	if err != nil {
		c.mtr.RecordTransportFailure(req.Method, req.Path)

		if c.log != nil {
			c.log.Warn(ctx, "request failed",
				logger.String("request_id", requestID),
				logger.String("method", req.Method),
				logger.String("path", req.Path),
				logger.Error(err))
		}

		return nil, err
	}
	defer func() { _ = httpResp.Body.Close() }()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		c.mtr.RecordTransportFailure(req.Method, req.Path)
		return nil, fmt.Errorf("read response body: %w", err)
	}

	elapsed := time.Since(start)
	c.mtr.RecordRequest(req.Method, req.Path, httpResp.StatusCode, elapsed)

	if c.log != nil {
		c.log.Debug(ctx, "request completed",
			logger.String("request_id", requestID),
			logger.String("method", req.Method),
			logger.String("path", req.Path),
			logger.Int("status", httpResp.StatusCode),
			logger.Any("elapsed", elapsed))
	}

	return &Response{Status: httpResp.StatusCode, Body: raw}, nil
}
