// Package womgo is a typed client for the Wise Old Man API. Every
// operation returns a Result holding either a decoded domain record
// or a failure value; ordinary failures (remote errors, decode
// mismatches) never panic.
//
// Usage:
//
//	client := womgo.NewClient(womgo.WithUserAgent("@you"))
//	if err := client.Start(ctx); err != nil { ... }
//	defer client.Close(ctx)
//
//	res := client.Players().GetDetails(ctx, "jonxslays")
//	if res.IsOk() {
//		fmt.Println(res.Unwrap().Username)
//	} else {
//		fmt.Println(res.UnwrapErr())
//	}
package womgo

import (
	"context"
	"time"

	"github.com/osrstools/womgo/config"
	"github.com/osrstools/womgo/pkg/logger"
	"github.com/osrstools/womgo/pkg/metrics"
	"github.com/osrstools/womgo/result"
	"github.com/osrstools/womgo/serde"
	"github.com/osrstools/womgo/transport"
)

// Result is the shape every operation returns. The error is always
// one of the closed taxonomy: *errs.TransportError or
// *errs.DecodeError; discriminate with errors.As.
type Result[T any] = result.Result[T, error]

// Client exposes the API operations, grouped by service. It holds no
// cross-call mutable state and is safe for concurrent use; concurrent
// operations share the pooled transport but are otherwise
// independent.
type Client struct {
	requester transport.Requester
	serde     *serde.Deserializer
	log       logger.Logger
	mtr       *metrics.Manager

	// owned is set when the client built its own transport and is
	// responsible for its lifecycle.
	owned *transport.Client

	baseURL   string
	apiKey    string
	userAgent string
	timeout   time.Duration

	players      *PlayerService
	groups       *GroupService
	competitions *CompetitionService
	names        *NameChangeService
	records      *RecordService
	deltas       *DeltaService
	efficiency   *EfficiencyService
}

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithAPIKey sets the api key sent with requests.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithUserAgent sets the user agent sent with requests. Operators ask
// consumers to identify themselves, so setting one is encouraged.
func WithUserAgent(agent string) Option {
	return func(c *Client) {
		c.userAgent = agent
	}
}

// WithBaseURL overrides the API base URL, e.g. for a local instance.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout bounds each request round trip.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithRequester injects a transport capability, replacing the default
// pooled HTTP transport. The injected capability's lifecycle belongs
// to the caller.
func WithRequester(r transport.Requester) Option {
	return func(c *Client) {
		c.requester = r
	}
}

// WithLogger sets the structured logger.
func WithLogger(log logger.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithMetrics sets the metrics manager.
func WithMetrics(m *metrics.Manager) Option {
	return func(c *Client) {
		c.mtr = m
	}
}

// NewClient creates a Client. Without WithRequester it builds the
// default pooled transport, which must be started with Start before
// the first operation.
func NewClient(opts ...Option) *Client {
	c := &Client{serde: serde.NewDeserializer()}

	for _, opt := range opts {
		opt(c)
	}

	if c.requester == nil {
		c.owned = transport.NewClient(
			transport.WithBaseURL(c.baseURL),
			transport.WithAPIKey(c.apiKey),
			transport.WithUserAgent(c.userAgent),
			transport.WithTimeout(c.timeout),
			transport.WithLogger(c.log),
			transport.WithMetrics(c.mtr),
		)
		c.requester = c.owned
	}

	c.players = &PlayerService{client: c}
	c.groups = &GroupService{client: c}
	c.competitions = &CompetitionService{client: c}
	c.names = &NameChangeService{client: c}
	c.records = &RecordService{client: c}
	c.deltas = &DeltaService{client: c}
	c.efficiency = &EfficiencyService{client: c}

	return c
}

// FromConfig creates a Client from a loaded Config. Additional
// options apply on top.
func FromConfig(cfg *config.Config, opts ...Option) *Client {
	base := []Option{
		WithBaseURL(cfg.BaseURL),
		WithAPIKey(cfg.APIKey),
		WithUserAgent(cfg.UserAgent),
		WithTimeout(cfg.Timeout()),
	}

	return NewClient(append(base, opts...)...)
}

// Start starts the owned transport. It is a no-op when a transport
// was injected.
func (c *Client) Start(ctx context.Context) error {
	if c.owned == nil {
		return nil
	}

	return c.owned.Start(ctx)
}

// Close closes the owned transport. It is a no-op when a transport
// was injected.
func (c *Client) Close(ctx context.Context) error {
	if c.owned == nil {
		return nil
	}

	return c.owned.Close(ctx)
}

// SetAPIKey replaces the api key on the owned transport.
func (c *Client) SetAPIKey(key string) {
	if c.owned != nil {
		c.owned.SetAPIKey(key)
	}
}

// UnsetAPIKey stops sending an api key from the owned transport.
func (c *Client) UnsetAPIKey() {
	if c.owned != nil {
		c.owned.UnsetAPIKey()
	}
}

// Players returns the service handling player endpoints.
func (c *Client) Players() *PlayerService { return c.players }

// Groups returns the service handling group endpoints.
func (c *Client) Groups() *GroupService { return c.groups }

// Competitions returns the service handling competition endpoints.
func (c *Client) Competitions() *CompetitionService { return c.competitions }

// Names returns the service handling name change endpoints.
func (c *Client) Names() *NameChangeService { return c.names }

// Records returns the service handling record endpoints.
func (c *Client) Records() *RecordService { return c.records }

// Deltas returns the service handling gains leaderboard endpoints.
func (c *Client) Deltas() *DeltaService { return c.deltas }

// Efficiency returns the service handling efficiency endpoints.
func (c *Client) Efficiency() *EfficiencyService { return c.efficiency }
