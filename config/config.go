// Package config defines client configuration and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - Layer optional file and environment overrides via Load.
// - External errors are wrapped via this package's error kinds.
package config

import (
	"time"
)

// Default values applied by New.
const (
	defaultBaseURL        = "https://api.wiseoldman.net/v2"
	defaultTimeoutSeconds = 30
	defaultLogLevel       = "info"
	defaultUserAgent      = "womgo (github.com/osrstools/womgo)"
)

// Config contains client configuration.
type Config struct {
	// BaseURL is the API base, e.g. https://api.wiseoldman.net/v2.
	// Point it at a local instance for development.
	BaseURL string `koanf:"base_url"`

	// APIKey is the optional api key sent with requests.
	APIKey string `koanf:"api_key"`

	// UserAgent identifies the consumer to the API operators.
	UserAgent string `koanf:"user_agent"`

	// TimeoutSeconds bounds each request round trip.
	TimeoutSeconds int `koanf:"timeout_seconds"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		BaseURL:        defaultBaseURL,
		UserAgent:      defaultUserAgent,
		TimeoutSeconds: defaultTimeoutSeconds,
		LogLevel:       defaultLogLevel,
	}
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
