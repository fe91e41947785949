package pharmaclient

import (
	"errors"
	"net/url"
	"time"
)

// Config is the full client configuration. Zero values fall back to the
// defaults from defaultConfig during Build.
type Config struct {
	// BaseURL is the backend origin, e.g. "https://rx.example.com".
	BaseURL string
	// Timeout bounds each HTTP round trip when the caller's context has
	// no earlier deadline.
	Timeout time.Duration
	// UserAgent is sent on every request.
	UserAgent string
	// RefreshPath overrides the token refresh endpoint.
	RefreshPath string

	Audit   AuditConfig
	Metrics MetricsConfig
}

/*
====================================
AUDIT CONFIG
====================================
*/

// AuditConfig controls the asynchronous audit event dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	// DropIfFull drops events instead of blocking when the buffer is
	// full. Dropped counts are still tracked.
	DropIfFull bool
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig controls the in-process metrics counters.
type MetricsConfig struct {
	Enabled bool
	// EnableLatencyHistograms additionally tracks request latency
	// bucket counts.
	EnableLatencyHistograms bool
}

func defaultConfig() Config {
	return Config{
		Timeout:     30 * time.Second,
		UserAgent:   "pharmaclient/1.0",
		RefreshPath: endpointAuthRefresh,
		Audit: AuditConfig{
			BufferSize: 256,
			DropIfFull: true,
		},
	}
}

// Validate checks the fields Build depends on.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("BaseURL is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("BaseURL must be an absolute URL")
	}
	if c.Timeout < 0 {
		return errors.New("Timeout must not be negative")
	}
	if c.RefreshPath == "" {
		return errors.New("RefreshPath is required")
	}
	return nil
}

func cloneConfig(c Config) Config {
	// All fields are value types today; the clone keeps Build immune to
	// later mutation of the caller's struct.
	return c
}
