package pharmaclient

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/rxdeskhq/pharmaclient/internal/audit"
	"github.com/rxdeskhq/pharmaclient/session"
)

// Builder assembles a Client. Configure it during initialization and
// call Build exactly once.
type Builder struct {
	config Config

	httpClient *http.Client
	store      *session.Store
	adapter    session.Adapter
	logger     *zap.Logger
	auditSink  audit.Sink

	expiredHandler func()

	built bool
}

// New returns a Builder seeded with the default configuration.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the whole configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithBaseURL sets the backend origin.
func (b *Builder) WithBaseURL(baseURL string) *Builder {
	b.config.BaseURL = baseURL
	return b
}

// WithHTTPClient supplies the underlying HTTP client. Use it to inject
// transports, proxies, or a test server's client.
func (b *Builder) WithHTTPClient(client *http.Client) *Builder {
	b.httpClient = client
	return b
}

// WithSessionStore supplies a pre-built session store. Takes precedence
// over WithSessionAdapter.
func (b *Builder) WithSessionStore(store *session.Store) *Builder {
	b.store = store
	return b
}

// WithSessionAdapter sets the persistence adapter for the session store
// Build creates. Omit both adapter and store for an in-memory session.
func (b *Builder) WithSessionAdapter(adapter session.Adapter) *Builder {
	b.adapter = adapter
	return b
}

// WithLogger sets the structured logger.
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	b.logger = logger
	return b
}

// WithAuditSink sets the audit event sink and enables audit dispatch.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	b.config.Audit.Enabled = true
	return b
}

// WithMetricsEnabled toggles metric counters.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithSessionExpiredHandler registers a callback invoked once per
// session expiry, after the session has been cleared. Typical handlers
// prompt for re-login or terminate the program.
func (b *Builder) WithSessionExpiredHandler(handler func()) *Builder {
	b.expiredHandler = handler
	return b
}

// Build validates the configuration and constructs the Client.
func (b *Builder) Build() (*Client, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := b.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	httpClient := b.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	store := b.store
	if store == nil {
		adapter := b.adapter
		if adapter == nil {
			adapter = session.NewMemoryAdapter()
		}
		store = session.NewStore(adapter, logger.Named("session"))
	}

	c := &Client{
		config:         cfg,
		http:           httpClient,
		store:          store,
		logger:         logger,
		metrics:        NewMetrics(cfg.Metrics),
		audit:          audit.NewDispatcher(toAuditConfig(cfg.Audit), b.auditSink),
		expiredHandler: b.expiredHandler,
	}

	b.built = true

	return c, nil
}

func toAuditConfig(cfg AuditConfig) audit.Config {
	return audit.Config{
		Enabled:    cfg.Enabled,
		BufferSize: cfg.BufferSize,
		DropIfFull: cfg.DropIfFull,
	}
}
