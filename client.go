package pharmaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/rxdeskhq/pharmaclient/internal/audit"
	"github.com/rxdeskhq/pharmaclient/internal/pipeline"
	"github.com/rxdeskhq/pharmaclient/session"
)

// Client is the entry point for all backend calls. Build one with the
// Builder; the zero value is not usable. A Client is safe for
// concurrent use.
type Client struct {
	config  Config
	http    *http.Client
	store   *session.Store
	logger  *zap.Logger
	metrics *Metrics
	audit   *audit.Dispatcher

	expiredHandler func()

	refreshGate refreshGate
}

// Session exposes the session store for permission checks and direct
// inspection.
func (c *Client) Session() *session.Store {
	return c.store
}

// Metrics exposes the client's metric counters.
func (c *Client) Metrics() *Metrics {
	return c.metrics
}

// MetricsSnapshot copies the current counter values. Exporters read
// from this.
func (c *Client) MetricsSnapshot() MetricsSnapshot {
	return c.metrics.Snapshot()
}

// AuditDropped reports how many audit events the dispatcher dropped
// under backpressure.
func (c *Client) AuditDropped() uint64 {
	if c.audit == nil {
		return 0
	}
	return c.audit.Dropped()
}

// Close flushes and stops the audit dispatcher. The Client must not be
// used afterwards.
func (c *Client) Close() {
	if c.audit != nil {
		c.audit.Close()
	}
}

// do runs one request through the pipeline and maps the outcome onto
// the package error model.
func (c *Client) do(ctx context.Context, desc pipeline.Descriptor) ([]byte, error) {
	if c == nil || c.http == nil {
		return nil, ErrClientNotReady
	}

	start := time.Now()
	res := pipeline.Run(ctx, desc, pipeline.Deps{
		BaseURL:   c.config.BaseURL,
		HTTP:      c.http,
		Tokens:    c.store,
		UserAgent: c.config.UserAgent,
		RequestID: requestIDFromContext,
		Refresh:   c.refreshForPipeline,
	})
	c.metrics.Observe(MetricRequestLatency, time.Since(start))

	switch res.Failure {
	case pipeline.FailureNone:
		c.metrics.Inc(MetricRequestSuccess)
		return res.Body, nil

	case pipeline.FailureCanceled:
		c.metrics.Inc(MetricRequestCanceled)
		return nil, res.Err

	case pipeline.FailureHTTP:
		apiErr := newAPIError(res.Status, res.Body)
		if res.Status == http.StatusUnauthorized {
			c.metrics.Inc(MetricRequestUnauthorized)
		} else {
			c.metrics.Inc(MetricRequestFailure)
		}
		c.logger.Debug("request failed",
			zap.String("method", desc.Method),
			zap.String("path", desc.Path),
			zap.Int("status", res.Status),
		)
		// The store check guards the one case where a failed refresh
		// leaves the session intact: a follower whose context was
		// cancelled while the leader's refresh was still in flight.
		if res.RefreshAttempted && !res.RefreshSucceeded && !c.store.Authenticated() {
			return nil, fmt.Errorf("%w: %w", ErrSessionExpired, apiErr)
		}
		return nil, apiErr

	default:
		c.metrics.Inc(MetricRequestFailure)
		return nil, res.Err
	}
}

func (c *Client) get(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	return c.do(ctx, pipeline.Descriptor{Method: http.MethodGet, Path: path, Query: query})
}

func (c *Client) post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, pipeline.Descriptor{Method: http.MethodPost, Path: path, Body: body})
}

func (c *Client) patch(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, pipeline.Descriptor{Method: http.MethodPatch, Path: path, Body: body})
}

func (c *Client) put(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, pipeline.Descriptor{Method: http.MethodPut, Path: path, Body: body})
}

func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, pipeline.Descriptor{Method: http.MethodDelete, Path: path})
	return err
}

// getJSON runs a GET and decodes the response into T.
func getJSON[T any](ctx context.Context, c *Client, path string, query map[string]string) (T, error) {
	var out T
	body, err := c.get(ctx, path, query)
	if err != nil {
		return out, err
	}
	return decodeInto[T](body)
}

// getList runs a GET against a list endpoint and unwraps either a bare
// JSON array or a paginated {"results": [...]} envelope.
func getList[T any](ctx context.Context, c *Client, path string, query map[string]string) ([]T, error) {
	body, err := c.get(ctx, path, query)
	if err != nil {
		return nil, err
	}
	return decodeList[T](body)
}

// postJSON runs a POST and decodes the response into T.
func postJSON[T any](ctx context.Context, c *Client, path string, payload any) (T, error) {
	var out T
	body, err := c.post(ctx, path, payload)
	if err != nil {
		return out, err
	}
	return decodeInto[T](body)
}

// patchJSON runs a PATCH and decodes the response into T.
func patchJSON[T any](ctx context.Context, c *Client, path string, payload any) (T, error) {
	var out T
	body, err := c.patch(ctx, path, payload)
	if err != nil {
		return out, err
	}
	return decodeInto[T](body)
}

func decodeInto[T any](body []byte) (T, error) {
	var out T
	if len(body) == 0 {
		// 204 or an intentionally empty body; the zero value stands in.
		return out, nil
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}

func decodeList[T any](body []byte) ([]T, error) {
	if len(body) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(body, &items); err == nil {
		return items, nil
	}

	var envelope struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}
	if envelope.Results == nil {
		return []T{}, nil
	}
	return envelope.Results, nil
}

// detailPath appends an identifier segment to a collection endpoint.
func detailPath(base, id string) string {
	return base + id + "/"
}
