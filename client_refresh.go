package pharmaclient

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rxdeskhq/pharmaclient/internal/audit"
	"github.com/rxdeskhq/pharmaclient/internal/pipeline"
)

// refreshGate collapses concurrent refresh attempts into one backend
// round trip. The first caller becomes the leader and performs the
// refresh; everyone arriving while it is in flight waits for its
// outcome instead of spending another refresh token use.
type refreshGate struct {
	mu     sync.Mutex
	flight *refreshFlight
}

type refreshFlight struct {
	done chan struct{}
	err  error
}

// Refresh exchanges the stored refresh token for a new access token.
// Requests normally trigger this automatically on 401; exposing it lets
// long-lived processes refresh ahead of expiry.
func (c *Client) Refresh(ctx context.Context) error {
	if c == nil || c.http == nil {
		return ErrClientNotReady
	}
	return c.refreshForPipeline(ctx)
}

func (c *Client) refreshForPipeline(ctx context.Context) error {
	c.refreshGate.mu.Lock()
	if f := c.refreshGate.flight; f != nil {
		c.refreshGate.mu.Unlock()
		c.metrics.Inc(MetricRefreshDeduplicated)
		select {
		case <-f.done:
			return f.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	f := &refreshFlight{done: make(chan struct{})}
	c.refreshGate.flight = f
	c.refreshGate.mu.Unlock()

	err := c.runRefresh(ctx)

	f.err = err
	close(f.done)

	c.refreshGate.mu.Lock()
	c.refreshGate.flight = nil
	c.refreshGate.mu.Unlock()

	return err
}

func (c *Client) runRefresh(ctx context.Context) error {
	res := pipeline.RunRefresh(ctx, pipeline.RefreshDeps{
		BaseURL:      c.config.BaseURL,
		Path:         c.config.RefreshPath,
		HTTP:         c.http,
		UserAgent:    c.config.UserAgent,
		RefreshToken: c.store.RefreshToken,
		UpdateAccess: c.store.UpdateAccessToken,
	})

	switch res.Failure {
	case pipeline.RefreshFailureNone:
		c.metrics.Inc(MetricRefreshSuccess)
		c.emitAudit(ctx, audit.Event{
			EventType: audit.EventRefreshSuccess,
			Success:   true,
			Status:    res.Status,
		})
		c.logger.Debug("access token refreshed")
		return nil

	case pipeline.RefreshFailureNoToken:
		return ErrNoRefreshToken

	default:
		// Rejection, garbage, or a dead network all end the session.
		// A client that cannot refresh has no way to keep its word on
		// the token pair, so the user goes back through login.
		c.metrics.Inc(MetricRefreshFailure)
		c.expireSession(ctx, res.Err)
		return fmt.Errorf("%w: %w", ErrRefreshFailed, res.Err)
	}
}

// expireSession clears the session after a failed refresh and runs
// the registered handler.
func (c *Client) expireSession(ctx context.Context, cause error) {
	userID := ""
	if u, ok := c.store.User(); ok {
		userID = u.ID
	}

	c.store.Logout()
	c.metrics.Inc(MetricSessionExpired)

	errText := ""
	if cause != nil {
		errText = cause.Error()
	}
	c.emitAudit(ctx, audit.Event{
		EventType: audit.EventRefreshFailure,
		UserID:    userID,
		Error:     errText,
	})
	c.emitAudit(ctx, audit.Event{
		EventType: audit.EventSessionExpired,
		UserID:    userID,
	})

	c.logger.Warn("session expired", zap.String("user_id", userID))

	if c.expiredHandler != nil {
		c.expiredHandler()
	}
}

func (c *Client) emitAudit(ctx context.Context, event audit.Event) {
	if c.audit == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	c.audit.Emit(ctx, event)
}
