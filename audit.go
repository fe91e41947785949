package pharmaclient

import (
	"io"

	internalaudit "github.com/rxdeskhq/pharmaclient/internal/audit"
)

// AuditEvent is a structured session lifecycle record emitted by the
// client: logins, logouts, refresh outcomes, and session expiry.
type AuditEvent = internalaudit.Event

// AuditSink receives [AuditEvent] values from the client's audit
// dispatcher. Implementations must be safe for concurrent use.
type AuditSink = internalaudit.Sink

// NoOpSink is an [AuditSink] that silently discards all events.
type NoOpSink = internalaudit.NoOpSink

// ChannelSink is a buffered channel-based [AuditSink].
type ChannelSink = internalaudit.ChannelSink

// JSONWriterSink is an [AuditSink] that writes JSON-encoded events to
// an io.Writer, one object per line.
type JSONWriterSink = internalaudit.JSONWriterSink

// Audit event types carried in [AuditEvent].EventType.
const (
	AuditLoginSuccess   = internalaudit.EventLoginSuccess
	AuditLoginFailure   = internalaudit.EventLoginFailure
	AuditLogout         = internalaudit.EventLogout
	AuditRefreshSuccess = internalaudit.EventRefreshSuccess
	AuditRefreshFailure = internalaudit.EventRefreshFailure
	AuditSessionExpired = internalaudit.EventSessionExpired
)

// NewChannelSink creates a [ChannelSink] with the given buffer size.
func NewChannelSink(buffer int) *ChannelSink {
	return internalaudit.NewChannelSink(buffer)
}

// NewJSONWriterSink creates a [JSONWriterSink] writing to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return internalaudit.NewJSONWriterSink(w)
}
