// Package audit provides the session lifecycle event model and the
// asynchronous dispatcher that forwards events to a caller-supplied sink.
//
// Events cover login and logout, silent refresh outcomes, and forced session
// expiry — the signals a hosting application needs to drive navigation and
// operator-facing notices without the client performing either itself.
package audit
