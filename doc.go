// Package pharmaclient is a typed Go client for the RxDesk pharmacy
// operations backend.
//
// The package centers on three pieces:
//
//   - a session store (package session) that holds the signed-in user,
//     the JWT token pair, and the flattened permission set, and persists
//     a snapshot through a pluggable adapter;
//   - a request pipeline that attaches the access token to every call,
//     performs exactly one token refresh when the backend answers 401,
//     and surfaces session expiry to the caller instead of hiding it;
//   - an authorization gate (package authz) that evaluates permission
//     and role criteria against the session for rendering and routing
//     decisions.
//
// Construct a client with the builder:
//
//	client, err := pharmaclient.New().
//		WithBaseURL("https://rx.example.com").
//		WithSessionAdapter(session.NewFileAdapter(path)).
//		Build()
//
// # Refresh semantics
//
// When a request fails with 401 and a refresh token is held, the client
// posts the refresh token once and stores the new access token on
// success. The original call still returns ErrUnauthorized; the caller
// decides whether to repeat it. If the refresh itself is rejected, the
// session is cleared and the error unwraps to ErrSessionExpired.
// Concurrent 401s share a single refresh round trip.
//
// All blocking operations take a context.Context and honor its
// cancellation.
package pharmaclient
