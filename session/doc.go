// Package session provides the client-side authentication state: the current
// user, the access/refresh token pair, the derived permission set, and the
// persistence that carries all of it across process restarts.
//
// # Snapshot persistence
//
// State is serialized as a versioned JSON snapshot and written through an
// injected [Adapter] (file, memory, or Redis). The codec is append-only across
// schema versions: new versions add fields but never reinterpret old ones, and
// the decoder accepts every prior version.
//
// # Architecture boundaries
//
// This package owns the [Store] and the [User]/[Tokens] models. It does NOT
// issue network calls, parse JWTs, or make route-level authorization
// decisions — those responsibilities belong to the Client and to authz.
//
// # What this package must NOT do
//
//   - Import pharmaclient or authz (no upward imports).
//   - Fail a mutation: every Store operation is total over its own state.
//     Persistence errors are logged and absorbed, never surfaced to callers.
package session
