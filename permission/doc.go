// Package permission provides the permission-code set used by the session
// store and the authz gate.
//
// Permission codes are opaque strings granted by the server (for example
// "view_user" or "manage_sales"). The API represents grants as lists; this
// package normalizes them into a set keyed by code so membership checks are
// O(1) and duplicate accumulation is impossible.
//
// # Architecture boundaries
//
// This package owns set construction and membership only. It does NOT apply
// the administrative bypass rule — that depends on the user record and belongs
// to the session store.
//
// # What this package must NOT do
//
//   - Import session, authz, or pharmaclient (no upward imports).
//   - Perform network I/O or read persisted state.
package permission
