// Package pipeline executes HTTP requests against the pharmacy API: URL and
// query construction, JSON body encoding, bearer attachment, and the 401
// refresh hook. It is the only code in the module that performs network I/O.
//
// The package is dependency-injected in the style of a flow runner: callers
// pass a [Deps] value wiring in the token source and the refresh closure, and
// receive a [Result] classified by [FailureKind] for root-level error mapping.
//
// # What this package must NOT do
//
//   - Retry a failed call. A recovered 401 only corrects the token for the
//     caller's next call; transient transport failures propagate untouched.
//   - Mutate session state. Token updates happen in the refresh closure the
//     root client supplies, never here.
//   - Recurse: the refresh request is issued by [RunRefresh] directly and
//     bypasses the 401 handling of [Run].
package pipeline
