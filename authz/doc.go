// Package authz turns session state into rendering and routing
// decisions.
//
// RenderPolicy answers "should this element be shown", mirroring how
// the admin dashboard hides buttons and sections the user cannot use.
// RouteGuard answers "may this navigation proceed" and says why not,
// so callers can distinguish a login redirect from an access-denied
// page. Middleware adapts a RouteGuard to net/http for local tooling
// that proxies or serves dashboard data.
//
// # Architecture boundaries
//
// This package only reads the session. It never triggers requests,
// refreshes, or logout; those belong to the client.
package authz
