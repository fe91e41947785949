package authz

import (
	"context"
	"net/http"
)

type decisionContextKey struct{}

// DecisionFromContext returns the guard decision recorded by
// Middleware for the current request.
func DecisionFromContext(ctx context.Context) (Decision, bool) {
	d, ok := ctx.Value(decisionContextKey{}).(Decision)
	return d, ok
}

// DenyObserver is notified of every request a guard turns away. Callers
// bridge it to their audit trail; the middleware itself stays silent.
type DenyObserver func(r *http.Request, d Decision)

// Middleware enforces a RouteGuard on an http.Handler. Unauthenticated
// sessions get 401, everything else that fails gets 403. The decision
// is placed on the request context for handlers that want the reason.
func Middleware(guard RouteGuard, s Session, observers ...DenyObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := guard.Check(s)
			if !d.Allowed {
				for _, observe := range observers {
					observe(r, d)
				}
				if d.Reason == DenyUnauthenticated {
					http.Error(w, "unauthorized", http.StatusUnauthorized)
					return
				}
				http.Error(w, d.Reason.String(), http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), decisionContextKey{}, d)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
