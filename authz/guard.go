package authz

import "slices"

// DenyReason says which criterion a guard decision failed on.
type DenyReason int

const (
	// DenyNone means the navigation is allowed.
	DenyNone DenyReason = iota
	// DenyUnauthenticated means no signed-in session exists. Callers
	// route to login.
	DenyUnauthenticated
	// DenyRole means the session's role is not in the allowed set.
	DenyRole
	// DenyPermission means the permission policy failed.
	DenyPermission
)

func (r DenyReason) String() string {
	switch r {
	case DenyNone:
		return "allowed"
	case DenyUnauthenticated:
		return "unauthenticated"
	case DenyRole:
		return "role not allowed"
	case DenyPermission:
		return "missing permission"
	default:
		return "unknown"
	}
}

// Decision is the outcome of a guard evaluation.
type Decision struct {
	Allowed bool
	Reason  DenyReason
}

// RouteGuard gates a navigation target. Every configured criterion
// must pass independently, unlike RenderPolicy's first-criterion
// precedence; unset criteria are skipped. The zero guard allows
// everything.
type RouteGuard struct {
	// RequireAuth denies unauthenticated sessions.
	RequireAuth bool
	// AllowedRoles denies sessions whose role name is empty or not
	// listed. Role names are matched exactly; the admin permission
	// bypass does not apply here.
	AllowedRoles []string
	// Permission, when set, must be held.
	Permission string
	// Permissions, when set, must be held per RequireAll: all of them,
	// or at least one.
	Permissions []string
	// RequireAll switches Permissions from any-of to all-of.
	RequireAll bool
}

// RequireAuth is the guard most dashboard routes use.
func RequireAuth() RouteGuard {
	return RouteGuard{RequireAuth: true}
}

// RequireRoles gates a route to the named roles (and implies
// authentication).
func RequireRoles(roles ...string) RouteGuard {
	return RouteGuard{RequireAuth: true, AllowedRoles: roles}
}

// Check evaluates the guard against the session. Criteria are checked
// in order and the first failure wins.
func (g RouteGuard) Check(s Session) Decision {
	if g.RequireAuth {
		if s == nil || !s.Authenticated() {
			return Decision{Reason: DenyUnauthenticated}
		}
	}

	if len(g.AllowedRoles) > 0 {
		if s == nil {
			return Decision{Reason: DenyUnauthenticated}
		}
		user, ok := s.User()
		if !ok || user.RoleName == "" || !slices.Contains(g.AllowedRoles, user.RoleName) {
			return Decision{Reason: DenyRole}
		}
	}

	if g.Permission != "" {
		if s == nil || !s.HasPermission(g.Permission) {
			return Decision{Reason: DenyPermission}
		}
	}

	if len(g.Permissions) > 0 {
		if s == nil {
			return Decision{Reason: DenyPermission}
		}
		if g.RequireAll {
			if !s.HasAllPermissions(g.Permissions) {
				return Decision{Reason: DenyPermission}
			}
		} else if !s.HasAnyPermission(g.Permissions) {
			return Decision{Reason: DenyPermission}
		}
	}

	return Decision{Allowed: true, Reason: DenyNone}
}
