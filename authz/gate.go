package authz

import "github.com/rxdeskhq/pharmaclient/session"

// Session is the slice of session state authorization decisions read.
// *session.Store satisfies it.
type Session interface {
	Authenticated() bool
	User() (session.User, bool)
	HasPermission(code string) bool
	HasAnyPermission(codes []string) bool
	HasAllPermissions(codes []string) bool
}

// RenderPolicy decides whether a UI element or report section should be
// visible. Exactly one criterion applies, in priority order:
// Permission, then AnyPermissions, then AllPermissions. A policy with
// no criteria set is visible to everyone.
type RenderPolicy struct {
	Permission     string
	AnyPermissions []string
	AllPermissions []string
}

// Visible evaluates the policy against the session.
func (p RenderPolicy) Visible(s Session) bool {
	if s == nil {
		return false
	}

	switch {
	case p.Permission != "":
		return s.HasPermission(p.Permission)
	case len(p.AnyPermissions) > 0:
		return s.HasAnyPermission(p.AnyPermissions)
	case len(p.AllPermissions) > 0:
		return s.HasAllPermissions(p.AllPermissions)
	default:
		return true
	}
}
