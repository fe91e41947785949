package pharmaclient

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/rxdeskhq/pharmaclient/internal/audit"
	"github.com/rxdeskhq/pharmaclient/session"
)

// Login authenticates with the backend, loads the user profile, and
// populates the session store. The returned user is the full backend
// record.
func (c *Client) Login(ctx context.Context, payload LoginPayload) (User, error) {
	tokens, err := postJSON[AuthTokens](ctx, c, endpointAuthLogin, payload)
	if err != nil {
		c.metrics.Inc(MetricLoginFailure)
		c.emitAudit(ctx, audit.Event{
			EventType: audit.EventLoginFailure,
			Path:      endpointAuthLogin,
			Error:     err.Error(),
		})
		return User{}, err
	}

	// The profile fetch needs the access token on the wire before
	// store.Login runs, so stage the token pair first.
	c.store.SetTokens(&session.Tokens{Access: tokens.Access, Refresh: tokens.Refresh})

	user, err := getJSON[User](ctx, c, endpointAuthMe, nil)
	if err != nil {
		c.store.Logout()
		c.metrics.Inc(MetricLoginFailure)
		c.emitAudit(ctx, audit.Event{
			EventType: audit.EventLoginFailure,
			Path:      endpointAuthMe,
			Error:     err.Error(),
		})
		return User{}, fmt.Errorf("load profile after login: %w", err)
	}

	c.store.Login(sessionUser(user), session.Tokens{Access: tokens.Access, Refresh: tokens.Refresh})

	c.metrics.Inc(MetricLoginSuccess)
	c.emitAudit(ctx, audit.Event{
		EventType: audit.EventLoginSuccess,
		UserID:    user.ID,
		Success:   true,
	})
	c.logger.Info("logged in", zap.String("user_id", user.ID), zap.String("username", user.Username))

	return user, nil
}

// Logout tells the backend to discard the session, then clears the
// local session either way. The backend call failing must never leave
// a signed-out user with live local tokens.
func (c *Client) Logout(ctx context.Context) error {
	userID := ""
	if u, ok := c.store.User(); ok {
		userID = u.ID
	}

	_, err := c.post(ctx, endpointAuthLogout, nil)

	c.store.Logout()
	c.metrics.Inc(MetricLogout)
	c.emitAudit(ctx, audit.Event{
		EventType: audit.EventLogout,
		UserID:    userID,
		Success:   err == nil,
	})
	c.logger.Info("logged out", zap.String("user_id", userID))

	return err
}

// Register creates a new account. It does not sign the account in.
func (c *Client) Register(ctx context.Context, payload RegisterPayload) (User, error) {
	return postJSON[User](ctx, c, endpointAuthRegister, payload)
}

// VerifyToken asks the backend whether a JWT is currently valid.
func (c *Client) VerifyToken(ctx context.Context, token string) error {
	_, err := c.post(ctx, endpointAuthVerify, map[string]string{"token": token})
	return err
}

// CurrentUser fetches the signed-in user's profile and refreshes the
// stored session identity from it.
func (c *Client) CurrentUser(ctx context.Context) (User, error) {
	user, err := getJSON[User](ctx, c, endpointAuthMe, nil)
	if err != nil {
		return User{}, err
	}

	if c.store.Authenticated() {
		su := sessionUser(user)
		c.store.SetUser(&su)
	}
	return user, nil
}

// UpdateProfile partially updates the signed-in user's profile and
// refreshes the stored session identity.
func (c *Client) UpdateProfile(ctx context.Context, payload UpdateProfilePayload) (User, error) {
	user, err := patchJSON[User](ctx, c, endpointAuthMe, payload)
	if err != nil {
		return User{}, err
	}

	if c.store.Authenticated() {
		su := sessionUser(user)
		c.store.SetUser(&su)
	}
	return user, nil
}

// ChangePassword changes the signed-in user's password.
func (c *Client) ChangePassword(ctx context.Context, payload ChangePasswordPayload) error {
	_, err := c.post(ctx, endpointAuthSetPassword, payload)
	return err
}

// sessionUser flattens a backend user record into the session identity.
// Permission codenames come from the user record when the backend sends
// them, otherwise from the resolved role detail.
func sessionUser(u User) session.User {
	roleName := ""
	if u.RoleName != nil {
		roleName = *u.RoleName
	}

	perms := u.Permissions
	if len(perms) == 0 && u.RoleDetail != nil {
		perms = make([]string, 0, len(u.RoleDetail.PermissionsDetail))
		for _, p := range u.RoleDetail.PermissionsDetail {
			perms = append(perms, p.Codename)
		}
	}

	return session.User{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		RoleName:    roleName,
		IsStaff:     u.IsStaff,
		Permissions: perms,
	}
}
