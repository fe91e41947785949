package pharmaclient

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the claims the client reads out of a JWT. Tokens are
// decoded without signature verification: the backend is the verifier,
// the client only needs the timestamps for proactive refresh.
type TokenClaims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// InspectToken decodes a JWT's registered claims without verifying its
// signature.
func InspectToken(token string) (TokenClaims, error) {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())

	var claims jwt.RegisteredClaims
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return TokenClaims{}, err
	}

	out := TokenClaims{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// AccessTokenExpiry reports when the stored access token expires. The
// zero time means the token carries no expiry claim.
func (c *Client) AccessTokenExpiry() (time.Time, error) {
	access, ok := c.store.AccessToken()
	if !ok {
		return time.Time{}, ErrUnauthorized
	}
	claims, err := InspectToken(access)
	if err != nil {
		return time.Time{}, err
	}
	return claims.ExpiresAt, nil
}

// AccessTokenExpiringWithin reports whether the stored access token
// expires inside the window. Missing token or unreadable claims count
// as expiring, which errs on the side of refreshing.
func (c *Client) AccessTokenExpiringWithin(window time.Duration) bool {
	expiry, err := c.AccessTokenExpiry()
	if err != nil || expiry.IsZero() {
		return true
	}
	return time.Until(expiry) <= window
}
