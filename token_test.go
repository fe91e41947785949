package pharmaclient

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rxdeskhq/pharmaclient/session"
)

func signedToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestInspectTokenReadsClaimsWithoutVerification(t *testing.T) {
	issued := time.Now().Add(-time.Minute).Truncate(time.Second)
	expires := time.Now().Add(time.Hour).Truncate(time.Second)

	token := signedToken(t, jwt.RegisteredClaims{
		Subject:   "u-1",
		IssuedAt:  jwt.NewNumericDate(issued),
		ExpiresAt: jwt.NewNumericDate(expires),
	})

	claims, err := InspectToken(token)
	if err != nil {
		t.Fatalf("InspectToken failed: %v", err)
	}
	if claims.Subject != "u-1" {
		t.Fatalf("subject = %q", claims.Subject)
	}
	if !claims.IssuedAt.Equal(issued) || !claims.ExpiresAt.Equal(expires) {
		t.Fatalf("timestamps = %v / %v", claims.IssuedAt, claims.ExpiresAt)
	}
}

func TestInspectTokenAcceptsExpiredTokens(t *testing.T) {
	token := signedToken(t, jwt.RegisteredClaims{
		Subject:   "u-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	// Inspection reads claims; expiry is the backend's call, not ours.
	if _, err := InspectToken(token); err != nil {
		t.Fatalf("InspectToken rejected an expired token: %v", err)
	}
}

func TestInspectTokenGarbage(t *testing.T) {
	if _, err := InspectToken("not-a-jwt"); err == nil {
		t.Fatal("expected an error for a malformed token")
	}
}

func TestAccessTokenExpiringWithin(t *testing.T) {
	client, _ := newTestClient(t, http.NewServeMux())

	soon := signedToken(t, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * time.Second)),
	})
	client.Session().SetTokens(&session.Tokens{Access: soon, Refresh: "refresh-0"})

	if !client.AccessTokenExpiringWithin(time.Minute) {
		t.Fatal("token expiring in 30s must report expiring within 1m")
	}
	if client.AccessTokenExpiringWithin(time.Second) {
		t.Fatal("token expiring in 30s must not report expiring within 1s")
	}
}

func TestAccessTokenExpiryWithoutSession(t *testing.T) {
	client, _ := newTestClient(t, http.NewServeMux())
	client.Session().Logout()

	if _, err := client.AccessTokenExpiry(); err == nil {
		t.Fatal("expected an error with no stored access token")
	}
	// Unreadable state errs toward refreshing.
	if !client.AccessTokenExpiringWithin(time.Minute) {
		t.Fatal("missing token must count as expiring")
	}
}
