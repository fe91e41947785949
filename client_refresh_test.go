package pharmaclient

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rxdeskhq/pharmaclient/session"
)

func TestConcurrentUnauthorizedCallsShareOneRefresh(t *testing.T) {
	var refreshCalls atomic.Int64
	release := make(chan struct{})

	mux := http.NewServeMux()
	mux.HandleFunc(endpointCategories, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer access-1" {
			writeJSON(t, w, http.StatusOK, []Category{})
			return
		}
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "token expired"})
	})
	mux.HandleFunc(endpointAuthRefresh, func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		// Hold the leader until every request is stacked behind the gate.
		<-release
		writeJSON(t, w, http.StatusOK, map[string]string{"access": "access-1"})
	})

	client, _ := newTestClient(t, mux)

	const n = 8
	var wg sync.WaitGroup
	wg.Add(n)

	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := client.ListCategories(t.Context(), ListParams{})
			errs <- err
		}()
	}

	// Give the goroutines time to hit the 401 and pile onto the gate,
	// then let the single refresh finish.
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errs)

	for err := range errs {
		if err == nil {
			continue
		}
		// Requests that 401ed before the refresh landed report the 401;
		// none may report a failed refresh.
		if !errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrSessionExpired) {
			t.Fatalf("unexpected request error: %v", err)
		}
	}

	if got := refreshCalls.Load(); got != 1 {
		t.Fatalf("refresh endpoint called %d times, want 1", got)
	}
	if client.Metrics().Value(MetricRefreshSuccess) != 1 {
		t.Fatalf("MetricRefreshSuccess = %d, want 1", client.Metrics().Value(MetricRefreshSuccess))
	}
	if client.Metrics().Value(MetricRefreshDeduplicated) == 0 {
		t.Fatal("expected at least one deduplicated refresh caller")
	}
	if access, _ := client.Session().AccessToken(); access != "access-1" {
		t.Fatalf("access token = %q, want access-1", access)
	}
}

func TestExplicitRefreshUpdatesAccessToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(endpointAuthRefresh, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Refresh string `json:"refresh"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode refresh body: %v", err)
		}
		if body.Refresh != "refresh-0" {
			t.Errorf("refresh posted %q, want refresh-0", body.Refresh)
		}
		writeJSON(t, w, http.StatusOK, map[string]string{"access": "access-next"})
	})

	client, _ := newTestClient(t, mux)

	if err := client.Refresh(t.Context()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	if access, _ := client.Session().AccessToken(); access != "access-next" {
		t.Fatalf("access token = %q, want access-next", access)
	}
	// The refresh token is single-purpose here and must not change.
	if refresh, _ := client.Session().RefreshToken(); refresh != "refresh-0" {
		t.Fatalf("refresh token = %q, want refresh-0", refresh)
	}
}

func TestRefreshWithoutTokenReturnsSentinel(t *testing.T) {
	client, _ := newTestClient(t, http.NewServeMux())
	client.Session().Logout()

	err := client.Refresh(t.Context())
	if !errors.Is(err, ErrNoRefreshToken) {
		t.Fatalf("expected ErrNoRefreshToken, got %v", err)
	}
}

func TestRefreshTransportFailureClearsSession(t *testing.T) {
	// A server that is already gone: every call fails at the dial.
	srv := httptest.NewServer(http.NewServeMux())
	srv.Close()

	var handlerRuns atomic.Int64
	client, err := New().
		WithBaseURL(srv.URL).
		WithMetricsEnabled(true).
		WithSessionExpiredHandler(func() { handlerRuns.Add(1) }).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(client.Close)

	client.Session().Login(
		session.User{ID: "u-1", Username: "alice"},
		session.Tokens{Access: "access-0", Refresh: "refresh-0"},
	)

	err = client.Refresh(t.Context())
	if !errors.Is(err, ErrRefreshFailed) {
		t.Fatalf("expected ErrRefreshFailed, got %v", err)
	}

	// Any failed refresh ends the session, network problems included:
	// the only road back is a fresh login.
	if client.Session().Authenticated() {
		t.Fatal("failed refresh must clear the session")
	}
	if got := handlerRuns.Load(); got != 1 {
		t.Fatalf("expired handler ran %d times, want 1", got)
	}
	if client.Metrics().Value(MetricSessionExpired) != 1 {
		t.Fatalf("MetricSessionExpired = %d, want 1", client.Metrics().Value(MetricSessionExpired))
	}
}

func TestUnauthorizedWithUnreachableRefreshExpiresSession(t *testing.T) {
	// The data endpoint answers 401; the refresh endpoint drops the
	// connection without a response.
	mux := http.NewServeMux()
	mux.HandleFunc(endpointAuthMe, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "token expired"})
	})
	mux.HandleFunc(endpointAuthRefresh, func(w http.ResponseWriter, r *http.Request) {
		hj, ok := w.(http.Hijacker)
		if !ok {
			t.Fatal("response writer does not support hijacking")
		}
		conn, _, err := hj.Hijack()
		if err != nil {
			t.Fatalf("hijack: %v", err)
		}
		conn.Close()
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client, err := New().
		WithBaseURL(srv.URL).
		WithHTTPClient(srv.Client()).
		WithMetricsEnabled(true).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(client.Close)

	client.Session().Login(
		session.User{ID: "u-1", Username: "alice"},
		session.Tokens{Access: "stale", Refresh: "refresh-0"},
	)

	_, err = client.CurrentUser(t.Context())
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if client.Session().Authenticated() {
		t.Fatal("session must be cleared when the refresh endpoint is unreachable")
	}
}

func TestRefreshRejectionClearsSessionAndRunsHandler(t *testing.T) {
	var handlerRuns atomic.Int64

	mux := http.NewServeMux()
	mux.HandleFunc(endpointAuthRefresh, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "refresh token blacklisted"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client, err := New().
		WithBaseURL(srv.URL).
		WithHTTPClient(srv.Client()).
		WithMetricsEnabled(true).
		WithSessionExpiredHandler(func() { handlerRuns.Add(1) }).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(client.Close)

	client.Session().Login(
		session.User{ID: "u-1", Username: "alice"},
		session.Tokens{Access: "access-0", Refresh: "refresh-0"},
	)

	err = client.Refresh(t.Context())
	if !errors.Is(err, ErrRefreshFailed) {
		t.Fatalf("expected ErrRefreshFailed, got %v", err)
	}

	if client.Session().Authenticated() {
		t.Fatal("rejected refresh must clear the session")
	}
	if got := handlerRuns.Load(); got != 1 {
		t.Fatalf("expired handler ran %d times, want 1", got)
	}
	if client.Metrics().Value(MetricSessionExpired) != 1 {
		t.Fatalf("MetricSessionExpired = %d, want 1", client.Metrics().Value(MetricSessionExpired))
	}
}
