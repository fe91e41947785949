package pipeline

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

type staticTokens struct {
	access  string
	refresh string
}

func (s staticTokens) AccessToken() (string, bool)  { return s.access, s.access != "" }
func (s staticTokens) RefreshToken() (string, bool) { return s.refresh, s.refresh != "" }

func runDeps(server *httptest.Server, tokens TokenSource) Deps {
	return Deps{
		BaseURL: server.URL,
		HTTP:    server.Client(),
		Tokens:  tokens,
	}
}

func TestRunAttachesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotReqID, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	deps := runDeps(server, staticTokens{access: "tok-1", refresh: "r"})
	deps.RequestID = func(context.Context) string { return "req-42" }

	res := Run(t.Context(), Descriptor{Method: http.MethodGet, Path: "/api/medicines/"}, deps)
	if res.Failure != FailureNone {
		t.Fatalf("failure = %v, err = %v", res.Failure, res.Err)
	}
	if gotAuth != "Bearer tok-1" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if gotReqID != "req-42" {
		t.Fatalf("X-Request-ID = %q", gotReqID)
	}
	if gotContentType != "application/json" {
		t.Fatalf("Content-Type = %q", gotContentType)
	}
}

func TestRunUnauthenticatedWhenNoToken(t *testing.T) {
	var gotAuth string
	var sawHeader bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, sawHeader = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	res := Run(t.Context(), Descriptor{Method: http.MethodGet, Path: "/api/medicines/"}, runDeps(server, staticTokens{}))
	if res.Failure != FailureNone {
		t.Fatalf("failure = %v", res.Failure)
	}
	if sawHeader || gotAuth != "" {
		t.Fatalf("unauthenticated call carried Authorization %q", gotAuth)
	}
}

func TestRunSkipsEmptyQueryValues(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	desc := Descriptor{
		Method: http.MethodGet,
		Path:   "/api/medicines/",
		Query:  map[string]string{"search": "", "ordering": "name"},
	}
	res := Run(t.Context(), desc, runDeps(server, staticTokens{}))
	if res.Failure != FailureNone {
		t.Fatalf("failure = %v", res.Failure)
	}
	if len(gotQuery) != 1 || gotQuery.Get("ordering") != "name" {
		t.Fatalf("query = %v, want only ordering=name", gotQuery)
	}
}

func TestRunNoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	res := Run(t.Context(), Descriptor{Method: http.MethodDelete, Path: "/api/categories/1/"}, runDeps(server, staticTokens{access: "t"}))
	if res.Failure != FailureNone {
		t.Fatalf("failure = %v, err = %v", res.Failure, res.Err)
	}
	if res.Status != http.StatusNoContent || len(res.Body) != 0 {
		t.Fatalf("status = %d, body = %q", res.Status, res.Body)
	}
}

func TestRunUnauthorizedInvokesRefreshOnce(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"token expired"}`))
	}))
	defer server.Close()

	calls := 0
	deps := runDeps(server, staticTokens{access: "stale", refresh: "r-1"})
	deps.Refresh = func(context.Context) error {
		calls++
		return nil
	}

	res := Run(t.Context(), Descriptor{Method: http.MethodGet, Path: "/api/users/"}, deps)
	if res.Failure != FailureHTTP || res.Status != http.StatusUnauthorized {
		t.Fatalf("failure = %v, status = %d", res.Failure, res.Status)
	}
	if calls != 1 {
		t.Fatalf("refresh calls = %d, want exactly 1", calls)
	}
	if !res.RefreshAttempted || !res.RefreshSucceeded {
		t.Fatalf("refresh flags = %+v", res)
	}
	// The failure still raises: the original call is not retried.
	if string(res.Body) != `{"detail":"token expired"}` {
		t.Fatalf("body = %q", res.Body)
	}
}

func TestRunUnauthorizedWithoutRefreshToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	deps := runDeps(server, staticTokens{access: "stale"})
	deps.Refresh = func(context.Context) error {
		t.Fatal("refresh must not run without a refresh token")
		return nil
	}

	res := Run(t.Context(), Descriptor{Method: http.MethodGet, Path: "/api/users/"}, deps)
	if res.RefreshAttempted {
		t.Fatal("refresh must not be attempted")
	}
}

func TestRunUnauthorizedRefreshFailureReported(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	deps := runDeps(server, staticTokens{access: "stale", refresh: "r-1"})
	deps.Refresh = func(context.Context) error { return errors.New("refresh rejected") }

	res := Run(t.Context(), Descriptor{Method: http.MethodGet, Path: "/api/users/"}, deps)
	if !res.RefreshAttempted || res.RefreshSucceeded {
		t.Fatalf("refresh flags = %+v", res)
	}
}

func TestRunCanceledSuppressesRefresh(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	deps := runDeps(server, staticTokens{access: "stale", refresh: "r-1"})
	deps.Refresh = func(context.Context) error {
		t.Fatal("refresh must not run for a cancelled call")
		return nil
	}

	res := Run(ctx, Descriptor{Method: http.MethodGet, Path: "/api/users/"}, deps)
	if res.Failure != FailureCanceled {
		t.Fatalf("failure = %v, want FailureCanceled", res.Failure)
	}
	if !errors.Is(res.Err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", res.Err)
	}
}

func TestRunTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	server.Close() // connection refused from here on

	deps := Deps{BaseURL: server.URL, HTTP: http.DefaultClient, Tokens: staticTokens{}}
	res := Run(t.Context(), Descriptor{Method: http.MethodGet, Path: "/api/users/"}, deps)
	if res.Failure != FailureTransport {
		t.Fatalf("failure = %v, want FailureTransport", res.Failure)
	}
	if res.Status != 0 {
		t.Fatalf("status = %d, want 0 for transport failure", res.Status)
	}
}

func TestEncodeQuery(t *testing.T) {
	cases := []struct {
		name   string
		params map[string]string
		want   string
	}{
		{"nil", nil, ""},
		{"all empty values", map[string]string{"a": "", "b": ""}, ""},
		{"mixed", map[string]string{"search": "", "ordering": "name"}, "ordering=name"},
		{"escaped", map[string]string{"search": "a b"}, "search=a+b"},
	}

	for _, tc := range cases {
		if got := encodeQuery(tc.params); got != tc.want {
			t.Errorf("%s: encodeQuery = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestJoinURL(t *testing.T) {
	cases := []struct {
		base, path, want string
	}{
		{"http://api.test", "/api/users/", "http://api.test/api/users/"},
		{"http://api.test/", "/api/users/", "http://api.test/api/users/"},
		{"http://api.test/", "api/users/", "http://api.test/api/users/"},
	}
	for _, tc := range cases {
		if got := joinURL(tc.base, tc.path); got != tc.want {
			t.Errorf("joinURL(%q, %q) = %q, want %q", tc.base, tc.path, got, tc.want)
		}
	}
}
