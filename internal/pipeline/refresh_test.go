package pipeline

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func refreshDeps(server *httptest.Server, token string) RefreshDeps {
	return RefreshDeps{
		BaseURL: server.URL,
		Path:    "/api/token/refresh/",
		HTTP:    server.Client(),
		RefreshToken: func() (string, bool) {
			return token, token != ""
		},
	}
}

func TestRunRefreshWireContract(t *testing.T) {
	var gotBody refreshRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode refresh body: %v", err)
		}
		w.Write([]byte(`{"access":"fresh-access"}`))
	}))
	defer server.Close()

	var updated string
	deps := refreshDeps(server, "r-token")
	deps.UpdateAccess = func(access string) { updated = access }

	res := RunRefresh(t.Context(), deps)
	if res.Failure != RefreshFailureNone {
		t.Fatalf("failure = %v, err = %v", res.Failure, res.Err)
	}
	if gotBody.Refresh != "r-token" {
		t.Fatalf("posted refresh = %q", gotBody.Refresh)
	}
	if res.Access != "fresh-access" || updated != "fresh-access" {
		t.Fatalf("access = %q, updated = %q", res.Access, updated)
	}
}

func TestRunRefreshNoTokenSkipsNetwork(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("no request expected without a refresh token")
	}))
	defer server.Close()

	res := RunRefresh(t.Context(), refreshDeps(server, ""))
	if res.Failure != RefreshFailureNoToken {
		t.Fatalf("failure = %v, want RefreshFailureNoToken", res.Failure)
	}
}

func TestRunRefreshRejectedNoMutation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"token blacklisted"}`))
	}))
	defer server.Close()

	deps := refreshDeps(server, "r-token")
	deps.UpdateAccess = func(string) { t.Error("access must not change on a rejected refresh") }

	res := RunRefresh(t.Context(), deps)
	if res.Failure != RefreshFailureHTTP || res.Status != http.StatusUnauthorized {
		t.Fatalf("failure = %v, status = %d", res.Failure, res.Status)
	}
}

func TestRunRefreshEmptyAccessIsDecodeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	deps := refreshDeps(server, "r-token")
	deps.UpdateAccess = func(string) { t.Error("access must not change without a token in the response") }

	res := RunRefresh(t.Context(), deps)
	if res.Failure != RefreshFailureDecode {
		t.Fatalf("failure = %v, want RefreshFailureDecode", res.Failure)
	}
}

func TestRunRefreshTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	deps := RefreshDeps{
		BaseURL:      server.URL,
		Path:         "/api/token/refresh/",
		HTTP:         http.DefaultClient,
		RefreshToken: func() (string, bool) { return "r-token", true },
	}
	res := RunRefresh(t.Context(), deps)
	if res.Failure != RefreshFailureTransport {
		t.Fatalf("failure = %v, want RefreshFailureTransport", res.Failure)
	}
}
