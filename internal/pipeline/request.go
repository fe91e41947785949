package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// FailureKind classifies request outcomes for root-level error mapping.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureEncodeBody
	FailureBuildRequest
	FailureTransport
	FailureCanceled
	FailureReadBody
	FailureHTTP
)

// Descriptor describes one outbound request. Query values that are empty
// strings are omitted from the encoded URL, mirroring how absent filter
// fields must not reach the server.
type Descriptor struct {
	Method string
	Path   string
	Query  map[string]string
	Body   any
}

// Result carries either the raw success body or failure metadata. For
// FailureHTTP, Body holds the raw error payload for tolerant parsing by the
// caller.
type Result struct {
	Failure FailureKind
	Err     error
	Status  int
	Body    []byte

	RefreshAttempted bool
	RefreshSucceeded bool
}

// TokenSource supplies the current bearer credentials. Absent tokens mean
// the call goes out unauthenticated.
type TokenSource interface {
	AccessToken() (string, bool)
	RefreshToken() (string, bool)
}

// Deps captures request flow dependencies.
type Deps struct {
	BaseURL   string
	HTTP      *http.Client
	Tokens    TokenSource
	UserAgent string

	// RequestID, when set, stamps each call with an X-Request-ID header.
	RequestID func(ctx context.Context) string

	// Refresh is the one-shot, deduplicated refresh closure supplied by the
	// client. When nil, 401 responses are surfaced without recovery.
	Refresh func(ctx context.Context) error
}

// Run executes one request. The token read happens before dispatch; the 401
// branch never fires for a cancelled context, so an aborted caller cannot
// trigger session mutation.
func Run(ctx context.Context, desc Descriptor, deps Deps) Result {
	var bodyReader io.Reader
	if desc.Body != nil {
		encoded, err := json.Marshal(desc.Body)
		if err != nil {
			return Result{Failure: FailureEncodeBody, Err: fmt.Errorf("encode request body: %w", err)}
		}
		bodyReader = bytes.NewReader(encoded)
	}

	target := joinURL(deps.BaseURL, desc.Path)
	if q := encodeQuery(desc.Query); q != "" {
		target += "?" + q
	}

	req, err := http.NewRequestWithContext(ctx, desc.Method, target, bodyReader)
	if err != nil {
		return Result{Failure: FailureBuildRequest, Err: fmt.Errorf("build request: %w", err)}
	}

	req.Header.Set("Content-Type", "application/json")
	if deps.UserAgent != "" {
		req.Header.Set("User-Agent", deps.UserAgent)
	}
	if deps.RequestID != nil {
		if id := deps.RequestID(ctx); id != "" {
			req.Header.Set("X-Request-ID", id)
		}
	}
	if deps.Tokens != nil {
		if access, ok := deps.Tokens.AccessToken(); ok && access != "" {
			req.Header.Set("Authorization", "Bearer "+access)
		}
	}

	resp, err := deps.HTTP.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return Result{Failure: FailureCanceled, Err: ctx.Err()}
		}
		return Result{Failure: FailureTransport, Err: fmt.Errorf("%s %s: %w", desc.Method, desc.Path, err)}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return Result{Failure: FailureCanceled, Err: ctx.Err()}
		}
		return Result{Failure: FailureReadBody, Err: fmt.Errorf("read response body: %w", err), Status: resp.StatusCode}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if resp.StatusCode == http.StatusNoContent {
			payload = nil
		}
		return Result{Failure: FailureNone, Status: resp.StatusCode, Body: payload}
	}

	out := Result{Failure: FailureHTTP, Status: resp.StatusCode, Body: payload}

	if resp.StatusCode == http.StatusUnauthorized && deps.Refresh != nil && ctx.Err() == nil {
		if deps.Tokens != nil {
			if _, ok := deps.Tokens.RefreshToken(); ok {
				out.RefreshAttempted = true
				out.RefreshSucceeded = deps.Refresh(ctx) == nil
			}
		}
	}

	return out
}

// encodeQuery builds a canonical query string, skipping parameters whose
// value is the empty string.
func encodeQuery(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}
	values := url.Values{}
	for key, value := range params {
		if value == "" {
			continue
		}
		values.Set(key, value)
	}
	return values.Encode()
}

func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
