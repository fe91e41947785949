package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// RefreshFailureKind classifies refresh flow failures.
type RefreshFailureKind int

const (
	RefreshFailureNone RefreshFailureKind = iota
	RefreshFailureNoToken
	RefreshFailureTransport
	RefreshFailureHTTP
	RefreshFailureDecode
)

// RefreshResult carries either the newly minted access token or failure
// metadata.
type RefreshResult struct {
	Failure RefreshFailureKind
	Err     error
	Status  int
	Access  string
}

// RefreshDeps captures refresh flow dependencies.
type RefreshDeps struct {
	BaseURL   string
	Path      string
	HTTP      *http.Client
	UserAgent string

	RefreshToken func() (string, bool)

	// UpdateAccess stores the minted access token. Called only on success;
	// on any failure the session is left untouched.
	UpdateAccess func(access string)
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type refreshResponse struct {
	Access string `json:"access"`
}

// RunRefresh posts the refresh token and stores the minted access token.
// It issues the request directly — deliberately not through [Run] — so a 401
// from the refresh endpoint can never re-enter the refresh path.
func RunRefresh(ctx context.Context, deps RefreshDeps) RefreshResult {
	token, ok := deps.RefreshToken()
	if !ok || token == "" {
		return RefreshResult{Failure: RefreshFailureNoToken, Err: errors.New("no refresh token held")}
	}

	encoded, err := json.Marshal(refreshRequest{Refresh: token})
	if err != nil {
		return RefreshResult{Failure: RefreshFailureDecode, Err: fmt.Errorf("encode refresh request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, joinURL(deps.BaseURL, deps.Path), bytes.NewReader(encoded))
	if err != nil {
		return RefreshResult{Failure: RefreshFailureTransport, Err: fmt.Errorf("build refresh request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	if deps.UserAgent != "" {
		req.Header.Set("User-Agent", deps.UserAgent)
	}

	resp, err := deps.HTTP.Do(req)
	if err != nil {
		return RefreshResult{Failure: RefreshFailureTransport, Err: fmt.Errorf("refresh call: %w", err)}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return RefreshResult{Failure: RefreshFailureTransport, Err: fmt.Errorf("read refresh response: %w", err), Status: resp.StatusCode}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return RefreshResult{
			Failure: RefreshFailureHTTP,
			Err:     fmt.Errorf("refresh rejected with status %d", resp.StatusCode),
			Status:  resp.StatusCode,
		}
	}

	var decoded refreshResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return RefreshResult{Failure: RefreshFailureDecode, Err: fmt.Errorf("decode refresh response: %w", err), Status: resp.StatusCode}
	}
	if decoded.Access == "" {
		return RefreshResult{Failure: RefreshFailureDecode, Err: errors.New("refresh response missing access token"), Status: resp.StatusCode}
	}

	if deps.UpdateAccess != nil {
		deps.UpdateAccess(decoded.Access)
	}

	return RefreshResult{Failure: RefreshFailureNone, Status: resp.StatusCode, Access: decoded.Access}
}
