package pharmaclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrClientNotReady is returned when a call is made before Build succeeded.
	ErrClientNotReady = errors.New("client not initialized")
	// ErrUnauthorized is the unwrap target for 401 responses.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrPermissionDenied is the unwrap target for 403 responses.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrNotFound is the unwrap target for 404 responses.
	ErrNotFound = errors.New("not found")
	// ErrNoRefreshToken is returned when a refresh is requested without a stored refresh token.
	ErrNoRefreshToken = errors.New("no refresh token held")
	// ErrRefreshFailed is returned when the backend rejects the refresh token.
	ErrRefreshFailed = errors.New("token refresh failed")
	// ErrSessionExpired signals that the session was cleared because the
	// refresh token is no longer accepted. Callers route the user back to
	// login when they see it.
	ErrSessionExpired = errors.New("session expired")
)

// APIError carries the backend's own description of a failed call.
type APIError struct {
	Status  int
	Message string
	// Details is the raw response body, kept for callers that want the
	// per-field validation errors DRF puts there.
	Details json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Unwrap maps well-known statuses onto the package sentinels so callers
// can use errors.Is without reading the status code.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrPermissionDenied
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}

// newAPIError builds an APIError from a non-2xx response body. The body
// is usually JSON with a "detail" or "message" field, but proxies and
// load balancers answer with HTML or plain text, so every shape must
// produce a usable error.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{
		Status:  status,
		Message: fmt.Sprintf("request failed with status %d", status),
	}

	if len(body) > 0 {
		apiErr.Details = json.RawMessage(body)
	}
	if strings.TrimSpace(string(body)) == "" {
		return apiErr
	}

	var parsed struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return apiErr
	}

	switch {
	case parsed.Detail != "":
		apiErr.Message = parsed.Detail
	case parsed.Message != "":
		apiErr.Message = parsed.Message
	}
	return apiErr
}
