package integrations

import (
	"errors"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout bounds a single registry request.
const DefaultTimeout = 30 * time.Second

var (
	// ErrNotFound is returned when a package or resource doesn't exist in the registry.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, non-200 responses).
	ErrNetwork = errors.New("network error")

	// ErrDecode is returned when a response body is not valid JSON for the target type.
	ErrDecode = errors.New("invalid response body")
)

// NewHTTPClient creates an HTTP client with the given request timeout.
// A non-positive timeout falls back to [DefaultTimeout].
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// EscapePackagePath escapes a package name for use as a single URL path segment.
// Scoped names keep their leading "@" and have the separating "/" encoded,
// which is the form the npm registry expects ("@babel%2Fcore").
func EscapePackagePath(name string) string {
	return url.PathEscape(name)
}
