package integrations

import (
	"errors"
	"net/http"
	"time"

	"github.com/cliscribe/cliscribe/pkg/httputil"
)

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors,
	// 5xx responses).
	ErrNetwork = errors.New("network error")
)

// NewHTTPClient creates an HTTP client with the standard request timeout.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// NewCache creates a file-based cache with the given TTL in the default
// cache directory. See [httputil.NewCache].
func NewCache(ttl time.Duration) (*httputil.Cache, error) {
	return httputil.NewCache("", ttl)
}
