package integrations

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cliscribe/cliscribe/pkg/httputil"
)

// Client provides shared HTTP functionality for API clients: caching, retry
// logic, and common request headers.
type Client struct {
	http    *http.Client
	cache   *httputil.Cache
	headers map[string]string
}

// NewClient creates a Client with the given cache and default headers.
// Headers are applied to every request made through this client. Pass nil
// for headers if none are needed.
func NewClient(cache *httputil.Cache, headers map[string]string) *Client {
	return &Client{
		http:    NewHTTPClient(),
		cache:   cache,
		headers: headers,
	}
}

// SetHTTPClient replaces the underlying HTTP client. Intended for tests
// against httptest servers.
func (c *Client) SetHTTPClient(h *http.Client) { c.http = h }

// Cached retrieves a value from cache or executes fetch and caches the
// result. If refresh is true the cache is bypassed and fetch always runs.
// The fetch function populates v; on success v is stored in the cache.
// Fetch runs under [httputil.RetryWithBackoff].
func (c *Client) Cached(ctx context.Context, key string, refresh bool, v any, fetch func() error) error {
	if !refresh {
		if ok, _ := c.cache.Get(key, v); ok {
			return nil
		}
	}
	if err := httputil.RetryWithBackoff(ctx, fetch); err != nil {
		return err
	}
	_ = c.cache.Set(key, v)
	return nil
}

// Get performs an HTTP GET and JSON-decodes the response into v.
func (c *Client) Get(ctx context.Context, url string, v any) error {
	return c.GetWithHeaders(ctx, url, nil, v)
}

// GetWithHeaders performs an HTTP GET with additional headers merged over
// the client defaults. Request-specific headers win on conflicts.
func (c *Client) GetWithHeaders(ctx context.Context, url string, headers map[string]string, v any) error {
	body, err := c.doRequest(ctx, http.MethodGet, url, nil, headers)
	if err != nil {
		return err
	}
	defer body.Close()
	return json.NewDecoder(body).Decode(v)
}

// GetText performs an HTTP GET and returns the raw response body. Useful
// for plain-text endpoints.
func (c *Client) GetText(ctx context.Context, url string) (string, error) {
	body, err := c.doRequest(ctx, http.MethodGet, url, nil, nil)
	if err != nil {
		return "", err
	}
	defer body.Close()
	data, err := io.ReadAll(body)
	return string(data), err
}

// Send performs a request with a JSON-encoded payload and, when v is
// non-nil, JSON-decodes the response into it. Used for the mutating API
// calls (PATCH, POST).
func (c *Client) Send(ctx context.Context, method, url string, payload, v any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}
	respBody, err := c.doRequest(ctx, method, url, body, map[string]string{
		"Content-Type": "application/json",
	})
	if err != nil {
		return err
	}
	defer respBody.Close()
	if v == nil {
		_, err := io.Copy(io.Discard, respBody)
		return err
	}
	return json.NewDecoder(respBody).Decode(v)
}

func (c *Client) doRequest(ctx context.Context, method, url string, body io.Reader, headers map[string]string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &httputil.RetryableError{Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}

	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func checkStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= 500 || code == http.StatusTooManyRequests:
		return &httputil.RetryableError{Err: fmt.Errorf("%w: status %d", ErrNetwork, code)}
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}
