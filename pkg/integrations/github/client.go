package github

import (
	"time"

	"github.com/cliscribe/cliscribe/pkg/httputil"
	"github.com/cliscribe/cliscribe/pkg/integrations"
)

// Client provides access to the GitHub issues and pull requests API.
// It handles HTTP requests with caching, automatic retries, and optional
// authentication.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a GitHub API client with optional authentication.
// Pass an empty token for unauthenticated requests (lower rate limits).
func NewClient(token string, cacheTTL time.Duration) (*Client, error) {
	cache, err := integrations.NewCache(cacheTTL)
	if err != nil {
		return nil, err
	}
	return newClient(token, cache), nil
}

func newClient(token string, cache *httputil.Cache) *Client {
	headers := map[string]string{"Accept": "application/vnd.github.v3+json"}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return &Client{
		Client:  integrations.NewClient(cache, headers),
		baseURL: "https://api.github.com",
	}
}
