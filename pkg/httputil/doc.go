// Package httputil provides shared infrastructure for slow or flaky
// externals: live CLI probes and the GitHub API.
//
// # Caching
//
// [Cache] stores JSON-marshalable values on disk (~/.cache/cliscribe/ by
// default) with an optional TTL. Scanning a large CLI means hundreds of
// subprocess invocations, and issue automation replays the same GitHub
// lookups; both go through the cache so repeated runs are near-instant.
//
//	cache, err := httputil.NewCache("", 24*time.Hour)
//	probes := cache.Namespace("probe:")
//	issues := cache.Namespace("github:")
//
// Namespacing keeps probe output and API payloads from colliding.
//
// # Retry
//
// [Retry] re-runs an operation with exponential backoff, but only when the
// failure is wrapped in [RetryableError]. Transient conditions (network
// errors, 5xx responses, rate limits) are retryable; a 404 is not.
//
// The cache can be cleared via `cliscribe cache clear` or by deleting the
// cache directory.
package httputil
