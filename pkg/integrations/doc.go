// Package integrations provides the shared HTTP plumbing for external API
// clients, currently GitHub.
//
// [Client] layers three concerns every API call needs: default headers
// (auth, Accept), response caching through [httputil.Cache], and retry with
// backoff for transient failures. Concrete clients embed it and add their
// endpoints on top; see the github subpackage.
//
// Errors are classified into two sentinels so callers can branch without
// string matching: [ErrNotFound] for missing resources and [ErrNetwork] for
// transport and server failures. Network errors are wrapped in
// [httputil.RetryableError], so retry loops pick them up automatically.
package integrations
