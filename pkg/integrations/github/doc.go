// Package github provides the GitHub API client used by issue automation.
//
// When pull requests target an intermediate branch instead of the default
// one, GitHub's native "Closes #123" handling never fires. The [Client]
// fills that gap: it reads merged pull requests, extracts the issue
// references from their title and body with [ExtractIssueRefs], and closes
// the referenced issues with an explanatory comment.
//
// Authentication is a bearer token; pass an empty token for unauthenticated
// access with its lower rate limits. Transient API failures are retried with
// backoff via the embedded [integrations.Client].
package github
