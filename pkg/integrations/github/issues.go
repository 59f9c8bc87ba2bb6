package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cliscribe/cliscribe/pkg/httputil"
	"github.com/cliscribe/cliscribe/pkg/integrations"
)

// Issue is the subset of the issues API payload the closer needs.
type Issue struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	State   string `json:"state"`
	HTMLURL string `json:"html_url"`
}

// PullRequest is the subset of the pulls API payload the closer needs.
type PullRequest struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	Merged bool   `json:"merged"`
}

// FetchIssue retrieves an issue's current state. Never cached: the whole
// point of reading it is to learn whether it is still open.
func (c *Client) FetchIssue(ctx context.Context, owner, repo string, number int) (*Issue, error) {
	var issue Issue
	url := fmt.Sprintf("%s/repos/%s/%s/issues/%d", c.baseURL, owner, repo, number)
	err := httputil.RetryWithBackoff(ctx, func() error {
		return c.Get(ctx, url, &issue)
	})
	if err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return nil, fmt.Errorf("%w: issue %s/%s#%d", err, owner, repo, number)
		}
		return nil, err
	}
	return &issue, nil
}

// FetchPullRequest retrieves a pull request. Merged pull requests do not
// change, so responses are cached; refresh bypasses the cache.
func (c *Client) FetchPullRequest(ctx context.Context, owner, repo string, number int, refresh bool) (*PullRequest, error) {
	key := fmt.Sprintf("github:pr:%s/%s#%d", owner, repo, number)

	var pr PullRequest
	url := fmt.Sprintf("%s/repos/%s/%s/pulls/%d", c.baseURL, owner, repo, number)
	err := c.Cached(ctx, key, refresh, &pr, func() error {
		return c.Get(ctx, url, &pr)
	})
	if err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return nil, fmt.Errorf("%w: pull request %s/%s#%d", err, owner, repo, number)
		}
		return nil, err
	}
	return &pr, nil
}

// CloseIssue closes an issue, posting comment first when it is non-empty.
func (c *Client) CloseIssue(ctx context.Context, owner, repo string, number int, comment string) error {
	base := fmt.Sprintf("%s/repos/%s/%s/issues/%d", c.baseURL, owner, repo, number)

	if comment != "" {
		err := httputil.RetryWithBackoff(ctx, func() error {
			return c.Send(ctx, http.MethodPost, base+"/comments", map[string]string{"body": comment}, nil)
		})
		if err != nil {
			return fmt.Errorf("comment on %s/%s#%d: %w", owner, repo, number, err)
		}
	}

	err := httputil.RetryWithBackoff(ctx, func() error {
		return c.Send(ctx, http.MethodPatch, base, map[string]string{"state": "closed"}, nil)
	})
	if err != nil {
		return fmt.Errorf("close %s/%s#%d: %w", owner, repo, number, err)
	}
	return nil
}

// CloseAction says what happened to one referenced issue.
type CloseAction string

const (
	ActionClosed        CloseAction = "closed"
	ActionWouldClose    CloseAction = "would_close"
	ActionAlreadyClosed CloseAction = "already_closed"
	ActionNotFound      CloseAction = "not_found"
)

// CloseResult pairs a resolved issue reference with the action taken.
type CloseResult struct {
	Ref    IssueRef
	Action CloseAction
	Err    error
}

// CloseReferencedIssues extracts issue references from a merged pull
// request's title and body and closes each one that is still open, leaving
// comment on it. With dryRun set, open issues are reported as
// [ActionWouldClose] and nothing is mutated.
//
// Per-issue failures land in the corresponding CloseResult rather than
// aborting the batch; the returned error covers only the PR lookup.
func (c *Client) CloseReferencedIssues(ctx context.Context, owner, repo string, prNumber int, comment string, dryRun bool) ([]CloseResult, error) {
	pr, err := c.FetchPullRequest(ctx, owner, repo, prNumber, false)
	if err != nil {
		return nil, err
	}
	if !pr.Merged {
		return nil, fmt.Errorf("pull request %s/%s#%d is not merged", owner, repo, prNumber)
	}

	var results []CloseResult
	for _, ref := range ExtractIssueRefs(pr.Title + "\n" + pr.Body) {
		ref = ref.Resolve(owner, repo)
		result := CloseResult{Ref: ref}

		issue, err := c.FetchIssue(ctx, ref.Owner, ref.Repo, ref.Number)
		switch {
		case errors.Is(err, integrations.ErrNotFound):
			result.Action = ActionNotFound
		case err != nil:
			result.Err = err
		case issue.State == "closed":
			result.Action = ActionAlreadyClosed
		case issue.State != "open":
			result.Err = fmt.Errorf("unexpected state %q", issue.State)
		case dryRun:
			result.Action = ActionWouldClose
		default:
			if err := c.CloseIssue(ctx, ref.Owner, ref.Repo, ref.Number, comment); err != nil {
				result.Err = err
			} else {
				result.Action = ActionClosed
			}
		}
		results = append(results, result)
	}
	return results, nil
}

// CloseComment builds the standard comment posted to auto-closed issues.
func CloseComment(owner, repo string, prNumber int) string {
	return fmt.Sprintf(
		"This issue was automatically closed because it was referenced in %s/%s#%d which has been merged to the default branch.",
		owner, repo, prNumber)
}
