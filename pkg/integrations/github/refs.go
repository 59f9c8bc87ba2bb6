package github

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// IssueRef identifies an issue mentioned in pull request text. Owner and
// Repo are empty for same-repository references like "#123".
type IssueRef struct {
	Owner  string
	Repo   string
	Number int
}

// String renders the reference the way it appears in PR text: "#123" or
// "owner/repo#123".
func (r IssueRef) String() string {
	if r.Owner == "" {
		return fmt.Sprintf("#%d", r.Number)
	}
	return fmt.Sprintf("%s/%s#%d", r.Owner, r.Repo, r.Number)
}

// Resolve fills in empty Owner/Repo fields from the containing repository.
func (r IssueRef) Resolve(owner, repo string) IssueRef {
	if r.Owner == "" {
		r.Owner, r.Repo = owner, repo
	}
	return r
}

var (
	// issueURLPattern matches full issue URLs, which count as references
	// whether or not a closing keyword is nearby.
	issueURLPattern = regexp.MustCompile(`https?://github\.com/([a-zA-Z0-9_-]+)/([a-zA-Z0-9_-]+)/issues/(\d+)`)

	// closingKeywordPattern gates the shorthand forms: "#123" only counts
	// on a line that carries a closing keyword.
	closingKeywordPattern = regexp.MustCompile(`(?i)\b(close[sd]?|fix(?:e[sd])?|resolve[sd]?)\b`)

	crossRepoRefPattern = regexp.MustCompile(`([a-zA-Z0-9_-]+)/([a-zA-Z0-9_-]+)#(\d+)`)
	sameRepoRefPattern  = regexp.MustCompile(`#(\d+)`)
)

// ExtractIssueRefs finds issue references in free text such as a pull
// request body. Three forms are recognized:
//
//   - full URLs: https://github.com/owner/repo/issues/123 (anywhere)
//   - cross-repo shorthand: owner/repo#123 (on closing-keyword lines)
//   - same-repo shorthand: #123 (on closing-keyword lines)
//
// A bare "#123" is dropped when the same number was already captured in a
// qualified form, so "Fixes owner/repo#123" does not also produce a
// same-repo reference. Results are deduplicated in first-seen order.
func ExtractIssueRefs(text string) []IssueRef {
	var refs []IssueRef
	qualified := make(map[int]bool)
	seen := make(map[IssueRef]bool)

	add := func(r IssueRef) {
		if !seen[r] {
			seen[r] = true
			refs = append(refs, r)
		}
	}

	for _, m := range issueURLPattern.FindAllStringSubmatch(text, -1) {
		num, _ := strconv.Atoi(m[3])
		qualified[num] = true
		add(IssueRef{Owner: m[1], Repo: m[2], Number: num})
	}

	for _, line := range strings.Split(text, "\n") {
		if !closingKeywordPattern.MatchString(line) {
			continue
		}
		for _, m := range crossRepoRefPattern.FindAllStringSubmatch(line, -1) {
			num, _ := strconv.Atoi(m[3])
			qualified[num] = true
			add(IssueRef{Owner: m[1], Repo: m[2], Number: num})
		}
		for _, m := range sameRepoRefPattern.FindAllStringSubmatch(line, -1) {
			num, _ := strconv.Atoi(m[1])
			if !qualified[num] {
				add(IssueRef{Number: num})
			}
		}
	}
	return refs
}
