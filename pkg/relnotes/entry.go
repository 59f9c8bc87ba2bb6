package relnotes

import "regexp"

// Entry is one parsed release-note bullet.
type Entry struct {
	// Indent is the leading whitespace plus the bullet marker.
	Indent string

	// Description is the change text before any parenthesized links.
	Description string

	// Links is the trailing links part, verbatim (may be empty).
	Links string

	// PRNumber is the pull request number from a "[#1234]" link, or empty.
	PRNumber string

	// HasCommit reports whether the links contain a commit hash link.
	HasCommit bool

	// Line is the full original line.
	Line string
}

var (
	// entryPattern splits a bullet into bullet prefix, description, and the
	// trailing links part starting at the first parenthesized fragment.
	entryPattern = regexp.MustCompile(`^(\s*\*\s*)(.+?)(\s*\([^)]+\).*)?$`)

	prLinkPattern     = regexp.MustCompile(`\[#(\d+)\]`)
	commitLinkPattern = regexp.MustCompile(`(?i)\[[0-9a-f]{7,}\]`)
)

// ParseEntry parses a single release-note line. Lines that are not bullets
// (headings, blanks, prose) return ok=false and take no part in
// description-based deduplication.
func ParseEntry(line string) (Entry, bool) {
	m := entryPattern.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, false
	}
	e := Entry{
		Indent:      m[1],
		Description: trimSpace(m[2]),
		Links:       m[3],
		Line:        line,
	}
	if pr := prLinkPattern.FindStringSubmatch(e.Links); pr != nil {
		e.PRNumber = pr[1]
	}
	e.HasCommit = commitLinkPattern.MatchString(e.Links)
	return e, true
}

func trimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && (s[start] == ' ' || s[start] == '\t') {
		start++
	}
	for end > start && (s[end-1] == ' ' || s[end-1] == '\t') {
		end--
	}
	return s[start:end]
}
