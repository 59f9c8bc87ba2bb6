package markdown

import (
	"strings"
	"unicode"
)

// Slugify converts heading display text into an anchor-safe slug: lowercase,
// separators (space, slash, dot, underscore) become hyphens, any other
// non-alphanumeric is dropped, runs of hyphens collapse, and leading or
// trailing hyphens are trimmed. Idempotent: Slugify(Slugify(x)) == Slugify(x).
func Slugify(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case r == ' ' || r == '/' || r == '.' || r == '_':
			b.WriteByte('-')
		case r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		}
	}
	s := b.String()
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

var angleReplacer = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// escapeAngles replaces angle brackets with HTML entities so captured help
// text is never misread as markup by MDX-style processors.
func escapeAngles(text string) string {
	return angleReplacer.Replace(text)
}

// escapeCell prepares text for a Markdown table cell: angle brackets become
// entities and literal pipes are backslash-escaped.
func escapeCell(text string) string {
	return strings.ReplaceAll(escapeAngles(text), "|", `\|`)
}
