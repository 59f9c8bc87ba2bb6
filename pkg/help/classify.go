package help

import (
	"regexp"
	"strings"
)

// Dialect identifies the shape of a help text.
type Dialect string

const (
	// DialectStructured is the common auto-generated format with
	// "Usage:"/"Options:"/"Commands:" markers.
	DialectStructured Dialect = "structured"

	// DialectSectioned is the custom format with indented all-caps section
	// headers.
	DialectSectioned Dialect = "sectioned"

	// DialectRaw is anything the other parsers would mangle; the text is
	// preserved verbatim instead.
	DialectRaw Dialect = "raw"
)

// sectionHeaderPattern matches a sectioned-dialect header line: exactly two
// spaces of indent, an all-caps word-or-space run, end of line.
var sectionHeaderPattern = regexp.MustCompile(`^\s{2}([A-Z][A-Z\s]+?)\s*$`)

// sectionHeaderAnywhere is the multi-line variant used for classification.
var sectionHeaderAnywhere = regexp.MustCompile(`(?m)^\s{2}[A-Z][A-Z\s]+$`)

// Classify decides which dialect a normalized help text belongs to.
// First match wins: structured, then sectioned, then raw.
func Classify(text string) Dialect {
	if strings.Contains(text, "Usage:") &&
		(strings.Contains(text, "Commands:") || strings.Contains(text, "Arguments:")) {
		return DialectStructured
	}
	if sectionHeaderAnywhere.MatchString(text) {
		return DialectSectioned
	}
	return DialectRaw
}
