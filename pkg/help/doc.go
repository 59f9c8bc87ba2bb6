// Package help classifies and parses captured --help output.
//
// Command-line tools emit help text in a handful of shapes. This package
// recognizes two of them and preserves everything else verbatim:
//
//   - Structured: the auto-generated format produced by most argument-parsing
//     frameworks, with "Usage:", "Options:" and "Commands:" sections.
//   - Sectioned: a hand-rolled format that groups options under indented
//     all-caps section headers (e.g. "  NETWORK").
//   - Raw: anything unrecognized, stored character for character.
//
// Parsing is a best-effort heuristic over text, not a grammar: unmatched
// lines are skipped rather than treated as errors. Captured output should be
// passed through [Normalize] first so terminal escape sequences do not
// confuse the line patterns.
package help
