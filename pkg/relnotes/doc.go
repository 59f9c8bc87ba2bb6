// Package relnotes cleans up auto-generated release notes.
//
// Release tooling that squashes merge trains tends to emit the same change
// several times: verbatim duplicate bullets, a bare bullet next to one
// carrying its pull request link, the same description landing under several
// commits. [Dedupe] removes these in four ordered passes, each keyed on the
// parsed [Entry] rather than raw text, and reports per-rule counts.
package relnotes
