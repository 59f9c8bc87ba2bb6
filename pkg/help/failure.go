package help

import "strings"

// FailureSubKindUnknown is reported when a failure marker matched but no
// sub-kind signature did.
const FailureSubKindUnknown = "unknown"

// FailureMarkers are substrings that identify captured output as a crashed
// command rather than help text. The list is open: callers may append their
// own markers before scanning.
var FailureMarkers = []string{
	"ERROR: cli Error in command execution",
	"TypeError: Do not know how to serialize",
	"TypeError:",
	"Error:",
	"at JSON.stringify",
}

// FailureSubKind names a recognizable failure signature within already
// failure-marked output. Signatures are consulted in order; the first match
// wins.
type FailureSubKind struct {
	Contains string // substring that identifies the signature
	SubKind  string // reported sub-kind
}

// FailureSubKinds classifies marked failures. The only named signature is the
// serialization crash some JavaScript CLIs hit when printing option defaults.
var FailureSubKinds = []FailureSubKind{
	{Contains: "BigInt", SubKind: "bigint_serialization"},
}

// DetectFailure reports whether text contains a known failure marker and, if
// so, the failure sub-kind ("unknown" when no signature matches).
func DetectFailure(text string) (subKind string, failed bool) {
	marked := false
	for _, marker := range FailureMarkers {
		if strings.Contains(text, marker) {
			marked = true
			break
		}
	}
	if !marked {
		return "", false
	}
	for _, sig := range FailureSubKinds {
		if strings.Contains(text, sig.Contains) {
			return sig.SubKind, true
		}
	}
	return FailureSubKindUnknown, true
}
