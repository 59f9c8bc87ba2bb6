package scan

import (
	"strings"

	"github.com/cliscribe/cliscribe/pkg/help"
)

// Format tags the payload variant a CommandNode carries.
type Format string

const (
	FormatStructured Format = "structured"
	FormatSectioned  Format = "sectioned"
	FormatRaw        Format = "raw"
	FormatError      Format = "error"
)

// ErrorKind classifies why a command could not be documented.
type ErrorKind string

const (
	// ErrAlreadyVisited marks a path probed earlier in the same scan.
	ErrAlreadyVisited ErrorKind = "already_visited"

	// ErrMaxDepthExceeded marks a path beyond the recursion depth cap.
	ErrMaxDepthExceeded ErrorKind = "max_depth_exceeded"

	// ErrNoOutput marks a probe that failed, timed out, or printed nothing.
	ErrNoOutput ErrorKind = "no_help_output"

	// ErrInvalidSubcommand marks a child whose help text is identical to its
	// parent's: the tool fell back to the parent help for an unknown name.
	ErrInvalidSubcommand ErrorKind = "invalid_subcommand"

	// ErrExecution marks output that contains a known failure signature
	// instead of help text.
	ErrExecution ErrorKind = "command_execution_error"
)

// NodeError is the payload of an error-format node.
type NodeError struct {
	Kind    ErrorKind `json:"kind"`
	SubKind string    `json:"sub_kind,omitempty"`
	Preview string    `json:"preview,omitempty"`
}

// CommandNode is one probed command path. Exactly one payload field matches
// Format; Children is populated only on structured nodes. Nodes are built
// once by a scan pass and read-only afterwards.
type CommandNode struct {
	Path       []string                `json:"path"`
	Format     Format                  `json:"format"`
	Structured *help.Structured        `json:"structured,omitempty"`
	Sectioned  *help.Sectioned         `json:"sectioned,omitempty"`
	Raw        string                  `json:"raw,omitempty"`
	Err        *NodeError              `json:"error,omitempty"`
	Children   map[string]*CommandNode `json:"children,omitempty"`
}

// Name returns the command's full display name: the argument path joined
// with spaces (e.g. "tool sub leaf").
func (n *CommandNode) Name() string {
	return strings.Join(n.Path, " ")
}
