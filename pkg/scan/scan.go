package scan

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/cliscribe/cliscribe/pkg/help"
)

// DefaultMaxDepth caps subcommand recursion. Five levels is deeper than any
// sane CLI nests; beyond that the tool is almost certainly cyclic.
const DefaultMaxDepth = 5

// previewLimit bounds the raw-output excerpt kept on execution-error nodes.
const previewLimit = 200

// Options configures a Scanner. The zero value is not usable directly; call
// WithDefaults or construct via New, which applies it for you.
type Options struct {
	// MaxDepth is the maximum subcommand nesting depth to probe.
	MaxDepth int

	// Logger receives progress messages. Nil disables them.
	Logger func(msg string, args ...any)
}

// WithDefaults returns a copy of o with zero fields replaced by defaults.
func (o Options) WithDefaults() Options {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.Logger == nil {
		o.Logger = func(string, ...any) {}
	}
	return o
}

// Report is the result of one complete scan.
type Report struct {
	Command   string       `json:"command"`
	ScannedAt time.Time    `json:"scanned_at"`
	Root      *CommandNode `json:"root"`
}

// Scanner probes a tool's help surface. A Scanner is stateless across scans;
// each Scan call owns its visited set, so the same Scanner can document
// several tools in sequence without cross-contamination.
type Scanner struct {
	runner Runner
	opts   Options
}

// New creates a Scanner that probes through runner.
func New(runner Runner, opts Options) *Scanner {
	return &Scanner{runner: runner, opts: opts.WithDefaults()}
}

// Scan probes command and its subcommand tree, returning a Report. The
// command slice is the full invocation prefix (e.g. ["aztec"] or
// ["npm", "exec", "tool"]); "--help" is appended per probe.
//
// Scan fails only on empty input or context cancellation. Everything that
// goes wrong with an individual command becomes an error node in the tree.
func (s *Scanner) Scan(ctx context.Context, command ...string) (*Report, error) {
	if len(command) == 0 {
		return nil, errors.New("scan: no command given")
	}
	p := &pass{
		runner:  s.runner,
		opts:    s.opts,
		visited: make(map[string]bool),
	}
	root := p.probe(ctx, command, 0, "")
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Report{
		Command:   strings.Join(command, " "),
		ScannedAt: time.Now().UTC(),
		Root:      root,
	}, nil
}

// pass holds the per-scan state. Guards live here rather than on Scanner so
// that visiting "tool sub" in one scan never suppresses it in the next.
type pass struct {
	runner  Runner
	opts    Options
	visited map[string]bool
}

// probe documents a single command path and, for structured help, recurses
// into its subcommands. parentHelp is the parent's normalized help text,
// used to detect tools that print it verbatim for unknown subcommands.
//
// Guard checks run strictly before the invocation: a visited or too-deep
// path never launches a subprocess.
func (p *pass) probe(ctx context.Context, path []string, depth int, parentHelp string) *CommandNode {
	key := strings.Join(path, " ")

	if p.visited[key] {
		return errorNode(path, ErrAlreadyVisited, "")
	}
	p.visited[key] = true

	if depth > p.opts.MaxDepth {
		return errorNode(path, ErrMaxDepthExceeded, "")
	}

	p.opts.Logger("probing", "command", key, "depth", depth)

	raw, err := p.runner.Run(ctx, append(slices.Clone(path), "--help"))
	if err != nil || strings.TrimSpace(raw) == "" {
		return errorNode(path, ErrNoOutput, "")
	}
	text := help.Normalize(raw)

	if parentHelp != "" && strings.TrimSpace(text) == strings.TrimSpace(parentHelp) {
		return errorNode(path, ErrInvalidSubcommand, "")
	}

	if subKind, failed := help.DetectFailure(text); failed {
		node := errorNode(path, ErrExecution, subKind)
		node.Err.Preview = preview(text)
		return node
	}

	node := &CommandNode{Path: slices.Clone(path)}
	switch help.Classify(text) {
	case help.DialectStructured:
		node.Format = FormatStructured
		node.Structured = help.ParseStructured(text)
		for _, cmd := range node.Structured.Commands {
			// Every CLI's built-in "help" command prints the same tree
			// we are already walking.
			if cmd.Name == "help" {
				continue
			}
			child := p.probe(ctx, append(slices.Clone(path), cmd.Name), depth+1, text)
			if node.Children == nil {
				node.Children = make(map[string]*CommandNode)
			}
			node.Children[cmd.Name] = child
		}
	case help.DialectSectioned:
		node.Format = FormatSectioned
		node.Sectioned = help.ParseSectioned(text)
	default:
		node.Format = FormatRaw
		node.Raw = text
	}
	return node
}

func errorNode(path []string, kind ErrorKind, subKind string) *CommandNode {
	return &CommandNode{
		Path:   slices.Clone(path),
		Format: FormatError,
		Err:    &NodeError{Kind: kind, SubKind: subKind},
	}
}

func preview(text string) string {
	r := []rune(text)
	if len(r) <= previewLimit {
		return text
	}
	return string(r[:previewLimit])
}
