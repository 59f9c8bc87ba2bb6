package markdown

import (
	"fmt"
	"strings"
	"time"

	"github.com/cliscribe/cliscribe/pkg/help"
	"github.com/cliscribe/cliscribe/pkg/scan"
)

// RenderCommandTree renders a scan report as a Markdown reference document.
// Output is deterministic: children render in the order their parent's help
// text listed them, and error nodes render as one-line stubs so the document
// stays structurally complete.
func RenderCommandTree(report *scan.Report, cfg Config) string {
	var sections []string

	if cfg.Title != "" {
		sections = append(sections, "# "+cfg.Title+"\n")
	}
	if cfg.IncludeMetadata {
		sections = append(sections, fmt.Sprintf("*Generated: %s*\n", report.ScannedAt.Format(time.RFC3339)))
		sections = append(sections, fmt.Sprintf("*Command: `%s`*\n", report.Command))
	}
	if cfg.IncludeTOC {
		if toc := commandTOC(report.Root, 0, cfg); toc != "" {
			sections = append(sections, "## Table of Contents\n", toc)
		}
	}
	sections = append(sections, renderCommandNode(report.Root, 1, cfg))

	if cfg.RenderFooter != nil {
		sections = append(sections, cfg.RenderFooter())
	}
	return strings.Join(sections, "\n")
}

// orderedChildren returns a node's children in the order the parent's help
// text listed them, skipping duplicates and names with no probed child.
func orderedChildren(node *scan.CommandNode) []*scan.CommandNode {
	if node.Format != scan.FormatStructured || len(node.Children) == 0 {
		return nil
	}
	var children []*scan.CommandNode
	seen := make(map[string]bool)
	for _, cmd := range node.Structured.Commands {
		if seen[cmd.Name] {
			continue
		}
		seen[cmd.Name] = true
		if child, ok := node.Children[cmd.Name]; ok {
			children = append(children, child)
		}
	}
	return children
}

// commandTOC emits one indented entry per node down to MaxDepth. Error
// nodes appear under their plain name; their body section is a stub, so the
// anchor still resolves.
func commandTOC(node *scan.CommandNode, depth int, cfg Config) string {
	if depth > cfg.MaxDepth {
		return ""
	}
	indent := strings.Repeat("  ", depth)
	name := node.Name()
	lines := []string{fmt.Sprintf("%s- [%s](#%s)", indent, name, Slugify(name))}

	for _, child := range orderedChildren(node) {
		if sub := commandTOC(child, depth+1, cfg); sub != "" {
			lines = append(lines, sub)
		}
	}
	return strings.Join(lines, "\n")
}

func renderCommandNode(node *scan.CommandNode, depth int, cfg Config) string {
	if depth > cfg.MaxDepth {
		return ""
	}
	name := node.Name()

	if node.Format == scan.FormatError {
		return cfg.header(name, depth) + "\n\n" + stubSentence(node.Err) + "\n\n"
	}

	sections := []string{cfg.header(name, depth) + "\n"}

	switch node.Format {
	case scan.FormatStructured:
		sections = append(sections, renderStructured(node.Structured, cfg))
		if children := orderedChildren(node); len(children) > 0 {
			heading := strings.Repeat("#", depth+1)
			sections = append(sections, "\n"+heading+"# Subcommands\n")
			for _, child := range children {
				sections = append(sections, renderCommandNode(child, depth+1, cfg))
			}
		}
	case scan.FormatSectioned:
		sections = append(sections, renderSectioned(node.Sectioned, cfg))
	case scan.FormatRaw:
		sections = append(sections, "```", node.Raw, "```\n")
	}
	return strings.Join(sections, "\n")
}

// stubSentence maps a node error to the single explanatory line shown in
// place of the command's documentation.
func stubSentence(e *scan.NodeError) string {
	switch e.Kind {
	case scan.ErrAlreadyVisited:
		return "*This command is documented in an earlier section.*"
	case scan.ErrMaxDepthExceeded:
		return "*Subcommands nested this deep are not included in this reference.*"
	case scan.ErrNoOutput:
		return "*This command produced no help output.*"
	case scan.ErrInvalidSubcommand:
		return "*This command does not provide its own help output.*"
	case scan.ErrExecution:
		if e.SubKind == "bigint_serialization" {
			return "*Help for this command is currently unavailable due to a technical issue with option serialization.*"
		}
	}
	return "*This command help is currently unavailable due to a technical issue.*"
}

func renderStructured(s *help.Structured, cfg Config) string {
	var sections []string

	if s.Description != "" {
		sections = append(sections, escapeAngles(s.Description)+"\n")
	}
	if cfg.ShowUsage && s.Usage != "" {
		sections = append(sections, "**Usage:**", "```bash", s.Usage, "```\n")
	}
	if len(s.Commands) > 0 {
		sections = append(sections, "**Available Commands:**\n")
		for _, cmd := range s.Commands {
			sections = append(sections, fmt.Sprintf("- `%s` - %s", cmd.Signature, escapeAngles(cmd.Description)))
		}
		sections = append(sections, "")
	}
	if len(s.Options) > 0 {
		sections = append(sections, "**Options:**\n")
		if cfg.OptionLayout == LayoutTable {
			sections = append(sections, optionsTable(s.Options))
		} else {
			sections = append(sections, optionsList(s.Options))
		}
		sections = append(sections, "")
	}
	return strings.Join(sections, "\n")
}

func optionsList(options []help.Option) string {
	var lines []string
	for _, opt := range options {
		flags := strings.TrimSpace(opt.Short + " " + opt.Long)
		lines = append(lines, fmt.Sprintf("- `%s` - %s", flags, escapeAngles(opt.Description)))
	}
	return strings.Join(lines, "\n")
}

func optionsTable(options []help.Option) string {
	lines := []string{
		"| Option | Description |",
		"|--------|-------------|",
	}
	for _, opt := range options {
		flags := strings.TrimSpace(opt.Short + " " + opt.Long)
		lines = append(lines, fmt.Sprintf("| `%s` | %s |", flags, escapeCell(opt.Description)))
	}
	return strings.Join(lines, "\n")
}

func renderSectioned(s *help.Sectioned, cfg Config) string {
	var sections []string

	if s.Description != "" {
		sections = append(sections, escapeAngles(s.Description)+"\n")
	}
	for _, sec := range s.Sections {
		sections = append(sections, fmt.Sprintf("**%s**\n", sec.Name))
		for _, opt := range sec.Options {
			line := fmt.Sprintf("- `%s`", opt.Flag)
			if opt.Default != "" {
				line += fmt.Sprintf(" (default: `%s`)", opt.Default)
			}
			sections = append(sections, line)

			if opt.Description != "" {
				sections = append(sections, "  "+escapeAngles(opt.Description))
			}
			if cfg.ShowEnvVars && opt.EnvVar != "" {
				sections = append(sections, fmt.Sprintf("  *Environment: `$%s`*", opt.EnvVar))
			}
			sections = append(sections, "")
		}
	}
	return strings.Join(sections, "\n")
}
