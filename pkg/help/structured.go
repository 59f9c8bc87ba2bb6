package help

import (
	"regexp"
	"strings"
)

// Structured is the parsed form of the auto-generated help dialect.
type Structured struct {
	Usage       string    `json:"usage"`
	Description string    `json:"description"`
	Options     []Option  `json:"options,omitempty"`
	Commands    []Command `json:"commands,omitempty"`
}

// Option is a single flag entry from an options section.
type Option struct {
	Short       string `json:"short,omitempty"`
	Long        string `json:"long"`
	Description string `json:"description"`
}

// Command is a single subcommand entry from a commands section.
type Command struct {
	Name        string `json:"name"`
	Signature   string `json:"signature"`
	Description string `json:"description"`
}

// structuredSection is the cursor state of the structured-dialect scanner.
type structuredSection int

const (
	inPreamble structuredSection = iota // before any section marker
	inOptions
	inCommands
)

// optionPattern captures an optional short flag, a required long flag with an
// optional bracketed placeholder, and the trailing description.
var optionPattern = regexp.MustCompile(`^\s+(-[^,\s]+)?(?:,\s+)?(--\S+(?:\s+<[^>]+>)?)\s+(.*)$`)

// columnSplit separates the signature column from the description column.
// Help generators pad commands to a fixed width with two or more spaces.
var columnSplit = regexp.MustCompile(`\s{2,}`)

// ParseStructured scans a normalized structured-dialect help text line by
// line. The scanner is a finite-state machine over three sections: the
// preamble (usage and description), the options section, and the commands
// section. Lines that fit no pattern are skipped.
func ParseStructured(text string) *Structured {
	out := &Structured{}
	section := inPreamble

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "Usage:"):
			out.Usage = strings.TrimSpace(strings.Replace(line, "Usage:", "", 1))

		case strings.Contains(line, "Options:"):
			section = inOptions

		case strings.Contains(line, "Commands:") || strings.Contains(line, "Arguments:"):
			section = inCommands

		case section == inPreamble && trimmed != "" && !strings.HasPrefix(line, " "):
			// The first non-indented line after the usage line is the
			// overall description; later ones are ignored.
			if out.Usage != "" && out.Description == "" {
				out.Description = trimmed
			}

		case section == inOptions && strings.HasPrefix(trimmed, "-"):
			if m := optionPattern.FindStringSubmatch(line); m != nil {
				out.Options = append(out.Options, Option{
					Short:       m[1],
					Long:        m[2],
					Description: strings.TrimSpace(m[3]),
				})
			}

		case section == inCommands && trimmed != "" && !strings.HasPrefix(trimmed, "Additional"):
			if strings.HasPrefix(trimmed, "-") {
				continue
			}
			parts := columnSplit.Split(trimmed, 2)
			if len(parts) != 2 {
				continue
			}
			signature := strings.TrimSpace(parts[0])
			fields := strings.Fields(signature)
			if len(fields) == 0 {
				continue
			}
			out.Commands = append(out.Commands, Command{
				Name:        fields[0],
				Signature:   signature,
				Description: strings.TrimSpace(parts[1]),
			})
		}
	}
	return out
}
