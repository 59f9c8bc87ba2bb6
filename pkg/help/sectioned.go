package help

import (
	"regexp"
	"strings"
)

// Sectioned is the parsed form of the hand-rolled help dialect that groups
// options under all-caps section headers.
type Sectioned struct {
	Usage       string    `json:"usage"`
	Description string    `json:"description"`
	Sections    []Section `json:"sections,omitempty"`
}

// Section is one header-delimited group of options.
type Section struct {
	Name    string          `json:"name"`
	Options []SectionOption `json:"options,omitempty"`
}

// SectionOption is a single option entry within a section.
type SectionOption struct {
	Flag        string `json:"flag"`
	Default     string `json:"default,omitempty"`
	EnvVar      string `json:"env,omitempty"`
	Description string `json:"description"`
}

var (
	// sectionOptionPattern matches an option line: indentation, a flag
	// starting with --, then the two-or-more-space column gap.
	sectionOptionPattern = regexp.MustCompile(`^\s+(--.+?)\s{2,}`)

	// defaultPattern captures the value of a "(default: ...)" fragment.
	defaultPattern = regexp.MustCompile(`\(default:\s*([^)]+)\)`)

	// envVarPattern captures the name of a "($ENVVAR)" fragment.
	envVarPattern = regexp.MustCompile(`\(\$([^)]+)\)`)

	// continuationPattern matches a description continuation line, indented
	// by at least ten spaces.
	continuationPattern = regexp.MustCompile(`^\s{10,}(.+)`)
)

// ParseSectioned scans a normalized sectioned-dialect help text line by line.
// The scanner carries a current-section and current-option cursor: a header
// line opens a section, an option line opens an option within it, and an
// indented continuation line sets the current option's description.
//
// A continuation line overwrites rather than appends, so only the last seen
// continuation survives for a multi-line description. This mirrors the help
// formats observed in the wild where the continuation is a single line.
func ParseSectioned(text string) *Sectioned {
	out := &Sectioned{}
	var section *Section
	var option *SectionOption

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if m := sectionHeaderPattern.FindStringSubmatch(line); m != nil && !strings.HasPrefix(trimmed, "-") {
			out.Sections = append(out.Sections, Section{Name: strings.TrimSpace(m[1])})
			section = &out.Sections[len(out.Sections)-1]
			option = nil
			continue
		}
		if section == nil {
			continue
		}

		if m := sectionOptionPattern.FindStringSubmatch(line); m != nil {
			opt := SectionOption{Flag: strings.TrimSpace(m[1])}
			if d := defaultPattern.FindStringSubmatch(line); d != nil {
				opt.Default = strings.TrimSpace(d[1])
			}
			if e := envVarPattern.FindStringSubmatch(line); e != nil {
				opt.EnvVar = strings.TrimSpace(e[1])
			}
			section.Options = append(section.Options, opt)
			option = &section.Options[len(section.Options)-1]
			continue
		}

		if option != nil && trimmed != "" && !strings.HasPrefix(trimmed, "--") {
			if m := continuationPattern.FindStringSubmatch(line); m != nil {
				option.Description = strings.TrimSpace(m[1])
			}
		}
	}
	return out
}
