package markdown

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Severity ranks a verification finding.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
	SeverityInfo    Severity = "INFO"
)

// Issue is one verification finding, located by 1-based line number.
type Issue struct {
	Line     int
	Severity Severity
	Message  string
}

// HasErrors reports whether any issue is severe enough to fail a build.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

var (
	headingPattern    = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	exportHeading     = regexp.MustCompile(`^####\s+(.+)$`)
	typeLabelPattern  = regexp.MustCompile(`^\*\*Type:\*\*\s+(.+)$`)
	signatureLabel    = regexp.MustCompile(`^\*\*Signature:\*\*`)
	emptyParamsLabel  = regexp.MustCompile(`^\*\*Parameters:\*\*\s*$`)
	emptyReturnsLabel = regexp.MustCompile(`^\*\*Returns:\*\*\s*$`)
	doubleDashPattern = regexp.MustCompile(`-\s+-\s+`)
)

// Verify checks a rendered document for generation defects: stringified
// object artifacts, excessive blank runs, unclosed code fences, skipped
// heading levels, malformed export sections, empty labelled sections, and
// doubled dashes. Findings come back sorted by line.
func Verify(doc string) []Issue {
	lines := strings.Split(doc, "\n")

	var issues []Issue
	issues = append(issues, checkObjectArtifacts(lines)...)
	issues = append(issues, checkBlankRuns(lines)...)
	issues = append(issues, checkCodeFences(lines)...)
	issues = append(issues, checkHeadingHierarchy(lines)...)
	issues = append(issues, checkExportSections(lines)...)
	issues = append(issues, checkEmptySections(lines)...)
	issues = append(issues, checkDoubleDashes(lines)...)

	sort.SliceStable(issues, func(i, j int) bool { return issues[i].Line < issues[j].Line })
	return issues
}

// checkObjectArtifacts flags leaked JavaScript default stringification.
func checkObjectArtifacts(lines []string) []Issue {
	var issues []Issue
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), "[object object]") {
			issues = append(issues, Issue{
				Line:     i + 1,
				Severity: SeverityError,
				Message:  "Found [object Object] artifact: " + strings.TrimSpace(line),
			})
		}
	}
	return issues
}

func checkBlankRuns(lines []string) []Issue {
	var issues []Issue
	run, runStart := 0, 0

	flush := func() {
		if run >= 3 {
			issues = append(issues, Issue{
				Line:     runStart,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("Excessive blank lines: %d consecutive blank lines starting at line %d", run, runStart),
			})
		}
		run = 0
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			if run == 0 {
				runStart = i + 1
			}
			run++
		} else {
			flush()
		}
	}
	flush()
	return issues
}

func checkCodeFences(lines []string) []Issue {
	inFence := false
	fenceStart := 0
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			if inFence {
				inFence = false
			} else {
				inFence = true
				fenceStart = i + 1
			}
		}
	}
	if inFence {
		return []Issue{{
			Line:     fenceStart,
			Severity: SeverityError,
			Message:  fmt.Sprintf("Unclosed code block starting at line %d", fenceStart),
		}}
	}
	return nil
}

// checkHeadingHierarchy flags level jumps like H2 -> H4. Fenced code is
// skipped so shell comments inside usage blocks do not read as headings.
func checkHeadingHierarchy(lines []string) []Issue {
	var issues []Issue
	previous := 0
	inFence := false

	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		m := headingPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		level := len(m[1])
		if level == 1 {
			previous = 1
			continue
		}
		if previous > 0 && level > previous+1 {
			issues = append(issues, Issue{
				Line:     i + 1,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("Skipped heading level: H%d → H%d at %q", previous, level, strings.TrimSpace(m[2])),
			})
		}
		previous = level
	}
	return issues
}

// checkExportSections verifies every H4 export section carries a Type label
// and, informationally, a Signature block.
func checkExportSections(lines []string) []Issue {
	var issues []Issue
	var section string
	sectionLine := 0
	hasType, hasSignature := false, false

	flush := func() {
		if section == "" {
			return
		}
		if !hasType {
			issues = append(issues, Issue{
				Line:     sectionLine,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("Section %q missing **Type:** label", section),
			})
		}
		if !hasSignature {
			issues = append(issues, Issue{
				Line:     sectionLine,
				Severity: SeverityInfo,
				Message:  fmt.Sprintf("Section %q missing **Signature:**", section),
			})
		}
	}

	for i, line := range lines {
		if m := exportHeading.FindStringSubmatch(line); m != nil {
			flush()
			section = strings.TrimSpace(m[1])
			sectionLine = i + 1
			hasType, hasSignature = false, false
			continue
		}
		if typeLabelPattern.MatchString(line) {
			hasType = true
		}
		if signatureLabel.MatchString(line) {
			hasSignature = true
		}
	}
	flush()
	return issues
}

// checkEmptySections flags Parameters/Returns labels whose next non-blank
// line is already another label or heading.
func checkEmptySections(lines []string) []Issue {
	var issues []Issue
	for i, line := range lines {
		var label string
		switch {
		case emptyParamsLabel.MatchString(line):
			label = "**Parameters:**"
		case emptyReturnsLabel.MatchString(line):
			label = "**Returns:**"
		default:
			continue
		}
		for j := i + 1; j < len(lines); j++ {
			next := strings.TrimSpace(lines[j])
			if next == "" {
				continue
			}
			if strings.HasPrefix(next, "**") || strings.HasPrefix(next, "#") {
				issues = append(issues, Issue{
					Line:     i + 1,
					Severity: SeverityWarning,
					Message:  fmt.Sprintf("Empty %s section", label),
				})
			}
			break
		}
	}
	return issues
}

func checkDoubleDashes(lines []string) []Issue {
	var issues []Issue
	for i, line := range lines {
		if doubleDashPattern.MatchString(line) {
			issues = append(issues, Issue{
				Line:     i + 1,
				Severity: SeverityWarning,
				Message:  "Double dash found: " + strings.TrimSpace(line),
			})
		}
	}
	return issues
}
