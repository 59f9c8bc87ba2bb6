package relnotes

import (
	"fmt"
	"os"
	"strings"
)

// Stats counts removals per deduplication rule.
type Stats struct {
	// ExactDuplicates counts lines removed because an identical line
	// appeared earlier in the document.
	ExactDuplicates int

	// NoPRDuplicates counts link-less bullets removed because another
	// bullet with the same description carries a pull request link.
	NoPRDuplicates int

	// PRDuplicates counts bullets removed because an earlier bullet shares
	// both description and pull request number.
	PRDuplicates int

	// CommitOnlyDuplicates counts commit-only bullets removed because an
	// earlier commit-only bullet shares the description.
	CommitOnlyDuplicates int

	TotalRemoved  int
	OriginalLines int
	FinalLines    int
}

// Dedupe removes duplicate release-note entries from lines and reports what
// was removed. Rules apply in order, each on the survivors of the previous:
//
//  1. Exact duplicate lines keep only their first occurrence.
//  2. When a description appears both with and without a pull request link,
//     the link-less bullets are dropped.
//  3. Bullets sharing a description and pull request number keep the first.
//  4. Commit-only bullets (no pull request link) sharing a description keep
//     the first.
//
// Non-bullet lines (headings, prose, blanks) only participate in rule 1.
func Dedupe(lines []string) ([]string, Stats) {
	stats := Stats{OriginalLines: len(lines)}

	seen := make(map[string]bool, len(lines))
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if seen[line] {
			stats.ExactDuplicates++
			continue
		}
		seen[line] = true
		kept = append(kept, line)
	}

	entries := make([]*Entry, len(kept))
	for i, line := range kept {
		if e, ok := ParseEntry(line); ok && e.Description != "" {
			entries[i] = &e
		}
	}
	remove := make(map[int]bool)

	byDesc := make(map[string][]int)
	for i, e := range entries {
		if e != nil {
			byDesc[e.Description] = append(byDesc[e.Description], i)
		}
	}
	for _, group := range byDesc {
		if len(group) < 2 {
			continue
		}
		hasPR := false
		for _, i := range group {
			if entries[i].PRNumber != "" {
				hasPR = true
				break
			}
		}
		if !hasPR {
			continue
		}
		for _, i := range group {
			if entries[i].PRNumber == "" {
				remove[i] = true
				stats.NoPRDuplicates++
			}
		}
	}

	type descPR struct{ desc, pr string }
	byDescPR := make(map[descPR][]int)
	for i, e := range entries {
		if e != nil && !remove[i] && e.PRNumber != "" {
			key := descPR{e.Description, e.PRNumber}
			byDescPR[key] = append(byDescPR[key], i)
		}
	}
	for _, group := range byDescPR {
		for _, i := range group[1:] {
			remove[i] = true
			stats.PRDuplicates++
		}
	}

	byCommitDesc := make(map[string][]int)
	for i, e := range entries {
		if e != nil && !remove[i] && e.PRNumber == "" && e.HasCommit {
			byCommitDesc[e.Description] = append(byCommitDesc[e.Description], i)
		}
	}
	for _, group := range byCommitDesc {
		for _, i := range group[1:] {
			remove[i] = true
			stats.CommitOnlyDuplicates++
		}
	}

	out := make([]string, 0, len(kept))
	for i, line := range kept {
		if !remove[i] {
			out = append(out, line)
		}
	}
	stats.TotalRemoved = stats.ExactDuplicates + stats.NoPRDuplicates +
		stats.PRDuplicates + stats.CommitOnlyDuplicates
	stats.FinalLines = len(out)
	return out, stats
}

// DedupeFile reads the release notes at inPath, deduplicates them, and writes
// the result to outPath. The two paths may be equal for in-place cleanup. A
// trailing newline in the input is preserved.
func DedupeFile(inPath, outPath string) (Stats, error) {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return Stats{}, fmt.Errorf("reading release notes: %w", err)
	}
	text := string(data)
	trailing := strings.HasSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\n")

	lines, stats := Dedupe(strings.Split(text, "\n"))
	result := strings.Join(lines, "\n")
	if trailing {
		result += "\n"
	}
	if err := os.WriteFile(outPath, []byte(result), 0o644); err != nil {
		return Stats{}, fmt.Errorf("writing release notes: %w", err)
	}
	return stats, nil
}
