// Package cli implements the cliscribe command-line interface.
//
// This package provides commands for probing a CLI's help output into a
// structured report, rendering reports and API export trees as Markdown,
// verifying generated documents, deduplicating release notes, closing issues
// referenced by merged pull requests, and managing the local file cache.
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - scan: Probe a command's help output recursively into a JSON report
//   - render: Render a scan report as a Markdown reference
//   - generate: Scan and render in one pass
//   - api: Render an API export tree as a Markdown reference
//   - verify: Check generated Markdown for structural problems
//   - notes: Clean up release notes
//   - issues: Close issues referenced by merged pull requests
//   - cache: Manage the local file cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"time"

	"github.com/cliscribe/cliscribe/pkg/scan"
)

const (
	// appName is the application name used for directories and display.
	appName = "cliscribe"

	// probeCacheTTL bounds how long cached help output stays fresh. Help text
	// changes with every release, so a day is plenty.
	probeCacheTTL = 24 * time.Hour

	// githubCacheTTL bounds cached GitHub API responses.
	githubCacheTTL = 15 * time.Minute
)

// countNodes returns the number of nodes in a scanned command tree,
// including error placeholders.
func countNodes(node *scan.CommandNode) int {
	if node == nil {
		return 0
	}
	total := 1
	for _, child := range node.Children {
		total += countNodes(child)
	}
	return total
}
