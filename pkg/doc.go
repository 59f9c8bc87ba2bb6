// Package pkg provides the core libraries for cliscribe documentation generation.
//
// # Overview
//
// Cliscribe turns a CLI tool's --help output into a structured Markdown
// reference. The pkg directory is organized into four main areas:
//
//  1. [help] - Help-text normalization, classification, and dialect parsing
//  2. [scan] - Live probing of a command tree into a JSON report
//  3. [markdown] - Deterministic rendering and document verification
//  4. [integrations] - Cached, retrying HTTP clients (GitHub)
//
// Supporting packages: [export] models API export trees, [relnotes]
// deduplicates release notes, [httputil] provides the file cache and retry
// helpers, and [buildinfo] carries ldflags version information.
//
// # Architecture
//
// The typical data flow through cliscribe:
//
//	command --help (recursive)
//	         ↓
//	scan.Scanner → scan.Report (JSON)
//	         ↓
//	markdown.RenderCommandTree → reference document
//	         ↓
//	markdown.Verify → structural checks
//
// Help output that cannot be parsed still lands in the report: nodes degrade
// from structured to sectioned to raw, and probe failures become error nodes,
// so a rendered reference always covers the full tree.
package pkg
