// Package scan walks a command-line tool's help surface by live invocation.
//
// A [Scanner] probes "path --help" recursively, classifies the captured text
// with the help package, and assembles a [CommandNode] tree. The walk is
// depth-first and single-threaded; the only blocking operation is the probe
// itself, which enforces its own timeout.
//
// Probing an arbitrary tool can fail in many node-local ways: a command may
// hang, crash while printing its options, or silently print its parent's
// help for an unknown subcommand. None of these abort the scan. Each failure
// becomes an error node in the tree so the rendered document stays
// structurally complete, with a stub where the broken command would be.
//
// Termination is guaranteed by two guards owned by a single scan pass: a
// visited set keyed by the joined argument path, and a maximum recursion
// depth. Independent scans never share guard state.
package scan
