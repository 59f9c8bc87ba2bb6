package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cliscribe/cliscribe/pkg/buildinfo"
)

// Execute runs the cliscribe CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands, configures
// logging based on the --verbose flag, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd creates the root cobra command with all subcommands registered.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Cliscribe turns CLI help output into Markdown references",
		Long:         `Cliscribe probes a command-line tool's --help output recursively, builds a structured report of every subcommand, and renders it as a deterministic Markdown reference. It also renders API export trees, verifies generated documents, and cleans up release notes.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newScanCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newAPICmd())
	root.AddCommand(newVerifyCmd())
	root.AddCommand(newNotesCmd())
	root.AddCommand(newIssuesCmd())
	root.AddCommand(newCacheCmd())
	root.AddCommand(newCompletionCmd())

	return root
}

// writeDocument writes a rendered document to path, or to stdout when path
// is empty.
func writeDocument(path, doc string) error {
	if path == "" {
		fmt.Print(doc)
		return nil
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	printSuccess("Wrote document")
	printFile(path)
	return nil
}
