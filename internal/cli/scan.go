package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cliscribe/cliscribe/pkg/httputil"
	"github.com/cliscribe/cliscribe/pkg/scan"
)

// scanOpts holds the command-line flags for the scan command.
type scanOpts struct {
	output   string        // report file path (stdout if empty)
	maxDepth int           // maximum subcommand nesting depth
	timeout  time.Duration // per-invocation timeout
	refresh  bool          // bypass cached probe output
	noCache  bool          // disable the probe cache entirely
}

// newScanCmd creates the scan command for probing a CLI's help output.
//
// Default options:
//   - max-depth: 5 levels of subcommand nesting
//   - timeout: 60s per help invocation
//   - probe output cached under ~/.cache/cliscribe for a day
func newScanCmd() *cobra.Command {
	opts := scanOpts{maxDepth: scan.DefaultMaxDepth, timeout: scan.DefaultTimeout}

	cmd := &cobra.Command{
		Use:   "scan <command> [args...]",
		Short: "Probe a command's help output into a structured report",
		Long: `Probe a command's --help output recursively and write a JSON report of the
full subcommand tree. Probing failures (missing help, crashes, cycles) become
error nodes in the report rather than aborting the scan.

Examples:
  cliscribe scan kubectl                      # Scan kubectl into stdout
  cliscribe scan docker compose -o report.json
  cliscribe scan mytool --max-depth 3 --refresh`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := runScan(cmd.Context(), args, &opts)
			if err != nil {
				return err
			}
			return writeReport(report, opts.output)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "report file (stdout if empty)")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", opts.maxDepth, "maximum subcommand depth")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", opts.timeout, "timeout per help invocation")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached probe output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the probe cache")

	return cmd
}

// runScan probes the command tree and returns the report.
func runScan(ctx context.Context, command []string, opts *scanOpts) (*scan.Report, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner, err := newRunner(opts)
	if err != nil {
		return nil, err
	}

	scanner := scan.New(runner, scan.Options{
		MaxDepth: opts.maxDepth,
		Logger: func(msg string, args ...any) {
			logger.Debug(msg, args...)
		},
	})

	report, err := scanner.Scan(ctx, command...)
	if err != nil {
		return nil, fmt.Errorf("scanning %q: %w", strings.Join(command, " "), err)
	}

	prog.done(fmt.Sprintf("Scanned %d commands", countNodes(report.Root)))
	return report, nil
}

// newRunner builds the probe runner, wrapping it in a cache unless disabled.
func newRunner(opts *scanOpts) (scan.Runner, error) {
	exec := scan.ExecRunner{Timeout: opts.timeout}
	if opts.noCache {
		return exec, nil
	}
	cache, err := httputil.NewCache("", probeCacheTTL)
	if err != nil {
		// A missing home directory should not block a scan.
		return exec, nil
	}
	return scan.CachingRunner{
		Runner:  exec,
		Cache:   cache.Namespace("probe"),
		Refresh: opts.refresh,
	}, nil
}

// writeReport writes the report JSON to path, or to stdout when path is empty.
func writeReport(report *scan.Report, path string) error {
	if path == "" {
		return report.WriteJSON(os.Stdout)
	}
	if err := report.ExportJSON(path); err != nil {
		return err
	}
	printSuccess("Wrote scan report")
	printFile(path)
	return nil
}
