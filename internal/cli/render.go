package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cliscribe/cliscribe/pkg/markdown"
	"github.com/cliscribe/cliscribe/pkg/scan"
)

// renderOpts holds the command-line flags shared by the render and generate
// commands. Flags override values from the template file, which in turn
// overrides the built-in defaults.
type renderOpts struct {
	output   string // output file path (stdout if empty)
	template string // TOML template file path
	title    string // document title override
	layout   string // option layout override: "list" or "table"
	maxDepth int    // TOC/body depth override
	noTOC    bool   // omit the table of contents
	noMeta   bool   // omit the generated/command metadata block
}

// registerRenderFlags binds the render flags onto cmd.
func registerRenderFlags(cmd *cobra.Command, opts *renderOpts) {
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "TOML render template")
	cmd.Flags().StringVar(&opts.title, "title", "", "document title")
	cmd.Flags().StringVar(&opts.layout, "layout", "", "option layout: list (default), table")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "maximum depth rendered")
	cmd.Flags().BoolVar(&opts.noTOC, "no-toc", false, "omit the table of contents")
	cmd.Flags().BoolVar(&opts.noMeta, "no-metadata", false, "omit the metadata block")
}

// renderConfig resolves the effective render configuration from defaults,
// the template file, and flag overrides, in that order.
func (o *renderOpts) renderConfig() (markdown.Config, error) {
	cfg := markdown.DefaultConfig()
	if o.template != "" {
		loaded, err := markdown.LoadConfig(o.template)
		if err != nil {
			return markdown.Config{}, err
		}
		cfg = loaded
	}
	if o.title != "" {
		cfg.Title = o.title
	}
	if o.layout != "" {
		cfg.OptionLayout = o.layout
	}
	if o.maxDepth > 0 {
		cfg.MaxDepth = o.maxDepth
	}
	if o.noTOC {
		cfg.IncludeTOC = false
	}
	if o.noMeta {
		cfg.IncludeMetadata = false
	}
	if err := cfg.Validate(); err != nil {
		return markdown.Config{}, err
	}
	return cfg, nil
}

// newRenderCmd creates the render command for turning a scan report into a
// Markdown reference.
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <report.json>",
		Short: "Render a scan report as a Markdown reference",
		Long: `Render a previously scanned JSON report as a Markdown command reference.

Examples:
  cliscribe render report.json -o CLI.md
  cliscribe render report.json --layout table --title "My Tool Reference"
  cliscribe render report.json -t template.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.renderConfig()
			if err != nil {
				return err
			}
			report, err := scan.ImportJSON(args[0])
			if err != nil {
				return fmt.Errorf("loading scan report: %w", err)
			}
			return writeDocument(opts.output, markdown.RenderCommandTree(report, cfg))
		},
	}

	registerRenderFlags(cmd, &opts)
	return cmd
}

// newGenerateCmd creates the generate command, which scans and renders in a
// single pass.
func newGenerateCmd() *cobra.Command {
	sOpts := scanOpts{maxDepth: scan.DefaultMaxDepth, timeout: scan.DefaultTimeout}
	var rOpts renderOpts

	cmd := &cobra.Command{
		Use:   "generate <command> [args...]",
		Short: "Scan a command and render the Markdown reference in one pass",
		Long: `Scan a command's help output and render the Markdown reference without
writing an intermediate report file.

Examples:
  cliscribe generate kubectl -o KUBECTL.md
  cliscribe generate mytool --max-depth 3 --layout table`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rOpts.renderConfig()
			if err != nil {
				return err
			}
			// One --max-depth flag drives both the prober and the renderer.
			if rOpts.maxDepth > 0 {
				sOpts.maxDepth = rOpts.maxDepth
			}
			report, err := runScan(cmd.Context(), args, &sOpts)
			if err != nil {
				return err
			}
			return writeDocument(rOpts.output, markdown.RenderCommandTree(report, cfg))
		},
	}

	registerRenderFlags(cmd, &rOpts)
	cmd.Flags().DurationVar(&sOpts.timeout, "timeout", sOpts.timeout, "timeout per help invocation")
	cmd.Flags().BoolVar(&sOpts.refresh, "refresh", false, "bypass cached probe output")
	cmd.Flags().BoolVar(&sOpts.noCache, "no-cache", false, "disable the probe cache")

	return cmd
}
