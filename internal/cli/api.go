package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cliscribe/cliscribe/pkg/export"
	"github.com/cliscribe/cliscribe/pkg/markdown"
)

// newAPICmd creates the api command for rendering an API export tree.
func newAPICmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "api <exports.json>",
		Short: "Render an API export tree as a Markdown reference",
		Long: `Render a JSON export tree (folders, files, exports, members) as a Markdown
API reference.

Examples:
  cliscribe api exports.json -o API.md
  cliscribe api exports.json --title "SDK Reference"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.renderConfig()
			if err != nil {
				return err
			}
			// The generic default title is meant for command references.
			if opts.title == "" && opts.template == "" {
				cfg.Title = "API Reference"
			}
			ref, err := export.ImportJSON(args[0])
			if err != nil {
				return fmt.Errorf("loading export tree: %w", err)
			}
			return writeDocument(opts.output, markdown.RenderAPIReference(ref, cfg))
		},
	}

	registerRenderFlags(cmd, &opts)
	return cmd
}
