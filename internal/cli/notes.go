package cli

import (
	"github.com/spf13/cobra"

	"github.com/cliscribe/cliscribe/pkg/relnotes"
)

// newNotesCmd creates the notes command group.
func newNotesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Clean up release notes",
	}
	cmd.AddCommand(newNotesDedupeCmd())
	return cmd
}

// newNotesDedupeCmd creates the "notes dedupe" subcommand.
func newNotesDedupeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "dedupe <notes.md>",
		Short: "Remove duplicate release-note entries",
		Long: `Remove duplicate entries from auto-generated release notes: exact duplicate
lines, link-less bullets shadowed by a pull-request bullet with the same
description, repeated description/PR pairs, and commit-only bullets sharing
a description. The file is rewritten in place unless --output is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output
			if out == "" {
				out = args[0]
			}
			stats, err := relnotes.DedupeFile(args[0], out)
			if err != nil {
				return err
			}
			if stats.TotalRemoved == 0 {
				printInfo("No duplicates found")
				return nil
			}
			printSuccess("Removed %d duplicate entries (%d -> %d lines)",
				stats.TotalRemoved, stats.OriginalLines, stats.FinalLines)
			printDetail("exact duplicates:       %d", stats.ExactDuplicates)
			printDetail("missing-PR duplicates:  %d", stats.NoPRDuplicates)
			printDetail("same-PR duplicates:     %d", stats.PRDuplicates)
			printDetail("commit-only duplicates: %d", stats.CommitOnlyDuplicates)
			printFile(out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to in-place)")
	return cmd
}
