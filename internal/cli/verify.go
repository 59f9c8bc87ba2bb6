package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/cliscribe/cliscribe/pkg/markdown"
)

// errVerifyFailed signals that at least one document had error-severity
// issues. The message doubles as the process exit line.
var errVerifyFailed = errors.New("documentation verification failed")

// newVerifyCmd creates the verify command for checking generated Markdown.
func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file.md> [file.md...]",
		Short: "Check generated Markdown for structural problems",
		Long: `Check generated Markdown documents for rendering artifacts: leftover
[object Object] strings, unclosed code fences, skipped heading levels,
excessive blank lines, and empty or unlabeled sections.

The command exits non-zero when any document has error-severity issues.
Warnings and info notes are reported but do not fail the run.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := false
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				issues := markdown.Verify(string(data))
				if len(issues) == 0 {
					printSuccess("%s: clean", path)
					continue
				}
				if markdown.HasErrors(issues) {
					failed = true
				}
				printInfo("%s: %d issues", path, len(issues))
				for _, issue := range issues {
					switch issue.Severity {
					case markdown.SeverityError:
						printError("line %d: %s", issue.Line, issue.Message)
					case markdown.SeverityWarning:
						printWarning("line %d: %s", issue.Line, issue.Message)
					default:
						printDetail("line %d: %s", issue.Line, issue.Message)
					}
				}
			}
			if failed {
				return errVerifyFailed
			}
			return nil
		},
	}
}
