package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cliscribe/cliscribe/pkg/integrations/github"
)

// issuesOpts holds the command-line flags for the issues commands.
type issuesOpts struct {
	repo    string // "owner/name"
	token   string // GitHub API token (falls back to GITHUB_TOKEN)
	comment string // close comment override
	dryRun  bool   // report what would happen without mutating anything
}

// splitRepo splits an "owner/name" repository slug.
func splitRepo(slug string) (owner, repo string, err error) {
	parts := strings.Split(slug, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository %q (want owner/name)", slug)
	}
	return parts[0], parts[1], nil
}

// newIssuesCmd creates the issues command group.
func newIssuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issues",
		Short: "Close issues referenced by merged pull requests",
	}
	cmd.AddCommand(newIssuesCloseCmd())
	return cmd
}

// newIssuesCloseCmd creates the "issues close" subcommand.
func newIssuesCloseCmd() *cobra.Command {
	var opts issuesOpts

	cmd := &cobra.Command{
		Use:   "close <pr-number> [pr-number...]",
		Short: "Close issues referenced by merged pull requests",
		Long: `Scan the title and body of merged pull requests for issue references
("Closes #123", "Fixes owner/repo#456", full issue URLs) and close each
referenced issue that is still open, leaving an explanatory comment.

Unmerged pull requests are rejected. Use --dry-run to see what would be
closed without touching anything.

Examples:
  cliscribe issues close 1234 --repo myorg/mytool
  cliscribe issues close 1234 1235 --repo myorg/mytool --dry-run`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo, err := splitRepo(opts.repo)
			if err != nil {
				return err
			}
			token := opts.token
			if token == "" {
				token = os.Getenv("GITHUB_TOKEN")
			}
			if token == "" && !opts.dryRun {
				return fmt.Errorf("a GitHub token is required (--token or GITHUB_TOKEN)")
			}

			client, err := github.NewClient(token, githubCacheTTL)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			failed := false
			for _, arg := range args {
				prNumber, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid pull request number %q", arg)
				}

				comment := opts.comment
				if comment == "" {
					comment = github.CloseComment(owner, repo, prNumber)
				}

				logger.Debug("processing pull request", "pr", prNumber)
				results, err := client.CloseReferencedIssues(ctx, owner, repo, prNumber, comment, opts.dryRun)
				if err != nil {
					printError("PR #%d: %v", prNumber, err)
					failed = true
					continue
				}
				if len(results) == 0 {
					printInfo("PR #%d: no issue references", prNumber)
					continue
				}
				for _, result := range results {
					printCloseResult(prNumber, result)
					if result.Err != nil {
						failed = true
					}
				}
			}
			if failed {
				return fmt.Errorf("some issues could not be closed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.repo, "repo", "", "repository as owner/name (required)")
	cmd.Flags().StringVar(&opts.token, "token", "", "GitHub API token (defaults to GITHUB_TOKEN)")
	cmd.Flags().StringVar(&opts.comment, "comment", "", "close comment (defaults to a reference to the PR)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "report without closing anything")
	_ = cmd.MarkFlagRequired("repo")

	return cmd
}

// printCloseResult prints one issue outcome with an appropriate status line.
func printCloseResult(prNumber int, result github.CloseResult) {
	ref := result.Ref.String()
	switch result.Action {
	case github.ActionClosed:
		printSuccess("PR #%d: closed %s", prNumber, ref)
	case github.ActionWouldClose:
		printInfo("PR #%d: would close %s", prNumber, ref)
	case github.ActionAlreadyClosed:
		printDetail("PR #%d: %s already closed", prNumber, ref)
	case github.ActionNotFound:
		printWarning("PR #%d: %s not found", prNumber, ref)
	default:
		if result.Err != nil {
			printError("PR #%d: %s: %v", prNumber, ref, result.Err)
		}
	}
}
