package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pluqqy/reposearch/internal/cli"
	"github.com/pluqqy/reposearch/pkg/github"
)

// commandContext builds a CommandContext from the persistent --config-dir flag
func commandContext(cmd *cobra.Command) *cli.CommandContext {
	dir, _ := cmd.Flags().GetString("config-dir")
	return cli.NewCommandContext(dir, slog.Default().With("component", "cli"))
}

// outputFormat returns the --output flag value, text when unset
func outputFormat(cmd *cobra.Command) string {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		return string(cli.FormatText)
	}
	return format
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}

// requestContext bounds an API call by the configured timeout
func requestContext(cmd *cobra.Command, timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout <= 0 {
		timeout = github.DefaultTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// RepositoryOutput is the printable form of a repository
type RepositoryOutput struct {
	FullName    string   `json:"full_name" yaml:"full_name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Language    string   `json:"language,omitempty" yaml:"language,omitempty"`
	Stars       int      `json:"stars" yaml:"stars"`
	Forks       int      `json:"forks" yaml:"forks"`
	URL         string   `json:"url" yaml:"url"`
	Topics      []string `json:"topics,omitempty" yaml:"topics,omitempty"`
}

func toRepositoryOutputs(repos []github.Repository) []RepositoryOutput {
	out := make([]RepositoryOutput, 0, len(repos))
	for _, r := range repos {
		out = append(out, RepositoryOutput{
			FullName:    r.FullName,
			Description: r.DescriptionText(),
			Language:    r.LanguageText(),
			Stars:       r.StargazersCount,
			Forks:       r.ForksCount,
			URL:         r.HTMLURL,
			Topics:      r.Topics,
		})
	}
	return out
}

func printRepositoryTable(cmd *cobra.Command, repos []RepositoryOutput) {
	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("Repository", "Stars", "Language", "Description")
	for _, r := range repos {
		lang := r.Language
		if lang == "" {
			lang = "-"
		}
		table.Row(
			cli.TruncateString(r.FullName, 40),
			cli.FormatCount(r.Stars),
			lang,
			cli.TruncateString(r.Description, 60),
		)
	}
	table.Flush()
}
