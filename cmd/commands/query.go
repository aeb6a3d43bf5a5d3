package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/pluqqy/reposearch/internal/cli"
	"github.com/pluqqy/reposearch/pkg/search"
)

var (
	queryFilters search.Filters
	queryCopy    bool
)

// copyToClipboard is replaced in tests
var copyToClipboard = clipboard.WriteAll

// QueryResult is the output of the query command
type QueryResult struct {
	Input   string         `json:"input" yaml:"input"`
	Filters search.Filters `json:"filters" yaml:"filters"`
	Query   string         `json:"query" yaml:"query"`
}

// NewQueryCommand creates the query command
func NewQueryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query [text]",
		Short: "Compose the upstream search query",
		Long: `Query builds the string sent to the GitHub search API from free text
and structured filters. A filter is skipped when the text already contains
its qualifier. A leading repo: qualifier without an owner/name value is sent
as plain text.

Examples:
  reposearch query "cli tool" --min-stars 100 --language go
  reposearch query --topic tui --topic cli --has-tests
  reposearch query "repo:charmbracelet/bubbletea" --copy`,
		RunE: runQuery,
	}

	addFilterFlags(cmd, &queryFilters)
	cmd.Flags().BoolVar(&queryCopy, "copy", false, "Copy the query to the clipboard")

	return cmd
}

// addFilterFlags binds the structured filter flags to filters
func addFilterFlags(cmd *cobra.Command, filters *search.Filters) {
	*filters = search.Filters{}
	cmd.Flags().IntVar(&filters.MinStars, "min-stars", 0, "Minimum number of stars")
	cmd.Flags().StringVar(&filters.Language, "language", "", "Primary language (\"all\" for any)")
	cmd.Flags().StringSliceVar(&filters.Topics, "topic", nil, "Topic filter (repeatable)")
	cmd.Flags().BoolVar(&filters.HasTests, "has-tests", false, "Only repositories tagged with the testing topic")
	cmd.Flags().BoolVar(&filters.IsTemplate, "template", false, "Only template repositories")
}

func runQuery(cmd *cobra.Command, args []string) error {
	lexer, err := commandContext(cmd).Lexer()
	if err != nil {
		return err
	}

	input := joinArgs(args)
	result := QueryResult{
		Input:   input,
		Filters: queryFilters,
		Query:   lexer.BuildQuery(input, queryFilters),
	}

	if queryCopy {
		if err := copyToClipboard(result.Query); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
	}

	format := outputFormat(cmd)
	if format != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Query)
	if queryCopy {
		cli.PrintSuccess("Copied query to clipboard")
	}
	return nil
}
