package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/reposearch/internal/cli"
	"github.com/pluqqy/reposearch/pkg/qualifiers"
	"github.com/pluqqy/reposearch/pkg/search"
)

var suggestMatch string

// SuggestResult is the output of the suggest command
type SuggestResult struct {
	Input       string              `json:"input" yaml:"input"`
	Suggestions []search.Suggestion `json:"suggestions" yaml:"suggestions"`
	Recent      []string            `json:"recent" yaml:"recent"`
}

// NewSuggestCommand creates the suggest command
func NewSuggestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest [text]",
		Short: "List qualifier suggestions for search text",
		Long: `Suggest lists every registered qualifier and marks the ones already
used in the text together with their current value. With --match only
qualifiers whose prefix or label contains the word are listed.

Examples:
  reposearch suggest "cli language:go"
  reposearch suggest --match date`,
		RunE: runSuggest,
	}

	cmd.Flags().StringVar(&suggestMatch, "match", "", "Only list qualifiers matching this word")

	return cmd
}

func runSuggest(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	lexer, err := ctx.Lexer()
	if err != nil {
		return err
	}

	input := joinArgs(args)
	suggestions := lexer.ListSuggestions(lexer.Tokenize(input))

	if suggestMatch != "" {
		matched := make(map[string]bool)
		for _, def := range search.MatchSuggestions(lexer.Registry(), suggestMatch) {
			matched[def.Prefix] = true
		}
		filtered := suggestions[:0]
		for _, s := range suggestions {
			if matched[s.Prefix] {
				filtered = append(filtered, s)
			}
		}
		suggestions = filtered
	}

	result := SuggestResult{
		Input:       input,
		Suggestions: suggestions,
		Recent:      ctx.History().Items(),
	}

	format := outputFormat(cmd)
	if format != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}

	if len(result.Suggestions) == 0 {
		cli.PrintInfo("No qualifiers match %q", suggestMatch)
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("", "Qualifier", "Label", "Value")
	for _, s := range result.Suggestions {
		value := "-"
		if s.IsUsed {
			value = s.CurrentValue
		}
		table.Row(qualifiers.Glyph(s.Icon), s.Prefix, s.Label, value)
	}
	table.Flush()

	if len(result.Recent) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "\nRecent: %s\n", strings.Join(result.Recent, ", "))
	}
	return nil
}
