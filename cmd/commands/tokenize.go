package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/reposearch/internal/cli"
	"github.com/pluqqy/reposearch/pkg/search"
)

// TokenizeResult is the output of the tokenize command
type TokenizeResult struct {
	Input  string         `json:"input" yaml:"input"`
	Tokens []search.Token `json:"tokens" yaml:"tokens"`
}

// NewTokenizeCommand creates the tokenize command
func NewTokenizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize <text>",
		Short: "Split search text into qualifier, text and space tokens",
		Long: `Tokenize shows how search text is classified. Qualifiers from the
configured registry are recognized anywhere, even in the middle of a word.

Examples:
  reposearch tokenize "cli language:go stars:>100"
  reposearch tokenize "foorepo:x" -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: runTokenize,
	}
}

func runTokenize(cmd *cobra.Command, args []string) error {
	lexer, err := commandContext(cmd).Lexer()
	if err != nil {
		return err
	}

	input := joinArgs(args)
	result := TokenizeResult{Input: input, Tokens: lexer.Tokenize(input)}

	format := outputFormat(cmd)
	if format != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("Type", "Qualifier", "Value")
	for _, tok := range result.Tokens {
		qualifier := "-"
		if tok.Type == search.TokenQualifier {
			qualifier = tok.Qualifier
		}
		table.Row(tok.Type.String(), qualifier, fmt.Sprintf("%q", tok.Value))
	}
	table.Flush()
	return nil
}
