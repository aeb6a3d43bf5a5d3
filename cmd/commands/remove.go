package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/reposearch/internal/cli"
)

// RemoveResult is the output of the remove command
type RemoveResult struct {
	Input     string `json:"input" yaml:"input"`
	Qualifier string `json:"qualifier" yaml:"qualifier"`
	Value     string `json:"value" yaml:"value"`
	Result    string `json:"result" yaml:"result"`
}

// NewRemoveCommand creates the remove command
func NewRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <text> <qualifier> <value>",
		Short: "Remove one qualifier from search text",
		Long: `Remove deletes the first qualifier matching both name and value from
the text. The qualifier may be given with or without its colon.

Examples:
  reposearch remove "cli language:go stars:>5" language go
  reposearch remove "topic:a x topic:a" topic: a`,
		Args: cobra.ExactArgs(3),
		RunE: runRemove,
	}
}

func runRemove(cmd *cobra.Command, args []string) error {
	lexer, err := commandContext(cmd).Lexer()
	if err != nil {
		return err
	}

	result := RemoveResult{Input: args[0], Qualifier: args[1], Value: args[2]}
	result.Result = lexer.RemoveQualifier(result.Input, result.Qualifier, result.Value)

	format := outputFormat(cmd)
	if format != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Result)
	return nil
}
