package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/reposearch/internal/cli"
	"github.com/pluqqy/reposearch/pkg/search"
	"github.com/pluqqy/reposearch/pkg/tui"
)

var highlightFormat string

// HighlightResult is the structured output of the highlight command
type HighlightResult struct {
	Input  string               `json:"input" yaml:"input"`
	Markup string               `json:"markup" yaml:"markup"`
	Parts  []search.ColoredPart `json:"parts" yaml:"parts"`
}

// NewHighlightCommand creates the highlight command
func NewHighlightCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "highlight <text>",
		Short: "Render search text with highlighted qualifiers",
		Long: `Highlight renders search text the way the search bar shows it.

Formats:
  html   - span markup with one CSS class per token kind (default)
  ansi   - terminal colors
  parts  - one colored part per line

Examples:
  reposearch highlight "language:go cli"
  reposearch highlight --format ansi "stars:>10 topic:tui"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runHighlight,
	}

	cmd.Flags().StringVar(&highlightFormat, "format", "html", "Rendering (html, ansi, parts)")

	return cmd
}

func runHighlight(cmd *cobra.Command, args []string) error {
	lexer, err := commandContext(cmd).Lexer()
	if err != nil {
		return err
	}

	input := joinArgs(args)
	parts := lexer.ColorText(input)

	format := outputFormat(cmd)
	if format != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), format, HighlightResult{
			Input:  input,
			Markup: lexer.Highlight(input),
			Parts:  parts,
		})
	}

	out := cmd.OutOrStdout()
	switch highlightFormat {
	case "html":
		fmt.Fprintln(out, lexer.Highlight(input))
	case "ansi":
		fmt.Fprintln(out, tui.RenderParts(parts))
	case "parts":
		table := cli.NewTableFormatter(out)
		table.Header("Kind", "Text")
		for _, part := range parts {
			table.Row(string(part.Kind), fmt.Sprintf("%q", part.Text))
		}
		table.Flush()
	default:
		return fmt.Errorf("invalid highlight format: %s (must be: html, ansi, or parts)", highlightFormat)
	}
	return nil
}
