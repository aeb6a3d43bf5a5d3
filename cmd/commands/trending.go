package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pluqqy/reposearch/internal/cli"
	"github.com/pluqqy/reposearch/pkg/github"
)

// now is replaced in tests
var now = time.Now

// TrendingResult is the output of the trending command
type TrendingResult struct {
	Query        string             `json:"query" yaml:"query"`
	Repositories []RepositoryOutput `json:"repositories" yaml:"repositories"`
}

// NewTrendingCommand creates the trending command
func NewTrendingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "trending",
		Short: "Show popular repositories created this week",
		Long: `Trending lists repositories created in the last seven days with at
least 100 stars, most starred first.`,
		Args: cobra.NoArgs,
		RunE: runTrending,
	}
}

func runTrending(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	settings := ctx.LoadSettingsWithDefault()

	client, err := ctx.Client()
	if err != nil {
		return err
	}

	reqCtx, cancel := requestContext(cmd, settings.API.Timeout)
	defer cancel()

	current := now()
	repos, err := client.Trending(reqCtx, current)
	if err != nil {
		return err
	}

	result := TrendingResult{
		Query:        github.TrendingQuery(current),
		Repositories: toRepositoryOutputs(repos),
	}

	format := outputFormat(cmd)
	if format != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}

	if len(result.Repositories) == 0 {
		cli.PrintInfo("No trending repositories this week")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "TRENDING (%s)\n", result.Query)
	printRepositoryTable(cmd, result.Repositories)
	return nil
}
