package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/reposearch/internal/cli"
	"github.com/pluqqy/reposearch/pkg/github"
	"github.com/pluqqy/reposearch/pkg/search"
)

var (
	searchFilters search.Filters
	searchSort    string
	searchOrder   string
	searchPage    int
	searchPerPage int
)

// SearchResultOutput represents the formatted search results
type SearchResultOutput struct {
	Query        string             `json:"query" yaml:"query"`
	TotalCount   int                `json:"total_count" yaml:"total_count"`
	Page         int                `json:"page" yaml:"page"`
	Repositories []RepositoryOutput `json:"repositories" yaml:"repositories"`
}

// NewSearchCommand creates the search command
func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <text>",
		Short: "Search GitHub repositories",
		Long: `Search runs a repository search against the GitHub API.

Qualifiers typed in the text are passed through; structured filters are
added only when the text does not already use the same qualifier. Sort,
order and page size default to the values in settings.yaml.

Examples:
  reposearch search "language:go stars:>1000 tui"
  reposearch search cli --min-stars 100 --topic terminal
  reposearch search "http router" --sort updated --per-page 10 -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSearch,
	}

	addFilterFlags(cmd, &searchFilters)
	cmd.Flags().StringVar(&searchSort, "sort", "", "Sort by stars, forks, updated or help-wanted-issues")
	cmd.Flags().StringVar(&searchOrder, "order", "", "Sort order (asc, desc)")
	cmd.Flags().IntVar(&searchPage, "page", 1, "Result page")
	cmd.Flags().IntVar(&searchPerPage, "per-page", 0, "Results per page (1-100)")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	settings := ctx.LoadSettingsWithDefault()

	sortName := settings.Search.Sort
	if searchSort != "" {
		sortName = searchSort
	}
	sort, ok := github.ParseSort(sortName)
	if !ok {
		return fmt.Errorf("invalid sort: %s (must be: stars, forks, updated, or help-wanted-issues)", sortName)
	}

	orderName := settings.Search.Order
	if searchOrder != "" {
		orderName = searchOrder
	}
	order, ok := github.ParseOrder(orderName)
	if !ok {
		return fmt.Errorf("invalid order: %s (must be: asc or desc)", orderName)
	}

	perPage := settings.Search.PerPage
	if cmd.Flags().Changed("per-page") {
		perPage = searchPerPage
	}
	if err := cli.ValidatePage(searchPage, perPage); err != nil {
		return err
	}

	client, err := ctx.Client()
	if err != nil {
		return err
	}

	params := github.SearchParams{
		Query:   joinArgs(args),
		Filters: searchFilters,
		Sort:    sort,
		Order:   order,
		Page:    searchPage,
		PerPage: perPage,
	}

	reqCtx, cancel := requestContext(cmd, settings.API.Timeout)
	defer cancel()

	resp, err := client.SearchRepositories(reqCtx, params)
	if err != nil {
		return err
	}

	lexer, err := ctx.Lexer()
	if err != nil {
		return err
	}

	result := SearchResultOutput{
		Query:        lexer.BuildQuery(params.Query, params.Filters),
		TotalCount:   resp.TotalCount,
		Page:         searchPage,
		Repositories: toRepositoryOutputs(resp.Items),
	}

	format := outputFormat(cmd)
	if format != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}

	if len(result.Repositories) == 0 {
		cli.PrintInfo("No repositories found for %q", result.Query)
		return nil
	}

	printRepositoryTable(cmd, result.Repositories)
	fmt.Fprintf(cmd.OutOrStdout(), "\nShowing %d of %s repositories (page %d)\n",
		len(result.Repositories), cli.FormatCount(result.TotalCount), result.Page)
	return nil
}
