package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/reposearch/internal/cli"
	"github.com/pluqqy/reposearch/pkg/github"
)

var collectionsFetch bool

// CollectionOutput is the printable form of a collection
type CollectionOutput struct {
	ID           string             `json:"id" yaml:"id"`
	Title        string             `json:"title" yaml:"title"`
	Description  string             `json:"description" yaml:"description"`
	Query        string             `json:"query" yaml:"query"`
	Repositories []RepositoryOutput `json:"repositories,omitempty" yaml:"repositories,omitempty"`
}

// NewCollectionsCommand creates the collections command
func NewCollectionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collections [id]",
		Short: "Browse curated repository collections",
		Long: `Collections lists the curated collections. Given an id, the
collection's top repositories are fetched. With --fetch every collection is
fetched concurrently.

Examples:
  reposearch collections
  reposearch collections developer-tools
  reposearch collections --fetch -o yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCollections,
	}

	cmd.Flags().BoolVar(&collectionsFetch, "fetch", false, "Fetch the repositories of every collection")

	return cmd
}

func runCollections(cmd *cobra.Command, args []string) error {
	collections := github.Collections()
	fetch := collectionsFetch

	if len(args) == 1 {
		col, err := github.FindCollection(args[0])
		if err != nil {
			return err
		}
		collections = []github.Collection{col}
		fetch = true
	}

	if fetch {
		ctx := commandContext(cmd)
		settings := ctx.LoadSettingsWithDefault()
		client, err := ctx.Client()
		if err != nil {
			return err
		}

		reqCtx, cancel := requestContext(cmd, settings.API.Timeout)
		defer cancel()

		collections, err = client.FetchCollections(reqCtx, collections)
		if err != nil {
			return err
		}
	}

	result := make([]CollectionOutput, 0, len(collections))
	for _, col := range collections {
		result = append(result, CollectionOutput{
			ID:           col.ID,
			Title:        col.Title,
			Description:  col.Description,
			Query:        col.Query,
			Repositories: toRepositoryOutputs(col.Repos),
		})
	}

	format := outputFormat(cmd)
	if format != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}

	out := cmd.OutOrStdout()
	if !fetch {
		table := cli.NewTableFormatter(out)
		table.Header("ID", "Title", "Query")
		for _, col := range result {
			table.Row(col.ID, col.Title, col.Query)
		}
		table.Flush()
		return nil
	}

	for _, col := range result {
		fmt.Fprintf(out, "\n%s\n", strings.ToUpper(col.Title))
		fmt.Fprintln(out, col.Description)
		printRepositoryTable(cmd, col.Repositories)
	}
	return nil
}
