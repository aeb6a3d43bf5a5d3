package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/reposearch/internal/cli"
	"github.com/pluqqy/reposearch/pkg/github"
)

var topicsFeatured bool

// NewTopicsCommand creates the topics command
func NewTopicsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topics",
		Short: "List browsable topics",
		Args:  cobra.NoArgs,
		RunE:  runTopics,
	}

	cmd.Flags().BoolVar(&topicsFeatured, "featured", false, "Only featured topics")

	return cmd
}

func runTopics(cmd *cobra.Command, args []string) error {
	var topics []github.TopicInfo
	for _, t := range github.PopularTopics() {
		if topicsFeatured && !t.Featured {
			continue
		}
		topics = append(topics, t)
	}

	format := outputFormat(cmd)
	if format != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), format, topics)
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("Topic", "Description")
	for _, t := range topics {
		table.Row(t.Name, cli.TruncateString(t.Description, 70))
	}
	table.Flush()
	return nil
}

// NewLanguagesCommand creates the languages command
func NewLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List languages offered as filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			languages := github.Languages()

			format := outputFormat(cmd)
			if format != string(cli.FormatText) {
				return cli.OutputResults(cmd.OutOrStdout(), format, languages)
			}

			for _, lang := range languages {
				fmt.Fprintln(cmd.OutOrStdout(), lang)
			}
			return nil
		},
	}
}
