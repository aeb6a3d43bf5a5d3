package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pluqqy/reposearch/internal/cli"
	"github.com/pluqqy/reposearch/pkg/files"
	"github.com/pluqqy/reposearch/pkg/tui"
)

var (
	rootOutput    string
	rootQuiet     bool
	rootNoColor   bool
	rootVerbose   bool
	rootYes       bool
	rootConfigDir string
)

// NewRootCommand creates the reposearch command tree
func NewRootCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reposearch",
		Short: "Search GitHub repositories with highlighted qualifiers",
		Long: `reposearch searches GitHub repositories from the terminal.

Type free text mixed with qualifiers such as language:go or stars:>100.
Qualifiers are highlighted as you type and a dropdown suggests the ones
you have not used yet. Running reposearch without a subcommand opens the
interactive search screen.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cli.SetGlobalFlags(rootQuiet, rootNoColor, rootYes)
			cli.SetupLogging(rootVerbose)
			return cli.ValidateOutputFormat(rootOutput)
		},
		RunE: runTUI,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&rootOutput, "output", "o", "text", "Output format (text, json, yaml)")
	flags.BoolVarP(&rootQuiet, "quiet", "q", false, "Suppress informational messages")
	flags.BoolVar(&rootNoColor, "no-color", false, "Disable colors and symbols in messages")
	flags.BoolVarP(&rootVerbose, "verbose", "v", false, "Log debug diagnostics to stderr")
	flags.BoolVarP(&rootYes, "yes", "y", false, "Answer yes to confirmation prompts")
	flags.StringVar(&rootConfigDir, "config-dir", files.ConfigDir, "Configuration directory")

	cmd.AddCommand(
		NewInitCommand(),
		NewVersionCommand(version),
		NewTokenizeCommand(),
		NewHighlightCommand(),
		NewQueryCommand(),
		NewRemoveCommand(),
		NewSuggestCommand(),
		NewSearchCommand(),
		NewTrendingCommand(),
		NewCollectionsCommand(),
		NewTopicsCommand(),
		NewLanguagesCommand(),
		NewConfigCommand(),
	)

	return cmd
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	settings := ctx.LoadSettingsWithDefault()

	if err := cli.ValidateUIMode(settings.UI.Mode); err != nil {
		return err
	}

	lexer, err := ctx.Lexer()
	if err != nil {
		return err
	}
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	app := tui.NewApp(tui.Options{
		Lexer:      lexer,
		Searcher:   client,
		Settings:   settings,
		Recent:     ctx.History(),
		SaveRecent: ctx.SaveHistory,
		Logger:     ctx.Logger,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}
	return nil
}
