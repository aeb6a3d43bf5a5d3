package commands

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pluqqy/reposearch/internal/cli"
	"github.com/pluqqy/reposearch/pkg/files"
	"github.com/pluqqy/reposearch/pkg/github"
	"github.com/pluqqy/reposearch/pkg/models"
	"github.com/pluqqy/reposearch/pkg/qualifiers"
)

// NewConfigCommand creates the config command and its subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change settings",
		Long: `Show or change the settings stored in the configuration directory.

Keys:
  api.base_url  api.api_version  api.token_env  api.timeout
  search.sort   search.order     search.per_page
  ui.mode       ui.show_icons    ui.max_suggestions

Examples:
  reposearch config show
  reposearch config set search.per_page 50
  reposearch config set ui.mode inline
  EDITOR=vim reposearch config edit qualifiers`,
	}

	cmd.AddCommand(newConfigShowCommand(), newConfigSetCommand(), newConfigEditCommand())
	return cmd
}

// ConfigShowResult is the output of config show
type ConfigShowResult struct {
	ConfigDir  string                  `json:"config_dir" yaml:"config_dir"`
	Settings   *models.Settings        `json:"settings" yaml:"settings"`
	Qualifiers []qualifiers.Definition `json:"qualifiers" yaml:"qualifiers"`
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display the effective settings and qualifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			settings, err := ctx.LoadSettings()
			if err != nil {
				return err
			}
			registry, err := ctx.Registry()
			if err != nil {
				return err
			}

			result := ConfigShowResult{
				ConfigDir:  ctx.ConfigDir,
				Settings:   settings,
				Qualifiers: registry.Definitions(),
			}

			format := outputFormat(cmd)
			if format == string(cli.FormatText) {
				format = string(cli.FormatYAML)
			}
			return cli.OutputResults(cmd.OutOrStdout(), format, result)
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			settings, err := ctx.LoadSettings()
			if err != nil {
				return err
			}

			if err := applySetting(settings, args[0], args[1]); err != nil {
				return err
			}

			if err := os.MkdirAll(ctx.ConfigDir, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", ctx.ConfigDir, err)
			}
			if err := files.WriteSettings(ctx.ConfigDir, settings); err != nil {
				return err
			}

			cli.PrintSuccess("Set %s = %s", args[0], args[1])
			return nil
		},
	}
}

// applySetting parses value and stores it under the dotted key
func applySetting(s *models.Settings, key, value string) error {
	switch strings.ToLower(key) {
	case "api.base_url":
		s.API.BaseURL = strings.TrimRight(value, "/")
	case "api.api_version":
		s.API.APIVersion = value
	case "api.token_env":
		s.API.TokenEnv = value
	case "api.timeout":
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid timeout: %s (use a duration such as 15s)", value)
		}
		s.API.Timeout = d
	case "search.sort":
		if _, ok := github.ParseSort(value); !ok {
			return fmt.Errorf("invalid sort: %s (must be: stars, forks, updated, or help-wanted-issues)", value)
		}
		s.Search.Sort = value
	case "search.order":
		if _, ok := github.ParseOrder(value); !ok {
			return fmt.Errorf("invalid order: %s (must be: asc or desc)", value)
		}
		s.Search.Order = value
	case "search.per_page":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid per-page: %s", value)
		}
		if err := cli.ValidatePage(1, n); err != nil {
			return err
		}
		s.Search.PerPage = n
	case "ui.mode":
		if err := cli.ValidateUIMode(value); err != nil {
			return err
		}
		s.UI.Mode = strings.ToLower(value)
	case "ui.show_icons":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid show_icons: %s (must be true or false)", value)
		}
		s.UI.ShowIcons = b
	case "ui.max_suggestions":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid max_suggestions: %s (must be a positive number)", value)
		}
		s.UI.MaxSuggestions = n
	default:
		return fmt.Errorf("unknown setting: %s", key)
	}
	return nil
}

func newConfigEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "edit [settings|qualifiers]",
		Short:     "Open a configuration file in $EDITOR",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"settings", "qualifiers"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			path := files.SettingsPath(ctx.ConfigDir)
			if len(args) == 1 {
				switch args[0] {
				case "settings":
				case "qualifiers":
					path = files.QualifiersPath(ctx.ConfigDir)
				default:
					return fmt.Errorf("unknown configuration file: %s (must be: settings or qualifiers)", args[0])
				}
			}

			if _, err := os.Stat(path); os.IsNotExist(err) {
				return fmt.Errorf("%s not found. Run 'reposearch init' first", path)
			}

			editor := os.Getenv("EDITOR")
			if editor == "" {
				editor = "vi"
			}

			cli.PrintInfo("Opening %s in %s...", path, editor)
			c := exec.Command(editor, path)
			c.Stdin = os.Stdin
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			if err := c.Run(); err != nil {
				return fmt.Errorf("failed to run editor: %w", err)
			}

			// Surface parse errors in the edited files
			if _, err := files.ReadSettings(ctx.ConfigDir); err != nil {
				return err
			}
			if _, err := files.ReadQualifiers(ctx.ConfigDir); err != nil {
				return err
			}

			cli.PrintSuccess("Configuration saved")
			return nil
		},
	}
}
