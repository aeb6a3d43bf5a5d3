package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/reposearch/internal/cli"
	"github.com/pluqqy/reposearch/pkg/files"
)

var initForce bool

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the configuration directory",
		Long: `Creates the configuration directory with default settings.yaml and
qualifiers.yaml files. Existing files are kept unless --force is given.

Examples:
  # Create .reposearch in the current directory
  reposearch init

  # Reset an existing configuration to the defaults
  reposearch init --force`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing configuration files")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	if initForce {
		if _, err := os.Stat(ctx.ConfigDir); err == nil {
			ok, err := cli.Confirm(fmt.Sprintf("Overwrite configuration in %s?", ctx.ConfigDir), false)
			if err != nil {
				return fmt.Errorf("failed to read confirmation: %w", err)
			}
			if !ok {
				cli.PrintInfo("Cancelled")
				return nil
			}
		}
	}

	if err := files.InitProjectStructure(ctx.ConfigDir, initForce); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	cli.PrintSuccess("Created %s", ctx.ConfigDir)
	cli.PrintInfo("Edit %s to change defaults", files.SettingsPath(ctx.ConfigDir))
	return nil
}
