package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/pagekit/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates $PAGEKIT_HOME/config.yaml (default ~/.pagekit/config.yaml) with the
default pagination, output and logging settings.

An existing file is only replaced with --force or after confirmation on a
terminal; the previous file is kept as config.yaml.bak.`,
		Example: `  # Create configuration
  pagekit config init

  # Create configuration, overwriting existing
  pagekit config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

// initConfig writes the default configuration to the config directory.
func initConfig(cmd *cobra.Command, force bool) error {
	if err := config.EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg := config.New()
	_, statErr := os.Stat(cfg.ConfigPath())
	exists := statErr == nil
	if statErr != nil && !os.IsNotExist(statErr) {
		return fmt.Errorf("cannot access config path %s: %w", cfg.ConfigPath(), statErr)
	}

	if exists && !force {
		answer := ConfirmOverwrite(cmd.OutOrStdout(), cmd.InOrStdin(), cfg.ConfigPath(), isInteractive(cmd))
		if !answer.Accepted {
			return errors.New("configuration file already exists, use --force to overwrite")
		}
	}

	if exists {
		backup, err := cfg.Backup()
		if err != nil {
			return err
		}
		cmd.Printf("Previous configuration saved to %s\n", backup)
	}

	defaults := config.DefaultConfig()
	defaults.SetConfigPath(cfg.ConfigPath())
	if err := defaults.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", defaults.ConfigPath())

	return nil
}
