package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/recipefind/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
// It writes the default configuration to the --config path, or to
// $RECIPEFIND_HOME/config.yaml when --config is not given.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

The file is written to ~/.recipefind/config.yaml unless RECIPEFIND_HOME or
--config points elsewhere. An existing file is left untouched unless --force
is given.`,
		Example: `  # Create configuration
  recipefind config init

  # Create configuration, overwriting existing
  recipefind config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

func initConfig(cmd *cobra.Command, force bool) error {
	path, err := configPath(cmd)
	if err != nil {
		return err
	}

	if err = config.New().WriteTo(path, force); err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			return errors.New("configuration file already exists, use --force to overwrite")
		}
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", path)
	return nil
}

// configPath returns the --config flag value or the default config location.
func configPath(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path, nil
	}
	return config.DefaultPath()
}
