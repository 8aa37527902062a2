// Package cli implements the recipefind command tree.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/recipefind/internal/config"
	"github.com/rshade/recipefind/internal/logging"
)

// annotationSkipConfigValidation marks commands that validate the loaded
// configuration themselves.
const annotationSkipConfigValidation = "recipefind/skip-config-validation"

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the recipefind CLI.
// It loads configuration, wires up logging and tracing, and registers the
// search, list, tui and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "recipefind",
		Short:   "Search a recipe catalog from the terminal",
		Long:    "recipefind: literal substring search over a fixed recipe catalog, with paging and an interactive mode",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			if _, skip := cmd.Annotations[annotationSkipConfigValidation]; !skip {
				if err = cfg.Validate(); err != nil {
					return fmt.Errorf("invalid configuration: %w", err)
				}
			}
			config.SetGlobalConfig(cfg)

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "path to config file (default $RECIPEFIND_HOME/config.yaml)")
	cmd.AddCommand(NewSearchCmd(), NewListCmd(), NewTUICmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Search titles and content (case-insensitive)
  recipefind search apple

  # Case-sensitive search, second page, as JSON
  recipefind search --case-sensitive --page 2 --output json Pie

  # List the whole catalog
  recipefind list

  # Interactive search screen
  recipefind tui

  # Initialize configuration
  recipefind config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
