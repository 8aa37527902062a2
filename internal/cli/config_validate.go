package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/recipefind/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file for syntax and semantic correctness.

This includes:
- YAML syntax
- schema_version compatibility
- search.page_size bounds
- output.default_format and logging values`,
		Example: `  # Validate current configuration
  recipefind config validate

  # Validate and show detailed information
  recipefind config validate --verbose`,
		Annotations: map[string]string{annotationSkipConfigValidation: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic and lists
// every problem found before failing.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	path, err := configPath(cmd)
	if err != nil {
		return err
	}

	cfg := config.GetGlobalConfig()
	if err = cfg.Validate(); err != nil {
		cmd.Printf("Configuration at %s is invalid:\n", path)
		for _, problem := range validationProblems(err) {
			cmd.Printf("  - %s\n", problem)
		}
		if verbose {
			printVerboseDetails(cmd, cfg)
		}
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
		cmd.Printf("No configuration file at %s, using defaults\n", path)
	}
	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Schema version: %s\n", cfg.SchemaVersion)
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Page size: %d\n", cfg.Search.PageSize)
	cmd.Printf("  Case sensitive: %t\n", cfg.Search.CaseSensitive)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)
}

// validationProblems splits a joined validation error into its parts.
func validationProblems(err error) []string {
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		return []string{err.Error()}
	}
	problems := make([]string, 0, len(joined.Unwrap()))
	for _, e := range joined.Unwrap() {
		problems = append(problems, e.Error())
	}
	return problems
}
