package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/recipefind/internal/config"
)

// NewConfigShowCmd creates the config show command, which prints the
// effective configuration after file and environment overrides.
func NewConfigShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Example: `  # Effective configuration as YAML
  recipefind config show

  # As JSON
  recipefind config show --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			switch strings.ToLower(output) {
			case config.FormatYAML:
				return renderYAML(cmd.OutOrStdout(), cfg)
			case config.FormatJSON:
				return renderJSON(cmd.OutOrStdout(), cfg)
			default:
				return fmt.Errorf("unsupported output format for config show: %s (use yaml or json)", output)
			}
		},
	}

	cmd.Flags().StringVar(&output, "output", config.FormatYAML, "output format: yaml or json")

	return cmd
}
