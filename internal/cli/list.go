package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/recipefind/internal/config"
	"github.com/rshade/recipefind/internal/engine"
	"github.com/rshade/recipefind/internal/logging"
)

// NewListCmd creates the "list" command, which prints the full catalog in
// dataset order.
func NewListCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every recipe in the catalog",
		Example: `  # Table of all recipes
  recipefind list

  # As YAML
  recipefind list --output yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cmd.SilenceUsage = true

			if output == "" {
				output = config.GetGlobalConfig().Output.DefaultFormat
			}
			output = strings.ToLower(output)
			if !config.IsValidOutputFormat(output) {
				return fmt.Errorf("unsupported output format: %s", output)
			}

			records := engine.NewDefault().Records()
			logging.FromContext(ctx).Debug().Ctx(ctx).
				Str("operation", "list").
				Int("records", len(records)).
				Msg("listing catalog")

			return renderRecords(cmd.OutOrStdout(), output, records)
		},
	}

	cmd.Flags().StringVar(&output, "output", "",
		"output format: "+strings.Join(config.SupportedOutputFormats(), ", ")+" (default from config)")

	return cmd
}
