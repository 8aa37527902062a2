package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/recipefind/internal/cli/pagination"
	"github.com/rshade/recipefind/internal/config"
	"github.com/rshade/recipefind/internal/engine"
	"github.com/rshade/recipefind/internal/logging"
	"github.com/rshade/recipefind/internal/tui"
)

type searchParams struct {
	caseSensitive bool
	page          int
	pageSize      int
	output        string
}

// NewSearchCmd creates the "search" command. All arguments are joined with
// single spaces into one literal query.
func NewSearchCmd() *cobra.Command {
	var params searchParams

	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Search recipe titles and content",
		Long: `Search the recipe catalog for a literal substring in the title or content.

Matching is case-insensitive unless --case-sensitive is given. Results keep
catalog order and are shown one page at a time. A query that is empty or
longer than 255 characters is rejected with exit code 2.`,
		Example: `  # Case-insensitive search
  recipefind search apple

  # Multi-word queries match as one contiguous phrase
  recipefind search apple pie

  # Third page of results for "e"
  recipefind search --page 3 e

  # Structured output
  recipefind search --output json apple
  recipefind search --output ndjson --page-size 2 e`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeSearch(cmd, args, params)
		},
	}

	cmd.Flags().BoolVar(&params.caseSensitive, "case-sensitive", false,
		"match letter case exactly (default from config)")
	cmd.Flags().IntVar(&params.page, "page", pagination.DefaultPage, "page number to show (1-indexed)")
	cmd.Flags().IntVar(&params.pageSize, "page-size", 0, "results per page (default from config)")
	cmd.Flags().StringVar(&params.output, "output", "",
		"output format: "+strings.Join(config.SupportedOutputFormats(), ", ")+" (default from config)")

	return cmd
}

// resolveSearchParams fills in flags the user did not set from configuration.
func resolveSearchParams(cmd *cobra.Command, params searchParams, cfg *config.Config) searchParams {
	if !cmd.Flags().Changed("case-sensitive") {
		params.caseSensitive = cfg.Search.CaseSensitive
	}
	if !cmd.Flags().Changed("page-size") {
		params.pageSize = cfg.Search.PageSize
	}
	if params.output == "" {
		params.output = cfg.Output.DefaultFormat
	}
	params.output = strings.ToLower(params.output)
	return params
}

func executeSearch(cmd *cobra.Command, args []string, params searchParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	cmd.SilenceUsage = true

	params = resolveSearchParams(cmd, params, config.GetGlobalConfig())
	if !config.IsValidOutputFormat(params.output) {
		return fmt.Errorf("unsupported output format: %s", params.output)
	}

	pageParams := pagination.NewPaginationParams(params.pageSize)
	pageParams.Page = params.page
	if err := pageParams.Validate(); err != nil {
		return err
	}

	query := engine.Query{Text: strings.Join(args, " "), CaseSensitive: params.caseSensitive}
	outcome := engine.NewDefault().Run(ctx, query)
	if !outcome.OK() {
		return invalidQueryError(outcome.Err)
	}

	totalPages := engine.TotalPages(len(outcome.Matches), pageParams.PageSize)
	page, inRange := pageParams.ResolvePage(totalPages)
	if !inRange {
		log.Warn().Ctx(ctx).
			Str("operation", "search").
			Int("requested_page", pageParams.Page).
			Int("total_pages", totalPages).
			Msg("requested page out of range, showing page 1")
	}

	view := engine.Paginate(outcome.Matches, page, pageParams.PageSize)
	styled := tui.DetectOutputMode(false, false, false) != tui.OutputModePlain

	log.Debug().Ctx(ctx).
		Str("operation", "search").
		Str("output", params.output).
		Int("page", view.PageNumber).
		Int("total_pages", view.TotalPages).
		Msg("rendering results")

	return renderSearchResults(cmd.OutOrStdout(), params.output, query, view, styled)
}

// invalidQueryError maps a validation failure to ExitCodeInvalidQuery with
// the user-facing message.
func invalidQueryError(err error) error {
	reason := err.Error()
	var vErr *engine.ValidationError
	if errors.As(err, &vErr) {
		reason = vErr.Message()
	}
	return &ExitError{ExitCode: ExitCodeInvalidQuery, Reason: reason, Err: err}
}
