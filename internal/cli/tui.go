package cli

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/recipefind/internal/cli/pagination"
	"github.com/rshade/recipefind/internal/config"
	"github.com/rshade/recipefind/internal/engine"
	"github.com/rshade/recipefind/internal/tui"
)

// ErrNotInteractive is returned by the tui command when stdout is not a
// terminal.
var ErrNotInteractive = errors.New("interactive mode requires a terminal; use 'recipefind search' instead")

// NewTUICmd creates the interactive search command.
func NewTUICmd() *cobra.Command {
	var (
		caseSensitive bool
		pageSize      int
	)

	cmd := &cobra.Command{
		Use:     "tui [query...]",
		Aliases: []string{"interactive"},
		Short:   "Interactive search screen",
		Long: `Opens a full-screen search screen.

Keys:
  enter          run the search
  ctrl+t         toggle case sensitivity (press enter to refresh)
  ctrl+n, pgdown next page
  ctrl+p, pgup   previous page
  up/down        select a result
  ctrl+o         show the selected recipe, esc to go back
  ctrl+c         quit

An optional query argument is searched immediately.`,
		Annotations: map[string]string{annotationLogMode: logModeFileOnly},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg := config.GetGlobalConfig()
			if !cmd.Flags().Changed("case-sensitive") {
				caseSensitive = cfg.Search.CaseSensitive
			}
			if !cmd.Flags().Changed("page-size") {
				pageSize = cfg.Search.PageSize
			}
			if err := (pagination.PaginationParams{Page: 1, PageSize: pageSize}).Validate(); err != nil {
				return err
			}
			return runSearchTUI(cmd, strings.Join(args, " "), caseSensitive, pageSize)
		},
	}

	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "start with case-sensitive matching")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "results per page (default from config)")

	return cmd
}

func runSearchTUI(cmd *cobra.Command, initialQuery string, caseSensitive bool, pageSize int) error {
	mode := tui.DetectOutputMode(false, false, false)
	if mode != tui.OutputModeInteractive {
		return ErrNotInteractive
	}

	ctx := cmd.Context()
	session := engine.NewSession(engine.NewDefault(), pageSize)
	session.SetCaseSensitive(caseSensitive)
	if initialQuery != "" {
		session.SetQuery(initialQuery)
		session.Submit(ctx)
	}

	model := tui.NewSearchModel(ctx, session)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	return nil
}
