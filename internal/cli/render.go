package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/rshade/recipefind/internal/catalog"
	"github.com/rshade/recipefind/internal/cli/pagination"
	"github.com/rshade/recipefind/internal/config"
	"github.com/rshade/recipefind/internal/engine"
	"github.com/rshade/recipefind/internal/tui"
)

const (
	tabPadding      = 2
	maxTitleLen     = 30
	maxContentLen   = 60
	ndjsonTypeMeta  = "summary"
	ndjsonTypeEntry = "record"
)

// searchOutput is the JSON and YAML envelope for search results.
type searchOutput struct {
	Query         string                     `json:"query"          yaml:"query"`
	CaseSensitive bool                       `json:"case_sensitive" yaml:"case_sensitive"`
	Results       []catalog.Record           `json:"results"        yaml:"results"`
	Pagination    *pagination.PaginationMeta `json:"pagination"     yaml:"pagination"`
}

// ndjsonSummary is the first line of NDJSON search output.
type ndjsonSummary struct {
	Type          string                     `json:"type"`
	Query         string                     `json:"query"`
	CaseSensitive bool                       `json:"case_sensitive"`
	Pagination    *pagination.PaginationMeta `json:"pagination"`
}

// ndjsonRecord is one result line of NDJSON output.
type ndjsonRecord struct {
	Type string `json:"type"`
	catalog.Record
}

// renderSearchResults writes one page of a successful search in format.
func renderSearchResults(w io.Writer, format string, q engine.Query, view engine.PageView, styled bool) error {
	meta := pagination.NewPaginationMeta(view)

	switch format {
	case config.FormatJSON:
		return renderJSON(w, searchOutput{
			Query: q.Text, CaseSensitive: q.CaseSensitive, Results: view.Items, Pagination: &meta,
		})
	case config.FormatYAML:
		return renderYAML(w, searchOutput{
			Query: q.Text, CaseSensitive: q.CaseSensitive, Results: view.Items, Pagination: &meta,
		})
	case config.FormatNDJSON:
		summary := ndjsonSummary{
			Type: ndjsonTypeMeta, Query: q.Text, CaseSensitive: q.CaseSensitive, Pagination: &meta,
		}
		return renderNDJSON(w, summary, view.Items)
	case config.FormatTable:
		return renderSearchTable(w, q, view, styled)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// renderRecords writes records without pagination metadata.
func renderRecords(w io.Writer, format string, records []catalog.Record) error {
	switch format {
	case config.FormatJSON:
		return renderJSON(w, records)
	case config.FormatYAML:
		return renderYAML(w, records)
	case config.FormatNDJSON:
		return renderNDJSON(w, nil, records)
	case config.FormatTable:
		return writeRecordTable(w, records)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func renderSearchTable(w io.Writer, q engine.Query, view engine.PageView, styled bool) error {
	if view.TotalItems == 0 {
		_, err := fmt.Fprintln(w, engine.NoResultsMessage(q.Text))
		return err
	}

	header := tui.FormatResultCount(view.TotalItems)
	if styled {
		header = tui.ValueStyle.Render(header)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	if err := writeRecordTable(w, view.Items); err != nil {
		return err
	}

	if !view.ShowControls() {
		return nil
	}
	return writePageFooter(w, view)
}

// writePageFooter prints the page position and the --page values for the
// neighbouring pages that exist.
func writePageFooter(w io.Writer, view engine.PageView) error {
	line := tui.FormatPagePosition(view.PageNumber, view.TotalPages)
	if view.HasPrevious() {
		line += "   Previous: --page " + strconv.Itoa(view.PageNumber-1)
	}
	if view.HasNext() {
		line += "   Next: --page " + strconv.Itoa(view.PageNumber+1)
	}
	_, err := fmt.Fprintf(w, "\n%s\n", line)
	return err
}

func writeRecordTable(w io.Writer, records []catalog.Record) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)

	fmt.Fprintln(tw, "ID\tTitle\tContent")
	fmt.Fprintln(tw, "--\t-----\t-------")
	for _, rec := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\n",
			rec.ID,
			tui.Truncate(rec.Title, maxTitleLen),
			tui.Truncate(rec.Content, maxContentLen),
		)
	}
	return tw.Flush()
}

func renderJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

func renderYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2) //nolint:mnd // Two-space indent matches config files.
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return nil
}

// renderNDJSON writes summary (when non-nil) followed by one line per record.
func renderNDJSON(w io.Writer, summary any, records []catalog.Record) error {
	encoder := json.NewEncoder(w)
	if summary != nil {
		if err := encoder.Encode(summary); err != nil {
			return fmt.Errorf("encoding NDJSON summary: %w", err)
		}
	}
	for _, rec := range records {
		if err := encoder.Encode(ndjsonRecord{Type: ndjsonTypeEntry, Record: rec}); err != nil {
			return fmt.Errorf("encoding NDJSON: %w", err)
		}
	}
	return nil
}
