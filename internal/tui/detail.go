package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/rshade/recipefind/internal/catalog"
)

// Glamour style names accepted by SetDetailStyle.
const (
	DetailStyleDark  = "dark"
	DetailStyleLight = "light"
	DetailStyleNoTTY = "notty"
)

const (
	minDetailWrap  = 20
	detailMarginsX = 4
)

// RecordMarkdown returns the markdown document shown in the detail view.
func RecordMarkdown(rec catalog.Record) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", rec.Title)
	fmt.Fprintf(&sb, "*Record #%d*\n\n", rec.ID)
	sb.WriteString(rec.Content)
	sb.WriteString("\n")
	return sb.String()
}

// RenderRecordDetail renders rec with glamour at the given width. If glamour
// fails the raw markdown is returned.
func RenderRecordDetail(rec catalog.Record, style string, width int) string {
	md := RecordMarkdown(rec)

	wrap := max(width-detailMarginsX, minDetailWrap)
	if style == "" {
		style = DetailStyleDark
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
