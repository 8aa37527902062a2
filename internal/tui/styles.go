package tui

import "github.com/charmbracelet/lipgloss"

// Color palette (ANSI 256).
const (
	colorAccent   = lipgloss.Color("39")
	colorLabel    = lipgloss.Color("245")
	colorValue    = lipgloss.Color("255")
	colorDim      = lipgloss.Color("240")
	colorError    = lipgloss.Color("196")
	colorWarning  = lipgloss.Color("214")
	colorInfo     = lipgloss.Color("111")
	colorSelectFg = lipgloss.Color("229")
	colorSelectBg = lipgloss.Color("57")
)

// Shared styles for the search screen and styled CLI output.
//
//nolint:gochecknoglobals // lipgloss styles are immutable values shared across renderers.
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	LabelStyle = lipgloss.NewStyle().Foreground(colorLabel)

	ValueStyle = lipgloss.NewStyle().Foreground(colorValue).Bold(true)

	InfoStyle = lipgloss.NewStyle().Foreground(colorInfo)

	WarningStyle = lipgloss.NewStyle().Foreground(colorWarning)

	ErrorStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)

	DimStyle = lipgloss.NewStyle().Foreground(colorDim)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(colorSelectFg).
			Background(colorSelectBg)

	TableHeaderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colorDim).
				BorderBottom(true).
				Bold(true)
)
