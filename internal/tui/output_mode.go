package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode describes how much terminal capability output may assume.
type OutputMode int

const (
	// OutputModePlain writes unstyled text (pipes, NO_COLOR, dumb terminals).
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes lipgloss-styled text without taking over the screen.
	OutputModeStyled
	// OutputModeInteractive allows a full-screen Bubble Tea program.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// Layout defaults used when the terminal size is unknown.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// DetectOutputMode picks an output mode from flags, environment and whether
// stdout is a terminal. plain and noColor win over forceColor.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	if plain || noColor || os.Getenv("NO_COLOR") != "" {
		return OutputModePlain
	}
	if os.Getenv("TERM") == "dumb" {
		return OutputModePlain
	}

	if !isTerminal(os.Stdout) {
		if forceColor {
			return OutputModeStyled
		}
		return OutputModePlain
	}

	if os.Getenv("CI") != "" {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

// TerminalWidth returns the width of stdout, or defaultWidth when stdout is
// not a terminal.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
