// Package tui implements the interactive recipe search screen and the
// terminal helpers shared with styled CLI output: styles, output mode
// detection, count formatting and glamour-rendered record details.
package tui
