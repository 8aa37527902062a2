// Package listview provides a selectable list component for Bubble Tea TUI
// applications.
//
// The list holds one page of items at a time. Callers replace the items when
// the page changes and the selection resets to the first row. Key features:
//   - Keyboard navigation (up/down, home/end)
//   - Caller-supplied row rendering with a selected flag
//   - Safe access to the selected item on an empty list
package listview
