// Package pagination provides CLI page flags and the pagination metadata
// attached to structured search output.
//
// This package contains:
//   - PaginationParams: --page and --page-size parsing and validation
//   - PaginationMeta: response metadata derived from an engine.PageView
//
// Page arithmetic itself lives in the engine package; this package only
// adapts it to command-line flags and output envelopes.
package pagination
