package pagination

import (
	"errors"
	"fmt"
)

// Pagination defaults and validation limits.
const (
	DefaultPage = 1
	MinPage     = 1
	MinPageSize = 1
	MaxPageSize = 100
)

// Common validation errors.
var (
	ErrInvalidPage     = errors.New("page must be >= 1")
	ErrInvalidPageSize = fmt.Errorf("page-size must be between %d and %d", MinPageSize, MaxPageSize)
)

// PaginationParams holds the --page and --page-size flags.
//
//nolint:revive // PaginationParams is the canonical name for this exported type.
type PaginationParams struct {
	// Page is the requested 1-based page number.
	Page int

	// PageSize is the number of results per page.
	PageSize int
}

// NewPaginationParams creates a PaginationParams for page 1 with pageSize
// results per page.
func NewPaginationParams(pageSize int) *PaginationParams {
	return &PaginationParams{
		Page:     DefaultPage,
		PageSize: pageSize,
	}
}

// Validate checks flag bounds. It does not know the result count, so a page
// beyond the last one is accepted here and handled by ResolvePage.
func (p PaginationParams) Validate() error {
	if p.Page < MinPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if p.PageSize < MinPageSize || p.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	return nil
}

// ResolvePage returns the page to display for a result set with totalPages
// pages. A requested page outside [1, totalPages] resolves to page 1 and
// inRange is false.
//
//nolint:nonamedreturns // Named returns document the two results.
func (p PaginationParams) ResolvePage(totalPages int) (page int, inRange bool) {
	if p.Page >= MinPage && p.Page <= max(1, totalPages) {
		return p.Page, true
	}
	return DefaultPage, false
}
