package engine

import "github.com/rshade/recipefind/internal/catalog"

// DefaultPageSize is the number of records shown per page.
const DefaultPageSize = 5

// PageView is a read-only window over a match set.
type PageView struct {
	// PageNumber is 1-based and always within [1, max(1, TotalPages)].
	PageNumber int `json:"page"        yaml:"page"`
	PageSize   int `json:"page_size"   yaml:"page_size"`
	TotalPages int `json:"total_pages" yaml:"total_pages"`
	TotalItems int `json:"total_items" yaml:"total_items"`

	Items []catalog.Record `json:"items" yaml:"items"`
}

// TotalPages returns ceil(n / pageSize), which is 0 only when n is 0.
// A non-positive pageSize is treated as DefaultPageSize.
func TotalPages(n, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if n <= 0 {
		return 0
	}
	return (n + pageSize - 1) / pageSize
}

// Paginate returns page pageNumber of matches. A pageNumber outside
// [1, max(1, totalPages)] is clamped into that range.
func Paginate(matches []catalog.Record, pageNumber, pageSize int) PageView {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	total := TotalPages(len(matches), pageSize)

	last := max(1, total)
	pageNumber = min(max(pageNumber, 1), last)

	start := min((pageNumber-1)*pageSize, len(matches))
	end := min(pageNumber*pageSize, len(matches))

	items := make([]catalog.Record, end-start)
	copy(items, matches[start:end])

	return PageView{
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalPages: total,
		TotalItems: len(matches),
		Items:      items,
	}
}

// ShowControls reports whether page navigation should be rendered at all.
// With one page or fewer the controls are omitted, not disabled.
func (p PageView) ShowControls() bool {
	return p.TotalPages > 1
}

// HasPrevious reports whether a page precedes this one.
func (p PageView) HasPrevious() bool {
	return p.PageNumber > 1
}

// HasNext reports whether a page follows this one.
func (p PageView) HasNext() bool {
	return p.PageNumber < p.TotalPages
}
