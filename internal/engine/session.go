package engine

import (
	"context"
	"strings"

	"github.com/rshade/recipefind/internal/catalog"
)

// Session is the caller-owned state of one interactive search: the current
// query text, the case-sensitivity flag, the current page, and the last
// outcome. It mirrors the commands a user can issue: edit text, toggle case
// sensitivity, submit, and change page.
//
// A Session is not safe for concurrent use.
type Session struct {
	engine   *Engine
	pageSize int

	query         string
	caseSensitive bool
	page          int

	outcome     *Outcome
	hasSearched bool
	stale       bool
}

// NewSession creates a session backed by e. A non-positive pageSize selects
// DefaultPageSize.
func NewSession(e *Engine, pageSize int) *Session {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Session{engine: e, pageSize: pageSize, page: 1}
}

// Query returns the current query text.
func (s *Session) Query() string { return s.query }

// CaseSensitive returns the current case-sensitivity flag.
func (s *Session) CaseSensitive() bool { return s.caseSensitive }

// PageSize returns the session's page size.
func (s *Session) PageSize() int { return s.pageSize }

// HasSearched reports whether Submit ran since the query text last changed.
func (s *Session) HasSearched() bool { return s.hasSearched }

// Stale reports whether the case mode changed after the last submit, so the
// displayed matches no longer reflect the current settings.
func (s *Session) Stale() bool { return s.stale }

// SetQuery replaces the query text. Any previous results and error are
// discarded; nothing is searched until Submit.
func (s *Session) SetQuery(text string) {
	if text == s.query {
		return
	}
	s.query = text
	s.outcome = nil
	s.hasSearched = false
	s.stale = false
	s.page = 1
}

// SetCaseSensitive sets the case mode. Existing results are kept but marked
// stale until the next Submit.
func (s *Session) SetCaseSensitive(on bool) {
	if on == s.caseSensitive {
		return
	}
	s.caseSensitive = on
	if s.outcome != nil {
		s.stale = true
	}
}

// ToggleCaseSensitive flips the case mode and returns the new value.
func (s *Session) ToggleCaseSensitive() bool {
	s.SetCaseSensitive(!s.caseSensitive)
	return s.caseSensitive
}

// Submit runs the current query and always resets to page 1.
func (s *Session) Submit(ctx context.Context) Outcome {
	out := s.engine.Run(ctx, Query{Text: s.query, CaseSensitive: s.caseSensitive})
	s.outcome = &out
	s.hasSearched = true
	s.stale = false
	s.page = 1
	return out
}

// Matches returns the full match set of the last successful submit.
func (s *Session) Matches() []catalog.Record {
	if s.outcome == nil || s.outcome.Err != nil {
		return nil
	}
	return s.outcome.Matches
}

// Err returns the validation error of the last submit, if any.
func (s *Session) Err() error {
	if s.outcome == nil {
		return nil
	}
	return s.outcome.Err
}

// Page returns the current page number.
func (s *Session) Page() int { return s.page }

// TotalPages returns the page count of the current match set.
func (s *Session) TotalPages() int {
	return TotalPages(len(s.Matches()), s.pageSize)
}

// GoToPage moves to page n when 1 <= n <= TotalPages. Out-of-range requests
// leave the current page unchanged. It reports whether the page changed.
func (s *Session) GoToPage(n int) bool {
	if n < 1 || n > s.TotalPages() || n == s.page {
		return false
	}
	s.page = n
	return true
}

// NextPage advances one page if possible.
func (s *Session) NextPage() bool { return s.GoToPage(s.page + 1) }

// PrevPage goes back one page if possible.
func (s *Session) PrevPage() bool { return s.GoToPage(s.page - 1) }

// PageView returns the current page window.
func (s *Session) PageView() PageView {
	return Paginate(s.Matches(), s.page, s.pageSize)
}

// ErrorMessage returns the user-facing validation message, or "".
func (s *Session) ErrorMessage() string {
	if s.outcome == nil {
		return ""
	}
	return s.outcome.ValidationResult().Message()
}

// NoResultsMessage returns `No results found for "<query>"` when a submitted,
// valid query matched nothing; otherwise "".
func (s *Session) NoResultsMessage() string {
	if !s.hasSearched || s.outcome == nil || !s.outcome.NoResults() {
		return ""
	}
	if strings.TrimSpace(s.query) == "" {
		return ""
	}
	return NoResultsMessage(s.query)
}

// SessionView is everything a front end needs to draw the result area.
type SessionView struct {
	ErrorMessage     string
	NoResultsMessage string
	MatchCount       int
	Searched         bool
	Stale            bool
	Page             PageView
}

// View returns the render model for the current state.
func (s *Session) View() SessionView {
	page := s.PageView()
	return SessionView{
		ErrorMessage:     s.ErrorMessage(),
		NoResultsMessage: s.NoResultsMessage(),
		MatchCount:       page.TotalItems,
		Searched:         s.hasSearched,
		Stale:            s.stale,
		Page:             page,
	}
}

// NoResultsMessage formats the empty-result notice for query.
func NoResultsMessage(query string) string {
	return `No results found for "` + query + `"`
}
