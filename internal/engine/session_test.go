package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession() *Session {
	return NewSession(NewDefault(), DefaultPageSize)
}

func TestSession_InitialState(t *testing.T) {
	s := newTestSession()

	assert.Empty(t, s.Query())
	assert.False(t, s.CaseSensitive())
	assert.False(t, s.HasSearched())
	assert.Equal(t, 1, s.Page())
	assert.Equal(t, 0, s.TotalPages())
	assert.Empty(t, s.ErrorMessage())
	assert.Empty(t, s.NoResultsMessage())
	assert.Empty(t, s.PageView().Items)
}

func TestSession_SubmitEmpty(t *testing.T) {
	s := newTestSession()
	out := s.Submit(context.Background())

	assert.False(t, out.OK())
	assert.ErrorIs(t, s.Err(), ErrEmptyQuery)
	assert.Equal(t, MsgEmptyQuery, s.ErrorMessage())
	assert.Empty(t, s.Matches())
	assert.Empty(t, s.NoResultsMessage(), "validation failure is not a no-results outcome")
}

func TestSession_SubmitTooLong(t *testing.T) {
	s := newTestSession()
	s.SetQuery(strings.Repeat("a", 256))
	s.Submit(context.Background())

	assert.Equal(t, MsgTooLong, s.ErrorMessage())
	assert.Empty(t, s.Matches())
}

func TestSession_MaxLengthNoResults(t *testing.T) {
	s := newTestSession()
	q := strings.Repeat("a", 255)
	s.SetQuery(q)
	out := s.Submit(context.Background())

	assert.True(t, out.OK())
	assert.True(t, out.NoResults())
	assert.Empty(t, s.ErrorMessage())
	assert.Equal(t, `No results found for "`+q+`"`, s.NoResultsMessage())
}

func TestSession_AppleSinglePage(t *testing.T) {
	s := newTestSession()
	s.SetQuery("apple")
	s.Submit(context.Background())

	view := s.PageView()
	assert.Equal(t, 3, view.TotalItems)
	assert.Equal(t, 1, view.TotalPages)
	assert.Len(t, view.Items, 3)
	assert.False(t, view.ShowControls())
}

func TestSession_PaginationNavigation(t *testing.T) {
	s := newTestSession()
	s.SetQuery("e")
	s.Submit(context.Background())

	require.Equal(t, 3, s.TotalPages())
	assert.Len(t, s.PageView().Items, 5)

	assert.False(t, s.GoToPage(0), "page 0 is a no-op")
	assert.Equal(t, 1, s.Page())

	assert.True(t, s.GoToPage(3))
	assert.Len(t, s.PageView().Items, 1)

	assert.False(t, s.GoToPage(4), "page beyond total is a no-op")
	assert.Equal(t, 3, s.Page())

	assert.False(t, s.NextPage())
	assert.True(t, s.PrevPage())
	assert.Equal(t, 2, s.Page())
	assert.True(t, s.PrevPage())
	assert.False(t, s.PrevPage())
	assert.Equal(t, 1, s.Page())
}

func TestSession_ResubmitResetsPage(t *testing.T) {
	s := newTestSession()
	s.SetQuery("e")
	s.Submit(context.Background())
	require.True(t, s.GoToPage(3))

	s.Submit(context.Background())
	assert.Equal(t, 1, s.Page())
}

func TestSession_SetQueryInvalidates(t *testing.T) {
	s := newTestSession()
	s.SetQuery("tiramisu")
	s.SetCaseSensitive(true)
	s.Submit(context.Background())
	require.Equal(t, `No results found for "tiramisu"`, s.NoResultsMessage())

	s.SetQuery("tiramis")
	assert.False(t, s.HasSearched())
	assert.Empty(t, s.NoResultsMessage())
	assert.Empty(t, s.Matches())
	assert.Nil(t, s.Err())
}

func TestSession_SetQueryClearsError(t *testing.T) {
	s := newTestSession()
	s.Submit(context.Background())
	require.NotEmpty(t, s.ErrorMessage())

	s.SetQuery("a")
	assert.Empty(t, s.ErrorMessage())
}

func TestSession_ToggleCaseSensitive(t *testing.T) {
	s := newTestSession()
	s.SetQuery("Tiramisu")
	s.Submit(context.Background())
	require.Len(t, s.Matches(), 1)

	s.SetQuery("tiramisu")
	s.Submit(context.Background())
	require.Len(t, s.Matches(), 1)

	assert.True(t, s.ToggleCaseSensitive())
	assert.True(t, s.Stale(), "toggle keeps old results but marks them stale")
	assert.Len(t, s.Matches(), 1)

	s.Submit(context.Background())
	assert.False(t, s.Stale())
	assert.Empty(t, s.Matches())
	assert.Equal(t, `No results found for "tiramisu"`, s.NoResultsMessage())

	assert.False(t, s.ToggleCaseSensitive())
}

func TestSession_ToggleBeforeSearchIsNotStale(t *testing.T) {
	s := newTestSession()
	s.ToggleCaseSensitive()
	assert.False(t, s.Stale())
}

func TestSession_DefaultPageSize(t *testing.T) {
	s := NewSession(NewDefault(), 0)
	assert.Equal(t, DefaultPageSize, s.PageSize())
}

func TestSession_CustomPageSize(t *testing.T) {
	s := NewSession(NewDefault(), 2)
	s.SetQuery("apple")
	s.Submit(context.Background())

	assert.Equal(t, 2, s.TotalPages())
	assert.True(t, s.NextPage())
	assert.Equal(t, "Apple Crumble", s.PageView().Items[0].Title)
}

func TestSession_View(t *testing.T) {
	ctx := context.Background()
	s := newTestSession()

	view := s.View()
	assert.False(t, view.Searched)
	assert.Empty(t, view.ErrorMessage)
	assert.Empty(t, view.NoResultsMessage)
	assert.Zero(t, view.MatchCount)

	s.Submit(ctx)
	view = s.View()
	assert.True(t, view.Searched)
	assert.Equal(t, MsgEmptyQuery, view.ErrorMessage)
	assert.Empty(t, view.NoResultsMessage)
	assert.Zero(t, view.MatchCount)

	s.SetQuery("xyz123")
	s.Submit(ctx)
	view = s.View()
	assert.Empty(t, view.ErrorMessage)
	assert.Equal(t, `No results found for "xyz123"`, view.NoResultsMessage)
	assert.Zero(t, view.MatchCount)
	assert.False(t, view.Page.ShowControls())

	s.SetQuery("e")
	s.Submit(ctx)
	require.True(t, s.NextPage())
	view = s.View()
	assert.Empty(t, view.ErrorMessage)
	assert.Empty(t, view.NoResultsMessage)
	assert.Equal(t, 11, view.MatchCount)
	assert.Equal(t, 2, view.Page.PageNumber)
	assert.Equal(t, 3, view.Page.TotalPages)
	assert.Len(t, view.Page.Items, 5)
	assert.False(t, view.Stale)

	s.ToggleCaseSensitive()
	assert.True(t, s.View().Stale)
}
