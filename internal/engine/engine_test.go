package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/recipefind/internal/catalog"
)

func TestEngine_Run(t *testing.T) {
	e := NewDefault()
	ctx := context.Background()

	t.Run("validation failure", func(t *testing.T) {
		out := e.Run(ctx, Query{Text: " "})
		assert.False(t, out.OK())
		assert.False(t, out.NoResults())
		assert.Equal(t, Empty, out.ValidationResult())
		assert.Nil(t, out.Matches)
	})

	t.Run("success with matches", func(t *testing.T) {
		out := e.Run(ctx, Query{Text: "apple"})
		assert.True(t, out.OK())
		assert.False(t, out.NoResults())
		assert.Equal(t, Valid, out.ValidationResult())
		assert.Len(t, out.Matches, 3)
	})

	t.Run("success without matches", func(t *testing.T) {
		out := e.Run(ctx, Query{Text: "pie apple"})
		assert.True(t, out.OK())
		assert.True(t, out.NoResults())
	})
}

func TestEngine_New_CopiesRecords(t *testing.T) {
	recs := []catalog.Record{{ID: 1, Title: "Fig Roll", Content: "Dried figs."}}
	e := New(recs)
	recs[0].Title = "changed"

	got := e.Records()
	assert.Equal(t, "Fig Roll", got[0].Title)

	out := e.Run(context.Background(), Query{Text: "fig"})
	assert.Len(t, out.Matches, 1)
}
