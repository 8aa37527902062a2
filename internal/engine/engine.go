package engine

import (
	"context"
	"errors"

	"github.com/rshade/recipefind/internal/catalog"
	"github.com/rshade/recipefind/internal/logging"
)

// Outcome is the result of one search invocation: either a validation error
// or a successful (possibly empty) match set.
type Outcome struct {
	Query   Query
	Err     error
	Matches []catalog.Record
}

// OK reports whether the query passed validation.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// NoResults reports a successful search that matched nothing. This is
// distinct from a validation failure.
func (o Outcome) NoResults() bool {
	return o.Err == nil && len(o.Matches) == 0
}

// ValidationResult returns the validation classification of the outcome.
func (o Outcome) ValidationResult() ValidationResult {
	var vErr *ValidationError
	if errors.As(o.Err, &vErr) {
		return vErr.Result
	}
	return Valid
}

// Engine runs validated searches over a fixed record set.
// It holds no mutable state and may be shared.
type Engine struct {
	records []catalog.Record
}

// New creates an Engine over records. The slice is copied.
func New(records []catalog.Record) *Engine {
	rs := make([]catalog.Record, len(records))
	copy(rs, records)
	return &Engine{records: rs}
}

// NewDefault creates an Engine over the reference catalog.
func NewDefault() *Engine {
	return &Engine{records: catalog.All()}
}

// Records returns a copy of the record set in dataset order.
func (e *Engine) Records() []catalog.Record {
	out := make([]catalog.Record, len(e.records))
	copy(out, e.records)
	return out
}

// Run validates q.Text and, if it is valid, searches the record set.
func (e *Engine) Run(ctx context.Context, q Query) Outcome {
	log := logging.FromContext(ctx)

	if err := ValidateQuery(q.Text); err != nil {
		log.Debug().Ctx(ctx).
			Str("component", "engine").
			Str("operation", "validate").
			Int("query_len", len(q.Text)).
			Err(err).
			Msg("query rejected")
		return Outcome{Query: q, Err: err}
	}

	matches := Search(e.records, q)
	log.Debug().Ctx(ctx).
		Str("component", "engine").
		Str("operation", "search").
		Int("query_len", len(q.Text)).
		Bool("case_sensitive", q.CaseSensitive).
		Int("matches", len(matches)).
		Msg("search completed")

	return Outcome{Query: q, Matches: matches}
}
