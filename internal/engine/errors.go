package engine

import "fmt"

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel validation errors. Compare with errors.Is.
var (
	// ErrEmptyQuery indicates the query is empty after trimming whitespace.
	ErrEmptyQuery = constError("empty query")

	// ErrQueryTooLong indicates the untrimmed query exceeds MaxQueryLength.
	ErrQueryTooLong = constError("query too long")
)

// ValidationError reports why a query was rejected. Message returns the
// user-facing text; Error includes the sentinel for logs.
type ValidationError struct {
	Result ValidationResult
	Query  string
}

func (e *ValidationError) Error() string {
	if err := e.Unwrap(); err != nil {
		return fmt.Sprintf("%s: %s", err, e.Result.Message())
	}
	return "invalid query"
}

// Message returns the human-readable reason suitable for display.
func (e *ValidationError) Message() string {
	return e.Result.Message()
}

// Unwrap returns the sentinel matching Result.
func (e *ValidationError) Unwrap() error {
	switch e.Result {
	case Empty:
		return ErrEmptyQuery
	case TooLong:
		return ErrQueryTooLong
	case Valid:
		return nil
	default:
		return nil
	}
}
