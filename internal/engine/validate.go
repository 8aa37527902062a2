package engine

import (
	"strings"
	"unicode/utf8"
)

// MaxQueryLength is the longest accepted query, in characters.
const MaxQueryLength = 255

// User-facing validation messages.
const (
	MsgEmptyQuery = "Please enter a search query."
	MsgTooLong    = "Query is too long. Maximum 255 characters allowed."
)

// ValidationResult is the outcome of Validate.
type ValidationResult int

const (
	// Valid means the query may be searched.
	Valid ValidationResult = iota
	// Empty means the query has no non-whitespace characters.
	Empty
	// TooLong means the untrimmed query is longer than MaxQueryLength.
	TooLong
)

// String returns a short identifier for logs.
func (r ValidationResult) String() string {
	switch r {
	case Valid:
		return "valid"
	case Empty:
		return "empty"
	case TooLong:
		return "too_long"
	default:
		return "unknown"
	}
}

// Message returns the user-facing message, or "" for Valid.
func (r ValidationResult) Message() string {
	switch r {
	case Empty:
		return MsgEmptyQuery
	case TooLong:
		return MsgTooLong
	case Valid:
		return ""
	default:
		return ""
	}
}

// Validate checks raw query text. Trimming is applied only to the emptiness
// check; the length limit counts the untrimmed text in runes.
func Validate(text string) ValidationResult {
	if strings.TrimSpace(text) == "" {
		return Empty
	}
	if utf8.RuneCountInString(text) > MaxQueryLength {
		return TooLong
	}
	return Valid
}

// ValidateQuery is Validate in error form: nil for a valid query, otherwise
// a *ValidationError wrapping ErrEmptyQuery or ErrQueryTooLong.
func ValidateQuery(text string) error {
	if r := Validate(text); r != Valid {
		return &ValidationError{Result: r, Query: text}
	}
	return nil
}
