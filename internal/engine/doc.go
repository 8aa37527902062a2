// Package engine implements query validation, substring matching, and page
// windowing over the static record catalog.
//
// The package is split into three stateless stages and one stateful helper:
//   - Validate: accepts or rejects raw query text before any matching occurs
//   - Search: stable, literal substring filter over title and content
//   - Paginate: fixed-size page windows over a match set
//   - Session: caller-owned state (query text, case mode, current page)
//
// Validate, Search, and Paginate are pure functions. Engine composes the first
// two and adds debug logging. A Session is owned by a single caller and is not
// safe for concurrent use.
package engine
