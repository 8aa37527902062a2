// Package catalog holds the static record set that recipefind searches.
//
// The records are compiled into the binary from records.yaml and decoded once
// on first use. The set is read-only for the lifetime of the process: every
// accessor hands out a copy so callers cannot mutate the shared fixture.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// Record is one searchable item.
type Record struct {
	ID      int    `json:"id"      yaml:"id"`
	Title   string `json:"title"   yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// Errors returned while decoding a record fixture.
var (
	ErrNoRecords   = errors.New("fixture contains no records")
	ErrDuplicateID = errors.New("duplicate record id")
	ErrInvalidID   = errors.New("record id must be positive")
)

//go:embed records.yaml
var fixture []byte

//nolint:gochecknoglobals // Decoded once; the fixture never changes at runtime.
var (
	loadOnce sync.Once
	records  []Record
	loadErr  error
)

type fixtureFile struct {
	Records []Record `yaml:"records"`
}

// Decode parses a YAML fixture and checks that ids are positive and unique.
// Order in the document is preserved.
func Decode(data []byte) ([]Record, error) {
	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing record fixture: %w", err)
	}
	if len(f.Records) == 0 {
		return nil, ErrNoRecords
	}

	seen := make(map[int]struct{}, len(f.Records))
	for _, r := range f.Records {
		if r.ID <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidID, r.ID)
		}
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	return f.Records, nil
}

// All returns the reference dataset in its fixed order.
// The embedded fixture is validated by tests, so a decode failure here is a
// build defect and panics.
func All() []Record {
	loadOnce.Do(func() {
		records, loadErr = Decode(fixture)
	})
	if loadErr != nil {
		panic(fmt.Sprintf("catalog: embedded fixture is invalid: %v", loadErr))
	}
	out := make([]Record, len(records))
	copy(out, records)
	return out
}
