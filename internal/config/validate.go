package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog"
)

// Output formats supported by the CLI.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
	FormatYAML   = "yaml"
)

// Page size bounds accepted in configuration.
const (
	MinPageSize = 1
	MaxPageSize = 100
)

// supportedSchemaRange is the set of config schema versions this build reads.
const supportedSchemaRange = ">= 1.0.0, < 2.0.0"

// Validation errors.
var (
	ErrInvalidSchemaVersion     = errors.New("invalid schema_version")
	ErrUnsupportedSchemaVersion = errors.New("unsupported schema_version")
	ErrInvalidPageSize          = fmt.Errorf("page_size must be between %d and %d", MinPageSize, MaxPageSize)
	ErrInvalidOutputFormat      = errors.New("invalid output format")
	ErrInvalidLogLevel          = errors.New("invalid log level")
	ErrInvalidLogFormat         = errors.New("invalid log format")
)

// SupportedOutputFormats lists the values accepted for output.default_format.
func SupportedOutputFormats() []string {
	return []string{FormatTable, FormatJSON, FormatNDJSON, FormatYAML}
}

// IsValidOutputFormat reports whether format is supported.
func IsValidOutputFormat(format string) bool {
	return slices.Contains(SupportedOutputFormats(), strings.ToLower(format))
}

// Validate checks the configuration and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error

	if err := checkSchemaVersion(c.SchemaVersion); err != nil {
		errs = append(errs, err)
	}
	if c.Search.PageSize < MinPageSize || c.Search.PageSize > MaxPageSize {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidPageSize, c.Search.PageSize))
	}
	if !IsValidOutputFormat(c.Output.DefaultFormat) {
		errs = append(errs, fmt.Errorf("%w: %q (supported: %s)",
			ErrInvalidOutputFormat, c.Output.DefaultFormat, strings.Join(SupportedOutputFormats(), ", ")))
	}
	if c.Logging.Level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil {
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level))
		}
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Logging.Format))
	}

	return errors.Join(errs...)
}

func checkSchemaVersion(v string) error {
	if v == "" {
		return fmt.Errorf("%w: missing", ErrInvalidSchemaVersion)
	}
	ver, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidSchemaVersion, v, err)
	}
	constraint, err := semver.NewConstraint(supportedSchemaRange)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !constraint.Check(ver) {
		return fmt.Errorf("%w: %s (supported: %s)", ErrUnsupportedSchemaVersion, v, supportedSchemaRange)
	}
	return nil
}
