package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/recipefind/internal/config"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr error
	}{
		{name: "defaults", mutate: func(*config.Config) {}},
		{name: "minor schema bump", mutate: func(c *config.Config) { c.SchemaVersion = "1.4.2" }},
		{
			name:    "missing schema",
			mutate:  func(c *config.Config) { c.SchemaVersion = "" },
			wantErr: config.ErrInvalidSchemaVersion,
		},
		{
			name:    "garbage schema",
			mutate:  func(c *config.Config) { c.SchemaVersion = "one" },
			wantErr: config.ErrInvalidSchemaVersion,
		},
		{
			name:    "future major schema",
			mutate:  func(c *config.Config) { c.SchemaVersion = "2.0.0" },
			wantErr: config.ErrUnsupportedSchemaVersion,
		},
		{
			name:    "page size zero",
			mutate:  func(c *config.Config) { c.Search.PageSize = 0 },
			wantErr: config.ErrInvalidPageSize,
		},
		{
			name:    "page size too large",
			mutate:  func(c *config.Config) { c.Search.PageSize = 101 },
			wantErr: config.ErrInvalidPageSize,
		},
		{
			name:    "unknown format",
			mutate:  func(c *config.Config) { c.Output.DefaultFormat = "csv" },
			wantErr: config.ErrInvalidOutputFormat,
		},
		{
			name:    "bad level",
			mutate:  func(c *config.Config) { c.Logging.Level = "loud" },
			wantErr: config.ErrInvalidLogLevel,
		},
		{
			name:    "bad log format",
			mutate:  func(c *config.Config) { c.Logging.Format = "xml" },
			wantErr: config.ErrInvalidLogFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_JoinsErrors(t *testing.T) {
	cfg := config.New()
	cfg.Search.PageSize = -1
	cfg.Output.DefaultFormat = "xml"

	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalidPageSize)
	require.ErrorIs(t, err, config.ErrInvalidOutputFormat)
}

func TestIsValidOutputFormat(t *testing.T) {
	for _, f := range config.SupportedOutputFormats() {
		assert.True(t, config.IsValidOutputFormat(f), f)
	}
	assert.True(t, config.IsValidOutputFormat("NDJSON"))
	assert.False(t, config.IsValidOutputFormat("csv"))
}
