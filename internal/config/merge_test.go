package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/recipefind/internal/config"
)

// newDefaultTarget returns a Config with non-default values in every section
// so tests can tell which sections an overlay replaced.
func newDefaultTarget() *config.Config {
	return &config.Config{
		SchemaVersion: "1.0.0",
		Output:        config.OutputConfig{DefaultFormat: "table"},
		Search:        config.SearchConfig{PageSize: 7, CaseSensitive: true},
		Logging:       config.LoggingConfig{Level: "warn", Format: "console", File: "/tmp/base.log"},
	}
}

func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, "output:\n  default_format: json\n")

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "json", target.Output.DefaultFormat)
	assert.Equal(t, 7, target.Search.PageSize, "search section must be untouched")
	assert.Equal(t, "warn", target.Logging.Level, "logging section must be untouched")
}

func TestShallowMergeYAML_PartialSectionKeepsOtherFields(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, "search:\n  page_size: 10\n")

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, 10, target.Search.PageSize)
	assert.True(t, target.Search.CaseSensitive, "fields omitted from the section keep their value")
}

func TestShallowMergeYAML_PartialSearchSectionKeepsPageSize(t *testing.T) {
	target := config.New()
	overlay := writeOverlay(t, "search:\n  case_sensitive: true\n")

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.True(t, target.Search.CaseSensitive)
	assert.Equal(t, config.New().Search.PageSize, target.Search.PageSize)
	require.NoError(t, target.Validate())
}

func TestShallowMergeYAML_ExplicitFalseOverrides(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, "search:\n  case_sensitive: false\n")

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.False(t, target.Search.CaseSensitive)
	assert.Equal(t, 7, target.Search.PageSize)
}

func TestShallowMergeYAML_SchemaVersionScalar(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, "schema_version: 1.2.0\n")

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, "1.2.0", target.SchemaVersion)
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, "plugins:\n  foo: bar\nlogging:\n  level: debug\n")

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, "debug", target.Logging.Level)
	assert.Equal(t, "table", target.Output.DefaultFormat)
}

func TestShallowMergeYAML_EmptyFile(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, "# nothing here\n")

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, newDefaultTarget(), target)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	t.Run("nil target", func(t *testing.T) {
		err := config.ShallowMergeYAML(nil, writeOverlay(t, "output: {}\n"))
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading overlay file")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), writeOverlay(t, "output: [unclosed\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing overlay YAML")
	})

	t.Run("wrong section type", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), writeOverlay(t, "search:\n  page_size: many\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `applying overlay section "search"`)
	})
}
