package cli_test

import (
	"bytes"
	"testing"

	"github.com/rshade/recipefind/internal/cli"
	"github.com/rshade/recipefind/internal/config"
)

// setupCLITest isolates config and environment and returns the temporary
// RECIPEFIND_HOME.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvLogFile, "")
	t.Setenv(config.EnvLogFormat, "")
	t.Setenv(config.EnvOutputFormat, "")
	t.Setenv(config.EnvPageSize, "")
	t.Setenv(config.EnvCaseSensitive, "")
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// executeRoot runs the root command in-process and returns stdout and stderr.
func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
